package delay

import (
	"testing"
	"time"
)

func fired(t *testing.T, s *Slot, d time.Duration) FiredMsg {
	t.Helper()
	cmd := s.Schedule(d)
	if cmd == nil {
		t.Fatal("Schedule() returned nil cmd")
	}
	msg, ok := cmd().(FiredMsg)
	if !ok {
		t.Fatalf("cmd() returned %T, want FiredMsg", msg)
	}
	return msg
}

func TestSlotFire(t *testing.T) {
	s := NewSlot("fade")

	msg := fired(t, &s, time.Millisecond)
	if msg.Slot != "fade" {
		t.Errorf("Slot = %q, want %q", msg.Slot, "fade")
	}
	if !s.Pending() {
		t.Fatal("slot should be pending after Schedule")
	}
	if !s.Fire(msg) {
		t.Fatal("Fire() = false for current generation")
	}
	if s.Pending() {
		t.Error("slot should be idle after Fire")
	}
	if s.Fire(msg) {
		t.Error("a message must fire only once")
	}
}

func TestSlotReplace(t *testing.T) {
	s := NewSlot("fade")

	first := fired(t, &s, time.Millisecond)
	second := fired(t, &s, time.Millisecond)

	if s.Fire(first) {
		t.Error("replaced task must not fire")
	}
	if !s.Pending() {
		t.Error("stale message must not clear the pending task")
	}
	if !s.Fire(second) {
		t.Error("latest task should fire")
	}
}

func TestSlotCancel(t *testing.T) {
	s := NewSlot("copy")

	msg := fired(t, &s, time.Millisecond)
	s.Cancel()

	if s.Pending() {
		t.Error("slot should be idle after Cancel")
	}
	if s.Fire(msg) {
		t.Error("cancelled task must not fire")
	}
}

func TestSlotIgnoresOtherSlots(t *testing.T) {
	fade := NewSlot("fade")
	copyLabel := NewSlot("copy")

	msg := fired(t, &fade, time.Millisecond)
	fired(t, &copyLabel, time.Millisecond)

	if copyLabel.Fire(msg) {
		t.Error("slot must ignore messages addressed to another slot")
	}
	if !fade.Fire(msg) {
		t.Error("fade should accept its own message")
	}
}
