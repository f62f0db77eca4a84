// Package delay provides cancellable, replaceable scheduled tasks for a
// Bubble Tea update loop.
//
// A Slot hands out a tea.Cmd that fires a FiredMsg after a duration. Each
// Schedule or Cancel bumps the slot's generation, so a message produced by an
// earlier Schedule arrives stale and Fire rejects it. Nothing runs on its own
// goroutine beyond tea.Tick, and the slot needs no locking because the update
// loop is single threaded.
package delay

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FiredMsg is delivered when a scheduled slot elapses.
type FiredMsg struct {
	Slot string
	Gen  uint64
	At   time.Time
}

// Slot holds at most one pending task.
type Slot struct {
	name    string
	gen     uint64
	pending bool
}

// NewSlot creates an idle slot. The name routes FiredMsg values back to it.
func NewSlot(name string) Slot {
	return Slot{name: name}
}

// Name returns the slot's routing name.
func (s *Slot) Name() string {
	return s.name
}

// Schedule replaces any pending task with one that fires after d.
func (s *Slot) Schedule(d time.Duration) tea.Cmd {
	s.gen++
	s.pending = true

	name, gen := s.name, s.gen
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return FiredMsg{Slot: name, Gen: gen, At: t}
	})
}

// Cancel drops the pending task, if any.
func (s *Slot) Cancel() {
	s.gen++
	s.pending = false
}

// Pending reports whether a scheduled task has not fired or been cancelled.
func (s *Slot) Pending() bool {
	return s.pending
}

// Fire consumes msg. It returns true only for the message of the most recent
// Schedule, after which the slot is idle.
func (s *Slot) Fire(msg FiredMsg) bool {
	if msg.Slot != s.name || msg.Gen != s.gen || !s.pending {
		return false
	}
	s.pending = false
	return true
}
