package clipboard

import (
	"bytes"
	"encoding/base64"
	"strings"
	"testing"

	"github.com/Iron-Ham/inspire/internal/errors"
)

func env(vars map[string]string) func(string) string {
	return func(k string) string { return vars[k] }
}

func TestDetectMultiplexer(t *testing.T) {
	tests := []struct {
		name string
		vars map[string]string
		want Multiplexer
	}{
		{"plain terminal", map[string]string{"TERM": "xterm-256color"}, MuxNone},
		{"tmux", map[string]string{"TMUX": "/tmp/tmux-1000/default,123,0", "TERM": "screen-256color"}, MuxTmux},
		{"screen by STY", map[string]string{"STY": "1234.pts-0.host"}, MuxScreen},
		{"screen by TERM", map[string]string{"TERM": "screen"}, MuxScreen},
		{"empty", nil, MuxNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectMultiplexer(env(tt.vars)); got != tt.want {
				t.Errorf("DetectMultiplexer() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOSC52_WriteText(t *testing.T) {
	// Short enough that screen mode does not split the payload into chunks.
	text := "In the middle of difficulty lies opportunity."
	encoded := base64.StdEncoding.EncodeToString([]byte(text))

	tests := []struct {
		name   string
		mux    Multiplexer
		prefix string
	}{
		{"plain", MuxNone, "\x1b]52;c;"},
		{"tmux", MuxTmux, "\x1bPtmux;\x1b\x1b]52;c;"},
		{"screen", MuxScreen, "\x1bP\x1b]52;c;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			c := NewOSC52(&buf, "stderr", WithMultiplexer(tt.mux))

			if err := c.WriteText(text); err != nil {
				t.Fatalf("WriteText() error = %v", err)
			}
			out := buf.String()
			if !strings.HasPrefix(out, tt.prefix) {
				t.Errorf("output %q does not start with %q", out, tt.prefix)
			}
			if !strings.Contains(out, encoded) {
				t.Errorf("output %q does not contain base64 payload", out)
			}
			if out != c.Sequence(text) {
				t.Errorf("written bytes differ from Sequence()")
			}
		})
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestOSC52_WriteFailure(t *testing.T) {
	c := NewOSC52(brokenWriter{}, "stdout", WithMultiplexer(MuxNone))

	err := c.WriteText("x")
	if !errors.Is(err, errors.ErrClipboardUnavailable) {
		t.Fatalf("WriteText() error = %v, want ErrClipboardUnavailable", err)
	}
	if !strings.Contains(err.Error(), "target=stdout") {
		t.Errorf("error should name the target: %v", err)
	}
}

func TestOSC52_NilOutput(t *testing.T) {
	c := NewOSC52(nil, "stderr")
	if err := c.WriteText("x"); !errors.Is(err, errors.ErrClipboardUnavailable) {
		t.Errorf("WriteText() error = %v, want ErrClipboardUnavailable", err)
	}
}

func TestForTarget(t *testing.T) {
	if got := ForTarget("stdout").Target(); got != "stdout" {
		t.Errorf("Target() = %q, want stdout", got)
	}
	if got := ForTarget("stderr").Target(); got != "stderr" {
		t.Errorf("Target() = %q, want stderr", got)
	}
	if got := ForTarget("bogus").Target(); got != "stderr" {
		t.Errorf("Target() = %q, want stderr fallback", got)
	}
}

func TestRecorder(t *testing.T) {
	var r Recorder
	if r.Last() != "" {
		t.Error("Last() should be empty initially")
	}

	_ = r.WriteText("one")
	_ = r.WriteText("two")
	if got := r.Texts(); len(got) != 2 || got[1] != "two" {
		t.Errorf("Texts() = %v", got)
	}

	r.Err = errors.New("denied")
	if err := r.WriteText("three"); err == nil {
		t.Error("expected error")
	}
	if r.Last() != "two" {
		t.Errorf("Last() = %q, want two", r.Last())
	}
}

func TestWriterFunc(t *testing.T) {
	var got string
	var w Writer = WriterFunc(func(s string) error { got = s; return nil })
	_ = w.WriteText("hi")
	if got != "hi" {
		t.Errorf("got %q", got)
	}
}
