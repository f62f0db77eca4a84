// Package clipboard copies text to the system clipboard from a terminal
// program by emitting OSC52 escape sequences.
package clipboard

import (
	"io"
	"os"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"

	"github.com/Iron-Ham/inspire/internal/errors"
)

// Writer places text on the clipboard.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc adapts a function to the Writer interface.
type WriterFunc func(text string) error

// WriteText implements Writer.
func (f WriterFunc) WriteText(text string) error {
	return f(text)
}

// Multiplexer is the terminal multiplexer the sequence has to pass through.
type Multiplexer int

const (
	MuxNone Multiplexer = iota
	MuxTmux
	MuxScreen
)

// String returns the multiplexer name.
func (m Multiplexer) String() string {
	switch m {
	case MuxTmux:
		return "tmux"
	case MuxScreen:
		return "screen"
	default:
		return "none"
	}
}

// DetectMultiplexer inspects the environment for tmux or GNU screen.
func DetectMultiplexer(getenv func(string) string) Multiplexer {
	if getenv("TMUX") != "" {
		return MuxTmux
	}
	if getenv("STY") != "" || strings.HasPrefix(getenv("TERM"), "screen") {
		return MuxScreen
	}
	return MuxNone
}

// OSC52 writes clipboard sequences to a terminal stream.
type OSC52 struct {
	mu     sync.Mutex
	out    io.Writer
	target string
	mux    Multiplexer
}

// Option configures an OSC52 writer.
type Option func(*OSC52)

// WithMultiplexer overrides multiplexer detection.
func WithMultiplexer(m Multiplexer) Option {
	return func(c *OSC52) { c.mux = m }
}

// NewOSC52 creates a writer emitting to out. target names the stream for
// error messages. The multiplexer is detected from the process environment.
func NewOSC52(out io.Writer, target string, opts ...Option) *OSC52 {
	c := &OSC52{
		out:    out,
		target: target,
		mux:    DetectMultiplexer(os.Getenv),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ForTarget creates a writer for the named stream, "stdout" or "stderr".
// Unknown names fall back to stderr.
func ForTarget(target string, opts ...Option) *OSC52 {
	if target == "stdout" {
		return NewOSC52(os.Stdout, target, opts...)
	}
	return NewOSC52(os.Stderr, "stderr", opts...)
}

// Target returns the stream name.
func (c *OSC52) Target() string {
	return c.target
}

// Multiplexer returns the multiplexer the writer wraps sequences for.
func (c *OSC52) Multiplexer() Multiplexer {
	return c.mux
}

// Sequence returns the escape sequence that copies text.
func (c *OSC52) Sequence(text string) string {
	return c.sequence(text).String()
}

func (c *OSC52) sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch c.mux {
	case MuxTmux:
		seq = seq.Tmux()
	case MuxScreen:
		seq = seq.Screen()
	}
	return seq
}

// WriteText emits a single OSC52 sequence carrying text.
func (c *OSC52) WriteText(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.out == nil {
		return errors.NewClipboardError("no terminal to write to", nil).WithTarget(c.target)
	}
	if _, err := c.sequence(text).WriteTo(c.out); err != nil {
		return errors.NewClipboardError("failed to write OSC52 sequence", err).WithTarget(c.target)
	}
	return nil
}
