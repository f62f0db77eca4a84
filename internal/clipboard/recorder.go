package clipboard

import "sync"

// Recorder is an in-memory Writer that remembers every text it was given.
// Set Err to make subsequent writes fail.
type Recorder struct {
	mu    sync.Mutex
	texts []string
	Err   error
}

// WriteText implements Writer.
func (r *Recorder) WriteText(text string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Err != nil {
		return r.Err
	}
	r.texts = append(r.texts, text)
	return nil
}

// Texts returns a copy of the recorded writes in order.
func (r *Recorder) Texts() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

// Last returns the most recent write, or "" if none.
func (r *Recorder) Last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.texts) == 0 {
		return ""
	}
	return r.texts[len(r.texts)-1]
}
