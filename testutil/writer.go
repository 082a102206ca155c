package testutil

import (
	"context"
	"sync"

	"github.com/kbukum/cloudlog"
)

// CaptureWriter is an in-memory cloudlog.Writer that records every entry it
// receives. Safe for concurrent use.
type CaptureWriter struct {
	// Err, when set, is returned from Write to simulate backend failures.
	Err error

	mu      sync.Mutex
	entries []cloudlog.Entry
}

func (w *CaptureWriter) Write(_ context.Context, e cloudlog.Entry) error {
	w.mu.Lock()
	w.entries = append(w.entries, e)
	w.mu.Unlock()
	return w.Err
}

func (w *CaptureWriter) Enqueue(e cloudlog.Entry) {
	w.mu.Lock()
	w.entries = append(w.entries, e)
	w.mu.Unlock()
}

// Entries returns a copy of the recorded entries in arrival order.
func (w *CaptureWriter) Entries() []cloudlog.Entry {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := make([]cloudlog.Entry, len(w.entries))
	copy(out, w.entries)
	return out
}

// Last returns the most recent entry, if any.
func (w *CaptureWriter) Last() (cloudlog.Entry, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.entries) == 0 {
		return cloudlog.Entry{}, false
	}
	return w.entries[len(w.entries)-1], true
}

// Reset discards all recorded entries.
func (w *CaptureWriter) Reset() {
	w.mu.Lock()
	w.entries = nil
	w.mu.Unlock()
}
