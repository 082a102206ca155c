package cloudlog

import "context"

// Writer is the backend boundary. Implementations own transport, batching,
// retries, and credentials; the Logger only hands them finished entries.
type Writer interface {
	// Write sends one entry and blocks until the backend acknowledges it, so
	// the caller can observe success or failure.
	Write(ctx context.Context, e Entry) error
	// Enqueue adds the entry to the backend's buffer for asynchronous
	// delivery. Failures are reported through the backend's own error path.
	Enqueue(e Entry)
}

// NopWriter discards every entry. It backs loggers constructed without a
// writer, which is useful together with Echo during local development.
type NopWriter struct{}

func (NopWriter) Write(context.Context, Entry) error { return nil }
func (NopWriter) Enqueue(Entry)                      {}
