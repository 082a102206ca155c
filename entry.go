package cloudlog

import "time"

// Resource identifies the logical source of log entries: a type tag plus a
// label map (e.g. a particular service or function).
type Resource struct {
	Type   string
	Labels map[string]string
}

// Entry is the structured record submitted to the backend: a resource
// descriptor, a severity, a payload, and the merged label set. The payload
// may be a string or any value the backend can marshal to JSON.
type Entry struct {
	Timestamp time.Time
	Severity  Severity
	Payload   any
	Labels    map[string]string
	Resource  Resource
	// InsertID deduplicates retransmitted entries on the backend.
	InsertID string
	// Trace and SpanID correlate the entry with a distributed trace, in the
	// backend's resource-name format (projects/<id>/traces/<trace-id>).
	Trace        string
	SpanID       string
	TraceSampled bool
}
