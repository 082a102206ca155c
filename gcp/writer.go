package gcp

import (
	"context"

	"cloud.google.com/go/logging"
	mrpb "google.golang.org/genproto/googleapis/api/monitoredres"

	"github.com/kbukum/cloudlog"
)

// Writer sends cloudlog entries through one Cloud Logging log stream.
type Writer struct {
	logger *logging.Logger
}

// Write sends the entry synchronously and reports the backend's result.
func (w *Writer) Write(ctx context.Context, e cloudlog.Entry) error {
	return w.logger.LogSync(ctx, toEntry(e))
}

// Enqueue adds the entry to the client's delivery buffer.
func (w *Writer) Enqueue(e cloudlog.Entry) {
	w.logger.Log(toEntry(e))
}

// Flush blocks until all buffered entries have been sent.
func (w *Writer) Flush() error {
	return w.logger.Flush()
}

// toEntry maps a cloudlog entry to the cloud client's representation.
func toEntry(e cloudlog.Entry) logging.Entry {
	out := logging.Entry{
		Timestamp:    e.Timestamp,
		Severity:     toSeverity(e.Severity),
		Payload:      e.Payload,
		Labels:       e.Labels,
		InsertID:     e.InsertID,
		Trace:        e.Trace,
		SpanID:       e.SpanID,
		TraceSampled: e.TraceSampled,
	}
	if e.Resource.Type != "" {
		out.Resource = toResource(e.Resource)
	}
	return out
}

func toSeverity(s cloudlog.Severity) logging.Severity {
	return logging.ParseSeverity(string(s))
}

func toResource(r cloudlog.Resource) *mrpb.MonitoredResource {
	return &mrpb.MonitoredResource{
		Type:   r.Type,
		Labels: r.Labels,
	}
}
