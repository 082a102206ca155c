package cloudlog

import (
	"context"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// Logger writes entries to one backend log stream with a fixed resource
// descriptor and default labels. It holds no per-call state; concurrent use
// is safe.
type Logger struct {
	cfg     Config
	writer  Writer
	echo    *zerolog.Logger
	entries metric.Int64Counter
}

// New creates a logger bound to the given backend writer. A nil writer
// discards entries (see NopWriter). The config is copied; defaults are
// applied, no validation is performed.
func New(w Writer, cfg Config, opts ...LoggerOption) *Logger {
	var lo loggerOptions
	for _, opt := range opts {
		opt(&lo)
	}
	cfg.ApplyDefaults()
	if w == nil {
		w = NopWriter{}
	}

	l := &Logger{cfg: cfg, writer: w}

	if cfg.Echo {
		out := lo.echoOut
		if out == nil {
			out = os.Stdout
		}
		echo := zerolog.New(out)
		l.echo = &echo
	}

	if lo.meter != nil {
		counter, err := lo.meter.Int64Counter("cloudlog.entries",
			metric.WithDescription("Log entries emitted through the cloudlog wrapper."))
		if err == nil {
			l.entries = counter
		}
	}

	return l
}

// Config returns a copy of the logger's configuration.
func (l *Logger) Config() Config { return l.cfg }

// With returns a child logger whose default labels are the receiver's
// overlaid with labels. The receiver is not modified.
func (l *Logger) With(labels map[string]string) *Logger {
	child := *l
	merged := make(map[string]string, len(l.cfg.Labels)+len(labels))
	for k, v := range l.cfg.Labels {
		merged[k] = v
	}
	for k, v := range labels {
		merged[k] = v
	}
	child.cfg.Labels = merged
	return &child
}

// Log emits one entry at the given severity and blocks until the backend
// acknowledges it. Per-call labels win over the configured defaults; the
// merge never touches the configured map. Backend failures are returned
// unmodified, with no retry.
func (l *Logger) Log(ctx context.Context, severity Severity, payload any, opts ...LogOption) error {
	e := l.build(ctx, severity, payload, opts)
	l.mirror(e)
	l.count(ctx, severity)
	return l.writer.Write(ctx, e)
}

// Enqueue emits one entry through the backend's asynchronous buffer and
// returns immediately. Delivery failures surface through the backend's own
// error path, not here.
func (l *Logger) Enqueue(ctx context.Context, severity Severity, payload any, opts ...LogOption) {
	e := l.build(ctx, severity, payload, opts)
	l.mirror(e)
	l.count(ctx, severity)
	l.writer.Enqueue(e)
}

// Debug logs a DEBUG entry.
func (l *Logger) Debug(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityDebug, payload, opts...)
}

// Info logs an INFO entry.
func (l *Logger) Info(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityInfo, payload, opts...)
}

// Notice logs a NOTICE entry.
func (l *Logger) Notice(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityNotice, payload, opts...)
}

// Warning logs a WARNING entry.
func (l *Logger) Warning(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityWarning, payload, opts...)
}

// Error logs an ERROR entry.
func (l *Logger) Error(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityError, payload, opts...)
}

// Critical logs a CRITICAL entry.
func (l *Logger) Critical(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityCritical, payload, opts...)
}

// Alert logs an ALERT entry.
func (l *Logger) Alert(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityAlert, payload, opts...)
}

// Emergency logs an EMERGENCY entry.
func (l *Logger) Emergency(ctx context.Context, payload any, opts ...LogOption) error {
	return l.Log(ctx, SeverityEmergency, payload, opts...)
}

// build assembles the entry: fresh label merge, resource stamp, insert ID,
// and trace correlation from the active span, if any.
func (l *Logger) build(ctx context.Context, severity Severity, payload any, opts []LogOption) Entry {
	var o logOptions
	for _, opt := range opts {
		opt(&o)
	}

	labels := make(map[string]string, len(l.cfg.Labels)+len(o.labels))
	for k, v := range l.cfg.Labels {
		labels[k] = v
	}
	for k, v := range o.labels {
		labels[k] = v
	}

	e := Entry{
		Timestamp: o.timestamp,
		Severity:  severity,
		Payload:   payload,
		Labels:    labels,
		Resource:  Resource{Type: l.cfg.ResourceType, Labels: l.cfg.ResourceLabels},
		InsertID:  o.insertID,
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now()
	}
	if e.InsertID == "" {
		e.InsertID = uuid.NewString()
	}

	if sc := oteltrace.SpanContextFromContext(ctx); sc.IsValid() {
		e.Trace = traceName(l.cfg.ProjectID, sc.TraceID().String())
		e.SpanID = sc.SpanID().String()
		e.TraceSampled = sc.IsSampled()
	}

	return e
}

// mirror writes one line with the severity and message to the echo output.
func (l *Logger) mirror(e Entry) {
	if l.echo == nil {
		return
	}
	ev := l.echo.Log().Str("severity", string(e.Severity))
	if msg, ok := e.Payload.(string); ok {
		ev.Msg(msg)
		return
	}
	ev.Interface(zerolog.MessageFieldName, e.Payload).Send()
}

func (l *Logger) count(ctx context.Context, severity Severity) {
	if l.entries == nil {
		return
	}
	l.entries.Add(ctx, 1, metric.WithAttributes(
		attribute.String("severity", string(severity)),
		attribute.String("log_name", l.cfg.Name),
	))
}

// traceName formats a trace ID as the backend's trace resource name when the
// project is known, or returns the raw ID otherwise.
func traceName(projectID, traceID string) string {
	if projectID == "" {
		return traceID
	}
	return "projects/" + projectID + "/traces/" + traceID
}
