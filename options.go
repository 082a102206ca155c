package cloudlog

import (
	"io"
	"time"

	"go.opentelemetry.io/otel/metric"
)

// logOptions holds the recognized per-call fields. Only these are forwarded;
// there is no open-ended options bag.
type logOptions struct {
	labels    map[string]string
	insertID  string
	timestamp time.Time
}

// LogOption customizes a single log call.
type LogOption func(*logOptions)

// WithLabels merges m into the entry's labels. Keys given here win over the
// logger's configured default labels.
func WithLabels(m map[string]string) LogOption {
	return func(o *logOptions) {
		if o.labels == nil {
			o.labels = make(map[string]string, len(m))
		}
		for k, v := range m {
			o.labels[k] = v
		}
	}
}

// WithLabel sets a single label on the entry.
func WithLabel(key, value string) LogOption {
	return func(o *logOptions) {
		if o.labels == nil {
			o.labels = make(map[string]string, 1)
		}
		o.labels[key] = value
	}
}

// WithInsertID sets an explicit insert ID instead of the generated one.
func WithInsertID(id string) LogOption {
	return func(o *logOptions) { o.insertID = id }
}

// WithTimestamp sets an explicit entry timestamp instead of the current time.
func WithTimestamp(t time.Time) LogOption {
	return func(o *logOptions) { o.timestamp = t }
}

// loggerOptions holds construction-time dependencies of a Logger.
type loggerOptions struct {
	echoOut io.Writer
	meter   metric.Meter
}

// LoggerOption customizes Logger construction.
type LoggerOption func(*loggerOptions)

// WithEchoWriter redirects the echo mirror away from standard output.
func WithEchoWriter(w io.Writer) LoggerOption {
	return func(o *loggerOptions) { o.echoOut = w }
}

// WithMeter enables an emitted-entries counter on the given meter.
func WithMeter(m metric.Meter) LoggerOption {
	return func(o *loggerOptions) { o.meter = m }
}
