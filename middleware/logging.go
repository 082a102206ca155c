package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/cloudlog"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// RequestLogger returns middleware that logs every request with method,
// path, status code, and duration through the cloud logger. Entries go
// through the backend's asynchronous buffer so the request path never blocks
// on log delivery. Health-check paths are silently skipped.
func RequestLogger(log *cloudlog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isHealthEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			sw := newStatusWriter(w)
			next.ServeHTTP(sw, r)
			duration := time.Since(start)

			opts := []cloudlog.LogOption{}
			if id := r.Header.Get("X-Request-Id"); id != "" {
				opts = append(opts, cloudlog.WithLabel("request_id", id))
			}

			payload := requestPayload{
				Method:     r.Method,
				Path:       r.URL.Path,
				Status:     sw.status,
				DurationMs: duration.Milliseconds(),
			}
			log.Enqueue(r.Context(), severityForStatus(sw.status), payload, opts...)
		})
	}
}

// GinRequestLogger returns a Gin middleware equivalent of RequestLogger.
func GinRequestLogger(log *cloudlog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if isHealthEndpoint(c.Request.URL.Path) {
			c.Next()
			return
		}

		start := time.Now()
		c.Next()
		duration := time.Since(start)

		path := c.Request.URL.Path
		if q := c.Request.URL.RawQuery; q != "" {
			path = path + "?" + q
		}

		payload := requestPayload{
			Method:     c.Request.Method,
			Path:       path,
			Status:     c.Writer.Status(),
			DurationMs: duration.Milliseconds(),
			Client:     c.ClientIP(),
		}
		log.Enqueue(c.Request.Context(), severityForStatus(c.Writer.Status()), payload)
	}
}

// requestPayload is the structured payload attached to request entries.
type requestPayload struct {
	Method     string `json:"method"`
	Path       string `json:"path"`
	Status     int    `json:"status"`
	DurationMs int64  `json:"duration_ms"`
	Client     string `json:"client,omitempty"`
}

// severityForStatus maps an HTTP status class to an entry severity.
func severityForStatus(status int) cloudlog.Severity {
	switch {
	case status >= 500:
		return cloudlog.SeverityError
	case status >= 400:
		return cloudlog.SeverityWarning
	default:
		return cloudlog.SeverityInfo
	}
}

func isHealthEndpoint(path string) bool {
	switch path {
	case "/health", "/alive", "/ready", "/metrics":
		return true
	}
	return false
}
