package cloudlog

import (
	"context"
	"sync"
)

// --- Global logger ---

var (
	globalMu     sync.RWMutex
	globalLogger *Logger
)

// Init constructs a logger from cfg and installs it as the global logger.
func Init(w Writer, cfg Config, opts ...LoggerOption) *Logger {
	l := New(w, cfg, opts...)
	SetGlobalLogger(l)
	return l
}

// SetGlobalLogger sets the global logger instance.
func SetGlobalLogger(l *Logger) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalLogger = l
}

// GetGlobalLogger returns the global logger. Before Init it returns an
// echo-only logger that mirrors entries to stdout and discards them.
func GetGlobalLogger() *Logger {
	globalMu.RLock()
	l := globalLogger
	globalMu.RUnlock()
	if l != nil {
		return l
	}

	globalMu.Lock()
	defer globalMu.Unlock()
	if globalLogger == nil {
		globalLogger = New(NopWriter{}, Config{Name: "default", Echo: true})
	}
	return globalLogger
}

// Package-level convenience functions delegate to the global logger.

func Debug(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Debug(ctx, payload, opts...)
}

func Info(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Info(ctx, payload, opts...)
}

func Notice(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Notice(ctx, payload, opts...)
}

func Warning(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Warning(ctx, payload, opts...)
}

func Error(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Error(ctx, payload, opts...)
}

func Critical(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Critical(ctx, payload, opts...)
}

func Alert(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Alert(ctx, payload, opts...)
}

func Emergency(ctx context.Context, payload any, opts ...LogOption) error {
	return GetGlobalLogger().Emergency(ctx, payload, opts...)
}

// --- Named logger registry ---

var registry = &loggerRegistry{loggers: make(map[string]*Logger)}

type loggerRegistry struct {
	mu      sync.RWMutex
	loggers map[string]*Logger
}

// Register stores a named logger in the registry.
func Register(name string, l *Logger) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.loggers[name] = l
}

// Get retrieves a named logger. If the name is not registered it returns the
// global logger tagged with the requested name as a component label.
func Get(name string) *Logger {
	registry.mu.RLock()
	l, ok := registry.loggers[name]
	registry.mu.RUnlock()
	if ok {
		return l
	}
	return GetGlobalLogger().With(map[string]string{"component": name})
}
