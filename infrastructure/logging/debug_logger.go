package logging

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/farkasdvd/indicator-datetime/domain"
)

// DebugLogger mirrors log output to stdout in addition to forwarding each
// message to the wrapped logger.
type DebugLogger struct {
	wrapped   domain.Logger
	component string
	mu        sync.Mutex
}

func NewDebugLogger(wrapped domain.Logger, component string) *DebugLogger {
	return &DebugLogger{
		wrapped:   wrapped,
		component: component,
	}
}

func (d *DebugLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Debug(ctx, msg, fields...)
	d.mirror(domain.LogLevelDebug, msg, fields)
}

func (d *DebugLogger) Info(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Info(ctx, msg, fields...)
	d.mirror(domain.LogLevelInfo, msg, fields)
}

func (d *DebugLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Warn(ctx, msg, fields...)
	d.mirror(domain.LogLevelWarn, msg, fields)
}

func (d *DebugLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {
	d.wrapped.Error(ctx, msg, fields...)
	d.mirror(domain.LogLevelError, msg, fields)
}

func (d *DebugLogger) WithFields(fields ...domain.Field) domain.Logger {
	return &DebugLogger{
		wrapped:   d.wrapped.WithFields(fields...),
		component: d.component,
	}
}

// mirror writes one line per message; the mutex keeps concurrent lines
// from interleaving
func (d *DebugLogger) mirror(level domain.LogLevel, msg string, fields []domain.Field) {
	var line strings.Builder
	fmt.Fprintf(&line, "[%s] [%s] [%s] %s",
		time.Now().Format("2006-01-02T15:04:05.000Z07:00"), level, d.component, msg)

	if len(fields) > 0 {
		line.WriteString(" {")
		for i, field := range fields {
			if i > 0 {
				line.WriteString(", ")
			}
			fmt.Fprintf(&line, "%s=%v", field.Key, field.Value)
		}
		line.WriteString("}")
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	_, _ = fmt.Fprintln(os.Stdout, line.String())
}

// Shutdown propagates shutdown to the wrapped logger when it supports it.
func (d *DebugLogger) Shutdown() error {
	if shutdowner, ok := d.wrapped.(interface{ Shutdown() error }); ok {
		return shutdowner.Shutdown()
	}
	return nil
}
