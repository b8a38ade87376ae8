package logging

import (
	"context"
	"strings"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

// LoggerFactoryImpl builds loggers from the logging configuration: a
// Promtail shipper when one is configured, filtered to the configured
// level, mirrored to stdout in debug mode.
type LoggerFactoryImpl struct {
	config *config.LoggingConfig
}

func NewLoggerFactory(cfg *config.LoggingConfig) domain.LoggerFactory {
	return &LoggerFactoryImpl{config: cfg}
}

func (f *LoggerFactoryImpl) CreateLogger(component string) domain.Logger {
	var logger domain.Logger = &NoOpLogger{}

	if f.config.Promtail != nil && f.config.Promtail.URL != "" {
		promtailLogger, err := NewPromtailLogger(
			f.config.Promtail.URL,
			f.config.Promtail.Username,
			f.config.Promtail.Password,
			component,
		)
		if err == nil {
			logger = promtailLogger
		}
	}

	logger = NewLevelFilterLogger(logger, parseLogLevel(f.config.Level))

	if f.config.Debug {
		logger = NewDebugLogger(logger, component)
	}

	return logger
}

func parseLogLevel(level string) domain.LogLevel {
	switch strings.ToLower(level) {
	case "debug":
		return domain.LogLevelDebug
	case "warn":
		return domain.LogLevelWarn
	case "error":
		return domain.LogLevelError
	default:
		return domain.LogLevelInfo
	}
}

// LevelFilterLogger drops messages below the configured minimum level
type LevelFilterLogger struct {
	wrapped  domain.Logger
	minLevel domain.LogLevel
}

func NewLevelFilterLogger(wrapped domain.Logger, minLevel domain.LogLevel) *LevelFilterLogger {
	return &LevelFilterLogger{
		wrapped:  wrapped,
		minLevel: minLevel,
	}
}

func (l *LevelFilterLogger) enabled(level domain.LogLevel) bool {
	return level >= l.minLevel
}

func (l *LevelFilterLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {
	if l.enabled(domain.LogLevelDebug) {
		l.wrapped.Debug(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) Info(ctx context.Context, msg string, fields ...domain.Field) {
	if l.enabled(domain.LogLevelInfo) {
		l.wrapped.Info(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	if l.enabled(domain.LogLevelWarn) {
		l.wrapped.Warn(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {
	if l.enabled(domain.LogLevelError) {
		l.wrapped.Error(ctx, msg, fields...)
	}
}

func (l *LevelFilterLogger) WithFields(fields ...domain.Field) domain.Logger {
	return &LevelFilterLogger{
		wrapped:  l.wrapped.WithFields(fields...),
		minLevel: l.minLevel,
	}
}

// NoOpLogger is a logger that does nothing
type NoOpLogger struct{}

func (n *NoOpLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {}
func (n *NoOpLogger) Info(ctx context.Context, msg string, fields ...domain.Field)  {}
func (n *NoOpLogger) Warn(ctx context.Context, msg string, fields ...domain.Field)  {}
func (n *NoOpLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {}
func (n *NoOpLogger) WithFields(fields ...domain.Field) domain.Logger               { return n }
