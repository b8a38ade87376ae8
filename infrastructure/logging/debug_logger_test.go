package logging

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

// recordingLogger captures messages for assertions.
type recordingLogger struct {
	mu       sync.Mutex
	messages []string
	fields   []domain.Field
}

func (r *recordingLogger) record(msg string, fields ...domain.Field) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, msg)
	r.fields = append(r.fields, fields...)
}

func (r *recordingLogger) Debug(_ context.Context, msg string, fields ...domain.Field) {
	r.record(msg, fields...)
}
func (r *recordingLogger) Info(_ context.Context, msg string, fields ...domain.Field) {
	r.record(msg, fields...)
}
func (r *recordingLogger) Warn(_ context.Context, msg string, fields ...domain.Field) {
	r.record(msg, fields...)
}
func (r *recordingLogger) Error(_ context.Context, msg string, fields ...domain.Field) {
	r.record(msg, fields...)
}
func (r *recordingLogger) WithFields(fields ...domain.Field) domain.Logger {
	r.fields = append(r.fields, fields...)
	return r
}

func TestDebugLoggerForwardsToWrapped(t *testing.T) {
	rec := &recordingLogger{}
	logger := NewDebugLogger(rec, "test")

	ctx := context.Background()
	logger.Info(ctx, "clock started", domain.NewField("zone", "UTC"))
	logger.Error(ctx, "tick missed")

	assert.Equal(t, []string{"clock started", "tick missed"}, rec.messages)
	assert.Equal(t, "zone", rec.fields[0].Key)
}

func TestLevelFilterLogger(t *testing.T) {
	rec := &recordingLogger{}
	logger := NewLevelFilterLogger(rec, domain.LogLevelWarn)

	ctx := context.Background()
	logger.Debug(ctx, "dropped")
	logger.Info(ctx, "dropped too")
	logger.Warn(ctx, "kept")
	logger.Error(ctx, "kept too")

	assert.Equal(t, []string{"kept", "kept too"}, rec.messages)
}

func TestLoggerFactoryWithoutPromtail(t *testing.T) {
	factory := NewLoggerFactory(&config.LoggingConfig{Level: "info"})
	logger := factory.CreateLogger("test")

	// no promtail configured: messages go nowhere, but logging must be safe
	assert.NotPanics(t, func() {
		logger.Info(context.Background(), "message")
	})
}
