package logging

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/ic2hrmk/promtail"

	"github.com/farkasdvd/indicator-datetime/domain"
)

// PromtailLogger ships structured logs to a Loki/Promtail endpoint.
type PromtailLogger struct {
	client    promtail.Client
	component string
	fields    []domain.Field
	mu        sync.RWMutex
}

// NewPromtailLogger creates a logger pushing to the given Promtail URL.
func NewPromtailLogger(url, username, password, component string) (*PromtailLogger, error) {
	client, err := promtail.NewJSONv1Client(
		url,
		map[string]string{
			"app":       "indicator-datetime",
			"component": component,
		},
		promtail.WithSendBatchSize(100),
		promtail.WithSendBatchTimeout(1*time.Second),
		promtail.WithBasicAuth(username, password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create promtail client: %w", err)
	}

	return &PromtailLogger{
		client:    client,
		component: component,
	}, nil
}

func (p *PromtailLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelDebug, msg, fields)
}

func (p *PromtailLogger) Info(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelInfo, msg, fields)
}

func (p *PromtailLogger) Warn(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelWarn, msg, fields)
}

func (p *PromtailLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {
	p.log(ctx, domain.LogLevelError, msg, fields)
}

func (p *PromtailLogger) WithFields(fields ...domain.Field) domain.Logger {
	p.mu.RLock()
	defer p.mu.RUnlock()

	merged := make([]domain.Field, 0, len(p.fields)+len(fields))
	merged = append(merged, p.fields...)
	merged = append(merged, fields...)

	return &PromtailLogger{
		client:    p.client,
		component: p.component,
		fields:    merged,
	}
}

func (p *PromtailLogger) log(_ context.Context, level domain.LogLevel, msg string, fields []domain.Field) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	labels := make(map[string]string, len(p.fields)+len(fields)+1)
	labels["level"] = level.String()
	for _, field := range p.fields {
		labels[field.Key] = fmt.Sprintf("%v", field.Value)
	}
	for _, field := range fields {
		labels[field.Key] = fmt.Sprintf("%v", field.Value)
	}

	p.client.LogfWithLabels(toPromtailLevel(level), labels, "%s", msg)
}

func toPromtailLevel(level domain.LogLevel) promtail.Level {
	switch level {
	case domain.LogLevelDebug:
		return promtail.Debug
	case domain.LogLevelWarn:
		return promtail.Warn
	case domain.LogLevelError:
		return promtail.Error
	default:
		return promtail.Info
	}
}

// Shutdown flushes and closes the Promtail client.
func (p *PromtailLogger) Shutdown() error {
	if p.client != nil {
		p.client.Close()
	}
	return nil
}
