package controller

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
)

// mockLogger is a test logger that does nothing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, msg string, fields ...domain.Field) {}
func (m *mockLogger) Info(ctx context.Context, msg string, fields ...domain.Field)  {}
func (m *mockLogger) Warn(ctx context.Context, msg string, fields ...domain.Field)  {}
func (m *mockLogger) Error(ctx context.Context, msg string, fields ...domain.Field) {}
func (m *mockLogger) WithFields(fields ...domain.Field) domain.Logger               { return m }

func newTestDaemonController(t *testing.T, pidFile string) *DaemonController {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.Daemon.PidFile = pidFile
	d := NewDaemonController(cfg, nil, nil, &mockLogger{})
	d.ctx, d.cancel = context.WithCancel(context.Background())
	t.Cleanup(d.cancel)
	return d
}

func TestDaemonControllerWritesAndRemovesPIDFile(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "indicator.pid")
	d := newTestDaemonController(t, pidFile)

	require.NoError(t, d.writePIDFile())

	data, err := os.ReadFile(pidFile)
	require.NoError(t, err)
	assert.Equal(t, strconv.Itoa(os.Getpid()), string(data))

	require.NoError(t, d.removePIDFile())
	_, err = os.Stat(pidFile)
	assert.True(t, os.IsNotExist(err))
}

func TestDaemonControllerRemovePIDFileMissingIsNotAnError(t *testing.T) {
	pidFile := filepath.Join(t.TempDir(), "indicator.pid")
	d := newTestDaemonController(t, pidFile)

	// never written
	assert.NoError(t, d.removePIDFile())

	d.pidFile = pidFile
	assert.NoError(t, d.removePIDFile())
}

func TestDaemonControllerDefaultPIDFilePath(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Daemon.PidFile = ""
	d := NewDaemonController(cfg, nil, nil, &mockLogger{})
	d.ctx, d.cancel = context.WithCancel(context.Background())
	defer d.cancel()

	require.NoError(t, d.writePIDFile())
	defer func() {
		_ = d.removePIDFile()
	}()

	assert.Equal(t, "/tmp/indicator-datetime.pid", d.pidFile)
}
