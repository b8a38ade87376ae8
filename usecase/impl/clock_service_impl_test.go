package impl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farkasdvd/indicator-datetime/infrastructure/logging"
)

func TestClockServiceLocaltime(t *testing.T) {
	clock := NewClockServiceImpl(newFakeTimezoneService(), &logging.NoOpLogger{})

	now := clock.Localtime()
	require.True(t, now.IsSet())
	assert.Equal(t, "UTC", now.Location().String())
}

func TestClockServiceEmitsTicks(t *testing.T) {
	clock := NewClockServiceImpl(newFakeTimezoneService(), &logging.NoOpLogger{})
	clock.tickInterval = 20 * time.Millisecond

	require.NoError(t, clock.Start())

	for i := 0; i < 2; i++ {
		select {
		case dt := <-clock.MinuteChanged():
			assert.True(t, dt.IsSet())
		case <-time.After(2 * time.Second):
			t.Fatal("timed out waiting for a tick")
		}
	}

	require.NoError(t, clock.Stop())

	// channel is drained and closed after Stop
	for {
		_, ok := <-clock.MinuteChanged()
		if !ok {
			break
		}
	}
}

func TestClockServiceRestartAfterStop(t *testing.T) {
	clock := NewClockServiceImpl(newFakeTimezoneService(), &logging.NoOpLogger{})
	clock.tickInterval = 20 * time.Millisecond

	require.NoError(t, clock.Start())
	select {
	case <-clock.MinuteChanged():
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a tick")
	}
	require.NoError(t, clock.Stop())

	// a restarted clock ticks on a fresh channel
	require.NoError(t, clock.Start())
	select {
	case dt, ok := <-clock.MinuteChanged():
		require.True(t, ok)
		assert.True(t, dt.IsSet())
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for a tick after restart")
	}
	require.NoError(t, clock.Stop())
}

func TestClockServiceStartTwice(t *testing.T) {
	clock := NewClockServiceImpl(newFakeTimezoneService(), &logging.NoOpLogger{})
	clock.tickInterval = 20 * time.Millisecond

	require.NoError(t, clock.Start())
	assert.Error(t, clock.Start())
	require.NoError(t, clock.Stop())
}

func TestClockServiceStopWithoutStart(t *testing.T) {
	clock := NewClockServiceImpl(newFakeTimezoneService(), &logging.NoOpLogger{})
	assert.Error(t, clock.Stop())
}
