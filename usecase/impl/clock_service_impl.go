package impl

import (
	"context"
	"sync"
	"time"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/domain/repository"
	"github.com/farkasdvd/indicator-datetime/domain/valueobject"
)

// ClockServiceImpl implements the ClockService interface. A goroutine
// sleeps until the next minute boundary and emits the new local time;
// sleeping until an absolute boundary (rather than a fixed interval)
// keeps the clock aligned after suspend/resume and NTP adjustments.
type ClockServiceImpl struct {
	timezoneService repository.TimezoneService
	logger          domain.Logger

	// tick alignment interval; a minute in production, shortened by tests
	tickInterval time.Duration

	mu      sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	ticks   chan valueobject.DateTime
	running bool
}

// NewClockServiceImpl creates a new instance of ClockServiceImpl
func NewClockServiceImpl(timezoneService repository.TimezoneService, logger domain.Logger) *ClockServiceImpl {
	return &ClockServiceImpl{
		timezoneService: timezoneService,
		logger:          logger,
		tickInterval:    time.Minute,
		ticks:           make(chan valueobject.DateTime, 1),
	}
}

// Localtime returns the current instant in the effective timezone
func (c *ClockServiceImpl) Localtime() valueobject.DateTime {
	return c.timezoneService.Now()
}

// MinuteChanged returns the minute-change notification channel. The
// channel is replaced on every Start, so after a restart callers must
// fetch it again.
func (c *ClockServiceImpl) MinuteChanged() <-chan valueobject.DateTime {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.ticks
}

// Start begins emitting minute-change notifications
func (c *ClockServiceImpl) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return domain.ErrClock("Start", "clock is already running")
	}

	ctx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	// Stop closes the previous channel, so every start gets a fresh one;
	// consumers re-fetch it via MinuteChanged after a restart
	c.ticks = make(chan valueobject.DateTime, 1)
	c.running = true

	c.wg.Add(1)
	go c.run(ctx)

	c.logger.Info(ctx, "Clock started",
		domain.NewField("timezone", c.timezoneService.Info().Name))
	return nil
}

// Stop halts the clock and closes the notification channel
func (c *ClockServiceImpl) Stop() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.running {
		return domain.ErrClock("Stop", "clock is not running")
	}

	c.cancel()
	c.wg.Wait()
	close(c.ticks)
	c.running = false

	c.logger.Info(context.Background(), "Clock stopped")
	return nil
}

// run sleeps until each upcoming boundary and emits the local time
func (c *ClockServiceImpl) run(ctx context.Context) {
	defer c.wg.Done()

	for {
		now := time.Now()
		next := now.Truncate(c.tickInterval).Add(c.tickInterval)

		timer := time.NewTimer(time.Until(next))
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case woke := <-timer.C:
			// a late wakeup beyond a full interval means the process was
			// suspended or the wall clock jumped; resync silently after
			// noting it
			if skew := woke.Sub(next); skew > c.tickInterval {
				c.logger.Warn(ctx, "Clock skew detected, resynchronizing",
					domain.NewField("skew", skew.String()))
			}
			c.emit()
		}
	}
}

// emit sends the current local time without blocking; a slow consumer
// only ever misses intermediate ticks, never the latest one
func (c *ClockServiceImpl) emit() {
	dt := c.Localtime()
	select {
	case c.ticks <- dt:
	default:
		select {
		case <-c.ticks:
		default:
		}
		select {
		case c.ticks <- dt:
		default:
		}
	}
}
