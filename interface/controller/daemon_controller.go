package controller

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"sync"
	"syscall"

	"github.com/getlantern/systray"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
	usecase "github.com/farkasdvd/indicator-datetime/usecase/interface"
)

// DaemonController manages the indicator daemon lifecycle: the PID file,
// the clock service, the system tray, and graceful shutdown on signals
type DaemonController struct {
	config       *config.AppConfig
	clockService usecase.ClockService
	systrayCtrl  *SystrayController
	logger       domain.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	pidFile string
}

// NewDaemonController creates a new daemon controller
func NewDaemonController(
	cfg *config.AppConfig,
	clockService usecase.ClockService,
	systrayCtrl *SystrayController,
	logger domain.Logger,
) *DaemonController {
	return &DaemonController{
		config:       cfg,
		clockService: clockService,
		systrayCtrl:  systrayCtrl,
		logger:       logger,
	}
}

// Run starts the daemon and blocks until the indicator quits. The system
// tray must run on the main thread.
func (d *DaemonController) Run() error {
	d.ctx, d.cancel = context.WithCancel(context.Background())

	d.logger.Info(d.ctx, "Starting indicator daemon")

	if err := d.writePIDFile(); err != nil {
		return fmt.Errorf("failed to write PID file: %w", err)
	}

	if err := d.clockService.Start(); err != nil {
		_ = d.removePIDFile()
		return fmt.Errorf("failed to start clock: %w", err)
	}

	d.setupSignalHandlers()

	systray.Run(func() {
		d.systrayCtrl.OnReady()
	}, func() {
		d.systrayCtrl.OnExit()
		d.shutdown()
	})

	return nil
}

// shutdown stops the clock and removes the PID file after systray exits
func (d *DaemonController) shutdown() {
	d.cancel()

	if err := d.clockService.Stop(); err != nil {
		d.logger.Error(d.ctx, "Failed to stop clock", domain.NewField("error", err.Error()))
	}

	d.wg.Wait()

	if err := d.removePIDFile(); err != nil {
		d.logger.Error(d.ctx, "Failed to remove PID file", domain.NewField("error", err.Error()))
	}

	d.logger.Info(d.ctx, "Daemon stopped")
}

// setupSignalHandlers quits the tray loop on SIGINT/SIGTERM
func (d *DaemonController) setupSignalHandlers() {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		select {
		case sig := <-sigChan:
			d.logger.Info(d.ctx, "Received signal, shutting down",
				domain.NewField("signal", sig.String()))
			systray.Quit()
		case <-d.ctx.Done():
		}
	}()
}

// writePIDFile writes the daemon PID file
func (d *DaemonController) writePIDFile() error {
	d.pidFile = "/tmp/indicator-datetime.pid"
	if d.config.Daemon != nil && d.config.Daemon.PidFile != "" {
		d.pidFile = d.config.Daemon.PidFile
	}

	pid := os.Getpid()
	if err := os.WriteFile(d.pidFile, []byte(strconv.Itoa(pid)), 0644); err != nil {
		return domain.ErrFileOperationWithCause("write", d.pidFile, err)
	}

	d.logger.Debug(d.ctx, "PID file written",
		domain.NewField("path", d.pidFile),
		domain.NewField("pid", pid))
	return nil
}

// removePIDFile removes the daemon PID file
func (d *DaemonController) removePIDFile() error {
	if d.pidFile == "" {
		return nil
	}
	if err := os.Remove(d.pidFile); err != nil && !os.IsNotExist(err) {
		return domain.ErrFileOperationWithCause("remove", d.pidFile, err)
	}
	return nil
}
