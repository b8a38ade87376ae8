package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/farkasdvd/indicator-datetime/infrastructure/di"
	"github.com/farkasdvd/indicator-datetime/interface/presenter"
)

func main() {
	// Parse command line flags
	var (
		cliMode      = flag.Bool("cli", false, "Run in CLI mode (default is daemon mode when configured)")
		daemonMode   = flag.Bool("daemon", false, "Run the indicator daemon with the system tray clock")
		debugMode    = flag.Bool("debug", false, "Enable debug logging to stdout")
		jsonOutput   = flag.Bool("json", false, "Emit CLI output as JSON")
		showTimezone = flag.Bool("timezone", false, "Show the effective timezone instead of the clock")
		showUpcoming = flag.Bool("upcoming", false, "Show upcoming appointments instead of the clock")
		showVersion  = flag.Bool("version", false, "Print version information and exit")
	)
	flag.Parse()

	// version needs no configuration, so it skips container setup
	if *showVersion {
		presenter.NewConsolePresenter().PrintVersion()
		return
	}

	opts := []di.ContainerOption{}
	if *debugMode {
		opts = append(opts, di.WithDebugMode(true))
	}

	container, err := di.NewContainer(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = container.Close()
	}()

	config := container.GetConfig()

	// Determine mode based on flags and configuration
	runDaemon := *daemonMode
	if !*daemonMode && !*cliMode && config.Daemon != nil && config.Daemon.Enabled {
		runDaemon = true
	}

	if runDaemon {
		runDaemonMode(container)
		return
	}
	runCLIMode(container, *jsonOutput, *showTimezone, *showUpcoming)
}

// runCLIMode prints one of the indicator views and exits
func runCLIMode(container *di.Container, jsonOutput, showTimezone, showUpcoming bool) {
	cliController := container.GetCLIController()
	cliController.SetJSONOutput(jsonOutput)

	var err error
	switch {
	case showTimezone:
		err = cliController.ShowTimezone()
	case showUpcoming:
		err = cliController.ShowUpcoming()
	default:
		err = cliController.ShowClock()
	}
	if err != nil {
		container.GetConsolePresenter().PrintError(err)
		os.Exit(1)
	}
}

// runDaemonMode blocks running the system tray clock until quit
func runDaemonMode(container *di.Container) {
	if err := container.InitDaemonComponents(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize daemon: %v\n", err)
		os.Exit(1)
	}

	if err := container.GetDaemonController().Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Daemon failed: %v\n", err)
		os.Exit(1)
	}
}
