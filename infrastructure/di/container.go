package di

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/farkasdvd/indicator-datetime/domain"
	"github.com/farkasdvd/indicator-datetime/domain/repository"
	"github.com/farkasdvd/indicator-datetime/infrastructure/config"
	"github.com/farkasdvd/indicator-datetime/infrastructure/logging"
	infraRepo "github.com/farkasdvd/indicator-datetime/infrastructure/repository"
	"github.com/farkasdvd/indicator-datetime/infrastructure/service"
	"github.com/farkasdvd/indicator-datetime/interface/cli"
	"github.com/farkasdvd/indicator-datetime/interface/controller"
	"github.com/farkasdvd/indicator-datetime/interface/presenter"
	"github.com/farkasdvd/indicator-datetime/usecase/impl"
	usecase "github.com/farkasdvd/indicator-datetime/usecase/interface"
)

// Container is the dependency injection container
type Container struct {
	// Configuration
	config     *config.AppConfig
	configRepo repository.ConfigRepository

	// Repositories
	appointmentRepo repository.AppointmentRepository

	// Services
	timezoneService repository.TimezoneService

	// Use Cases
	clockService     usecase.ClockService
	formatterService usecase.FormatterService
	plannerService   usecase.PlannerService

	// Presenters
	consolePresenter presenter.ConsolePresenter
	jsonPresenter    presenter.JSONPresenter

	// Controllers
	cliController     *cli.CLIController
	systrayController *controller.SystrayController
	daemonController  *controller.DaemonController

	// Logging
	loggerFactory domain.LoggerFactory
	logger        domain.Logger

	// Options
	debugMode bool
}

// ContainerOption is a function that configures the container
type ContainerOption func(*Container)

// WithDebugMode sets the debug mode
func WithDebugMode(debug bool) ContainerOption {
	return func(c *Container) {
		c.debugMode = debug
	}
}

// NewContainer creates a new DI container
func NewContainer(opts ...ContainerOption) (*Container, error) {
	container := &Container{}

	for _, opt := range opts {
		opt(container)
	}

	if err := container.initConfig(); err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := container.initLogging(); err != nil {
		return nil, fmt.Errorf("failed to initialize logging: %w", err)
	}

	if err := container.initRepositories(); err != nil {
		return nil, fmt.Errorf("failed to initialize repositories: %w", err)
	}

	if err := container.initDomainServices(); err != nil {
		return nil, fmt.Errorf("failed to initialize domain services: %w", err)
	}

	if err := container.initUseCases(); err != nil {
		return nil, fmt.Errorf("failed to initialize use cases: %w", err)
	}

	if err := container.initPresenters(); err != nil {
		return nil, fmt.Errorf("failed to initialize presenters: %w", err)
	}

	if err := container.initControllers(); err != nil {
		return nil, fmt.Errorf("failed to initialize controllers: %w", err)
	}

	return container, nil
}

// initConfig loads configuration: defaults, then the JSON config file,
// then DATETIME_* environment overrides
func (c *Container) initConfig() error {
	c.configRepo = infraRepo.NewJSONConfigRepository()

	cfg := config.DefaultConfig()

	stored, err := c.configRepo.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to load config file, using defaults: %v\n", err)
	} else if stored != nil {
		cfg = stored
	}

	if err := cfg.ApplyEnvironment(); err != nil {
		return fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if c.debugMode {
		cfg.Logging.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	c.config = cfg
	return nil
}

// initLogging initializes logging components
func (c *Container) initLogging() error {
	c.loggerFactory = logging.NewLoggerFactory(c.config.Logging)
	c.logger = c.loggerFactory.CreateLogger("indicator-datetime")
	return nil
}

// initRepositories initializes repository implementations
func (c *Container) initRepositories() error {
	dbPath := c.config.Planner.DatabasePath
	if dbPath == "" {
		dbPath = filepath.Join(filepath.Dir(c.configRepo.GetConfigPath()), "appointments.db")
	}

	if err := c.configRepo.EnsureConfigDir(); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	appointmentRepo, err := infraRepo.NewSQLiteAppointmentRepository(dbPath)
	if err != nil {
		return fmt.Errorf("failed to open appointment database: %w", err)
	}
	c.appointmentRepo = appointmentRepo

	return nil
}

// initDomainServices initializes domain services
func (c *Container) initDomainServices() error {
	c.timezoneService = service.NewTimezoneServiceImpl(c.config, c.CreateLogger("timezone"))
	return nil
}

// initUseCases initializes use case implementations
func (c *Container) initUseCases() error {
	c.clockService = impl.NewClockServiceImpl(c.timezoneService, c.CreateLogger("clock"))
	c.formatterService = impl.NewFormatterServiceImpl(c.config.Clock)
	c.plannerService = impl.NewPlannerServiceImpl(
		c.appointmentRepo,
		c.timezoneService,
		c.config.Planner.LookaheadDays,
	)
	return nil
}

// initPresenters initializes presenter implementations
func (c *Container) initPresenters() error {
	c.consolePresenter = presenter.NewConsolePresenter()
	c.jsonPresenter = presenter.NewJSONPresenter()
	return nil
}

// initControllers initializes controller implementations
func (c *Container) initControllers() error {
	c.cliController = cli.NewCLIController(
		c.clockService,
		c.formatterService,
		c.plannerService,
		c.timezoneService,
		c.consolePresenter,
		c.jsonPresenter,
	)
	return nil
}

// InitDaemonComponents initializes the tray and daemon controllers on demand
func (c *Container) InitDaemonComponents() error {
	if c.daemonController != nil {
		return nil
	}

	c.systrayController = controller.NewSystrayController(
		c.clockService,
		c.formatterService,
		c.plannerService,
		c.timezoneService,
		c.CreateLogger("systray"),
	)

	c.daemonController = controller.NewDaemonController(
		c.config,
		c.clockService,
		c.systrayController,
		c.CreateLogger("daemon"),
	)

	return nil
}

// Close releases container-held resources
func (c *Container) Close() error {
	if c.appointmentRepo != nil {
		return c.appointmentRepo.Close()
	}
	return nil
}

// GetConfig returns the application configuration
func (c *Container) GetConfig() *config.AppConfig {
	return c.config
}

// GetConfigRepository returns the config repository
func (c *Container) GetConfigRepository() repository.ConfigRepository {
	return c.configRepo
}

// GetAppointmentRepository returns the appointment repository
func (c *Container) GetAppointmentRepository() repository.AppointmentRepository {
	return c.appointmentRepo
}

// GetTimezoneService returns the timezone service
func (c *Container) GetTimezoneService() repository.TimezoneService {
	return c.timezoneService
}

// GetClockService returns the clock service
func (c *Container) GetClockService() usecase.ClockService {
	return c.clockService
}

// GetFormatterService returns the formatter service
func (c *Container) GetFormatterService() usecase.FormatterService {
	return c.formatterService
}

// GetPlannerService returns the planner service
func (c *Container) GetPlannerService() usecase.PlannerService {
	return c.plannerService
}

// GetConsolePresenter returns the console presenter
func (c *Container) GetConsolePresenter() presenter.ConsolePresenter {
	return c.consolePresenter
}

// GetJSONPresenter returns the JSON presenter
func (c *Container) GetJSONPresenter() presenter.JSONPresenter {
	return c.jsonPresenter
}

// GetCLIController returns the CLI controller
func (c *Container) GetCLIController() *cli.CLIController {
	return c.cliController
}

// GetSystrayController returns the systray controller
func (c *Container) GetSystrayController() *controller.SystrayController {
	return c.systrayController
}

// GetDaemonController returns the daemon controller
func (c *Container) GetDaemonController() *controller.DaemonController {
	return c.daemonController
}

// GetLoggerFactory returns the logger factory
func (c *Container) GetLoggerFactory() domain.LoggerFactory {
	return c.loggerFactory
}

// GetLogger returns the main logger
func (c *Container) GetLogger() domain.Logger {
	return c.logger
}

// CreateLogger creates a new logger for a specific component
func (c *Container) CreateLogger(component string) domain.Logger {
	if c.loggerFactory == nil {
		return &logging.NoOpLogger{}
	}
	return c.loggerFactory.CreateLogger(component)
}
