// Package app provides the dependency injection container for the application.
package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/runoshun/timetrack/internal/domain"
	"github.com/runoshun/timetrack/internal/infra/backup"
	"github.com/runoshun/timetrack/internal/infra/config"
	"github.com/runoshun/timetrack/internal/infra/csvstore"
	"github.com/runoshun/timetrack/internal/infra/logging"
	"github.com/runoshun/timetrack/internal/timer"
	"github.com/runoshun/timetrack/internal/usecase"
	"github.com/runoshun/timetrack/internal/usecase/shared"
)

// Config holds the application paths, all rooted in one data directory.
type Config struct {
	DataDir      string // Root data directory
	SettingsPath string // Path to settings.toml
	LogsDir      string // Path to the operation log directory
	BackupDir    string // Path to the backup directory
}

// NewConfig builds the path layout for a data directory.
func NewConfig(dataDir string) Config {
	return Config{
		DataDir:      dataDir,
		SettingsPath: filepath.Join(dataDir, "settings.toml"),
		LogsDir:      filepath.Join(dataDir, "logs"),
		BackupDir:    filepath.Join(dataDir, "backups"),
	}
}

// DefaultDataDir resolves the data directory: $TIMETRACK_DATA_DIR if set,
// otherwise ~/.timetrack.
func DefaultDataDir() (string, error) {
	if dir := os.Getenv("TIMETRACK_DATA_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".timetrack"), nil
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Logs     domain.LogRepository
	Tasks    domain.TaskRepository
	Schedule domain.ScheduleRepository
	Clock    domain.Clock

	// Pointer fields
	Store    *csvstore.Store
	Backups  *backup.Manager
	Logger   *logging.Logger
	Settings *config.Settings

	// Configuration
	Config Config
}

// New creates a Container rooted at dataDir. It loads settings, opens the
// store and runs the repair pass before anything reads the tables.
func New(dataDir string) (*Container, error) {
	cfg := NewConfig(dataDir)

	settings, err := config.Load(cfg.SettingsPath)
	if err != nil {
		return nil, err
	}

	logger := logging.New(cfg.LogsDir, logging.ParseLevel(settings.Log.Level))
	clock := domain.RealClock{}

	store := csvstore.New(cfg.DataDir, logger)
	if err := store.Init(); err != nil {
		return nil, err
	}

	return &Container{
		Logs:     store.Logs(),
		Tasks:    store.Tasks(),
		Schedule: store.Schedule(),
		Clock:    clock,
		Store:    store,
		Backups:  backup.New(cfg.BackupDir, clock, logger),
		Logger:   logger,
		Settings: &settings,
		Config:   cfg,
	}, nil
}

// Close releases the container's resources.
func (c *Container) Close() error {
	if c.Logger != nil {
		return c.Logger.Close()
	}
	return nil
}

// NewTimer builds an interval timer from the loaded settings.
func (c *Container) NewTimer() *timer.Timer {
	return timer.New(c.Settings.TimerConfig(), c.Clock)
}

func (c *Container) totals() *shared.Totals {
	return shared.NewTotals(c.Logs, c.Tasks, c.Logger)
}

// UseCase factory methods

// LogTimeUseCase returns a new LogTime use case.
func (c *Container) LogTimeUseCase() *usecase.LogTime {
	return usecase.NewLogTime(c.Logs, c.totals())
}

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks, c.Clock)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// BulkEditTimeLogsUseCase returns a new BulkEditTimeLogs use case.
func (c *Container) BulkEditTimeLogsUseCase() *usecase.BulkEditTimeLogs {
	return usecase.NewBulkEditTimeLogs(c.Logs, c.totals())
}

// RecomputeTotalsUseCase returns a new RecomputeTotals use case.
func (c *Container) RecomputeTotalsUseCase() *usecase.RecomputeTotals {
	return usecase.NewRecomputeTotals(c.totals())
}

// AddScheduleBlockUseCase returns a new AddScheduleBlock use case.
func (c *Container) AddScheduleBlockUseCase() *usecase.AddScheduleBlock {
	return usecase.NewAddScheduleBlock(c.Schedule)
}

// UpdateScheduleBlockUseCase returns a new UpdateScheduleBlock use case.
func (c *Container) UpdateScheduleBlockUseCase() *usecase.UpdateScheduleBlock {
	return usecase.NewUpdateScheduleBlock(c.Schedule)
}

// DeleteScheduleBlockUseCase returns a new DeleteScheduleBlock use case.
func (c *Container) DeleteScheduleBlockUseCase() *usecase.DeleteScheduleBlock {
	return usecase.NewDeleteScheduleBlock(c.Schedule)
}

// ListScheduleBlocksUseCase returns a new ListScheduleBlocks use case.
func (c *Container) ListScheduleBlocksUseCase() *usecase.ListScheduleBlocks {
	return usecase.NewListScheduleBlocks(c.Schedule)
}

// TaskStatisticsUseCase returns a new TaskStatistics use case.
func (c *Container) TaskStatisticsUseCase() *usecase.TaskStatistics {
	return usecase.NewTaskStatistics(c.Logs, c.Clock)
}

// DataSummaryUseCase returns a new DataSummary use case.
func (c *Container) DataSummaryUseCase() *usecase.DataSummary {
	return usecase.NewDataSummary(
		c.Logs,
		c.Tasks,
		filepath.Join(c.Config.DataDir, csvstore.TimeLogsFileName),
		filepath.Join(c.Config.DataDir, csvstore.TasksFileName),
		c.Config.SettingsPath,
	)
}

// ValidateIntegrityUseCase returns a new ValidateIntegrity use case.
func (c *Container) ValidateIntegrityUseCase() *usecase.ValidateIntegrity {
	return usecase.NewValidateIntegrity(c.Logs, c.Tasks, c.Clock)
}
