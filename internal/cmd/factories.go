package cmd

import (
	"context"

	adapternotify "github.com/breakwise/breakwise/internal/adapters/notify"
	adaptersound "github.com/breakwise/breakwise/internal/adapters/sound"
	adapterstorage "github.com/breakwise/breakwise/internal/adapters/storage"
	"github.com/breakwise/breakwise/internal/ports"
	"github.com/breakwise/breakwise/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	ActivityService *services.ActivityService
	TaskService     *services.TaskService

	// Adapters
	Notifier    ports.Notifier
	SoundPlayer ports.SoundPlayer

	DBPath string
	repo   *adapterstorage.SQLiteRepository
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(dbPath string) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(dbPath)
	if err != nil {
		return nil, err
	}

	return &Container{
		ActivityService: services.NewActivityService(repo, repo),
		TaskService:     services.NewTaskService(repo),
		Notifier:        adapternotify.NewDesktopNotifier(),
		SoundPlayer:     adaptersound.NewPlayer(),
		DBPath:          dbPath,
		repo:            repo,
	}, nil
}

// NewTracker wires a tracker on the container's database
func (c *Container) NewTracker(ctx context.Context, ticks ports.TickSourceFactory) (*services.Tracker, error) {
	return services.NewTracker(ctx, services.TrackerDeps{
		Notifier:   c.Notifier,
		Repository: c.repo,
		Sound:      c.SoundPlayer,
		TickSource: ticks,
	})
}

// NewSettingsService returns a settings provider backed by the database
func (c *Container) NewSettingsService() *services.SettingsService {
	return services.NewSettingsService(c.repo)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.repo != nil {
		return c.repo.Close()
	}
	return nil
}
