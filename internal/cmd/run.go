package cmd

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/breakwise/breakwise/internal/adapters/lock"
	"github.com/breakwise/breakwise/internal/adapters/ticker"
	"github.com/breakwise/breakwise/internal/config"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ui"
)

// RunCmd starts the TUI application
type RunCmd struct {
	Dev             bool `help:"Enable development mode (shows version info in dialogs)"`
	ErrorClearDelay int  `help:"Seconds before error messages auto-clear" default:"10"`
}

// Run executes the TUI
func (r *RunCmd) Run(cli *CLI) error {
	runID := uuid.New().String()
	logging.Logger.Info("Starting breakwise TUI", "run_id", runID, "db_path", cli.Container.DBPath)

	fileLock, err := lock.Acquire(config.GetLockPath())
	if err != nil {
		return err
	}
	defer fileLock.Release()

	keys, err := cli.keyBindings()
	if err != nil {
		return err
	}

	loop := ticker.NewLoop()
	tracker, err := cli.Container.NewTracker(context.Background(), loop.Factory())
	if err != nil {
		return fmt.Errorf("failed to start tracker: %w", err)
	}
	defer func() {
		if err := tracker.Close(); err != nil {
			logging.Logger.Error("Failed to close tracker", "error", err)
		}
	}()

	p := tea.NewProgram(
		ui.NewModel(ui.ModelOptions{
			ActivityService: cli.Container.ActivityService,
			DevMode:         r.Dev,
			ErrorClearDelay: time.Duration(r.ErrorClearDelay) * time.Second,
			Keys:            keys,
			Loop:            loop,
			TaskService:     cli.Container.TaskService,
			Tracker:         tracker,
		}),
		tea.WithAltScreen(),
	)

	logging.Logger.Info("Starting TUI program", "run_id", runID)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("TUI program error", "error", err)
		return fmt.Errorf("error running program: %w", err)
	}

	logging.Logger.Info("TUI program exited normally", "run_id", runID)
	return nil
}
