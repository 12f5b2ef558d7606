package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"

	"github.com/breakwise/breakwise/internal/adapters/notify"
	"github.com/breakwise/breakwise/internal/adapters/sound"
	"github.com/breakwise/breakwise/internal/adapters/storage"
	"github.com/breakwise/breakwise/internal/adapters/ticker"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/services"
	"github.com/breakwise/breakwise/internal/ui"
)

type sessionResourcesKey struct{}

// sessionResources are opened by teaHandler and released once the
// program of the session has exited
type sessionResources struct {
	repo      *storage.SQLiteRepository
	sessionID string
	startTime time.Time
	tracker   *services.Tracker
}

func (r *sessionResources) close() error {
	var errs []error
	if r.tracker != nil {
		errs = append(errs, r.tracker.Close())
	}
	if r.repo != nil {
		errs = append(errs, r.repo.Close())
	}
	return errors.Join(errs...)
}

// teaHandler creates a tracker and a TUI model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	res := &sessionResources{sessionID: sessionID, startTime: time.Now()}
	sess.Context().SetValue(sessionResourcesKey{}, res)

	repo, err := storage.NewSQLiteRepository(s.dbPath)
	if err != nil {
		logging.Logger.Error("Failed to open database for SSH session", "error", err, "session_id", sessionID)
		return errorModel{err: err}, nil
	}
	res.repo = repo

	loop := ticker.NewLoop()
	tracker, err := services.NewTracker(context.Background(), services.TrackerDeps{
		Notifier:   notify.NewTerminalNotifier(sess),
		Repository: repo,
		Sound:      sound.NewBellPlayer(sess),
		TickSource: loop.Factory(),
	})
	if err != nil {
		logging.Logger.Error("Failed to create tracker for SSH session", "error", err, "session_id", sessionID)
		return errorModel{err: err}, nil
	}
	res.tracker = tracker

	model := ui.NewModel(ui.ModelOptions{
		ActivityService: services.NewActivityService(repo, repo),
		Keys:            s.keys,
		Loop:            loop,
		TaskService:     services.NewTaskService(repo),
		Tracker:         tracker,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// releaseMiddleware closes the tracker and the database of a session after
// its program has exited. The tracker idles first, so a session dropped
// mid-countdown still records its activity.
func (s *Server) releaseMiddleware() wish.Middleware {
	return func(next ssh.Handler) ssh.Handler {
		return func(sess ssh.Session) {
			next(sess)

			res, ok := sess.Context().Value(sessionResourcesKey{}).(*sessionResources)
			if !ok {
				return
			}
			duration := time.Since(res.startTime)
			if err := res.close(); err != nil {
				logging.Logger.Error("Failed to release SSH session",
					"error", err,
					"session_id", res.sessionID,
					"duration", duration.String())
			}
			logging.Logger.Info("SSH session ended",
				"session_id", res.sessionID,
				"duration", duration.String())
		}
	}
}

// errorModel displays an error and quits
type errorModel struct {
	err error
}

func (e errorModel) Init() tea.Cmd {
	return nil
}

func (e errorModel) Update(tea.Msg) (tea.Model, tea.Cmd) {
	return e, tea.Quit
}

func (e errorModel) View() string {
	return fmt.Sprintf("Error: %v\n", e.err)
}
