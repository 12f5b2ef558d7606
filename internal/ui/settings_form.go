package ui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/services"
)

// SettingsFormResult contains the result of the settings form
type SettingsFormResult struct {
	Cancelled bool
	Error     error
	Settings  domain.Settings
}

// SettingsForm edits the tracker settings and applies them on submit
type SettingsForm struct {
	Completed        bool
	breakTime        string
	form             *huh.Form
	playSound        bool
	result           SettingsFormResult
	showNotification bool
	tracker          *services.Tracker
	workTime         string
}

// NewSettingsForm creates a settings form prefilled from the tracker
func NewSettingsForm(tracker *services.Tracker) *SettingsForm {
	current := tracker.Settings().Current()
	sf := &SettingsForm{
		breakTime:        strconv.Itoa(current.BreakTime),
		playSound:        current.PlaySound,
		showNotification: current.ShowNotification,
		tracker:          tracker,
		workTime:         strconv.Itoa(current.WorkTime),
	}

	sf.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Work time").
				Description("Minutes").
				Value(&sf.workTime).
				Validate(validateInt(1, domain.MaxDuration)),
			huh.NewInput().
				Title("Break time").
				Description("Minutes").
				Value(&sf.breakTime).
				Validate(validateInt(1, domain.MaxDuration)),
			huh.NewConfirm().
				Title("Play sound").
				Value(&sf.playSound),
			huh.NewConfirm().
				Title("Show notification").
				Value(&sf.showNotification),
		),
	)

	return sf
}

func (sf *SettingsForm) Init() tea.Cmd {
	return sf.form.Init()
}

func (sf *SettingsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			sf.result.Cancelled = true
			sf.Completed = true
			return sf, nil
		}
	}

	form, cmd := sf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		sf.form = f
	}

	if sf.form.State == huh.StateCompleted {
		sf.Completed = true
		if err := sf.apply(); err != nil {
			logging.Logger.Error("Failed to apply settings", "error", err)
			sf.result.Error = err
		}
		return sf, nil
	}

	return sf, cmd
}

func (sf *SettingsForm) View() string {
	return sf.form.View()
}

// Result returns the form result
func (sf *SettingsForm) Result() SettingsFormResult {
	return sf.result
}

func (sf *SettingsForm) apply() error {
	workTime, _ := strconv.Atoi(strings.TrimSpace(sf.workTime))
	breakTime, _ := strconv.Atoi(strings.TrimSpace(sf.breakTime))

	settings := domain.Settings{
		BreakTime:        breakTime,
		PlaySound:        sf.playSound,
		ShowNotification: sf.showNotification,
		WorkTime:         workTime,
	}
	sf.result.Settings = settings

	err := sf.tracker.UpdateSettings(context.Background(), settings)
	if errors.Is(err, domain.ErrTimerRunning) {
		return fmt.Errorf("settings saved, the running countdown keeps its length until the next session: %w", err)
	}
	return err
}
