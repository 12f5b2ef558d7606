package ui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/breakwise/breakwise/internal/adapters/ticker"
	"github.com/breakwise/breakwise/internal/config"
	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/services"
	"github.com/breakwise/breakwise/internal/theme"
)

type uiState int

const (
	stateMain uiState = iota
	stateAddingTask
	stateConfirming
	stateEditingSettings
	stateHelp
)

type viewMode int

const (
	viewBacklog viewMode = iota
	viewLog
)

// headerLines is the height of everything above the tables
const headerLines = 9

// ErrNoTaskSelected is shown when work is requested on an empty backlog
var ErrNoTaskSelected = errors.New("no task selected, add one with a or work without a task with W")

// ModelOptions configures a Model
type ModelOptions struct {
	ActivityService *services.ActivityService
	DevMode         bool
	ErrorClearDelay time.Duration
	Keys            config.KeyBindingsConfig
	Loop            *ticker.Loop // nil when ticks are driven elsewhere
	TaskService     *services.TaskService
	Tracker         *services.Tracker
}

// Model is the breakwise TUI: a countdown clock above the backlog or the log
type Model struct {
	backlog         *Backlog
	confirmDialog   *Dialog
	devMode         bool
	errorManager    *ErrorManager
	finishedTasks   []domain.Task
	height          int
	help            help.Model
	helpScreen      *Dialog
	keys            KeyMap
	logView         *LogView
	loop            *ticker.Loop
	mode            viewMode
	onConfirm       confirmAction
	pendingErrors   []error
	quitting        bool
	settingsDialog  *Dialog
	state           uiState
	taskDialog      *Dialog
	taskService     *services.TaskService
	tracker         *services.Tracker
	width           int
}

// NewModel creates the TUI model and loads the backlog
func NewModel(opts ModelOptions) *Model {
	keys := NewKeyMap(opts.Keys)
	m := &Model{
		backlog:      NewBacklog(opts.TaskService, keys),
		devMode:      opts.DevMode,
		errorManager: NewErrorManager(opts.ErrorClearDelay),
		help:         help.New(),
		keys:         keys,
		logView:      NewLogView(opts.ActivityService, keys),
		loop:         opts.Loop,
		state:        stateMain,
		taskService:  opts.TaskService,
		tracker:      opts.Tracker,
	}

	opts.Tracker.Recorder().SetErrorHandler(func(err error) {
		m.pendingErrors = append(m.pendingErrors, err)
	})
	opts.Tracker.Recorder().SetWorkFinishedHandler(func(task domain.Task) {
		m.finishedTasks = append(m.finishedTasks, task)
	})

	if err := m.backlog.Reload(context.Background()); err != nil {
		logging.Logger.Warn("Failed to load backlog", "error", err)
		m.pendingErrors = append(m.pendingErrors, fmt.Errorf("failed to load backlog: %w", err))
	}

	return m
}

func (m *Model) Init() tea.Cmd {
	return m.flush(nil)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case ticker.TickMsg:
		if m.loop == nil {
			return m, nil
		}
		return m, m.flush(m.loop.Deliver(msg))

	case clearErrorMsg:
		m.errorManager.HandleClear(msg)
		return m, nil

	case stateChangedMsg:
		m.refreshAfterStateChange()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.backlog.SetSize(msg.Width, msg.Height-headerLines)
		m.logView.SetSize(msg.Width, msg.Height-headerLines)
		if m.helpScreen != nil {
			m.helpScreen.Update(msg)
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMain:
		cmd = m.updateMain(msg)
	case stateAddingTask:
		cmd = m.updateAddingTask(msg)
	case stateConfirming:
		cmd = m.updateConfirming(msg)
	case stateEditingSettings:
		cmd = m.updateEditingSettings(msg)
	case stateHelp:
		cmd = m.updateHelp(msg)
	}
	return m, m.flush(cmd)
}

// flush schedules ticks of timers started during the update, surfaces
// errors reported by the activity recorder and asks about finished tasks
func (m *Model) flush(cmd tea.Cmd) tea.Cmd {
	cmds := []tea.Cmd{cmd}
	if len(m.finishedTasks) > 0 && m.state == stateMain && !m.quitting {
		task := m.finishedTasks[0]
		m.finishedTasks = m.finishedTasks[1:]
		cmds = append(cmds, m.askTaskCompleted(task))
	}
	if m.loop != nil {
		cmds = append(cmds, m.loop.Pending())
	}
	if len(m.pendingErrors) > 0 {
		cmds = append(cmds, m.errorManager.SetError(errors.Join(m.pendingErrors...)))
		m.pendingErrors = nil
	}
	return tea.Batch(cmds...)
}

func (m *Model) updateMain(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	ctx := context.Background()

	switch {
	case key.Matches(keyMsg, m.keys.Application.ForceQuit), key.Matches(keyMsg, m.keys.Application.Quit):
		return m.quit()

	case key.Matches(keyMsg, m.keys.Application.Help):
		m.helpScreen = NewDialog("Help", NewHelpScreen(&m.keys), m.devMode)
		m.state = stateHelp
		initCmd := m.helpScreen.Init()
		_, sizeCmd := m.helpScreen.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
		return tea.Batch(initCmd, sizeCmd)

	case key.Matches(keyMsg, m.keys.Application.Settings):
		m.settingsDialog = NewDialog("Settings", NewSettingsForm(m.tracker), m.devMode)
		m.state = stateEditingSettings
		return m.settingsDialog.Init()

	case key.Matches(keyMsg, m.keys.Application.ToggleView):
		if m.mode == viewBacklog {
			m.mode = viewLog
			if err := m.logView.Reload(ctx); err != nil {
				return m.errorManager.SetError(err)
			}
		} else {
			m.mode = viewBacklog
		}
		return nil

	case key.Matches(keyMsg, m.keys.Session.Work):
		task, ok := m.backlog.Selected()
		if !ok || m.mode != viewBacklog {
			return m.errorManager.SetError(ErrNoTaskSelected)
		}
		return m.changeState(m.tracker.Work(ctx, &task.ID))

	case key.Matches(keyMsg, m.keys.Session.FreeWork):
		return m.changeState(m.tracker.Work(ctx, nil))

	case key.Matches(keyMsg, m.keys.Session.Break):
		return m.changeState(m.tracker.Break())

	case key.Matches(keyMsg, m.keys.Session.Idle):
		return m.changeState(m.tracker.Idle())

	case key.Matches(keyMsg, m.keys.Backlog.Add):
		m.taskDialog = NewDialog("Add Task", NewTaskForm(m.taskService), m.devMode)
		m.state = stateAddingTask
		return m.taskDialog.Init()

	case key.Matches(keyMsg, m.keys.Backlog.Complete):
		return m.confirmOnSelected("Did you complete the task %s?", func(t domain.Task) error {
			_, err := m.taskService.Complete(ctx, t.ID)
			return err
		})

	case key.Matches(keyMsg, m.keys.Backlog.Delete):
		return m.confirmOnSelected("Are you sure you want to remove %s?", func(t domain.Task) error {
			return m.taskService.Delete(ctx, t.ID)
		})

	case key.Matches(keyMsg, m.keys.Backlog.ShowCompleted):
		if err := m.backlog.ToggleCompleted(ctx); err != nil {
			return m.errorManager.SetError(err)
		}
		return nil
	}

	if m.mode == viewLog {
		return m.logView.Update(msg)
	}
	return m.backlog.Update(msg)
}

// changeState reports a failed transition or refreshes the views
func (m *Model) changeState(err error) tea.Cmd {
	if err != nil {
		logging.Logger.Warn("State change failed", "state", m.tracker.State(), "error", err)
		return m.errorManager.SetError(err)
	}
	state := m.tracker.State()
	return func() tea.Msg { return stateChangedMsg{state: state} }
}

func (m *Model) refreshAfterStateChange() {
	ctx := context.Background()
	if err := m.backlog.Reload(ctx); err != nil {
		m.pendingErrors = append(m.pendingErrors, err)
	}
	if m.mode == viewLog {
		if err := m.logView.Reload(ctx); err != nil {
			m.pendingErrors = append(m.pendingErrors, err)
		}
	}
}

// confirmOnSelected asks before running action on the selected task.
// The task bound to the running work session cannot be changed.
func (m *Model) confirmOnSelected(question string, action func(domain.Task) error) tea.Cmd {
	task, ok := m.backlog.Selected()
	if !ok || m.mode != viewBacklog {
		return m.errorManager.SetError(ErrNoTaskSelected)
	}
	if active := m.tracker.Machine().Task(); active != nil && active.ID == task.ID {
		return m.errorManager.SetError(fmt.Errorf("task %s is being worked on, switch to idle or break first", task.Name))
	}

	m.onConfirm = func() error { return action(task) }
	m.confirmDialog = NewDialog("Confirm", NewConfirmForm(fmt.Sprintf(question, task.Name)), m.devMode)
	m.state = stateConfirming
	return m.confirmDialog.Init()
}

// askTaskCompleted asks whether the task of a finished work session is done
func (m *Model) askTaskCompleted(task domain.Task) tea.Cmd {
	m.onConfirm = func() error {
		_, err := m.taskService.Complete(context.Background(), task.ID)
		return err
	}
	question := fmt.Sprintf("Did you complete the task %s?", task.Name)
	m.confirmDialog = NewDialog("Task finished", NewConfirmForm(question), m.devMode)
	m.state = stateConfirming
	return m.confirmDialog.Init()
}

func (m *Model) updateConfirming(msg tea.Msg) tea.Cmd {
	_, cmd := m.confirmDialog.Update(msg)

	content, ok := m.confirmDialog.Content().(*ConfirmForm)
	if !ok || !content.Completed {
		return cmd
	}

	action := m.onConfirm
	m.state = stateMain
	m.confirmDialog = nil
	m.onConfirm = nil

	if !content.Confirmed || action == nil {
		return nil
	}
	if err := action(); err != nil {
		return m.errorManager.SetError(err)
	}
	if err := m.backlog.Reload(context.Background()); err != nil {
		return m.errorManager.SetError(err)
	}
	return nil
}

func (m *Model) updateAddingTask(msg tea.Msg) tea.Cmd {
	_, cmd := m.taskDialog.Update(msg)

	content, ok := m.taskDialog.Content().(*TaskForm)
	if !ok || !content.Completed {
		return cmd
	}

	result := content.Result()
	m.state = stateMain
	m.taskDialog = nil

	if result.Error != nil {
		return m.errorManager.SetError(fmt.Errorf("failed to add task: %w", result.Error))
	}
	if !result.Cancelled {
		if err := m.backlog.Reload(context.Background()); err != nil {
			return m.errorManager.SetError(err)
		}
	}
	return nil
}

func (m *Model) updateEditingSettings(msg tea.Msg) tea.Cmd {
	_, cmd := m.settingsDialog.Update(msg)

	content, ok := m.settingsDialog.Content().(*SettingsForm)
	if !ok || !content.Completed {
		return cmd
	}

	result := content.Result()
	m.state = stateMain
	m.settingsDialog = nil

	if result.Error != nil {
		return m.errorManager.SetError(result.Error)
	}
	return nil
}

func (m *Model) updateHelp(msg tea.Msg) tea.Cmd {
	_, cmd := m.helpScreen.Update(msg)

	if content, ok := m.helpScreen.Content().(*HelpScreen); ok && content.Completed {
		m.state = stateMain
		m.helpScreen = nil
		return nil
	}
	return cmd
}

// quit idles the tracker first so the running activity is recorded
func (m *Model) quit() tea.Cmd {
	if err := m.tracker.Shutdown(); err != nil {
		logging.Logger.Error("Failed to idle before quitting", "error", err)
	}
	m.quitting = true
	return tea.Quit
}

// clockView renders the state symbol and the countdown label
func (m *Model) clockView() string {
	state := m.tracker.State()
	style := theme.StateStyle(state)
	if state != domain.StateIdle && m.tracker.SecondsLeft() <= 0 {
		style = theme.AlarmStyle
	}

	clock := style.Render(state.Symbol() + " " + m.tracker.Label())
	if task := m.tracker.Machine().Task(); task != nil {
		clock += "\n" + theme.NormalStyle.Render(task.Label())
	} else if state == domain.StateWork {
		clock += "\n" + theme.MutedStyle.Render("no task")
	}
	return theme.ClockStyle.Render(clock)
}

func (m *Model) footerView() string {
	if m.errorManager.HasError() {
		return theme.ErrorStyle.Render(formatErrorForDisplay(m.errorManager.GetError(), m.width))
	}
	return m.help.View(m.keys)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	switch m.state {
	case stateAddingTask:
		return m.taskDialog.View()
	case stateConfirming:
		return m.confirmDialog.View()
	case stateEditingSettings:
		return m.settingsDialog.View()
	case stateHelp:
		return m.helpScreen.View()
	}

	m.backlog.SetActive(activeTaskID(m.tracker))

	var body string
	if m.mode == viewLog {
		body = m.logView.View()
	} else {
		title := "Backlog"
		if m.backlog.ShowingCompleted() {
			title += " (all)"
		}
		body = theme.SubtitleStyle.Render(title) + "\n" + m.backlog.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		renderHeader(m.devMode, ""),
		m.clockView(),
		"",
		body,
		"",
		strings.TrimRight(m.footerView(), "\n"),
	)
}

func activeTaskID(t *services.Tracker) uint {
	if task := t.Machine().Task(); task != nil && t.State() == domain.StateWork {
		return task.ID
	}
	return 0
}
