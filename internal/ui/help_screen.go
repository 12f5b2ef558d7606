package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/theme"
)

// HelpScreen displays keyboard shortcuts organized by category
type HelpScreen struct {
	Completed   bool
	content     string
	initialized bool
	keys        *KeyMap
	viewport    viewport.Model
}

func renderShortcut(key, description string) string {
	return theme.HelpKeyStyle.Render(key) + theme.HelpDescStyle.Render(description) + "\n"
}

func renderBinding(binding key.Binding) string {
	help := binding.Help()
	return renderShortcut(help.Key, help.Desc)
}

func buildHelpContent(keys *KeyMap) string {
	var b strings.Builder

	b.WriteString(theme.HelpGroupStyle.Render("Session") + "\n")
	b.WriteString(renderBinding(keys.Session.Work))
	b.WriteString(renderBinding(keys.Session.FreeWork))
	b.WriteString(renderBinding(keys.Session.Break))
	b.WriteString(renderBinding(keys.Session.Idle))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Backlog") + "\n")
	b.WriteString(renderBinding(keys.Backlog.Add))
	b.WriteString(renderBinding(keys.Backlog.Complete))
	b.WriteString(renderBinding(keys.Backlog.Delete))
	b.WriteString(renderBinding(keys.Backlog.ShowCompleted))
	b.WriteString(renderBinding(keys.Navigation.Up))
	b.WriteString(renderBinding(keys.Navigation.Down))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("Application") + "\n")
	b.WriteString(renderBinding(keys.Application.Settings))
	b.WriteString(renderBinding(keys.Application.ToggleView))
	b.WriteString(renderBinding(keys.Application.Help))
	b.WriteString(renderBinding(keys.Application.Quit))
	b.WriteString(renderBinding(keys.Application.ForceQuit))

	b.WriteString("\n" + theme.HelpGroupStyle.Render("State Indicators") + "\n")
	b.WriteString(renderShortcut(domain.SymbolWork, "working"))
	b.WriteString(renderShortcut(domain.SymbolBreak, "on a break"))
	b.WriteString(renderShortcut(domain.SymbolIdle, "idle"))
	b.WriteString(renderShortcut("-MM:SS", "countdown expired, running over"))

	return b.String()
}

// NewHelpScreen creates a new help screen component
func NewHelpScreen(keys *KeyMap) *HelpScreen {
	return &HelpScreen{
		content:  buildHelpContent(keys),
		keys:     keys,
		viewport: viewport.New(0, 0),
	}
}

func (h *HelpScreen) Init() tea.Cmd {
	h.viewport.KeyMap.Up.SetKeys("up", "k")
	h.viewport.KeyMap.Down.SetKeys("down", "j")
	return nil
}

func (h *HelpScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// Dialog header: 4 lines, footer: 2 lines
		h.viewport.Width = msg.Width
		h.viewport.Height = max(msg.Height-6, 5)
		h.viewport.SetContent(h.content)
		h.initialized = true
		return h, nil

	case tea.KeyMsg:
		if msg.String() == "esc" || key.Matches(msg, h.keys.Application.Quit, h.keys.Application.Help) {
			h.Completed = true
			return h, nil
		}
	}

	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return h, cmd
}

func (h *HelpScreen) View() string {
	if !h.initialized {
		return "Loading help..."
	}
	return h.viewport.View() + "\n\n" + theme.HelpStyle.Render("Press esc, q, h or ? to close • ↑↓/jk to scroll")
}
