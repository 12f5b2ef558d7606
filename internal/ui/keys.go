package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/breakwise/breakwise/internal/config"
)

// KeyMap contains all keyboard shortcuts organized by context.
// It implements help.KeyMap for the bottom bar.
type KeyMap struct {
	Application ApplicationKeys
	Backlog     BacklogKeys
	Navigation  NavigationKeys
	Session     SessionKeys
}

// NewKeyMap creates a KeyMap; customKeys may be nil
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, customKeys),
		Backlog:     newBacklogKeys(defaults, customKeys),
		Navigation:  newNavigationKeys(defaults, customKeys),
		Session:     newSessionKeys(defaults, customKeys),
	}
}

// ShortHelp returns a curated list of key bindings for the bottom bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Session.Work,
		k.Session.Break,
		k.Session.Idle,
		k.Backlog.Add,
		k.Application.ToggleView,
		k.Application.Help,
		k.Application.Quit,
	}
}

// FullHelp groups every binding by context
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Session.Work, k.Session.FreeWork, k.Session.Break, k.Session.Idle},
		{k.Backlog.Add, k.Backlog.Complete, k.Backlog.Delete, k.Backlog.ShowCompleted},
		{k.Navigation.Up, k.Navigation.Down},
		{k.Application.Settings, k.Application.ToggleView, k.Application.Help, k.Application.Quit, k.Application.ForceQuit},
	}
}
