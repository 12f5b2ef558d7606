package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/breakwise/breakwise/internal/config"
)

// NavigationKeys defines key bindings for moving through tables
type NavigationKeys struct {
	Down key.Binding
	Up   key.Binding
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Down: buildBinding("down", defaults, customKeys),
		Up:   buildBinding("up", defaults, customKeys),
	}
}
