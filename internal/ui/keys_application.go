package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/breakwise/breakwise/internal/config"
)

// ApplicationKeys defines key bindings for application-level actions
type ApplicationKeys struct {
	ForceQuit  key.Binding
	Help       key.Binding
	Quit       key.Binding
	Settings   key.Binding
	ToggleView key.Binding
}

func newApplicationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) ApplicationKeys {
	return ApplicationKeys{
		ForceQuit:  buildBinding("force_quit", defaults, customKeys),
		Help:       buildBinding("help", defaults, customKeys),
		Quit:       buildBinding("quit", defaults, customKeys),
		Settings:   buildBinding("settings", defaults, customKeys),
		ToggleView: buildBinding("toggle_view", defaults, customKeys),
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = custom
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(strings.Join(keys, "/"), def.Help),
	)
}
