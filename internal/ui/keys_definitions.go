package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"h", "?"}, Help: "show keyboard shortcuts"},
	{Name: "quit", Defaults: []string{"q"}, Help: "idle and exit"},
	{Name: "settings", Defaults: []string{"s"}, Help: "edit settings"},
	{Name: "toggle_view", Defaults: []string{"l"}, Help: "toggle backlog/log"},

	// Session keys
	{Name: "break", Defaults: []string{"b"}, Help: "take a break"},
	{Name: "free_work", Defaults: []string{"W"}, Help: "work without a task"},
	{Name: "idle", Defaults: []string{"i"}, Help: "stop tracking"},
	{Name: "work", Defaults: []string{"w"}, Help: "work on selected task"},

	// Backlog keys
	{Name: "add_task", Defaults: []string{"a"}, Help: "add task"},
	{Name: "complete_task", Defaults: []string{"c"}, Help: "complete task"},
	{Name: "delete_task", Defaults: []string{"d"}, Help: "delete task"},
	{Name: "show_completed", Defaults: []string{"C"}, Help: "show/hide completed"},

	// Navigation keys
	{Name: "down", Defaults: []string{"down", "j"}, Help: "select next row"},
	{Name: "up", Defaults: []string{"up", "k"}, Help: "select previous row"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name, nil if unknown
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
