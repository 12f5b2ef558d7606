package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/breakwise/breakwise/internal/config"
)

// SessionKeys switch between work, break and idle
type SessionKeys struct {
	Break    key.Binding
	FreeWork key.Binding
	Idle     key.Binding
	Work     key.Binding
}

// BacklogKeys manage the task backlog
type BacklogKeys struct {
	Add           key.Binding
	Complete      key.Binding
	Delete        key.Binding
	ShowCompleted key.Binding
}

func newSessionKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) SessionKeys {
	return SessionKeys{
		Break:    buildBinding("break", defaults, customKeys),
		FreeWork: buildBinding("free_work", defaults, customKeys),
		Idle:     buildBinding("idle", defaults, customKeys),
		Work:     buildBinding("work", defaults, customKeys),
	}
}

func newBacklogKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) BacklogKeys {
	return BacklogKeys{
		Add:           buildBinding("add_task", defaults, customKeys),
		Complete:      buildBinding("complete_task", defaults, customKeys),
		Delete:        buildBinding("delete_task", defaults, customKeys),
		ShowCompleted: buildBinding("show_completed", defaults, customKeys),
	}
}
