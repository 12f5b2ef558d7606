package ui

import "github.com/breakwise/breakwise/internal/domain"

// confirmAction is run when a confirmation dialog is accepted
type confirmAction func() error

// stateChangedMsg is emitted after the tracker switched state from the TUI
type stateChangedMsg struct {
	state domain.SessionState
}
