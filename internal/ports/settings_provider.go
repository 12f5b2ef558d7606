package ports

import (
	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
)

// SettingsListener receives the full settings snapshot after every change
type SettingsListener = hooks.Callback[domain.Settings]

// SettingsProvider exposes the current settings and change notifications
type SettingsProvider interface {
	Current() domain.Settings
	Subscribe(listener SettingsListener) hooks.Handle
	Unsubscribe(h hooks.Handle) error
}
