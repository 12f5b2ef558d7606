package services

import (
	"context"
	"fmt"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/hooks"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
)

// SettingsTopic is the only topic settings listeners subscribe to
type SettingsTopic string

// TopicSettingsChanged is published with the full snapshot after every update
const TopicSettingsChanged SettingsTopic = "settings changed"

// SettingsService loads, persists and publishes tracker settings
type SettingsService struct {
	current   domain.Settings
	listeners *hooks.Registry[SettingsTopic, domain.Settings]
	repo      ports.SettingsRepository
}

// Verify interface compliance at compile time
var _ ports.SettingsProvider = (*SettingsService)(nil)

// NewSettingsService creates a SettingsService holding the default settings
func NewSettingsService(repo ports.SettingsRepository) *SettingsService {
	return &SettingsService{
		current:   domain.DefaultSettings(),
		listeners: hooks.NewRegistry[SettingsTopic, domain.Settings](),
		repo:      repo,
	}
}

// Load reads the stored settings without notifying listeners
func (s *SettingsService) Load(ctx context.Context) (domain.Settings, error) {
	settings, err := s.repo.LoadSettings(ctx)
	if err != nil {
		logging.Logger.Error("Failed to load settings", "error", err)
		return s.current, fmt.Errorf("failed to load settings: %w", err)
	}
	s.current = settings
	logging.Logger.Debug("Settings loaded",
		"work_time", settings.WorkTime,
		"break_time", settings.BreakTime,
		"play_sound", settings.PlaySound,
		"show_notification", settings.ShowNotification)
	return settings, nil
}

// Current returns the last loaded or updated settings
func (s *SettingsService) Current() domain.Settings {
	return s.current
}

// Update validates and stores settings, then publishes them to every listener.
// A listener error is returned after the settings were stored.
func (s *SettingsService) Update(ctx context.Context, settings domain.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}

	logging.Logger.Info("Updating settings",
		"work_time", settings.WorkTime,
		"break_time", settings.BreakTime,
		"play_sound", settings.PlaySound,
		"show_notification", settings.ShowNotification)

	if err := s.repo.SaveSettings(ctx, settings); err != nil {
		logging.Logger.Error("Failed to save settings", "error", err)
		return fmt.Errorf("failed to save settings: %w", err)
	}
	s.current = settings

	if err := s.listeners.Dispatch(TopicSettingsChanged, settings); err != nil {
		logging.Logger.Error("Settings listener failed", "error", err)
		return fmt.Errorf("failed to apply settings: %w", err)
	}
	return nil
}

// Subscribe registers a listener for settings changes
func (s *SettingsService) Subscribe(listener ports.SettingsListener) hooks.Handle {
	return s.listeners.Register(TopicSettingsChanged, 0, listener)
}

// Unsubscribe removes a listener
func (s *SettingsService) Unsubscribe(h hooks.Handle) error {
	return s.listeners.Unregister(h)
}
