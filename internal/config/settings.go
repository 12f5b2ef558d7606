package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Defaults for the SSH server
const (
	DefaultSSHHost = "localhost"
	DefaultSSHPort = 23234
)

// KeyBindingsConfig holds custom key binding overrides.
// Keys are binding names (e.g., "work", "quit"), values are the key sequences.
type KeyBindingsConfig map[string][]string

// Validate checks for configuration errors in key bindings.
// The validNames parameter should come from ui.ValidKeyNames().
func (k KeyBindingsConfig) Validate(validNames []string) error {
	if k == nil {
		return nil
	}

	validSet := make(map[string]bool, len(validNames))
	for _, name := range validNames {
		validSet[name] = true
	}

	keyToAction := make(map[string]string)
	for name, keys := range k {
		if !validSet[name] {
			return fmt.Errorf("unknown key binding '%s'", name)
		}

		for _, key := range keys {
			if key == "" {
				return fmt.Errorf("key binding for '%s' contains empty value", name)
			}
			if existing, found := keyToAction[key]; found {
				return fmt.Errorf("key '%s' is assigned to both '%s' and '%s'", key, existing, name)
			}
			keyToAction[key] = name
		}
	}

	return nil
}

// Settings represents the structure of $BREAKWISE_HOME/config.toml.
// Unset fields fall back to flags, environment variables and defaults.
type Settings struct {
	DBPath      string            `toml:"db_path,omitempty"`
	Debug       *bool             `toml:"debug,omitempty"`
	Keys        KeyBindingsConfig `toml:"keys,omitempty"`
	MaxLogFiles *int              `toml:"max_log_files,omitempty"`
	SSHHost     string            `toml:"ssh_host,omitempty"`
	SSHPort     *int              `toml:"ssh_port,omitempty"`
}

// LoadSettings loads settings from $BREAKWISE_HOME/config.toml.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&settings); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return nil, fmt.Errorf("invalid %s: %s", filepath.Base(path), strict.String())
		}
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}

	if settings.DBPath != "" {
		settings.DBPath = ExpandPath(settings.DBPath)
	}
	if settings.MaxLogFiles != nil && *settings.MaxLogFiles < 0 {
		return nil, fmt.Errorf("max_log_files cannot be negative")
	}
	if settings.SSHPort != nil && (*settings.SSHPort < 1 || *settings.SSHPort > 65535) {
		return nil, fmt.Errorf("ssh_port must be between 1 and 65535")
	}

	return &settings, nil
}

// SaveSettings writes settings to $BREAKWISE_HOME/config.toml
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(GetSettingsPath(), settings)
}

// SaveSettingsTo writes settings to path
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := toml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// DBPathOr returns the configured database path or fallback
func (s *Settings) DBPathOr(fallback string) string {
	if s != nil && s.DBPath != "" {
		return s.DBPath
	}
	return fallback
}

// SSHAddress returns host:port for the SSH server
func (s *Settings) SSHAddress() string {
	host, port := DefaultSSHHost, DefaultSSHPort
	if s != nil {
		if s.SSHHost != "" {
			host = s.SSHHost
		}
		if s.SSHPort != nil {
			port = *s.SSHPort
		}
	}
	return fmt.Sprintf("%s:%d", host, port)
}
