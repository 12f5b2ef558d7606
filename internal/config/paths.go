package config

import (
	"os"
	"path/filepath"
)

// GetHome returns BREAKWISE_HOME or ~/.breakwise
func GetHome() string {
	home := os.Getenv("BREAKWISE_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".breakwise"
		}
		return filepath.Join(homeDir, ".breakwise")
	}
	return ExpandPath(home)
}

// GetDBPath returns $BREAKWISE_HOME/breakwise.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "breakwise.db")
}

// GetSettingsPath returns $BREAKWISE_HOME/config.toml
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "config.toml")
}

// GetLockPath returns $BREAKWISE_HOME/breakwise.lock
func GetLockPath() string {
	return filepath.Join(GetHome(), "breakwise.lock")
}

// GetHostKeyPath returns $BREAKWISE_HOME/ssh_host_ed25519
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
