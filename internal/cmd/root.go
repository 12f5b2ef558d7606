package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/breakwise/breakwise/internal/config"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ui"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	DBPath      string           `help:"Path to the SQLite database" env:"BREAKWISE_DB_PATH" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	LogConsole  bool             `help:"Log to stderr instead of a file"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`

	Run        RunCmd        `cmd:"" help:"Start the breakwise TUI (default)" default:"1"`
	Headless   HeadlessCmd   `cmd:"headless" help:"Run the tracker without a TUI, reading commands from stdin"`
	Serve      ServeCmd      `cmd:"serve" help:"Serve the TUI over SSH"`
	Tasks      TasksCmd      `cmd:"tasks" help:"Manage the backlog (add, list, edit, done, del)"`
	Activities ActivitiesCmd `cmd:"activities" help:"Inspect the activity log (list, export, stats)"`
	Settings   SettingsCmd   `cmd:"settings" help:"Manage settings (get, set, meta)"`
	PlaySound  PlaySoundCmd  `cmd:"play-sound" help:"Play the alarm sound"`
	NotifyTest NotifyTestCmd `cmd:"notify-test" help:"Show a test desktop notification"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings loaded from config.toml
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	c.applySettings()

	logFilePath, err := logging.Initialize(logging.Options{
		Console:     c.LogConsole,
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	// Child processes inherit the debug settings and the log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("BREAKWISE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("BREAKWISE_DEBUG_FILE", logFilePath)
		}
	}

	// Container is created after logging so gorm's logger has a target
	container, err := NewContainer(c.DBPath)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills values left at their defaults from config.toml.
// Precedence: CLI flags > env vars > config.toml > defaults.
func (c *CLI) applySettings() {
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles && c.settings.MaxLogFiles != nil {
			if _, hasEnv := os.LookupEnv("BREAKWISE_MAX_LOG_FILES"); !hasEnv {
				c.MaxLogFiles = *c.settings.MaxLogFiles
			}
		}

		if !c.Debug && c.settings.Debug != nil && *c.settings.Debug {
			if _, hasEnv := os.LookupEnv("BREAKWISE_DEBUG"); !hasEnv {
				c.Debug = true
			}
		}
	}

	if c.DBPath == "" {
		c.DBPath = c.settings.DBPathOr(config.GetDBPath())
	}

	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("BREAKWISE_MAX_LOG_FILES", strconv.Itoa(c.MaxLogFiles))
	}
}

// keyBindings returns the validated custom key bindings from config.toml
func (c *CLI) keyBindings() (config.KeyBindingsConfig, error) {
	if c.settings == nil || c.settings.Keys == nil {
		return nil, nil
	}
	if err := c.settings.Keys.Validate(ui.GetValidKeyNames()); err != nil {
		return nil, fmt.Errorf("invalid key bindings in config.toml: %w", err)
	}
	logging.Logger.Debug("Custom key bindings loaded and validated")
	return c.settings.Keys, nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
