package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breakwise/breakwise/test/integration/harness"
)

func TestSettingsMeta(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		validate func(t *testing.T, result harness.CommandResult)
	}{
		{
			name: "table format (default)",
			args: []string{"settings", "meta"},
			validate: func(t *testing.T, result harness.CommandResult) {
				harness.AssertStdoutContains(t, result, "Settings file:")
				harness.AssertStdoutContains(t, result, "ssh_port")
			},
		},
		{
			name: "json format",
			args: []string{"settings", "meta", "--format", "json"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidJSON(t, result, &output)
				assert.Contains(t, output, "settings_file")
				assert.Contains(t, output, "format")
			},
		},
		{
			name: "toml format",
			args: []string{"settings", "meta", "--format", "toml"},
			validate: func(t *testing.T, result harness.CommandResult) {
				var output map[string]any
				harness.AssertValidTOML(t, result, &output)
				assert.Contains(t, output, "db_path")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := harness.NewTestEnvironment(t)

			result := harness.RunCommand(t, env, tt.args...)

			harness.AssertSuccess(t, result)
			tt.validate(t, result)
		})
	}
}

func TestSettingsSetAndGet(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "settings", "get", "--format", "json")
	harness.AssertSuccess(t, result)
	harness.AssertJSONContains(t, result, "work_time", float64(20))
	harness.AssertJSONContains(t, result, "show_notification", true)

	result = harness.RunCommand(t, env, "settings", "set", "--work-time", "45", "--play-sound", "true")
	harness.AssertSuccess(t, result)

	result = harness.RunCommand(t, env, "settings", "get", "--format", "json")
	harness.AssertJSONContains(t, result, "work_time", float64(45))
	harness.AssertJSONContains(t, result, "play_sound", true)

	result = harness.RunCommand(t, env, "settings", "set", "--break-time", "0")
	harness.AssertFailure(t, result)
	harness.AssertStderrContains(t, result, "invalid settings")

	result = harness.RunCommandWithInput(t, env, "work\nquit\n", "headless", "--quiet")
	harness.AssertStdoutContains(t, result, "Work: 45:00")
}

func TestSettingsFileDBPath(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings("db_path = \"" + env.Home + "/custom.db\"\n")

	harness.AssertSuccess(t, harness.RunCommand(t, env, "tasks", "add", "from config"))

	// the flag wins over config.toml
	result := harness.RunCommand(t, env, "--db-path", env.DBPath(), "tasks", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Total: 0 tasks")

	result = harness.RunCommand(t, env, "tasks", "list")
	harness.AssertStdoutContains(t, result, "from config")
}

func TestSettingsFileRejectsUnknownKeys(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	env.WriteSettings("colour = \"blue\"\n")

	result := harness.RunCommand(t, env, "tasks", "list")
	harness.AssertSuccess(t, result)
	harness.AssertStderrContains(t, result, "Warning: failed to load settings")
}
