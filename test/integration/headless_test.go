package integration_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/test/integration/harness"
)

func TestHeadlessSession(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	harness.AssertSuccess(t, harness.RunCommand(t, env, "tasks", "add", "deep work", "--workload", "1"))

	result := harness.RunCommandWithInput(t, env, "status\nwork 1\nbreak\nquit\n", "headless", "--quiet")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Timer: -")
	harness.AssertStdoutContains(t, result, "Work: 20:00")
	harness.AssertStdoutContains(t, result, "Break: 05:00")
	harness.AssertStdoutContains(t, result, `run "breakwise tasks done 1" if it is complete`)

	t.Run("activities were recorded", func(t *testing.T) {
		result := harness.RunCommand(t, env, "activities", "export", "--format", "json")
		harness.AssertSuccess(t, result)

		var export struct {
			Activities []struct {
				Duration *int   `json:"duration"`
				Kind     string `json:"kind"`
				Task     string `json:"task"`
			} `json:"activities"`
		}
		harness.AssertValidJSON(t, result, &export)
		require.Len(t, export.Activities, 2)

		// newest first
		assert.Equal(t, "break", export.Activities[0].Kind)
		assert.Equal(t, "work", export.Activities[1].Kind)
		assert.Equal(t, "deep work", export.Activities[1].Task)
		for _, a := range export.Activities {
			assert.NotNil(t, a.Duration, "quit must close the running activity")
		}
	})

	t.Run("work session credited the task without completing it", func(t *testing.T) {
		result := harness.RunCommand(t, env, "tasks", "list")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "1/1")
		harness.AssertStdoutContains(t, result, "Total: 1 tasks")
	})
}

func TestHeadlessQuitsAtEndOfInput(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithInput(t, env, "work\n", "headless", "--quiet")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Work: 20:00")
	harness.AssertStdoutContains(t, result, "Timer: -")
}

func TestHeadlessRejectsUnknownCommands(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommandWithInput(t, env, "dance\nidle\nquit\n", "headless", "--quiet")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, `unknown command "dance"`)
	harness.AssertStdoutContains(t, result, "error: ")
}
