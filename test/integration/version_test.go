package integration_test

import (
	"testing"

	"github.com/breakwise/breakwise/test/integration/harness"
)

func TestVersionAndHelp(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "--version")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "breakwise dev")

	result = harness.RunCommand(t, env, "--help")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Work, break, repeat")
	harness.AssertStdoutContains(t, result, "headless")
}

func TestUnknownCommand(t *testing.T) {
	env := harness.NewTestEnvironment(t)

	result := harness.RunCommand(t, env, "nap")
	harness.AssertFailure(t, result)
}
