package harness

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"
)

// commandTimeout bounds every breakwise invocation; headless runs end on EOF
const commandTimeout = 30 * time.Second

var (
	binary    string
	buildErr  error
	buildOnce sync.Once
)

// CommandResult is the outcome of one breakwise invocation
type CommandResult struct {
	ExitCode int
	Stderr   string
	Stdout   string
}

// BuildBinary compiles breakwise into a temporary directory, once per run
func BuildBinary() (string, error) {
	buildOnce.Do(func() {
		root, err := moduleRoot()
		if err != nil {
			buildErr = err
			return
		}
		dir, err := os.MkdirTemp("", "breakwise-bin-*")
		if err != nil {
			buildErr = err
			return
		}

		binary = filepath.Join(dir, "breakwise")
		build := exec.Command("go", "build", "-o", binary, ".")
		build.Dir = root
		if out, err := build.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("go build: %w\n%s", err, out)
		}
	})
	return binary, buildErr
}

// CleanupBinary removes the directory created by BuildBinary
func CleanupBinary() {
	if binary == "" {
		return
	}
	_ = os.RemoveAll(filepath.Dir(binary))
}

// RunCommand runs breakwise with args and no input
func RunCommand(tb testing.TB, env *TestEnvironment, args ...string) CommandResult {
	tb.Helper()
	return run(tb, env, nil, args)
}

// RunCommandWithInput runs breakwise with input on stdin
func RunCommandWithInput(tb testing.TB, env *TestEnvironment, input string, args ...string) CommandResult {
	tb.Helper()
	return run(tb, env, strings.NewReader(input), args)
}

func run(tb testing.TB, env *TestEnvironment, input io.Reader, args []string) CommandResult {
	tb.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Env = env.Environ()
	cmd.Stdin = input
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	result := CommandResult{}
	err := cmd.Run()

	var exitErr *exec.ExitError
	switch {
	case errors.Is(ctx.Err(), context.DeadlineExceeded):
		tb.Errorf("breakwise %s did not finish within %v", strings.Join(args, " "), commandTimeout)
		result.ExitCode = -1
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	case err != nil:
		tb.Errorf("breakwise %s: %v", strings.Join(args, " "), err)
		result.ExitCode = -1
	}

	result.Stdout = stdout.String()
	result.Stderr = stderr.String()
	return result
}

// moduleRoot walks up from the working directory to the directory holding go.mod
func moduleRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("go.mod not found above the test directory")
		}
		dir = parent
	}
}
