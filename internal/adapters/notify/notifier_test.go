package notify

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breakwise/breakwise/internal/domain"
)

func stubRun(t *testing.T, fn func(ctx context.Context, name string, args ...string) error) {
	t.Helper()
	orig := runCommand
	runCommand = fn
	t.Cleanup(func() { runCommand = orig })
}

func TestMessage(t *testing.T) {
	assert.Contains(t, Message(domain.TimerWork), "Take a break")
	assert.Contains(t, Message(domain.TimerBreak), "Back to work")
}

func TestNotifyRunsPlatformCommand(t *testing.T) {
	name, _ := command(AppName, "x")
	if name == "" {
		t.Skip("no notification command on this platform")
	}

	var gotName string
	var gotArgs []string
	stubRun(t, func(_ context.Context, n string, args ...string) error {
		gotName = n
		gotArgs = args
		return nil
	})

	require.NoError(t, NewDesktopNotifier().Notify(context.Background(), domain.TimerBreak))
	assert.Equal(t, name, gotName)
	assert.NotEmpty(t, gotArgs)
}

func TestNotifyWrapsCommandFailure(t *testing.T) {
	name, _ := command(AppName, "x")
	if name == "" {
		t.Skip("no notification command on this platform")
	}

	boom := errors.New("exit status 1")
	stubRun(t, func(context.Context, string, ...string) error { return boom })

	err := NewDesktopNotifier().Notify(context.Background(), domain.TimerWork)
	assert.ErrorIs(t, err, boom)
}
