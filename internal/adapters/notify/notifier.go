package notify

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
)

// AppName is the notification title
const AppName = "breakwise"

// runCommand runs a notification command to completion
var runCommand = func(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

// DesktopNotifier implements ports.Notifier with the platform's notification tool
type DesktopNotifier struct{}

var _ ports.Notifier = (*DesktopNotifier)(nil)

// NewDesktopNotifier creates a notifier for the current platform
func NewDesktopNotifier() *DesktopNotifier {
	return &DesktopNotifier{}
}

// Notify tells the user that the countdown of kind has expired
func (n *DesktopNotifier) Notify(ctx context.Context, kind domain.TimerID) error {
	message := Message(kind)
	name, args := command(AppName, message)
	if name == "" {
		return fmt.Errorf("desktop notifications are not supported on this platform")
	}

	if err := runCommand(ctx, name, args...); err != nil {
		return fmt.Errorf("failed to run %s: %w", name, err)
	}

	logging.Logger.Debug("Notification shown", "kind", kind, "cmd", name)
	return nil
}

// Message returns the notification body for an expired countdown
func Message(kind domain.TimerID) string {
	switch kind {
	case domain.TimerWork:
		return "Work time is over. Take a break!"
	case domain.TimerBreak:
		return "Break is over. Back to work!"
	default:
		return fmt.Sprintf("%s timer expired", kind)
	}
}
