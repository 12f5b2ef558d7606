package notify

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/breakwise/breakwise/internal/domain"
	"github.com/breakwise/breakwise/internal/ports"
)

// TerminalNotifier asks the terminal on the other side of w to show a
// notification with an OSC 9 escape sequence. Terminals without support
// ignore it.
type TerminalNotifier struct {
	w io.Writer
}

var _ ports.Notifier = (*TerminalNotifier)(nil)

// NewTerminalNotifier creates a notifier writing to w
func NewTerminalNotifier(w io.Writer) *TerminalNotifier {
	return &TerminalNotifier{w: w}
}

// Notify writes the notification escape sequence for kind
func (n *TerminalNotifier) Notify(_ context.Context, kind domain.TimerID) error {
	// BEL terminates the sequence, so it must not appear in the payload
	message := strings.ReplaceAll(AppName+": "+Message(kind), "\a", "")
	if _, err := fmt.Fprintf(n.w, "\x1b]9;%s\a", message); err != nil {
		return fmt.Errorf("failed to write terminal notification: %w", err)
	}
	return nil
}
