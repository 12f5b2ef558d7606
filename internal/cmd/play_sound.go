package cmd

import (
	"context"
	"fmt"

	"github.com/breakwise/breakwise/internal/adapters/sound"
	"github.com/breakwise/breakwise/internal/domain"
)

// PlaySoundCmd plays an alarm sound
type PlaySoundCmd struct {
	Event string `arg:"" optional:"" help:"Which alarm to play" enum:"work,break" default:"work"`
}

// Run executes the sound playing logic
func (p *PlaySoundCmd) Run(cli *CLI) error {
	if p.Event == sound.EventBreak {
		return cli.Container.SoundPlayer.PlaySoundForEvent(sound.EventBreak)
	}
	return cli.Container.SoundPlayer.PlaySound()
}

// NotifyTestCmd shows the notification of an expired countdown
type NotifyTestCmd struct {
	Kind string `arg:"" optional:"" help:"Which countdown expired" enum:"work,break" default:"work"`
}

// Run executes the notification test
func (n *NotifyTestCmd) Run(cli *CLI) error {
	if err := cli.Container.Notifier.Notify(context.Background(), domain.TimerID(n.Kind)); err != nil {
		return fmt.Errorf("failed to show notification: %w", err)
	}
	return nil
}
