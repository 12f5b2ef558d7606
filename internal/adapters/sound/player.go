package sound

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/breakwise/breakwise/internal/logging"
	"github.com/breakwise/breakwise/internal/ports"
)

// Event names understood by PlaySoundForEvent
const (
	EventBreak = "break"
	EventWork  = "work"
)

// candidate is one command that may play a sound on this platform
type candidate struct {
	cmd  string
	args []string
}

// startCommand launches a player without waiting for it
var startCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// Player implements ports.SoundPlayer
type Player struct {
	bell     io.Writer
	bellOnly bool
}

var _ ports.SoundPlayer = (*Player)(nil)

// NewPlayer creates a sound player that rings the bell on stdout when no
// system player is available
func NewPlayer() *Player {
	return &Player{bell: os.Stdout}
}

// NewPlayerWithBell is NewPlayer with the bell written to w (an SSH session for example)
func NewPlayerWithBell(w io.Writer) *Player {
	return &Player{bell: w}
}

// NewBellPlayer rings the bell on w and never starts a local player.
// Used for remote sessions where a sound on the host would go unheard.
func NewBellPlayer(w io.Writer) *Player {
	return &Player{bell: w, bellOnly: true}
}

// PlaySound plays the end of work sound
func (p *Player) PlaySound() error {
	return p.PlaySoundForEvent(EventWork)
}

// PlaySoundForEvent plays the sound for an expired countdown.
// Platform candidates are listed in player_*.go files with build tags.
func (p *Player) PlaySoundForEvent(eventType string) error {
	if p.bellOnly {
		return p.terminalBell()
	}
	for _, c := range candidatesFor(eventType) {
		if err := startCommand(c.cmd, c.args...); err == nil {
			logging.Logger.Debug("Playing sound", "event", eventType, "cmd", c.cmd)
			return nil
		}
	}
	return p.terminalBell()
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}
