package domain

import "fmt"

// Default durations, in minutes
const (
	DefaultBreakTime = 5
	DefaultWorkTime  = 20
	MaxDuration      = 720
)

// Settings is the user-tunable tracker configuration
type Settings struct {
	BreakTime        int
	PlaySound        bool
	ShowNotification bool
	WorkTime         int
}

// DefaultSettings returns the settings used before the user changes anything
func DefaultSettings() Settings {
	return Settings{
		BreakTime:        DefaultBreakTime,
		PlaySound:        false,
		ShowNotification: true,
		WorkTime:         DefaultWorkTime,
	}
}

// Validate checks that both durations are within range
func (s Settings) Validate() error {
	if s.WorkTime < 1 || s.WorkTime > MaxDuration {
		return fmt.Errorf("%w: work time must be between 1 and %d minutes", ErrInvalidSettings, MaxDuration)
	}
	if s.BreakTime < 1 || s.BreakTime > MaxDuration {
		return fmt.Errorf("%w: break time must be between 1 and %d minutes", ErrInvalidSettings, MaxDuration)
	}
	return nil
}

// Minutes returns the configured duration for a timer
func (s Settings) Minutes(id TimerID) int {
	if id == TimerBreak {
		return s.BreakTime
	}
	return s.WorkTime
}
