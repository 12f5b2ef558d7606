package ports

// SoundPlayer plays alarm sounds
type SoundPlayer interface {
	// PlaySound plays the default alarm sound
	PlaySound() error

	// PlaySoundForEvent plays a sound for a specific event type ("work", "break")
	PlaySoundForEvent(eventType string) error
}
