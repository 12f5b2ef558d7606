//go:build linux

package sound

// candidatesFor picks freedesktop sounds, played with paplay (PulseAudio) or aplay (ALSA)
func candidatesFor(eventType string) []candidate {
	const dir = "/usr/share/sounds/freedesktop/stereo/"

	switch eventType {
	case EventWork:
		return []candidate{
			{"paplay", []string{dir + "complete.oga"}},
			{"aplay", []string{dir + "complete.wav"}},
		}
	case EventBreak:
		return []candidate{
			{"paplay", []string{dir + "service-login.oga"}},
			{"aplay", []string{dir + "service-login.wav"}},
		}
	default:
		return []candidate{
			{"paplay", []string{dir + "bell.oga"}},
			{"aplay", []string{dir + "bell.wav"}},
		}
	}
}
