//go:build darwin

package sound

// candidatesFor picks macOS system sounds played with afplay
func candidatesFor(eventType string) []candidate {
	switch eventType {
	case EventWork:
		return []candidate{
			{"afplay", []string{"/System/Library/Sounds/Glass.aiff"}},
			{"afplay", []string{"/System/Library/Sounds/Tink.aiff"}},
		}
	case EventBreak:
		return []candidate{
			{"afplay", []string{"/System/Library/Sounds/Submarine.aiff"}},
			{"afplay", []string{"/System/Library/Sounds/Purr.aiff"}},
		}
	default:
		return []candidate{{"afplay", []string{"/System/Library/Sounds/Ping.aiff"}}}
	}
}
