//go:build windows

package sound

// candidatesFor picks Windows system sounds played through PowerShell
func candidatesFor(eventType string) []candidate {
	switch eventType {
	case EventWork:
		return []candidate{
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Asterisk.Play()"}},
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
		}
	case EventBreak:
		return []candidate{
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Question.Play()"}},
			{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}},
		}
	default:
		return []candidate{{"powershell", []string{"-c", "[System.Media.SystemSounds]::Beep.Play()"}}}
	}
}
