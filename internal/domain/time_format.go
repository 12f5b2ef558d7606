package domain

import "fmt"

// FormatSeconds renders a countdown value as MM:SS.
// Negative values (overtime) get a leading minus sign.
func FormatSeconds(seconds int) string {
	prefix := ""
	if seconds < 0 {
		prefix = "-"
		seconds = -seconds
	}
	return fmt.Sprintf("%s%02d:%02d", prefix, seconds/60, seconds%60)
}
