//go:build darwin

package notify

import "fmt"

// command uses osascript's display notification
func command(title, message string) (string, []string) {
	script := fmt.Sprintf("display notification %q with title %q", message, title)
	return "osascript", []string{"-e", script}
}
