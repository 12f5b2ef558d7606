//go:build linux

package notify

// command uses notify-send (libnotify)
func command(title, message string) (string, []string) {
	return "notify-send", []string{"--app-name", title, title, message}
}
