//go:build !darwin && !linux && !windows

package notify

func command(string, string) (string, []string) {
	return "", nil
}
