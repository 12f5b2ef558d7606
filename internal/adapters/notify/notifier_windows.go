//go:build windows

package notify

import "fmt"

// command shows a balloon tip through PowerShell
func command(title, message string) (string, []string) {
	script := fmt.Sprintf(`Add-Type -AssemblyName System.Windows.Forms; `+
		`$n = New-Object System.Windows.Forms.NotifyIcon; `+
		`$n.Icon = [System.Drawing.SystemIcons]::Information; $n.Visible = $true; `+
		`$n.ShowBalloonTip(5000, '%s', '%s', 'Info'); Start-Sleep -Seconds 6; $n.Dispose()`, title, message)
	return "powershell", []string{"-NoProfile", "-c", script}
}
