package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Session state colors
const (
	ColorAlarm Color = "196" // Red - countdown expired
	ColorBreak Color = "39"  // Blue - on a break
	ColorIdle  Color = "3"   // Yellow - idle
	ColorWork  Color = "2"   // Green - working
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSelected  Color = "57"  // Purple background - selected row
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorOverTime  Color = "208" // Orange - activity ran longer than planned
)
