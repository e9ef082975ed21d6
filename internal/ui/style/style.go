// Package style provides shared styling primitives, colors and icons, for
// consistent visual presentation across the CLI.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors. Red and green intentionally match the Discord embed accents
// so terminal output and delivered messages read the same.
var (
	Blurple = lipgloss.Color("#5865F2")
	Slate   = lipgloss.Color("#667085")
	White   = lipgloss.Color("#FFFFFF")
	Ink     = lipgloss.Color("#0B0F19")
	Green   = lipgloss.Color("#2ECC71")
	Red     = lipgloss.Color("#992D22")
	Yellow  = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Dot     = "●"
)
