package theme

import "github.com/charmbracelet/lipgloss"

// Glyphs used in panel borders and lists.
const (
	PanelDiamond  = "◈"
	StatusRunning = "●"
	StatusIdle    = "○"
	HoverMarker   = "›"
	TreeBranch    = "├"
	TreeLast      = "└"
	ArrowUp       = "↑"
)

// Theme holds all visual configuration for the application.
type Theme struct {
	// Name of the theme
	Name string

	// Color palette
	Colors ColorPalette
}

// ColorPalette holds all color definitions.
type ColorPalette struct {
	// Accent colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Focus     lipgloss.Color
	Success   lipgloss.Color
	Error     lipgloss.Color
	Warning   lipgloss.Color
	Role      lipgloss.Color
	Channel   lipgloss.Color

	// Background colors
	BgPrimary     lipgloss.Color
	BgPanel       lipgloss.Color
	BgPanelActive lipgloss.Color
	BgInput       lipgloss.Color

	// Text colors
	TextPrimary   lipgloss.Color
	TextSecondary lipgloss.Color
	TextMuted     lipgloss.Color
	TextDim       lipgloss.Color
}

// DefaultTheme returns the theme applied at startup.
func DefaultTheme() *Theme {
	return MidnightMiamiTheme()
}
