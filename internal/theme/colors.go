package theme

import "github.com/charmbracelet/lipgloss"

// Neon Core Colors - accent colors of the default theme
var (
	MagentaBlaze   = lipgloss.Color("#FF00FF") // Primary accent
	CyberCyan      = lipgloss.Color("#00FFFF") // Secondary accent, user mentions
	HotPink        = lipgloss.Color("#FF10F0") // Selections/Focus
	MatrixGreen    = lipgloss.Color("#39FF14") // Success
	NeonRed        = lipgloss.Color("#FF3131") // Errors, @everyone
	ElectricYellow = lipgloss.Color("#FFFF00") // Warnings
	LaserPurple    = lipgloss.Color("#7B68EE") // Role mentions
	SignalBlue     = lipgloss.Color("#4D9DFF") // Channel mentions
)

// Background Colors
var (
	VoidPurple = lipgloss.Color("#0D0221") // Primary background
	DeepSpace  = lipgloss.Color("#1A0A2E") // Panel backgrounds
	Twilight   = lipgloss.Color("#2D1B4E") // Hovered list item
	Abyss      = lipgloss.Color("#0A0A14") // Command input background
)

// Text Colors - Text hierarchy from bright to dim
var (
	PureWhite     = lipgloss.Color("#FFFFFF") // Primary text
	Silver        = lipgloss.Color("#E0E0E0") // Secondary text
	MutedLavender = lipgloss.Color("#888899") // Placeholders, spoilers
	DimPurple     = lipgloss.Color("#4A4A6A") // Dividers
)

// Semantic Color Aliases - Use these in components for consistency
var (
	ColorPrimary   = MagentaBlaze
	ColorSecondary = CyberCyan
	ColorFocus     = HotPink
	ColorSuccess   = MatrixGreen
	ColorError     = NeonRed
	ColorWarning   = ElectricYellow
	ColorRole      = LaserPurple
	ColorChannel   = SignalBlue

	BgPrimary     = VoidPurple
	BgPanel       = DeepSpace
	BgPanelActive = Twilight
	BgInput       = Abyss

	TextPrimary   = PureWhite
	TextSecondary = Silver
	TextMuted     = MutedLavender
	TextDim       = DimPurple
)
