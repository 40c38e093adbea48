package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Available themes
var (
	themes       []*Theme
	currentIndex int
)

func init() {
	themes = []*Theme{
		MidnightMiamiTheme(),
		HumbleTheme(),
		JazzyTheme(),
		MonochromeTheme(),
	}
	ApplyTheme(themes[currentIndex])
}

// AllThemes returns all available themes.
func AllThemes() []*Theme {
	return themes
}

// CurrentTheme returns the currently active theme.
func CurrentTheme() *Theme {
	return themes[currentIndex]
}

// Select applies the theme whose name matches case-insensitively, ignoring
// spaces and dashes. Returns false and keeps the current theme otherwise.
func Select(name string) bool {
	want := normalize(name)
	for i, t := range themes {
		if normalize(t.Name) == want {
			currentIndex = i
			ApplyTheme(t)
			return true
		}
	}
	return false
}

// Names returns the names of all themes in order.
func Names() []string {
	names := make([]string, len(themes))
	for i, t := range themes {
		names[i] = t.Name
	}
	return names
}

func normalize(name string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(name))
}

// ApplyTheme sets all the global color variables to match the theme.
func ApplyTheme(t *Theme) {
	// Update semantic color aliases
	ColorPrimary = t.Colors.Primary
	ColorSecondary = t.Colors.Secondary
	ColorFocus = t.Colors.Focus
	ColorSuccess = t.Colors.Success
	ColorError = t.Colors.Error
	ColorWarning = t.Colors.Warning
	ColorRole = t.Colors.Role
	ColorChannel = t.Colors.Channel

	BgPrimary = t.Colors.BgPrimary
	BgPanel = t.Colors.BgPanel
	BgPanelActive = t.Colors.BgPanelActive
	BgInput = t.Colors.BgInput

	TextPrimary = t.Colors.TextPrimary
	TextSecondary = t.Colors.TextSecondary
	TextMuted = t.Colors.TextMuted
	TextDim = t.Colors.TextDim

	// Regenerate styles
	regenerateStyles()
}

// MidnightMiamiTheme - Neon pink and cyan on deep purple
func MidnightMiamiTheme() *Theme {
	return &Theme{
		Name: "Midnight Miami",
		Colors: ColorPalette{
			Primary:       MagentaBlaze,
			Secondary:     CyberCyan,
			Focus:         HotPink,
			Success:       MatrixGreen,
			Error:         NeonRed,
			Warning:       ElectricYellow,
			Role:          LaserPurple,
			Channel:       SignalBlue,
			BgPrimary:     VoidPurple,
			BgPanel:       DeepSpace,
			BgPanelActive: Twilight,
			BgInput:       Abyss,
			TextPrimary:   PureWhite,
			TextSecondary: Silver,
			TextMuted:     MutedLavender,
			TextDim:       DimPurple,
		},
	}
}

// HumbleTheme - turtle green and shell orange on slate
func HumbleTheme() *Theme {
	return &Theme{
		Name: "Humble",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#22A699"), // Turtle
			Secondary:     lipgloss.Color("#7FD1E8"), // Topic wire
			Focus:         lipgloss.Color("#F29F05"), // Shell
			Success:       lipgloss.Color("#8BC34A"),
			Error:         lipgloss.Color("#E4572E"),
			Warning:       lipgloss.Color("#F2CD5D"),
			Role:          lipgloss.Color("#B48EAD"),
			Channel:       lipgloss.Color("#5E9FD6"),
			BgPrimary:     lipgloss.Color("#101820"),
			BgPanel:       lipgloss.Color("#17232E"),
			BgPanelActive: lipgloss.Color("#22313F"),
			BgInput:       lipgloss.Color("#0B1117"),
			TextPrimary:   lipgloss.Color("#ECEFF1"),
			TextSecondary: lipgloss.Color("#C5D0D8"),
			TextMuted:     lipgloss.Color("#7D8C99"),
			TextDim:       lipgloss.Color("#4B5A66"),
		},
	}
}

// JazzyTheme - brass on a late-night purple
func JazzyTheme() *Theme {
	return &Theme{
		Name: "Jazzy",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("#D4A373"),
			Secondary:     lipgloss.Color("#9AD1D4"),
			Focus:         lipgloss.Color("#FFB703"),
			Success:       lipgloss.Color("#90BE6D"),
			Error:         lipgloss.Color("#D62828"),
			Warning:       lipgloss.Color("#FCBF49"),
			Role:          lipgloss.Color("#C77DFF"),
			Channel:       lipgloss.Color("#80A1D4"),
			BgPrimary:     lipgloss.Color("#1B1025"),
			BgPanel:       lipgloss.Color("#241733"),
			BgPanelActive: lipgloss.Color("#33224A"),
			BgInput:       lipgloss.Color("#120A1A"),
			TextPrimary:   lipgloss.Color("#F8F4EC"),
			TextSecondary: lipgloss.Color("#DCD3C4"),
			TextMuted:     lipgloss.Color("#8E8498"),
			TextDim:       lipgloss.Color("#584D63"),
		},
	}
}

// MonochromeTheme - for terminals that mangle true color
func MonochromeTheme() *Theme {
	return &Theme{
		Name: "Monochrome",
		Colors: ColorPalette{
			Primary:       lipgloss.Color("15"),
			Secondary:     lipgloss.Color("14"),
			Focus:         lipgloss.Color("15"),
			Success:       lipgloss.Color("10"),
			Error:         lipgloss.Color("9"),
			Warning:       lipgloss.Color("11"),
			Role:          lipgloss.Color("13"),
			Channel:       lipgloss.Color("12"),
			BgPrimary:     lipgloss.Color("0"),
			BgPanel:       lipgloss.Color("0"),
			BgPanelActive: lipgloss.Color("8"),
			BgInput:       lipgloss.Color("0"),
			TextPrimary:   lipgloss.Color("15"),
			TextSecondary: lipgloss.Color("7"),
			TextMuted:     lipgloss.Color("8"),
			TextDim:       lipgloss.Color("8"),
		},
	}
}
