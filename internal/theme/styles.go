package theme

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Border definitions
var (
	// NeonBorder uses heavy lines for a bold look
	NeonBorder = lipgloss.Border{
		Top:         "━",
		Bottom:      "━",
		Left:        "┃",
		Right:       "┃",
		TopLeft:     "┏",
		TopRight:    "┓",
		BottomLeft:  "┗",
		BottomRight: "┛",
	}

	// GlowBorder uses rounded corners for a softer look
	GlowBorder = lipgloss.Border{
		Top:         "─",
		Bottom:      "─",
		Left:        "│",
		Right:       "│",
		TopLeft:     "╭",
		TopRight:    "╮",
		BottomLeft:  "╰",
		BottomRight: "╯",
	}
)

// Text styles - hierarchy from most to least prominent
var (
	TextH1             lipgloss.Style
	TextH2             lipgloss.Style
	TextSecondaryStyle lipgloss.Style
	TextMutedStyle     lipgloss.Style
	TextDimStyle       lipgloss.Style
	TextErrorStyle     lipgloss.Style
	TextSubjectStyle   lipgloss.Style
)

// List styles
var (
	ListItem      lipgloss.Style
	ListItemHover lipgloss.Style
	ListEmpty     lipgloss.Style
)

// Message styles
var (
	MentionUser    lipgloss.Style
	MentionRole    lipgloss.Style
	MentionChannel lipgloss.Style
	MentionAlert   lipgloss.Style
	Spoiler        lipgloss.Style
	Extra          lipgloss.Style
	DayDivider     lipgloss.Style
	Timestamp      lipgloss.Style
	Author         lipgloss.Style
)

// Command input styles
var (
	PromptStyle      lipgloss.Style
	InputTextStyle   lipgloss.Style
	PlaceholderStyle lipgloss.Style
	CursorStyle      lipgloss.Style
)

// Help bar styles
var (
	HelpKeyStyle  lipgloss.Style
	HelpDescStyle lipgloss.Style
	HelpSepStyle  lipgloss.Style
)

// Spinner style
var SpinnerStyle lipgloss.Style

// regenerateStyles rebuilds all style variables based on current color values.
// Called when theme changes.
func regenerateStyles() {
	// Text styles
	TextH1 = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	TextH2 = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary)

	TextSecondaryStyle = lipgloss.NewStyle().
		Foreground(TextSecondary)

	TextMutedStyle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	TextDimStyle = lipgloss.NewStyle().
		Foreground(TextDim).
		Faint(true)

	TextErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError)

	TextSubjectStyle = lipgloss.NewStyle().
		Foreground(ColorWarning).
		Bold(true)

	// List styles
	ListItem = lipgloss.NewStyle().
		Foreground(TextSecondary)

	ListItemHover = lipgloss.NewStyle().
		Foreground(ColorFocus).
		Background(BgPanelActive).
		Bold(true)

	ListEmpty = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	// Message styles
	MentionUser = lipgloss.NewStyle().
		Foreground(ColorSecondary)

	MentionRole = lipgloss.NewStyle().
		Foreground(ColorRole).
		Bold(true)

	MentionChannel = lipgloss.NewStyle().
		Foreground(ColorChannel)

	MentionAlert = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	Spoiler = lipgloss.NewStyle().
		Foreground(TextMuted).
		Faint(true)

	Extra = lipgloss.NewStyle().
		Foreground(TextMuted)

	DayDivider = lipgloss.NewStyle().
		Foreground(TextDim)

	Timestamp = lipgloss.NewStyle().
		Foreground(TextMuted)

	Author = lipgloss.NewStyle().
		Foreground(TextPrimary).
		Bold(true)

	// Command input styles
	PromptStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true)

	InputTextStyle = lipgloss.NewStyle().
		Foreground(TextPrimary)

	PlaceholderStyle = lipgloss.NewStyle().
		Foreground(TextMuted).
		Italic(true)

	CursorStyle = lipgloss.NewStyle().
		Reverse(true)

	// Help bar styles
	HelpKeyStyle = lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	HelpDescStyle = lipgloss.NewStyle().
		Foreground(TextMuted)

	HelpSepStyle = lipgloss.NewStyle().
		Foreground(TextDim)

	// Spinner style
	SpinnerStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary)
}

// FormatStatusIndicator returns a running/idle status indicator.
func FormatStatusIndicator(running bool) string {
	if running {
		return StatusRunning
	}
	return StatusIdle
}

// PanelTitleOptions configures what to show in panel borders.
type PanelTitleOptions struct {
	Title         string // Main title text (e.g., "Topics")
	StatusRunning bool   // Show running indicator (●) vs idle (○)
	ShowStatus    bool   // Whether to show status at all
	BottomHints   string // Key hints for bottom border (e.g., "←→:switch")
}

// RenderPanelWithTitle renders content in a panel with title embedded in the border.
func RenderPanelWithTitle(content string, opts PanelTitleOptions, width, height int, focused bool) string {
	if width < 4 || height < 2 {
		return ""
	}

	// Choose border style and colors based on focus
	var border lipgloss.Border
	var borderColor lipgloss.Color
	var titleColor lipgloss.Color

	if focused {
		border = NeonBorder
		borderColor = ColorPrimary
		titleColor = ColorSecondary
	} else {
		border = GlowBorder
		borderColor = TextDim
		titleColor = TextMuted
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Foreground(titleColor).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(TextMuted)
	statusStyle := lipgloss.NewStyle().Foreground(ColorSuccess)
	if !opts.StatusRunning {
		statusStyle = lipgloss.NewStyle().Foreground(TextDim)
	}

	// Calculate inner width (minus 2 for side borders)
	innerWidth := width - 2

	topBorder := buildTopBorder(border, borderStyle, titleStyle, statusStyle, opts, innerWidth)
	bottomBorder := buildBottomBorder(border, borderStyle, hintStyle, opts.BottomHints, innerWidth)

	contentHeight := max(height-2, 0)

	// Split content into lines and pad/truncate to fit
	contentLines := strings.Split(content, "\n")
	renderedLines := make([]string, contentHeight)

	for i := 0; i < contentHeight; i++ {
		var line string
		if i < len(contentLines) {
			line = contentLines[i]
		}
		// Truncate line (handles ANSI codes properly)
		line = ansi.Truncate(line, innerWidth, "")
		if lineLen := ansi.StringWidth(line); lineLen < innerWidth {
			line += strings.Repeat(" ", innerWidth-lineLen)
		}
		renderedLines[i] = borderStyle.Render(border.Left) + line + borderStyle.Render(border.Right)
	}

	var result strings.Builder
	result.WriteString(topBorder)
	result.WriteString("\n")
	if contentHeight > 0 {
		result.WriteString(strings.Join(renderedLines, "\n"))
		result.WriteString("\n")
	}
	result.WriteString(bottomBorder)

	return result.String()
}

// buildTopBorder creates the top border with title and optional status indicator.
func buildTopBorder(border lipgloss.Border, borderStyle, titleStyle, statusStyle lipgloss.Style, opts PanelTitleOptions, innerWidth int) string {
	leftFiller := 2 // Small gap after corner

	// Format the title segment: "[ Title ● ]" or "[ Title ]"
	var titleSegment string
	if opts.Title != "" {
		title := ansi.Truncate(opts.Title, max(innerWidth-leftFiller-6, 0), "…")
		titleSegment = "[ " + titleStyle.Render(title)
		if opts.ShowStatus {
			titleSegment += " " + statusStyle.Render(FormatStatusIndicator(opts.StatusRunning))
		}
		titleSegment += " ]"
	}

	titleWidth := ansi.StringWidth(titleSegment)
	if titleWidth > innerWidth-leftFiller {
		titleSegment, titleWidth = "", 0
	}
	rightFiller := max(innerWidth-leftFiller-titleWidth, 0)

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.TopLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, min(leftFiller, innerWidth))))
	result.WriteString(titleSegment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Top, rightFiller)))
	result.WriteString(borderStyle.Render(border.TopRight))

	return result.String()
}

// buildBottomBorder creates the bottom border with optional key hints.
func buildBottomBorder(border lipgloss.Border, borderStyle, hintStyle lipgloss.Style, hints string, innerWidth int) string {
	hintSegment := ""
	if hints != "" {
		hintSegment = "[ " + hintStyle.Render(hints) + " ]"
	}
	hintWidth := ansi.StringWidth(hintSegment)

	leftFiller := 2
	if hintSegment == "" || hintWidth > innerWidth-leftFiller {
		// Simple border without hints
		return borderStyle.Render(border.BottomLeft) +
			borderStyle.Render(strings.Repeat(border.Bottom, innerWidth)) +
			borderStyle.Render(border.BottomRight)
	}
	rightFiller := innerWidth - leftFiller - hintWidth

	var result strings.Builder
	result.WriteString(borderStyle.Render(border.BottomLeft))
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, leftFiller)))
	result.WriteString(hintSegment)
	result.WriteString(borderStyle.Render(strings.Repeat(border.Bottom, rightFiller)))
	result.WriteString(borderStyle.Render(border.BottomRight))

	return result.String()
}
