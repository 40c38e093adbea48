package content

import "github.com/avitaltamir/rostui/internal/theme"

func tutorial() []string {
	return []string{
		theme.TextH1.Render("Keybindings"),
		"Tab: Focus between different panels",
		"Left/Right: Switch the carousel between nodes, packages and services",
		"Up/Down: Scroll, change selection or browse command history",
		"Enter: Select",
		"Type: Focus the command input",
		"Ctrl+C: Exit",
		"",
		theme.TextH1.Render("Commands"),
		"Run 'help' to view the list of available commands.",
		"",
		theme.TextMutedStyle.Render("When you run a command or select something it will appear in this window."),
		theme.TextMutedStyle.Render("This message always shows on startup."),
	}
}
