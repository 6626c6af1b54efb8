package ui

import (
	_ "embed"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

//go:embed banner.txt
var bannerText string

// Banner returns the startup banner, gradient-tinted when stdout is a
// terminal.
func Banner() string {
	if !IsTTY() {
		return bannerText
	}

	// Tint line by line from primary toward muted.
	colors := []string{currentTheme.Primary, currentTheme.Primary, currentTheme.Command, currentTheme.Muted}
	lines := strings.Split(strings.TrimRight(bannerText, "\n"), "\n")
	var b strings.Builder
	for i, line := range lines {
		c := colors[i*len(colors)/len(lines)]
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Render(line))
		b.WriteByte('\n')
	}
	return b.String()
}
