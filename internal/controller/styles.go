package controller

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const logoArt = `
    | |_)      \ \  /    | |
    |_|_)etter  \_\/ue   |_|nstaller
`

// Terminal styles shared by the TUI components.
var (
	styleBar     = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleIntro   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("6")).Padding(0, 1)
	styleTitle   = lipgloss.NewStyle().Bold(true)
	styleStep    = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	styleSuccess = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	styleWarn    = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	styleError   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	styleHint    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleCursor  = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
	styleOutro   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#30D2BE"))
)

// logoGradient runs from deep purple to teal.
var logoGradient = []lipgloss.Color{"#473B7B", "#3F5E91", "#3584A7", "#32ABB3", "#30D2BE"}

// renderLogo colours each non-empty line of the logo with the next gradient
// stop.
func renderLogo() string {
	lines := strings.Split(strings.Trim(logoArt, "\n"), "\n")

	var b strings.Builder

	b.WriteString("\n")

	for i, line := range lines {
		color := logoGradient[i*(len(logoGradient)-1)/max(len(lines)-1, 1)]
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(line))
		b.WriteString("\n")
	}

	return b.String()
}

func plainLogo() string {
	return strings.TrimLeft(logoArt, "\n")
}
