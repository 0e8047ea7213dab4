package cli

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Outcome line styles, applied only on a colour-capable terminal.
var (
	appliedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	noopStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
)

// styled renders text through a style unless colour is disabled or
// stdout is not a terminal.
func styled(style lipgloss.Style, text string) string {
	if noColorFlag || !term.IsTerminal(int(os.Stdout.Fd())) {
		return text
	}
	return style.Render(text)
}
