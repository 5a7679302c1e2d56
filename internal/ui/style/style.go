// Package style provides semantic terminal styling using lipgloss.
//
// All styling is semantic (Success, Warning, Error, etc.) rather than
// visual. When disabled, every helper returns its input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle  lipgloss.Style
	warningStyle  lipgloss.Style
	errorStyle    lipgloss.Style
	infoStyle     lipgloss.Style
	headerStyle   lipgloss.Style
	mutedStyle    lipgloss.Style
	promptStyle   lipgloss.Style
	selectedStyle lipgloss.Style
)

// Init sets the styling state for the process. NO_COLOR or CMDTREE_NO_COLOR
// (any non-empty value) force styling off regardless of enable.
//
// cfg supplies the theme and per-color overrides; nil means defaults.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("CMDTREE_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable
	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// GetColors returns the active color configuration.
func GetColors() ColorConfig {
	return colors
}

func initStyles(colors ColorConfig) {
	lipgloss.SetColorProfile(termenv.ANSI256)

	successStyle = makeStyle(colors.Success)
	warningStyle = makeStyle(colors.Warning)
	errorStyle = makeStyle(colors.Error)
	infoStyle = makeStyle(colors.Info)
	mutedStyle = makeStyle(colors.Muted)
	headerStyle = makeStyle(colors.Header)
	promptStyle = makeStyle(colors.Prompt).Bold(true)
	selectedStyle = makeStyle(colors.Selected).Reverse(true)
}

// makeStyle accepts "bold" or an ANSI color number (0-255).
func makeStyle(value string) lipgloss.Style {
	if value == "bold" {
		return lipgloss.NewStyle().Bold(true)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(value))
}

func render(s lipgloss.Style, text string) string {
	if !enabled {
		return text
	}
	return s.Render(text)
}

// Enabled returns whether styling is currently enabled.
func Enabled() bool {
	return enabled
}

// Success styles text for successful operations.
func Success(text string) string { return render(successStyle, text) }

// Warning styles text for warning messages.
func Warning(text string) string { return render(warningStyle, text) }

// Error styles text for error messages.
func Error(text string) string { return render(errorStyle, text) }

// Info styles command names and other highlighted values.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section headers in help output.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary information.
func Muted(text string) string { return render(mutedStyle, text) }

// Prompt styles the shell prompt.
func Prompt(text string) string { return render(promptStyle, text) }

// Selected styles the highlighted completion candidate in the shell.
func Selected(text string) string { return render(selectedStyle, text) }
