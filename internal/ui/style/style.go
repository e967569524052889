// Package style provides semantic terminal styling using lipgloss.
//
// This package is the only place outside the help browser where lipgloss is
// imported. All styling is semantic (Success, Option, Type, ...) rather than
// visual. When disabled, all helpers return the input unchanged.
package style

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	enabled bool
	colors  ColorConfig

	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	errorStyle   lipgloss.Style
	infoStyle    lipgloss.Style
	headerStyle  lipgloss.Style
	mutedStyle   lipgloss.Style
	optionStyle  lipgloss.Style
	typeStyle    lipgloss.Style
	valueStyle   lipgloss.Style
)

// Init sets the styling state from the enable switch and the config map.
// NO_COLOR and ARGSPEC_NO_COLOR disable styling regardless of enable.
// cfg supplies "theme" and per-color overrides; nil means defaults.
func Init(enable bool, cfg map[string]string) {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("ARGSPEC_NO_COLOR") != "" {
		enabled = false
		return
	}

	enabled = enable

	if enabled {
		colors = LoadColorConfig(cfg)
		initStyles(colors)
	}
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
	optionStyle = makeStyle(colors.Option)
	typeStyle = makeStyle(colors.Type)
	valueStyle = makeStyle(colors.Value)
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

// Info styles text for informational messages and command names.
func Info(text string) string { return render(infoStyle, text) }

// Header styles section headers.
func Header(text string) string { return render(headerStyle, text) }

// Muted styles secondary text such as descriptions.
func Muted(text string) string { return render(mutedStyle, text) }

// Option styles option names like -size.
func Option(text string) string { return render(optionStyle, text) }

// Type styles argument type names like <vec3>.
func Type(text string) string { return render(typeStyle, text) }

// Value styles parsed values in check output.
func Value(text string) string { return render(valueStyle, text) }
