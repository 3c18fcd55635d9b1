package format

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	exactStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true).TabWidth(lipgloss.NoTabConversion) // Green bold
	foldedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3")).TabWidth(lipgloss.NoTabConversion)            // Yellow
	lineNumStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))                                               // Gray
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))                                               // Red
)

// colorsEnabled controls whether output is colorized.
var colorsEnabled = true

// SetColorsEnabled enables or disables color output.
func SetColorsEnabled(enabled bool) {
	colorsEnabled = enabled
}

// ColorsEnabled reports whether output is colorized.
func ColorsEnabled() bool {
	return colorsEnabled
}

// ForceColors enables color output and makes lipgloss emit ANSI sequences even
// when stdout is not a terminal.
func ForceColors() {
	colorsEnabled = true
	lipgloss.SetColorProfile(termenv.ANSI)
}

func styled(s lipgloss.Style, text string) string {
	if !colorsEnabled {
		return text
	}
	return s.Render(text)
}

// Error formats an error message with a red X prefix.
func Error(msg string) string {
	return styled(errorStyle, "✗ ") + msg
}

// LineNumber formats a 0-based line index as a right-aligned 1-based gutter
// of the given width, followed by a colon.
func LineNumber(index, width int) string {
	return styled(lineNumStyle, fmt.Sprintf("%*d", width, index+1)) + ":"
}

// GutterWidth returns the number of digits needed to print 1-based line
// numbers up to lastIndex+1.
func GutterWidth(lastIndex int) int {
	return len(strconv.Itoa(lastIndex + 1))
}
