package format

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/seabearDEV/minigrep-go/internal/highlight"
	"github.com/seabearDEV/minigrep-go/internal/search"
	"github.com/stretchr/testify/assert"
)

func renderLine(query, line string) string {
	return highlight.Line(search.FindMatches(query, line), line, highlight.ModeFirstOccurrence, Segments)
}

func TestSegmentsWithoutColors(t *testing.T) {
	SetColorsEnabled(false)
	defer SetColorsEnabled(true)

	line := "Rust: rust"
	assert.Equal(t, line, renderLine("Rust", line))
	assert.Equal(t, "✗ boom", Error("boom"))
}

func TestSegmentsWithColors(t *testing.T) {
	ForceColors()

	line := "Duct tape and duct glue."
	got := renderLine("duct", line)

	assert.NotEqual(t, line, got)
	assert.True(t, strings.Contains(got, "\x1b["), "expected ANSI sequences in %q", got)
	assert.Equal(t, line, ansi.Strip(got))
}

func TestSegmentsKeepTabs(t *testing.T) {
	ForceColors()

	line := "key\tvalue and KEY\tVALUE"
	assert.Equal(t, line, ansi.Strip(renderLine("key\tvalue", line)))
}

func TestLineNumber(t *testing.T) {
	SetColorsEnabled(false)
	defer SetColorsEnabled(true)

	assert.Equal(t, "  3:", LineNumber(2, 3))
	assert.Equal(t, "10:", LineNumber(9, 2))
	assert.Equal(t, 1, GutterWidth(8))
	assert.Equal(t, 2, GutterWidth(9))
	assert.Equal(t, 3, GutterWidth(120))
}
