package format

import (
	"github.com/seabearDEV/minigrep-go/internal/highlight"
)

// Segments renders highlight segments for the terminal: exact-case text in
// green, case-folded text in yellow, plain text untouched.
var Segments highlight.Renderer = highlight.RendererFunc(renderSegment)

func renderSegment(seg highlight.Segment) string {
	switch seg.Style {
	case highlight.StyleExact:
		return styled(exactStyle, seg.Text)
	case highlight.StyleFolded:
		return styled(foldedStyle, seg.Text)
	default:
		return seg.Text
	}
}
