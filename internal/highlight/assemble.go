package highlight

import (
	"sort"
	"strings"

	"github.com/seabearDEV/minigrep-go/internal/search"
)

// Assemble interleaves the unmatched parts of line with the rendered matches.
// Matches are taken in start order; a match that overlaps an earlier one or
// falls outside the line is skipped, so Text(Assemble(matches, line, mode))
// always equals line.
func Assemble(matches []search.Match, line string, mode Mode) []Segment {
	if len(matches) == 0 {
		return appendSegment(nil, line, StylePlain)
	}

	ordered := matches
	if !sort.SliceIsSorted(matches, func(i, j int) bool { return matches[i].Start < matches[j].Start }) {
		ordered = make([]search.Match, len(matches))
		copy(ordered, matches)
		sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].Start < ordered[j].Start })
	}

	var segments []Segment
	lastEnd := 0
	for _, m := range ordered {
		if m.Start < lastEnd || m.End <= m.Start || m.End > len(line) {
			continue
		}
		segments = appendSegment(segments, line[lastEnd:m.Start], StylePlain)
		for _, seg := range RenderMatch(m, line, mode) {
			segments = appendSegment(segments, seg.Text, seg.Style)
		}
		lastEnd = m.End
	}
	return appendSegment(segments, line[lastEnd:], StylePlain)
}

// Join renders each segment with r and concatenates the results.
func Join(segments []Segment, r Renderer) string {
	var sb strings.Builder
	for _, seg := range segments {
		sb.WriteString(r.Render(seg))
	}
	return sb.String()
}

// Line assembles and renders one output line.
func Line(matches []search.Match, line string, mode Mode, r Renderer) string {
	return Join(Assemble(matches, line, mode), r)
}
