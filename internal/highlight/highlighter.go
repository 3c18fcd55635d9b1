package highlight

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/seabearDEV/minigrep-go/internal/search"
)

// Mode selects how a case-folded match is broken down into segments.
type Mode int

const (
	// ModeFirstOccurrence marks, for each query rune in turn, the first
	// exact occurrence of that rune at or after the previous mark.
	ModeFirstOccurrence Mode = iota
	// ModePositional compares the match and the query rune by rune.
	ModePositional
)

// ParseMode converts a mode name ("first" or "positional") to a Mode.
func ParseMode(name string) (Mode, error) {
	switch name {
	case "first", "":
		return ModeFirstOccurrence, nil
	case "positional":
		return ModePositional, nil
	default:
		return 0, fmt.Errorf("unknown highlight mode: %s", name)
	}
}

func (m Mode) String() string {
	if m == ModePositional {
		return "positional"
	}
	return "first"
}

// RenderMatch splits the matched span of line into styled segments. The
// concatenated text of the result always equals m.Text(line).
func RenderMatch(m search.Match, line string, mode Mode) []Segment {
	span := m.Text(line)
	if m.ExactCase {
		return []Segment{{Text: span, Style: StyleExact}}
	}
	if mode == ModePositional {
		return renderPositional(span, m.Query)
	}
	return renderFirstOccurrence(span, m.Query)
}

func renderFirstOccurrence(span, query string) []Segment {
	var segments []Segment
	cursor := 0
	for _, r := range query {
		idx := strings.IndexRune(span[cursor:], r)
		if idx < 0 {
			// no exact-case occurrence left; keep the cursor where it is
			continue
		}
		at := cursor + idx
		size := utf8.RuneLen(r)
		if r == utf8.RuneError {
			_, size = utf8.DecodeRuneInString(span[at:])
		}
		segments = appendSegment(segments, span[cursor:at], StyleFolded)
		segments = appendSegment(segments, span[at:at+size], StyleExact)
		cursor = at + size
	}
	return appendSegment(segments, span[cursor:], StyleFolded)
}

func renderPositional(span, query string) []Segment {
	if utf8.RuneCountInString(span) != utf8.RuneCountInString(query) {
		return []Segment{{Text: span, Style: StyleFolded}}
	}
	var segments []Segment
	qi := 0
	for si := 0; si < len(span); {
		sr, ssize := utf8.DecodeRuneInString(span[si:])
		qr, qsize := utf8.DecodeRuneInString(query[qi:])
		style := StyleFolded
		if sr == qr && ssize == qsize {
			style = StyleExact
		}
		segments = appendSegment(segments, span[si:si+ssize], style)
		si += ssize
		qi += qsize
	}
	return segments
}
