package highlight

// Style describes how a segment of an output line should be emphasized.
type Style int

const (
	// StylePlain is text outside any match.
	StylePlain Style = iota
	// StyleExact is matched text whose case agrees with the query.
	StyleExact
	// StyleFolded is matched text that only agrees with the query after
	// case folding.
	StyleFolded
)

func (s Style) String() string {
	switch s {
	case StylePlain:
		return "plain"
	case StyleExact:
		return "exact"
	case StyleFolded:
		return "folded"
	default:
		return "unknown"
	}
}

// Segment is a chunk of a line with an associated style.
type Segment struct {
	Text  string
	Style Style
}

// Text returns the concatenated content of segments without any markup.
func Text(segments []Segment) string {
	total := 0
	for _, seg := range segments {
		total += len(seg.Text)
	}
	buf := make([]byte, 0, total)
	for _, seg := range segments {
		buf = append(buf, seg.Text...)
	}
	return string(buf)
}

// appendSegment appends text to segments, merging it into the last segment
// when the style matches. Empty text is dropped.
func appendSegment(segments []Segment, text string, style Style) []Segment {
	if text == "" {
		return segments
	}
	if n := len(segments); n > 0 && segments[n-1].Style == style {
		segments[n-1].Text += text
		return segments
	}
	return append(segments, Segment{Text: text, Style: style})
}
