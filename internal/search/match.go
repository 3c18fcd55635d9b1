package search

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Match is one occurrence of a query within a line. Start and End are byte
// offsets into the original line.
type Match struct {
	Start     int
	End       int
	ExactCase bool // line[Start:End] == Query byte-for-byte
	Query     string
}

// Text returns the matched span of line.
func (m Match) Text(line string) string {
	return line[m.Start:m.End]
}

// FindMatches returns all case-insensitive, non-overlapping occurrences of
// query in line, ordered by start offset. An empty query matches nothing.
func FindMatches(query, line string) []Match {
	if query == "" || line == "" {
		return nil
	}
	lowerQuery := strings.ToLower(query)

	if foldKeepsOffsets(line) && foldKeepsOffsets(query) {
		lower := strings.ToLower(line)
		var matches []Match
		pos := 0
		for {
			idx := strings.Index(lower[pos:], lowerQuery)
			if idx < 0 {
				break
			}
			start := pos + idx
			end := start + len(query)
			matches = append(matches, newMatch(query, line, start, end))
			pos = end
		}
		return matches
	}

	return findFolded(query, lowerQuery, line)
}

// FindExactMatches returns all byte-exact, non-overlapping occurrences of
// query in line.
func FindExactMatches(query, line string) []Match {
	if query == "" || line == "" {
		return nil
	}
	var matches []Match
	pos := 0
	for {
		idx := strings.Index(line[pos:], query)
		if idx < 0 {
			break
		}
		start := pos + idx
		end := start + len(query)
		matches = append(matches, Match{Start: start, End: end, ExactCase: true, Query: query})
		pos = end
	}
	return matches
}

func newMatch(query, line string, start, end int) Match {
	return Match{
		Start:     start,
		End:       end,
		ExactCase: line[start:end] == query,
		Query:     query,
	}
}

// findFolded steps rune by rune through line so offsets stay in original
// coordinates when lowercasing changes the byte width of some rune.
func findFolded(query, lowerQuery, line string) []Match {
	queryRunes := utf8.RuneCountInString(query)
	var matches []Match
	for i := 0; i < len(line); {
		end, ok := advanceRunes(line, i, queryRunes)
		if ok && strings.ToLower(line[i:end]) == lowerQuery {
			matches = append(matches, newMatch(query, line, i, end))
			i = end
			continue
		}
		_, size := utf8.DecodeRuneInString(line[i:])
		i += size
	}
	return matches
}

func advanceRunes(s string, from, n int) (int, bool) {
	i := from
	for ; n > 0; n-- {
		if i >= len(s) {
			return 0, false
		}
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i, true
}

// foldKeepsOffsets reports whether lowercasing s leaves every rune at the
// same byte width.
func foldKeepsOffsets(s string) bool {
	for i := 0; i < len(s); {
		c := s[i]
		if c < utf8.RuneSelf {
			i++
			continue
		}
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			return false
		}
		if utf8.RuneLen(unicode.ToLower(r)) != size {
			return false
		}
		i += size
	}
	return true
}
