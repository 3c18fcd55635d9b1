package highlight

import (
	"testing"

	"github.com/seabearDEV/minigrep-go/internal/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var brackets = Wrap(map[Style][2]string{
	StyleExact:  {"[", "]"},
	StyleFolded: {"{", "}"},
})

func TestRenderMatch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		line  string
		mode  Mode
		want  []Segment
	}{
		{
			name:  "exact case is one segment",
			query: "Rust", line: "Rust", mode: ModeFirstOccurrence,
			want: []Segment{{"Rust", StyleExact}},
		},
		{
			name:  "first occurrence leading capital",
			query: "duct", line: "Duct", mode: ModeFirstOccurrence,
			want: []Segment{{"D", StyleFolded}, {"uct", StyleExact}},
		},
		{
			name:  "first occurrence alternating",
			query: "rust", line: "rUsT", mode: ModeFirstOccurrence,
			want: []Segment{{"r", StyleExact}, {"U", StyleFolded}, {"s", StyleExact}, {"T", StyleFolded}},
		},
		{
			name:  "positional alternating",
			query: "rust", line: "rUsT", mode: ModePositional,
			want: []Segment{{"r", StyleExact}, {"U", StyleFolded}, {"s", StyleExact}, {"T", StyleFolded}},
		},
		{
			name:  "first occurrence marks a later rune",
			query: "Aa", line: "aA", mode: ModeFirstOccurrence,
			want: []Segment{{"a", StyleFolded}, {"A", StyleExact}},
		},
		{
			name:  "positional keeps alignment",
			query: "Aa", line: "aA", mode: ModePositional,
			want: []Segment{{"aA", StyleFolded}},
		},
		{
			name:  "no exact rune at all",
			query: "ABC", line: "abc", mode: ModeFirstOccurrence,
			want: []Segment{{"abc", StyleFolded}},
		},
		{
			name:  "multibyte positional",
			query: "żółw", line: "ŻóŁw", mode: ModePositional,
			want: []Segment{{"Ż", StyleFolded}, {"ó", StyleExact}, {"Ł", StyleFolded}, {"w", StyleExact}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matches := search.FindMatches(tt.query, tt.line)
			require.Len(t, matches, 1)

			got := RenderMatch(matches[0], tt.line, tt.mode)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.line, Text(got))
		})
	}
}

func TestRenderMatchPositionalLengthMismatch(t *testing.T) {
	// span and query rune counts differ, e.g. when a caller builds the match by hand
	m := search.Match{Start: 0, End: 3, Query: "ab"}
	got := RenderMatch(m, "abc", ModePositional)

	assert.Equal(t, []Segment{{"abc", StyleFolded}}, got)
}

func TestAssemble(t *testing.T) {
	line := "Rust: rust"
	matches := search.FindMatches("Rust", line)

	assert.Equal(t, "[Rust]: {r}[ust]", Line(matches, line, ModeFirstOccurrence, brackets))
	assert.Equal(t, "[Rust]: {r}[ust]", Line(matches, line, ModePositional, brackets))
	assert.Equal(t, line, Line(matches, line, ModeFirstOccurrence, Plain))
}

func TestAssembleNoMatches(t *testing.T) {
	for _, line := range []string{"", "nothing to see", "  tabs\tand spaces  "} {
		assert.Equal(t, line, Line(nil, line, ModeFirstOccurrence, brackets))
		assert.Equal(t, line, Text(Assemble([]search.Match{}, line, ModePositional)))
	}
}

func TestAssembleDefensive(t *testing.T) {
	line := "abcdefghij"
	matches := []search.Match{
		{Start: 6, End: 8, ExactCase: true, Query: "gh"},
		{Start: 0, End: 2, ExactCase: true, Query: "ab"},
		{Start: 1, End: 3, ExactCase: true, Query: "bc"},  // overlaps the first
		{Start: 8, End: 20, ExactCase: true, Query: "ij"}, // past the end
		{Start: 4, End: 4, ExactCase: true, Query: ""},    // empty span
	}

	got := Assemble(matches, line, ModeFirstOccurrence)

	assert.Equal(t, line, Text(got))
	assert.Equal(t, "[ab]cdef[gh]ij", Join(got, brackets))
	// input order is left untouched
	assert.Equal(t, 6, matches[0].Start)
}

func TestAssembleRoundTrip(t *testing.T) {
	lines := []string{
		"safe, fast, productive.",
		"Duct tape. DUCT tape. duct.",
		"tttTTTttt",
		"Żółw ŻÓŁW żółw",
		"Ⱥx ab AB ⱥ",
	}
	queries := []string{"duct", "t", "tT", "żółw", "ab", "ⱥ", "a"}

	for _, mode := range []Mode{ModeFirstOccurrence, ModePositional} {
		for _, line := range lines {
			for _, query := range queries {
				segments := Assemble(search.FindMatches(query, line), line, mode)
				assert.Equal(t, line, Text(segments), "mode=%s query=%q", mode, query)
			}
		}
	}
}

func TestParseMode(t *testing.T) {
	m, err := ParseMode("positional")
	require.NoError(t, err)
	assert.Equal(t, ModePositional, m)

	m, err = ParseMode("first")
	require.NoError(t, err)
	assert.Equal(t, ModeFirstOccurrence, m)

	_, err = ParseMode("regex")
	assert.Error(t, err)
}
