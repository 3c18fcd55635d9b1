package search

import (
	"context"
	"strings"

	"golang.org/x/sync/errgroup"
)

// LineMatches holds the matches found on a single line.
type LineMatches struct {
	Index   int // 0-based line number, counting every line
	Content string
	Matches []Match
}

// Options controls how lines are matched.
type Options struct {
	CaseSensitive bool
}

func (o Options) find(query, line string) []Match {
	if o.CaseSensitive {
		return FindExactMatches(query, line)
	}
	return FindMatches(query, line)
}

// Search returns every line of contents containing query (case-insensitively),
// in line order. Lines without a match are omitted.
func Search(query, contents string) []LineMatches {
	return SearchWith(query, contents, Options{})
}

// SearchWith is Search with explicit options.
func SearchWith(query, contents string, opts Options) []LineMatches {
	var results []LineMatches
	for i, line := range SplitLines(contents) {
		matches := opts.find(query, line)
		if len(matches) == 0 {
			continue
		}
		results = append(results, LineMatches{Index: i, Content: line, Matches: matches})
	}
	return results
}

// SearchConcurrent matches lines on up to workers goroutines. The result is
// identical to SearchWith: ordered by line index.
func SearchConcurrent(ctx context.Context, query, contents string, opts Options, workers int) ([]LineMatches, error) {
	lines := SplitLines(contents)
	if workers <= 1 || len(lines) < 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return SearchWith(query, contents, opts), nil
	}

	// one slot per line keeps file order without a sort
	slots := make([][]Match, len(lines))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for _, chunk := range chunkRanges(len(lines), workers) {
		g.Go(func() error {
			for i := chunk[0]; i < chunk[1]; i++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				slots[i] = opts.find(query, lines[i])
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var results []LineMatches
	for i, matches := range slots {
		if len(matches) == 0 {
			continue
		}
		results = append(results, LineMatches{Index: i, Content: lines[i], Matches: matches})
	}
	return results, nil
}

// chunkRanges splits [0,n) into at most parts contiguous half-open ranges.
func chunkRanges(n, parts int) [][2]int {
	if parts > n {
		parts = n
	}
	size := (n + parts - 1) / parts
	ranges := make([][2]int, 0, parts)
	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}
		ranges = append(ranges, [2]int{start, end})
	}
	return ranges
}

// SplitLines splits contents on '\n'. A trailing "\r" is dropped from each
// line, a final line without a terminator is kept, and a trailing terminator
// does not produce an extra empty line.
func SplitLines(contents string) []string {
	if contents == "" {
		return nil
	}
	lines := strings.Split(contents, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
