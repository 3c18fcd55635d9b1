package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/seabearDEV/minigrep-go/internal/config"
	"github.com/seabearDEV/minigrep-go/internal/fileutil"
	"github.com/seabearDEV/minigrep-go/internal/format"
	"github.com/seabearDEV/minigrep-go/internal/highlight"
	"github.com/seabearDEV/minigrep-go/internal/search"
)

// runSearch reads the configured file, searches it and writes highlighted
// matching lines to out in line order.
func runSearch(ctx context.Context, cfg config.Config, out io.Writer) error {
	contents, err := fileutil.ReadText(ctx, cfg.Filename)
	if err != nil {
		return err
	}
	debugLog("read %d bytes from %s", len(contents), cfg.Filename)

	opts := search.Options{CaseSensitive: cfg.CaseSensitive}
	var results []search.LineMatches
	if cfg.Jobs > 1 {
		results, err = search.SearchConcurrent(ctx, cfg.Query, contents, opts, cfg.Jobs)
		if err != nil {
			return err
		}
	} else {
		results = search.SearchWith(cfg.Query, contents, opts)
	}
	debugLog("%d matching lines for %q", len(results), cfg.Query)

	return writeResults(out, results, cfg)
}

func writeResults(out io.Writer, results []search.LineMatches, cfg config.Config) error {
	if len(results) == 0 {
		return nil
	}

	mode := cfg.HighlightMode()
	width := format.GutterWidth(results[len(results)-1].Index)

	w := bufio.NewWriter(out)
	for _, res := range results {
		if cfg.LineNumbers {
			if _, err := fmt.Fprint(w, format.LineNumber(res.Index, width)); err != nil {
				return err
			}
		}
		line := highlight.Line(res.Matches, res.Content, mode, format.Segments)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return w.Flush()
}
