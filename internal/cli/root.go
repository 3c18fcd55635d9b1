package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/seabearDEV/minigrep-go/internal/config"
	"github.com/seabearDEV/minigrep-go/internal/format"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time via ldflags.
	Version = "dev"
	// Commit is set at build time via ldflags.
	Commit = "none"
	// Debug enables debug output when true.
	Debug bool
)

// NewRootCmd creates the root cobra command. It searches a single file for a
// query and prints every matching line with the matches highlighted.
func NewRootCmd() *cobra.Command {
	cfg := config.Default()

	rootCmd := &cobra.Command{
		Use:   "minigrep <query> <file>",
		Short: "Search a file for a string and highlight every case-insensitive match",
		Long: `Search a file for a string and highlight every case-insensitive match.

Matches whose case agrees with the query are shown in green; matches that only
agree after case folding are broken down so that letters differing in case
are shown in yellow.`,
		Version: Version,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cfg.SetArgs(args); err != nil {
				return fmt.Errorf("problem parsing arguments: %w", err)
			}
			return nil
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if Debug {
				os.Setenv("DEBUG", "true")
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			applyColorMode(cfg.Color, cmd.OutOrStdout())
			debugLog("config: %+v colors=%v", cfg, format.ColorsEnabled())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cfg, cmd.OutOrStdout())
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.BoolVarP(&cfg.CaseSensitive, "case-sensitive", "s", cfg.CaseSensitive, "Only match the query's exact case")
	flags.BoolVarP(&cfg.LineNumbers, "line-number", "n", cfg.LineNumbers, "Prefix each line with its line number")
	flags.StringVar(&cfg.Color, "color", cfg.Color, "When to colorize output (auto, always, never)")
	flags.StringVar(&cfg.Highlight, "highlight", cfg.Highlight, "How to mark case differences (first, positional)")
	flags.IntVarP(&cfg.Jobs, "jobs", "j", cfg.Jobs, "Number of goroutines used to match lines")

	rootCmd.PersistentFlags().BoolVar(&Debug, "debug", false, "Enable debug output")
	rootCmd.SetVersionTemplate(fmt.Sprintf("minigrep version %s (commit: %s)\n", Version, Commit))

	return rootCmd
}

// Execute runs the root command.
func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, format.Error(err.Error()))
		os.Exit(1)
	}
}

func applyColorMode(mode string, out io.Writer) {
	switch mode {
	case "always":
		format.ForceColors()
	case "never":
		format.SetColorsEnabled(false)
	default:
		format.SetColorsEnabled(isTTY(out))
	}
}

// debugLog prints a debug message if debug mode is enabled.
func debugLog(format string, args ...any) {
	if Debug || os.Getenv("DEBUG") == "true" {
		fmt.Fprintf(os.Stderr, "[debug] "+format+"\n", args...)
	}
}
