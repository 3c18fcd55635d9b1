package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/seabearDEV/minigrep-go/internal/highlight"
)

var (
	// ErrNotEnoughArguments is returned when the query or file name is missing.
	ErrNotEnoughArguments = errors.New("not enough arguments")
	// ErrTooManyArguments is returned when extra positional arguments follow the file name.
	ErrTooManyArguments = errors.New("too many arguments")
	// ErrEmptyQuery is returned when the query is an empty string.
	ErrEmptyQuery = errors.New("query must not be empty")
	// ErrEmptyFilename is returned when the file name is an empty string.
	ErrEmptyFilename = errors.New("file name must not be empty")
)

// Config represents the settings of a single search run.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
	LineNumbers   bool
	Color         string
	Highlight     string
	Jobs          int
}

var (
	ValidColorModes     = []string{"auto", "always", "never"}
	ValidHighlightModes = []string{"first", "positional"}
)

// Default returns a Config with every option at its default value.
func Default() Config {
	return Config{
		Color:     "auto",
		Highlight: "first",
		Jobs:      1,
	}
}

// New builds a Config from positional arguments: query then file name.
func New(args []string) (Config, error) {
	cfg := Default()
	if err := cfg.SetArgs(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// SetArgs fills Query and Filename from positional arguments.
func (c *Config) SetArgs(args []string) error {
	if len(args) < 2 {
		return ErrNotEnoughArguments
	}
	if len(args) > 2 {
		return fmt.Errorf("%w: expected <query> <file>, got %d", ErrTooManyArguments, len(args))
	}
	c.Query = args[0]
	c.Filename = args[1]
	return c.validateArgs()
}

func (c Config) validateArgs() error {
	if c.Query == "" {
		return ErrEmptyQuery
	}
	if c.Filename == "" {
		return ErrEmptyFilename
	}
	return nil
}

// Validate checks option values.
func (c Config) Validate() error {
	if err := c.validateArgs(); err != nil {
		return err
	}
	if !contains(ValidColorModes, c.Color) {
		return fmt.Errorf("invalid color mode: '%s'. Must be one of: %s", c.Color, strings.Join(ValidColorModes, ", "))
	}
	if !contains(ValidHighlightModes, c.Highlight) {
		return fmt.Errorf("invalid highlight mode: '%s'. Must be one of: %s", c.Highlight, strings.Join(ValidHighlightModes, ", "))
	}
	if c.Jobs < 1 {
		return fmt.Errorf("invalid jobs: %d. Must be at least 1", c.Jobs)
	}
	return nil
}

// HighlightMode returns the parsed highlight mode.
func (c Config) HighlightMode() highlight.Mode {
	mode, err := highlight.ParseMode(c.Highlight)
	if err != nil {
		return highlight.ModeFirstOccurrence
	}
	return mode
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
