package fileutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/viant/afs"
)

var (
	// ErrFileNotFound is returned when the input file does not exist.
	ErrFileNotFound = errors.New("file not found")
	// ErrBinaryFile is returned when the input does not look like text.
	ErrBinaryFile = errors.New("file is not a text file")
	// ErrInvalidEncoding is returned when the input is not valid UTF-8 (or
	// BOM-marked UTF-16).
	ErrInvalidEncoding = errors.New("file is not valid UTF-8 text")
)

// Reader loads whole files through an afs storage service.
type Reader struct {
	fs afs.Service
}

// NewReader creates a Reader backed by the default afs service.
func NewReader() *Reader {
	return &Reader{fs: afs.New()}
}

// defaultReader is the package-level reader instance.
var defaultReader = NewReader()

// ReadText reads the whole file at path and returns it as UTF-8 text.
// path may be a plain file path or a storage URL.
func (r *Reader) ReadText(ctx context.Context, path string) (string, error) {
	url, err := ResolveURL(path)
	if err != nil {
		return "", fmt.Errorf("invalid path %s: %w", path, err)
	}

	exists, err := r.fs.Exists(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to access %s: %w", path, err)
	}
	if !exists {
		return "", fmt.Errorf("%s: %w", path, ErrFileNotFound)
	}

	data, err := r.fs.DownloadWithURL(ctx, url)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	if !IsTextFile(data) {
		return "", fmt.Errorf("%s: %w", path, ErrBinaryFile)
	}
	text, ok := DecodeText(data)
	if !ok {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidEncoding)
	}
	return text, nil
}

// ReadText reads path with the default reader.
func ReadText(ctx context.Context, path string) (string, error) {
	return defaultReader.ReadText(ctx, path)
}
