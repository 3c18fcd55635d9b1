package fileutil

import (
	"path/filepath"
	"strings"

	afsurl "github.com/viant/afs/url"
)

// ResolveURL returns a storage URL for path. Paths that already carry a
// scheme (file://, mem://, ...) are returned as-is; plain paths become
// absolute file:// URLs.
func ResolveURL(path string) (string, error) {
	path = strings.TrimSpace(path)
	if afsurl.Scheme(path, "") != "" {
		return path, nil
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return "file://" + filepath.ToSlash(abs), nil
}

