// Package assets exposes the pre-rendered audio files referenced by the line
// bank: existence checks at resolution time and public URL construction.
package assets

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store serves audio assets from a local directory under a public base URL.
type Store struct {
	dir  string
	base string
}

// NewStore creates the asset directory if absent and returns a store whose
// URLs resolve against base (trailing slash trimmed).
func NewStore(dir, base string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create asset directory %s: %w", dir, err)
	}
	return &Store{dir: dir, base: strings.TrimRight(base, "/")}, nil
}

// Dir returns the local asset directory, for static file serving.
func (s *Store) Dir() string {
	return s.dir
}

// Exists reports whether the named asset is present on disk.
func (s *Store) Exists(file string) bool {
	info, err := os.Stat(filepath.Join(s.dir, file))
	return err == nil && !info.IsDir()
}

// PublicURL returns the externally reachable URL for the named asset.
func (s *Store) PublicURL(file string) string {
	return s.base + "/audio/" + file
}
