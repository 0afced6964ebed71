// Package store reads and writes roster data files.
package store

import (
	"os"
	"path/filepath"

	"github.com/flarebyte/workers/internal/roster"
)

// Exists reports whether path is present on disk.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Load reads the roster at path. A document that is not a list of
// worker-shaped objects yields a *ParseError.
func Load(path string) (roster.Roster, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := codecFor(path)
	if err := validate(c, path, data); err != nil {
		return nil, err
	}
	var r roster.Roster
	if err := c.decode(data, &r); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}
	return nonNil(r), nil
}

// Marshal returns the on-disk bytes of r for the format implied by path.
func Marshal(path string, r roster.Roster) ([]byte, error) {
	return codecFor(path).encode(r)
}

// Save rewrites path with the full roster, creating parent directories.
// The content goes to a temporary sibling first and is renamed into place.
func Save(path string, r roster.Roster) error {
	b, err := Marshal(path, r)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(b); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return err
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return err
	}
	return nil
}
