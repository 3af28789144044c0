// Package writer emits rendered file sets to disk with an overwrite guard.
package writer

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

var (
	// ErrNotADirectory is returned when the target path is missing or not a
	// directory. The writer never creates the target's parents.
	ErrNotADirectory = errors.New("target path is not an existing directory")

	// ErrFileExists is returned when a destination file already exists and
	// force was not set.
	ErrFileExists = errors.New("file already exists")
)

// WriteFiles writes each entry of files beneath dir. Map keys are
// slash-separated paths relative to dir; one level of subdirectory is created
// as needed. Files are written in sorted key order. Unless force is set, an
// existing destination file aborts the run. Files written before a failure
// are not rolled back; their paths are returned alongside the error.
func WriteFiles(dir string, files map[string]string, force bool) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrNotADirectory, dir)
	}

	rels := make([]string, 0, len(files))
	for rel := range files {
		rels = append(rels, rel)
	}
	sort.Strings(rels)

	var written []string
	for _, rel := range rels {
		dest := filepath.Join(dir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", dest, err)
		}
		if !force {
			if _, err := os.Stat(dest); err == nil {
				return written, fmt.Errorf("%w: %s (use --force to overwrite)", ErrFileExists, dest)
			}
		}
		if err := os.WriteFile(dest, []byte(files[rel]), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", dest, err)
		}
		written = append(written, dest)
	}
	return written, nil
}
