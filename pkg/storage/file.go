package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

// File keeps the outline in a single file on disk. Writes replace the
// whole file atomically (temp file + rename) so a crashed download
// never leaves a half-written outline behind.
type File struct {
	Path string
}

func NewFile(path string) *File {
	return &File{Path: path}
}

// Read returns the outline text. A missing file reads as an empty
// outline.
func (f *File) Read() (string, error) {
	b, err := os.ReadFile(f.Path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read outline %s: %w", f.Path, err)
	}
	return string(b), nil
}

// Write replaces the outline contents.
func (f *File) Write(text string) error {
	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create outline directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".outline-*")
	if err != nil {
		return fmt.Errorf("failed to create temp outline: %w", err)
	}
	if _, err := tmp.WriteString(text); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to write outline: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to close temp outline: %w", err)
	}
	if err := os.Rename(tmp.Name(), f.Path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace outline %s: %w", f.Path, err)
	}
	return nil
}
