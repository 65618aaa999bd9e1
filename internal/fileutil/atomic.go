// Package fileutil writes generated files without exposing partial output.
package fileutil

import (
	"fmt"
	"go/format"
	"os"
	"path/filepath"
)

// WriteFileAtomic writes data to a temporary file beside filename and renames
// it into place, so readers see either the old file or the complete new one.
func WriteFileAtomic(filename string, data []byte, perm os.FileMode) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(filename), filepath.Base(filename)+".tmp.*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err = tmp.Sync(); err != nil {
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err = tmp.Chmod(perm); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	// Same directory, so the rename stays on one filesystem.
	if err = os.Rename(tmp.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

// WriteGoSource gofmts generated Go source and writes it atomically. Source
// that does not parse is rejected and the existing file is left alone.
func WriteGoSource(filename string, src []byte) error {
	formatted, err := format.Source(src)
	if err != nil {
		return fmt.Errorf("generated source for %s does not parse: %w", filepath.Base(filename), err)
	}
	return WriteFileAtomic(filename, formatted, 0o644)
}
