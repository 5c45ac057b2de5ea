package session

import (
	"fmt"
	"os"
	"path/filepath"
)

// writeAtomic writes payload to a sibling temp file and renames it over
// path, so a reader never observes a partially written document.
func writeAtomic(path string, payload []byte) error {
	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, ".last_run-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %s: %w", dir, err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(payload); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("write temp file %s: %w", tmpName, err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close temp file %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename %s to %s: %w", tmpName, path, err)
	}

	return nil
}
