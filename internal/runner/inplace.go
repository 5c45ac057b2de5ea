package runner

import (
	"fmt"
	"os"

	m "mutant.dev/pkg/mutant/internal/model"
)

const backupSuffix = ".mutator.bak"

// InPlace mutates a single project file directly rather than through a
// snapshot, for the legacy `--in-place` mode. A crash mid-run must never
// leave the working tree mutated, so every mutant is bracketed by
// backup-then-restore and the backup doubles as an interrupted-run marker.
type InPlace struct {
	path string
}

// NewInPlace targets the single file at path.
func NewInPlace(path string) *InPlace {
	return &InPlace{path: path}
}

func (p *InPlace) backupPath() string {
	return p.path + backupSuffix
}

// Backup copies the current file content aside before any mutation is
// spliced in, so Restore can undo it even if the process is killed.
func (p *InPlace) Backup() error {
	content, err := os.ReadFile(p.path)
	if err != nil {
		return fmt.Errorf("read %s for backup: %w", p.path, err)
	}

	info, err := os.Stat(p.path)
	if err != nil {
		return fmt.Errorf("stat %s for backup: %w", p.path, err)
	}

	if err := os.WriteFile(p.backupPath(), content, info.Mode().Perm()); err != nil {
		return fmt.Errorf("%w: write backup %s: %v", m.ErrSnapshotFailed, p.backupPath(), err)
	}

	return nil
}

// Restore writes the backed-up content back over path and removes the
// backup file.
func (p *InPlace) Restore() error {
	content, err := os.ReadFile(p.backupPath())
	if err != nil {
		return fmt.Errorf("read backup %s: %w", p.backupPath(), err)
	}

	if err := os.WriteFile(p.path, content, 0o644); err != nil { //nolint:gosec // restoring original project file content
		return fmt.Errorf("restore %s: %w", p.path, err)
	}

	return os.Remove(p.backupPath())
}

// CheckInterrupted reports whether a backup file from a prior, interrupted
// in-place run still exists for path. The in-place run loop does not call
// it before starting; a new Backup overwrites any existing backup.
func CheckInterrupted(path string) (bool, error) {
	_, err := os.Stat(path + backupSuffix)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, fmt.Errorf("stat backup for %s: %w", path, err)
}
