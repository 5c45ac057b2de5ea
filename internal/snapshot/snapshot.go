// Package snapshot copies a project root into a fresh temp directory per
// mutant, skipping VCS metadata, dependency trees, and caches, with a depth
// cap, symlink-escape detection, and bounded-concurrency file copy.
package snapshot

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"sync/atomic"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	m "mutant.dev/pkg/mutant/internal/model"
)

// maxDepth bounds directory recursion.
const maxDepth = 32

// FindProjectRoot walks up from the directory containing file looking for a
// known marker (.git, Cargo.toml, package.json, pyproject.toml), falling
// back to the current working directory if none is found.
func FindProjectRoot(file m.Path) (string, error) {
	dir, err := filepath.Abs(filepath.Dir(string(file)))
	if err != nil {
		return "", fmt.Errorf("resolve absolute path: %w", err)
	}

	for d := dir; ; {
		for _, marker := range markerFiles {
			if _, err := os.Stat(filepath.Join(d, marker)); err == nil {
				return d, nil
			}
		}

		parent := filepath.Dir(d)
		if parent == d {
			break
		}

		d = parent
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("resolve working directory: %w", err)
	}

	return cwd, nil
}

var snapshotCounter int64

// Snapshotter copies a project root into a fresh temp directory per
// mutant. Snapshots are named with a monotonic counter plus a session id so
// concurrent agents' snapshots never collide.
type Snapshotter struct {
	sessionID string
}

// New builds a Snapshotter namespaced by sessionID ("default" if empty).
func New(sessionID string) *Snapshotter {
	if sessionID == "" {
		sessionID = "default"
	}

	return &Snapshotter{sessionID: sessionID}
}

// Snapshot copies projectRoot into a new temp directory, returning its path
// and a best-effort cleanup func. Failure here aborts only the calling
// mutant with model.ErrSnapshotFailed.
func (s *Snapshotter) Snapshot(ctx context.Context, projectRoot string) (dir string, cleanup func(), err error) {
	n := atomic.AddInt64(&snapshotCounter, 1)
	name := fmt.Sprintf("mutant-%s-%d-%s", s.sessionID, n, uuid.NewString())

	dest := filepath.Join(os.TempDir(), name)
	if err := os.MkdirAll(dest, 0o750); err != nil {
		return "", func() {}, fmt.Errorf("%w: %v", m.ErrSnapshotFailed, err)
	}

	cleanup = func() { _ = os.RemoveAll(dest) }

	if err := copyDir(ctx, projectRoot, projectRoot, dest, 0); err != nil {
		cleanup()
		return "", func() {}, fmt.Errorf("%w: %v", m.ErrSnapshotFailed, err)
	}

	return dest, cleanup, nil
}

// copyDir recursively copies src into dst, rooted at root for symlink-escape
// checks, skipping ignored names and capping recursion at maxDepth. Regular
// files within one directory are copied concurrently via errgroup, bounded
// by NumCPU. Concurrency here is strictly internal to one snapshot and
// never spans mutants; mutants always execute serially.
func copyDir(ctx context.Context, root, src, dst string, depth int) error {
	if depth > maxDepth {
		return nil
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("read dir %s: %w", src, err)
	}

	if err := os.MkdirAll(dst, 0o750); err != nil {
		return fmt.Errorf("create dir %s: %w", dst, err)
	}

	group, gctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())

	for _, entry := range entries {
		name := entry.Name()
		if shouldSkipEntry(name) {
			continue
		}

		srcPath := filepath.Join(src, name)
		dstPath := filepath.Join(dst, name)

		info, err := entry.Info()
		if err != nil {
			return fmt.Errorf("stat %s: %w", srcPath, err)
		}

		if info.Mode()&os.ModeSymlink != 0 {
			if escapesRoot(root, srcPath) {
				continue
			}
		}

		switch {
		case entry.IsDir():
			if err := copyDir(gctx, root, srcPath, dstPath, depth+1); err != nil {
				return err
			}
		case entry.Type().IsRegular():
			mode := info.Mode()
			group.Go(func() error {
				return copyFile(srcPath, dstPath, mode)
			})
		}
	}

	return group.Wait()
}

func copyFile(src, dst string, mode os.FileMode) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer func() { _ = in.Close() }()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode.Perm())
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	defer func() { _ = out.Close() }()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy %s: %w", src, err)
	}

	return nil
}

// escapesRoot reports whether the symlink at path resolves outside root, or
// cannot be resolved at all (treated conservatively as escaping).
func escapesRoot(root, path string) bool {
	target, err := filepath.EvalSymlinks(path)
	if err != nil {
		return true
	}

	rel, err := filepath.Rel(root, target)
	if err != nil {
		return true
	}

	return rel == ".." || len(rel) >= 3 && rel[:3] == "../"
}
