// Package session persists the last Run for a named session as JSON so
// `status` and `show <ref_id>` can report on a run without rerunning it. A
// concurrent reader must never observe a half-written file, hence the
// write-to-temp-then-rename discipline in atomic.go.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	m "mutant.dev/pkg/mutant/internal/model"
)

const (
	appDirName     = "mutant"
	stateFile      = "last_run.json"
	defaultSession = "default"
)

// Store persists SessionState under a per-session directory rooted at
// baseDir.
type Store struct {
	baseDir string
}

// New builds a Store rooted at $XDG_STATE_HOME/mutant, falling back to
// ~/.local/state/mutant when XDG_STATE_HOME is unset.
func New() (*Store, error) {
	root := os.Getenv("XDG_STATE_HOME")
	if root == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home directory: %w", err)
		}

		root = filepath.Join(home, ".local", "state")
	}

	return &Store{baseDir: filepath.Join(root, appDirName)}, nil
}

// NewAt builds a Store rooted at an explicit directory, for tests.
func NewAt(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

// NewSessionID mints a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

func (s *Store) sessionDir(sessionID string) string {
	if sessionID == "" {
		sessionID = defaultSession
	}

	return filepath.Join(s.baseDir, sessionID)
}

// Save writes state as the last run recorded for its session, replacing any
// prior document for that session atomically.
func (s *Store) Save(state m.SessionState) error {
	dir := s.sessionDir(state.SessionID)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("%w: create session dir %s: %v", m.ErrStateIOFailed, dir, err)
	}

	payload, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: marshal session state: %v", m.ErrStateIOFailed, err)
	}

	if err := writeAtomic(filepath.Join(dir, stateFile), payload); err != nil {
		return fmt.Errorf("%w: %v", m.ErrStateIOFailed, err)
	}

	return nil
}

// Load reads back the last run recorded for sessionID ("default" if empty).
func (s *Store) Load(sessionID string) (m.SessionState, error) {
	path := filepath.Join(s.sessionDir(sessionID), stateFile)

	payload, err := os.ReadFile(path)
	if err != nil {
		return m.SessionState{}, fmt.Errorf("%w: read %s: %v", m.ErrStateIOFailed, path, err)
	}

	var state m.SessionState
	if err := json.Unmarshal(payload, &state); err != nil {
		return m.SessionState{}, fmt.Errorf("%w: unmarshal %s: %v", m.ErrStateIOFailed, path, err)
	}

	return state, nil
}
