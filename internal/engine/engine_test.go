package engine

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "mutant.dev/pkg/mutant/internal/model"
)

// writeProject lays out a minimal project rooted at a pyproject.toml marker
// so internal/snapshot.FindProjectRoot resolves deterministically.
func writeProject(t *testing.T) (root, mainPath string) {
	t.Helper()

	root = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "pyproject.toml"), []byte("[tool.poetry]\n"), 0o644))

	mainPath = filepath.Join(root, "calc.py")
	require.NoError(t, os.WriteFile(mainPath, []byte("def add(a, b):\n    return a + b\n"), 0o644))

	return root, mainPath
}

func TestRun_SurvivesWhenTestCommandAlwaysPasses(t *testing.T) {
	_, mainPath := writeProject(t)

	args := m.RunArgs{
		File:        m.Path(mainPath),
		TestFile:    m.Path(mainPath),
		TestCmd:     "true",
		TimeoutMult: 2,
	}

	original, err := os.ReadFile(mainPath)
	require.NoError(t, err)

	run, err := Run(context.Background(), args, slog.New(slog.NewTextHandler(os.Stderr, nil)))
	require.NoError(t, err)

	assert.True(t, run.Baseline.Succeeded())
	assert.NotEmpty(t, run.Outcomes)

	for _, outcome := range run.Outcomes {
		assert.Equal(t, m.Survived, outcome.Result)
	}

	after, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	assert.Equal(t, original, after, "isolated mode must never write to the original tree")
}

func TestRun_BaselineFailsWhenTestCommandAlwaysFails(t *testing.T) {
	_, mainPath := writeProject(t)

	args := m.RunArgs{
		File:        m.Path(mainPath),
		TestFile:    m.Path(mainPath),
		TestCmd:     "false",
		TimeoutMult: 2,
	}

	_, err := Run(context.Background(), args, nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, m.ErrBaselineFailed)
}

func TestRun_UnsupportedLanguageFailsFast(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("# notes\n"), 0o644))

	_, err := Run(context.Background(), m.RunArgs{File: m.Path(path), TimeoutMult: 1}, nil)
	assert.ErrorIs(t, err, m.ErrUnsupportedLanguage)
}

func TestRun_FunctionScopeNotFound(t *testing.T) {
	_, mainPath := writeProject(t)

	args := m.RunArgs{
		File:        m.Path(mainPath),
		TestFile:    m.Path(mainPath),
		TestCmd:     "true",
		Function:    "missing_function",
		TimeoutMult: 2,
	}

	_, err := Run(context.Background(), args, nil)
	assert.ErrorIs(t, err, m.ErrFunctionNotFound)
}

func TestRun_InPlaceRestoresOriginalContent(t *testing.T) {
	_, mainPath := writeProject(t)

	original, err := os.ReadFile(mainPath)
	require.NoError(t, err)

	args := m.RunArgs{
		File:        m.Path(mainPath),
		TestFile:    m.Path(mainPath),
		TestCmd:     "true",
		TimeoutMult: 2,
		InPlace:     true,
	}

	run, err := Run(context.Background(), args, nil)
	require.NoError(t, err)
	assert.NotEmpty(t, run.Outcomes)

	after, err := os.ReadFile(mainPath)
	require.NoError(t, err)
	assert.Equal(t, original, after)
}
