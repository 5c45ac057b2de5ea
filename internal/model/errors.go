package model

import "errors"

// Sentinel errors fatal to a Run, mapped by cmd to exit code 2.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrFunctionNotFound    = errors.New("function not found")
	ErrBaselineFailed      = errors.New("baseline run failed")
)

// Per-mutant errors. internal/runner and internal/engine fold these into
// that mutant's Unviable outcome; they never surface as a Run failure.
var (
	ErrSnapshotFailed     = errors.New("snapshot failed")
	ErrMutationApplyFailed = errors.New("mutation apply failed")
	ErrTestSpawnFailed    = errors.New("test spawn failed")
)

// ErrStateIOFailed is non-fatal: the Run completes and reports results, but
// session persistence is skipped with a warning.
var ErrStateIOFailed = errors.New("session state persistence failed")
