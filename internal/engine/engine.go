// Package engine ties the pipeline together behind the single `run`
// operation: detect the file's language, parse it, discover mutants,
// snapshot the project per mutant, execute the test command against each,
// and assemble the resulting Run. It is the one place in the repository
// that imports every other internal package.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"mutant.dev/pkg/mutant/internal/discovery"
	"mutant.dev/pkg/mutant/internal/lang"
	m "mutant.dev/pkg/mutant/internal/model"
	"mutant.dev/pkg/mutant/internal/runner"
	"mutant.dev/pkg/mutant/internal/snapshot"
)

const defaultTestCmd = "pytest"

// Run executes one full mutation-testing pass per args, returning the
// assembled Run. Errors returned here are the Run-fatal kinds
// (UnsupportedLanguage, FunctionNotFound, BaselineFailed); per-mutant
// errors never reach this far; they are folded into outcomes by
// internal/runner.
func Run(ctx context.Context, args m.RunArgs, log *slog.Logger) (m.Run, error) {
	if log == nil {
		log = slog.Default()
	}

	started := time.Now()

	language, err := lang.Detect(args.File)
	if err != nil {
		return m.Run{}, err
	}

	source, err := os.ReadFile(string(args.File))
	if err != nil {
		return m.Run{}, fmt.Errorf("read %s: %w", args.File, err)
	}

	parser, err := lang.NewParser(language)
	if err != nil {
		return m.Run{}, err
	}

	tree, err := parser.Parse(ctx, source)
	if err != nil {
		return m.Run{}, err
	}

	var scope *lang.Node

	if args.Function != "" {
		fn, err := lang.FindFunction(tree, language, args.Function)
		if err != nil {
			return m.Run{}, err
		}

		scope = &fn
	}

	mutations := discovery.Discover(tree, language, args.File, scope)
	log.Debug("discovered mutants", "count", len(mutations), "file", args.File)

	testCmd := args.TestCmd
	if testCmd == "" {
		testCmd = defaultTestCmd
	}

	projectRoot, err := snapshot.FindProjectRoot(args.File)
	if err != nil {
		return m.Run{}, fmt.Errorf("find project root: %w", err)
	}

	absFile, err := filepath.Abs(string(args.File))
	if err != nil {
		return m.Run{}, fmt.Errorf("resolve %s: %w", args.File, err)
	}

	absTest, err := filepath.Abs(string(args.TestFile))
	if err != nil {
		return m.Run{}, fmt.Errorf("resolve %s: %w", args.TestFile, err)
	}

	testRunner := runner.New(testCmd, absTest, projectRoot, args.TimeoutMult)

	baseline, err := testRunner.Baseline(ctx)
	if err != nil {
		return m.Run{}, err
	}

	run := m.Run{
		File:        args.File,
		TestFile:    args.TestFile,
		TestCmd:     testCmd,
		Function:    args.Function,
		TimeoutMult: args.TimeoutMult,
		Baseline:    baseline,
		StartedAt:   started,
	}

	relFile, err := filepath.Rel(projectRoot, absFile)
	if err != nil {
		return m.Run{}, fmt.Errorf("relativize %s against %s: %w", absFile, projectRoot, err)
	}

	if args.InPlace {
		run.Outcomes = runInPlace(ctx, testRunner, projectRoot, relFile, mutations, baseline.DurationMS, log)
	} else {
		snapper := snapshot.New(args.Session)
		run.Outcomes = runSnapshotted(ctx, testRunner, snapper, projectRoot, relFile, mutations, baseline.DurationMS, log)
	}

	run.DurationMS = time.Since(started).Milliseconds()

	return run, nil
}

func runSnapshotted(ctx context.Context, testRunner *runner.Runner, snapper *snapshot.Snapshotter, projectRoot, relFile string, mutations []m.Mutation, baselineMS int64, log *slog.Logger) []m.Outcome {
	outcomes := make([]m.Outcome, 0, len(mutations))

	for _, mut := range mutations {
		dir, cleanup, err := snapper.Snapshot(ctx, projectRoot)
		if err != nil {
			log.Warn("snapshot failed", "mutant", mut.RefID, "error", err)
			outcomes = append(outcomes, m.Outcome{Mutation: mut, Result: m.Unviable})

			continue
		}

		outcome := testRunner.Execute(ctx, dir, relFile, mut, baselineMS)
		outcomes = append(outcomes, outcome)

		cleanup()

		if ctx.Err() != nil {
			break
		}
	}

	return outcomes
}

// runInPlace mutates the project file directly, restoring from a backup
// after each mutant. The backup file also serves as the interrupted-run
// marker a later startup can detect.
func runInPlace(ctx context.Context, testRunner *runner.Runner, projectRoot, relFile string, mutations []m.Mutation, baselineMS int64, log *slog.Logger) []m.Outcome {
	outcomes := make([]m.Outcome, 0, len(mutations))
	guard := runner.NewInPlace(filepath.Join(projectRoot, relFile))

	for _, mut := range mutations {
		if err := guard.Backup(); err != nil {
			log.Warn("in-place backup failed", "mutant", mut.RefID, "error", err)
			outcomes = append(outcomes, m.Outcome{Mutation: mut, Result: m.Unviable})

			continue
		}

		outcome := testRunner.Execute(ctx, projectRoot, relFile, mut, baselineMS)
		outcomes = append(outcomes, outcome)

		if err := guard.Restore(); err != nil {
			log.Warn("in-place restore failed", "mutant", mut.RefID, "error", err)
		}

		if ctx.Err() != nil {
			break
		}
	}

	return outcomes
}
