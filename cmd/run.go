package cmd

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutant.dev/pkg/mutant/internal/engine"
	m "mutant.dev/pkg/mutant/internal/model"
	"mutant.dev/pkg/mutant/internal/report"
	"mutant.dev/pkg/mutant/internal/session"
)

var (
	runTestFile    string
	runFunction    string
	runTestCmd     string
	runSession     string
	runTimeoutMult int
	runJSON        bool
	runQuiet       bool
	runInPlace     bool
)

var runValidate = validator.New()

const runLongDescription = `Run mutation testing against one source file.

A baseline execution of the test suite establishes the expected-pass timing,
then every discovered mutant is applied one at a time (in an isolated
snapshot of the project, unless --in-place is given) and the test command is
rerun to see whether it catches the change.`

var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Run mutation testing against a source file",
		Long:  runLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE:  runRunE,
	}

	configureRunFlags(cmd)

	return cmd
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&runTestFile, "test-file", "t", "", "test file to run against the mutated source (required)")
	cobra.CheckErr(cmd.MarkFlagRequired("test-file"))

	cmd.Flags().StringVarP(&runFunction, functionFlagName, "f", "", "restrict mutation discovery to one function")
	cmd.Flags().StringVar(&runTestCmd, testCmdFlagName, viper.GetString(testCmdConfigKey), "test command to run (default: pytest)")
	bindFlagToConfig(cmd.Flags().Lookup(testCmdFlagName), testCmdConfigKey)

	cmd.Flags().StringVar(&runSession, sessionFlagName, viper.GetString(sessionConfigKey), "session id namespacing snapshots and persisted state")
	bindFlagToConfig(cmd.Flags().Lookup(sessionFlagName), sessionConfigKey)

	cmd.Flags().IntVar(&runTimeoutMult, timeoutMultFlagName, viper.GetInt(timeoutMultConfigKey), "per-mutant timeout as a multiple of the baseline duration")
	bindFlagToConfig(cmd.Flags().Lookup(timeoutMultFlagName), timeoutMultConfigKey)

	cmd.Flags().BoolVar(&runJSON, jsonFlagName, false, "emit the structured JSON report")
	cmd.Flags().BoolVarP(&runQuiet, quietFlagName, "q", false, "suppress output; communicate only via exit code")
	cmd.Flags().BoolVar(&runInPlace, inPlaceFlagName, false, "mutate the project file directly instead of a snapshot copy")
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRunE(cmd *cobra.Command, args []string) error {
	runArgs := m.RunArgs{
		File:        m.Path(args[0]),
		TestFile:    m.Path(runTestFile),
		TestCmd:     runTestCmd,
		Function:    runFunction,
		Session:     runSession,
		TimeoutMult: runTimeoutMult,
		JSON:        runJSON,
		Quiet:       runQuiet,
		InPlace:     runInPlace,
	}

	if err := runValidate.Struct(runArgs); err != nil {
		return fmt.Errorf("invalid run arguments: %w", err)
	}

	run, err := engine.Run(cmd.Context(), runArgs, globalLogger)
	if err != nil {
		return err
	}

	doc := report.FromRun(run)
	baselineFailed := !run.Baseline.Succeeded()
	exitCode := report.ExitCode(doc, baselineFailed)

	if err := persistSession(runArgs.Session, run); err != nil {
		globalLogger.Warn("session persistence failed", "error", err)
	}

	switch {
	case runQuiet:
	case runJSON:
		if err := report.WriteJSON(cmd.OutOrStdout(), doc); err != nil {
			return err
		}
	default:
		writeSummary(cmd, doc)
	}

	if exitCode != 0 {
		os.Exit(exitCode)
	}

	return nil
}

func writeSummary(cmd *cobra.Command, doc report.Document) {
	fmt.Fprintf(cmd.OutOrStdout(), "score=%.3f total=%d killed=%d survived=%d timeout=%d unviable=%d duration_ms=%d\n",
		doc.Score, doc.Total, doc.Killed, doc.Survived, doc.Timeout, doc.Unviable, doc.DurationMS)

	for _, mut := range doc.SurvivedMutants {
		fmt.Fprintf(cmd.OutOrStdout(), "survived %s %s:%d:%d %s %q -> %q\n",
			mut.RefID, mut.File, mut.Line, mut.Column, mut.Operator, mut.Original, mut.Replacement)
	}
}

func persistSession(sessionID string, run m.Run) error {
	store, err := session.New()
	if err != nil {
		return fmt.Errorf("%w: %v", m.ErrStateIOFailed, err)
	}

	if sessionID == "" {
		sessionID = session.NewSessionID()
	}

	return store.Save(m.SessionState{SessionID: sessionID, Run: run})
}
