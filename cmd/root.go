package cmd

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	m "mutant.dev/pkg/mutant/internal/model"
)

var verboseFlag bool

const rootLongDescription = `mutant is a multi-language mutation testing tool: it introduces small,
targeted changes (mutations) into a Python, JavaScript, TypeScript, or Rust
source file and checks whether your test suite still fails the way it
should.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mutant",
		Short: "Multi-language mutation testing tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(*cobra.Command, []string) {
			configureLogger(verboseFlag)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable debug logging")
}

// Execute adds all child commands to the root command and runs it. This is
// called by main.main(); it only needs to happen once. A SIGINT/SIGTERM
// cancels the command context, which terminates the currently spawned test
// child and stops mutant iteration.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(exitCodeFor(err))
	}
}

// exitCodeFor maps a command error to the process exit code: 2 for misuse
// (unknown language, function not found, failed baseline), 1 for any other
// user-visible failure.
func exitCodeFor(err error) int {
	switch {
	case errors.Is(err, m.ErrUnsupportedLanguage),
		errors.Is(err, m.ErrFunctionNotFound),
		errors.Is(err, m.ErrBaselineFailed):
		return 2
	default:
		return 1
	}
}
