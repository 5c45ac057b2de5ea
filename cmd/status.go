package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutant.dev/pkg/mutant/internal/report"
	"mutant.dev/pkg/mutant/internal/session"
)

var (
	statusSession string
	statusJSON    bool
)

var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Summarize the last recorded run",
		Args:  cobra.NoArgs,
		RunE:  statusRunE,
	}

	cmd.Flags().StringVar(&statusSession, sessionFlagName, viper.GetString(sessionConfigKey), "session id to read state from")
	cmd.Flags().BoolVar(&statusJSON, jsonFlagName, false, "emit the structured JSON report instead of a one-line summary")

	return cmd
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func statusRunE(cmd *cobra.Command, _ []string) error {
	store, err := session.New()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}

	state, err := store.Load(statusSession)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "no previous run recorded for this session")
		os.Exit(1)
	}

	doc := report.FromRun(state.Run)

	if statusJSON {
		return report.WriteJSON(cmd.OutOrStdout(), doc)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "score=%.3f total=%d killed=%d survived=%d timeout=%d unviable=%d duration_ms=%d\n",
		doc.Score, doc.Total, doc.Killed, doc.Survived, doc.Timeout, doc.Unviable, doc.DurationMS)

	return nil
}
