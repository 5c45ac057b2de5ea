package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"mutant.dev/pkg/mutant/internal/report"
	"mutant.dev/pkg/mutant/internal/session"
)

var showSession string

var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <ref_id>",
		Short: "Show one surviving mutant's full record from the last run",
		Args:  cobra.ExactArgs(1),
		RunE:  showRunE,
	}

	cmd.Flags().StringVar(&showSession, sessionFlagName, viper.GetString(sessionConfigKey), "session id to read state from")

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func showRunE(cmd *cobra.Command, args []string) error {
	refID := normalizeRefID(args[0])

	store, err := session.New()
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		os.Exit(1)
	}

	state, err := store.Load(showSession)
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "no previous run recorded for this session")
		os.Exit(1)
	}

	doc := report.FromRun(state.Run)

	for _, mut := range doc.SurvivedMutants {
		if mut.RefID == refID {
			return report.WriteMutant(cmd.OutOrStdout(), mut)
		}
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "no surviving mutant with ref_id %q in the last run\n", refID)
	os.Exit(1)

	return nil
}

// normalizeRefID accepts both "m1" and "@m1" forms.
func normalizeRefID(raw string) string {
	return strings.TrimPrefix(raw, "@")
}
