package cmd

import (
	"fmt"
	"os"

	"github.com/pulumi/pulumi/sdk/v3/go/common/util/logging"
	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	var verbose int

	command := &cobra.Command{
		Use:           "cem-changelog",
		Short:         "cem-changelog reports API changes between two Custom Elements Manifests",
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose > 0 {
				logging.InitLogging(true, verbose, false)
			}
		},
	}

	command.PersistentFlags().IntVarP(&verbose, "verbose", "v", 0,
		"enable verbose logging at the given level (9 traces every compared component)")

	command.AddCommand(compareCmd())
	command.AddCommand(versionCmd())

	return command
}

func Execute() {
	if err := rootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
