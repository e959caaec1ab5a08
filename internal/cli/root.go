// Package cli implements the isbnctl command tree.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/weiawesome/library-id/pkg/log"
)

// RootCmd returns the isbnctl root command with every subcommand attached.
func RootCmd(version string) *cobra.Command {
	var (
		logLevel string
		pretty   bool
	)

	cmd := &cobra.Command{
		Use:     "isbnctl",
		Short:   "Generate, format, validate and convert ISBNs",
		Version: version,
		Long: `isbnctl works with International Standard Book Numbers offline.

Identifiers are written to stdout one per line; logs go to stderr.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := log.New(log.Config{
				Level:       logLevel,
				Pretty:      pretty,
				ServiceName: "isbnctl",
				Output:      cmd.ErrOrStderr(),
			})
			cmd.SetContext(log.WithLogger(cmd.Context(), logger))
		},
	}

	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error, disabled)")
	cmd.PersistentFlags().BoolVar(&pretty, "log-pretty", true, "human readable logs")

	cmd.AddCommand(generateCmd())
	cmd.AddCommand(formatCmd())
	cmd.AddCommand(validateCmd())
	cmd.AddCommand(convertCmd())

	return cmd
}
