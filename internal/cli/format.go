package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiawesome/library-id/internal/isbn"
)

func formatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "format <id>...",
		Short: "Hyphenate ISBNs",
		Long: `Print the hyphenated form of each argument.

13-character input is split 3-1-3-5-1 and 10-character input 1-3-5-1.
Anything else is printed unchanged. Characters are not checked; use
"isbnctl validate" for that.

Examples:
  isbnctl format 9780306406157
  isbnctl format 0306406152 080442957X`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range args {
				fmt.Fprintln(out, isbn.Format(id))
			}
			return nil
		},
	}
}
