package cli

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/weiawesome/library-id/internal/isbn"
	"github.com/weiawesome/library-id/pkg/log"
)

func validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <id>...",
		Short: "Check ISBNs",
		Long: `Check the length, characters and check character of each argument.
Hyphens and spaces are ignored. The command fails if any argument is invalid.

Examples:
  isbnctl validate 978-0-306-40615-7
  isbnctl validate 0306406152 080442957X 9780306406158`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			l := log.Ctx(cmd.Context())

			invalid := 0
			for _, id := range args {
				kind, err := isbn.Detect(id)
				if err != nil {
					invalid++
					l.Debug().Err(err).Str(log.FieldISBN, id).Msg("invalid isbn")
					fmt.Fprintf(out, "%s  %s  %v\n", color.New(color.FgRed).Sprint("INVALID"), id, err)
					continue
				}
				fmt.Fprintf(out, "%s    %s  %s\n", color.New(color.FgGreen).Sprint("VALID"), isbn.Format(isbn.Normalize(id)), kind)
			}

			if invalid > 0 {
				return fmt.Errorf("%d of %d identifiers invalid", invalid, len(args))
			}
			return nil
		},
	}
}
