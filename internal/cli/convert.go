package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/weiawesome/library-id/internal/isbn"
)

func convertCmd() *cobra.Command {
	var (
		to        string
		hyphenate bool
	)

	cmd := &cobra.Command{
		Use:   "convert <id>...",
		Short: "Convert between ISBN-10 and ISBN-13",
		Long: `Convert each argument to the other ISBN form, or to the form named by --to.
Only 978-prefixed ISBN-13 identifiers have an ISBN-10 form.

Examples:
  isbnctl convert 0306406152
  isbnctl convert --to isbn10 978-0-306-40615-7`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, id := range args {
				converted, err := convert(id, isbn.Kind(to))
				if err != nil {
					return fmt.Errorf("convert %s: %w", id, err)
				}
				if hyphenate {
					converted = isbn.Format(converted)
				}
				fmt.Fprintln(out, converted)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "target form, isbn13 or isbn10 (default: the other form)")
	cmd.Flags().BoolVar(&hyphenate, "hyphenate", false, "print the hyphenated form")

	return cmd
}

func convert(id string, to isbn.Kind) (string, error) {
	if to == "" {
		kind, err := isbn.Detect(id)
		if err != nil {
			return "", err
		}
		to = isbn.KindISBN13
		if kind == isbn.KindISBN13 {
			to = isbn.KindISBN10
		}
	}

	switch to {
	case isbn.KindISBN13:
		return isbn.To13(id)
	case isbn.KindISBN10:
		return isbn.To10(id)
	default:
		return "", fmt.Errorf("unknown target %q", to)
	}
}
