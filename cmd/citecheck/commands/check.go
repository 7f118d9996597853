package commands

import (
	"strings"

	"github.com/phrazzld/citecheck/internal/citation"
	"github.com/spf13/cobra"
)

func newCheckCmd(registry *citation.Registry) *cobra.Command {
	var (
		format     string
		jsonOutput bool
		detail     bool
	)

	cmd := &cobra.Command{
		Use:   "check [flags] <citation>",
		Short: "Check one citation",
		Long: `Check one citation against a style. Multiple arguments are joined with
spaces, so quoting the citation is optional. Exits with status 1 when the
citation does not conform.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.Join(args, " ")
			rep := registry.Check(text, format)

			if jsonOutput {
				var v any = rep.Result
				if detail {
					v = rep
				}
				if err := writeJSON(cmd.OutOrStdout(), v); err != nil {
					return err
				}
			} else {
				if !detail {
					rep.Fields = nil
				}
				writeReport(cmd.OutOrStdout(), truncate(text, 72), rep)
			}

			if !rep.FormatCorrect {
				return ErrNonConforming
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", string(citation.DefaultStyle), "citation style (case-insensitive)")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "print the result as JSON")
	cmd.Flags().BoolVarP(&detail, "detail", "d", false, "include extracted author, year and title")

	return cmd
}
