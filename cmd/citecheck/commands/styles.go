package commands

import (
	"fmt"

	"github.com/phrazzld/citecheck/internal/citation"
	"github.com/spf13/cobra"
)

func newStylesCmd(registry *citation.Registry) *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List supported citation styles",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, s := range registry.Styles() {
				rule, _ := registry.Lookup(string(s))
				fmt.Fprintf(cmd.OutOrStdout(), "%s\tv%s\n", s, rule.Version())
			}
		},
	}
}
