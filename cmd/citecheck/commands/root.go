// Package commands holds the cobra commands of the citecheck CLI.
package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/phrazzld/citecheck/internal/citation"
	"github.com/spf13/cobra"
)

// ErrNonConforming is returned when at least one checked citation does not
// conform to its style. The verdict has already been printed.
var ErrNonConforming = errors.New("citation does not conform")

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "citecheck",
		Short: "Check bibliographic citations against citation styles",
		Long: `citecheck judges whether a citation string is structurally well formed
for a citation style such as APA or MLA. It does not verify that the cited
work exists.

Examples:
  citecheck check "Smith, J. (2020). A study of things."
  citecheck check --format mla "Smith, John. A Study of Things."
  citecheck batch --file citations.yaml
  citecheck styles
  citecheck serve --config config.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newCheckCmd(citation.DefaultRegistry()))
	root.AddCommand(newBatchCmd(citation.DefaultRegistry()))
	root.AddCommand(newStylesCmd(citation.DefaultRegistry()))
	root.AddCommand(newServeCmd())

	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCmd()
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)
	if err := root.Execute(); err != nil {
		if errors.Is(err, ErrNonConforming) {
			return err
		}
		return fmt.Errorf("citecheck: %w", err)
	}
	return nil
}
