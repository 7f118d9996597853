package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/phrazzld/citecheck/internal/citation"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// batchFile is the on-disk batch format. JSON files parse too, since JSON is
// a subset of YAML. An absent or null format means the default style; an
// explicit empty one is an unsupported style, as in the HTTP API.
type batchFile struct {
	Format    *string  `yaml:"format"`
	Citations []string `yaml:"citations"`
}

// loadBatchFile reads a batch from path, or from stdin when path is "-".
func loadBatchFile(path string, stdin io.Reader) (*batchFile, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read batch file: %w", err)
	}

	var bf batchFile
	if err := yaml.Unmarshal(data, &bf); err != nil {
		return nil, fmt.Errorf("failed to parse batch file: %w", err)
	}
	if len(bf.Citations) == 0 {
		return nil, fmt.Errorf("batch file %s contains no citations", path)
	}
	return &bf, nil
}

type batchSummary struct {
	Total      int               `json:"total"`
	Conforming int               `json:"conforming"`
	Results    []citation.Report `json:"results"`
}

func newBatchCmd(registry *citation.Registry) *cobra.Command {
	var (
		file       string
		format     string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "batch --file <path>",
		Short: "Check every citation in a YAML or JSON file",
		Long: `Check a list of citations read from a file of the form

  format: apa
  citations:
    - "Smith, J. (2020). A study of things."
    - "Doe, A. (2019). Another study."

--format overrides the file's format; with neither, APA is assumed.
An explicit empty format is reported as unsupported.
Use --file - to read from stdin. Exits with status 1 when any citation
does not conform.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			bf, err := loadBatchFile(file, cmd.InOrStdin())
			if err != nil {
				return err
			}

			style := string(citation.DefaultStyle)
			switch {
			case cmd.Flags().Changed("format"):
				style = format
			case bf.Format != nil:
				style = *bf.Format
			}

			summary := batchSummary{Total: len(bf.Citations), Results: make([]citation.Report, 0, len(bf.Citations))}
			for _, c := range bf.Citations {
				rep := registry.Check(c, style)
				if rep.FormatCorrect {
					summary.Conforming++
				}
				summary.Results = append(summary.Results, rep)
			}

			out := cmd.OutOrStdout()
			if jsonOutput {
				if err := writeJSON(out, summary); err != nil {
					return err
				}
			} else {
				for i, rep := range summary.Results {
					rep.Fields = nil
					writeReport(out, fmt.Sprintf("#%d %s", i+1, truncate(bf.Citations[i], 64)), rep)
				}
				fmt.Fprintf(out, "\n%d/%d citations conform\n", summary.Conforming, summary.Total)
			}

			if summary.Conforming < summary.Total {
				return ErrNonConforming
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "path to the batch file, or - for stdin")
	cmd.Flags().StringVarP(&format, "format", "f", "", "citation style, overriding the file")
	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "print results as JSON")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
