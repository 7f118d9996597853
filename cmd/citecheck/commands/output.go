package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/phrazzld/citecheck/internal/citation"
)

// writeJSON prints v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// writeReport prints a human-readable verdict for one citation.
func writeReport(w io.Writer, label string, rep citation.Report) {
	status := "PASS"
	if !rep.FormatCorrect {
		status = "FAIL"
	}
	fmt.Fprintf(w, "%s [%s] %s\n", status, strings.ToUpper(string(rep.Style)), label)
	for _, issue := range rep.Issues {
		fmt.Fprintf(w, "  - %s\n", issue)
	}
	if rep.Fields != nil {
		if rep.Fields.Author != "" {
			fmt.Fprintf(w, "  author: %s\n", rep.Fields.Author)
		}
		if rep.Fields.Year != "" {
			fmt.Fprintf(w, "  year:   %s\n", rep.Fields.Year)
		}
		if rep.Fields.Title != "" {
			fmt.Fprintf(w, "  title:  %s\n", rep.Fields.Title)
		}
	}
}

// truncate shortens s for one-line display.
func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
