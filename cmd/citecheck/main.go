// Package main implements the citecheck command line tool.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/phrazzld/citecheck/cmd/citecheck/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		if !errors.Is(err, commands.ErrNonConforming) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
