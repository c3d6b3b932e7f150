// Command fourword is a four-letter word guessing game backed by SQLite.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/roach88/fourword/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Command errors were already reported by the command's formatter.
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
