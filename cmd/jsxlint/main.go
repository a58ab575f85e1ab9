// Command jsxlint lints React code in JavaScript and TypeScript files.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// run executes the CLI and returns the process exit code.
func run(args []string) int {
	rootCmd.SetArgs(args)
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		if !errors.Is(err, errLintFailed) {
			log.Error(err.Error())
			for _, hint := range errors.GetAllHints(err) {
				fmt.Fprintf(os.Stderr, "hint: %s\n", hint)
			}
		}
		return 1
	}
	return 0
}
