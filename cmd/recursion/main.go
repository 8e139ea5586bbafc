// Command recursion prints labeled demonstrations of recursion patterns.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/recursion/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(cli.GetExitCode(err))
	}
}
