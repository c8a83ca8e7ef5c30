// Command shword manually exercises the word-evaluation core: tokenizing
// identifier tables, and evaluating words/word-sequences against a small
// variable store from the command line.
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/shword/cmd/shword/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
