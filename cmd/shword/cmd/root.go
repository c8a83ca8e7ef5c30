package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	// Version information (set by build flags)
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "shword",
	Short: "word-evaluation core for a POSIX/bash-compatible shell",
	Long: `shword exposes the word-evaluation core of a POSIX/bash-compatible shell:
variable resolution, suffix transformations, word splitting/globbing, and
assignment-builtin detection, with no surrounding command interpreter.

It does not parse full shell scripts; it evaluates one word (or a sequence
of words, for the "words" command) you describe on the command line.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
