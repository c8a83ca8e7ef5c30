package cmd

import (
	"fmt"

	"github.com/cwbudde/shword/internal/ident"
	"github.com/cwbudde/shword/internal/wordast"
	"github.com/spf13/cobra"
)

var (
	wordsOpts     evalFlags
	wordsNoAssign bool
)

var wordsCmd = &cobra.Command{
	Use:   "words WORD...",
	Short: "Evaluate a command's words into argv, detecting assignment builtins",
	Long: `Evaluate a sequence of words the way a command line's words are
evaluated: run each through the frame builder, split unquoted
fragments on IFS, glob-expand the results, and print the resulting argv --
unless the first word names an assignment builtin (declare/typeset/local/
readonly/export), in which case print the parsed assignment instead.

Examples:
  shword words --set x='a b' 'pre'${x}'post'
  shword words --set-array a=1,2,3 '${a[@]}'
  shword words declare -r x=1 y
  shword words --no-assign declare x=1`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWords,
}

func init() {
	rootCmd.AddCommand(wordsCmd)
	wordsOpts.register(wordsCmd.Flags())
	wordsCmd.Flags().BoolVar(&wordsNoAssign, "no-assign", false, "never treat the first word as an assignment builtin")
}

func runWords(_ *cobra.Command, args []string) error {
	e, err := wordsOpts.buildEvaluator()
	if err != nil {
		return err
	}

	words := make([]*wordast.Word, len(args))
	for i, a := range args {
		w, err := parseWord(a)
		if err != nil {
			return fmt.Errorf("parsing word %d (%q): %w", i, a, err)
		}
		words[i] = w
	}

	cv, err := e.EvalWordSequence(words, !wordsNoAssign)
	if err != nil {
		return err
	}

	if cv.Assign != nil {
		fmt.Printf("assignment builtin: %s\n", ident.NameOf(cv.Assign.BuiltinID))
		for _, flag := range cv.Assign.Flags {
			fmt.Printf("  flag: %s\n", flag)
		}
		for _, pair := range cv.Assign.Pairs {
			if pair.Value != nil {
				fmt.Printf("  pair: %s=%q\n", pair.Name, *pair.Value)
			} else {
				fmt.Printf("  pair: %s (no value)\n", pair.Name)
			}
		}
		return nil
	}

	for i, arg := range cv.Argv {
		fmt.Printf("[%d] %q\n", i, arg)
	}
	return nil
}
