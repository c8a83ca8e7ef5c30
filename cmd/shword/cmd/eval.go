package cmd

import (
	"fmt"

	"github.com/cwbudde/shword/internal/wordeval"
	"github.com/spf13/cobra"
)

var evalOpts evalFlags

var evalCmd = &cobra.Command{
	Use:   "eval WORD",
	Short: "Evaluate a single word to its decayed string form",
	Long: `Evaluate one word -- tilde expansion, ${...}/$name substitutions, suffix
operators, arithmetic substitutions -- and print the resulting string.

This never splits on IFS or globs: use "words" for that.

Examples:
  shword eval --set x=hello '${x^}'
  shword eval --set-array a=1,2,3 '${a[1]}'
  shword eval --set v=foo '${v:-default}'
  shword eval '~'`,
	Args: cobra.ExactArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalOpts.register(evalCmd.Flags())
}

func runEval(_ *cobra.Command, args []string) error {
	e, err := evalOpts.buildEvaluator()
	if err != nil {
		return err
	}
	w, err := parseWord(args[0])
	if err != nil {
		return fmt.Errorf("parsing word: %w", err)
	}
	out := e.EvalWordToString(w, wordeval.QuoteDefault)
	if out.IsError() {
		return out.Error()
	}
	fmt.Println(out.Val())
	return nil
}
