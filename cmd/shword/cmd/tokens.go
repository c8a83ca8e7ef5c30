package cmd

import (
	"fmt"

	"github.com/cwbudde/shword/internal/ident"
	"github.com/spf13/cobra"
)

var tokensKind string

var tokensCmd = &cobra.Command{
	Use:   "tokens",
	Short: "List the identifier/kind registry",
	Long: `Print every registered identifier and its kind (VSub, VTest, VOp0,
VOp1, Assign, ...).

This is the word-evaluation core's analogue of a lexer's token-type dump:
it shows the closed set of ids the evaluator dispatches on rather than
tokenizing any input.

Examples:
  # List everything
  shword tokens

  # List only the suffix-test operators
  shword tokens --kind VTest`,
	RunE: runTokens,
}

func init() {
	rootCmd.AddCommand(tokensCmd)
	tokensCmd.Flags().StringVar(&tokensKind, "kind", "", "only show ids of this kind (e.g. VTest, VOp1, Assign)")
}

func runTokens(_ *cobra.Command, _ []string) error {
	count := 0
	for _, id := range ident.All() {
		kind := ident.KindOf(id)
		if tokensKind != "" && kind.String() != tokensKind {
			continue
		}
		fmt.Printf("%-24s %s\n", ident.NameOf(id), kind)
		count++
	}
	if verbose {
		fmt.Printf("---\n%d id(s)\n", count)
	}
	return nil
}
