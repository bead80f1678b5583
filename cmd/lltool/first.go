package main

import (
	"fmt"

	"github.com/nihei9/lltool/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "first",
		Short:   "Print the FIRST set of every non-terminal",
		Example: `  lltool first grammar.toml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runFirst,
	}
	rootCmd.AddCommand(cmd)
}

func runFirst(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}

	a, err := analyze(g)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), grammar.FormatFirstSets(g, a.First))

	return nil
}
