package main

import (
	"fmt"

	"github.com/nihei9/lltool/grammar"
	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:     "nullable",
		Short:   "Print the non-terminals that can derive the empty string",
		Example: `  lltool nullable grammar.toml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runNullable,
	}
	rootCmd.AddCommand(cmd)
}

func runNullable(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}

	nullable, err := grammar.ComputeNullable(g)
	if err != nil {
		return err
	}

	fmt.Fprint(cmd.OutOrStdout(), grammar.FormatNullable(g, nullable))

	return nil
}
