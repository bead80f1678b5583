package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/nihei9/lltool/grammar"
	spec "github.com/nihei9/lltool/spec/grammar"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var analyzeFlags = struct {
	format *string
	output *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:     "analyze",
		Short:   "Analyze a grammar and write a report",
		Example: `  lltool analyze grammar.toml -f yaml -o report.yaml`,
		Args:    cobra.ExactArgs(1),
		RunE:    runAnalyze,
	}
	analyzeFlags.format = cmd.Flags().StringP("format", "f", "json", "report format (json|yaml)")
	analyzeFlags.output = cmd.Flags().StringP("output", "o", "", "output file path (default stdout)")
	rootCmd.AddCommand(cmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	g, err := loadGrammar(args[0])
	if err != nil {
		return err
	}

	a, err := analyze(g)
	if err != nil {
		return err
	}

	b, err := marshalReport(grammar.GenReport(g, a), *analyzeFlags.format)
	if err != nil {
		return err
	}

	if *analyzeFlags.output != "" {
		err := os.WriteFile(*analyzeFlags.output, b, 0644)
		if err != nil {
			return fmt.Errorf("Cannot write the report %s: %w", *analyzeFlags.output, err)
		}
		logger.Debug("wrote the report", "path", *analyzeFlags.output, "bytes", len(b))
		return nil
	}

	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func marshalReport(report *spec.Report, format string) ([]byte, error) {
	switch format {
	case "json":
		b, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(b, '\n'), nil
	case "yaml":
		return yaml.Marshal(report)
	default:
		return nil, fmt.Errorf("unknown report format: %v", format)
	}
}
