package main

import (
	"io"
	"log/slog"
	"time"

	"github.com/nihei9/lltool/grammar"
	"github.com/nihei9/lltool/spec"
	"github.com/spf13/cobra"
)

var rootFlags = struct {
	verbose *bool
}{}

var rootCmd = &cobra.Command{
	Use:   "lltool",
	Short: "Compute nullable non-terminals and FIRST sets of a context-free grammar",
	Long: `lltool reads a grammar written in TOML, YAML, or the text notation and provides:
- the nullable non-terminals
- the FIRST set of every non-terminal
- a report of the analysis, including the dependency graph and its strongly connected components`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = newLogger(cmd.ErrOrStderr(), *rootFlags.verbose)
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().BoolP("verbose", "v", false, "print debug logs to stderr")
}

var logger = newLogger(io.Discard, false)

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	if !verbose {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

func Execute() error {
	return rootCmd.Execute()
}

func loadGrammar(path string) (*grammar.Grammar[grammar.FreeProduction], error) {
	start := time.Now()
	g, err := spec.Load(path)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded a grammar",
		"path", path,
		"format", spec.FormatOf(path),
		"symbols", len(g.Symbols()),
		"productions", len(g.Productions()),
		"elapsed", time.Since(start))
	return g, nil
}

func analyze(g *grammar.Grammar[grammar.FreeProduction]) (*grammar.Analysis, error) {
	start := time.Now()
	a, err := grammar.Analyze(g)
	if err != nil {
		return nil, err
	}
	logger.Debug("analyzed the grammar",
		"nullable", len(a.Nullable),
		"dependencies", len(a.Graph.Edges()),
		"components", len(a.Condensation.Components),
		"elapsed", time.Since(start))
	return a, nil
}
