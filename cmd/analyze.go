package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
	"github.com/chauhan07divyansh/fintrade-frontend/renderer"
)

// analyzeCmd holds the flags for the 'analyze' subcommand.
type analyzeCmd struct {
	app      *App
	strategy string
}

func (*analyzeCmd) Name() string     { return "analyze" }
func (*analyzeCmd) Synopsis() string { return "show the AI analysis for one symbol" }
func (*analyzeCmd) Usage() string {
	return `ftc analyze [-t <strategy>] <symbol>

  Fetches and renders the AI analysis of a symbol for one strategy
  (intraday, swing or longterm). Unknown strategies are passed through;
  the service answers with its own error.
`
}

func (c *analyzeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.strategy, "t", string(fintrade.Swing), "strategy: intraday, swing or longterm")
}

func (c *analyzeCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)
	strategy := fintrade.Strategy(c.strategy)

	fetch := c.app.Client().Analyze(strategy, symbol)
	progress("analysis", fetch)

	raw, err := fetch.Execute(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching analysis for %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	analysis := fintrade.NormalizeAnalysis(symbol, strategy, *raw)
	c.app.printMarkdown(renderer.AnalysisMarkdown(analysis, c.app.currency))
	return subcommands.ExitSuccess
}
