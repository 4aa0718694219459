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

// compareCmd holds the flags for the 'compare' subcommand.
type compareCmd struct {
	app *App
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare all strategies for one symbol" }
func (*compareCmd) Usage() string {
	return `ftc compare <symbol>

  Shows the verdicts and trade plans of every strategy side by side.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: exactly one symbol is required.")
		return subcommands.ExitUsageError
	}
	symbol := f.Arg(0)

	fetch := c.app.Client().Compare(symbol)
	progress("comparison", fetch)

	raw, err := fetch.Execute(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching comparison for %s: %v\n", symbol, err)
		return subcommands.ExitFailure
	}

	comparison := fintrade.NormalizeComparison(symbol, *raw)
	c.app.printMarkdown(renderer.CompareMarkdown(comparison, c.app.currency))
	return subcommands.ExitSuccess
}
