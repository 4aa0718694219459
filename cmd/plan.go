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

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	app      *App
	budget   float64
	risk     string
	period   int
	strategy string
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "request a portfolio allocation for a budget" }
func (*planCmd) Usage() string {
	return `ftc plan -budget <amount> [-risk LOW|MEDIUM|HIGH] [-period <months>] [-t <strategy>]

  Asks the service for a portfolio allocation and renders the normalized
  rows: shares, allocation, investment amount and stop loss per symbol.
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.budget, "budget", 0, "amount to invest (required)")
	f.StringVar(&c.risk, "risk", string(fintrade.RiskMedium), "risk appetite: LOW, MEDIUM or HIGH")
	f.IntVar(&c.period, "period", 0, "investment horizon in months (0 lets the service decide)")
	f.StringVar(&c.strategy, "t", string(fintrade.Swing), "strategy: intraday, swing or longterm")
}

func (c *planCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.budget <= 0 {
		fmt.Fprintln(os.Stderr, "Error: a positive -budget is required.")
		return subcommands.ExitUsageError
	}
	risk, err := fintrade.ParseRiskAppetite(c.risk)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	strategy := fintrade.Strategy(c.strategy)

	fetch := c.app.Client().PortfolioPlan(strategy)
	progress("portfolio plan", fetch)

	req := fintrade.PlanRequest{Budget: c.budget, RiskAppetite: risk, TimePeriod: c.period}
	raw, err := fetch.Execute(ctx, req)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching portfolio plan: %v\n", err)
		return subcommands.ExitFailure
	}

	plan := fintrade.Plan{
		Strategy:     strategy,
		Budget:       c.budget,
		RiskAppetite: risk,
		Rows:         fintrade.NormalizeRows(*raw),
	}
	c.app.printMarkdown(renderer.PlanMarkdown(plan, c.app.currency))
	return subcommands.ExitSuccess
}
