package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/google/subcommands"
	"google.golang.org/genai"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
	"github.com/chauhan07divyansh/fintrade-frontend/agent"
	"github.com/chauhan07divyansh/fintrade-frontend/renderer"
)

// assistCmd holds the flags for the 'assist' subcommand.
type assistCmd struct {
	app    *App
	symbol string
}

func (*assistCmd) Name() string { return "assist" }
func (*assistCmd) Synopsis() string {
	return "start an interactive session with the AI assistant"
}
func (*assistCmd) Usage() string {
	return `ftc assist [-s <symbol>] [prompt]

  Starts an interactive session with a Gemini-backed market analyst,
  seeded with the service disclaimer and, with -s, the strategy
  comparison of a symbol. Requires Gemini credentials in the environment.
`
}

func (c *assistCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.symbol, "s", "", "seed the session with this symbol's strategy comparison")
}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	initialPrompt := ""
	if f.NArg() > 0 {
		initialPrompt = strings.Join(f.Args(), " ")
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin, agent.NewAnalyst(c.seeds(ctx)...))
	if err := a.Run(ctx, client, initialPrompt); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// seeds fetches the documents the analyst starts from. A failed fetch only
// degrades the session, it never prevents it.
func (c *assistCmd) seeds(ctx context.Context) []string {
	var seeds []string

	if raw, err := c.app.Client().Disclaimer().Execute(ctx, nil); err != nil {
		log.Printf("warning: could not fetch the disclaimer: %v", err)
	} else if text := fintrade.NormalizeDisclaimer(*raw); text != "" {
		seeds = append(seeds, "Service disclaimer:\n\n"+text)
	}

	if c.symbol != "" {
		raw, err := c.app.Client().Compare(c.symbol).Execute(ctx, nil)
		if err != nil {
			log.Printf("warning: could not fetch the comparison for %s: %v", c.symbol, err)
			return seeds
		}
		comparison := fintrade.NormalizeComparison(c.symbol, *raw)
		seeds = append(seeds, renderer.CompareMarkdown(comparison, c.app.currency))
	}
	return seeds
}
