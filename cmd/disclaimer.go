package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// disclaimerCmd holds the flags for the 'disclaimer' subcommand.
type disclaimerCmd struct {
	app *App
}

func (*disclaimerCmd) Name() string     { return "disclaimer" }
func (*disclaimerCmd) Synopsis() string { return "show the service disclaimer" }
func (*disclaimerCmd) Usage() string {
	return `ftc disclaimer

  Fetches and renders the service's disclaimer.
`
}

func (c *disclaimerCmd) SetFlags(f *flag.FlagSet) {}

func (c *disclaimerCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fetch := c.app.Client().Disclaimer()
	progress("disclaimer", fetch)

	raw, err := fetch.Execute(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching disclaimer: %v\n", err)
		return subcommands.ExitFailure
	}

	text := fintrade.NormalizeDisclaimer(*raw)
	if text == "" {
		text = "The service returned no disclaimer."
	}
	c.app.printMarkdown(text)
	return subcommands.ExitSuccess
}
