package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
	"github.com/chauhan07divyansh/fintrade-frontend/renderer"
	"github.com/chauhan07divyansh/fintrade-frontend/search"
)

// stocksCmd holds the flags for the 'stocks' subcommand.
type stocksCmd struct {
	app    *App
	search string
}

func (*stocksCmd) Name() string     { return "stocks" }
func (*stocksCmd) Synopsis() string { return "list the stocks covered by the service" }
func (*stocksCmd) Usage() string {
	return `ftc stocks [-search <term>]

  Fetches the stock list. With -search, the fetched list is indexed in
  memory and filtered by symbol prefix, company name or free text.
`
}

func (c *stocksCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.search, "search", "", "filter the fetched list by symbol or company name")
}

func (c *stocksCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	fetch := c.app.Client().Stocks()
	progress("stocks", fetch)

	raw, err := fetch.Execute(ctx, nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error fetching stocks: %v\n", err)
		return subcommands.ExitFailure
	}
	stocks := fintrade.NormalizeStocks(*raw)

	query := strings.TrimSpace(c.search)
	if query != "" {
		ix, err := search.New(stocks)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error indexing stocks: %v\n", err)
			return subcommands.ExitFailure
		}
		defer ix.Close()
		stocks, err = ix.Search(query)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error searching stocks: %v\n", err)
			return subcommands.ExitFailure
		}
	}

	c.app.printMarkdown(renderer.StocksMarkdown(stocks, query))
	return subcommands.ExitSuccess
}
