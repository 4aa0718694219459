package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// StocksMarkdown renders the stock list view. A non-empty query means the
// list is the result of a search over the fetched symbols.
func StocksMarkdown(stocks []fintrade.Stock, query string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	if query == "" {
		doc.H1("Stocks")
	} else {
		doc.H1(fmt.Sprintf("Stocks matching %q", query))
	}

	if len(stocks) == 0 {
		doc.PlainText("No stocks to show.")
		return doc.String()
	}

	rows := make([][]string, 0, len(stocks))
	for _, s := range stocks {
		rows = append(rows, []string{s.Symbol, orDash(s.Name), orDash(s.Exchange)})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Company", "Exchange"},
		Rows:   rows,
	})
	doc.PlainText(fmt.Sprintf("%d symbols.", len(stocks)))

	return doc.String()
}
