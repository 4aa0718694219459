package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// CompareMarkdown renders a side-by-side strategy comparison for one
// symbol.
func CompareMarkdown(c fintrade.Comparison, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Strategy comparison · %s", c.Symbol))
	if c.CurrentPrice != 0 {
		doc.PlainText(fmt.Sprintf("Current price %s", fintrade.M(c.CurrentPrice, currency)))
	}

	if len(c.Strategies) == 0 {
		doc.PlainText("No strategies to compare.")
		return doc.String()
	}

	rows := make([][]string, 0, len(c.Strategies))
	for _, s := range c.Strategies {
		rows = append(rows, []string{
			string(s.Strategy),
			orDash(s.Verdict),
			fmtScore(s.Score),
			fmtMoney(s.Plan.Entry, currency),
			fmtMoney(s.Plan.Target, currency),
			fmtMoney(s.Plan.StopLoss, currency),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Strategy", "Verdict", "Score", "Entry", "Target", "Stop loss"},
		Rows:   rows,
	})

	return doc.String()
}
