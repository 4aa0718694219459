package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// PlanMarkdown renders a portfolio allocation.
func PlanMarkdown(p fintrade.Plan, currency string) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio plan · %s", p.Strategy))
	doc.PlainText(fmt.Sprintf("Budget %s · risk appetite %s",
		fintrade.M(p.Budget, currency), p.RiskAppetite))

	if len(p.Rows) == 0 {
		doc.PlainText("The service returned no allocations for this budget.")
		return doc.String()
	}

	rows := make([][]string, 0, len(p.Rows))
	for _, r := range p.Rows {
		rows = append(rows, []string{
			r.Symbol,
			orDash(r.Company),
			fmtScore(r.Score),
			fmtMoney(r.Price, currency),
			fmtShares(r.NumberOfShares),
			fmtPercent(r.PercentageAllocation),
			fmtMoney(r.InvestmentAmount, currency),
			fmtMoney(r.StopLoss, currency),
			fmtScore(r.Risk),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Symbol", "Company", "Score", "Price", "Shares", "Allocation", "Investment", "Stop loss", "Risk"},
		Rows:   rows,
	})

	doc.PlainText(fmt.Sprintf("Total invested: %s of %s.",
		fintrade.M(p.TotalInvested(), currency), fintrade.M(p.Budget, currency)))

	return doc.String()
}
