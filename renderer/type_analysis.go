package renderer

import (
	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// Analysis is the view model behind the analysis templates: every number
// arrives preformatted so the templates stay dumb.
type Analysis struct {
	Symbol       string
	Company      string
	Strategy     string
	Verdict      string
	Score        string
	CurrentPrice string
	HasPlan      bool
	Entry        string
	Target       string
	StopLoss     string
	Sections     []fintrade.Section
}

// NewAnalysis builds the view model from a normalized analysis.
func NewAnalysis(a fintrade.Analysis, currency string) *Analysis {
	return &Analysis{
		Symbol:       a.Symbol,
		Company:      a.Company,
		Strategy:     string(a.Strategy),
		Verdict:      orDash(a.Verdict),
		Score:        fmtScore(a.Score),
		CurrentPrice: fmtMoney(a.CurrentPrice, currency),
		HasPlan:      a.Plan != (fintrade.TradePlan{}),
		Entry:        fmtMoney(a.Plan.Entry, currency),
		Target:       fmtMoney(a.Plan.Target, currency),
		StopLoss:     fmtMoney(a.Plan.StopLoss, currency),
		Sections:     a.Sections,
	}
}
