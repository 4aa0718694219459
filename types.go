package fintrade

import (
	"fmt"
	"strings"
)

// RiskAppetite is the investor risk profile accepted by the portfolio
// endpoint.
type RiskAppetite string

const (
	RiskLow    RiskAppetite = "LOW"
	RiskMedium RiskAppetite = "MEDIUM"
	RiskHigh   RiskAppetite = "HIGH"
)

// ParseRiskAppetite parses a case-insensitive risk appetite name.
func ParseRiskAppetite(s string) (RiskAppetite, error) {
	switch r := RiskAppetite(strings.ToUpper(strings.TrimSpace(s))); r {
	case RiskLow, RiskMedium, RiskHigh:
		return r, nil
	default:
		return "", fmt.Errorf("invalid risk appetite %q (expected LOW, MEDIUM or HIGH)", s)
	}
}

// Strategy is the analysis horizon understood by the analyze and portfolio
// endpoints. Unknown values are passed through unchanged: the server owns
// validation and answers with a success=false envelope.
type Strategy string

const (
	Intraday Strategy = "intraday"
	Swing    Strategy = "swing"
	LongTerm Strategy = "longterm"
)

// Strategies lists the horizons the hosted service currently supports.
func Strategies() []Strategy { return []Strategy{Intraday, Swing, LongTerm} }

// Stock is one entry of the stock list view.
type Stock struct {
	Symbol   string `json:"symbol"`
	Name     string `json:"name,omitempty"`
	Exchange string `json:"exchange,omitempty"`
}

// PortfolioRow is the canonical shape of one allocation entry. Every field
// is always populated: numeric fields are finite and default to 0, string
// fields default to "". See NormalizeRow.
type PortfolioRow struct {
	Symbol               string  `json:"symbol"`
	Company              string  `json:"company"`
	Score                float64 `json:"score"`
	Price                float64 `json:"price"`
	StopLoss             float64 `json:"stop_loss"`
	PercentageAllocation float64 `json:"percentage_allocation"`
	NumberOfShares       float64 `json:"number_of_shares"`
	Risk                 float64 `json:"risk"`
	InvestmentAmount     float64 `json:"investment_amount"`
}

// PlanRequest is the body of POST /api/portfolio/{type}.
type PlanRequest struct {
	Budget       float64      `json:"budget"`
	RiskAppetite RiskAppetite `json:"risk_appetite"`
	// TimePeriod is the investment horizon in months; 0 means server default.
	TimePeriod int `json:"time_period,omitempty"`
}

// Plan is a normalized portfolio allocation as rendered by the plan view.
type Plan struct {
	Strategy     Strategy
	Budget       float64
	RiskAppetite RiskAppetite
	Rows         []PortfolioRow
}

// TotalInvested sums the investment amounts of all rows.
func (p Plan) TotalInvested() float64 {
	var total float64
	for _, r := range p.Rows {
		total += r.InvestmentAmount
	}
	return total
}

// TradePlan holds the entry, target and stop-loss levels of one strategy.
type TradePlan struct {
	Entry    float64 `json:"entry"`
	Target   float64 `json:"target"`
	StopLoss float64 `json:"stop_loss"`
}

// Section is one named markdown sub-section of an analysis payload.
type Section struct {
	Title string
	Body  string
}

// Analysis is the normalized AI analysis of one symbol for one strategy.
type Analysis struct {
	Symbol       string
	Company      string
	Strategy     Strategy
	Verdict      string
	Score        float64
	CurrentPrice float64
	Plan         TradePlan
	Sections     []Section
}

// StrategyPlan is one line of a side-by-side strategy comparison.
type StrategyPlan struct {
	Strategy Strategy
	Verdict  string
	Score    float64
	Plan     TradePlan
}

// Comparison is the normalized side-by-side comparison of all strategies
// for one symbol.
type Comparison struct {
	Symbol       string
	CurrentPrice float64
	Strategies   []StrategyPlan
}
