package fintrade

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// This file isolates every call site from the backend's field-naming and
// value-formatting variance. Nothing here ever panics: malformed input
// degrades to zero values.

// Number coerces a raw backend field into a safe number.
//
// Absent values (nil, empty string) yield 0. Numbers are returned unchanged
// when finite, 0 otherwise. Strings are stripped of every rune that is not
// a digit, '.', '-', '+' or an exponent marker before parsing, so that
// display-formatted values like "₹1,234.56" or "9.9 %" still yield their
// numeric content. Anything unparseable yields 0.
func Number(raw any) float64 {
	switch v := raw.(type) {
	case nil:
		return 0
	case float64:
		return finite(v)
	case float32:
		return finite(float64(v))
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		return Number(string(v))
	case string:
		var b strings.Builder
		for _, r := range v {
			switch {
			case r >= '0' && r <= '9', r == '.', r == '-', r == '+', r == 'e', r == 'E':
				b.WriteRune(r)
			}
		}
		f, err := strconv.ParseFloat(b.String(), 64)
		if err != nil {
			return 0
		}
		return finite(f)
	default:
		return 0
	}
}

func finite(f float64) float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// Alias chains for the canonical portfolio fields, in probing order. The
// first key present in the raw mapping wins, even when its value is null:
// presence, not truthiness, decides.
var (
	symbolAliases     = []string{"symbol", "ticker", "stock_symbol"}
	companyAliases    = []string{"company", "company_name", "name"}
	scoreAliases      = []string{"score", "ai_score", "rating"}
	priceAliases      = []string{"price", "current_price", "entry_price", "avg_price", "ltp"}
	stopLossAliases   = []string{"stop_loss", "stoploss", "sl"}
	allocationAliases = []string{"percentage_allocation", "allocation_percentage", "allocation", "weight"}
	sharesAliases     = []string{"number_of_shares", "shares", "quantity", "qty"}
	riskAliases       = []string{"risk", "risk_score"}
	investmentAliases = []string{"investment_amount", "investment", "amount", "allocated_amount"}
)

// NormalizeRow maps a ragged backend portfolio entry onto the canonical
// PortfolioRow. Every canonical field probes its alias chain in order and
// falls back to 0 or "" when no alias is present. The share count is
// rounded to the nearest integer.
func NormalizeRow(raw map[string]any) PortfolioRow {
	return PortfolioRow{
		Symbol:               probeString(raw, symbolAliases),
		Company:              probeString(raw, companyAliases),
		Score:                probeNumber(raw, scoreAliases),
		Price:                probeNumber(raw, priceAliases),
		StopLoss:             probeNumber(raw, stopLossAliases),
		PercentageAllocation: probeNumber(raw, allocationAliases),
		NumberOfShares:       math.Round(probeNumber(raw, sharesAliases)),
		Risk:                 probeNumber(raw, riskAliases),
		InvestmentAmount:     probeNumber(raw, investmentAliases),
	}
}

// NormalizeRows normalizes a raw list of portfolio entries, skipping
// elements that are not mappings at all.
func NormalizeRows(raw []any) []PortfolioRow {
	rows := make([]PortfolioRow, 0, len(raw))
	for _, e := range raw {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		rows = append(rows, NormalizeRow(m))
	}
	return rows
}

// NormalizeStocks accepts the two shapes the stock list endpoint has used
// over time: a list of plain symbols, or a list of objects.
func NormalizeStocks(raw []any) []Stock {
	stocks := make([]Stock, 0, len(raw))
	for _, e := range raw {
		switch v := e.(type) {
		case string:
			if v != "" {
				stocks = append(stocks, Stock{Symbol: v})
			}
		case map[string]any:
			s := Stock{
				Symbol:   probeString(v, symbolAliases),
				Name:     probeString(v, companyAliases),
				Exchange: probeString(v, []string{"exchange", "exchange_name"}),
			}
			if s.Symbol != "" {
				stocks = append(stocks, s)
			}
		}
	}
	return stocks
}

func probeNumber(raw map[string]any, aliases []string) float64 {
	for _, key := range aliases {
		if v, ok := raw[key]; ok {
			return Number(v)
		}
	}
	return 0
}

func probeString(raw map[string]any, aliases []string) string {
	for _, key := range aliases {
		if v, ok := raw[key]; ok {
			if s, ok := v.(string); ok {
				return s
			}
			// present but not a string: keep the presence semantics and
			// give up on this field.
			return ""
		}
	}
	return ""
}
