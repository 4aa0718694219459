package fintrade

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNumber(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want float64
	}{
		{"nil", nil, 0},
		{"empty string", "", 0},
		{"dash only", "-", 0},
		{"plain number", 42.5, 42.5},
		{"negative number", -3.25, -3.25},
		{"int", 7, 7},
		{"nan", math.NaN(), 0},
		{"positive infinity", math.Inf(1), 0},
		{"negative infinity", math.Inf(-1), 0},
		{"currency decorated", "₹1,234.56", 1234.56},
		{"percent decorated", "9.9 %", 9.9},
		{"plain numeric string", "250", 250},
		{"negative string", "-12.5", -12.5},
		{"exponent string", "1.5e3", 1500},
		{"garbage", "n/a", 0},
		{"bool", true, 0},
		{"json number", json.Number("88.5"), 88.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Number(tt.raw); got != tt.want {
				t.Errorf("Number(%v) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNumberAlwaysFinite(t *testing.T) {
	inputs := []any{nil, "", "abc", "1e999", math.NaN(), math.Inf(1), []any{1}, map[string]any{}}
	for _, raw := range inputs {
		got := Number(raw)
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("Number(%v) = %v, want a finite number", raw, got)
		}
	}
}

func TestNormalizeRowAliasOrder(t *testing.T) {
	// price wins over current_price when both are present.
	row := NormalizeRow(map[string]any{"price": 100.0, "current_price": 200.0})
	if row.Price != 100 {
		t.Errorf("NormalizeRow() price = %v, want 100 (alias order)", row.Price)
	}

	// ltp alone is accepted.
	row = NormalizeRow(map[string]any{"ltp": "₹99.50"})
	if row.Price != 99.5 {
		t.Errorf("NormalizeRow() price from ltp = %v, want 99.5", row.Price)
	}
}

func TestNormalizeRowFull(t *testing.T) {
	raw := map[string]any{
		"ticker":                "TCS",
		"company_name":          "Tata Consultancy Services",
		"ai_score":              "8.7",
		"current_price":         "₹3,456.00",
		"stoploss":              3280.0,
		"allocation_percentage": "25 %",
		"shares":                "14.7",
		"risk_score":            2.0,
		"investment":            "₹50,000",
	}
	row := NormalizeRow(raw)

	if row.Symbol != "TCS" {
		t.Errorf("Symbol = %q, want TCS", row.Symbol)
	}
	if row.Company != "Tata Consultancy Services" {
		t.Errorf("Company = %q", row.Company)
	}
	if row.Score != 8.7 {
		t.Errorf("Score = %v, want 8.7", row.Score)
	}
	if row.Price != 3456 {
		t.Errorf("Price = %v, want 3456", row.Price)
	}
	if row.StopLoss != 3280 {
		t.Errorf("StopLoss = %v, want 3280", row.StopLoss)
	}
	if row.PercentageAllocation != 25 {
		t.Errorf("PercentageAllocation = %v, want 25", row.PercentageAllocation)
	}
	if row.NumberOfShares != 15 {
		t.Errorf("NumberOfShares = %v, want 15 (rounded)", row.NumberOfShares)
	}
	if row.Risk != 2 {
		t.Errorf("Risk = %v, want 2", row.Risk)
	}
	if row.InvestmentAmount != 50000 {
		t.Errorf("InvestmentAmount = %v, want 50000", row.InvestmentAmount)
	}
}

func TestNormalizeRowEmptyMapping(t *testing.T) {
	row := NormalizeRow(map[string]any{})
	if row != (PortfolioRow{}) {
		t.Errorf("NormalizeRow(empty) = %+v, want all zero values", row)
	}
}

func TestNormalizeRowMalformed(t *testing.T) {
	// present-but-null and wrong types must degrade, never panic.
	row := NormalizeRow(map[string]any{
		"symbol":  nil,
		"price":   nil,
		"company": 12.0,
		"shares":  []any{1, 2},
	})
	if row.Symbol != "" || row.Company != "" || row.Price != 0 || row.NumberOfShares != 0 {
		t.Errorf("NormalizeRow(malformed) = %+v, want zero values", row)
	}
}

func TestNormalizeRows(t *testing.T) {
	rows := NormalizeRows([]any{
		map[string]any{"symbol": "INFY", "price": "1,500"},
		"not a mapping",
		map[string]any{"ticker": "TCS"},
	})
	if len(rows) != 2 {
		t.Fatalf("NormalizeRows() returned %d rows, want 2", len(rows))
	}
	if rows[0].Symbol != "INFY" || rows[0].Price != 1500 {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[1].Symbol != "TCS" {
		t.Errorf("rows[1] = %+v", rows[1])
	}
}

func TestNormalizeStocks(t *testing.T) {
	stocks := NormalizeStocks([]any{
		"RELIANCE",
		map[string]any{"symbol": "TCS", "name": "Tata Consultancy Services", "exchange": "NSE"},
		map[string]any{"name": "nameless"}, // no symbol: dropped
		"",
		42.0,
	})
	if len(stocks) != 2 {
		t.Fatalf("NormalizeStocks() returned %d stocks, want 2", len(stocks))
	}
	if stocks[0].Symbol != "RELIANCE" {
		t.Errorf("stocks[0] = %+v", stocks[0])
	}
	if stocks[1].Symbol != "TCS" || stocks[1].Name != "Tata Consultancy Services" || stocks[1].Exchange != "NSE" {
		t.Errorf("stocks[1] = %+v", stocks[1])
	}
}
