package fintrade

import (
	"encoding/json"
	"testing"
)

// decode parses a JSON literal the way the api package does, into
// loosely-typed values.
func decode(t *testing.T, literal string) any {
	t.Helper()
	var v any
	if err := json.Unmarshal([]byte(literal), &v); err != nil {
		t.Fatalf("bad test payload: %v", err)
	}
	return v
}

func TestNormalizeAnalysis(t *testing.T) {
	raw := decode(t, `{
		"symbol": "tcs",
		"company_name": "Tata Consultancy Services",
		"recommendation": "BUY",
		"score": "8.2",
		"current_price": "₹3,456.00",
		"trade_plan": {"entry": 3400, "target": "3,700", "stop_loss": 3280},
		"analysis": {
			"technical": "RSI is cooling off.",
			"summary": "Strong quarter.",
			"fundamental": "Margins stable."
		}
	}`)

	a := NormalizeAnalysis("ignored", Swing, raw)

	if a.Symbol != "TCS" {
		t.Errorf("Symbol = %q, want TCS (payload wins over argument)", a.Symbol)
	}
	if a.Strategy != Swing {
		t.Errorf("Strategy = %q", a.Strategy)
	}
	if a.Verdict != "BUY" || a.Score != 8.2 || a.CurrentPrice != 3456 {
		t.Errorf("verdict/score/price = %q/%v/%v", a.Verdict, a.Score, a.CurrentPrice)
	}
	if a.Plan != (TradePlan{Entry: 3400, Target: 3700, StopLoss: 3280}) {
		t.Errorf("Plan = %+v", a.Plan)
	}
	if len(a.Sections) != 3 {
		t.Fatalf("Sections = %d, want 3", len(a.Sections))
	}
	// summary is pinned first, then technical, then fundamental.
	if a.Sections[0].Title != "Summary" || a.Sections[1].Title != "Technical" || a.Sections[2].Title != "Fundamental" {
		t.Errorf("section order = %q, %q, %q", a.Sections[0].Title, a.Sections[1].Title, a.Sections[2].Title)
	}
}

func TestNormalizeAnalysisFlatShape(t *testing.T) {
	raw := decode(t, `{
		"verdict": "HOLD",
		"entry_price": 100,
		"target_price": 120,
		"sl": 90
	}`)

	a := NormalizeAnalysis("infy", Intraday, raw)
	if a.Symbol != "INFY" {
		t.Errorf("Symbol = %q, want INFY (argument fallback)", a.Symbol)
	}
	if a.Verdict != "HOLD" {
		t.Errorf("Verdict = %q", a.Verdict)
	}
	if a.Plan != (TradePlan{Entry: 100, Target: 120, StopLoss: 90}) {
		t.Errorf("Plan = %+v", a.Plan)
	}
	if len(a.Sections) != 0 {
		t.Errorf("Sections = %d, want none", len(a.Sections))
	}
}

func TestNormalizeComparisonMapShape(t *testing.T) {
	raw := decode(t, `{
		"symbol": "TCS",
		"current_price": 3456,
		"strategies": {
			"longterm": {"verdict": "BUY", "score": 9, "trade_plan": {"entry": 3300, "target": 4100, "stop_loss": 3000}},
			"intraday": {"verdict": "HOLD", "score": 5},
			"custom": {"verdict": "SELL"}
		}
	}`)

	c := NormalizeComparison("tcs", raw)
	if c.Symbol != "TCS" || c.CurrentPrice != 3456 {
		t.Errorf("header = %q/%v", c.Symbol, c.CurrentPrice)
	}
	if len(c.Strategies) != 3 {
		t.Fatalf("Strategies = %d, want 3", len(c.Strategies))
	}
	// known strategies first in canonical order, then the rest.
	if c.Strategies[0].Strategy != Intraday || c.Strategies[1].Strategy != LongTerm || c.Strategies[2].Strategy != "custom" {
		t.Errorf("order = %v, %v, %v", c.Strategies[0].Strategy, c.Strategies[1].Strategy, c.Strategies[2].Strategy)
	}
	if c.Strategies[1].Verdict != "BUY" || c.Strategies[1].Plan.Target != 4100 {
		t.Errorf("longterm = %+v", c.Strategies[1])
	}
}

func TestNormalizeComparisonListShape(t *testing.T) {
	raw := decode(t, `{
		"plans": [
			{"strategy": "swing", "signal": "BUY", "entry": 10, "target": 12, "stop_loss": 9},
			{"strategy": "longterm", "signal": "HOLD"}
		]
	}`)

	c := NormalizeComparison("abc", raw)
	if len(c.Strategies) != 2 {
		t.Fatalf("Strategies = %d, want 2", len(c.Strategies))
	}
	if c.Strategies[0].Strategy != Swing || c.Strategies[0].Verdict != "BUY" || c.Strategies[0].Plan.Entry != 10 {
		t.Errorf("plans[0] = %+v", c.Strategies[0])
	}
}

func TestNormalizeComparisonEmpty(t *testing.T) {
	c := NormalizeComparison("xyz", decode(t, `{}`))
	if c.Symbol != "XYZ" || len(c.Strategies) != 0 {
		t.Errorf("NormalizeComparison(empty) = %+v", c)
	}
}

func TestNormalizeDisclaimer(t *testing.T) {
	if got := NormalizeDisclaimer("plain text"); got != "plain text" {
		t.Errorf("plain = %q", got)
	}
	if got := NormalizeDisclaimer(decode(t, `{"disclaimer": "wrapped"}`)); got != "wrapped" {
		t.Errorf("wrapped = %q", got)
	}
	if got := NormalizeDisclaimer(decode(t, `{"text": "other key"}`)); got != "other key" {
		t.Errorf("text key = %q", got)
	}
	if got := NormalizeDisclaimer(decode(t, `{}`)); got != "" {
		t.Errorf("empty = %q", got)
	}
}
