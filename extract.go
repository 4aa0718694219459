package fintrade

import (
	"sort"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// The analyze and compare endpoints answer with nested payloads whose exact
// shape has shifted between backend versions. Fields are plucked with
// ordered jsonpath probes, same policy as the flat alias chains in
// normalize.go: first present wins, absence degrades to a zero value.

// pluckContainer probes the paths in order and returns the first non-nil
// value as-is, lists included.
func pluckContainer(doc any, paths ...string) (any, bool) {
	for _, p := range paths {
		v, err := jsonpath.Get(p, doc)
		if err != nil || v == nil {
			continue
		}
		return v, true
	}
	return nil, false
}

// pluck probes the paths in order against a loosely-typed JSON document and
// returns the first scalar value found.
func pluck(doc any, paths ...string) (any, bool) {
	for _, p := range paths {
		v, err := jsonpath.Get(p, doc)
		if err != nil {
			continue
		}
		// because jsonpath is never clear about whether it returns a list of
		// one answer or a single answer, keep the first one if any.
		if list, ok := v.([]any); ok {
			if len(list) == 0 {
				continue
			}
			v = list[0]
		}
		if v == nil {
			continue
		}
		return v, true
	}
	return nil, false
}

func pluckNumber(doc any, paths ...string) float64 {
	v, ok := pluck(doc, paths...)
	if !ok {
		return 0
	}
	return Number(v)
}

func pluckString(doc any, paths ...string) string {
	v, ok := pluck(doc, paths...)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

func pluckPlan(doc any) TradePlan {
	return TradePlan{
		Entry:    pluckNumber(doc, "$.trade_plan.entry", "$.plan.entry", "$.entry_price", "$.entry"),
		Target:   pluckNumber(doc, "$.trade_plan.target", "$.plan.target", "$.target_price", "$.target"),
		StopLoss: pluckNumber(doc, "$.trade_plan.stop_loss", "$.plan.stop_loss", "$.stop_loss", "$.sl"),
	}
}

// sectionOrder pins the well-known analysis sub-sections to a stable
// position; unknown sections follow alphabetically.
var sectionOrder = []string{"summary", "technical", "fundamental", "sentiment", "news", "risks"}

// NormalizeAnalysis maps a raw analyze payload onto the canonical Analysis.
// symbol and strategy are the request parameters; they are used as fallback
// when the payload does not repeat them.
func NormalizeAnalysis(symbol string, strategy Strategy, raw any) Analysis {
	a := Analysis{
		Symbol:       strings.ToUpper(symbol),
		Strategy:     strategy,
		Company:      pluckString(raw, "$.company", "$.company_name", "$.name"),
		Verdict:      pluckString(raw, "$.recommendation", "$.verdict", "$.signal", "$.action"),
		Score:        pluckNumber(raw, "$.score", "$.ai_score", "$.confidence"),
		CurrentPrice: pluckNumber(raw, "$.current_price", "$.price", "$.ltp", "$.cmp"),
		Plan:         pluckPlan(raw),
	}
	if s := pluckString(raw, "$.symbol", "$.ticker", "$.stock_symbol"); s != "" {
		a.Symbol = strings.ToUpper(s)
	}
	if v, ok := pluckContainer(raw, "$.analysis", "$.sections", "$.details"); ok {
		a.Sections = normalizeSections(v)
	}
	return a
}

// normalizeSections turns a mapping of named markdown sub-sections into an
// ordered list. Non-string entries are dropped.
func normalizeSections(raw any) []Section {
	m, ok := raw.(map[string]any)
	if !ok {
		return nil
	}
	rank := func(name string) int {
		for i, k := range sectionOrder {
			if strings.Contains(strings.ToLower(name), k) {
				return i
			}
		}
		return len(sectionOrder)
	}
	names := make([]string, 0, len(m))
	for name, v := range m {
		if _, ok := v.(string); ok {
			names = append(names, name)
		}
	}
	sort.Slice(names, func(i, j int) bool {
		ri, rj := rank(names[i]), rank(names[j])
		if ri != rj {
			return ri < rj
		}
		return names[i] < names[j]
	})
	sections := make([]Section, 0, len(names))
	for _, name := range names {
		sections = append(sections, Section{Title: titleize(name), Body: m[name].(string)})
	}
	return sections
}

// titleize turns a snake_case payload key into a display title.
func titleize(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool { return r == '_' || r == '-' || r == ' ' })
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

// NormalizeComparison maps a raw compare payload onto the canonical
// Comparison. The strategies arrive either as a mapping keyed by strategy
// name or as a list of objects carrying their own strategy field.
func NormalizeComparison(symbol string, raw any) Comparison {
	c := Comparison{
		Symbol:       strings.ToUpper(symbol),
		CurrentPrice: pluckNumber(raw, "$.current_price", "$.price", "$.ltp", "$.cmp"),
	}
	if s := pluckString(raw, "$.symbol", "$.ticker"); s != "" {
		c.Symbol = strings.ToUpper(s)
	}

	v, ok := pluckContainer(raw, "$.strategies", "$.comparison", "$.plans")
	if !ok {
		return c
	}
	switch entries := v.(type) {
	case map[string]any:
		// deterministic order: known strategies first, then the rest.
		done := make(map[string]bool)
		for _, s := range Strategies() {
			if e, ok := entries[string(s)]; ok {
				c.Strategies = append(c.Strategies, normalizeStrategyPlan(s, e))
				done[string(s)] = true
			}
		}
		rest := make([]string, 0, len(entries))
		for name := range entries {
			if !done[name] {
				rest = append(rest, name)
			}
		}
		sort.Strings(rest)
		for _, name := range rest {
			c.Strategies = append(c.Strategies, normalizeStrategyPlan(Strategy(name), entries[name]))
		}
	case []any:
		for _, e := range entries {
			s := Strategy(pluckString(e, "$.strategy", "$.type", "$.horizon"))
			c.Strategies = append(c.Strategies, normalizeStrategyPlan(s, e))
		}
	}
	return c
}

// NormalizeDisclaimer accepts the disclaimer payload as a plain string or
// wrapped in an object.
func NormalizeDisclaimer(raw any) string {
	if s, ok := raw.(string); ok {
		return s
	}
	return pluckString(raw, "$.disclaimer", "$.text", "$.message")
}

func normalizeStrategyPlan(s Strategy, raw any) StrategyPlan {
	return StrategyPlan{
		Strategy: s,
		Verdict:  pluckString(raw, "$.recommendation", "$.verdict", "$.signal", "$.action"),
		Score:    pluckNumber(raw, "$.score", "$.ai_score", "$.confidence"),
		Plan:     pluckPlan(raw),
	}
}
