package api

import (
	"fmt"
	"net/http"
	"net/url"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

// Typed fetch handles for the five endpoints the views consume. The
// loosely-typed ones decode into `any`; the view normalizes through the
// fintrade package before rendering.

// Stocks is a handle on GET /api/stocks.
func (c *Client) Stocks() *Fetch[[]any] {
	return Get[[]any](c, "/api/stocks")
}

// Analyze is a handle on GET /api/analyze/{type}/{symbol}.
func (c *Client) Analyze(strategy fintrade.Strategy, symbol string) *Fetch[any] {
	path := fmt.Sprintf("/api/analyze/%s/%s", url.PathEscape(string(strategy)), url.PathEscape(symbol))
	return Get[any](c, path)
}

// PortfolioPlan is a handle on POST /api/portfolio/{type}. Execute expects
// a fintrade.PlanRequest body.
func (c *Client) PortfolioPlan(strategy fintrade.Strategy) *Fetch[[]any] {
	path := fmt.Sprintf("/api/portfolio/%s", url.PathEscape(string(strategy)))
	return NewFetch[[]any](c, http.MethodPost, path)
}

// Compare is a handle on GET /api/compare/{symbol}.
func (c *Client) Compare(symbol string) *Fetch[any] {
	return Get[any](c, "/api/compare/"+url.PathEscape(symbol))
}

// Disclaimer is a handle on GET /api/disclaimer.
func (c *Client) Disclaimer() *Fetch[any] {
	return Get[any](c, "/api/disclaimer")
}
