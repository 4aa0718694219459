package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	fintrade "github.com/chauhan07divyansh/fintrade-frontend"
)

func TestEndpointPaths(t *testing.T) {
	var gotPath, gotMethod string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		gotMethod = r.Method
		fmt.Fprint(w, `{"success":true,"data":null}`)
	}))
	defer srv.Close()
	c := New(srv.URL)
	ctx := context.Background()

	tests := []struct {
		name       string
		execute    func() error
		wantMethod string
		wantPath   string
	}{
		{"stocks", func() error { _, err := c.Stocks().Execute(ctx, nil); return err },
			http.MethodGet, "/api/stocks"},
		{"analyze", func() error { _, err := c.Analyze(fintrade.Swing, "TCS").Execute(ctx, nil); return err },
			http.MethodGet, "/api/analyze/swing/TCS"},
		{"portfolio", func() error {
			_, err := c.PortfolioPlan(fintrade.LongTerm).Execute(ctx, fintrade.PlanRequest{Budget: 1})
			return err
		}, http.MethodPost, "/api/portfolio/longterm"},
		{"compare", func() error { _, err := c.Compare("M&M").Execute(ctx, nil); return err },
			http.MethodGet, "/api/compare/M&M"},
		{"disclaimer", func() error { _, err := c.Disclaimer().Execute(ctx, nil); return err },
			http.MethodGet, "/api/disclaimer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.execute(); err != nil {
				t.Fatalf("Execute() unexpected error = %v", err)
			}
			if gotMethod != tt.wantMethod {
				t.Errorf("method = %q, want %q", gotMethod, tt.wantMethod)
			}
			if gotPath != tt.wantPath {
				t.Errorf("path = %q, want %q", gotPath, tt.wantPath)
			}
		})
	}
}
