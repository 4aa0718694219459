// Package api implements the HTTP client for the FinTrade analysis service.
//
// Every endpoint answers with the same envelope:
//
//	{ "success": bool, "data": ..., "error": "message" }
//
// The client unwraps it and exposes each endpoint as a Fetch handle with an
// observable loading/data/error state (see fetch.go).
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
)

// DefaultBaseURL is the hosted FinTrade analysis service.
const DefaultBaseURL = "https://fintrade-api.onrender.com"

// EnvBaseURL overrides the base URL when the -api-url flag is not given.
const EnvBaseURL = "FINTRADE_API_URL"

// Client performs request/response cycles against the service. The zero
// value is not usable; use New.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	// Header entries are set on every request, on top of the default
	// Content-Type: application/json.
	Header http.Header
}

// New returns a client for the given base URL. An empty baseURL falls back
// to the FINTRADE_API_URL environment variable, then to DefaultBaseURL.
func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = os.Getenv(EnvBaseURL)
	}
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{BaseURL: baseURL, HTTPClient: new(http.Client)}
}

// ApiError is an application-level failure reported by the service
// envelope (success=false).
type ApiError struct {
	Message string
}

func (e *ApiError) Error() string { return e.Message }

// envelope is the wire wrapper every response is expected to use.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// do performs one request/response cycle and decodes the envelope's data
// field into out. The response body is always parsed as JSON, whatever the
// HTTP status: the envelope is the source of truth.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var rdr io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("cannot encode request body for %s %s: %w", method, path, err)
		}
		rdr = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, rdr)
	if err != nil {
		return fmt.Errorf("cannot build request %s %s: %w", method, path, err)
	}
	req.Header.Set("Content-Type", "application/json")
	for key, values := range c.Header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	httpc := c.HTTPClient
	if httpc == nil {
		httpc = http.DefaultClient
	}
	resp, err := httpc.Do(req)
	if err != nil {
		return fmt.Errorf("cannot %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	buf, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("cannot read response of %s %s: %w", method, path, err)
	}

	var env envelope
	if err := json.Unmarshal(buf, &env); err != nil {
		return fmt.Errorf("cannot parse response of %s %s: %w", method, path, err)
	}
	if !env.Success {
		msg := env.Error
		if msg == "" {
			msg = "unknown error"
		}
		return &ApiError{Message: msg}
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return fmt.Errorf("cannot decode data of %s %s: %w", method, path, err)
		}
	}
	return nil
}
