package api

import (
	"context"
	"net/http"
	"sync"
)

// Result is the tri-state outcome of a Fetch: idle (all zero), pending
// (Loading true), or settled with either Data or Err set.
type Result[T any] struct {
	Data    *T
	Loading bool
	Err     error
}

// Fetch is a handle on one endpoint with an observable fetch state. Each
// view owns its handles; they are never shared or cached across views.
//
// Execute is re-entrant: calling it while a request is in flight starts
// another one without cancelling the first. Responses apply in settlement
// order, so a slow early request can overwrite the result of a faster
// later one. This stale-overwrite hazard is deliberate: the views issue at
// most a handful of requests and always render the last settled state.
type Fetch[T any] struct {
	client *Client
	method string
	path   string

	mu    sync.Mutex
	state Result[T]
	subs  []func(Result[T])
}

// NewFetch builds a fetch handle for one method and path on the client.
func NewFetch[T any](c *Client, method, path string) *Fetch[T] {
	return &Fetch[T]{client: c, method: method, path: path}
}

// Get is shorthand for NewFetch with http.MethodGet.
func Get[T any](c *Client, path string) *Fetch[T] {
	return NewFetch[T](c, http.MethodGet, path)
}

// State returns the current fetch state.
func (f *Fetch[T]) State() Result[T] {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Subscribe registers fn to be called on every state transition, starting
// with the next one. Callbacks run synchronously with the transition.
func (f *Fetch[T]) Subscribe(fn func(Result[T])) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, fn)
}

func (f *Fetch[T]) notifyLocked() {
	for _, fn := range f.subs {
		fn(f.state)
	}
}

// Execute performs exactly one request/response cycle: pending state first
// (loading set, previous error cleared), then either the decoded data or
// the flattened error. On failure the previous data is left in place.
//
// All failure modes — transport errors, non-JSON bodies and success=false
// envelopes — surface through the returned error and Result.Err alike; a
// success=false envelope is an *ApiError.
func (f *Fetch[T]) Execute(ctx context.Context, body any) (*T, error) {
	f.mu.Lock()
	f.state.Loading = true
	f.state.Err = nil
	f.notifyLocked()
	f.mu.Unlock()

	data := new(T)
	err := f.client.do(ctx, f.method, f.path, body, data)

	f.mu.Lock()
	defer f.mu.Unlock()
	f.state.Loading = false
	if err != nil {
		f.state.Err = err
		f.notifyLocked()
		return nil, err
	}
	f.state.Data = data
	f.state.Err = nil
	f.notifyLocked()
	return data, nil
}
