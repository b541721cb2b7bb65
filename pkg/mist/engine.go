// Package mist is a thin client for the Mist cloud management API. The Engine
// performs exactly one HTTP call per request and translates the outcome into
// a decoded JSON body, an *UpstreamError or a *TransportError.
package mist

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	SelfPath       = "/api/v1/self"
)

// Request describes a single upstream call. Path must already contain any
// resolved identifiers such as the organization id.
type Request struct {
	Method string
	Path   string
	Query  url.Values
	Body   interface{}
}

type IEngine interface {
	Do(ctx context.Context, host string, req Request) (json.RawMessage, error)
}

type Engine struct {
	client *http.Client
	token  string
}

func NewEngine(token string, timeout time.Duration) *Engine {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Engine{
		client: &http.Client{Timeout: timeout},
		token:  token,
	}
}

// Do issues the request against host. A nil RawMessage with a nil error means
// the upstream answered 2xx with an empty body.
func (e *Engine) Do(ctx context.Context, host string, req Request) (json.RawMessage, error) {
	target := BaseURL(host) + req.Path
	if len(req.Query) > 0 {
		target += "?" + req.Query.Encode()
	}

	var body io.Reader
	if req.Body != nil {
		payload, err := json.Marshal(req.Body)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, body)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if body != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if e.token != "" {
		httpReq.Header.Set("Authorization", "Token "+e.token)
	}

	resp, err := e.client.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: target, Err: err}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: target, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		upstreamErr := &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     extractDetail(raw),
		}
		if json.Valid(raw) {
			upstreamErr.Body = raw
		}
		return nil, upstreamErr
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	if !json.Valid(raw) {
		return nil, &UpstreamError{
			StatusCode: resp.StatusCode,
			Detail:     "response body is not valid JSON",
		}
	}
	return json.RawMessage(raw), nil
}

func (e *Engine) Get(ctx context.Context, host, path string, query url.Values) (json.RawMessage, error) {
	return e.Do(ctx, host, Request{Method: http.MethodGet, Path: path, Query: query})
}

func (e *Engine) Post(ctx context.Context, host, path string, body interface{}) (json.RawMessage, error) {
	return e.Do(ctx, host, Request{Method: http.MethodPost, Path: path, Body: body})
}

func (e *Engine) Put(ctx context.Context, host, path string, body interface{}) (json.RawMessage, error) {
	return e.Do(ctx, host, Request{Method: http.MethodPut, Path: path, Body: body})
}

func (e *Engine) Delete(ctx context.Context, host, path string) (json.RawMessage, error) {
	return e.Do(ctx, host, Request{Method: http.MethodDelete, Path: path})
}

// BaseURL turns a bare API host into an https URL. Hosts that already carry
// a scheme are used as given.
func BaseURL(host string) string {
	host = strings.TrimRight(strings.TrimSpace(host), "/")
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}

// Decode unmarshals an upstream payload into T. Unknown fields are ignored so
// upstream schema additions do not break callers.
func Decode[T any](raw json.RawMessage) (T, error) {
	var out T
	if len(raw) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("failed to decode mist response: %w", err)
	}
	return out, nil
}
