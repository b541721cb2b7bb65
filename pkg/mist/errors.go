package mist

import (
	"encoding/json"
	"fmt"
	"strings"
)

// UpstreamError is returned when the Mist API answered with a non-2xx status.
type UpstreamError struct {
	StatusCode int
	Detail     string
	Body       json.RawMessage
}

func (e *UpstreamError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("mist api rejected request: status %d", e.StatusCode)
	}
	return fmt.Sprintf("mist api rejected request: status %d: %s", e.StatusCode, e.Detail)
}

// TransportError is returned when the request never produced an HTTP response
// (DNS, TLS, refused connection, timeout).
type TransportError struct {
	Method string
	URL    string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mist api unreachable: %s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

const maxDetailLength = 512

// extractDetail pulls a human readable message out of an error body.
// Mist uses "detail", some gateways in front of it use "message" or "error".
func extractDetail(body []byte) string {
	trimmed := strings.TrimSpace(string(body))
	if trimmed == "" {
		return ""
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"detail", "message", "error"} {
			raw, ok := fields[key]
			if !ok {
				continue
			}
			var s string
			if err := json.Unmarshal(raw, &s); err == nil && s != "" {
				return s
			}
			return string(raw)
		}
	}

	if len(trimmed) > maxDetailLength {
		return trimmed[:maxDetailLength]
	}
	return trimmed
}
