package mist

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngineDo(t *testing.T) {
	var gotAuth, gotQuery, gotBody, gotContentType string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = r.URL.RawQuery
		gotContentType = r.Header.Get("Content-Type")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)

		switch r.URL.Path {
		case "/object":
			w.Write([]byte(`{"id":"abc","name":"Branch-1"}`))
		case "/list":
			w.Write([]byte(`[{"id":"1"},{"id":"2"}]`))
		case "/empty":
			w.WriteHeader(http.StatusNoContent)
		case "/missing":
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"detail":"site not found"}`))
		case "/boom":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`internal failure`))
		case "/garbage":
			w.Write([]byte(`<html>`))
		}
	}))
	defer srv.Close()

	engine := NewEngine("secret-token", time.Second)
	ctx := context.Background()

	t.Run("object body", func(t *testing.T) {
		raw, err := engine.Get(ctx, srv.URL, "/object", url.Values{"limit": {"10"}})
		require.NoError(t, err)
		assert.JSONEq(t, `{"id":"abc","name":"Branch-1"}`, string(raw))
		assert.Equal(t, "Token secret-token", gotAuth)
		assert.Equal(t, "limit=10", gotQuery)
	})

	t.Run("list body", func(t *testing.T) {
		raw, err := engine.Get(ctx, srv.URL, "/list", nil)
		require.NoError(t, err)
		items, err := Decode[[]map[string]interface{}](raw)
		require.NoError(t, err)
		assert.Len(t, items, 2)
	})

	t.Run("empty body", func(t *testing.T) {
		raw, err := engine.Delete(ctx, srv.URL, "/empty")
		require.NoError(t, err)
		assert.Nil(t, raw)
	})

	t.Run("json body is sent", func(t *testing.T) {
		_, err := engine.Post(ctx, srv.URL, "/object", map[string]string{"name": "Branch-1"})
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Branch-1"}`, gotBody)
		assert.Equal(t, "application/json", gotContentType)
	})

	t.Run("404 is an upstream rejection", func(t *testing.T) {
		_, err := engine.Get(ctx, srv.URL, "/missing", nil)
		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)
		assert.Equal(t, "site not found", upstreamErr.Detail)

		var transportErr *TransportError
		assert.False(t, errors.As(err, &transportErr))
	})

	t.Run("non json error body keeps text", func(t *testing.T) {
		_, err := engine.Get(ctx, srv.URL, "/boom", nil)
		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusInternalServerError, upstreamErr.StatusCode)
		assert.Equal(t, "internal failure", upstreamErr.Detail)
		assert.Nil(t, upstreamErr.Body)
	})

	t.Run("invalid json on success", func(t *testing.T) {
		_, err := engine.Get(ctx, srv.URL, "/garbage", nil)
		var upstreamErr *UpstreamError
		require.True(t, errors.As(err, &upstreamErr))
		assert.Equal(t, http.StatusOK, upstreamErr.StatusCode)
	})
}

func TestEngineTransportFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	ln.Close()

	engine := NewEngine("", time.Second)
	_, err = engine.Get(context.Background(), "http://"+addr, "/x", nil)

	var transportErr *TransportError
	require.True(t, errors.As(err, &transportErr))
	assert.Equal(t, http.MethodGet, transportErr.Method)

	var upstreamErr *UpstreamError
	assert.False(t, errors.As(err, &upstreamErr))
}

func TestEngineTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	engine := NewEngine("", 20*time.Millisecond)
	_, err := engine.Get(context.Background(), srv.URL, "/slow", nil)

	var transportErr *TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestBaseURL(t *testing.T) {
	assert.Equal(t, "https://api.ac2.mist.com", BaseURL("api.ac2.mist.com"))
	assert.Equal(t, "https://api.mist.com", BaseURL(" api.mist.com/ "))
	assert.Equal(t, "http://127.0.0.1:8080", BaseURL("http://127.0.0.1:8080"))
}

func TestLastOrgID(t *testing.T) {
	tests := []struct {
		name       string
		privileges []Privilege
		want       string
	}{
		{
			name: "last org scoped grant wins",
			privileges: []Privilege{
				{Scope: ScopeOrg, OrgID: "A"},
				{Scope: ScopeSite, OrgID: "B"},
				{Scope: ScopeOrg, OrgID: "C"},
			},
			want: "C",
		},
		{
			name: "site grants are ignored",
			privileges: []Privilege{
				{Scope: ScopeOrg, OrgID: "A"},
				{Scope: ScopeSite, OrgID: "B"},
			},
			want: "A",
		},
		{
			name:       "no org grant",
			privileges: []Privilege{{Scope: ScopeSite, OrgID: "B"}, {Scope: ScopeMSP}},
			want:       "",
		},
		{
			name: "empty",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LastOrgID(tt.privileges))
		})
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	raw := json.RawMessage(`{"email":"ops@example.com","tags":["x"],"privileges":[{"scope":"org","org_id":"o1","extra":1}]}`)
	self, err := Decode[Self](raw)
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", self.Email)
	require.Len(t, self.Privileges, 1)
	assert.Equal(t, "o1", self.Privileges[0].OrgID)
}
