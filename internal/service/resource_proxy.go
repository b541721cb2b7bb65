package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"mist-provisioning-be/pkg/mist"
)

// resourceProxy is the shared path of every resource service: resolve the
// session context, fail fast when it is incomplete, then forward one call.
type resourceProxy struct {
	session ISessionService
	engine  mist.IEngine
}

// orgCall forwards an organization-scoped request. pathFmt receives the org
// id as its first verb.
func (p resourceProxy) orgCall(ctx context.Context, method, pathFmt string, query url.Values, body interface{}, args ...interface{}) (json.RawMessage, string, error) {
	sc, err := p.session.ResolveContext(ctx, true)
	if err != nil {
		return nil, "", err
	}

	path := fmt.Sprintf(pathFmt, append([]interface{}{url.PathEscape(sc.OrgID)}, escapeAll(args)...)...)
	raw, err := p.engine.Do(ctx, sc.APIHost, mist.Request{Method: method, Path: path, Query: query, Body: body})
	return raw, sc.OrgID, err
}

// hostCall forwards a request that only needs the API host.
func (p resourceProxy) hostCall(ctx context.Context, method, pathFmt string, body interface{}, args ...interface{}) (json.RawMessage, error) {
	sc, err := p.session.ResolveContext(ctx, false)
	if err != nil {
		return nil, err
	}

	path := fmt.Sprintf(pathFmt, escapeAll(args)...)
	return p.engine.Do(ctx, sc.APIHost, mist.Request{Method: method, Path: path, Body: body})
}

func escapeAll(args []interface{}) []interface{} {
	out := make([]interface{}, len(args))
	for i, a := range args {
		if s, ok := a.(string); ok {
			out[i] = url.PathEscape(s)
			continue
		}
		out[i] = a
	}
	return out
}

// decodeList decodes a JSON array where each element starts from a copy of
// zero, so per-record defaults survive absent fields.
func decodeList[T any](raw json.RawMessage, zero T) ([]T, error) {
	items, err := mist.Decode[[]json.RawMessage](raw)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, item := range items {
		rec, err := decodeOne(item, zero)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, nil
}

func decodeOne[T any](raw json.RawMessage, zero T) (T, error) {
	rec := zero
	if len(raw) == 0 {
		return rec, nil
	}
	if err := json.Unmarshal(raw, &rec); err != nil {
		return rec, fmt.Errorf("failed to decode mist response: %w", err)
	}
	return rec, nil
}
