package service

import (
	"context"
	"net/http"
)

// orgResource is CRUD over /api/v1/orgs/{org_id}/<collection>. zero carries
// the per-record defaults applied when upstream omits a field.
type orgResource[T any] struct {
	proxy      resourceProxy
	collection string
	zero       func() T
}

func (r orgResource[T]) listPath() string { return "/api/v1/orgs/%s/" + r.collection }
func (r orgResource[T]) itemPath() string { return "/api/v1/orgs/%s/" + r.collection + "/%s" }

func (r orgResource[T]) list(ctx context.Context) ([]T, error) {
	raw, _, err := r.proxy.orgCall(ctx, http.MethodGet, r.listPath(), nil, nil)
	if err != nil {
		return nil, err
	}
	return decodeList(raw, r.zero())
}

func (r orgResource[T]) create(ctx context.Context, payload interface{}, fallback T) (*T, error) {
	raw, _, err := r.proxy.orgCall(ctx, http.MethodPost, r.listPath(), nil, payload)
	if err != nil {
		return nil, err
	}
	rec, err := decodeOne(raw, fallback)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r orgResource[T]) get(ctx context.Context, id string, fallback T) (*T, error) {
	raw, _, err := r.proxy.orgCall(ctx, http.MethodGet, r.itemPath(), nil, nil, id)
	if err != nil {
		return nil, err
	}
	rec, err := decodeOne(raw, fallback)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r orgResource[T]) update(ctx context.Context, id string, payload interface{}, fallback T) (*T, error) {
	raw, _, err := r.proxy.orgCall(ctx, http.MethodPut, r.itemPath(), nil, payload, id)
	if err != nil {
		return nil, err
	}
	rec, err := decodeOne(raw, fallback)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r orgResource[T]) remove(ctx context.Context, id string) error {
	_, _, err := r.proxy.orgCall(ctx, http.MethodDelete, r.itemPath(), nil, nil, id)
	return err
}
