package contract

import (
	"context"
	"errors"
)

// ErrStoreUnavailable marks failures to reach the backing key-value store.
// It must never be confused with a key being absent.
var ErrStoreUnavailable = errors.New("context store unavailable")

const (
	KeyAPIHost    = "api_host"
	KeyOrgID      = "org_id"
	KeyNmsProfile = "nms_profile"
)

// ContextStore persists the session context outside of the process.
// Set is an unconditional overwrite and Delete is idempotent. There is no
// atomicity across keys.
type ContextStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
}
