package memory

import (
	"context"
	"testing"

	"mist-provisioning-be/internal/repository/contract"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContextStoreLastWriteWins(t *testing.T) {
	ctx := context.Background()
	store := NewContextStore()

	ops := []struct {
		op    string
		key   string
		value string
	}{
		{"set", contract.KeyAPIHost, "api.mist.com"},
		{"set", contract.KeyAPIHost, "api.eu.mist.com"},
		{"set", contract.KeyOrgID, "org-1"},
		{"delete", contract.KeyOrgID, ""},
		{"set", contract.KeyOrgID, "org-2"},
		{"delete", contract.KeyAPIHost, ""},
		{"delete", contract.KeyAPIHost, ""},
	}

	model := map[string]string{}
	for _, o := range ops {
		switch o.op {
		case "set":
			require.NoError(t, store.Set(ctx, o.key, o.value))
			model[o.key] = o.value
		case "delete":
			require.NoError(t, store.Delete(ctx, o.key))
			delete(model, o.key)
		}

		for _, key := range []string{contract.KeyAPIHost, contract.KeyOrgID} {
			got, found, err := store.Get(ctx, key)
			require.NoError(t, err)
			want, ok := model[key]
			assert.Equal(t, ok, found, "presence of %s after %s %s", key, o.op, o.key)
			assert.Equal(t, want, got)
		}
	}
}

func TestContextStoreGetMissing(t *testing.T) {
	store := NewContextStore()

	val, found, err := store.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Empty(t, val)
	assert.NoError(t, store.Ping(context.Background()))
}
