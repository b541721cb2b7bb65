package service

import (
	"context"
	"errors"
	"testing"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/logger"
	"mist-provisioning-be/internal/repository/contract"
	"mist-provisioning-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNmsProfileLifecycle(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContextStore()
	audit := &recordingAudit{}
	svc := NewNmsService(store, audit, logger.NewNopLogger())

	_, err := svc.GetProfile(ctx)
	assert.True(t, errors.Is(err, ErrProfileNotFound))

	vlan := 3623
	profile := &dto.NmsProfile{Ssr1Mac: "020001263c58", Ex1Mac: "d081c527cb80", MgmtVlan: &vlan, ExIP: "10.210.6.26"}
	_, err = svc.SaveProfile(ctx, profile)
	require.NoError(t, err)

	got, err := svc.GetProfile(ctx)
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	// The profile lives beside, not inside, the session context keys.
	_, found, err := store.Get(ctx, contract.KeyAPIHost)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, svc.DeleteProfile(ctx))
	_, err = svc.GetProfile(ctx)
	assert.True(t, errors.Is(err, ErrProfileNotFound))
	assert.Equal(t, []string{"NMS_PROFILE_SAVED", "NMS_PROFILE_CLEARED"}, audit.events)
}

func TestNmsProfileStoreUnavailable(t *testing.T) {
	svc := NewNmsService(brokenStore{}, &recordingAudit{}, logger.NewNopLogger())

	_, err := svc.GetProfile(context.Background())
	assert.True(t, errors.Is(err, contract.ErrStoreUnavailable))
	assert.False(t, errors.Is(err, ErrProfileNotFound))
}
