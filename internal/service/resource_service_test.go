package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/repository/contract"
	"mist-provisioning-be/internal/repository/memory"
	"mist-provisioning-be/pkg/mist"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sessionWithContext(t *testing.T, host, org string, engine mist.IEngine) (ISessionService, contract.ContextStore) {
	t.Helper()
	ctx := context.Background()
	store := memory.NewContextStore()
	if host != "" {
		require.NoError(t, store.Set(ctx, contract.KeyAPIHost, host))
	}
	if org != "" {
		require.NoError(t, store.Set(ctx, contract.KeyOrgID, org))
	}
	svc, _ := newTestSession(store, engine)
	return svc, store
}

func TestResourceOperationsRequireContext(t *testing.T) {
	ctx := context.Background()
	engine := &fakeEngine{response: json.RawMessage(`[]`)}
	session, _ := sessionWithContext(t, "", "", engine)

	sites := NewSiteService(session, engine)
	networks := NewNetworkService(session, engine)
	apps := NewApplicationService(session, engine)
	hubs := NewHubProfileService(session, engine)
	inventory := NewInventoryService(session, engine)

	ops := map[string]func() error{
		"list sites":    func() error { _, err := sites.ListSites(ctx, ""); return err },
		"get site":      func() error { _, err := sites.GetSite(ctx, "s1"); return err },
		"delete site":   func() error { _, err := sites.DeleteSite(ctx, "s1"); return err },
		"list networks": func() error { _, err := networks.ListNetworks(ctx); return err },
		"create app":    func() error { _, err := apps.CreateApplication(ctx, &dto.ApplicationCreateRequest{Name: "Zoom"}); return err },
		"get hub":       func() error { _, err := hubs.GetHubProfile(ctx, "h1"); return err },
		"claim":         func() error { _, err := inventory.ClaimDevices(ctx, &dto.ClaimDevicesRequest{ClaimCodes: []string{"X"}}); return err },
	}

	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			err := op()
			assert.True(t, errors.Is(err, ErrContextMissing), "got %v", err)
		})
	}
	assert.Equal(t, 0, engine.callCount(), "no upstream call without context")
}

func TestOrgScopedOperationsRequireOrg(t *testing.T) {
	engine := &fakeEngine{response: json.RawMessage(`{"id":"s1"}`)}
	session, _ := sessionWithContext(t, "api.mist.com", "", engine)
	sites := NewSiteService(session, engine)

	_, err := sites.ListSites(context.Background(), "")
	assert.True(t, errors.Is(err, ErrContextMissing))

	site, err := sites.GetSite(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "s1", site.ID)
	require.Equal(t, 1, engine.callCount())
	assert.Equal(t, "/api/v1/sites/s1", engine.calls[0].Req.Path)
}

func TestListSitesFiltersByName(t *testing.T) {
	engine := &fakeEngine{response: json.RawMessage(`[
		{"id":"1","name":"Branch-Austin-001","org_id":"o"},
		{"id":"2","name":"Branch-Dallas-002","org_id":"o","extra":true}
	]`)}
	session, _ := sessionWithContext(t, "api.mist.com", "o", engine)
	sites := NewSiteService(session, engine)

	res, err := sites.ListSites(context.Background(), "Branch-Dallas-002")
	require.NoError(t, err)
	require.Equal(t, 1, res.Count)
	assert.Equal(t, "2", res.Sites[0].ID)
	assert.Equal(t, "api.mist.com", engine.calls[0].Host)
	assert.Equal(t, "/api/v1/orgs/o/sites", engine.calls[0].Req.Path)
}

func TestCreateSiteAppliesDefaults(t *testing.T) {
	engine := &fakeEngine{response: json.RawMessage(`{"id":"new"}`)}
	session, _ := sessionWithContext(t, "api.mist.com", "o", engine)
	sites := NewSiteService(session, engine)

	site, err := sites.CreateSite(context.Background(), &dto.SiteCreateRequest{Name: "Branch-1"})
	require.NoError(t, err)
	assert.Equal(t, "new", site.ID)
	assert.Equal(t, "Branch-1", site.Name)

	payload := engine.calls[0].Req.Body.(dto.SiteCreateRequest)
	assert.Equal(t, "America/Chicago", payload.Timezone)
	assert.Equal(t, "US", payload.CountryCode)
	assert.Equal(t, http.MethodPost, engine.calls[0].Req.Method)
}

func TestNetworkDefaults(t *testing.T) {
	engine := &fakeEngine{response: json.RawMessage(`[{"id":"n1","name":"Corp"},{"id":"n2","name":"Guest","internet_access":false}]`)}
	session, _ := sessionWithContext(t, "api.mist.com", "o", engine)
	networks := NewNetworkService(session, engine)

	res, err := networks.ListNetworks(context.Background())
	require.NoError(t, err)
	require.Len(t, res.Networks, 2)
	assert.True(t, res.Networks[0].InternetAccess)
	assert.False(t, res.Networks[1].InternetAccess)
	assert.Equal(t, "/api/v1/orgs/o/networks", engine.calls[0].Req.Path)
}

func TestApplicationAndHubProfilePaths(t *testing.T) {
	engine := &fakeEngine{}
	session, _ := sessionWithContext(t, "api.mist.com", "o", engine)
	ctx := context.Background()

	_, err := NewApplicationService(session, engine).DeleteApplication(ctx, "a1")
	require.NoError(t, err)
	_, err = NewHubProfileService(session, engine).UpdateHubProfile(ctx, "h1", &dto.HubProfileUpdateRequest{})
	require.NoError(t, err)

	assert.Equal(t, "/api/v1/orgs/o/services/a1", engine.calls[0].Req.Path)
	assert.Equal(t, http.MethodDelete, engine.calls[0].Req.Method)
	assert.Equal(t, "/api/v1/orgs/o/hubprofiles/h1", engine.calls[1].Req.Path)
	assert.Equal(t, http.MethodPut, engine.calls[1].Req.Method)
}

func TestInventoryAssignPayload(t *testing.T) {
	engine := &fakeEngine{response: json.RawMessage(`{"success":["SN1"]}`)}
	session, _ := sessionWithContext(t, "api.mist.com", "o", engine)
	inventory := NewInventoryService(session, engine)

	res, err := inventory.AssignDevices(context.Background(), &dto.DeviceAssignmentRequest{
		SerialNumbers: []string{"SN1"},
		SiteID:        "site-1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.DevicesAssigned)
	assert.Equal(t, "assigned", res.Status)

	ops := engine.calls[0].Req.Body.([]dto.InventoryOp)
	require.Len(t, ops, 1)
	assert.Equal(t, "assign", ops[0].Op)
	assert.Equal(t, "site-1", ops[0].SiteID)
	require.NotNil(t, ops[0].Managed)
	assert.True(t, *ops[0].Managed)
	assert.Equal(t, http.MethodPut, engine.calls[0].Req.Method)
}

func TestInventoryGetDevice(t *testing.T) {
	ctx := context.Background()

	t.Run("empty result gives placeholder", func(t *testing.T) {
		engine := &fakeEngine{response: json.RawMessage(`[]`)}
		session, _ := sessionWithContext(t, "api.mist.com", "o", engine)

		dev, err := NewInventoryService(session, engine).GetDevice(ctx, "SN9")
		require.NoError(t, err)
		assert.Equal(t, &dto.InventoryDevice{Serial: "SN9"}, dev)
		assert.Equal(t, "SN9", engine.calls[0].Req.Query.Get("serial"))
	})

	t.Run("object result", func(t *testing.T) {
		engine := &fakeEngine{response: json.RawMessage(`{"mac":"aabbccddeeff","connected":true}`)}
		session, _ := sessionWithContext(t, "api.mist.com", "o", engine)

		dev, err := NewInventoryService(session, engine).GetDevice(ctx, "SN9")
		require.NoError(t, err)
		assert.Equal(t, "SN9", dev.Serial)
		assert.True(t, dev.Connected)
	})
}

func TestUpstreamRejectionLeavesContextUntouched(t *testing.T) {
	engine := &fakeEngine{err: &mist.UpstreamError{StatusCode: http.StatusNotFound, Detail: "not found"}}
	session, store := sessionWithContext(t, "api.mist.com", "o", engine)

	_, err := NewSiteService(session, engine).GetSite(context.Background(), "missing")

	var upstreamErr *mist.UpstreamError
	require.True(t, errors.As(err, &upstreamErr))
	assert.Equal(t, http.StatusNotFound, upstreamErr.StatusCode)

	host, _ := storedValue(t, store, contract.KeyAPIHost)
	org, _ := storedValue(t, store, contract.KeyOrgID)
	assert.Equal(t, "api.mist.com", host)
	assert.Equal(t, "o", org)
}
