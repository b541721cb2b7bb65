package mist

import (
	"context"
	"encoding/json"
	"net/http"
)

const (
	ScopeOrg  = "org"
	ScopeSite = "site"
	ScopeMSP  = "msp"
)

// Privilege is one grant from the /self payload.
type Privilege struct {
	Scope  string `json:"scope"`
	OrgID  string `json:"org_id,omitempty"`
	SiteID string `json:"site_id,omitempty"`
	Role   string `json:"role,omitempty"`
	Name   string `json:"name,omitempty"`
}

// Self is the subset of the /self payload this service reads.
type Self struct {
	Email      string      `json:"email"`
	FirstName  string      `json:"first_name,omitempty"`
	LastName   string      `json:"last_name,omitempty"`
	Privileges []Privilege `json:"privileges"`
}

// GetSelf calls the identity endpoint on host and returns the raw payload.
func GetSelf(ctx context.Context, engine IEngine, host string) (json.RawMessage, error) {
	return engine.Do(ctx, host, Request{Method: http.MethodGet, Path: SelfPath})
}

// LastOrgID returns the org id of the last org-scoped privilege, or "".
func LastOrgID(privileges []Privilege) string {
	for i := len(privileges) - 1; i >= 0; i-- {
		if privileges[i].Scope == ScopeOrg {
			return privileges[i].OrgID
		}
	}
	return ""
}
