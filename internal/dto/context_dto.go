package dto

// SelfRequest drives the identity handshake. Both fields are optional.
type SelfRequest struct {
	APIHost string `json:"api_host" validate:"omitempty,hostname_port|hostname|url"`
	OrgID   string `json:"org_id" validate:"omitempty,max=64"`
}

// SessionContext is the persisted working scope. OrgID may be empty when the
// handshake could not resolve an organization.
type SessionContext struct {
	APIHost string `json:"api_host"`
	OrgID   string `json:"org_id,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Store  string `json:"store"`
}
