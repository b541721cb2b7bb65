package dto

type WanInterface struct {
	Name    string `json:"name" validate:"required"`
	Type    string `json:"type,omitempty" validate:"omitempty,oneof=broadband lte mpls ethernet"`
	IP      string `json:"ip,omitempty" validate:"omitempty,ip"`
	Netmask string `json:"netmask,omitempty"`
	Gateway string `json:"gateway,omitempty" validate:"omitempty,ip"`
	Weight  int    `json:"weight,omitempty" validate:"omitempty,min=1,max=100"`
}

type LanNetwork struct {
	Name   string `json:"name" validate:"required"`
	VlanID *int   `json:"vlan_id,omitempty" validate:"omitempty,min=1,max=4094"`
	Subnet string `json:"subnet,omitempty" validate:"omitempty,cidr"`
}

type HubProfileCreateRequest struct {
	Name           string         `json:"name" validate:"required,max=64"`
	Wan            []WanInterface `json:"wan" validate:"dive"`
	Lan            []LanNetwork   `json:"lan" validate:"dive"`
	PathPreference string         `json:"path_preference,omitempty" validate:"omitempty,oneof=ordered weighted ecmp"`
	BgpEnabled     bool           `json:"bgp_enabled"`
	OspfEnabled    bool           `json:"ospf_enabled"`
}

type HubProfileUpdateRequest struct {
	Name           *string        `json:"name,omitempty" validate:"omitempty,max=64"`
	Wan            []WanInterface `json:"wan,omitempty" validate:"omitempty,dive"`
	Lan            []LanNetwork   `json:"lan,omitempty" validate:"omitempty,dive"`
	PathPreference *string        `json:"path_preference,omitempty" validate:"omitempty,oneof=ordered weighted ecmp"`
	BgpEnabled     *bool          `json:"bgp_enabled,omitempty"`
	OspfEnabled    *bool          `json:"ospf_enabled,omitempty"`
}

type HubProfile struct {
	ID             string                   `json:"id"`
	Name           string                   `json:"name"`
	Wan            []map[string]interface{} `json:"wan"`
	Lan            []map[string]interface{} `json:"lan"`
	PathPreference string                   `json:"path_preference,omitempty"`
	BgpEnabled     bool                     `json:"bgp_enabled"`
	OspfEnabled    bool                     `json:"ospf_enabled"`
	OrgID          string                   `json:"org_id,omitempty"`
}

type HubProfileListResponse struct {
	HubProfiles []HubProfile `json:"hub_profiles"`
	Count       int          `json:"count"`
}
