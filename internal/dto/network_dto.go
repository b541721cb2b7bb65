package dto

type NetworkCreateRequest struct {
	Name                 string `json:"name" validate:"required,max=32"`
	Subnet               string `json:"subnet,omitempty" validate:"omitempty,cidr"`
	VlanID               *int   `json:"vlan_id,omitempty" validate:"omitempty,min=1,max=4094"`
	DisallowMistServices bool   `json:"disallow_mist_services"`
	Gateway              string `json:"gateway,omitempty" validate:"omitempty,ip"`
	Gateway6             string `json:"gateway6,omitempty" validate:"omitempty,ipv6"`
	Isolation            bool   `json:"isolation"`
	InternetAccess       *bool  `json:"internet_access,omitempty"`
}

type NetworkUpdateRequest struct {
	Name                 *string `json:"name,omitempty" validate:"omitempty,max=32"`
	Subnet               *string `json:"subnet,omitempty" validate:"omitempty,cidr"`
	VlanID               *int    `json:"vlan_id,omitempty" validate:"omitempty,min=1,max=4094"`
	DisallowMistServices *bool   `json:"disallow_mist_services,omitempty"`
	Gateway              *string `json:"gateway,omitempty" validate:"omitempty,ip"`
	Gateway6             *string `json:"gateway6,omitempty" validate:"omitempty,ipv6"`
	Isolation            *bool   `json:"isolation,omitempty"`
	InternetAccess       *bool   `json:"internet_access,omitempty"`
}

type Network struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Subnet               string `json:"subnet,omitempty"`
	VlanID               int    `json:"vlan_id,omitempty"`
	DisallowMistServices bool   `json:"disallow_mist_services"`
	Gateway              string `json:"gateway,omitempty"`
	Gateway6             string `json:"gateway6,omitempty"`
	Isolation            bool   `json:"isolation"`
	InternetAccess       bool   `json:"internet_access"`
	OrgID                string `json:"org_id,omitempty"`
}

type NetworkListResponse struct {
	Networks []Network `json:"networks"`
	Count    int       `json:"count"`
}
