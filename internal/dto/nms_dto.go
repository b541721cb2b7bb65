package dto

// NmsProfile is the physical and logical intent for a site deployment:
// router, switch and AP MACs for zero touch claim, then VLANs and switch
// management addressing.
type NmsProfile struct {
	Ssr1Mac string `json:"ssr1_mac,omitempty" validate:"omitempty,hexadecimal,len=12"`
	Ssr2Mac string `json:"ssr2_mac,omitempty" validate:"omitempty,hexadecimal,len=12"`
	Ssr3Mac string `json:"ssr3_mac,omitempty" validate:"omitempty,hexadecimal,len=12"`
	Ssr4Mac string `json:"ssr4_mac,omitempty" validate:"omitempty,hexadecimal,len=12"`

	Ex1Mac string `json:"ex1_mac,omitempty" validate:"omitempty,hexadecimal,len=12"`

	Ap1Mac string `json:"ap1_mac,omitempty" validate:"omitempty,hexadecimal,len=12"`

	MgmtVlan *int `json:"mgmt_vlan,omitempty" validate:"omitempty,min=1,max=4094"`
	Vlan1    *int `json:"vlan_1,omitempty" validate:"omitempty,min=1,max=4094"`
	Vlan2    *int `json:"vlan_2,omitempty" validate:"omitempty,min=1,max=4094"`

	ExIP      string `json:"ex_ip,omitempty" validate:"omitempty,ip"`
	ExGateway string `json:"ex_gateway,omitempty" validate:"omitempty,ip"`
}
