package dto

import "encoding/json"

type InventoryQuery struct {
	Type       string `query:"type" validate:"omitempty,oneof=gateway switch ap"`
	Unassigned bool   `query:"unassigned"`
	Limit      int    `query:"limit" validate:"min=1,max=1000"`
	Page       int    `query:"page" validate:"min=1"`
}

type InventoryDevice struct {
	Serial    string `json:"serial"`
	Mac       string `json:"mac,omitempty"`
	Model     string `json:"model,omitempty"`
	Type      string `json:"type,omitempty"`
	SiteID    string `json:"site_id,omitempty"`
	SiteName  string `json:"site_name,omitempty"`
	Name      string `json:"name,omitempty"`
	Connected bool   `json:"connected"`
}

type InventoryResponse struct {
	Devices []InventoryDevice `json:"devices"`
	Count   int               `json:"count"`
	Limit   int               `json:"limit"`
	Page    int               `json:"page"`
}

type DeviceAssignmentRequest struct {
	SerialNumbers []string `json:"serial_numbers" validate:"required,min=1,dive,required"`
	SiteID        string   `json:"site_id" validate:"required"`
	Managed       *bool    `json:"managed,omitempty"`
}

type ClaimDevicesRequest struct {
	ClaimCodes []string `json:"claim_codes" validate:"required,min=1,dive,required"`
}

type UnassignDevicesRequest struct {
	SerialNumbers []string `json:"serial_numbers" validate:"required,min=1,dive,required"`
}

// InventoryOp is one element of the PUT /inventory operation list.
type InventoryOp struct {
	Op      string   `json:"op"`
	SiteID  string   `json:"site_id,omitempty"`
	Macs    []string `json:"macs"`
	Serials []string `json:"serials"`
	Managed *bool    `json:"managed,omitempty"`
}

type DeviceAssignmentResponse struct {
	SiteID          string          `json:"site_id,omitempty"`
	DevicesAssigned int             `json:"devices_assigned,omitempty"`
	SerialNumbers   []string        `json:"serial_numbers"`
	Status          string          `json:"status"`
	Result          json.RawMessage `json:"result,omitempty"`
}

type ClaimDevicesResponse struct {
	OrgID        string          `json:"org_id"`
	ClaimedCount int             `json:"claimed_count"`
	Status       string          `json:"status"`
	Result       json.RawMessage `json:"result,omitempty"`
}
