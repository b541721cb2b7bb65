package service

import (
	"bytes"
	"context"
	"net/http"
	"net/url"
	"strconv"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/pkg/mist"
)

const orgInventoryPath = "/api/v1/orgs/%s/inventory"

type IInventoryService interface {
	ListInventory(ctx context.Context, q *dto.InventoryQuery) (*dto.InventoryResponse, error)
	GetDevice(ctx context.Context, serial string) (*dto.InventoryDevice, error)
	ClaimDevices(ctx context.Context, req *dto.ClaimDevicesRequest) (*dto.ClaimDevicesResponse, error)
	AssignDevices(ctx context.Context, req *dto.DeviceAssignmentRequest) (*dto.DeviceAssignmentResponse, error)
	UnassignDevices(ctx context.Context, req *dto.UnassignDevicesRequest) (*dto.DeviceAssignmentResponse, error)
}

type inventoryService struct {
	proxy resourceProxy
}

func NewInventoryService(session ISessionService, engine mist.IEngine) IInventoryService {
	return &inventoryService{proxy: resourceProxy{session: session, engine: engine}}
}

func (s *inventoryService) ListInventory(ctx context.Context, q *dto.InventoryQuery) (*dto.InventoryResponse, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(q.Limit))
	params.Set("page", strconv.Itoa(q.Page))
	if q.Type != "" {
		params.Set("type", q.Type)
	}
	if q.Unassigned {
		params.Set("unassigned", "true")
	}

	raw, _, err := s.proxy.orgCall(ctx, http.MethodGet, orgInventoryPath, params, nil)
	if err != nil {
		return nil, err
	}

	devices, err := decodeList(raw, dto.InventoryDevice{})
	if err != nil {
		return nil, err
	}
	return &dto.InventoryResponse{
		Devices: devices,
		Count:   len(devices),
		Limit:   q.Limit,
		Page:    q.Page,
	}, nil
}

// GetDevice looks a device up by serial. An empty upstream result yields a
// disconnected placeholder rather than an error.
func (s *inventoryService) GetDevice(ctx context.Context, serial string) (*dto.InventoryDevice, error) {
	raw, _, err := s.proxy.orgCall(ctx, http.MethodGet, orgInventoryPath, url.Values{"serial": {serial}}, nil)
	if err != nil {
		return nil, err
	}

	if trimmed := bytes.TrimSpace(raw); len(trimmed) > 0 && trimmed[0] == '{' {
		device, err := decodeOne(raw, dto.InventoryDevice{Serial: serial})
		if err != nil {
			return nil, err
		}
		return &device, nil
	}

	devices, err := decodeList(raw, dto.InventoryDevice{Serial: serial})
	if err != nil {
		return nil, err
	}
	if len(devices) == 0 {
		return &dto.InventoryDevice{Serial: serial}, nil
	}
	return &devices[0], nil
}

func (s *inventoryService) ClaimDevices(ctx context.Context, req *dto.ClaimDevicesRequest) (*dto.ClaimDevicesResponse, error) {
	raw, orgID, err := s.proxy.orgCall(ctx, http.MethodPost, orgInventoryPath, nil, req.ClaimCodes)
	if err != nil {
		return nil, err
	}
	return &dto.ClaimDevicesResponse{
		OrgID:        orgID,
		ClaimedCount: len(req.ClaimCodes),
		Status:       "claimed",
		Result:       raw,
	}, nil
}

func (s *inventoryService) AssignDevices(ctx context.Context, req *dto.DeviceAssignmentRequest) (*dto.DeviceAssignmentResponse, error) {
	managed := true
	if req.Managed != nil {
		managed = *req.Managed
	}
	ops := []dto.InventoryOp{{
		Op:      "assign",
		SiteID:  req.SiteID,
		Macs:    []string{},
		Serials: req.SerialNumbers,
		Managed: &managed,
	}}

	raw, _, err := s.proxy.orgCall(ctx, http.MethodPut, orgInventoryPath, nil, ops)
	if err != nil {
		return nil, err
	}
	return &dto.DeviceAssignmentResponse{
		SiteID:          req.SiteID,
		DevicesAssigned: len(req.SerialNumbers),
		SerialNumbers:   req.SerialNumbers,
		Status:          "assigned",
		Result:          raw,
	}, nil
}

func (s *inventoryService) UnassignDevices(ctx context.Context, req *dto.UnassignDevicesRequest) (*dto.DeviceAssignmentResponse, error) {
	ops := []dto.InventoryOp{{
		Op:      "unassign",
		Macs:    []string{},
		Serials: req.SerialNumbers,
	}}

	raw, _, err := s.proxy.orgCall(ctx, http.MethodPut, orgInventoryPath, nil, ops)
	if err != nil {
		return nil, err
	}
	return &dto.DeviceAssignmentResponse{
		SerialNumbers: req.SerialNumbers,
		Status:        "unassigned",
		Result:        raw,
	}, nil
}
