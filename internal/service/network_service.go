package service

import (
	"context"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/pkg/mist"
)

type INetworkService interface {
	ListNetworks(ctx context.Context) (*dto.NetworkListResponse, error)
	CreateNetwork(ctx context.Context, req *dto.NetworkCreateRequest) (*dto.Network, error)
	GetNetwork(ctx context.Context, networkID string) (*dto.Network, error)
	UpdateNetwork(ctx context.Context, networkID string, req *dto.NetworkUpdateRequest) (*dto.Network, error)
	DeleteNetwork(ctx context.Context, networkID string) (*dto.DeleteResponse, error)
}

type networkService struct {
	resource orgResource[dto.Network]
}

func NewNetworkService(session ISessionService, engine mist.IEngine) INetworkService {
	return &networkService{
		resource: orgResource[dto.Network]{
			proxy:      resourceProxy{session: session, engine: engine},
			collection: "networks",
			zero:       func() dto.Network { return dto.Network{InternetAccess: true} },
		},
	}
}

func (s *networkService) ListNetworks(ctx context.Context) (*dto.NetworkListResponse, error) {
	networks, err := s.resource.list(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.NetworkListResponse{Networks: networks, Count: len(networks)}, nil
}

func (s *networkService) CreateNetwork(ctx context.Context, req *dto.NetworkCreateRequest) (*dto.Network, error) {
	payload := *req
	if payload.InternetAccess == nil {
		internet := true
		payload.InternetAccess = &internet
	}

	fallback := s.resource.zero()
	fallback.Name = req.Name
	return s.resource.create(ctx, payload, fallback)
}

func (s *networkService) GetNetwork(ctx context.Context, networkID string) (*dto.Network, error) {
	fallback := s.resource.zero()
	fallback.ID = networkID
	return s.resource.get(ctx, networkID, fallback)
}

func (s *networkService) UpdateNetwork(ctx context.Context, networkID string, req *dto.NetworkUpdateRequest) (*dto.Network, error) {
	fallback := s.resource.zero()
	fallback.ID = networkID
	return s.resource.update(ctx, networkID, req, fallback)
}

func (s *networkService) DeleteNetwork(ctx context.Context, networkID string) (*dto.DeleteResponse, error) {
	if err := s.resource.remove(ctx, networkID); err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{ID: networkID, Status: "deleted"}, nil
}
