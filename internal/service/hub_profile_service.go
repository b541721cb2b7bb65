package service

import (
	"context"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/pkg/mist"
)

type IHubProfileService interface {
	ListHubProfiles(ctx context.Context) (*dto.HubProfileListResponse, error)
	CreateHubProfile(ctx context.Context, req *dto.HubProfileCreateRequest) (*dto.HubProfile, error)
	GetHubProfile(ctx context.Context, profileID string) (*dto.HubProfile, error)
	UpdateHubProfile(ctx context.Context, profileID string, req *dto.HubProfileUpdateRequest) (*dto.HubProfile, error)
	DeleteHubProfile(ctx context.Context, profileID string) (*dto.DeleteResponse, error)
}

type hubProfileService struct {
	resource orgResource[dto.HubProfile]
}

func NewHubProfileService(session ISessionService, engine mist.IEngine) IHubProfileService {
	return &hubProfileService{
		resource: orgResource[dto.HubProfile]{
			proxy:      resourceProxy{session: session, engine: engine},
			collection: "hubprofiles",
			zero: func() dto.HubProfile {
				return dto.HubProfile{Wan: []map[string]interface{}{}, Lan: []map[string]interface{}{}}
			},
		},
	}
}

func (s *hubProfileService) ListHubProfiles(ctx context.Context) (*dto.HubProfileListResponse, error) {
	profiles, err := s.resource.list(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.HubProfileListResponse{HubProfiles: profiles, Count: len(profiles)}, nil
}

func (s *hubProfileService) CreateHubProfile(ctx context.Context, req *dto.HubProfileCreateRequest) (*dto.HubProfile, error) {
	payload := *req
	if payload.PathPreference == "" {
		payload.PathPreference = "ordered"
	}
	payload.Wan = make([]dto.WanInterface, len(req.Wan))
	for i, wan := range req.Wan {
		if wan.Type == "" {
			wan.Type = "broadband"
		}
		if wan.Weight == 0 {
			wan.Weight = 1
		}
		payload.Wan[i] = wan
	}
	if payload.Lan == nil {
		payload.Lan = []dto.LanNetwork{}
	}

	fallback := s.resource.zero()
	fallback.Name = req.Name
	return s.resource.create(ctx, payload, fallback)
}

func (s *hubProfileService) GetHubProfile(ctx context.Context, profileID string) (*dto.HubProfile, error) {
	fallback := s.resource.zero()
	fallback.ID = profileID
	return s.resource.get(ctx, profileID, fallback)
}

func (s *hubProfileService) UpdateHubProfile(ctx context.Context, profileID string, req *dto.HubProfileUpdateRequest) (*dto.HubProfile, error) {
	fallback := s.resource.zero()
	fallback.ID = profileID
	return s.resource.update(ctx, profileID, req, fallback)
}

func (s *hubProfileService) DeleteHubProfile(ctx context.Context, profileID string) (*dto.DeleteResponse, error) {
	if err := s.resource.remove(ctx, profileID); err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{ID: profileID, Status: "deleted"}, nil
}
