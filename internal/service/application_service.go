package service

import (
	"context"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/pkg/mist"
)

// Applications are stored upstream as org "services".
type IApplicationService interface {
	ListApplications(ctx context.Context) (*dto.ApplicationListResponse, error)
	CreateApplication(ctx context.Context, req *dto.ApplicationCreateRequest) (*dto.Application, error)
	GetApplication(ctx context.Context, appID string) (*dto.Application, error)
	UpdateApplication(ctx context.Context, appID string, req *dto.ApplicationUpdateRequest) (*dto.Application, error)
	DeleteApplication(ctx context.Context, appID string) (*dto.DeleteResponse, error)
}

type applicationService struct {
	resource orgResource[dto.Application]
}

func NewApplicationService(session ISessionService, engine mist.IEngine) IApplicationService {
	return &applicationService{
		resource: orgResource[dto.Application]{
			proxy:      resourceProxy{session: session, engine: engine},
			collection: "services",
			zero:       func() dto.Application { return dto.Application{Hostnames: []string{}, IPs: []string{}} },
		},
	}
}

func (s *applicationService) ListApplications(ctx context.Context) (*dto.ApplicationListResponse, error) {
	apps, err := s.resource.list(ctx)
	if err != nil {
		return nil, err
	}
	return &dto.ApplicationListResponse{Applications: apps, Count: len(apps)}, nil
}

func (s *applicationService) CreateApplication(ctx context.Context, req *dto.ApplicationCreateRequest) (*dto.Application, error) {
	payload := *req
	if payload.Type == "" {
		payload.Type = dto.AppTypeCustom
	}
	if payload.TrafficClass == "" {
		payload.TrafficClass = dto.TrafficClassBestEffort
	}
	if payload.Hostnames == nil {
		payload.Hostnames = []string{}
	}
	if payload.IPs == nil {
		payload.IPs = []string{}
	}

	fallback := s.resource.zero()
	fallback.Name = req.Name
	return s.resource.create(ctx, payload, fallback)
}

func (s *applicationService) GetApplication(ctx context.Context, appID string) (*dto.Application, error) {
	fallback := s.resource.zero()
	fallback.ID = appID
	return s.resource.get(ctx, appID, fallback)
}

func (s *applicationService) UpdateApplication(ctx context.Context, appID string, req *dto.ApplicationUpdateRequest) (*dto.Application, error) {
	fallback := s.resource.zero()
	fallback.ID = appID
	return s.resource.update(ctx, appID, req, fallback)
}

func (s *applicationService) DeleteApplication(ctx context.Context, appID string) (*dto.DeleteResponse, error) {
	if err := s.resource.remove(ctx, appID); err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{ID: appID, Status: "deleted"}, nil
}
