package service

import (
	"context"
	"encoding/json"
	"fmt"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/logger"
	"mist-provisioning-be/internal/repository/contract"
	"mist-provisioning-be/pkg/events"
)

// INmsService keeps the zero touch deployment profile next to the session
// context in the same store.
type INmsService interface {
	SaveProfile(ctx context.Context, profile *dto.NmsProfile) (*dto.NmsProfile, error)
	GetProfile(ctx context.Context) (*dto.NmsProfile, error)
	DeleteProfile(ctx context.Context) error
}

type nmsService struct {
	store  contract.ContextStore
	audit  IAuditPublisher
	logger logger.ILogger
}

func NewNmsService(store contract.ContextStore, audit IAuditPublisher, log logger.ILogger) INmsService {
	return &nmsService{store: store, audit: audit, logger: log}
}

func (s *nmsService) SaveProfile(ctx context.Context, profile *dto.NmsProfile) (*dto.NmsProfile, error) {
	data, err := json.Marshal(profile)
	if err != nil {
		return nil, fmt.Errorf("failed to encode nms profile: %w", err)
	}
	if err := s.store.Set(ctx, contract.KeyNmsProfile, string(data)); err != nil {
		return nil, err
	}

	s.logger.Info("NMS", "NMS profile saved", nil)
	s.audit.Publish(ctx, events.TypeProfileSaved, map[string]interface{}{"profile": profile})
	return profile, nil
}

func (s *nmsService) GetProfile(ctx context.Context) (*dto.NmsProfile, error) {
	data, found, err := s.store.Get(ctx, contract.KeyNmsProfile)
	if err != nil {
		return nil, err
	}
	if !found || data == "" {
		return nil, ErrProfileNotFound
	}

	var profile dto.NmsProfile
	if err := json.Unmarshal([]byte(data), &profile); err != nil {
		return nil, fmt.Errorf("stored nms profile is corrupt: %w", err)
	}
	return &profile, nil
}

func (s *nmsService) DeleteProfile(ctx context.Context) error {
	if err := s.store.Delete(ctx, contract.KeyNmsProfile); err != nil {
		return err
	}
	s.audit.Publish(ctx, events.TypeProfileCleared, map[string]interface{}{})
	return nil
}
