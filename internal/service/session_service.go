package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/internal/pkg/logger"
	"mist-provisioning-be/internal/repository/contract"
	"mist-provisioning-be/pkg/events"
	"mist-provisioning-be/pkg/mist"
)

type ISessionService interface {
	// Handshake calls /self on the requested host, resolves the organization
	// and stores both context fields. The identity payload is returned as is.
	Handshake(ctx context.Context, req *dto.SelfRequest) (json.RawMessage, error)
	// ResolveContext is the read path for resource handlers.
	ResolveContext(ctx context.Context, requireOrg bool) (*dto.SessionContext, error)
	GetContext(ctx context.Context) (*dto.SessionContext, error)
	ClearContext(ctx context.Context) error
}

type sessionService struct {
	store       contract.ContextStore
	engine      mist.IEngine
	audit       IAuditPublisher
	logger      logger.ILogger
	defaultHost string
}

func NewSessionService(
	store contract.ContextStore,
	engine mist.IEngine,
	audit IAuditPublisher,
	log logger.ILogger,
	defaultHost string,
) ISessionService {
	return &sessionService{
		store:       store,
		engine:      engine,
		audit:       audit,
		logger:      log,
		defaultHost: defaultHost,
	}
}

func (s *sessionService) Handshake(ctx context.Context, req *dto.SelfRequest) (json.RawMessage, error) {
	host := req.APIHost
	if host == "" {
		host = s.defaultHost
	}

	raw, err := mist.GetSelf(ctx, s.engine, host)
	if err != nil {
		s.logger.Warn("SESSION", "Handshake failed", map[string]interface{}{"api_host": host, "error": err.Error()})
		return nil, err
	}

	orgID := req.OrgID
	source := "override"
	if orgID == "" {
		self, err := mist.Decode[mist.Self](raw)
		if err != nil {
			return nil, &mist.UpstreamError{StatusCode: http.StatusOK, Detail: "identity payload is malformed: " + err.Error()}
		}
		orgID = mist.LastOrgID(self.Privileges)
		source = "privileges"
	}

	if err := s.store.Set(ctx, contract.KeyAPIHost, host); err != nil {
		return nil, err
	}
	if orgID != "" {
		if err := s.store.Set(ctx, contract.KeyOrgID, orgID); err != nil {
			return nil, err
		}
	}

	details := map[string]interface{}{"api_host": host, "org_id": orgID, "org_source": source}
	if orgID == "" {
		s.logger.Warn("SESSION", "Handshake resolved no organization", details)
	} else {
		s.logger.Info("SESSION", "Session context resolved", details)
	}
	s.audit.Publish(ctx, events.TypeContextResolved, details)

	return raw, nil
}

func (s *sessionService) ResolveContext(ctx context.Context, requireOrg bool) (*dto.SessionContext, error) {
	host, found, err := s.store.Get(ctx, contract.KeyAPIHost)
	if err != nil {
		return nil, err
	}
	if !found || host == "" {
		return nil, fmt.Errorf("%w (api_host not set)", ErrContextMissing)
	}

	sc := &dto.SessionContext{APIHost: host}
	if !requireOrg {
		return sc, nil
	}

	orgID, found, err := s.store.Get(ctx, contract.KeyOrgID)
	if err != nil {
		return nil, err
	}
	if !found || orgID == "" {
		return nil, fmt.Errorf("%w (org_id not set)", ErrContextMissing)
	}
	sc.OrgID = orgID
	return sc, nil
}

func (s *sessionService) GetContext(ctx context.Context) (*dto.SessionContext, error) {
	host, hostFound, err := s.store.Get(ctx, contract.KeyAPIHost)
	if err != nil {
		return nil, err
	}
	orgID, orgFound, err := s.store.Get(ctx, contract.KeyOrgID)
	if err != nil {
		return nil, err
	}
	if !hostFound && !orgFound {
		return nil, ErrContextMissing
	}
	return &dto.SessionContext{APIHost: host, OrgID: orgID}, nil
}

func (s *sessionService) ClearContext(ctx context.Context) error {
	for _, key := range []string{contract.KeyAPIHost, contract.KeyOrgID} {
		if err := s.store.Delete(ctx, key); err != nil {
			return err
		}
	}

	s.logger.Info("SESSION", "Session context cleared", nil)
	s.audit.Publish(ctx, events.TypeContextCleared, map[string]interface{}{})
	return nil
}
