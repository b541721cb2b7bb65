package service

import (
	"context"
	"net/http"

	"mist-provisioning-be/internal/dto"
	"mist-provisioning-be/pkg/mist"
)

const (
	orgSitesPath = "/api/v1/orgs/%s/sites"
	sitePath     = "/api/v1/sites/%s"

	defaultSiteTimezone = "America/Chicago"
	defaultCountryCode  = "US"
)

type ISiteService interface {
	ListSites(ctx context.Context, nameFilter string) (*dto.SiteListResponse, error)
	CreateSite(ctx context.Context, req *dto.SiteCreateRequest) (*dto.Site, error)
	GetSite(ctx context.Context, siteID string) (*dto.Site, error)
	UpdateSite(ctx context.Context, siteID string, req *dto.SiteUpdateRequest) (*dto.Site, error)
	DeleteSite(ctx context.Context, siteID string) (*dto.DeleteResponse, error)
}

type siteService struct {
	proxy resourceProxy
}

func NewSiteService(session ISessionService, engine mist.IEngine) ISiteService {
	return &siteService{proxy: resourceProxy{session: session, engine: engine}}
}

func (s *siteService) ListSites(ctx context.Context, nameFilter string) (*dto.SiteListResponse, error) {
	raw, _, err := s.proxy.orgCall(ctx, http.MethodGet, orgSitesPath, nil, nil)
	if err != nil {
		return nil, err
	}

	all, err := decodeList(raw, dto.Site{})
	if err != nil {
		return nil, err
	}

	sites := make([]dto.Site, 0, len(all))
	for _, site := range all {
		if nameFilter != "" && site.Name != nameFilter {
			continue
		}
		sites = append(sites, site)
	}
	return &dto.SiteListResponse{Sites: sites, Count: len(sites)}, nil
}

func (s *siteService) CreateSite(ctx context.Context, req *dto.SiteCreateRequest) (*dto.Site, error) {
	payload := *req
	if payload.Timezone == "" {
		payload.Timezone = defaultSiteTimezone
	}
	if payload.CountryCode == "" {
		payload.CountryCode = defaultCountryCode
	}

	raw, _, err := s.proxy.orgCall(ctx, http.MethodPost, orgSitesPath, nil, payload)
	if err != nil {
		return nil, err
	}

	site, err := decodeOne(raw, dto.Site{Name: req.Name})
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *siteService) GetSite(ctx context.Context, siteID string) (*dto.Site, error) {
	raw, err := s.proxy.hostCall(ctx, http.MethodGet, sitePath, nil, siteID)
	if err != nil {
		return nil, err
	}

	site, err := decodeOne(raw, dto.Site{ID: siteID})
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *siteService) UpdateSite(ctx context.Context, siteID string, req *dto.SiteUpdateRequest) (*dto.Site, error) {
	raw, err := s.proxy.hostCall(ctx, http.MethodPut, sitePath, req, siteID)
	if err != nil {
		return nil, err
	}

	site, err := decodeOne(raw, dto.Site{ID: siteID})
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *siteService) DeleteSite(ctx context.Context, siteID string) (*dto.DeleteResponse, error) {
	if _, err := s.proxy.hostCall(ctx, http.MethodDelete, sitePath, nil, siteID); err != nil {
		return nil, err
	}
	return &dto.DeleteResponse{ID: siteID, Status: "deleted"}, nil
}
