package dto

type LatLng struct {
	Lat float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lng float64 `json:"lng" validate:"gte=-180,lte=180"`
}

type SiteCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=64"`
	Address     string  `json:"address,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	CountryCode string  `json:"country_code,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	LatLng      *LatLng `json:"latlng,omitempty"`
	Notes       string  `json:"notes,omitempty"`
}

type SiteUpdateRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=64"`
	Address     *string `json:"address,omitempty"`
	Timezone    *string `json:"timezone,omitempty"`
	CountryCode *string `json:"country_code,omitempty" validate:"omitempty,iso3166_1_alpha2"`
	LatLng      *LatLng `json:"latlng,omitempty"`
	Notes       *string `json:"notes,omitempty"`
}

type Site struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Address     string  `json:"address,omitempty"`
	Timezone    string  `json:"timezone,omitempty"`
	CountryCode string  `json:"country_code,omitempty"`
	LatLng      *LatLng `json:"latlng,omitempty"`
	Notes       string  `json:"notes,omitempty"`
	OrgID       string  `json:"org_id,omitempty"`
}

type SiteListResponse struct {
	Sites []Site `json:"sites"`
	Count int    `json:"count"`
}

type DeleteResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}
