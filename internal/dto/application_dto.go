package dto

const (
	AppTypeCustom   = "custom"
	AppTypeStandard = "standard"

	TrafficClassBestEffort = "best_effort"
)

type ApplicationCreateRequest struct {
	Name         string   `json:"name" validate:"required,max=64"`
	Type         string   `json:"type,omitempty" validate:"omitempty,oneof=custom standard"`
	Hostnames    []string `json:"hostnames"`
	IPs          []string `json:"ips" validate:"dive,cidr|ip"`
	Protocol     string   `json:"protocol,omitempty" validate:"omitempty,oneof=tcp udp any"`
	Port         string   `json:"port,omitempty"`
	DSCP         *int     `json:"dscp,omitempty" validate:"omitempty,min=0,max=63"`
	TrafficClass string   `json:"traffic_class,omitempty" validate:"omitempty,oneof=best_effort high medium low"`
	Description  string   `json:"description,omitempty"`
}

type ApplicationUpdateRequest struct {
	Name         *string  `json:"name,omitempty" validate:"omitempty,max=64"`
	Hostnames    []string `json:"hostnames,omitempty"`
	IPs          []string `json:"ips,omitempty" validate:"omitempty,dive,cidr|ip"`
	Protocol     *string  `json:"protocol,omitempty" validate:"omitempty,oneof=tcp udp any"`
	Port         *string  `json:"port,omitempty"`
	DSCP         *int     `json:"dscp,omitempty" validate:"omitempty,min=0,max=63"`
	TrafficClass *string  `json:"traffic_class,omitempty" validate:"omitempty,oneof=best_effort high medium low"`
	Description  *string  `json:"description,omitempty"`
}

type Application struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Type         string   `json:"type,omitempty"`
	Hostnames    []string `json:"hostnames"`
	IPs          []string `json:"ips"`
	Protocol     string   `json:"protocol,omitempty"`
	Port         string   `json:"port,omitempty"`
	DSCP         *int     `json:"dscp,omitempty"`
	TrafficClass string   `json:"traffic_class,omitempty"`
	Description  string   `json:"description,omitempty"`
	OrgID        string   `json:"org_id,omitempty"`
}

type ApplicationListResponse struct {
	Applications []Application `json:"applications"`
	Count        int           `json:"count"`
}
