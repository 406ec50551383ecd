package api

import (
	"time"

	"github.com/phrazzld/precise-api/internal/domain"
)

// LoginRequest defines the payload for the login endpoint.
type LoginRequest struct {
	UserID   string `json:"user_id"  validate:"required"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse is the body returned on a successful login. It does not use
// the numeric-status envelope.
type LoginResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Token   string `json:"token"`
}

// DeleteRequest carries the actor and justification for any master-data delete.
type DeleteRequest struct {
	DeletedBy string `json:"deleted_by" validate:"required,max=50"`
	Reason    string `json:"reason"     validate:"required"`
}

// CreateCountryRequest defines the payload for POST /master/countries.
type CreateCountryRequest struct {
	CountryCode string `json:"country_code" validate:"min=3,max=10"`
	CountryName string `json:"country_name" validate:"min=3,max=100"`
	CreatedBy   string `json:"created_by"   validate:"required,max=50"`
}

// UpdateCountryRequest defines the payload for PUT /master/countries/{id}.
type UpdateCountryRequest struct {
	CountryCode string `json:"country_code" validate:"min=3,max=10"`
	CountryName string `json:"country_name" validate:"min=3,max=100"`
	UpdatedBy   string `json:"updated_by"   validate:"required,max=50"`
	Reason      string `json:"reason"       validate:"required"`
}

// CreateStateRequest defines the payload for POST /master/states.
type CreateStateRequest struct {
	StateCode string `json:"state_code" validate:"min=3,max=10"`
	StateName string `json:"state_name" validate:"min=3,max=100"`
	CountryID int64  `json:"country_id" validate:"required,gt=0"`
	CreatedBy string `json:"created_by" validate:"required,max=50"`
}

// UpdateStateRequest defines the payload for PUT /master/states/{id}.
type UpdateStateRequest struct {
	StateCode string `json:"state_code" validate:"min=3,max=10"`
	StateName string `json:"state_name" validate:"min=3,max=100"`
	CountryID int64  `json:"country_id" validate:"required,gt=0"`
	UpdatedBy string `json:"updated_by" validate:"required,max=50"`
	Reason    string `json:"reason"     validate:"required"`
}

// CreateCityRequest defines the payload for POST /master/cities.
type CreateCityRequest struct {
	CityCode  string `json:"city_code"  validate:"min=3,max=10"`
	CityName  string `json:"city_name"  validate:"min=3,max=100"`
	StateID   int64  `json:"state_id"   validate:"required,gt=0"`
	CreatedBy string `json:"created_by" validate:"required,max=50"`
}

// UpdateCityRequest defines the payload for PUT /master/cities/{id}.
// A city cannot be moved to another state.
type UpdateCityRequest struct {
	CityCode  string `json:"city_code"  validate:"min=3,max=10"`
	CityName  string `json:"city_name"  validate:"min=3,max=100"`
	UpdatedBy string `json:"updated_by" validate:"required,max=50"`
	Reason    string `json:"reason"     validate:"required"`
}

// AuditResponse holds the bookkeeping fields returned with every row.
// UpdatedOn is unix seconds.
type AuditResponse struct {
	CreatedOn time.Time `json:"created_on"`
	CreatedBy string    `json:"created_by"`
	UpdatedOn *int64    `json:"updated_on"`
	UpdatedBy *string   `json:"updated_by"`
}

// CountryResponse is the wire form of a country.
type CountryResponse struct {
	CountryID   int64  `json:"country_id"`
	CountryCode string `json:"country_code"`
	CountryName string `json:"country_name"`
	AuditResponse
}

// StateResponse is the wire form of a state.
type StateResponse struct {
	StateID     int64  `json:"state_id"`
	StateCode   string `json:"state_code"`
	StateName   string `json:"state_name"`
	CountryID   int64  `json:"country_id"`
	CountryName string `json:"country_name"`
	AuditResponse
}

// CityResponse is the wire form of a city.
type CityResponse struct {
	CityID      int64  `json:"city_id"`
	CityCode    string `json:"city_code"`
	CityName    string `json:"city_name"`
	StateID     int64  `json:"state_id"`
	StateName   string `json:"state_name"`
	CountryName string `json:"country_name"`
	AuditResponse
}

func auditToResponse(a domain.Audit) AuditResponse {
	resp := AuditResponse{
		CreatedOn: a.CreatedOn,
		CreatedBy: a.CreatedBy,
		UpdatedBy: a.UpdatedBy,
	}
	if a.UpdatedOn != nil {
		secs := a.UpdatedOn.Unix()
		resp.UpdatedOn = &secs
	}
	return resp
}

func countryToResponse(c *domain.Country) CountryResponse {
	return CountryResponse{
		CountryID:     c.ID,
		CountryCode:   c.Code,
		CountryName:   c.Name,
		AuditResponse: auditToResponse(c.Audit),
	}
}

func stateToResponse(s *domain.State) StateResponse {
	return StateResponse{
		StateID:       s.ID,
		StateCode:     s.Code,
		StateName:     s.Name,
		CountryID:     s.CountryID,
		CountryName:   s.CountryName,
		AuditResponse: auditToResponse(s.Audit),
	}
}

func cityToResponse(c *domain.City) CityResponse {
	return CityResponse{
		CityID:        c.ID,
		CityCode:      c.Code,
		CityName:      c.Name,
		StateID:       c.StateID,
		StateName:     c.StateName,
		CountryName:   c.CountryName,
		AuditResponse: auditToResponse(c.Audit),
	}
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
