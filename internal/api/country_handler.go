package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/precise-api/internal/api/shared"
	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/service"
)

// CountryHandler serves /master/countries.
type CountryHandler struct {
	countries service.CountryService
	logger    *slog.Logger
}

// NewCountryHandler creates a new CountryHandler.
func NewCountryHandler(countries service.CountryService, logger *slog.Logger) *CountryHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CountryHandler{
		countries: countries,
		logger:    logger.With(slog.String("component", "country_handler")),
	}
}

// List handles GET /master/countries.
func (h *CountryHandler) List(w http.ResponseWriter, r *http.Request) {
	countries, err := h.countries.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCountry, msgFetchFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgRetrieved, mapSlice(countries, countryToResponse))
}

// Get handles GET /master/countries/{id}.
func (h *CountryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	country, err := h.countries.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCountry, msgFetchFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgRetrieved, countryToResponse(country))
}

// Create handles POST /master/countries.
func (h *CountryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCountryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created := &domain.Country{
		Code:  req.CountryCode,
		Name:  req.CountryName,
		Audit: domain.Audit{CreatedBy: req.CreatedBy},
	}
	id, err := h.countries.Create(r.Context(), created)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCountry, msgInsertFailed)
		return
	}
	created.ID = id

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("country created", slog.Int64("country_id", id))

	// Echo the stored row; fall back to the submitted one if it cannot be re-read.
	stored, err := h.countries.Get(r.Context(), id)
	switch {
	case err != nil:
		log.Warn("created country could not be re-read",
			slog.Int64("country_id", id), slog.String("error", err.Error()))
	case stored != nil:
		created = stored
	}
	shared.RespondWithData(w, r, http.StatusOK, msgInserted, countryToResponse(created))
}

// Update handles PUT /master/countries/{id}.
func (h *CountryHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}
	var req UpdateCountryRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	country := &domain.Country{
		ID:    id,
		Code:  req.CountryCode,
		Name:  req.CountryName,
		Audit: domain.Audit{UpdatedBy: &req.UpdatedBy},
	}
	reason := domain.NewUpdateReason(req.UpdatedBy, req.Reason)
	if err := h.countries.Update(r.Context(), country, reason); err != nil {
		HandleAPIError(w, r, err, service.EntityCountry, msgUpdateFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgUpdated, nil)
}

// Delete handles DELETE /master/countries/{id}.
func (h *CountryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}
	var req DeleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reason := domain.NewDeleteReason(req.DeletedBy, req.Reason)
	if err := h.countries.Delete(r.Context(), id, reason); err != nil {
		HandleAPIError(w, r, err, service.EntityCountry, msgDeleteFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgDeleted, nil)
}

// CodeExists handles GET /master/countries/exists/code?country_code=.
func (h *CountryHandler) CodeExists(w http.ResponseWriter, r *http.Request) {
	code, ok := requireQuery(w, r, "country_code")
	if !ok {
		return
	}
	found, err := h.countries.CodeExists(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCountry, msgFetchFailed)
		return
	}
	respondExists(w, r, found)
}

// NameExists handles GET /master/countries/exists/name?country_name=.
func (h *CountryHandler) NameExists(w http.ResponseWriter, r *http.Request) {
	name, ok := requireQuery(w, r, "country_name")
	if !ok {
		return
	}
	found, err := h.countries.NameExists(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCountry, msgFetchFailed)
		return
	}
	respondExists(w, r, found)
}
