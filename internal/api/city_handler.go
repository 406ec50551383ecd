package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/precise-api/internal/api/shared"
	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/service"
)

// CityHandler serves /master/cities.
type CityHandler struct {
	cities service.CityService
	logger *slog.Logger
}

// NewCityHandler creates a new CityHandler.
func NewCityHandler(cities service.CityService, logger *slog.Logger) *CityHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &CityHandler{
		cities: cities,
		logger: logger.With(slog.String("component", "city_handler")),
	}
}

// List handles GET /master/cities.
func (h *CityHandler) List(w http.ResponseWriter, r *http.Request) {
	cities, err := h.cities.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCity, msgFetchFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgRetrieved, mapSlice(cities, cityToResponse))
}

// Get handles GET /master/cities/{id}.
func (h *CityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	city, err := h.cities.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCity, msgFetchFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgRetrieved, cityToResponse(city))
}

// Create handles POST /master/cities.
func (h *CityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created := &domain.City{
		Code:    req.CityCode,
		Name:    req.CityName,
		StateID: req.StateID,
		Audit:   domain.Audit{CreatedBy: req.CreatedBy},
	}
	id, err := h.cities.Create(r.Context(), created)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCity, msgInsertFailed)
		return
	}
	created.ID = id

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("city created", slog.Int64("city_id", id))

	// Echo the stored row; fall back to the submitted one if it cannot be re-read.
	stored, err := h.cities.Get(r.Context(), id)
	switch {
	case err != nil:
		log.Warn("created city could not be re-read",
			slog.Int64("city_id", id), slog.String("error", err.Error()))
	case stored != nil:
		created = stored
	}
	shared.RespondWithData(w, r, http.StatusOK, msgInserted, cityToResponse(created))
}

// Update handles PUT /master/cities/{id}.
func (h *CityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}
	var req UpdateCityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	city := &domain.City{
		ID:    id,
		Code:  req.CityCode,
		Name:  req.CityName,
		Audit: domain.Audit{UpdatedBy: &req.UpdatedBy},
	}
	reason := domain.NewUpdateReason(req.UpdatedBy, req.Reason)
	if err := h.cities.Update(r.Context(), city, reason); err != nil {
		HandleAPIError(w, r, err, service.EntityCity, msgUpdateFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgUpdated, nil)
}

// Delete handles DELETE /master/cities/{id}.
func (h *CityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}
	var req DeleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reason := domain.NewDeleteReason(req.DeletedBy, req.Reason)
	if err := h.cities.Delete(r.Context(), id, reason); err != nil {
		HandleAPIError(w, r, err, service.EntityCity, msgDeleteFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgDeleted, nil)
}

// CodeExists handles GET /master/cities/exists/code?city_code=.
func (h *CityHandler) CodeExists(w http.ResponseWriter, r *http.Request) {
	code, ok := requireQuery(w, r, "city_code")
	if !ok {
		return
	}
	found, err := h.cities.CodeExists(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCity, msgFetchFailed)
		return
	}
	respondExists(w, r, found)
}

// NameExists handles GET /master/cities/exists/name?city_name=.
func (h *CityHandler) NameExists(w http.ResponseWriter, r *http.Request) {
	name, ok := requireQuery(w, r, "city_name")
	if !ok {
		return
	}
	found, err := h.cities.NameExists(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityCity, msgFetchFailed)
		return
	}
	respondExists(w, r, found)
}
