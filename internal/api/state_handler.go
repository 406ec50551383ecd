package api

import (
	"log/slog"
	"net/http"

	"github.com/phrazzld/precise-api/internal/api/shared"
	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
	"github.com/phrazzld/precise-api/internal/service"
)

// StateHandler serves /master/states.
type StateHandler struct {
	states service.StateService
	logger *slog.Logger
}

// NewStateHandler creates a new StateHandler.
func NewStateHandler(states service.StateService, logger *slog.Logger) *StateHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StateHandler{
		states: states,
		logger: logger.With(slog.String("component", "state_handler")),
	}
}

// List handles GET /master/states.
func (h *StateHandler) List(w http.ResponseWriter, r *http.Request) {
	states, err := h.states.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, service.EntityState, msgFetchFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgRetrieved, mapSlice(states, stateToResponse))
}

// Get handles GET /master/states/{id}.
func (h *StateHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}

	state, err := h.states.Get(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityState, msgFetchFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgRetrieved, stateToResponse(state))
}

// Create handles POST /master/states.
func (h *StateHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created := &domain.State{
		Code:      req.StateCode,
		Name:      req.StateName,
		CountryID: req.CountryID,
		Audit:     domain.Audit{CreatedBy: req.CreatedBy},
	}
	id, err := h.states.Create(r.Context(), created)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityState, msgInsertFailed)
		return
	}
	created.ID = id

	log := logger.FromContextOrDefault(r.Context(), h.logger)
	log.Info("state created", slog.Int64("state_id", id))

	// Echo the stored row; fall back to the submitted one if it cannot be re-read.
	stored, err := h.states.Get(r.Context(), id)
	switch {
	case err != nil:
		log.Warn("created state could not be re-read",
			slog.Int64("state_id", id), slog.String("error", err.Error()))
	case stored != nil:
		created = stored
	}
	shared.RespondWithData(w, r, http.StatusOK, msgInserted, stateToResponse(created))
}

// Update handles PUT /master/states/{id}.
func (h *StateHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}
	var req UpdateStateRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	state := &domain.State{
		ID:        id,
		Code:      req.StateCode,
		Name:      req.StateName,
		CountryID: req.CountryID,
		Audit:     domain.Audit{UpdatedBy: &req.UpdatedBy},
	}
	reason := domain.NewUpdateReason(req.UpdatedBy, req.Reason)
	if err := h.states.Update(r.Context(), state, reason); err != nil {
		HandleAPIError(w, r, err, service.EntityState, msgUpdateFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgUpdated, nil)
}

// Delete handles DELETE /master/states/{id}.
func (h *StateHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := handlePathID(w, r)
	if !ok {
		return
	}
	var req DeleteRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	reason := domain.NewDeleteReason(req.DeletedBy, req.Reason)
	if err := h.states.Delete(r.Context(), id, reason); err != nil {
		HandleAPIError(w, r, err, service.EntityState, msgDeleteFailed)
		return
	}
	shared.RespondWithData(w, r, http.StatusOK, msgDeleted, nil)
}

// CodeExists handles GET /master/states/exists/code?state_code=.
func (h *StateHandler) CodeExists(w http.ResponseWriter, r *http.Request) {
	code, ok := requireQuery(w, r, "state_code")
	if !ok {
		return
	}
	found, err := h.states.CodeExists(r.Context(), code)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityState, msgFetchFailed)
		return
	}
	respondExists(w, r, found)
}

// NameExists handles GET /master/states/exists/name?state_name=.
func (h *StateHandler) NameExists(w http.ResponseWriter, r *http.Request) {
	name, ok := requireQuery(w, r, "state_name")
	if !ok {
		return
	}
	found, err := h.states.NameExists(r.Context(), name)
	if err != nil {
		HandleAPIError(w, r, err, service.EntityState, msgFetchFailed)
		return
	}
	respondExists(w, r, found)
}
