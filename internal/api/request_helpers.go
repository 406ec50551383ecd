package api

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/precise-api/internal/api/shared"
	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/platform/logger"
)

const idParam = "id"

// getPathID extracts a positive integer ID from the URL path parameters.
func getPathID(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}
	return id, nil
}

// handlePathID parses the {id} parameter and writes a 400 when it is invalid.
// The second return is false once a response has been written.
func handlePathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := getPathID(r, idParam)
	if err != nil {
		logger.FromContextOrDefault(r.Context(), slog.Default()).
			Debug("invalid path id", slog.String("value", chi.URLParam(r, idParam)))
		HandleAPIError(w, r, err, "", "")
		return 0, false
	}
	return id, true
}

// decodeAndValidate reads the JSON body into req and runs struct validation.
// The second return is false once a response has been written.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, req any) bool {
	if err := shared.DecodeJSON(r, req); err != nil {
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, msgInvalidRequest, err)
		return false
	}
	if err := shared.ValidateRequest(req); err != nil {
		HandleAPIError(w, r, err, "", msgInvalidRequest)
		return false
	}
	return true
}

// requireQuery returns the named query parameter, writing a 400 when it is absent.
func requireQuery(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	value := r.URL.Query().Get(name)
	if value == "" {
		HandleAPIError(w, r, domain.NewValidationError(name, "is required", domain.ErrValidation), "", "")
		return "", false
	}
	return value, true
}

func respondExists(w http.ResponseWriter, r *http.Request, found bool) {
	msg := msgNotExists
	if found {
		msg = msgExists
	}
	shared.RespondWithData(w, r, http.StatusOK, msg, found)
}
