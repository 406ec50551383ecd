package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/phrazzld/precise-api/internal/api/shared"
	"github.com/phrazzld/precise-api/internal/domain"
	"github.com/phrazzld/precise-api/internal/service"
	"github.com/phrazzld/precise-api/internal/service/auth"
	"github.com/phrazzld/precise-api/internal/store"
)

// Client-facing messages. Causes are only ever logged.
const (
	msgDataNotFound      = "Data not found"
	msgCommitFailed      = "Failed to commit transaction"
	msgUpdateFailed      = "Failed to update data"
	msgFetchFailed       = "Failed to fetch data"
	msgInsertFailed      = "Failed to insert data"
	msgDeleteFailed      = "Failed to delete data"
	msgStillReferenced   = "Data is still referenced"
	msgInvalidRequest    = "Invalid request format"
	msgInvalidToken      = "invalid token"
	msgUnexpected        = "An unexpected error occurred"
	msgRetrieved         = "Data retrieved successfully"
	msgInserted          = "Data inserted successfully"
	msgUpdated           = "Data updated successfully"
	msgDeleted           = "Data deleted successfully"
	msgExists            = "Data exists"
	msgNotExists         = "Data not exists"
	msgInvalidCredential = "Invalid user id or password"
	msgLoginSuccess      = "Success Login"
)

// MapErrorToStatusCode maps internal errors to HTTP status codes so that
// internal error types never decide the response on their own.
func MapErrorToStatusCode(err error) int {
	if _, ok := shared.ValidationMessage(err); ok {
		return http.StatusBadRequest
	}

	switch {
	case errors.Is(err, auth.ErrInvalidToken):
		return http.StatusUnauthorized

	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrInvalidID),
		errors.Is(err, domain.ErrEmptyActor),
		errors.Is(err, domain.ErrEmptyReason),
		errors.Is(err, store.ErrDuplicate):
		return http.StatusBadRequest

	case errors.Is(err, store.ErrInvalidEntity):
		return http.StatusConflict

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns the client message for err. entity names the
// resource for duplicate messages and fallback is used for unclassified
// failures.
func GetSafeErrorMessage(err error, entity, fallback string) string {
	if err == nil {
		return msgUnexpected
	}
	if msg, ok := shared.ValidationMessage(err); ok {
		return msg
	}

	var validationErr *domain.ValidationError
	switch {
	case errors.As(err, &validationErr):
		return validationErr.Error()

	case errors.Is(err, domain.ErrEmptyActor):
		return domain.ErrEmptyActor.Error()

	case errors.Is(err, domain.ErrEmptyReason):
		return domain.ErrEmptyReason.Error()

	case errors.Is(err, auth.ErrInvalidToken):
		return msgInvalidToken

	case errors.Is(err, store.ErrNotFound):
		return msgDataNotFound

	case errors.Is(err, store.ErrDuplicate):
		return capitalize(entity) + " code already exists"

	case errors.Is(err, store.ErrInvalidEntity):
		return msgStillReferenced

	case errors.Is(err, service.ErrCommitFailed):
		return msgCommitFailed

	case errors.Is(err, service.ErrMutationFailed):
		return msgUpdateFailed

	default:
		if fallback == "" {
			return msgUnexpected
		}
		return fallback
	}
}

// HandleAPIError writes the error response for err and logs the cause.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, entity, fallback string) {
	status := MapErrorToStatusCode(err)
	shared.RespondWithErrorAndLog(w, r, status, GetSafeErrorMessage(err, entity, fallback), err)
}

func capitalize(s string) string {
	if s == "" {
		return "Data"
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
