package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-advert-board/internal/service"
	"github.com/MKhiriev/go-advert-board/internal/store"
	"github.com/MKhiriev/go-advert-board/internal/utils"
	"github.com/MKhiriev/go-advert-board/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,

	store.ErrEmailAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,
	store.ErrAdvertNotFound:     http.StatusNotFound,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrScanningRow:          http.StatusInternalServerError,
}

// errorMessageMap pins the exact client-facing message for known outcomes.
// Anything not listed here is reported as a generic internal error so that
// raw store faults never leak to clients.
var errorMessageMap = map[error]string{
	service.ErrInvalidDataProvided: "invalid data provided",

	store.ErrEmailAlreadyExists: "Email already exists",
	store.ErrUserNotFound:       "User not found",
	store.ErrAdvertNotFound:     "Advert not found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func messageFromError(err error) string {
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return http.StatusText(http.StatusInternalServerError)
}

// writeError renders an error outcome as the `{"error": ...}` JSON body.
func writeError(w http.ResponseWriter, message string, statusCode int) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message}, statusCode)
}

// mapError is the common path for handlers that have no endpoint-specific
// messages: it resolves both status code and body from the error chain.
func mapError(w http.ResponseWriter, err error) {
	writeError(w, messageFromError(err), statusFromError(err))
}
