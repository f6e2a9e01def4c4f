package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/query"
	"github.com/MKhiriev/go-diner/internal/service"
	"github.com/MKhiriev/go-diner/internal/store"
	"github.com/MKhiriev/go-diner/internal/utils"
)

// errorStatuses is matched in order: when an error wraps several sentinels
// the earliest entry decides the status.
var errorStatuses = []struct {
	target error
	status int
}{
	{ErrNoTokenCookie, http.StatusUnauthorized},
	{ErrEmptyToken, http.StatusUnauthorized},
	{ErrNoClaimInContext, http.StatusUnauthorized},
	{utils.ErrTokenMalformed, http.StatusUnauthorized},
	{utils.ErrTokenExpired, http.StatusUnauthorized},
	{utils.ErrTokenSignatureInvalid, http.StatusUnauthorized},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},

	{service.ErrForbidden, http.StatusForbidden},

	{store.ErrFoodNotFound, http.StatusNotFound},
	{store.ErrOrderNotFound, http.StatusNotFound},
	{store.ErrUserNotFound, http.StatusNotFound},

	{store.ErrEmailAlreadyExists, http.StatusConflict},

	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidPathParameter, http.StatusBadRequest},
	{query.ErrInvalidParameter, http.StatusBadRequest},
	{service.ErrInvalidDataProvided, http.StatusBadRequest},
	{store.ErrNothingToUpdate, http.StatusBadRequest},
}

func statusFromError(err error) int {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.status
		}
	}
	return http.StatusInternalServerError
}

// writeError logs err and answers with the status mapped from it. Client
// errors carry the sentinel message; 401 and 5xx carry the generic status
// text only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	switch {
	case status >= http.StatusInternalServerError:
		log.Err(err).Int("status", status).Msg("request failed")
		http.Error(w, http.StatusText(status), status)
	case status == http.StatusUnauthorized:
		log.Warn().Err(err).Msg("unauthorized request")
		http.Error(w, http.StatusText(status), status)
	default:
		log.Warn().Err(err).Int("status", status).Msg("request rejected")
		http.Error(w, clientMessage(err), status)
	}
}

// clientMessage returns the message of the first known sentinel wrapped in
// err, so that wrapped context (ids, SQL) never reaches the client.
func clientMessage(err error) string {
	for _, e := range errorStatuses {
		if errors.Is(err, e.target) {
			return e.target.Error()
		}
	}
	return http.StatusText(statusFromError(err))
}
