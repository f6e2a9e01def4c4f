package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/utils"
	"github.com/MKhiriev/go-diner/models"
)

// auth is the session gate. It reads the `token` cookie, verifies it via
// [service.AuthService.ParseToken] and stores the decoded claim in the
// request context under [utils.ClaimCtxKey].
//
// Every rejection answers 401 with the generic body "Unauthorized"; the
// specific cause (missing cookie, expired, bad signature, malformed) is
// logged only.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := tokenFromCookie(r)
		if err != nil {
			log.Debug().Err(err).Msg("request without session")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		claim, err := h.services.AuthService.ParseToken(ctx, tokenString)
		if err != nil {
			log.Warn().Err(err).Msg("session token rejected")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx = context.WithValue(ctx, utils.ClaimCtxKey, claim)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(tokenCookieName)
	if err != nil {
		if errors.Is(err, http.ErrNoCookie) {
			return "", ErrNoTokenCookie
		}
		return "", err
	}
	if cookie.Value == "" {
		return "", ErrEmptyToken
	}
	return cookie.Value, nil
}

// claimFromRequest returns the claim stored by auth.
func claimFromRequest(r *http.Request) (models.Claim, error) {
	claim, ok := utils.GetClaimFromContext(r.Context())
	if !ok {
		return models.Claim{}, ErrNoClaimInContext
	}
	return claim, nil
}
