package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-diner/internal/logger"
	"github.com/MKhiriev/go-diner/internal/utils"
	"github.com/MKhiriev/go-diner/models"
)

// issueToken signs a session token for the posted claim and stores it in the
// `token` cookie.
func (h *Handler) issueToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var claim models.Claim
	if err := decodeJSON(r, &claim); err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, claim)
	if err != nil {
		writeError(w, r, err)
		return
	}

	h.setTokenCookie(w, token)
	log.Debug().Str("email", claim.Email).Time("expires_at", token.ExpiresAt).Msg("session issued")

	utils.WriteJSON(w, models.AuthResponse{Success: true}, http.StatusOK)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	h.clearTokenCookie(w)
	utils.WriteJSON(w, models.AuthResponse{Success: true}, http.StatusOK)
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}
