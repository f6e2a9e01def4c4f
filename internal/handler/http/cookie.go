package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-diner/models"
)

const tokenCookieName = "token"

// setTokenCookie stores token in the HTTP-only session cookie. The cookie
// lives as long as the token. Secure and SameSite follow the environment.
func (h *Handler) setTokenCookie(w http.ResponseWriter, token models.Token) {
	maxAge := int(time.Until(token.ExpiresAt).Seconds())
	if maxAge <= 0 {
		maxAge = int(h.app.TokenDuration.Seconds())
	}

	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.app.CookieSecure(),
		SameSite: h.app.CookieSameSite(),
	})
}

// clearTokenCookie expires the session cookie with the flags it was set with.
func (h *Handler) clearTokenCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     tokenCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.app.CookieSecure(),
		SameSite: h.app.CookieSameSite(),
	})
}
