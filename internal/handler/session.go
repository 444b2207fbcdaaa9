package handler

import (
	"context"
	"log"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/middleware"
	"github.com/Sapuran-Berperan/inventory-console/internal/render/web"
	"github.com/Sapuran-Berperan/inventory-console/internal/repository"
)

// DefaultForbiddenMessage is shown on the 403 page when no message is given
const DefaultForbiddenMessage = "You are not authorized to enter this page..."

const themeCookieMaxAge = 365 * 24 * time.Hour

// LogoutAPI is the part of the REST client logging out needs
type LogoutAPI interface {
	Logout(ctx context.Context) (repository.LogoutResult, error)
}

// SessionHandler handles logout, the theme switch and the 403 page
type SessionHandler struct {
	api LogoutAPI
}

// NewSessionHandler creates a new SessionHandler
func NewSessionHandler(api LogoutAPI) *SessionHandler {
	return &SessionHandler{api: api}
}

// Logout ends the backend session and sends the browser wherever the
// backend redirected to, relaying the cookies it cleared
func (h *SessionHandler) Logout(w http.ResponseWriter, r *http.Request) {
	result, err := h.api.Logout(r.Context())
	if err != nil {
		log.Printf("Logout failed: %v", err)
		respondError(w, r, http.StatusBadGateway, "Logout failed", err.Error())
		return
	}

	for _, cookie := range result.Cookies {
		// The backend's domain does not apply to the console host
		cookie.Domain = ""
		http.SetCookie(w, cookie)
	}
	http.Redirect(w, r, result.Location, http.StatusSeeOther)
}

// Forbidden renders the 403 page with the message from the query string
func (h *SessionHandler) Forbidden(w http.ResponseWriter, r *http.Request) {
	message := r.URL.Query().Get("message")
	if message == "" {
		message = DefaultForbiddenMessage
	}
	theme := middleware.GetTheme(r.Context())
	respondHTML(w, r, http.StatusForbidden, web.ForbiddenPage(theme, message))
}

// Theme stores the theme preference and returns to the referring page
func (h *SessionHandler) Theme(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "theme")
	if name != "dark" && name != "light" {
		respondError(w, r, http.StatusBadRequest, "Invalid theme", "Theme must be dark or light")
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     highlight.ThemeCookie,
		Value:    name,
		Path:     "/",
		MaxAge:   int(themeCookieMaxAge.Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
	http.Redirect(w, r, backTarget(r), http.StatusSeeOther)
}

// backTarget is the path of a same-host referrer, or the computer grid
func backTarget(r *http.Request) string {
	ref, err := url.Parse(r.Referer())
	if err != nil || ref.Path == "" || (ref.Host != "" && ref.Host != r.Host) {
		return "/computers"
	}
	return ref.RequestURI()
}
