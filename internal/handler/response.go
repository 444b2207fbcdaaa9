package handler

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"net/url"

	"github.com/a-h/templ"

	"github.com/Sapuran-Berperan/inventory-console/internal/middleware"
	"github.com/Sapuran-Berperan/inventory-console/internal/render/web"
	"github.com/Sapuran-Berperan/inventory-console/internal/repository"
)

// respondHTML renders c and writes it with the given status code. The
// page is rendered into a buffer first so a render failure can still
// become a 500.
func respondHTML(w http.ResponseWriter, r *http.Request, status int, c templ.Component) {
	var buf bytes.Buffer
	if err := c.Render(r.Context(), &buf); err != nil {
		log.Printf("Failed to render %s: %v", r.URL.Path, err)
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// respondError sends a full error page
func respondError(w http.ResponseWriter, r *http.Request, status int, title, message string) {
	theme := middleware.GetTheme(r.Context())
	respondHTML(w, r, status, web.ErrorPage(theme, title, message))
}

// redirectForbidden sends the browser to the 403 page when err is a
// structured 403 from the backend, and reports whether it did
func redirectForbidden(w http.ResponseWriter, r *http.Request, err error) bool {
	forbidden, ok := repository.AsForbidden(err)
	if !ok {
		return false
	}
	target := "/403?" + url.Values{"message": {forbidden.Name}}.Encode()
	http.Redirect(w, r, target, http.StatusSeeOther)
	return true
}

// upstreamStatus maps a backend failure to the status the console
// answers with
func upstreamStatus(err error) int {
	var httpErr *repository.HTTPError
	if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}
