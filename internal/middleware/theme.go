package middleware

import (
	"context"
	"net/http"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
)

type contextKey string

const ThemeKey contextKey = "theme"

// Theme reads the theme preference cookie once per request and stores
// the parsed theme in the context
func Theme(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		theme := highlight.Light
		if cookie, err := r.Cookie(highlight.ThemeCookie); err == nil {
			theme = highlight.ParseTheme(cookie.Value)
		}

		ctx := context.WithValue(r.Context(), ThemeKey, theme)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetTheme retrieves the theme from the request context, defaulting to
// light when the middleware did not run
func GetTheme(ctx context.Context) highlight.Theme {
	theme, ok := ctx.Value(ThemeKey).(highlight.Theme)
	if !ok {
		return highlight.Light
	}
	return theme
}
