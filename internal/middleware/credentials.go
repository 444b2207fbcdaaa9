package middleware

import (
	"net/http"

	"github.com/Sapuran-Berperan/inventory-console/internal/repository"
	"github.com/go-chi/chi/v5/middleware"
)

// Credentials copies the browser's session cookie and Authorization
// header into the request context so the repository client can forward
// them to the backend. It must run after chi's RequestID middleware for
// the request ID to be carried along.
func Credentials(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		creds := repository.Credentials{
			Cookie:        r.Header.Get("Cookie"),
			Authorization: r.Header.Get("Authorization"),
			RequestID:     middleware.GetReqID(r.Context()),
		}
		ctx := repository.WithCredentials(r.Context(), creds)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
