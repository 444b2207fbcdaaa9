package handler

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	appMiddleware "github.com/Sapuran-Berperan/inventory-console/internal/middleware"
	"github.com/Sapuran-Berperan/inventory-console/internal/repository"
)

// backend is a fake REST backend that records every request it serves
type backend struct {
	mu       sync.Mutex
	requests []*http.Request
	mux      *http.ServeMux
}

func newBackend() *backend {
	return &backend{mux: http.NewServeMux()}
}

func (b *backend) handle(pattern, body string) {
	b.handleFunc(pattern, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	})
}

func (b *backend) handleFunc(pattern string, fn http.HandlerFunc) {
	b.mux.HandleFunc(pattern, fn)
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b.mu.Lock()
	b.requests = append(b.requests, r.Clone(r.Context()))
	b.mu.Unlock()
	b.mux.ServeHTTP(w, r)
}

// paths returns the request paths in the order they were served
func (b *backend) paths() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]string, len(b.requests))
	for i, r := range b.requests {
		out[i] = r.URL.Path
	}
	return out
}

func (b *backend) request(i int) *http.Request {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.requests[i]
}

// newTestRouter wires the console routes against the fake backend
func newTestRouter(t *testing.T, b *backend) *chi.Mux {
	t.Helper()
	server := httptest.NewServer(b)
	t.Cleanup(server.Close)

	client, err := repository.New(server.URL, 0)
	if err != nil {
		t.Fatalf("failed to create client: %v", err)
	}

	hl := highlight.New(highlight.Config{})
	grids := NewGridHandler(client, client, hl, 10)
	details := NewDetailHandler(client, hl)
	session := NewSessionHandler(client)

	r := chi.NewRouter()
	r.Use(appMiddleware.Theme)
	r.Use(appMiddleware.Credentials)
	r.Get("/computers", grids.Computers)
	r.Get("/computers/{label}", details.Computer)
	r.Get("/tickets", grids.Tickets)
	r.Get("/tickets/{id}", details.Ticket)
	r.Post("/logout", session.Logout)
	r.Get("/403", session.Forbidden)
	r.Get("/theme/{theme}", session.Theme)
	return r
}

func serve(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}
