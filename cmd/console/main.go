package main

import (
	"log"
	"net/http"

	"github.com/Sapuran-Berperan/inventory-console/internal/config"
	"github.com/Sapuran-Berperan/inventory-console/internal/handler"
	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	appMiddleware "github.com/Sapuran-Berperan/inventory-console/internal/middleware"
	"github.com/Sapuran-Berperan/inventory-console/internal/render/web"
	"github.com/Sapuran-Berperan/inventory-console/internal/repository"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	// Initialize backend client
	client, err := repository.New(cfg.APIBaseURL, cfg.APITimeout)
	if err != nil {
		log.Fatalf("Failed to configure backend client: %v", err)
	}
	log.Printf("Using inventory backend at %s", client.BaseURL())

	// Initialize handlers
	highlighter := highlight.New(highlight.Config{
		DarkColor:  cfg.HighlightDarkColor,
		LightColor: cfg.HighlightLightColor,
	})
	gridHandler := handler.NewGridHandler(client, client, highlighter, cfg.PageLimit)
	detailHandler := handler.NewDetailHandler(client, highlighter)
	sessionHandler := handler.NewSessionHandler(client)

	// Initialize router
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(appMiddleware.Theme)
	r.Use(appMiddleware.Credentials)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	r.Handle("/static/*", web.Static())

	// Console routes
	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/computers", http.StatusFound)
	})
	r.Route("/computers", func(r chi.Router) {
		r.Get("/", gridHandler.Computers)
		r.Get("/{label}", detailHandler.Computer)
	})
	r.Route("/tickets", func(r chi.Router) {
		r.Get("/", gridHandler.Tickets)
		r.Get("/{id}", detailHandler.Ticket)
	})
	r.Post("/logout", sessionHandler.Logout)
	r.Get("/403", sessionHandler.Forbidden)
	r.Get("/theme/{theme}", sessionHandler.Theme)

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Console starting on port %s (env: %s)", port, cfg.Environment)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
