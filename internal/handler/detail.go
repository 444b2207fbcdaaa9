package handler

import (
	"context"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/middleware"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
	"github.com/Sapuran-Berperan/inventory-console/internal/render/web"
	"github.com/Sapuran-Berperan/inventory-console/internal/table"
)

// DetailAPI is the part of the REST client the detail pages need
type DetailAPI interface {
	GetComputerByLabel(ctx context.Context, label string) (model.ComputerDetail, error)
	GetTicket(ctx context.Context, id string) (model.Ticket, error)
}

// DetailHandler serves single-record pages
type DetailHandler struct {
	api         DetailAPI
	highlighter highlight.Highlighter
}

// NewDetailHandler creates a new DetailHandler
func NewDetailHandler(api DetailAPI, highlighter highlight.Highlighter) *DetailHandler {
	return &DetailHandler{
		api:         api,
		highlighter: highlighter,
	}
}

// Computer renders a computer and its latest history by UUID label
func (h *DetailHandler) Computer(w http.ResponseWriter, r *http.Request) {
	label := chi.URLParam(r, "label")
	if label == "" {
		respondError(w, r, http.StatusBadRequest, "Invalid computer", "A UUID label is required")
		return
	}

	detail, err := h.api.GetComputerByLabel(r.Context(), label)
	if err != nil {
		if redirectForbidden(w, r, err) {
			return
		}
		log.Printf("Failed to fetch computer %s: %v", label, err)
		respondError(w, r, upstreamStatus(err), "Failed to load computer", err.Error())
		return
	}

	hl := h.highlighter.WithTheme(middleware.GetTheme(r.Context()))
	respondHTML(w, r, http.StatusOK, web.DetailPage(hl, table.ComputerDetail(detail)))
}

// Ticket renders a single ticket by id
func (h *DetailHandler) Ticket(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		respondError(w, r, http.StatusBadRequest, "Invalid ticket", "A ticket id is required")
		return
	}

	ticket, err := h.api.GetTicket(r.Context(), id)
	if err != nil {
		if redirectForbidden(w, r, err) {
			return
		}
		log.Printf("Failed to fetch ticket %s: %v", id, err)
		respondError(w, r, upstreamStatus(err), "Failed to load ticket", err.Error())
		return
	}

	respondHTML(w, r, http.StatusOK, web.TicketDetailPage(middleware.GetTheme(r.Context()), table.TicketView(ticket)))
}
