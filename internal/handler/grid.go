package handler

import (
	"log"
	"net/http"

	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/highlight"
	"github.com/Sapuran-Berperan/inventory-console/internal/middleware"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
	"github.com/Sapuran-Berperan/inventory-console/internal/render/web"
	"github.com/Sapuran-Berperan/inventory-console/internal/table"
)

// GridHandler serves the computer and ticket grids. Each request carries
// the grid state in its query string, is reduced with the action it
// names, and renders the page the resulting fetches produce.
type GridHandler struct {
	computers   grid.Source[model.Computer]
	tickets     grid.Source[model.Ticket]
	highlighter highlight.Highlighter
	limit       int
}

// NewGridHandler creates a new GridHandler
func NewGridHandler(computers grid.ComputerAPI, tickets grid.TicketAPI, highlighter highlight.Highlighter, limit int) *GridHandler {
	if limit <= 0 {
		limit = grid.DefaultLimit
	}
	return &GridHandler{
		computers:   grid.ComputerSource{API: computers},
		tickets:     grid.TicketSource{API: tickets},
		highlighter: highlighter,
		limit:       limit,
	}
}

// reduce applies a to s. A rejected move still renders the page the user
// is on, so it becomes a plain page fetch.
func reduce(s grid.State, a grid.Action) (grid.State, grid.Effect) {
	next, effect := grid.Reduce(s, a)
	if effect == grid.EffectNone {
		effect = grid.EffectPage
	}
	return next, effect
}

// Computers renders the computer grid
func (h *GridHandler) Computers(w http.ResponseWriter, r *http.Request) {
	state, action := ParseGridRequest(r, grid.Computers, h.limit)
	state, effect := reduce(state, action)
	hl := h.highlighter.WithTheme(middleware.GetTheme(r.Context()))

	snap, err := grid.Load(r.Context(), h.computers, state, effect)
	if err != nil {
		if redirectForbidden(w, r, err) {
			return
		}
		log.Printf("Failed to fetch computers: %v", err)
		respondHTML(w, r, http.StatusBadGateway, web.ComputerPage(hl, web.ComputerGrid{
			Search: snap.State.Filter.Search,
			Error:  err.Error(),
		}))
		return
	}

	prev, next := pageLinks("/computers", snap.State)
	respondHTML(w, r, http.StatusOK, web.ComputerPage(hl, web.ComputerGrid{
		Body:   table.ComputerBody(snap),
		Search: snap.State.Filter.Search,
		Links:  web.Links{Prev: prev, Next: next},
	}))
}

// Tickets renders the ticket grid
func (h *GridHandler) Tickets(w http.ResponseWriter, r *http.Request) {
	state, action := ParseGridRequest(r, grid.Tickets, h.limit)
	state, effect := reduce(state, action)
	hl := h.highlighter.WithTheme(middleware.GetTheme(r.Context()))

	snap, err := grid.Load(r.Context(), h.tickets, state, effect)
	if err != nil {
		if redirectForbidden(w, r, err) {
			return
		}
		log.Printf("Failed to fetch tickets: %v", err)
		respondHTML(w, r, http.StatusBadGateway, web.TicketPage(hl, web.TicketGrid{
			Statuses: snap.State.Filter.Statuses,
			Error:    err.Error(),
		}))
		return
	}

	prev, next := pageLinks("/tickets", snap.State)
	respondHTML(w, r, http.StatusOK, web.TicketPage(hl, web.TicketGrid{
		Body:     table.TicketBody(snap),
		Statuses: snap.State.Filter.Statuses,
		Links:    web.Links{Prev: prev, Next: next},
	}))
}
