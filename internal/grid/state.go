// Package grid holds the paging and filtering state machine shared by the
// computer and ticket grids, and the orchestration that turns state
// transitions into count and page fetches.
package grid

import (
	"slices"
	"strings"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// DefaultLimit is the page size used by both grids
const DefaultLimit = 10

// Kind identifies which grid a State belongs to
type Kind int

const (
	Computers Kind = iota
	Tickets
)

func (k Kind) String() string {
	switch k {
	case Computers:
		return "computers"
	case Tickets:
		return "tickets"
	default:
		return "unknown"
	}
}

// FilterState is the set of active constraints applied before paging.
// Statuses are kept de-duplicated in model.TicketStatuses order; an empty
// set means no status filter.
type FilterState struct {
	Search   string
	Statuses []model.TicketStatus
}

// IsSearching reports whether the computer grid is in search mode
func (f FilterState) IsSearching() bool {
	return f.Search != ""
}

// HasStatus reports whether the status box is checked
func (f FilterState) HasStatus(status model.TicketStatus) bool {
	return slices.Contains(f.Statuses, status)
}

// WithStatus returns a copy of f with status checked or unchecked
func (f FilterState) WithStatus(status model.TicketStatus, checked bool) FilterState {
	set := make(map[model.TicketStatus]bool, len(f.Statuses)+1)
	for _, s := range f.Statuses {
		set[s] = true
	}
	set[status] = checked
	return FilterState{Search: f.Search, Statuses: canonicalStatuses(set)}
}

func canonicalStatuses(set map[model.TicketStatus]bool) []model.TicketStatus {
	var out []model.TicketStatus
	for _, s := range model.TicketStatuses {
		if set[s] {
			out = append(out, s)
		}
	}
	return out
}

// PageState is the offset/limit window plus the last fetched total.
// Offset is always a non-negative multiple of Limit. Total is refreshed
// only when the filter changes, so it may lag the backend.
type PageState struct {
	Offset int
	Limit  int
	Total  int
}

// Window returns the offset/limit pair to request
func (p PageState) Window() model.Window {
	return model.Window{Offset: p.Offset, Limit: p.Limit}
}

// CurrentPage is the 1-based page the offset falls on
func (p PageState) CurrentPage() int {
	return p.Offset/p.Limit + 1
}

// TotalPages is the number of pages Total spans
func (p PageState) TotalPages() int {
	if p.Total <= 0 {
		return 0
	}
	pages := p.Total / p.Limit
	if p.Total%p.Limit > 0 {
		pages++
	}
	return pages
}

// HasPrev reports whether a previous page exists
func (p PageState) HasPrev() bool {
	return p.Offset > 0
}

// HasNext reports whether the total count leaves room for another page
func (p PageState) HasNext() bool {
	return p.Offset < p.Total-p.Limit
}

// State is the complete, immutable state of one grid view
type State struct {
	Kind   Kind
	Filter FilterState
	Page   PageState
}

// New returns the state a grid starts with when the view loads
func New(kind Kind, limit int) State {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return State{Kind: kind, Page: PageState{Limit: limit}}
}

// Restore rebuilds a state carried across requests. The offset is
// clamped down to a non-negative multiple of the limit that falls on a
// page of total, the first page when total is 0.
func Restore(kind Kind, limit, offset, total int, filter FilterState) State {
	s := New(kind, limit)
	if offset < 0 {
		offset = 0
	}
	if total < 0 {
		total = 0
	}
	if last := lastPageOffset(total, s.Page.Limit); offset > last {
		offset = last
	}
	s.Page.Offset = offset - offset%s.Page.Limit
	s.Page.Total = total

	set := make(map[model.TicketStatus]bool, len(filter.Statuses))
	for _, status := range filter.Statuses {
		set[status] = true
	}
	s.Filter = FilterState{Search: strings.TrimSpace(filter.Search), Statuses: canonicalStatuses(set)}
	return s
}

func lastPageOffset(total, limit int) int {
	if total <= 0 {
		return 0
	}
	return (total - 1) / limit * limit
}
