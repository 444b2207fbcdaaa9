package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Sapuran-Berperan/inventory-console/internal/grid"
	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// Actions a grid request may carry in its action parameter
const (
	actionNext   = "next"
	actionPrev   = "prev"
	actionSearch = "search"
	actionFilter = "filter"
)

// ParseGridRequest restores the grid state carried in the query string
// and decodes the action the user took. Unknown or missing actions load
// the view afresh, which refreshes the count.
func ParseGridRequest(r *http.Request, kind grid.Kind, limit int) (grid.State, grid.Action) {
	q := r.URL.Query()

	offset := parseNonNegative(q.Get("offset"))
	total := parseNonNegative(q.Get("total"))

	filter := grid.FilterState{Search: strings.TrimSpace(q.Get("search"))}
	for _, raw := range q["status"] {
		if status, ok := model.ParseTicketStatus(raw); ok {
			filter.Statuses = append(filter.Statuses, status)
		}
	}
	state := grid.Restore(kind, limit, offset, total, filter)

	switch q.Get("action") {
	case actionNext:
		return state, grid.Action{Type: grid.ActionNext}
	case actionPrev:
		return state, grid.Action{Type: grid.ActionPrev}
	case actionSearch:
		return state, grid.Action{Type: grid.ActionSearch, Search: filter.Search}
	case actionFilter:
		return state, grid.Action{Type: grid.ActionSetStatuses, Statuses: state.Filter.Statuses}
	default:
		return state, grid.Action{Type: grid.ActionLoad}
	}
}

func parseNonNegative(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// stateQuery encodes s so the next request can restore it
func stateQuery(s grid.State, action string) url.Values {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(s.Page.Offset))
	q.Set("total", strconv.Itoa(s.Page.Total))
	if s.Filter.Search != "" {
		q.Set("search", s.Filter.Search)
	}
	for _, status := range s.Filter.Statuses {
		q.Add("status", string(status))
	}
	if action != "" {
		q.Set("action", action)
	}
	return q
}

// pageLinks returns the prev/next hrefs for s, empty when the move is
// not allowed
func pageLinks(path string, s grid.State) (prev, next string) {
	if s.Page.HasPrev() {
		prev = path + "?" + stateQuery(s, actionPrev).Encode()
	}
	if s.Page.HasNext() {
		next = path + "?" + stateQuery(s, actionNext).Encode()
	}
	return prev, next
}
