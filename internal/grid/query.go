package grid

import (
	"net/url"
	"strconv"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// ComputerQuery builds the page query for the computer grid. Search mode
// adds the raw trimmed search text; browse mode sends only the window.
func ComputerQuery(f FilterState, w model.Window) url.Values {
	q := windowQuery(w)
	if f.IsSearching() {
		q.Set("search", f.Search)
	}
	return q
}

// ComputerCountQuery builds the count query for the computer grid
func ComputerCountQuery(f FilterState) url.Values {
	q := url.Values{}
	if f.IsSearching() {
		q.Set("search", f.Search)
	}
	return q
}

// TicketQuery builds the page query for the ticket grid with one status
// parameter per checked box. No status parameter means no filter.
func TicketQuery(f FilterState, w model.Window) url.Values {
	q := windowQuery(w)
	for _, status := range f.Statuses {
		q.Add("status", string(status))
	}
	return q
}

// TicketCountQuery asks the ticket list for every match: the backend
// treats limit=0 as unbounded and reports the number of rows returned.
func TicketCountQuery(f FilterState) url.Values {
	return TicketQuery(f, model.Window{Offset: 0, Limit: 0})
}

func windowQuery(w model.Window) url.Values {
	q := url.Values{}
	q.Set("offset", strconv.Itoa(w.Offset))
	q.Set("limit", strconv.Itoa(w.Limit))
	return q
}
