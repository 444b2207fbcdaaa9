package grid

import (
	"strings"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// ActionType enumerates the transitions a grid accepts
type ActionType int

const (
	// ActionLoad is the initial fetch when the view opens
	ActionLoad ActionType = iota
	ActionNext
	ActionPrev
	// ActionSearch submits the free-text search box
	ActionSearch
	// ActionToggleStatus flips one status checkbox
	ActionToggleStatus
	// ActionSetStatuses replaces the whole checkbox set, as a submitted
	// form does
	ActionSetStatuses
)

// Action is a user event fed to Reduce
type Action struct {
	Type     ActionType
	Search   string
	Status   model.TicketStatus
	Statuses []model.TicketStatus
}

// Effect tells the caller which fetches a transition requires
type Effect int

const (
	// EffectNone means the transition was a guarded no-op
	EffectNone Effect = iota
	// EffectPage means only the page must be fetched again
	EffectPage
	// EffectCountAndPage means the count must be refreshed first
	EffectCountAndPage
)

// Reduce applies a to s and returns the next state together with the
// fetches it calls for. Navigation keeps the filter and total; every
// filter change resets the offset to 0 and asks for a fresh count.
func Reduce(s State, a Action) (State, Effect) {
	switch a.Type {
	case ActionLoad:
		return s, EffectCountAndPage

	case ActionNext:
		if !s.Page.HasNext() {
			return s, EffectNone
		}
		s.Page.Offset += s.Page.Limit
		return s, EffectPage

	case ActionPrev:
		if !s.Page.HasPrev() {
			return s, EffectNone
		}
		s.Page.Offset -= s.Page.Limit
		if s.Page.Offset < 0 {
			s.Page.Offset = 0
		}
		return s, EffectPage

	case ActionSearch:
		s.Filter = FilterState{Search: strings.TrimSpace(a.Search), Statuses: s.Filter.Statuses}
		s.Page.Offset = 0
		return s, EffectCountAndPage

	case ActionToggleStatus:
		s.Filter = s.Filter.WithStatus(a.Status, !s.Filter.HasStatus(a.Status))
		s.Page.Offset = 0
		return s, EffectCountAndPage

	case ActionSetStatuses:
		set := make(map[model.TicketStatus]bool, len(a.Statuses))
		for _, status := range a.Statuses {
			set[status] = true
		}
		s.Filter = FilterState{Search: s.Filter.Search, Statuses: canonicalStatuses(set)}
		s.Page.Offset = 0
		return s, EffectCountAndPage
	}

	return s, EffectNone
}
