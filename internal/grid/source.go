package grid

import (
	"context"
	"net/url"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// Source fetches the total and one window of records for a filter
type Source[R any] interface {
	Count(ctx context.Context, filter FilterState) (int, error)
	Page(ctx context.Context, filter FilterState, window model.Window) ([]R, error)
}

// ComputerAPI is the part of the REST client the computer grid needs
type ComputerAPI interface {
	CountComputers(ctx context.Context) (int, error)
	CountSearchedComputers(ctx context.Context, query url.Values) (int, error)
	ListComputers(ctx context.Context, query url.Values) (model.ComputerList, error)
	SearchComputers(ctx context.Context, query url.Values) (model.ComputerList, error)
}

// TicketAPI is the part of the REST client the ticket grid needs
type TicketAPI interface {
	CountTickets(ctx context.Context, query url.Values) (int, error)
	ListTickets(ctx context.Context, query url.Values) (model.TicketList, error)
}

// ComputerSource switches between the browse and search endpoints
type ComputerSource struct {
	API ComputerAPI
}

func (s ComputerSource) Count(ctx context.Context, filter FilterState) (int, error) {
	if filter.IsSearching() {
		return s.API.CountSearchedComputers(ctx, ComputerCountQuery(filter))
	}
	return s.API.CountComputers(ctx)
}

func (s ComputerSource) Page(ctx context.Context, filter FilterState, window model.Window) ([]model.Computer, error) {
	query := ComputerQuery(filter, window)

	var (
		list model.ComputerList
		err  error
	)
	if filter.IsSearching() {
		list, err = s.API.SearchComputers(ctx, query)
	} else {
		list, err = s.API.ListComputers(ctx, query)
	}
	if err != nil {
		return nil, err
	}
	return list.Computers, nil
}

// TicketSource reads tickets with the checkbox filter applied
type TicketSource struct {
	API TicketAPI
}

func (s TicketSource) Count(ctx context.Context, filter FilterState) (int, error) {
	return s.API.CountTickets(ctx, TicketCountQuery(filter))
}

func (s TicketSource) Page(ctx context.Context, filter FilterState, window model.Window) ([]model.Ticket, error) {
	list, err := s.API.ListTickets(ctx, TicketQuery(filter, window))
	if err != nil {
		return nil, err
	}
	return list.Tickets, nil
}
