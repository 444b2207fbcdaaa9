package repository

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// ListTickets returns the tickets selected by query's window and status
// parameters
func (c *Client) ListTickets(ctx context.Context, query url.Values) (model.TicketList, error) {
	var env model.Envelope[model.TicketList]
	if err := c.get(ctx, "/api/v1/tickets/", query, &env); err != nil {
		return model.TicketList{}, err
	}
	return env.Result, nil
}

// GetTicket returns a single ticket by id
func (c *Client) GetTicket(ctx context.Context, id string) (model.Ticket, error) {
	var env model.Envelope[model.TicketDetail]
	if err := c.get(ctx, "/api/v1/tickets/"+url.PathEscape(id), nil, &env); err != nil {
		return model.Ticket{}, err
	}
	return env.Result.Ticket, nil
}

// CountTickets returns how many tickets match query's status parameters.
// The list endpoint has no separate count, so query must ask for an
// unbounded window (limit=0) for the reported count to be the total.
func (c *Client) CountTickets(ctx context.Context, query url.Values) (int, error) {
	list, err := c.ListTickets(ctx, query)
	if errors.Is(err, ErrResponseTooLarge) {
		return 0, fmt.Errorf("ticket count downloads every matching ticket: %w", err)
	}
	if err != nil {
		return 0, err
	}
	return list.Count, nil
}

// LogoutResult is where the backend sent the browser after logging out,
// with the cookies it set on the way
type LogoutResult struct {
	Location string
	Cookies  []*http.Cookie
}

// Logout ends the backend session. The redirect is not followed; the
// caller hands it to the browser.
func (c *Client) Logout(ctx context.Context) (LogoutResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/logout", nil)
	if err != nil {
		return LogoutResult{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return LogoutResult{}, fmt.Errorf("request /logout: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 300 || resp.StatusCode >= 400 {
		return LogoutResult{}, &HTTPError{StatusCode: resp.StatusCode}
	}

	location, err := resp.Location()
	if err != nil {
		return LogoutResult{}, fmt.Errorf("logout redirect: %w", err)
	}
	return LogoutResult{Location: c.relative(location), Cookies: resp.Cookies()}, nil
}

// relative strips the backend origin so the browser stays on the console
func (c *Client) relative(u *url.URL) string {
	base, err := url.Parse(c.baseURL)
	if err != nil || u.Host != base.Host {
		return u.String()
	}
	return u.RequestURI()
}
