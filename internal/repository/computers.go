package repository

import (
	"context"
	"net/url"

	"github.com/Sapuran-Berperan/inventory-console/internal/model"
)

// CountComputers returns the size of the whole inventory
func (c *Client) CountComputers(ctx context.Context) (int, error) {
	var env model.Envelope[model.CountResult]
	if err := c.get(ctx, "/api/v1/computers/count", nil, &env); err != nil {
		return 0, err
	}
	return env.Result.Count, nil
}

// CountSearchedComputers returns how many computers match query's search
func (c *Client) CountSearchedComputers(ctx context.Context, query url.Values) (int, error) {
	var env model.Envelope[model.CountResult]
	if err := c.get(ctx, "/api/v1/computers/generic/count", query, &env); err != nil {
		return 0, err
	}
	return env.Result.Count, nil
}

// ListComputers returns one offset/limit window of the inventory
func (c *Client) ListComputers(ctx context.Context, query url.Values) (model.ComputerList, error) {
	var env model.Envelope[model.ComputerList]
	if err := c.get(ctx, "/api/v1/computers/", query, &env); err != nil {
		return model.ComputerList{}, err
	}
	return env.Result, nil
}

// SearchComputers returns one window of the computers matching query's
// search text
func (c *Client) SearchComputers(ctx context.Context, query url.Values) (model.ComputerList, error) {
	var env model.Envelope[model.ComputerList]
	if err := c.get(ctx, "/api/v1/computers/generic", query, &env); err != nil {
		return model.ComputerList{}, err
	}
	return env.Result, nil
}

// GetComputerByLabel returns a computer and the three latest history
// entries
func (c *Client) GetComputerByLabel(ctx context.Context, label string) (model.ComputerDetail, error) {
	query := url.Values{}
	query.Set("offset", "0")
	query.Set("limit", "3")

	var env model.Envelope[model.ComputerDetail]
	if err := c.get(ctx, "/api/v1/computers/label/"+url.PathEscape(label), query, &env); err != nil {
		return model.ComputerDetail{}, err
	}
	return env.Result, nil
}
