package api

import (
	"context"
	"fmt"
	"net/url"
)

type watchlistPayload struct {
	Name string `json:"name"`
}

type entryPayload struct {
	Symbol string `json:"symbol"`
}

// ListWatchlists returns all watchlists owned by the current session's user.
func (c *Client) ListWatchlists(ctx context.Context) ([]Watchlist, error) {
	var lists []Watchlist
	if err := c.get(ctx, "/watchlists", nil, &lists); err != nil {
		return nil, err
	}
	return lists, nil
}

// CreateWatchlist creates a watchlist and returns the server-assigned record.
func (c *Client) CreateWatchlist(ctx context.Context, name string) (Watchlist, error) {
	var wl Watchlist
	err := c.post(ctx, "/watchlists", watchlistPayload{Name: name}, &wl)
	return wl, err
}

// RenameWatchlist changes a watchlist's display name.
func (c *Client) RenameWatchlist(ctx context.Context, id int64, name string) (Watchlist, error) {
	var wl Watchlist
	err := c.put(ctx, fmt.Sprintf("/watchlists/%d", id), watchlistPayload{Name: name}, &wl)
	return wl, err
}

// DeleteWatchlist removes a watchlist and all of its entries.
func (c *Client) DeleteWatchlist(ctx context.Context, id int64) error {
	return c.del(ctx, fmt.Sprintf("/watchlists/%d", id))
}

// ListEntries returns the ticker entries of one watchlist. The server should
// not return duplicate symbols, but callers dedupe on receipt anyway.
func (c *Client) ListEntries(ctx context.Context, watchlistID int64) ([]Entry, error) {
	var entries []Entry
	if err := c.get(ctx, fmt.Sprintf("/watchlists/%d/tickers", watchlistID), nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AddEntry links a symbol into a watchlist and returns the created entry.
func (c *Client) AddEntry(ctx context.Context, watchlistID int64, symbol string) (Entry, error) {
	var e Entry
	err := c.post(ctx, fmt.Sprintf("/watchlists/%d/tickers", watchlistID), entryPayload{Symbol: symbol}, &e)
	return e, err
}

// RemoveEntry unlinks a symbol from a watchlist.
func (c *Client) RemoveEntry(ctx context.Context, watchlistID int64, symbol string) error {
	return c.del(ctx, fmt.Sprintf("/watchlists/%d/tickers/%s", watchlistID, url.PathEscape(symbol)))
}
