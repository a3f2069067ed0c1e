package api

import (
	"context"
	"net/url"
)

// SearchTickers returns symbol suggestions for a partial symbol or name.
func (c *Client) SearchTickers(ctx context.Context, partial string) ([]Suggestion, error) {
	query := url.Values{"search": {partial}}
	var matches []Suggestion
	if err := c.get(ctx, "/tickers", query, &matches); err != nil {
		return nil, err
	}
	return matches, nil
}

// TickerProfile fetches the company and market snapshot for a symbol.
func (c *Client) TickerProfile(ctx context.Context, symbol string) (Profile, error) {
	var p Profile
	err := c.get(ctx, "/tickers/"+url.PathEscape(symbol)+"/basic", nil, &p)
	return p, err
}

// TickerChart fetches the daily bar series for a symbol.
func (c *Client) TickerChart(ctx context.Context, symbol string) (Chart, error) {
	var ch Chart
	err := c.get(ctx, "/tickers/"+url.PathEscape(symbol)+"/chart", nil, &ch)
	return ch, err
}

// TickerIndicators fetches the technical indicator set for a symbol.
func (c *Client) TickerIndicators(ctx context.Context, symbol string) (Indicators, error) {
	var ind Indicators
	err := c.get(ctx, "/tickers/"+url.PathEscape(symbol)+"/indicators", nil, &ind)
	return ind, err
}

// TickerNews fetches recent news articles for a symbol.
func (c *Client) TickerNews(ctx context.Context, symbol string) ([]NewsItem, error) {
	var items []NewsItem
	if err := c.get(ctx, "/tickers/"+url.PathEscape(symbol)+"/news", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
