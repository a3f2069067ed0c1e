// Package api provides the REST client for the finwatch backend.
//
// Resources:
//   - /auth: login and registration
//   - /watchlists: watchlist CRUD and per-watchlist ticker membership
//   - /tickers: symbol search, profile, chart, indicators, news
//
// Every request after login carries the session token as a bearer header.
// Requests are single-shot: failures are reported to the caller, never
// retried.
package api
