package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestWatchlistCRUD(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /watchlists", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Watchlist{
			{ID: 1, Name: "tech"},
			{ID: 2, Name: "energy"},
		})
	})
	mux.HandleFunc("POST /watchlists", func(w http.ResponseWriter, r *http.Request) {
		var p watchlistPayload
		if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
			t.Errorf("decoding create payload: %v", err)
		}
		if p.Name != "growth" {
			t.Errorf("create name = %q, want %q", p.Name, "growth")
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Watchlist{ID: 3, Name: p.Name})
	})
	mux.HandleFunc("PUT /watchlists/3", func(w http.ResponseWriter, r *http.Request) {
		var p watchlistPayload
		json.NewDecoder(r.Body).Decode(&p)
		json.NewEncoder(w).Encode(Watchlist{ID: 3, Name: p.Name})
	})
	mux.HandleFunc("DELETE /watchlists/3", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := NewClient(srv.URL, staticToken("tok"))
	ctx := context.Background()

	lists, err := c.ListWatchlists(ctx)
	if err != nil {
		t.Fatalf("ListWatchlists() error: %v", err)
	}
	if len(lists) != 2 || lists[0].Name != "tech" {
		t.Errorf("ListWatchlists() = %+v, want tech and energy", lists)
	}

	created, err := c.CreateWatchlist(ctx, "growth")
	if err != nil {
		t.Fatalf("CreateWatchlist() error: %v", err)
	}
	if created.ID != 3 || created.Name != "growth" {
		t.Errorf("CreateWatchlist() = %+v, want id 3 name growth", created)
	}

	renamed, err := c.RenameWatchlist(ctx, 3, "value")
	if err != nil {
		t.Fatalf("RenameWatchlist() error: %v", err)
	}
	if renamed.Name != "value" {
		t.Errorf("RenameWatchlist() name = %q, want %q", renamed.Name, "value")
	}

	if err := c.DeleteWatchlist(ctx, 3); err != nil {
		t.Fatalf("DeleteWatchlist() error: %v", err)
	}
}

func TestEntryOperations(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /watchlists/7/tickers", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]Entry{{Symbol: "AAPL"}, {Symbol: "MSFT"}})
	})
	mux.HandleFunc("POST /watchlists/7/tickers", func(w http.ResponseWriter, r *http.Request) {
		var p entryPayload
		json.NewDecoder(r.Body).Decode(&p)
		if p.Symbol != "NVDA" {
			t.Errorf("add symbol = %q, want %q", p.Symbol, "NVDA")
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(Entry{Symbol: p.Symbol})
	})
	mux.HandleFunc("DELETE /watchlists/7/tickers/AAPL", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	srv := httptest.NewServer(mux)
	defer srv.Close()
	c := NewClient(srv.URL, staticToken("tok"))
	ctx := context.Background()

	entries, err := c.ListEntries(ctx, 7)
	if err != nil {
		t.Fatalf("ListEntries() error: %v", err)
	}
	if len(entries) != 2 || entries[0].Symbol != "AAPL" {
		t.Errorf("ListEntries() = %+v, want AAPL and MSFT", entries)
	}

	added, err := c.AddEntry(ctx, 7, "NVDA")
	if err != nil {
		t.Fatalf("AddEntry() error: %v", err)
	}
	if added.Symbol != "NVDA" {
		t.Errorf("AddEntry() symbol = %q, want %q", added.Symbol, "NVDA")
	}

	if err := c.RemoveEntry(ctx, 7, "AAPL"); err != nil {
		t.Fatalf("RemoveEntry() error: %v", err)
	}
}
