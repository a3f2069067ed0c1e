package ui

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"finwatch/internal/api"
	"finwatch/internal/session"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// staticTokens is a fixed-token api.TokenSource for screen tests that don't
// need a real session.
type staticTokens string

func (t staticTokens) Token() string { return string(t) }

func testSession(t *testing.T, token string) *session.Session {
	t.Helper()
	sess := session.New(filepath.Join(t.TempDir(), "token"))
	if token != "" {
		if err := sess.SetToken(token); err != nil {
			t.Fatal(err)
		}
	}
	return sess
}

func TestGuardRedirectsWithoutToken(t *testing.T) {
	sess := testSession(t, "")
	client := api.NewClient("http://localhost:0", sess)

	r := NewRoot(sess, client, testLogger())
	if r.active != screenLogin {
		t.Errorf("initial screen = %v, want login for missing token", r.active)
	}

	// Direct navigation to protected screens also lands on login.
	updated, _ := r.Update(openWatchlistMsg{id: 1, name: "tech"})
	r = updated.(Root)
	if r.active != screenLogin {
		t.Errorf("screen after openWatchlistMsg = %v, want login", r.active)
	}

	updated, _ = r.Update(openTickerMsg{symbol: "AAPL"})
	r = updated.(Root)
	if r.active != screenLogin {
		t.Errorf("screen after openTickerMsg = %v, want login", r.active)
	}
}

func TestGuardAllowsWithToken(t *testing.T) {
	sess := testSession(t, "jwt-abc")
	client := api.NewClient("http://localhost:0", sess)

	r := NewRoot(sess, client, testLogger())
	if r.active != screenWatchlists {
		t.Errorf("initial screen = %v, want watchlists for present token", r.active)
	}

	updated, _ := r.Update(openWatchlistMsg{id: 1, name: "tech"})
	r = updated.(Root)
	if r.active != screenWatchlist {
		t.Errorf("screen after openWatchlistMsg = %v, want watchlist detail", r.active)
	}

	updated, _ = r.Update(openTickerMsg{symbol: "AAPL"})
	r = updated.(Root)
	if r.active != screenTicker {
		t.Errorf("screen after openTickerMsg = %v, want ticker detail", r.active)
	}

	updated, _ = r.Update(backMsg{})
	r = updated.(Root)
	if r.active != screenWatchlist {
		t.Errorf("screen after backMsg = %v, want watchlist detail", r.active)
	}
}

func TestLoginStoresTokenAndRoutes(t *testing.T) {
	sess := testSession(t, "")
	client := api.NewClient("http://localhost:0", sess)

	r := NewRoot(sess, client, testLogger())
	updated, _ := r.Update(loggedInMsg{token: "jwt-new"})
	r = updated.(Root)

	if r.active != screenWatchlists {
		t.Errorf("screen after login = %v, want watchlists", r.active)
	}
	if sess.Token() != "jwt-new" {
		t.Errorf("session token = %q, want %q", sess.Token(), "jwt-new")
	}
}

func TestLogoutClearsTokenAndRoutes(t *testing.T) {
	sess := testSession(t, "jwt-abc")
	client := api.NewClient("http://localhost:0", sess)

	r := NewRoot(sess, client, testLogger())
	updated, _ := r.Update(logoutMsg{})
	r = updated.(Root)

	if r.active != screenLogin {
		t.Errorf("screen after logout = %v, want login", r.active)
	}
	if sess.Authenticated() {
		t.Error("session still authenticated after logout")
	}
}
