// Package ui implements the finwatch terminal screens on the Bubble Tea
// event loop. Every screen owns its data fetching; network calls run as
// asynchronous commands delivering typed messages back into the update loop,
// so no view ever blocks and responses may arrive in any order.
package ui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"finwatch/internal/api"
	"finwatch/internal/session"
)

// screen identifies the active view.
type screen int

const (
	screenLogin screen = iota
	screenWatchlists
	screenWatchlist
	screenTicker
)

// Navigation messages emitted by child screens.
type (
	// loggedInMsg is emitted by the login screen with a fresh token.
	loggedInMsg struct{ token string }
	// logoutMsg asks the root to clear the session and show the login screen.
	logoutMsg struct{}
	// openWatchlistMsg opens the detail screen for one watchlist.
	openWatchlistMsg struct {
		id   int64
		name string
	}
	// openTickerMsg opens the ticker detail screen for one symbol.
	openTickerMsg struct{ symbol string }
	// backMsg returns to the previous screen.
	backMsg struct{}
)

// Root is the top-level model: a router over the four screens that also acts
// as the session guard. Any navigation to a protected screen with no token
// lands on the login screen instead; the guard is a pure check against the
// session, no network involved.
type Root struct {
	sess   *session.Session
	client *api.Client
	logger *slog.Logger

	width  int
	height int

	active     screen
	login      loginModel
	watchlists watchlistsModel
	watchlist  watchlistModel
	ticker     tickerModel
}

// NewRoot creates the root model. The initial screen is the watchlist
// collection when a token is present, the login screen otherwise.
func NewRoot(sess *session.Session, client *api.Client, logger *slog.Logger) Root {
	r := Root{
		sess:   sess,
		client: client,
		logger: logger,
	}
	if sess.Authenticated() {
		r.active = screenWatchlists
		r.watchlists = newWatchlistsModel(client, logger)
	} else {
		r.active = screenLogin
		r.login = newLoginModel(client, logger)
	}
	return r
}

func (r Root) Init() tea.Cmd {
	switch r.active {
	case screenWatchlists:
		return r.watchlists.Init()
	default:
		return r.login.Init()
	}
}

// guard returns the screen to actually show for a requested protected
// screen: the request itself when a token is present, the login screen
// otherwise.
func (r *Root) guard(target screen) screen {
	if target != screenLogin && !r.sess.Authenticated() {
		return screenLogin
	}
	return target
}

func (r Root) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return r, tea.Quit
		}

	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height
		// Every screen keeps its own copy of the dimensions.
		r.login.setSize(msg.Width, msg.Height)
		r.watchlists.setSize(msg.Width, msg.Height)
		r.watchlist.setSize(msg.Width, msg.Height)
		r.ticker.setSize(msg.Width, msg.Height)

	case loggedInMsg:
		if err := r.sess.SetToken(msg.token); err != nil {
			r.logger.Warn("persisting token", "error", err)
		}
		r.active = screenWatchlists
		r.watchlists = newWatchlistsModel(r.client, r.logger)
		r.watchlists.setSize(r.width, r.height)
		return r, r.watchlists.Init()

	case logoutMsg:
		if err := r.sess.Clear(); err != nil {
			r.logger.Warn("clearing token", "error", err)
		}
		r.active = screenLogin
		r.login = newLoginModel(r.client, r.logger)
		r.login.setSize(r.width, r.height)
		return r, r.login.Init()

	case openWatchlistMsg:
		if r.guard(screenWatchlist) == screenLogin {
			r.active = screenLogin
			r.login = newLoginModel(r.client, r.logger)
			r.login.setSize(r.width, r.height)
			return r, r.login.Init()
		}
		r.active = screenWatchlist
		r.watchlist = newWatchlistModel(r.client, r.logger, msg.id, msg.name)
		r.watchlist.setSize(r.width, r.height)
		return r, r.watchlist.Init()

	case openTickerMsg:
		if r.guard(screenTicker) == screenLogin {
			r.active = screenLogin
			r.login = newLoginModel(r.client, r.logger)
			r.login.setSize(r.width, r.height)
			return r, r.login.Init()
		}
		r.active = screenTicker
		r.ticker = newTickerModel(r.client, r.logger, msg.symbol)
		r.ticker.setSize(r.width, r.height)
		return r, r.ticker.Init()

	case backMsg:
		switch r.active {
		case screenTicker:
			r.active = r.guard(screenWatchlist)
		case screenWatchlist:
			r.active = r.guard(screenWatchlists)
		}
		if r.active == screenLogin {
			r.login = newLoginModel(r.client, r.logger)
			r.login.setSize(r.width, r.height)
			return r, r.login.Init()
		}
		return r, nil
	}

	var cmd tea.Cmd
	switch r.active {
	case screenLogin:
		r.login, cmd = r.login.Update(msg)
	case screenWatchlists:
		r.watchlists, cmd = r.watchlists.Update(msg)
	case screenWatchlist:
		r.watchlist, cmd = r.watchlist.Update(msg)
	case screenTicker:
		r.ticker, cmd = r.ticker.Update(msg)
	}
	return r, cmd
}

func (r Root) View() string {
	switch r.active {
	case screenLogin:
		return r.login.View()
	case screenWatchlists:
		return r.watchlists.View()
	case screenWatchlist:
		return r.watchlist.View()
	case screenTicker:
		return r.ticker.View()
	}
	return ""
}
