package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"finwatch/internal/api"
	"finwatch/internal/watchlist"
)

// suggestDebounce is the quiet period after the last keystroke before a
// symbol search goes out.
const suggestDebounce = 300 * time.Millisecond

// Messages.
type membersLoadedMsg struct {
	entries []api.Entry
	err     error
}

// suggestDebounceMsg fires when a debounce timer elapses. seq identifies the
// keystroke that armed the timer; a timer armed before a newer keystroke
// carries a stale seq and is ignored.
type suggestDebounceMsg struct{ seq int }

// suggestionsMsg carries a search response stamped with the seq of the
// request that produced it, so out-of-order responses can be discarded.
type suggestionsMsg struct {
	seq     int
	matches []api.Suggestion
	err     error
}

type entryAddedMsg struct {
	entry api.Entry
	err   error
}

type entryRemovedMsg struct {
	symbol string
	err    error
}

// watchlistModel is the detail screen for one watchlist: its member symbols
// plus an add field with debounced live suggestions.
type watchlistModel struct {
	client *api.Client
	logger *slog.Logger

	id   int64
	name string

	entries *watchlist.EntrySet
	cursor  int
	loading bool

	input       textinput.Model
	suggestions []api.Suggestion
	sugCursor   int

	// searchSeq is bumped on every keystroke; appliedSeq records the newest
	// search response applied to state. Responses stamped at or below
	// appliedSeq are stale and dropped.
	searchSeq  int
	appliedSeq int

	notice notice

	width  int
	height int
}

func newWatchlistModel(client *api.Client, logger *slog.Logger, id int64, name string) watchlistModel {
	input := textinput.New()
	input.Placeholder = "ticker symbol"
	input.CharLimit = 12
	input.Width = 24
	input.Focus()

	return watchlistModel{
		client:  client,
		logger:  logger,
		id:      id,
		name:    name,
		entries: watchlist.NewEntrySet(),
		loading: true,
		input:   input,
	}
}

func (m *watchlistModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m watchlistModel) Init() tea.Cmd {
	client := m.client
	id := m.id
	return tea.Batch(textinput.Blink, func() tea.Msg {
		entries, err := client.ListEntries(context.Background(), id)
		return membersLoadedMsg{entries: entries, err: err}
	})
}

// memberRows is the number of lines the member list occupies in the view.
func (m watchlistModel) memberRows() int {
	if m.loading || m.entries.Len() == 0 {
		return 1
	}
	return m.entries.Len()
}

// inputLine is the 0-based screen line of the add field. The layout is:
// title, blank, members, blank, input, suggestions.
func (m watchlistModel) inputLine() int {
	return 3 + m.memberRows()
}

// suggestRegion is the inclusive line range of the add field plus its
// suggestion box. A mouse press outside this region dismisses suggestions.
func (m watchlistModel) suggestRegion() (top, bottom int) {
	top = m.inputLine()
	bottom = top
	if len(m.suggestions) > 0 {
		// Box border takes a line above and below the items.
		bottom += 2 + len(m.suggestions)
	}
	return top, bottom
}

func (m watchlistModel) clearInput() watchlistModel {
	m.input.SetValue("")
	m.suggestions = nil
	m.sugCursor = 0
	m.searchSeq++ // invalidate pending debounce timers
	return m
}

// addSymbol starts an add for the given symbol. Duplicates are rejected
// locally before any request goes out.
func (m watchlistModel) addSymbol(symbol string) (watchlistModel, tea.Cmd) {
	sym := strings.ToUpper(strings.TrimSpace(symbol))
	if sym == "" {
		return m, nil
	}

	if m.entries.Contains(sym) {
		m.notice.show(fmt.Sprintf("%q is already in this watchlist.", sym))
		return m.clearInput(), nil
	}

	client := m.client
	id := m.id
	return m, func() tea.Msg {
		entry, err := client.AddEntry(context.Background(), id, sym)
		return entryAddedMsg{entry: entry, err: err}
	}
}

func (m watchlistModel) Update(msg tea.Msg) (watchlistModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		if m.notice.handleKey(key) {
			return m, nil
		}

		switch key {
		case "up":
			if len(m.suggestions) > 0 {
				if m.sugCursor > 0 {
					m.sugCursor--
				}
			} else if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if len(m.suggestions) > 0 {
				if m.sugCursor < len(m.suggestions)-1 {
					m.sugCursor++
				}
			} else if m.cursor < m.entries.Len()-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if len(m.suggestions) > 0 {
				return m.addSymbol(m.suggestions[m.sugCursor].Symbol)
			}
			if strings.TrimSpace(m.input.Value()) != "" {
				return m.addSymbol(m.input.Value())
			}
			if symbols := m.entries.Symbols(); m.cursor < len(symbols) {
				sym := symbols[m.cursor]
				return m, func() tea.Msg { return openTickerMsg{symbol: sym} }
			}
			return m, nil
		case "esc":
			if len(m.suggestions) > 0 {
				m.suggestions = nil
				m.sugCursor = 0
				return m, nil
			}
			return m, func() tea.Msg { return backMsg{} }
		case "ctrl+x":
			if symbols := m.entries.Symbols(); m.cursor < len(symbols) {
				sym := symbols[m.cursor]
				client := m.client
				id := m.id
				return m, func() tea.Msg {
					err := client.RemoveEntry(context.Background(), id, sym)
					return entryRemovedMsg{symbol: sym, err: err}
				}
			}
			return m, nil
		}

		// Everything else edits the add field.
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if upper := strings.ToUpper(m.input.Value()); upper != m.input.Value() {
			m.input.SetValue(upper)
		}
		after := m.input.Value()
		if after == before {
			return m, cmd
		}

		if after == "" {
			// Empty input clears suggestions immediately, no debounce wait.
			m.suggestions = nil
			m.sugCursor = 0
			m.searchSeq++
			return m, cmd
		}

		m.searchSeq++
		seq := m.searchSeq
		debounce := tea.Tick(suggestDebounce, func(time.Time) tea.Msg {
			return suggestDebounceMsg{seq: seq}
		})
		return m, tea.Batch(cmd, debounce)

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return m, nil
		}
		top, bottom := m.suggestRegion()
		if msg.Y < top || msg.Y > bottom {
			m.suggestions = nil
			m.sugCursor = 0
		}
		return m, nil

	case membersLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// Non-fatal: the screen shows an empty member list.
			m.logger.Error("loading watchlist entries", "watchlist", m.id, "error", msg.err)
			return m, nil
		}
		m.entries = watchlist.FromEntries(msg.entries)
		return m, nil

	case suggestDebounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil // a newer keystroke re-armed the timer
		}
		query := strings.TrimSpace(m.input.Value())
		if query == "" {
			return m, nil
		}
		client := m.client
		seq := msg.seq
		return m, func() tea.Msg {
			matches, err := client.SearchTickers(context.Background(), query)
			return suggestionsMsg{seq: seq, matches: matches, err: err}
		}

	case suggestionsMsg:
		if msg.seq <= m.appliedSeq {
			return m, nil // out-of-order response, a newer one already applied
		}
		if strings.TrimSpace(m.input.Value()) == "" {
			return m, nil
		}
		m.appliedSeq = msg.seq
		if msg.err != nil {
			// Suggestion lookups fail silently.
			m.logger.Debug("symbol search failed", "error", msg.err)
			m.suggestions = nil
			m.sugCursor = 0
			return m, nil
		}
		m.suggestions = msg.matches
		m.sugCursor = 0
		return m, nil

	case entryAddedMsg:
		// Input and suggestions clear on both outcomes.
		m = m.clearInput()
		if msg.err != nil {
			m.logger.Warn("adding ticker", "watchlist", m.id, "error", msg.err)
			m.notice.show(api.ErrorMessage(msg.err, "Failed to add ticker"))
			return m, nil
		}
		// Insert through the set: a concurrent add of the same symbol still
		// yields a single row.
		m.entries.Insert(msg.entry)
		return m, nil

	case entryRemovedMsg:
		if msg.err != nil {
			m.logger.Warn("removing ticker", "watchlist", m.id, "symbol", msg.symbol, "error", msg.err)
			m.notice.show("Failed to remove ticker")
			return m, nil
		}
		m.entries.Remove(msg.symbol)
		if m.cursor >= m.entries.Len() && m.cursor > 0 {
			m.cursor = m.entries.Len() - 1
		}
		return m, nil
	}

	return m, nil
}

func (m watchlistModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Watchlist: " + m.name))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("  Loading...") + "\n")
	case m.entries.Len() == 0:
		b.WriteString(dimStyle.Render("  (no tickers yet — type a symbol to add one)") + "\n")
	default:
		for i, sym := range m.entries.Symbols() {
			if i == m.cursor {
				b.WriteString(selectedStyle.Render("> "+sym) + "\n")
			} else {
				b.WriteString("  " + symbolStyle.Render(sym) + "\n")
			}
		}
	}

	b.WriteString("\n  " + m.input.View() + "\n")

	if len(m.suggestions) > 0 {
		var rows []string
		for i, s := range m.suggestions {
			row := fmt.Sprintf("%s — %s", s.Symbol, s.Name)
			if i == m.sugCursor {
				row = selectedStyle.Render(row)
			}
			rows = append(rows, row)
		}
		b.WriteString(suggestionStyle.Render(strings.Join(rows, "\n")) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(padOrTrunc(" enter open/add  ctrl+x remove  esc back  ctrl+c quit", max(m.width, 1))))

	view := b.String()
	if m.notice.active() {
		view += "\n\n" + m.notice.render(m.width)
	}
	return view
}
