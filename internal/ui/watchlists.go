package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"finwatch/internal/api"
)

// Messages.
type watchlistsLoadedMsg struct {
	lists []api.Watchlist
	err   error
}

type watchlistCreatedMsg struct {
	list api.Watchlist
	err  error
}

type watchlistRenamedMsg struct {
	list api.Watchlist
	err  error
}

type watchlistDeletedMsg struct {
	id  int64
	err error
}

// inputMode says what the name input is currently editing.
type inputMode int

const (
	inputHidden inputMode = iota
	inputCreate
	inputRename
)

// watchlistsModel is the collection screen: it lists, creates, renames and
// deletes watchlists. A load failure degrades to an empty list and is only
// logged; mutation failures surface as blocking notices.
type watchlistsModel struct {
	client *api.Client
	logger *slog.Logger

	lists   []api.Watchlist
	cursor  int
	loading bool

	input    textinput.Model
	mode     inputMode
	renameID int64

	deleteID int64

	notice  notice
	confirm confirm

	width  int
	height int
}

func newWatchlistsModel(client *api.Client, logger *slog.Logger) watchlistsModel {
	input := textinput.New()
	input.Placeholder = "watchlist name"
	input.CharLimit = 64
	input.Width = 32

	return watchlistsModel{
		client:  client,
		logger:  logger,
		loading: true,
		input:   input,
	}
}

func (m *watchlistsModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m watchlistsModel) Init() tea.Cmd {
	client := m.client
	return func() tea.Msg {
		lists, err := client.ListWatchlists(context.Background())
		return watchlistsLoadedMsg{lists: lists, err: err}
	}
}

func (m watchlistsModel) selected() (api.Watchlist, bool) {
	if m.cursor < 0 || m.cursor >= len(m.lists) {
		return api.Watchlist{}, false
	}
	return m.lists[m.cursor], true
}

// submitName handles enter while the input is editing. An empty or
// whitespace-only name is a no-op: no request goes out and the list stays
// as it is.
func (m watchlistsModel) submitName() (watchlistsModel, tea.Cmd) {
	name := strings.TrimSpace(m.input.Value())
	if name == "" {
		m.mode = inputHidden
		m.input.SetValue("")
		m.input.Blur()
		return m, nil
	}

	client := m.client
	switch m.mode {
	case inputCreate:
		return m, func() tea.Msg {
			list, err := client.CreateWatchlist(context.Background(), name)
			return watchlistCreatedMsg{list: list, err: err}
		}
	case inputRename:
		id := m.renameID
		return m, func() tea.Msg {
			list, err := client.RenameWatchlist(context.Background(), id, name)
			return watchlistRenamedMsg{list: list, err: err}
		}
	}
	return m, nil
}

func (m watchlistsModel) Update(msg tea.Msg) (watchlistsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()

		if m.notice.handleKey(key) {
			return m, nil
		}
		if swallowed, accepted := m.confirm.handleKey(key); swallowed {
			if !accepted {
				m.deleteID = 0
				return m, nil
			}
			id := m.deleteID
			m.deleteID = 0
			client := m.client
			return m, func() tea.Msg {
				err := client.DeleteWatchlist(context.Background(), id)
				return watchlistDeletedMsg{id: id, err: err}
			}
		}

		if m.mode != inputHidden {
			switch key {
			case "enter":
				return m.submitName()
			case "esc":
				m.mode = inputHidden
				m.input.SetValue("")
				m.input.Blur()
				return m, nil
			}
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}

		switch key {
		case "up":
			if m.cursor > 0 {
				m.cursor--
			}
			return m, nil
		case "down":
			if m.cursor < len(m.lists)-1 {
				m.cursor++
			}
			return m, nil
		case "enter":
			if wl, ok := m.selected(); ok {
				return m, func() tea.Msg {
					return openWatchlistMsg{id: wl.ID, name: wl.Name}
				}
			}
			return m, nil
		case "n":
			m.mode = inputCreate
			m.input.Placeholder = "new list name"
			m.input.SetValue("")
			return m, m.input.Focus()
		case "r":
			if wl, ok := m.selected(); ok {
				m.mode = inputRename
				m.renameID = wl.ID
				m.input.Placeholder = "new name"
				m.input.SetValue(wl.Name)
				return m, m.input.Focus()
			}
			return m, nil
		case "d":
			if wl, ok := m.selected(); ok {
				m.deleteID = wl.ID
				m.confirm.ask(fmt.Sprintf("Delete watchlist %q?", wl.Name))
			}
			return m, nil
		case "L":
			return m, func() tea.Msg { return logoutMsg{} }
		}

	case watchlistsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			// Non-fatal: the screen shows an empty collection.
			m.logger.Error("loading watchlists", "error", msg.err)
			return m, nil
		}
		m.lists = msg.lists
		if m.cursor >= len(m.lists) {
			m.cursor = 0
		}
		return m, nil

	case watchlistCreatedMsg:
		if msg.err != nil {
			m.logger.Warn("creating watchlist", "error", msg.err)
			m.notice.show(api.ErrorMessage(msg.err, "Failed to create"))
			return m, nil
		}
		m.lists = append(m.lists, msg.list)
		m.mode = inputHidden
		m.input.SetValue("")
		m.input.Blur()
		return m, nil

	case watchlistRenamedMsg:
		if msg.err != nil {
			m.logger.Warn("renaming watchlist", "error", msg.err)
			m.notice.show(api.ErrorMessage(msg.err, "Failed to rename"))
			return m, nil
		}
		for i := range m.lists {
			if m.lists[i].ID == msg.list.ID {
				m.lists[i] = msg.list
				break
			}
		}
		m.mode = inputHidden
		m.input.SetValue("")
		m.input.Blur()
		return m, nil

	case watchlistDeletedMsg:
		if msg.err != nil {
			m.logger.Warn("deleting watchlist", "error", msg.err)
			m.notice.show(api.ErrorMessage(msg.err, "Failed to delete"))
			return m, nil
		}
		kept := m.lists[:0]
		for _, wl := range m.lists {
			if wl.ID != msg.id {
				kept = append(kept, wl)
			}
		}
		m.lists = kept
		if m.cursor >= len(m.lists) && m.cursor > 0 {
			m.cursor = len(m.lists) - 1
		}
		return m, nil
	}

	return m, nil
}

func (m watchlistsModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Your Watchlists"))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(dimStyle.Render("  Loading...") + "\n")
	case len(m.lists) == 0:
		b.WriteString(dimStyle.Render("  (no watchlists yet — press n to create one)") + "\n")
	default:
		for i, wl := range m.lists {
			row := fmt.Sprintf("  %s", wl.Name)
			if i == m.cursor {
				row = selectedStyle.Render("> " + wl.Name)
			}
			b.WriteString(row + "\n")
		}
	}

	if m.mode != inputHidden {
		b.WriteString("\n  " + m.input.View() + "\n")
	}

	b.WriteString("\n")
	b.WriteString(footerStyle.Render(padOrTrunc(" enter open  n new  r rename  d delete  L log out  ctrl+c quit", max(m.width, 1))))

	view := b.String()
	if m.notice.active() {
		view += "\n\n" + m.notice.render(m.width)
	}
	if m.confirm.active() {
		view += "\n\n" + m.confirm.render(m.width)
	}
	return view
}
