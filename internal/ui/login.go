package ui

import (
	"context"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"finwatch/internal/api"
)

// Messages.
type loginResultMsg struct {
	token string
	err   error
}

type registerResultMsg struct {
	resp api.RegisterResponse
	err  error
}

// loginModel is the entry screen: email and password fields submitting to
// the auth endpoints. On success the token travels up to the root via
// loggedInMsg; the root owns session persistence.
type loginModel struct {
	client *api.Client
	logger *slog.Logger

	email    textinput.Model
	password textinput.Model
	focus    int // 0 = email, 1 = password

	registering bool
	busy        bool
	status      string

	notice notice

	width  int
	height int
}

func newLoginModel(client *api.Client, logger *slog.Logger) loginModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 32
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 32

	return loginModel{
		client:   client,
		logger:   logger,
		email:    email,
		password: password,
	}
}

func (m *loginModel) setSize(width, height int) {
	m.width = width
	m.height = height
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) submit() (loginModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.notice.show("Email and password are required.")
		return m, nil
	}

	m.busy = true
	client := m.client
	if m.registering {
		return m, func() tea.Msg {
			resp, err := client.Register(context.Background(), email, password)
			return registerResultMsg{resp: resp, err: err}
		}
	}
	return m, func() tea.Msg {
		token, err := client.Login(context.Background(), email, password)
		return loginResultMsg{token: token, err: err}
	}
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.notice.handleKey(msg.String()) {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = 1 - m.focus
			if m.focus == 0 {
				m.password.Blur()
				return m, m.email.Focus()
			}
			m.email.Blur()
			return m, m.password.Focus()
		case "ctrl+r":
			m.registering = !m.registering
			m.status = ""
			return m, nil
		case "enter":
			if m.busy {
				return m, nil
			}
			return m.submit()
		}

	case loginResultMsg:
		m.busy = false
		if msg.err != nil {
			m.logger.Warn("login failed", "error", msg.err)
			m.notice.show(api.ErrorMessage(msg.err, "Login failed"))
			return m, nil
		}
		token := msg.token
		return m, func() tea.Msg { return loggedInMsg{token: token} }

	case registerResultMsg:
		m.busy = false
		if msg.err != nil {
			m.logger.Warn("registration failed", "error", msg.err)
			m.notice.show(api.ErrorMessage(msg.err, "Registration failed"))
			return m, nil
		}
		// Registration does not issue a token; ask the user to log in.
		m.registering = false
		m.status = "Account created, log in to continue."
		return m, nil
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m loginModel) View() string {
	title := "finwatch — log in"
	action := "enter log in"
	if m.registering {
		title = "finwatch — register"
		action = "enter register"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString("  " + m.email.View() + "\n")
	b.WriteString("  " + m.password.View() + "\n\n")
	if m.busy {
		b.WriteString(dimStyle.Render("  working...") + "\n")
	}
	if m.status != "" {
		b.WriteString("  " + m.status + "\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(padOrTrunc(" tab switch field  "+action+"  ctrl+r toggle register  ctrl+c quit", max(m.width, 1))))

	view := b.String()
	if m.notice.active() {
		view += "\n\n" + m.notice.render(m.width)
	}
	if m.width > 0 {
		return lipgloss.NewStyle().Width(m.width).Render(view)
	}
	return view
}
