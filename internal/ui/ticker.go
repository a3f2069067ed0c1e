package ui

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"finwatch/internal/api"
)

// panelStatus tracks one panel's independent fetch lifecycle.
type panelStatus int

const (
	panelLoading panelStatus = iota
	panelReady
	panelFailed
)

// Messages. One per panel: the four fetches are independent and may resolve
// in any order.
type profileLoadedMsg struct {
	profile api.Profile
	err     error
}

type chartLoadedMsg struct {
	chart api.Chart
	err   error
}

type indicatorsLoadedMsg struct {
	indicators api.Indicators
	err        error
}

type newsLoadedMsg struct {
	items []api.NewsItem
	err   error
}

// tickerModel is the per-symbol detail screen: profile header, price/volume
// chart, indicator set, and news feed. Each panel owns its loading and
// failure state; a failed panel renders a placeholder and is only logged,
// never a screen-wide error.
type tickerModel struct {
	client *api.Client
	logger *slog.Logger

	symbol string

	profile       api.Profile
	profileStatus panelStatus
	chart         api.Chart
	chartStatus   panelStatus
	indicators    api.Indicators
	indStatus     panelStatus
	news          []api.NewsItem
	newsStatus    panelStatus

	viewport viewport.Model
	ready    bool

	width  int
	height int
}

func newTickerModel(client *api.Client, logger *slog.Logger, symbol string) tickerModel {
	return tickerModel{
		client: client,
		logger: logger,
		symbol: symbol,
	}
}

func (m *tickerModel) setSize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := height - 2 // header + footer
	if vpHeight < 1 {
		vpHeight = 1
	}
	if !m.ready {
		m.viewport = viewport.New(width, vpHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = vpHeight
	}
	m.viewport.SetContent(m.renderPanels())
}

func (m tickerModel) Init() tea.Cmd {
	client := m.client
	symbol := m.symbol
	return tea.Batch(
		func() tea.Msg {
			p, err := client.TickerProfile(context.Background(), symbol)
			return profileLoadedMsg{profile: p, err: err}
		},
		func() tea.Msg {
			c, err := client.TickerChart(context.Background(), symbol)
			return chartLoadedMsg{chart: c, err: err}
		},
		func() tea.Msg {
			ind, err := client.TickerIndicators(context.Background(), symbol)
			return indicatorsLoadedMsg{indicators: ind, err: err}
		},
		func() tea.Msg {
			items, err := client.TickerNews(context.Background(), symbol)
			return newsLoadedMsg{items: items, err: err}
		},
	)
}

func (m tickerModel) Update(msg tea.Msg) (tickerModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "q" {
			return m, func() tea.Msg { return backMsg{} }
		}

	case profileLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("loading profile", "symbol", m.symbol, "error", msg.err)
			m.profileStatus = panelFailed
		} else {
			m.profile = msg.profile
			m.profileStatus = panelReady
		}
		m.refreshContent()
		return m, nil

	case chartLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("loading chart", "symbol", m.symbol, "error", msg.err)
			m.chartStatus = panelFailed
		} else {
			m.chart = msg.chart
			m.chartStatus = panelReady
		}
		m.refreshContent()
		return m, nil

	case indicatorsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("loading indicators", "symbol", m.symbol, "error", msg.err)
			m.indStatus = panelFailed
		} else {
			m.indicators = msg.indicators
			m.indStatus = panelReady
		}
		m.refreshContent()
		return m, nil

	case newsLoadedMsg:
		if msg.err != nil {
			m.logger.Warn("loading news", "symbol", m.symbol, "error", msg.err)
			m.newsStatus = panelFailed
		} else {
			m.news = msg.items
			m.newsStatus = panelReady
		}
		m.refreshContent()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *tickerModel) refreshContent() {
	if m.ready {
		m.viewport.SetContent(m.renderPanels())
	}
}

// header renders once the profile has resolved, independent of the other
// panels.
func (m tickerModel) header() string {
	switch m.profileStatus {
	case panelReady:
		title := fmt.Sprintf("%s (%s)  $%.2f", m.profile.Name, m.profile.Symbol, m.profile.CurrentPrice)
		return titleStyle.Render(title) + " " + m.renderChange()
	case panelFailed:
		return titleStyle.Render(m.symbol)
	default:
		return titleStyle.Render("Loading " + m.symbol + "...")
	}
}

// renderChange shows the move against the previous close, colored by sign.
func (m tickerModel) renderChange() string {
	prev := m.profile.PreviousClose
	if prev == 0 {
		return ""
	}
	diff := m.profile.CurrentPrice - prev
	pct := diff / prev * 100
	text := fmt.Sprintf("%+.2f (%+.2f%%)", diff, pct)
	if diff < 0 {
		return lossStyle.Render(text)
	}
	return gainStyle.Render(text)
}

func (m tickerModel) renderProfilePanel(b *strings.Builder) {
	b.WriteString(labelStyle.Render("Profile") + "\n")
	switch m.profileStatus {
	case panelLoading:
		b.WriteString(dimStyle.Render("  loading...") + "\n")
	case panelFailed:
		b.WriteString(dimStyle.Render("  unavailable") + "\n")
	case panelReady:
		p := m.profile
		b.WriteString(fmt.Sprintf("  Sector:     %s\n", p.Sector))
		b.WriteString(fmt.Sprintf("  Industry:   %s\n", p.Industry))
		b.WriteString(fmt.Sprintf("  Market cap: %s %s\n", formatMarketCap(p.MarketCap), p.Currency))
		b.WriteString(fmt.Sprintf("  Employees:  %d\n", p.FullTimeEmployees))
		b.WriteString(fmt.Sprintf("  Website:    %s\n", p.Website))
		if p.TrailingPE != 0 {
			b.WriteString(fmt.Sprintf("  P/E (ttm):  %.2f\n", p.TrailingPE))
		}
		if p.Summary != "" {
			b.WriteString("\n  " + wrapText(p.Summary, max(m.width-4, 20)) + "\n")
		}
	}
}

func (m tickerModel) renderChartPanel(b *strings.Builder) {
	b.WriteString("\n" + labelStyle.Render("Chart (close / volume)") + "\n")
	switch m.chartStatus {
	case panelLoading:
		b.WriteString(dimStyle.Render("  loading...") + "\n")
	case panelFailed:
		b.WriteString(dimStyle.Render("  unavailable") + "\n")
	case panelReady:
		b.WriteString(renderChart(m.chart, max(m.width-4, 20)))
	}
}

func (m tickerModel) renderIndicatorsPanel(b *strings.Builder) {
	b.WriteString("\n" + labelStyle.Render("Indicators") + "\n")
	switch m.indStatus {
	case panelLoading:
		b.WriteString(dimStyle.Render("  loading...") + "\n")
	case panelFailed:
		b.WriteString(dimStyle.Render("  unavailable") + "\n")
	case panelReady:
		b.WriteString(fmt.Sprintf("  RSI: %.1f   MACD: %.2f   Piotroski: %d/9\n",
			m.indicators.RSI, m.indicators.MACD, m.indicators.PiotroskiScore))
	}
}

func (m tickerModel) renderNewsPanel(b *strings.Builder) {
	b.WriteString("\n" + labelStyle.Render("News") + "\n")
	switch m.newsStatus {
	case panelLoading:
		b.WriteString(dimStyle.Render("  loading...") + "\n")
	case panelFailed:
		b.WriteString(dimStyle.Render("  unavailable") + "\n")
	case panelReady:
		if len(m.news) == 0 {
			b.WriteString(dimStyle.Render("  (no recent news)") + "\n")
			return
		}
		for _, item := range m.news {
			b.WriteString("  " + item.Title + "\n")
			b.WriteString("    " + dimStyle.Render(item.PublishedAt+"  "+item.URL) + "\n")
		}
	}
}

func (m tickerModel) renderPanels() string {
	var b strings.Builder
	m.renderProfilePanel(&b)
	m.renderChartPanel(&b)
	m.renderIndicatorsPanel(&b)
	m.renderNewsPanel(&b)
	return b.String()
}

func (m tickerModel) View() string {
	if !m.ready {
		return m.header()
	}
	footer := footerStyle.Render(padOrTrunc(" esc back  up/dn scroll  ctrl+c quit", max(m.width, 1)))
	return m.header() + "\n" + m.viewport.View() + "\n" + footer
}

// formatMarketCap renders a market cap in trillions/billions/millions.
func formatMarketCap(v float64) string {
	switch {
	case v >= 1e12:
		return fmt.Sprintf("%.2fT", v/1e12)
	case v >= 1e9:
		return fmt.Sprintf("%.2fB", v/1e9)
	case v >= 1e6:
		return fmt.Sprintf("%.2fM", v/1e6)
	case v == 0:
		return "—"
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// wrapText folds s at word boundaries to the given width.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}
	var b strings.Builder
	lineLen := 0
	for i, w := range words {
		if i > 0 {
			if lineLen+1+len(w) > width {
				b.WriteString("\n  ")
				lineLen = 0
			} else {
				b.WriteString(" ")
				lineLen++
			}
		}
		b.WriteString(w)
		lineLen += len(w)
	}
	return b.String()
}
