// Package tui is the interactive terminal front end of the weather widget.
package tui

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/i474232898/weather-widget/internal/weather"
	"github.com/i474232898/weather-widget/internal/widget"
)

// fetchResultMsg carries a finished lookup back into the event loop.
type fetchResultMsg widget.Result

// clockMsg forces a re-render so the day/night phrase follows the wall clock.
type clockMsg time.Time

const clockInterval = time.Minute

// Model owns the widget. It runs on bubbletea's event loop; lookups run as
// commands and report back with fetchResultMsg.
type Model struct {
	ctx      context.Context
	widget   *widget.Widget
	provider weather.Provider

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keyMap  KeyMap
	style   *Style

	// cancels the in-flight lookup, nil when idle
	cancel context.CancelFunc
	now    func() time.Time
	width  int
}

type Option func(*Model)

// WithClock replaces time.Now for rendering.
func WithClock(now func() time.Time) Option {
	return func(m *Model) {
		m.now = now
	}
}

func New(ctx context.Context, provider weather.Provider, opts ...Option) Model {
	m := Model{
		ctx:      ctx,
		widget:   widget.New(),
		provider: provider,
		spinner:  spinner.New(spinner.WithSpinner(spinner.Dot)),
		help:     help.New(),
		keyMap:   DefaultKeyMap,
		style:    DefaultStyles(),
		now:      time.Now,
	}

	m.input = textinput.New()
	m.input.Placeholder = "Enter Location"
	m.input.Prompt = ""
	m.input.Focus()

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, clockTick())
}

func clockTick() tea.Cmd {
	return tea.Tick(clockInterval, func(t time.Time) tea.Msg {
		return clockMsg(t)
	})
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keyMap.Quit):
			m.cancelInFlight()
			return m, tea.Quit

		case key.Matches(msg, m.keyMap.Submit):
			return m, m.submit()

		case key.Matches(msg, m.keyMap.Cancel):
			// the lookup resolves with a context error, shown as a failed fetch
			if m.cancel != nil {
				m.cancel()
			}
			return m, nil
		}

		m.input, cmd = m.input.Update(msg)
		m.widget.SetQuery(m.input.Value())
		return m, cmd

	case fetchResultMsg:
		if m.widget.Resolve(widget.Result(msg)) {
			m.cancelInFlight()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.widget.Loading() {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case clockMsg:
		return m, clockTick()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit starts a lookup. A lookup still in flight is cancelled; if its
// result arrives anyway the widget drops it as stale.
func (m *Model) submit() tea.Cmd {
	m.widget.SetQuery(m.input.Value())
	m.cancelInFlight()

	req, err := m.widget.Submit()
	if err != nil {
		return nil
	}

	ctx, cancel := context.WithCancel(m.ctx)
	m.cancel = cancel
	provider := m.provider

	return tea.Batch(
		m.spinner.Tick,
		func() tea.Msg {
			return fetchResultMsg(widget.Fetch(ctx, provider, req))
		},
	)
}

func (m *Model) cancelInFlight() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Widget exposes the underlying state, mostly for tests.
func (m Model) Widget() *widget.Widget {
	return m.widget
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.style.Title.Render("Weather Widget"))
	b.WriteString("\n")
	b.WriteString(m.style.Subtitle.Render("Get real-time weather updates"))
	b.WriteString("\n\n")

	b.WriteString(m.style.Input.Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(m.buttonView())
	b.WriteString("\n")

	if msg := m.widget.ErrorMessage(); msg != "" {
		b.WriteString("\n")
		b.WriteString(m.style.Error.Render(msg))
		b.WriteString("\n")
	}

	if lines := m.widget.Lines(m.now()); lines != nil {
		b.WriteString("\n")
		b.WriteString(m.cardView(lines))
		b.WriteString("\n")
	}

	b.WriteString(m.style.Footer.Render(m.help.View(m.keyMap)))
	return b.String()
}

func (m Model) buttonView() string {
	label := m.widget.ButtonLabel()
	if m.widget.Loading() {
		return m.style.Button.Render(m.spinner.View() + label)
	}
	return m.style.Button.Render(label)
}

var lineIcons = []string{"📍", "🌡", "☁"}

func (m Model) cardView(lines []string) string {
	rows := make([]string, len(lines))
	for i, line := range lines {
		rows[i] = lineIcons[i] + " " + line
	}
	return m.style.Card.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
