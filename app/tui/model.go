package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/toggler/app/enum"
	"github.com/umputun/toggler/app/toggle"
)

// Presenter applies triggers to a state and renders it.
type Presenter interface {
	Initialize(st *toggle.State) bool
	Handle(st *toggle.State, t enum.Trigger)
	Render(st toggle.State) toggle.View
	Palette() toggle.Palette
}

// paletteChangedMsg is sent after the palette has been reloaded.
type paletteChangedMsg struct{}

// Model is the single-session toggle screen.
type Model struct {
	presenter Presenter
	state     toggle.State
	view      toggle.View
	help      help.Model
	width     int
}

// NewModel makes a model with an initialized state.
func NewModel(p Presenter) Model {
	m := Model{presenter: p, help: help.New()}
	p.Initialize(&m.state)
	m.view = p.Render(m.state)
	return m
}

// State returns the current state.
func (m Model) State() toggle.State {
	return m.state
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update processes messages and returns an updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case paletteChangedMsg:
		m.view = m.presenter.Render(m.state)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		case key.Matches(msg, keys.Toggle):
			m.apply(enum.TriggerToggle)
		case key.Matches(msg, keys.NotifyA):
			m.apply(enum.TriggerNotifyA)
		case key.Matches(msg, keys.NotifyB):
			m.apply(enum.TriggerNotifyB)
		}
	}
	return m, nil
}

// apply handles the trigger and re-renders afterwards.
func (m *Model) apply(t enum.Trigger) {
	m.presenter.Handle(&m.state, t)
	m.view = m.presenter.Render(m.state)
}

// View renders the screen.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Toggler"))
	b.WriteString("  ")
	b.WriteString(paletteNameStyle.Render(m.presenter.Palette().Name))
	b.WriteString("\n\n")

	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		buttonStyle(m.view.Primary.Color).Render(m.view.Primary.Label),
		buttonStyle(m.view.Secondary[0].Color).Render(m.view.Secondary[0].Label),
		buttonStyle(m.view.Secondary[1].Color).Render(m.view.Secondary[1].Label),
	)
	b.WriteString(buttons)
	b.WriteString("\n\n")

	b.WriteString(statusLabelStyle.Render("Status"))
	b.WriteString("\n")
	status := statusStyle
	if m.width > 4 {
		status = status.Width(m.width - 4)
	}
	b.WriteString(status.Render(m.view.Status))
	b.WriteString("\n\n")

	b.WriteString(m.help.View(keys))
	b.WriteString("\n")
	return b.String()
}
