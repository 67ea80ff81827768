// Package tui implements the notepad surface: a text buffer on the left
// and, aligned line by line on the right, the value of each expression.
// Results recompute on every keystroke.
package tui

import (
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/0xfalafel/luca"
)

// Model is the bubbletea model for the notepad.
type Model struct {
	input   textarea.Model
	results viewport.Model

	opts   []luca.EnvOption
	width  int
	height int
	ready  bool
}

// NewModel builds the notepad with the given starting environment options
// applied on every evaluation pass.
func NewModel(opts ...luca.EnvOption) Model {
	ta := textarea.New()
	ta.Placeholder = "1 + 2"
	ta.Prompt = ""
	ta.ShowLineNumbers = false
	ta.Focus()

	return Model{
		input: ta,
		opts:  opts,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.results.SetContent(luca.SolveBuffer(m.input.Value(), m.opts...))
	// Keep the result pane scrolled with the cursor line.
	m.results.SetYOffset(max(0, m.input.Line()-m.results.Height+1))
	return m, cmd
}

// layout splits the window into two equal panes under the title bar.
func (m *Model) layout() {
	paneWidth := m.width/2 - 2
	paneHeight := m.height - 4
	if paneWidth < 1 || paneHeight < 1 {
		return
	}

	m.input.SetWidth(paneWidth)
	m.input.SetHeight(paneHeight)

	if !m.ready {
		m.results = viewport.New(paneWidth, paneHeight)
		m.ready = true
	} else {
		m.results.Width = paneWidth
		m.results.Height = paneHeight
	}
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	panes := lipgloss.JoinHorizontal(
		lipgloss.Top,
		inputPaneStyle.Render(m.input.View()),
		resultPaneStyle.Render(m.results.View()),
	)
	return lipgloss.JoinVertical(
		lipgloss.Left,
		titleStyle.Render("luca"),
		panes,
		helpStyle.Render("Esc/Ctrl+C: quit"),
	)
}
