package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/tbhb/searchpath"
)

// keyMap defines keybindings for the interactive TUI.
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("^/k", "up")),
	Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("v/j", "down")),
	PageUp:   key.NewBinding(key.WithKeys("pgup", "ctrl+u"), key.WithHelp("pgup", "page up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown", "ctrl+d"), key.WithHelp("pgdn", "page down")),
	Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	tuiHeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	tuiBorderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	scopeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
)

// findModel is the Bubble Tea model for browsing lookup results.
type findModel struct {
	matches  []searchpath.Match
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newFindModel(matches []searchpath.Match) findModel {
	h := help.New()
	content := renderFindContent(matches)
	return findModel{
		matches: matches,
		help:    h,
		keys:    defaultKeyMap,
		content: content,
	}
}

func renderFindContent(matches []searchpath.Match) string {
	var sb strings.Builder

	sources := make(map[string]bool)
	for _, m := range matches {
		sources[m.Source] = true
	}

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Search results: %d match(es) from %d root(s)",
			len(matches), len(sources))))
	sb.WriteString("\n\n")

	if len(matches) == 0 {
		sb.WriteString(statusStyle.Render("    Nothing matched."))
		sb.WriteString("\n")
		return sb.String()
	}

	rows := make([][]string, 0, len(matches))
	for _, m := range matches {
		rel := m.Relative()
		if len(rel) > 50 {
			rel = "..." + rel[len(rel)-47:]
		}
		rows = append(rows, []string{m.Scope, rel})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(tuiBorderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return tuiHeaderStyle
			}
			if col == 0 {
				return scopeStyle
			}
			return lipgloss.NewStyle()
		}).
		Headers("SCOPE", "RELATIVE PATH").
		Rows(rows...)

	sb.WriteString(t.String())
	sb.WriteString("\n\n")

	for _, m := range matches {
		sb.WriteString(statusStyle.Render(fmt.Sprintf("    %s", m.Path)))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (m findModel) Init() tea.Cmd {
	return nil
}

func (m findModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		headerHeight := 0
		footerHeight := 2
		verticalMargin := headerHeight + footerHeight

		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-verticalMargin)
			m.viewport.SetContent(m.content)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - verticalMargin
		}

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m findModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveFind launches the Bubble Tea TUI for browsing lookup
// results.
func runInteractiveFind(matches []searchpath.Match) error {
	model := newFindModel(matches)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
