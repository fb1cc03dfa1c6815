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

	"github.com/unbound-force/prodoc/internal/contract"
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

	safeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("40"))
	reviewStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("208"))
	highStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
)

func decisionStyle(d contract.Decision) lipgloss.Style {
	switch d {
	case contract.SafeToSign:
		return safeStyle
	case contract.RequiresLegalReview:
		return reviewStyle
	default:
		return highStyle
	}
}

// resultModel is the Bubble Tea model for browsing an analysis
// result.
type resultModel struct {
	result   contract.AnalysisResult
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
	content  string
}

func newResultModel(result contract.AnalysisResult) resultModel {
	return resultModel{
		result:  result,
		help:    help.New(),
		keys:    defaultKeyMap,
		content: renderResultContent(result),
	}
}

func renderResultContent(result contract.AnalysisResult) string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render(
		fmt.Sprintf("Prodoc Analysis: %s", result.ContractTitle)))
	sb.WriteString("\n\n")

	sb.WriteString(tuiHeaderStyle.Render("Decision: "))
	sb.WriteString(decisionStyle(result.Decision).Render(string(result.Decision)))
	sb.WriteString(fmt.Sprintf("   Risk score: %.2f\n", result.RiskScore))
	sb.WriteString(statusStyle.Render(result.Summary))
	sb.WriteString("\n\n")

	if len(result.Breakdown) > 0 {
		rows := make([][]string, 0, len(result.Breakdown))
		for _, r := range result.Breakdown {
			rows = append(rows, []string{
				string(r.Kind),
				fmt.Sprintf("%d", r.Count),
				fmt.Sprintf("%.2f", r.Contribution),
			})
		}

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(tuiBorderStyle).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return tuiHeaderStyle
				}
				return lipgloss.NewStyle()
			}).
			Headers("RISK", "COUNT", "CONTRIBUTION").
			Rows(rows...)

		sb.WriteString(t.String())
		sb.WriteString("\n\n")
	}

	if len(result.Highlights) == 0 {
		sb.WriteString(statusStyle.Render("No clause-level evidence."))
		sb.WriteString("\n\n")
	} else {
		sb.WriteString(tuiHeaderStyle.Render("=== Evidence ==="))
		sb.WriteString("\n")
		for _, h := range result.Highlights {
			sb.WriteString(reviewStyle.Render(h.ClauseID))
			sb.WriteString(fmt.Sprintf("  %s (confidence %.3f)\n", h.Label, h.Confidence))
			sb.WriteString(statusStyle.Render("  " + h.Text))
			sb.WriteString("\n\n")
		}
	}

	sb.WriteString(result.JustificationReport)
	sb.WriteString("\n")

	return sb.String()
}

func (m resultModel) Init() tea.Cmd {
	return nil
}

func (m resultModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
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

func (m resultModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	footer := statusStyle.Render(
		fmt.Sprintf(" %3.f%% ", m.viewport.ScrollPercent()*100)) +
		" " + m.help.View(m.keys)

	return m.viewport.View() + "\n" + footer
}

// runInteractiveResult launches the Bubble Tea TUI for browsing an
// analysis result.
func runInteractiveResult(result contract.AnalysisResult) error {
	model := newResultModel(result)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
