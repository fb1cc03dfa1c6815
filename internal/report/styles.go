package report

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles defines the visual theme for terminal report output.
// Lipgloss automatically degrades to no-color when output is not a TTY.
type Styles struct {
	// Header is used for section headers.
	Header lipgloss.Style

	// SubHeader is used for secondary information lines.
	SubHeader lipgloss.Style

	// Safe, Review, and High color-code decisions and severities.
	Safe   lipgloss.Style
	Review lipgloss.Style
	High   lipgloss.Style

	// TableHeader styles the header row of tables.
	TableHeader lipgloss.Style

	// TableCell styles regular table cells.
	TableCell lipgloss.Style

	// Border is used for table borders.
	Border lipgloss.Style

	// Muted is used for de-emphasized text.
	Muted lipgloss.Style
}

// DefaultStyles returns the default color scheme for terminal reports.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		SubHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		Safe:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")).Bold(true),
		Review: lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		High:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),

		TableHeader: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		TableCell:   lipgloss.NewStyle().PaddingRight(1),

		Border: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),

		Muted: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// DecisionStyle returns the style for a decision value.
func (s Styles) DecisionStyle(d string) lipgloss.Style {
	switch d {
	case "SAFE_TO_SIGN":
		return s.Safe
	case "REQUIRES_LEGAL_REVIEW":
		return s.Review
	case "HIGH_RISK":
		return s.High
	}
	return s.Muted
}
