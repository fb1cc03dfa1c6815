package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/unbound-force/prodoc/internal/contract"
)

// WriteText writes an analysis result as human-readable styled text
// to the writer. Output uses lipgloss for color and formatting when
// the output is a TTY; degrades gracefully for pipes and CI.
func WriteText(w io.Writer, result contract.AnalysisResult) error {
	s := DefaultStyles()

	fmt.Fprintln(w, s.Header.Render(fmt.Sprintf("=== %s ===", result.ContractTitle)))
	fmt.Fprintf(w, "    Decision: %s\n", s.DecisionStyle(string(result.Decision)).Render(string(result.Decision)))
	fmt.Fprintf(w, "    Risk score: %s\n", formatNumber(result.RiskScore))
	fmt.Fprintln(w, s.SubHeader.Render("    "+result.Summary))

	if len(result.Breakdown) > 0 {
		fmt.Fprintln(w)
		rows := make([][]string, 0, len(result.Breakdown))
		for _, r := range result.Breakdown {
			rows = append(rows, []string{
				string(r.Kind),
				fmt.Sprintf("%d", r.Count),
				formatNumber(r.Weight),
				formatNumber(r.Contribution),
			})
		}

		t := table.New().
			Width(76).
			Border(lipgloss.NormalBorder()).
			BorderStyle(s.Border).
			StyleFunc(func(row, col int) lipgloss.Style {
				if row == table.HeaderRow {
					return s.TableHeader
				}
				return s.TableCell
			}).
			Headers("RISK", "COUNT", "WEIGHT", "CONTRIBUTION").
			Rows(rows...)

		fmt.Fprintln(w, t)
	}

	if len(result.Highlights) == 0 {
		fmt.Fprintln(w, s.Muted.Render("    No clause-level evidence."))
	} else {
		fmt.Fprintln(w)
		fmt.Fprintln(w, s.Header.Render("Evidence"))
		for _, h := range result.Highlights {
			fmt.Fprintf(w, "    %s  %s (confidence %s)\n",
				s.Review.Render(h.ClauseID), h.Label, formatNumber(h.Confidence))
			fmt.Fprintln(w, s.Muted.Render("      "+excerpt(h.Text, 120)))
		}
	}

	for _, warn := range result.Warnings {
		fmt.Fprintln(w, s.Muted.Render("    warning: "+warn))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, result.JustificationReport)

	return nil
}

// excerpt returns the first n bytes of a single-line rendering of
// text, with an ellipsis when truncated. Display-only; highlight
// payloads keep exact truncation.
func excerpt(text string, n int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= n {
		return text
	}
	return text[:n-3] + "..."
}
