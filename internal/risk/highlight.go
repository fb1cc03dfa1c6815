package risk

import (
	"github.com/unbound-force/prodoc/internal/config"
	"github.com/unbound-force/prodoc/internal/contract"
)

// SelectHighlights extracts the user-visible evidence for the
// decision: critical clauses that the strength heuristic does not
// vouch for and that the classifier scored below the low-confidence
// threshold. Clause order is preserved. Confidence is rounded to
// three decimals and text truncated to contract.HighlightTextLimit
// bytes, with no ellipsis marker.
func SelectHighlights(clauses []contract.Clause, cfg *config.Config) []contract.Highlight {
	critical := cfg.CriticalSet()

	highlights := make([]contract.Highlight, 0)
	for _, c := range clauses {
		if !critical[c.Label] {
			continue
		}
		if StructurallyStrong(c.Text, cfg.Heuristics) {
			continue
		}
		if c.Confidence >= cfg.Confidence.Low {
			continue
		}

		text := c.Text
		if len(text) > contract.HighlightTextLimit {
			text = text[:contract.HighlightTextLimit]
		}

		highlights = append(highlights, contract.Highlight{
			ClauseID:   c.ID,
			RiskType:   contract.HighlightRiskType,
			Label:      c.Label,
			Confidence: contract.Round3(c.Confidence),
			Text:       text,
		})
	}
	return highlights
}
