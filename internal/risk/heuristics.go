// Package risk implements the risk decision core: lexical
// heuristics, detection rules over classified clauses, the weighted
// score aggregator, the decision classifier, and evidence highlight
// selection. Every function here is pure given its inputs and the
// read-only configuration.
package risk

import (
	"strings"

	"github.com/unbound-force/prodoc/internal/config"
)

// StructurallyStrong reports whether a clause is lexically
// unambiguous enough to discount a low classifier confidence. A
// clause qualifies by length alone at cfg.StrengthWordCount words,
// or by containing at least cfg.StrengthKeywordHits of the
// configured mutual-obligation and boilerplate keywords
// (case-insensitive substring match).
func StructurallyStrong(text string, cfg config.Heuristics) bool {
	if len(strings.Fields(text)) >= cfg.StrengthWordCount {
		return true
	}

	lower := strings.ToLower(text)
	hits := 0
	for _, kw := range cfg.StrengthKeywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			hits++
		}
	}
	return hits >= cfg.StrengthKeywordHits
}

// Complex reports whether the whole contract is long enough to
// warrant caution on its own. Used only as a tie-breaker when no
// clause-level evidence exists.
func Complex(contractText string, cfg config.Heuristics) bool {
	return len(strings.Fields(contractText)) > cfg.ComplexityWordCount
}
