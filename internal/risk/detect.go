package risk

import (
	"strings"

	"github.com/unbound-force/prodoc/internal/config"
	"github.com/unbound-force/prodoc/internal/contract"
)

// Detect runs the rules wired into the default decision path over a
// classified clause list and returns the triggered signals in rule
// order. A rule that does not fire produces no signal.
func Detect(clauses []contract.Clause, cfg *config.Config) []contract.Signal {
	var signals []contract.Signal

	if missing := MissingCritical(clauses, cfg); len(missing) > 0 {
		signals = append(signals, contract.Signal{
			Kind:  contract.MissingCriticalClause,
			Count: len(missing),
		})
	}

	if lowConf := LowConfidenceCritical(clauses, cfg); len(lowConf) > 0 {
		signals = append(signals, contract.Signal{
			Kind:  contract.LowConfidenceCriticalClause,
			Count: len(lowConf),
		})
	}

	return signals
}

// MissingCritical returns the critical clause types with no clause
// labeled as such, in configuration order.
func MissingCritical(clauses []contract.Clause, cfg *config.Config) []contract.ClauseType {
	present := make(map[contract.ClauseType]bool, len(clauses))
	for _, c := range clauses {
		present[c.Label] = true
	}

	var missing []contract.ClauseType
	for _, t := range cfg.CriticalClauseTypes {
		if !present[t] {
			missing = append(missing, t)
		}
	}
	return missing
}

// LowConfidenceCritical returns the clauses whose label is critical,
// whose confidence is below the low threshold, and which the
// strength heuristic does not vouch for. Clause order is preserved.
func LowConfidenceCritical(clauses []contract.Clause, cfg *config.Config) []contract.Clause {
	critical := cfg.CriticalSet()

	var out []contract.Clause
	for _, c := range clauses {
		if !critical[c.Label] {
			continue
		}
		if c.Confidence >= cfg.Confidence.Low {
			continue
		}
		if StructurallyStrong(c.Text, cfg.Heuristics) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// OneSided returns the clauses whose obligation language is skewed
// toward one party: at least two obligation-verb hits and strictly
// more burdened-party terms than counterparty terms. Exposed as a
// reusable detector; not wired into the default score.
func OneSided(clauses []contract.Clause, cfg config.Heuristics) []contract.Clause {
	var out []contract.Clause
	for _, c := range clauses {
		lower := strings.ToLower(c.Text)

		obligations := 0
		for _, kw := range cfg.ObligationKeywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				obligations++
			}
		}

		oneSided := 0
		for _, term := range cfg.OneSidedPartyTerms {
			if strings.Contains(lower, strings.ToLower(term)) {
				oneSided++
			}
		}

		counterparty := 0
		for _, term := range cfg.CounterpartyTerms {
			if strings.Contains(lower, strings.ToLower(term)) {
				counterparty++
			}
		}

		if obligations >= 2 && oneSided > counterparty {
			out = append(out, c)
		}
	}
	return out
}

// TerminationFinding is the result of the weak-termination detector.
type TerminationFinding struct {
	// NoTerminationClause is set when no clause is labeled
	// Termination and none contains termination language. Weak is
	// empty in that case.
	NoTerminationClause bool

	// Weak lists termination clauses that grant discretion-only
	// rights ("only", "sole discretion"), in clause order.
	Weak []contract.Clause
}

// WeakTermination inspects termination rights. Exposed as a reusable
// detector; not wired into the default score.
func WeakTermination(clauses []contract.Clause, cfg config.Heuristics) TerminationFinding {
	var termination []contract.Clause
	for _, c := range clauses {
		if c.Label == contract.Termination || containsAny(c.Text, cfg.TerminationKeywords) {
			termination = append(termination, c)
		}
	}

	if len(termination) == 0 {
		return TerminationFinding{NoTerminationClause: true}
	}

	var weak []contract.Clause
	for _, c := range termination {
		lower := strings.ToLower(c.Text)
		if strings.Contains(lower, "only") || strings.Contains(lower, "sole discretion") {
			weak = append(weak, c)
		}
	}
	return TerminationFinding{Weak: weak}
}

func containsAny(text string, keywords []string) bool {
	lower := strings.ToLower(text)
	for _, kw := range keywords {
		if strings.Contains(lower, strings.ToLower(kw)) {
			return true
		}
	}
	return false
}
