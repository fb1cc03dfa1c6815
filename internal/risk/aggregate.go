package risk

import (
	"fmt"

	"github.com/unbound-force/prodoc/internal/config"
	"github.com/unbound-force/prodoc/internal/contract"
)

// Aggregate converts detector signals into a total risk score and a
// per-signal contribution breakdown, in input order. The score is
// rounded to two decimals; each contribution is weight * count.
//
// Aggregation is total: a signal whose kind has no configured weight
// contributes 0 instead of failing. That soft-fail policy can mask a
// misconfigured weight table, so every unknown kind is reported in
// the returned warnings list.
func Aggregate(signals []contract.Signal, cfg *config.Config) (float64, []contract.Contribution, []string) {
	var (
		total     float64
		breakdown = make([]contract.Contribution, 0, len(signals))
		warnings  []string
	)

	for _, s := range signals {
		weight, known := cfg.Weight(s.Kind)
		if !known {
			warnings = append(warnings, fmt.Sprintf("unknown risk kind %s: no weight configured", s.Kind))
		}

		c := weight * float64(s.Count)
		total += c
		breakdown = append(breakdown, contract.Contribution{
			Kind:         s.Kind,
			Count:        s.Count,
			Weight:       weight,
			Contribution: c,
		})
	}

	return contract.Round2(total), breakdown, warnings
}

// ClassifyDecision maps a risk score to a decision. Thresholds are
// inclusive lower bounds; a score exactly on a threshold lands in
// the higher-severity bucket.
func ClassifyDecision(score float64, t config.DecisionThresholds) contract.Decision {
	switch {
	case score >= t.HighRisk:
		return contract.HighRisk
	case score >= t.RequiresReview:
		return contract.RequiresLegalReview
	default:
		return contract.SafeToSign
	}
}
