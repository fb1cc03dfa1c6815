// Package config holds the process-wide, read-only configuration for
// the prodoc engine: the critical clause type set, confidence and
// decision thresholds, the risk weight table, and heuristic keyword
// lists. Configuration is loaded once at startup and never mutated.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/unbound-force/prodoc/internal/contract"
)

// Config is the full prodoc configuration tree.
type Config struct {
	// CriticalClauseTypes is the set of clause types considered
	// legally essential. Absence or low-confidence classification
	// of these types produces risk signals.
	CriticalClauseTypes []contract.ClauseType `yaml:"critical_clause_types"`

	// Confidence holds classifier confidence thresholds.
	Confidence ConfidenceThresholds `yaml:"confidence"`

	// RiskWeights maps risk kinds to their score weights. Kinds
	// absent from the table weigh 0 (soft fail; surfaced as a
	// warning, never an error).
	RiskWeights map[contract.RiskKind]float64 `yaml:"risk_weights"`

	// Decision holds the score thresholds for decision buckets.
	Decision DecisionThresholds `yaml:"decision"`

	// Heuristics holds the lexical heuristic settings.
	Heuristics Heuristics `yaml:"heuristics"`
}

// ConfidenceThresholds holds classifier confidence cutoffs.
type ConfidenceThresholds struct {
	// Low is the confidence below which a critical clause is
	// treated as unreliably classified. In (0, 1].
	Low float64 `yaml:"low"`
}

// DecisionThresholds holds inclusive lower bounds on the risk score
// for each non-safe decision bucket.
type DecisionThresholds struct {
	RequiresReview float64 `yaml:"requires_review"`
	HighRisk       float64 `yaml:"high_risk"`
}

// Heuristics configures the lexical heuristics used by the risk
// detectors.
type Heuristics struct {
	// StrengthKeywords is the keyword list for the structural
	// strength check. A clause shorter than StrengthWordCount
	// words is still considered strong when at least
	// StrengthKeywordHits of these occur in it (case-insensitive
	// substring match).
	StrengthKeywords []string `yaml:"strength_keywords"`

	// StrengthWordCount is the word count at or above which a
	// clause counts as structurally strong outright.
	StrengthWordCount int `yaml:"strength_word_count"`

	// StrengthKeywordHits is the minimum number of keyword hits
	// for a short clause to count as strong.
	StrengthKeywordHits int `yaml:"strength_keyword_hits"`

	// ComplexityWordCount is the whole-contract word count above
	// which the contract is considered complex.
	ComplexityWordCount int `yaml:"complexity_word_count"`

	// ObligationKeywords are obligation-verb phrases used by the
	// one-sided obligation detector.
	ObligationKeywords []string `yaml:"obligation_keywords"`

	// OneSidedPartyTerms are party-role terms indicating the
	// burdened party.
	OneSidedPartyTerms []string `yaml:"one_sided_party_terms"`

	// CounterpartyTerms are party-role terms indicating the
	// counterparty.
	CounterpartyTerms []string `yaml:"counterparty_terms"`

	// TerminationKeywords identify termination language when the
	// classifier did not label any clause as Termination.
	TerminationKeywords []string `yaml:"termination_keywords"`
}

// Default returns the built-in configuration. The strength keyword
// list is the one the original decision path used; an older 8-entry
// variant (without "termination" and "confidential") existed in the
// same codebase and can be restored via a config file if needed.
func Default() *Config {
	return &Config{
		CriticalClauseTypes: []contract.ClauseType{
			contract.GoverningLaw,
			contract.Termination,
			contract.Indemnification,
			contract.Confidentiality,
			contract.LimitationOfLiability,
		},
		Confidence: ConfidenceThresholds{Low: 0.5},
		RiskWeights: map[contract.RiskKind]float64{
			contract.MissingCriticalClause:       2.0,
			contract.LowConfidenceCriticalClause: 1.5,
			contract.OneSidedObligation:          2.5,
			contract.WeakTerminationRights:       2.0,
			contract.LongTermCommitment:          1.0,
			contract.AmbiguousGrant:              1.0,
		},
		Decision: DecisionThresholds{
			RequiresReview: 5,
			HighRisk:       15,
		},
		Heuristics: Heuristics{
			StrengthKeywords: []string{
				"each party",
				"either party",
				"shall",
				"may",
				"governed by",
				"indemnify",
				"termination",
				"terminate",
				"liability",
				"confidential",
			},
			StrengthWordCount:   60,
			StrengthKeywordHits: 2,
			ComplexityWordCount: 1200,
			ObligationKeywords: []string{
				"shall",
				"must",
				"agree to",
				"obligated to",
				"responsible for",
			},
			OneSidedPartyTerms: []string{
				"Distributor",
				"Receiving Party",
				"Licensee",
			},
			CounterpartyTerms: []string{
				"Company",
				"Disclosing Party",
				"Licensor",
			},
			TerminationKeywords: []string{
				"terminate",
				"termination",
				"cancel",
				"cancellation",
				"expiration",
			},
		},
	}
}

// Load reads the configuration, starting from Default and overlaying
// the YAML file at path when path is non-empty. The merged result is
// validated; a missing or malformed file is a fatal startup error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	if err := cfg.Validate(); err != nil {
		if path != "" {
			return nil, fmt.Errorf("config file %s: %w", path, err)
		}
		return nil, err
	}

	return cfg, nil
}

// Validate checks the internal consistency of the configuration.
func (c *Config) Validate() error {
	if len(c.CriticalClauseTypes) == 0 {
		return fmt.Errorf("critical_clause_types must not be empty")
	}
	if c.Confidence.Low <= 0 || c.Confidence.Low > 1 {
		return fmt.Errorf("confidence.low %v is invalid: must be in (0, 1]", c.Confidence.Low)
	}
	if c.Decision.RequiresReview >= c.Decision.HighRisk {
		return fmt.Errorf("decision thresholds inverted: requires_review %v must be below high_risk %v",
			c.Decision.RequiresReview, c.Decision.HighRisk)
	}
	for kind, w := range c.RiskWeights {
		if w < 0 {
			return fmt.Errorf("risk_weights[%s] = %v: weights must be non-negative", kind, w)
		}
	}
	if c.Heuristics.StrengthWordCount <= 0 {
		return fmt.Errorf("heuristics.strength_word_count must be positive")
	}
	if c.Heuristics.StrengthKeywordHits <= 0 {
		return fmt.Errorf("heuristics.strength_keyword_hits must be positive")
	}
	if c.Heuristics.ComplexityWordCount <= 0 {
		return fmt.Errorf("heuristics.complexity_word_count must be positive")
	}
	return nil
}

// CriticalSet returns the critical clause types as a set for
// membership tests.
func (c *Config) CriticalSet() map[contract.ClauseType]bool {
	set := make(map[contract.ClauseType]bool, len(c.CriticalClauseTypes))
	for _, t := range c.CriticalClauseTypes {
		set[t] = true
	}
	return set
}

// Weight returns the configured weight for kind and whether the kind
// is present in the weight table. Unknown kinds weigh 0.
func (c *Config) Weight(kind contract.RiskKind) (float64, bool) {
	w, ok := c.RiskWeights[kind]
	return w, ok
}
