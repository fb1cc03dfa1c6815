// Package classify defines the clause classification port consumed
// by the engine and provides two adapters: a deterministic
// lexicon-based classifier for offline use and an LLM-backed
// classifier for model-assisted runs.
//
// The engine depends only on the Classifier interface; the model
// behind it is an opaque capability.
package classify

import (
	"context"
	"strings"

	"github.com/unbound-force/prodoc/internal/contract"
)

// Classifier assigns a clause type and a confidence in [0, 1] to a
// single clause text. Implementations must be safe for sequential
// per-clause calls; the engine never batches.
type Classifier interface {
	Classify(ctx context.Context, clauseText string) (contract.ClauseType, float64, error)
}

// Func adapts a plain function to the Classifier interface. Useful
// for test doubles returning fixed (label, confidence) pairs.
type Func func(ctx context.Context, clauseText string) (contract.ClauseType, float64, error)

// Classify implements Classifier.
func (f Func) Classify(ctx context.Context, clauseText string) (contract.ClauseType, float64, error) {
	return f(ctx, clauseText)
}

// lexicon maps each clause type to cue phrases. Matching is
// case-insensitive substring search over the clause text.
var lexicon = map[contract.ClauseType][]string{
	contract.GoverningLaw: {
		"governed by", "governing law", "laws of the state", "jurisdiction", "venue",
	},
	contract.Termination: {
		"terminate", "termination", "expiration", "notice of termination", "wind down",
	},
	contract.Indemnification: {
		"indemnify", "indemnification", "hold harmless", "defend", "indemnitee",
	},
	contract.Confidentiality: {
		"confidential", "non-disclosure", "proprietary information", "trade secret",
	},
	contract.LimitationOfLiability: {
		"limitation of liability", "liable", "consequential damages", "aggregate liability", "in no event",
	},
	contract.LicenseGrant: {
		"grants", "license", "right to use", "exclusive right", "sublicense",
	},
	contract.PaymentTerms: {
		"payment", "fees", "invoice", "payable", "net 30",
	},
	contract.Assignment: {
		"assign", "assignment", "successors", "transfer this agreement",
	},
}

// Lexicon is a deterministic, dependency-free Classifier that scores
// clause types by cue-phrase hits. It exists so the pipeline runs
// offline with reproducible output; its confidences are intentionally
// conservative.
type Lexicon struct{}

// NewLexicon returns the lexicon classifier.
func NewLexicon() *Lexicon { return &Lexicon{} }

// Classify picks the clause type with the most cue-phrase hits.
// Confidence grows with the winning hit count and shrinks when a
// runner-up is close. A text with no hits is Unknown with
// confidence 0.
func (l *Lexicon) Classify(_ context.Context, clauseText string) (contract.ClauseType, float64, error) {
	lower := strings.ToLower(clauseText)

	best := contract.Unknown
	bestHits, secondHits := 0, 0
	for _, ct := range contract.AllClauseTypes {
		hits := 0
		for _, cue := range lexicon[ct] {
			if strings.Contains(lower, cue) {
				hits++
			}
		}
		switch {
		case hits > bestHits:
			secondHits = bestHits
			bestHits = hits
			best = ct
		case hits > secondHits:
			secondHits = hits
		}
	}

	if bestHits == 0 {
		return contract.Unknown, 0, nil
	}

	// 1 hit → 0.4, each further hit +0.15 up to 0.85; a close
	// runner-up costs 0.1.
	conf := 0.4 + 0.15*float64(bestHits-1)
	if conf > 0.85 {
		conf = 0.85
	}
	if secondHits > 0 && bestHits-secondHits <= 1 {
		conf -= 0.1
	}
	return best, conf, nil
}
