// Package engine orchestrates the contract risk pipeline: segment,
// normalize, classify each clause through the classification port,
// detect risks, aggregate the score, decide, select evidence, and
// render the justification report.
//
// An Engine is a pure, synchronous computation over one contract per
// Analyze call. It holds no mutable state, so a single Engine may
// serve concurrent requests without locking as long as its
// Classifier is itself safe for concurrent use.
package engine

import (
	"context"
	"errors"
	"fmt"

	"github.com/unbound-force/prodoc/internal/classify"
	"github.com/unbound-force/prodoc/internal/config"
	"github.com/unbound-force/prodoc/internal/contract"
	"github.com/unbound-force/prodoc/internal/report"
	"github.com/unbound-force/prodoc/internal/risk"
	"github.com/unbound-force/prodoc/internal/segment"
)

// ErrNoClauses is returned when segmentation finds no usable
// content. Callers should present it as an empty-content condition,
// not a crash.
var ErrNoClauses = errors.New("no usable clauses found in contract text")

// Fallback summaries used when no clause-level evidence exists.
const (
	fallbackComplexSummary = "No critical risk signals detected. " +
		"However, due to the length and complexity of the contract, " +
		"a legal review is recommended."
	fallbackSafeSummary = "No significant legal risks detected. " +
		"Contract appears balanced and safe to proceed."
	fallbackReviewSummary = "Minor uncertainties detected. " +
		"A brief legal review is recommended before approval."
)

// fallbackSafeScore is the highest score the no-evidence branch
// still treats as safe.
const fallbackSafeScore = 5

// Engine runs the risk pipeline against a fixed configuration and
// classification port.
type Engine struct {
	cfg        *config.Config
	classifier classify.Classifier
}

// New constructs an Engine. The configuration is treated as
// read-only for the engine's lifetime.
func New(cfg *config.Config, classifier classify.Classifier) *Engine {
	return &Engine{cfg: cfg, classifier: classifier}
}

// Analyze runs the full pipeline over one contract. Clauses are
// classified sequentially in document order; clause order is
// preserved end to end. The classifier's failure for any clause
// aborts the request. Cancellation is the caller's concern via ctx.
func (e *Engine) Analyze(ctx context.Context, contractText, contractTitle string) (contract.AnalysisResult, error) {
	clauses, err := e.classifyClauses(ctx, contractText)
	if err != nil {
		return contract.AnalysisResult{}, err
	}

	signals := risk.Detect(clauses, e.cfg)
	score, breakdown, warnings := risk.Aggregate(signals, e.cfg)
	highlights := risk.SelectHighlights(clauses, e.cfg)

	decision, summary := e.decide(contractText, score, highlights)

	result := contract.AnalysisResult{
		ContractTitle:       contractTitle,
		Decision:            decision,
		RiskScore:           score,
		Breakdown:           breakdown,
		Highlights:          highlights,
		Summary:             summary,
		JustificationReport: report.Justification(contractTitle, decision, score, breakdown),
		Warnings:            warnings,
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}
	return result, nil
}

// classifyClauses segments, normalizes, and labels the contract
// text. Returns ErrNoClauses when nothing survives segmentation.
func (e *Engine) classifyClauses(ctx context.Context, contractText string) ([]contract.Clause, error) {
	fragments := segment.Split(contractText)
	if len(fragments) == 0 {
		return nil, ErrNoClauses
	}

	clauses := segment.Normalize(fragments)
	for i := range clauses {
		label, confidence, err := e.classifier.Classify(ctx, clauses[i].Text)
		if err != nil {
			return nil, fmt.Errorf("classifying clause %s: %w", clauses[i].ID, err)
		}
		clauses[i].Label = label
		clauses[i].Confidence = confidence
	}
	return clauses, nil
}

// decide applies the decision logic. With clause-level evidence the
// score thresholds rule. Without evidence the decision is capped
// below HIGH_RISK regardless of score: a nonzero score from the
// missing-clause rule alone must not escalate to the top bucket
// without anything to show the user.
func (e *Engine) decide(contractText string, score float64, highlights []contract.Highlight) (contract.Decision, string) {
	if len(highlights) == 0 {
		switch {
		case risk.Complex(contractText, e.cfg.Heuristics):
			return contract.RequiresLegalReview, fallbackComplexSummary
		case score <= fallbackSafeScore:
			return contract.SafeToSign, fallbackSafeSummary
		default:
			return contract.RequiresLegalReview, fallbackReviewSummary
		}
	}

	decision := risk.ClassifyDecision(score, e.cfg.Decision)
	return decision, report.Summary(decision)
}
