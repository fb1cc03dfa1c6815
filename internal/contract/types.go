// Package contract defines the clause and risk data model shared by
// the prodoc analysis pipeline: clause types, risk kinds, detection
// signals, score contributions, highlights, and the final decision.
package contract

import (
	"fmt"
	"math"
	"strconv"
)

// ClauseType is the category assigned to a clause by the classifier.
type ClauseType string

// Clause type labels. The set mirrors the categories the upstream
// classification model was trained on; Unknown is the fallback for
// anything the model cannot place.
const (
	GoverningLaw          ClauseType = "Governing Law"
	Termination           ClauseType = "Termination"
	Indemnification       ClauseType = "Indemnification"
	Confidentiality       ClauseType = "Confidentiality"
	LimitationOfLiability ClauseType = "Limitation of Liability"
	LicenseGrant          ClauseType = "License Grant"
	PaymentTerms          ClauseType = "Payment Terms"
	Assignment            ClauseType = "Assignment"
	Unknown               ClauseType = "Unknown"
)

// AllClauseTypes lists every concrete clause type (excluding Unknown)
// in a stable order.
var AllClauseTypes = []ClauseType{
	GoverningLaw,
	Termination,
	Indemnification,
	Confidentiality,
	LimitationOfLiability,
	LicenseGrant,
	PaymentTerms,
	Assignment,
}

// Clause is one contiguous span of contract text, identified and
// ordered by the normalizer and labeled by the classification port.
// A Clause is immutable once classified and owned by the analysis
// run that created it.
type Clause struct {
	// ID is the stable clause identifier, "CL-NNN", 1-based and
	// zero-padded to three digits.
	ID string `json:"clause_id"`

	// Order is the 1-based position of the clause in document
	// order. Always matches the numeric part of ID.
	Order int `json:"order"`

	// Text is the full clause text as segmented.
	Text string `json:"text"`

	// Label is the clause type assigned by the classifier.
	Label ClauseType `json:"label"`

	// Confidence is the classifier's self-reported probability in
	// [0, 1] that Label is correct.
	Confidence float64 `json:"confidence"`
}

// ClauseID formats a 1-based sequence number as a clause identifier.
func ClauseID(order int) string {
	return fmt.Sprintf("CL-%03d", order)
}

// RiskKind names a rule in the risk catalog.
type RiskKind string

// Risk catalog.
const (
	MissingCriticalClause       RiskKind = "MISSING_CRITICAL_CLAUSE"
	LowConfidenceCriticalClause RiskKind = "LOW_CONFIDENCE_CRITICAL_CLAUSE"
	OneSidedObligation          RiskKind = "ONE_SIDED_OBLIGATION"
	WeakTerminationRights       RiskKind = "WEAK_TERMINATION_RIGHTS"
	LongTermCommitment          RiskKind = "LONG_TERM_COMMITMENT"
	AmbiguousGrant              RiskKind = "AMBIGUOUS_GRANT"
)

// Severity is the qualitative severity class of a risk kind.
type Severity string

// Severity classes.
const (
	SeverityHigh   Severity = "HIGH"
	SeverityMedium Severity = "MEDIUM"
)

// RiskInfo describes one entry of the risk catalog.
type RiskInfo struct {
	Kind        RiskKind `json:"id"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
}

// Catalog enumerates every risk kind the detectors can produce, in a
// stable order. Weights are configured separately; this table is
// descriptive only.
var Catalog = []RiskInfo{
	{MissingCriticalClause, "A critical legal clause is missing from the contract", SeverityHigh},
	{LowConfidenceCriticalClause, "A critical clause exists but was classified with low confidence", SeverityMedium},
	{OneSidedObligation, "Obligations appear to be heavily skewed toward one party", SeverityHigh},
	{LongTermCommitment, "The contract term is unusually long or restrictive", SeverityMedium},
	{WeakTerminationRights, "Termination rights are missing or unfavorable", SeverityHigh},
	{AmbiguousGrant, "License or grant language is broad or unclear", SeverityMedium},
}

// Signal is one raw detector finding: a risk kind with the number of
// occurrences that triggered it. A rule either fires once with a
// count or does not appear at all.
type Signal struct {
	Kind  RiskKind `json:"id"`
	Count int      `json:"count"`
}

// Contribution is the aggregator's audit record for one signal. The
// contributions in a breakdown sum to the total risk score (modulo
// rounding to two decimals).
type Contribution struct {
	Kind         RiskKind `json:"risk_id"`
	Count        int      `json:"count"`
	Weight       float64  `json:"weight"`
	Contribution float64  `json:"contribution"`
}

// HighlightRiskType is the risk type attached to clause-level
// evidence. Only low-confidence critical clauses produce per-clause
// evidence today.
const HighlightRiskType = "LOW_CONFIDENCE_CRITICAL_CLAUSE"

// HighlightTextLimit caps the clause text carried in a highlight, in
// bytes. Truncation is exact; no ellipsis is appended.
const HighlightTextLimit = 600

// Highlight is a user-visible piece of evidence backing the decision:
// a specific critical clause whose classification was too uncertain
// to trust.
type Highlight struct {
	ClauseID   string     `json:"clause_id"`
	RiskType   string     `json:"risk_type"`
	Label      ClauseType `json:"label"`
	Confidence float64    `json:"confidence"`
	Text       string     `json:"text"`
}

// Decision is the final triage outcome for a contract.
type Decision string

// Decision outcomes, ordered by severity.
const (
	SafeToSign          Decision = "SAFE_TO_SIGN"
	RequiresLegalReview Decision = "REQUIRES_LEGAL_REVIEW"
	HighRisk            Decision = "HIGH_RISK"
)

// severityRank orders decisions SAFE < REVIEW < HIGH.
var severityRank = map[Decision]int{
	SafeToSign:          0,
	RequiresLegalReview: 1,
	HighRisk:            2,
}

// Rank returns the severity rank of the decision (0 = safest). An
// unrecognized decision ranks as 0.
func (d Decision) Rank() int {
	return severityRank[d]
}

// AtLeast reports whether d is at least as severe as other.
func (d Decision) AtLeast(other Decision) bool {
	return d.Rank() >= other.Rank()
}

// AnalysisResult is the complete engine output for one contract.
type AnalysisResult struct {
	// ContractTitle echoes the title the caller supplied.
	ContractTitle string `json:"contract_title"`

	// Decision is the triage outcome.
	Decision Decision `json:"decision"`

	// RiskScore is the aggregated weighted score, rounded to two
	// decimals.
	RiskScore float64 `json:"risk_score"`

	// Breakdown is the per-signal contribution audit trail, in
	// detector order.
	Breakdown []Contribution `json:"risks"`

	// Highlights is the clause-level evidence, in clause order.
	Highlights []Highlight `json:"highlights"`

	// Summary is the one-paragraph template text keyed by the
	// decision branch.
	Summary string `json:"summary"`

	// JustificationReport is the full rendered report document.
	JustificationReport string `json:"justification_report"`

	// Warnings carries non-fatal diagnostics from the run, such as
	// risk kinds with no configured weight. Always non-nil so JSON
	// marshals as [] rather than null.
	Warnings []string `json:"warnings"`
}

// Round2 rounds to two decimal places, the precision of risk scores.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to three decimal places, the precision of highlight
// confidences. Goes through decimal formatting so the stored value
// matches what the report displays.
func Round3(v float64) float64 {
	r, _ := strconv.ParseFloat(strconv.FormatFloat(v, 'f', 3, 64), 64)
	return r
}
