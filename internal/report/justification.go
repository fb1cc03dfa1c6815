// Package report renders prodoc analysis results: the deterministic
// justification document, styled terminal output, and JSON with an
// embedded schema.
package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/unbound-force/prodoc/internal/contract"
)

// Decision-keyed summary templates shown when clause-level evidence
// backs the decision.
const (
	summarySafe   = "No significant legal risks detected. Contract appears safe to proceed."
	summaryReview = "Contract contains legal risks that require human legal review."
	summaryHigh   = "Contract presents high legal risk due to missing or unreliable critical clauses."
)

// Summary returns the one-paragraph summary template for a decision
// backed by clause-level evidence.
func Summary(decision contract.Decision) string {
	switch decision {
	case contract.SafeToSign:
		return summarySafe
	case contract.RequiresLegalReview:
		return summaryReview
	default:
		return summaryHigh
	}
}

// recommended actions keyed by decision.
const (
	actionSafe = "No immediate legal action is required. The contract appears " +
		"suitable for approval based on automated analysis."
	actionReview = "The contract should be reviewed by a legal professional to " +
		"address the identified risks before approval."
	actionHigh = "The contract presents high legal risk. Approval is not " +
		"recommended without significant legal review and remediation."
)

const disclaimer = "Note: This report is AI-assisted and intended to support, " +
	"not replace, human decision-making."

// Justification renders the fixed-structure decision justification
// document. Output is byte-identical for identical input: no
// timestamps, no locale variance, no randomness.
func Justification(title string, decision contract.Decision, score float64, breakdown []contract.Contribution) string {
	var b strings.Builder

	line := func(s string) {
		b.WriteString(s)
		b.WriteByte('\n')
	}

	line("DECISION JUSTIFICATION REPORT")
	line(strings.Repeat("=", 30))
	line("Contract: " + title)
	line("Final Decision: " + string(decision))
	line("")

	line("1. Risk Score Overview")
	line(strings.Repeat("-", 25))
	line(fmt.Sprintf(
		"The contract received a total risk score of %s. "+
			"This score is calculated by aggregating individual legal risk signals "+
			"identified during automated analysis.", formatNumber(score)))
	line("")

	line("2. Key Risk Factors")
	line(strings.Repeat("-", 25))
	if len(breakdown) == 0 {
		line("No significant legal risk factors were identified.")
	} else {
		for _, r := range breakdown {
			line(fmt.Sprintf("- Risk Type: %s, Occurrences: %d, Risk Contribution: %s",
				r.Kind, r.Count, formatNumber(r.Contribution)))
		}
	}
	line("")

	line("3. Evidence and Traceability")
	line(strings.Repeat("-", 25))
	line("Each risk listed above is traceable to specific contract clauses " +
		"and was identified using a combination of clause classification, " +
		"confidence assessment, and rule-based legal reasoning.")
	line("")

	line("4. Recommended Next Actions")
	line(strings.Repeat("-", 25))
	switch decision {
	case contract.SafeToSign:
		line(actionSafe)
	case contract.RequiresLegalReview:
		line(actionReview)
	default:
		line(actionHigh)
	}
	line("")

	b.WriteString(disclaimer)

	return b.String()
}

// formatNumber renders a score or contribution without trailing
// zeros ("17", "1.5", "0.25").
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
