package risk

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/unbound-force/prodoc/internal/config"
	"github.com/unbound-force/prodoc/internal/contract"
)

func TestAggregate_SpecimenScore(t *testing.T) {
	cfg := config.Default()

	signals := []contract.Signal{
		{Kind: contract.MissingCriticalClause, Count: 4},
		{Kind: contract.LowConfidenceCriticalClause, Count: 6},
	}

	score, breakdown, warnings := Aggregate(signals, cfg)

	if score != 17.0 {
		t.Errorf("score = %v, want 17.0 (4*2.0 + 6*1.5)", score)
	}
	if len(warnings) != 0 {
		t.Errorf("unexpected warnings: %v", warnings)
	}

	want := []contract.Contribution{
		{Kind: contract.MissingCriticalClause, Count: 4, Weight: 2.0, Contribution: 8.0},
		{Kind: contract.LowConfidenceCriticalClause, Count: 6, Weight: 1.5, Contribution: 9.0},
	}
	if diff := cmp.Diff(want, breakdown); diff != "" {
		t.Errorf("breakdown mismatch (-want +got):\n%s", diff)
	}
}

func TestAggregate_BreakdownSumsToScore(t *testing.T) {
	cfg := config.Default()

	tests := [][]contract.Signal{
		nil,
		{{Kind: contract.MissingCriticalClause, Count: 1}},
		{
			{Kind: contract.OneSidedObligation, Count: 3},
			{Kind: contract.WeakTerminationRights, Count: 2},
			{Kind: contract.AmbiguousGrant, Count: 7},
		},
		{
			{Kind: contract.LowConfidenceCriticalClause, Count: 0},
			{Kind: contract.LongTermCommitment, Count: 5},
		},
	}

	for i, signals := range tests {
		score, breakdown, _ := Aggregate(signals, cfg)

		var sum float64
		for _, b := range breakdown {
			sum += b.Contribution
		}
		if contract.Round2(sum) != score {
			t.Errorf("case %d: breakdown sum %v != score %v", i, sum, score)
		}
		if len(breakdown) != len(signals) {
			t.Errorf("case %d: breakdown and signals not 1:1", i)
		}
	}
}

func TestAggregate_UnknownKindSoftFails(t *testing.T) {
	cfg := config.Default()

	signals := []contract.Signal{
		{Kind: contract.MissingCriticalClause, Count: 2},
		{Kind: contract.RiskKind("EXOTIC_RULE"), Count: 9},
	}

	score, breakdown, warnings := Aggregate(signals, cfg)

	if score != 4.0 {
		t.Errorf("score = %v, want 4.0 (unknown kind contributes 0)", score)
	}
	if len(breakdown) != 2 {
		t.Fatalf("breakdown length = %d, want 2 (unknown kinds stay in the audit trail)", len(breakdown))
	}
	if breakdown[1].Weight != 0 || breakdown[1].Contribution != 0 {
		t.Errorf("unknown kind contribution = %+v, want zero weight and contribution", breakdown[1])
	}

	if len(warnings) != 1 {
		t.Fatalf("warnings = %v, want exactly one", warnings)
	}
	if !strings.Contains(warnings[0], "EXOTIC_RULE") {
		t.Errorf("warning should name the unknown kind, got %q", warnings[0])
	}
}

func TestAggregate_Deterministic(t *testing.T) {
	cfg := config.Default()
	signals := []contract.Signal{
		{Kind: contract.MissingCriticalClause, Count: 3},
		{Kind: contract.AmbiguousGrant, Count: 2},
	}

	s1, b1, w1 := Aggregate(signals, cfg)
	s2, b2, w2 := Aggregate(signals, cfg)

	if s1 != s2 {
		t.Errorf("scores differ: %v vs %v", s1, s2)
	}
	if diff := cmp.Diff(b1, b2); diff != "" {
		t.Errorf("breakdowns differ:\n%s", diff)
	}
	if diff := cmp.Diff(w1, w2); diff != "" {
		t.Errorf("warnings differ:\n%s", diff)
	}
}

func TestClassifyDecision_Thresholds(t *testing.T) {
	thresholds := config.Default().Decision

	tests := []struct {
		score float64
		want  contract.Decision
	}{
		{0, contract.SafeToSign},
		{4.99, contract.SafeToSign},
		{5, contract.RequiresLegalReview}, // inclusive lower bound
		{14.99, contract.RequiresLegalReview},
		{15, contract.HighRisk}, // inclusive lower bound
		{17, contract.HighRisk},
		{100, contract.HighRisk},
	}

	for _, tt := range tests {
		if got := ClassifyDecision(tt.score, thresholds); got != tt.want {
			t.Errorf("ClassifyDecision(%v) = %s, want %s", tt.score, got, tt.want)
		}
	}
}

func TestClassifyDecision_Monotonic(t *testing.T) {
	thresholds := config.Default().Decision

	scores := []float64{0, 1, 4.99, 5, 7.5, 14.99, 15, 20, 50}
	prev := ClassifyDecision(scores[0], thresholds)
	for _, s := range scores[1:] {
		cur := ClassifyDecision(s, thresholds)
		if !cur.AtLeast(prev) {
			t.Errorf("decision regressed from %s to %s at score %v", prev, cur, s)
		}
		prev = cur
	}
}
