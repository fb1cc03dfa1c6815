package risk

import (
	"strings"
	"testing"

	"github.com/unbound-force/prodoc/internal/config"
	"github.com/unbound-force/prodoc/internal/contract"
)

func TestSelectHighlights_Filter(t *testing.T) {
	cfg := config.Default()
	strongByLength := strings.TrimSpace(strings.Repeat("word ", 70))

	clauses := []contract.Clause{
		clause(1, contract.Termination, 0.1, weakText),       // selected
		clause(2, contract.PaymentTerms, 0.1, weakText),      // not critical
		clause(3, contract.Termination, 0.5, weakText),       // confidence at threshold
		clause(4, contract.Termination, 0.1, strongByLength), // structurally strong
		clause(5, contract.GoverningLaw, 0.2, weakText),      // selected
	}

	highlights := SelectHighlights(clauses, cfg)

	if len(highlights) != 2 {
		t.Fatalf("got %d highlights, want 2: %v", len(highlights), highlights)
	}
	if highlights[0].ClauseID != "CL-001" || highlights[1].ClauseID != "CL-005" {
		t.Errorf("clause order not preserved: %s, %s",
			highlights[0].ClauseID, highlights[1].ClauseID)
	}

	critical := cfg.CriticalSet()
	for _, h := range highlights {
		if !critical[h.Label] {
			t.Errorf("%s: label %s is not critical", h.ClauseID, h.Label)
		}
		if h.Confidence >= cfg.Confidence.Low {
			t.Errorf("%s: confidence %v not below threshold", h.ClauseID, h.Confidence)
		}
		if h.RiskType != contract.HighlightRiskType {
			t.Errorf("%s: risk type = %q", h.ClauseID, h.RiskType)
		}
	}
}

func TestSelectHighlights_MatchesLowConfidenceDetector(t *testing.T) {
	cfg := config.Default()

	clauses := []contract.Clause{
		clause(1, contract.Termination, 0.1, weakText),
		clause(2, contract.Indemnification, 0.3, weakText),
		clause(3, contract.Confidentiality, 0.9, weakText),
	}

	highlights := SelectHighlights(clauses, cfg)
	lowConf := LowConfidenceCritical(clauses, cfg)

	if len(highlights) != len(lowConf) {
		t.Fatalf("highlights (%d) and low-confidence clauses (%d) disagree",
			len(highlights), len(lowConf))
	}
	for i := range highlights {
		if highlights[i].ClauseID != lowConf[i].ID {
			t.Errorf("entry %d: highlight %s vs detector %s",
				i, highlights[i].ClauseID, lowConf[i].ID)
		}
	}
}

func TestSelectHighlights_TextTruncation(t *testing.T) {
	cfg := config.Default()

	// Over 600 bytes of weak text with a marker at position 599.
	long := strings.Repeat("x", 599) + "YZ" + strings.Repeat("x", 100)
	clauses := []contract.Clause{clause(1, contract.Termination, 0.1, long)}

	highlights := SelectHighlights(clauses, cfg)
	if len(highlights) != 1 {
		t.Fatalf("got %d highlights, want 1", len(highlights))
	}

	text := highlights[0].Text
	if len(text) != contract.HighlightTextLimit {
		t.Errorf("text length = %d, want exactly %d", len(text), contract.HighlightTextLimit)
	}
	if !strings.HasSuffix(text, "Y") {
		t.Error("truncation point is off: byte 600 should be the last one kept")
	}
	if strings.Contains(text, "...") {
		t.Error("no ellipsis marker should be appended")
	}
}

func TestSelectHighlights_ShortTextKept(t *testing.T) {
	cfg := config.Default()

	clauses := []contract.Clause{clause(1, contract.Termination, 0.1, weakText)}
	highlights := SelectHighlights(clauses, cfg)
	if len(highlights) != 1 {
		t.Fatalf("got %d highlights, want 1", len(highlights))
	}
	if highlights[0].Text != weakText {
		t.Error("text under the limit should be carried verbatim")
	}
}

func TestSelectHighlights_ConfidenceRounding(t *testing.T) {
	cfg := config.Default()

	clauses := []contract.Clause{clause(1, contract.Termination, 0.123456, weakText)}
	highlights := SelectHighlights(clauses, cfg)
	if len(highlights) != 1 {
		t.Fatal("expected one highlight")
	}
	if highlights[0].Confidence != 0.123 {
		t.Errorf("confidence = %v, want 0.123", highlights[0].Confidence)
	}
}

func TestSelectHighlights_Empty(t *testing.T) {
	cfg := config.Default()
	highlights := SelectHighlights(nil, cfg)
	if highlights == nil {
		t.Error("highlights should be an empty slice, not nil")
	}
	if len(highlights) != 0 {
		t.Errorf("got %d highlights, want 0", len(highlights))
	}
}
