package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unbound-force/prodoc/internal/contract"
)

func TestDefault_IsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default() does not validate: %v", err)
	}
}

func TestDefault_Tables(t *testing.T) {
	cfg := Default()

	if cfg.Confidence.Low != 0.5 {
		t.Errorf("confidence.low = %v, want 0.5", cfg.Confidence.Low)
	}
	if cfg.Decision.RequiresReview != 5 || cfg.Decision.HighRisk != 15 {
		t.Errorf("decision thresholds = %v/%v, want 5/15",
			cfg.Decision.RequiresReview, cfg.Decision.HighRisk)
	}
	if w, ok := cfg.Weight(contract.MissingCriticalClause); !ok || w != 2.0 {
		t.Errorf("weight(MISSING_CRITICAL_CLAUSE) = %v, %v; want 2.0, true", w, ok)
	}
	if w, ok := cfg.Weight(contract.LowConfidenceCriticalClause); !ok || w != 1.5 {
		t.Errorf("weight(LOW_CONFIDENCE_CRITICAL_CLAUSE) = %v, %v; want 1.5, true", w, ok)
	}

	// The canonical strength list includes the newer entries the
	// older in-pipeline variant lacked.
	joined := strings.Join(cfg.Heuristics.StrengthKeywords, "|")
	for _, kw := range []string{"termination", "confidential", "each party"} {
		if !strings.Contains(joined, kw) {
			t.Errorf("strength keywords missing %q", kw)
		}
	}
}

func TestWeight_UnknownKind(t *testing.T) {
	cfg := Default()
	w, ok := cfg.Weight(contract.RiskKind("NOT_A_RISK"))
	if ok {
		t.Error("unknown kind reported as known")
	}
	if w != 0 {
		t.Errorf("unknown kind weight = %v, want 0", w)
	}
}

func TestCriticalSet(t *testing.T) {
	cfg := Default()
	set := cfg.CriticalSet()

	if len(set) != len(cfg.CriticalClauseTypes) {
		t.Fatalf("set has %d entries, want %d", len(set), len(cfg.CriticalClauseTypes))
	}
	if !set[contract.GoverningLaw] {
		t.Error("Governing Law should be critical by default")
	}
	if set[contract.PaymentTerms] {
		t.Error("Payment Terms should not be critical by default")
	}
}

func TestLoad_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") error: %v", err)
	}
	if cfg.Decision.HighRisk != 15 {
		t.Errorf("high_risk = %v, want default 15", cfg.Decision.HighRisk)
	}
}

func TestLoad_FileOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".prodoc.yaml")
	content := []byte(`confidence:
  low: 0.6
decision:
  requires_review: 4
  high_risk: 12
risk_weights:
  MISSING_CRITICAL_CLAUSE: 3.0
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("writing temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}

	if cfg.Confidence.Low != 0.6 {
		t.Errorf("confidence.low = %v, want 0.6", cfg.Confidence.Low)
	}
	if cfg.Decision.RequiresReview != 4 || cfg.Decision.HighRisk != 12 {
		t.Errorf("decision thresholds = %v/%v, want 4/12",
			cfg.Decision.RequiresReview, cfg.Decision.HighRisk)
	}
	if w, _ := cfg.Weight(contract.MissingCriticalClause); w != 3.0 {
		t.Errorf("overridden weight = %v, want 3.0", w)
	}
	// Untouched fields keep their defaults.
	if cfg.Heuristics.ComplexityWordCount != 1200 {
		t.Errorf("complexity_word_count = %d, want default 1200",
			cfg.Heuristics.ComplexityWordCount)
	}
}

func TestLoad_MissingFileFails(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoad_MalformedFileFails(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".prodoc.yaml")
	if err := os.WriteFile(path, []byte("{not yaml"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for malformed config file")
	}
}

func TestLoad_InvertedThresholdsRejected(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".prodoc.yaml")
	content := []byte(`decision:
  requires_review: 20
  high_risk: 10
`)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for inverted thresholds")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error should name the config file, got: %s", err)
	}
}

func TestValidate_Failures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty critical set", func(c *Config) { c.CriticalClauseTypes = nil }},
		{"zero low threshold", func(c *Config) { c.Confidence.Low = 0 }},
		{"low threshold above one", func(c *Config) { c.Confidence.Low = 1.5 }},
		{"negative weight", func(c *Config) {
			c.RiskWeights[contract.AmbiguousGrant] = -1
		}},
		{"equal decision thresholds", func(c *Config) {
			c.Decision.RequiresReview = 10
			c.Decision.HighRisk = 10
		}},
		{"zero strength word count", func(c *Config) { c.Heuristics.StrengthWordCount = 0 }},
		{"zero keyword hits", func(c *Config) { c.Heuristics.StrengthKeywordHits = 0 }},
		{"zero complexity count", func(c *Config) { c.Heuristics.ComplexityWordCount = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error, got nil")
			}
		})
	}
}
