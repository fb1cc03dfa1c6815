package main

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/unbound-force/prodoc/internal/contract"
	"github.com/unbound-force/prodoc/internal/engine"
	"github.com/unbound-force/prodoc/internal/report"
	"github.com/unbound-force/prodoc/internal/scan"
)

// batchParams holds the parsed flags for the batch command.
type batchParams struct {
	dir        string
	include    []string
	exclude    []string
	configPath string
	classifier string
	llmModel   string
	llmBaseURL string
	stdout     io.Writer
}

// runBatch triages every contract file under a directory and prints
// one line per contract plus a decision tally. Files that segment to
// nothing are reported and skipped; a classifier failure aborts the
// run.
func runBatch(ctx context.Context, p batchParams) error {
	cfg, err := loadConfig(p.configPath, -1, -1)
	if err != nil {
		return err
	}

	classifier, err := newClassifier(p.classifier, p.llmModel, p.llmBaseURL)
	if err != nil {
		return err
	}

	files, err := scan.Scan(p.dir, scan.Options{
		Include: p.include,
		Exclude: p.exclude,
	})
	if err != nil {
		return fmt.Errorf("scanning %s: %w", p.dir, err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no contract files found under %s", p.dir)
	}

	logger.Info("batch triage", "dir", p.dir, "contracts", len(files))

	s := report.DefaultStyles()
	eng := engine.New(cfg, classifier)
	tally := map[contract.Decision]int{}
	skipped := 0

	for _, f := range files {
		result, err := eng.Analyze(ctx, f.Content, f.Path)
		if err != nil {
			if errors.Is(err, engine.ErrNoClauses) {
				skipped++
				fmt.Fprintf(p.stdout, "%-40s  %s\n", f.Path, s.Muted.Render("no usable clauses, skipped"))
				continue
			}
			return fmt.Errorf("analyzing %s: %w", f.Path, err)
		}

		tally[result.Decision]++
		fmt.Fprintf(p.stdout, "%-40s  %-22s  score %s\n",
			f.Path,
			s.DecisionStyle(string(result.Decision)).Render(string(result.Decision)),
			formatScore(result.RiskScore))
	}

	fmt.Fprintln(p.stdout)
	fmt.Fprintf(p.stdout, "%d contract(s): %d safe, %d review, %d high-risk, %d skipped\n",
		len(files),
		tally[contract.SafeToSign],
		tally[contract.RequiresLegalReview],
		tally[contract.HighRisk],
		skipped)

	return nil
}

// formatScore renders a score without trailing zeros.
func formatScore(v float64) string {
	return fmt.Sprintf("%v", v)
}

func newBatchCmd() *cobra.Command {
	var p batchParams

	cmd := &cobra.Command{
		Use:   "batch [dir]",
		Short: "Triage every contract file under a directory",
		Long: `Scan a directory for plain-text contract files (.txt), run the
risk pipeline over each, and print a one-line triage summary per
contract with a final decision tally.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.dir = args[0]
			p.stdout = cmd.OutOrStdout()
			return runBatch(cmd.Context(), p)
		},
	}

	cmd.Flags().StringSliceVar(&p.include, "include", nil,
		"glob patterns restricting the scan (e.g. 'nda_*.txt')")
	cmd.Flags().StringSliceVar(&p.exclude, "exclude", nil,
		"glob patterns to skip (e.g. 'archive/**')")
	cmd.Flags().StringVar(&p.configPath, "config", "",
		"path to a .prodoc.yaml config file")
	cmd.Flags().StringVar(&p.classifier, "classifier", "lexicon",
		"clause classifier: lexicon or llm")
	cmd.Flags().StringVar(&p.llmModel, "llm-model", "",
		"model name for the llm classifier")
	cmd.Flags().StringVar(&p.llmBaseURL, "llm-base-url", "",
		"API base URL for the llm classifier")

	return cmd
}
