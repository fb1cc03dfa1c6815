package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/unbound-force/prodoc/internal/classify"
	"github.com/unbound-force/prodoc/internal/config"
	"github.com/unbound-force/prodoc/internal/dataset"
	"github.com/unbound-force/prodoc/internal/engine"
	"github.com/unbound-force/prodoc/internal/report"
	"github.com/unbound-force/prodoc/internal/segment"
	"github.com/unbound-force/prodoc/internal/server"
)

// logger is the application-wide structured logger (writes to stderr).
var logger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
	ReportTimestamp: false,
})

// Set by build flags.
var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "prodoc",
		Short: "Prodoc is a contract risk triage tool",
		Long: `Prodoc segments a contract into clauses, classifies each clause,
applies deterministic risk rules, and produces a triage decision
(approve / review / high-risk) with evidence and a justification
report.`,
		Version: version,
	}

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newBatchCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newDatasetCmd())
	root.AddCommand(newSchemaCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig loads the engine configuration, overlaying CLI
// threshold overrides on top of the file/defaults. A negative
// override means "no override".
func loadConfig(path string, requiresReview, highRisk float64) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	if requiresReview >= 0 {
		cfg.Decision.RequiresReview = requiresReview
	}
	if highRisk >= 0 {
		cfg.Decision.HighRisk = highRisk
	}
	if requiresReview >= 0 || highRisk >= 0 {
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid threshold flags: %w", err)
		}
	}

	return cfg, nil
}

// newClassifier builds the classification port named by the
// --classifier flag.
func newClassifier(name, model, baseURL string) (classify.Classifier, error) {
	switch name {
	case "lexicon":
		return classify.NewLexicon(), nil
	case "llm":
		return classify.NewLLM(classify.LLMOptions{
			Model:   model,
			BaseURL: baseURL,
		})
	default:
		return nil, fmt.Errorf("invalid classifier %q: must be 'lexicon' or 'llm'", name)
	}
}

// analyzeParams holds the parsed flags for the analyze command.
type analyzeParams struct {
	file           string
	title          string
	format         string
	configPath     string
	classifier     string
	llmModel       string
	llmBaseURL     string
	requiresReview float64
	highRisk       float64
	interactive    bool
	stdout         io.Writer
}

// runAnalyze is the extracted, testable body of the analyze command.
func runAnalyze(ctx context.Context, p analyzeParams) error {
	if p.format != "text" && p.format != "json" {
		return fmt.Errorf("invalid format %q: must be 'text' or 'json'", p.format)
	}

	cfg, err := loadConfig(p.configPath, p.requiresReview, p.highRisk)
	if err != nil {
		return err
	}

	classifier, err := newClassifier(p.classifier, p.llmModel, p.llmBaseURL)
	if err != nil {
		return err
	}

	data, err := os.ReadFile(p.file)
	if err != nil {
		return fmt.Errorf("reading contract file: %w", err)
	}

	title := p.title
	if title == "" {
		title = p.file
	}

	logger.Info("analyzing contract", "file", p.file, "classifier", p.classifier)
	eng := engine.New(cfg, classifier)
	result, err := eng.Analyze(ctx, string(data), title)
	if err != nil {
		if errors.Is(err, engine.ErrNoClauses) {
			return fmt.Errorf("%s: no usable contract content", p.file)
		}
		return err
	}

	logger.Info("analysis complete",
		"decision", result.Decision,
		"score", result.RiskScore,
		"highlights", len(result.Highlights))

	if p.interactive {
		return runInteractiveResult(result)
	}

	switch p.format {
	case "json":
		return report.WriteJSON(p.stdout, result)
	default:
		return report.WriteText(p.stdout, result)
	}
}

func newAnalyzeCmd() *cobra.Command {
	var p analyzeParams

	cmd := &cobra.Command{
		Use:   "analyze [file]",
		Short: "Analyze a contract text file",
		Long: `Analyze a plain-text contract file and report the triage decision,
risk score, clause-level evidence, and justification report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p.file = args[0]
			p.stdout = os.Stdout
			return runAnalyze(cmd.Context(), p)
		},
	}

	cmd.Flags().StringVar(&p.title, "title", "",
		"contract title (default: file name)")
	cmd.Flags().StringVar(&p.format, "format", "text",
		"output format: text or json")
	cmd.Flags().StringVar(&p.configPath, "config", "",
		"path to a .prodoc.yaml config file")
	cmd.Flags().StringVar(&p.classifier, "classifier", "lexicon",
		"clause classifier: lexicon or llm")
	cmd.Flags().StringVar(&p.llmModel, "llm-model", "",
		"model name for the llm classifier")
	cmd.Flags().StringVar(&p.llmBaseURL, "llm-base-url", "",
		"API base URL for the llm classifier")
	cmd.Flags().Float64Var(&p.requiresReview, "requires-review-threshold", -1,
		"override the REQUIRES_LEGAL_REVIEW score threshold (-1 = config value)")
	cmd.Flags().Float64Var(&p.highRisk, "high-risk-threshold", -1,
		"override the HIGH_RISK score threshold (-1 = config value)")
	cmd.Flags().BoolVarP(&p.interactive, "interactive", "i", false,
		"launch interactive TUI for browsing the result")

	return cmd
}

// serveParams holds the parsed flags for the serve command.
type serveParams struct {
	host       string
	port       int
	configPath string
	classifier string
	llmModel   string
	llmBaseURL string
}

// runServe is the extracted body of the serve command. It blocks
// until ctx is canceled or the server fails.
func runServe(ctx context.Context, p serveParams) error {
	cfg, err := loadConfig(p.configPath, -1, -1)
	if err != nil {
		return err
	}

	classifier, err := newClassifier(p.classifier, p.llmModel, p.llmBaseURL)
	if err != nil {
		return err
	}

	srv, err := server.New(engine.New(cfg, classifier), logger, server.Config{
		Host: p.host,
		Port: p.port,
	})
	if err != nil {
		return err
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Start() }()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		return srv.Shutdown(context.Background())
	}
}

func newServeCmd() *cobra.Command {
	var p serveParams

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the analysis API over HTTP",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, p)
		},
	}

	cmd.Flags().StringVar(&p.host, "host", "localhost", "listen host")
	cmd.Flags().IntVar(&p.port, "port", 8080, "listen port")
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

// datasetParams holds the parsed flags for the dataset command.
type datasetParams struct {
	path   string
	index  int
	stdout io.Writer
}

// runDataset prints segmentation statistics for one contract of a
// CUAD-style corpus. Offline experimentation only.
func runDataset(p datasetParams) error {
	corpus, err := dataset.Load(p.path)
	if err != nil {
		return err
	}
	if p.index < 0 || p.index >= len(corpus.Data) {
		return fmt.Errorf("contract index %d out of range: corpus has %d contracts",
			p.index, len(corpus.Data))
	}

	c := corpus.Data[p.index]
	text := c.FullText()
	fragments := segment.Split(text)
	clauses := segment.Normalize(fragments)

	fmt.Fprintf(p.stdout, "Contract: %s\n", c.Title)
	fmt.Fprintf(p.stdout, "Words: %d\n", len(strings.Fields(text)))
	fmt.Fprintf(p.stdout, "Clauses: %d\n", len(clauses))
	for _, cl := range clauses {
		preview := cl.Text
		if len(preview) > 80 {
			preview = preview[:77] + "..."
		}
		preview = strings.Join(strings.Fields(preview), " ")
		fmt.Fprintf(p.stdout, "  %s  %s\n", cl.ID, preview)
	}
	return nil
}

func newDatasetCmd() *cobra.Command {
	var index int

	cmd := &cobra.Command{
		Use:   "dataset [corpus.json]",
		Short: "Inspect a CUAD-style contract corpus",
		Long: `Load a CUAD-style JSON corpus and show how one of its contracts
segments into clauses. Useful for tuning segmentation offline.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDataset(datasetParams{
				path:   args[0],
				index:  index,
				stdout: os.Stdout,
			})
		},
	}

	cmd.Flags().IntVar(&index, "index", 0, "contract index within the corpus")

	return cmd
}

func newSchemaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema for prodoc analysis output",
		Long: `Print the JSON Schema (Draft 2020-12) that documents the
structure of prodoc analyze --format=json output. Useful for
validating output or generating client types.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), report.Schema)
			return err
		},
	}
}
