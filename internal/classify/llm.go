package classify

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/unbound-force/prodoc/internal/contract"
)

// LLMOptions configures the LLM-backed classifier.
type LLMOptions struct {
	// Model is the model name passed to the provider. Empty uses
	// the provider default.
	Model string

	// Token is the API token. Empty falls back to the provider's
	// environment variable.
	Token string

	// BaseURL overrides the API endpoint, for OpenAI-compatible
	// local servers.
	BaseURL string
}

// LLM classifies clauses by prompting a chat model through
// langchaingo. One clause per call; the engine's sequential
// invocation contract applies.
type LLM struct {
	model llms.Model
}

// NewLLM constructs the LLM classifier.
func NewLLM(opts LLMOptions) (*LLM, error) {
	var oo []openai.Option
	if opts.Model != "" {
		oo = append(oo, openai.WithModel(opts.Model))
	}
	if opts.Token != "" {
		oo = append(oo, openai.WithToken(opts.Token))
	}
	if opts.BaseURL != "" {
		oo = append(oo, openai.WithBaseURL(opts.BaseURL))
	}
	model, err := openai.New(oo...)
	if err != nil {
		return nil, fmt.Errorf("creating llm client: %w", err)
	}
	return &LLM{model: model}, nil
}

// promptTemplate asks for a single machine-parseable line. The label
// list is interpolated so the model cannot invent categories.
const promptTemplate = `You label clauses from legal contracts.
Reply with exactly one line of the form LABEL|CONFIDENCE where LABEL
is one of: %s, or Unknown, and CONFIDENCE is a number between 0 and 1.

Clause:
%s`

// Classify prompts the model for a label and confidence. A response
// that cannot be parsed is an error; the engine treats classifier
// errors as fatal for the request.
func (l *LLM) Classify(ctx context.Context, clauseText string) (contract.ClauseType, float64, error) {
	labels := make([]string, len(contract.AllClauseTypes))
	for i, t := range contract.AllClauseTypes {
		labels[i] = string(t)
	}
	prompt := fmt.Sprintf(promptTemplate, strings.Join(labels, ", "), clauseText)

	out, err := llms.GenerateFromSinglePrompt(ctx, l.model, prompt, llms.WithTemperature(0))
	if err != nil {
		return contract.Unknown, 0, fmt.Errorf("llm classification: %w", err)
	}

	return parseLabelLine(out)
}

// parseLabelLine parses "LABEL|CONFIDENCE" from the first non-empty
// response line.
func parseLabelLine(out string) (contract.ClauseType, float64, error) {
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		label, confStr, ok := strings.Cut(line, "|")
		if !ok {
			break
		}
		conf, err := strconv.ParseFloat(strings.TrimSpace(confStr), 64)
		if err != nil {
			return contract.Unknown, 0, fmt.Errorf("llm response: bad confidence %q", confStr)
		}
		if conf < 0 {
			conf = 0
		}
		if conf > 1 {
			conf = 1
		}
		label = strings.TrimSpace(label)
		for _, t := range contract.AllClauseTypes {
			if strings.EqualFold(label, string(t)) {
				return t, conf, nil
			}
		}
		return contract.Unknown, conf, nil
	}
	return contract.Unknown, 0, fmt.Errorf("llm response: no LABEL|CONFIDENCE line in %q", out)
}
