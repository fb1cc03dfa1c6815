// Package dataset loads CUAD-style contract corpora for offline
// experimentation with the risk pipeline. Not used on the request
// path.
package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Corpus is a CUAD-style contract collection.
type Corpus struct {
	Data []Contract `json:"data"`
}

// Contract is one contract in the corpus.
type Contract struct {
	Title      string      `json:"title"`
	Paragraphs []Paragraph `json:"paragraphs"`
}

// Paragraph is one extracted text block of a contract.
type Paragraph struct {
	Context string `json:"context"`
}

// Load reads a corpus from a JSON file.
func Load(path string) (*Corpus, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading corpus %s: %w", path, err)
	}

	var corpus Corpus
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("parsing corpus %s: %w", path, err)
	}
	if len(corpus.Data) == 0 {
		return nil, fmt.Errorf("corpus %s contains no contracts", path)
	}
	return &corpus, nil
}

// FullText joins a contract's non-empty paragraph texts with blank
// lines, in corpus order. This is the text handed to the engine.
func (c Contract) FullText() string {
	var parts []string
	for _, p := range c.Paragraphs {
		if t := strings.TrimSpace(p.Context); t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, "\n\n")
}
