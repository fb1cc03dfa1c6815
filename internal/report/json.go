package report

import (
	"encoding/json"
	"io"

	"github.com/unbound-force/prodoc/internal/contract"
)

// JSONReport is the top-level JSON output structure.
type JSONReport struct {
	Version string                  `json:"version"`
	Result  contract.AnalysisResult `json:"result"`
}

// SchemaVersion is the version stamped into JSON output and the
// embedded schema.
const SchemaVersion = "0.1.0"

// WriteJSON writes an analysis result as formatted JSON to the
// writer.
func WriteJSON(w io.Writer, result contract.AnalysisResult) error {
	if result.Breakdown == nil {
		result.Breakdown = []contract.Contribution{}
	}
	if result.Highlights == nil {
		result.Highlights = []contract.Highlight{}
	}
	if result.Warnings == nil {
		result.Warnings = []string{}
	}

	report := JSONReport{
		Version: SchemaVersion,
		Result:  result,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
