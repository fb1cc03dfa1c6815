package report

// Schema is the JSON Schema (Draft 2020-12) for the prodoc analysis
// JSON output. It documents the structure returned by WriteJSON.
const Schema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "$id": "https://github.com/unbound-force/prodoc/analysis-report.schema.json",
  "title": "Prodoc Analysis Report",
  "description": "Output schema for prodoc analyze --format=json",
  "type": "object",
  "required": ["version", "result"],
  "properties": {
    "version": {
      "type": "string",
      "description": "Schema version (semver)"
    },
    "result": { "$ref": "#/$defs/AnalysisResult" }
  },
  "$defs": {
    "AnalysisResult": {
      "type": "object",
      "required": [
        "contract_title", "decision", "risk_score",
        "risks", "highlights", "summary",
        "justification_report", "warnings"
      ],
      "properties": {
        "contract_title": {
          "type": "string",
          "description": "Title supplied by the caller"
        },
        "decision": {
          "type": "string",
          "enum": ["SAFE_TO_SIGN", "REQUIRES_LEGAL_REVIEW", "HIGH_RISK"]
        },
        "risk_score": {
          "type": "number",
          "minimum": 0,
          "description": "Aggregated weighted score, two decimals"
        },
        "risks": {
          "type": "array",
          "items": { "$ref": "#/$defs/Contribution" }
        },
        "highlights": {
          "type": "array",
          "items": { "$ref": "#/$defs/Highlight" }
        },
        "summary": {
          "type": "string",
          "description": "One-paragraph decision summary"
        },
        "justification_report": {
          "type": "string",
          "description": "Full rendered justification document"
        },
        "warnings": {
          "type": "array",
          "items": { "type": "string" },
          "description": "Non-fatal diagnostics from the run"
        }
      }
    },
    "Contribution": {
      "type": "object",
      "required": ["risk_id", "count", "weight", "contribution"],
      "properties": {
        "risk_id": {
          "type": "string",
          "enum": [
            "MISSING_CRITICAL_CLAUSE",
            "LOW_CONFIDENCE_CRITICAL_CLAUSE",
            "ONE_SIDED_OBLIGATION",
            "WEAK_TERMINATION_RIGHTS",
            "LONG_TERM_COMMITMENT",
            "AMBIGUOUS_GRANT"
          ]
        },
        "count": { "type": "integer", "minimum": 0 },
        "weight": { "type": "number", "minimum": 0 },
        "contribution": { "type": "number", "minimum": 0 }
      }
    },
    "Highlight": {
      "type": "object",
      "required": ["clause_id", "risk_type", "label", "confidence", "text"],
      "properties": {
        "clause_id": {
          "type": "string",
          "pattern": "^CL-[0-9]{3,}$"
        },
        "risk_type": {
          "type": "string",
          "const": "LOW_CONFIDENCE_CRITICAL_CLAUSE"
        },
        "label": { "type": "string" },
        "confidence": {
          "type": "number",
          "minimum": 0,
          "maximum": 1
        },
        "text": {
          "type": "string",
          "maxLength": 600,
          "description": "First 600 bytes of the clause text"
        }
      }
    }
  }
}`
