package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// ResponseValidator checks the model's parsed output against the fixed
// result shape: all six dimensions present, scores in range, required
// sub-fields populated. A successful JSON parse alone is not enough.
type ResponseValidator struct {
	schema *jsonschema.Schema
}

func NewResponseValidator() (*ResponseValidator, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("roast-result.json", strings.NewReader(roastResultSchema)); err != nil {
		return nil, fmt.Errorf("failed to add schema resource: %w", err)
	}

	schema, err := compiler.Compile("roast-result.json")
	if err != nil {
		return nil, fmt.Errorf("failed to compile result schema: %w", err)
	}

	return &ResponseValidator{schema: schema}, nil
}

func (v *ResponseValidator) Validate(data []byte) error {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}

	if err := v.schema.Validate(doc); err != nil {
		return fmt.Errorf("response does not match result schema: %w", err)
	}

	return nil
}

const roastResultSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["overallScore", "letterGrade", "verdict", "dimensions", "roasts", "fixes", "niceThing"],
  "properties": {
    "overallScore": {"type": "number", "minimum": 0, "maximum": 100},
    "letterGrade": {"type": "string", "minLength": 1},
    "verdict": {"type": "string", "minLength": 1},
    "dimensions": {
      "type": "object",
      "required": ["valuePropClarity", "pricingConfidence", "socialProof", "urgencyFomo", "competitorAwareness", "jargonDensity"],
      "properties": {
        "valuePropClarity": {"$ref": "#/$defs/dimension"},
        "pricingConfidence": {"$ref": "#/$defs/dimension"},
        "socialProof": {"$ref": "#/$defs/dimension"},
        "urgencyFomo": {"$ref": "#/$defs/dimension"},
        "competitorAwareness": {"$ref": "#/$defs/dimension"},
        "jargonDensity": {"$ref": "#/$defs/dimension"}
      }
    },
    "roasts": {
      "type": "array",
      "items": {"type": "string"}
    },
    "fixes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["before", "after", "explanation"],
        "properties": {
          "before": {"type": "string"},
          "after": {"type": "string"},
          "explanation": {"type": "string"}
        }
      }
    },
    "niceThing": {"type": "string"}
  },
  "$defs": {
    "dimension": {
      "type": "object",
      "required": ["score", "reasoning", "examples"],
      "properties": {
        "score": {"type": "number", "minimum": 1, "maximum": 10},
        "reasoning": {"type": "string"},
        "examples": {"type": "array", "items": {"type": "string"}}
      }
    }
  }
}`
