package questionbank

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// bankSchemaDef is the JSON Schema a question bank file must conform to.
var bankSchemaDef = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items": map[string]any{
		"type": "object",
		"properties": map[string]any{
			"id":     map[string]any{"type": "string", "minLength": 1},
			"topic":  map[string]any{"type": "string", "minLength": 1},
			"prompt": map[string]any{"type": "string", "minLength": 1},
			"level": map[string]any{
				"type": "string",
				"enum": []any{"easy", "medium", "hard"},
			},
			"type": map[string]any{
				"type": "string",
				"enum": []any{"formula", "freetext"},
			},
			"expected": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
			"reference": map[string]any{"type": "string"},
		},
		"required":             []any{"id", "topic", "prompt", "level", "type"},
		"additionalProperties": false,
	},
}

var (
	bankSchemaOnce sync.Once
	bankSchema     *jsonschema.Schema
	bankSchemaErr  error
)

// validateBank checks raw JSON against the bank schema.
func validateBank(data []byte) error {
	bankSchemaOnce.Do(compileBankSchema)
	if bankSchemaErr != nil {
		return fmt.Errorf("compile bank schema: %w", bankSchemaErr)
	}

	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	if err := bankSchema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compileBankSchema() {
	defBytes, err := json.Marshal(bankSchemaDef)
	if err != nil {
		bankSchemaErr = err
		return
	}
	var defParsed any
	if err := json.Unmarshal(defBytes, &defParsed); err != nil {
		bankSchemaErr = err
		return
	}

	c := jsonschema.NewCompiler()
	const url = "schema://question-bank.json"
	if err := c.AddResource(url, defParsed); err != nil {
		bankSchemaErr = err
		return
	}
	bankSchema, bankSchemaErr = c.Compile(url)
}
