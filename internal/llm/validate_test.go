package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

func labelSchema() *Schema {
	return &Schema{
		Name:        "answer_label",
		Description: "A labeled answer",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"label": map[string]any{
					"type": "string",
					"enum": []any{"correct", "partial", "incorrect"},
				},
				"answer": map[string]any{"type": "string"},
			},
			"required":             []any{"label", "answer"},
			"additionalProperties": false,
		},
	}
}

func TestValidateResponseAcceptsConformingJSON(t *testing.T) {
	raw := json.RawMessage(`{"label": "partial", "answer": "use a SUM"}`)
	if err := validateResponse(labelSchema(), raw); err != nil {
		t.Fatalf("validateResponse: %v", err)
	}
}

func TestValidateResponseRejectsEnumViolation(t *testing.T) {
	raw := json.RawMessage(`{"label": "wrong", "answer": "x"}`)
	err := validateResponse(labelSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
}

func TestValidateResponseRejectsMalformedJSON(t *testing.T) {
	raw := json.RawMessage(`{"label": `)
	err := validateResponse(labelSchema(), raw)
	var invResp *ErrInvalidResponse
	if !errors.As(err, &invResp) {
		t.Fatalf("expected ErrInvalidResponse, got %v", err)
	}
	if string(invResp.Content) != string(raw) {
		t.Errorf("Content not preserved in error")
	}
}

func TestValidateResponseNilSchema(t *testing.T) {
	if err := validateResponse(nil, json.RawMessage(`not even json`)); err != nil {
		t.Fatalf("nil schema should skip validation, got %v", err)
	}
}
