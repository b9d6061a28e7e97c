package llm

import (
	"testing"
)

func TestGeminiModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"gemini-flash", "gemini-2.0-flash"},
		{"gemini-pro", "gemini-2.0-pro"},
		{"gemini-2.0-flash", "gemini-2.0-flash"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, geminiModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"question": map[string]any{"type": "string"},
			"answer":   map[string]any{"type": "string", "enum": []any{"A", "B", "C", "D"}},
			"options": map[string]any{
				"type":     "array",
				"items":    map[string]any{"type": "string"},
				"minItems": 4,
				"maxItems": 4,
			},
		},
		"required": []any{"question", "answer"},
	}

	schema := buildGeminiSchema(def)

	if schema.Type != "OBJECT" {
		t.Fatalf("expected OBJECT type, got %s", schema.Type)
	}
	if len(schema.Properties) != 3 {
		t.Fatalf("expected 3 properties, got %d", len(schema.Properties))
	}
	if schema.Properties["question"].Type != "STRING" {
		t.Fatalf("expected STRING for question, got %s", schema.Properties["question"].Type)
	}
	if len(schema.Properties["answer"].Enum) != 4 {
		t.Fatalf("expected 4 enum values, got %d", len(schema.Properties["answer"].Enum))
	}
	opts := schema.Properties["options"]
	if opts.Type != "ARRAY" {
		t.Fatalf("expected ARRAY for options, got %s", opts.Type)
	}
	if opts.Items.Type != "STRING" {
		t.Fatalf("expected STRING for options items, got %s", opts.Items.Type)
	}
	if opts.MinItems == nil || *opts.MinItems != 4 {
		t.Fatalf("expected minItems 4, got %v", opts.MinItems)
	}
	if opts.MaxItems == nil || *opts.MaxItems != 4 {
		t.Fatalf("expected maxItems 4, got %v", opts.MaxItems)
	}
	if len(schema.Required) != 2 {
		t.Fatalf("expected 2 required fields, got %d", len(schema.Required))
	}
}
