package bank

// fileSchema is the JSON Schema for the bank file format. Loaded banks are
// validated against it before any question-level checks run.
var fileSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"metadata": map[string]any{
			"type":        "object",
			"description": "Free-form key/value metadata (title, last_updated, ...)",
		},
		"categories": map[string]any{
			"type": "array",
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"name": map[string]any{
						"type":      "string",
						"minLength": 1,
					},
					"questions": map[string]any{
						"type": "array",
						"items": map[string]any{
							"type": "object",
							"properties": map[string]any{
								"id": map[string]any{
									"type":      "string",
									"minLength": 1,
								},
								"type": map[string]any{
									"type": "string",
									"enum": []any{"multiple_choice", "true_false", "case_vignette"},
								},
								"question":    map[string]any{"type": "string"},
								"answer":      map[string]any{"type": "string"},
								"explanation": map[string]any{"type": "string"},
								"difficulty": map[string]any{
									"type": "string",
									"enum": []any{"easy", "medium", "hard"},
								},
								"board_topic": map[string]any{"type": "string"},
								"choices": map[string]any{
									"type":                 "object",
									"additionalProperties": map[string]any{"type": "string"},
								},
								"clinical_stem": map[string]any{"type": "string"},
							},
							"required": []any{"id", "type", "question", "answer"},
						},
					},
				},
				"required": []any{"name", "questions"},
			},
		},
	},
	"required": []any{"categories"},
}
