package qgen

import "github.com/abhisek/quizdeck/internal/llm"

// QuestionSchema defines the JSON schema for LLM question drafting
// responses. It mirrors the bank question format minus the ID, which is
// assigned locally.
var QuestionSchema = &llm.Schema{
	Name:        "quiz-question",
	Description: "A single psychiatry board-review quiz question with answer and explanation",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"type": map[string]any{
				"type":        "string",
				"enum":        []any{"multiple_choice", "true_false", "case_vignette"},
				"description": "The question shape",
			},
			"question": map[string]any{
				"type":        "string",
				"description": "The question stem shown on the slide",
			},
			"clinical_stem": map[string]any{
				"type":        "string",
				"description": "The clinical case presentation. Non-empty for case_vignette, empty otherwise.",
			},
			"choices": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"A": map[string]any{"type": "string"},
					"B": map[string]any{"type": "string"},
					"C": map[string]any{"type": "string"},
					"D": map[string]any{"type": "string"},
				},
				"additionalProperties": false,
				"description":          "Exactly four options A-D for choice-bearing types. Empty object for true_false.",
			},
			"answer": map[string]any{
				"type":        "string",
				"description": "The correct answer: a choice label (A-D) or \"true\"/\"false\"",
			},
			"explanation": map[string]any{
				"type":        "string",
				"description": "Teaching-point explanation shown on the reveal slide",
			},
			"difficulty": map[string]any{
				"type":        "string",
				"enum":        []any{"easy", "medium", "hard"},
				"description": "Difficulty level",
			},
			"board_topic": map[string]any{
				"type":        "string",
				"description": "Short exam-topic label for the slide header",
			},
		},
		"required": []any{
			"type", "question", "clinical_stem", "choices",
			"answer", "explanation", "difficulty", "board_topic",
		},
		"additionalProperties": false,
	},
}
