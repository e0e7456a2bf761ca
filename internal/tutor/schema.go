package tutor

import "github.com/abhisek/cloudquest/internal/llm"

// QuizSchema defines the JSON schema for module quizzes.
var QuizSchema = &llm.Schema{
	Name:        "module-quiz",
	Description: "Scenario-based multiple-choice questions about an AWS module",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "A realistic scenario or troubleshooting question",
						},
						"options": map[string]any{
							"type":        "array",
							"description": "Answer choices, usually four",
							"items":       map[string]any{"type": "string"},
						},
						"correctIndex": map[string]any{
							"type":        "integer",
							"description": "Zero-based index of the correct option",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "Why the correct option is right",
						},
					},
					"required":             []any{"question", "options", "correctIndex", "explanation"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"questions"},
		"additionalProperties": false,
	},
}
