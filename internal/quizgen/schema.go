package quizgen

import "github.com/abhisek/quizforge/internal/llm"

// QuizTool is the tool schema handed to the LLM as the authoritative
// output contract. The model is instructed it must invoke this tool to
// answer, never respond as plain text.
var QuizTool = &llm.Tool{
	Name:        "generate_quiz_questions",
	Description: "Generate quiz questions based on the context provided.",
	InputSchema: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"questions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"question": map[string]any{
							"type":        "string",
							"description": "The question text",
						},
						"options": map[string]any{
							"type": "array",
							"items": map[string]any{
								"type": "string",
							},
							"minItems":    OptionCount,
							"maxItems":    OptionCount,
							"description": "4 option texts, without letter labels",
						},
						"answer": map[string]any{
							"type":        "string",
							"enum":        []any{"A", "B", "C", "D"},
							"description": "The correct option letter",
						},
						"explanation": map[string]any{
							"type":        "string",
							"description": "A brief explanation of why the answer is correct",
						},
					},
					"required": []any{"question", "options", "answer", "explanation"},
				},
			},
		},
		"required": []any{"questions"},
	},
}
