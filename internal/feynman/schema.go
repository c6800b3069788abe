package feynman

import "github.com/abhisek/lexis/internal/llm"

// GradeSchema is the reply shape the LLM grader asks for.
var GradeSchema = &llm.Schema{
	Name:        "feynman-grade",
	Description: "A 0-5 rating of how well a learner explained a vocabulary word, with short feedback",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"confidence": map[string]any{
				"type":        "integer",
				"description": "0 = wrong or empty, 3 = mostly right but vague, 5 = clear, accurate and well used in the example",
				"minimum":     0,
				"maximum":     5,
			},
			"feedback": map[string]any{
				"type":        "string",
				"description": "One or two sentences addressed to the learner",
			},
		},
		"required":             []any{"confidence", "feedback"},
		"additionalProperties": false,
	},
}
