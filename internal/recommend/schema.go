package recommend

import "github.com/futurelink/pathfinder/internal/llm"

// RecommendationsSchema defines the JSON schema for recommendation
// responses. Every field is required on the wire; a response missing any
// of them is a contract violation and is treated as a failure.
var RecommendationsSchema = &llm.Schema{
	Name:        "career-recommendations",
	Description: "Career, education, and activity recommendations derived from a self-assessment quiz",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"summary": map[string]any{
				"type":        "string",
				"description": "Encouraging overall summary of the assessment, in Thai",
			},
			"careerSuggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"requiredSkills": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"name", "description", "requiredSkills"},
					"additionalProperties": false,
				},
			},
			"educationSuggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"major":       map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
						"relatedCareers": map[string]any{
							"type":  "array",
							"items": map[string]any{"type": "string"},
						},
					},
					"required":             []any{"major", "description", "relatedCareers"},
					"additionalProperties": false,
				},
			},
			"activitySuggestions": map[string]any{
				"type": "array",
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"type":        map[string]any{"type": "string"},
						"name":        map[string]any{"type": "string"},
						"description": map[string]any{"type": "string"},
					},
					"required":             []any{"type", "name", "description"},
					"additionalProperties": false,
				},
			},
			"userInsights": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"aptitudes": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"interests": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
					"likes": map[string]any{
						"type":  "array",
						"items": map[string]any{"type": "string"},
					},
				},
				"required":             []any{"aptitudes", "interests", "likes"},
				"additionalProperties": false,
			},
		},
		"required": []any{
			"summary", "careerSuggestions", "educationSuggestions",
			"activitySuggestions", "userInsights",
		},
		"additionalProperties": false,
	},
}
