// Package recommend turns a completed answer set into structured career
// guidance via a single LLM call. It owns the wire contract: the response
// must match the Recommendations shape exactly or the call fails.
package recommend

// CareerSuggestion is one recommended career path.
type CareerSuggestion struct {
	Name           string   `json:"name"`
	Description    string   `json:"description"`
	RequiredSkills []string `json:"requiredSkills"`
}

// EducationSuggestion is one recommended field of study.
type EducationSuggestion struct {
	Major          string   `json:"major"`
	Description    string   `json:"description"`
	RelatedCareers []string `json:"relatedCareers"`
}

// ActivitySuggestion is one recommended development activity.
type ActivitySuggestion struct {
	Type        string `json:"type"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// UserInsights are the traits the model derived from the answers. Each
// completed quiz overwrites the profile's insight lists with these.
type UserInsights struct {
	Aptitudes []string `json:"aptitudes"`
	Interests []string `json:"interests"`
	Likes     []string `json:"likes"`
}

// Recommendations is the full recommendation payload. Immutable once
// received; owned by the results view and discarded on restart.
type Recommendations struct {
	Summary              string                `json:"summary"`
	CareerSuggestions    []CareerSuggestion    `json:"careerSuggestions"`
	EducationSuggestions []EducationSuggestion `json:"educationSuggestions"`
	ActivitySuggestions  []ActivitySuggestion  `json:"activitySuggestions"`
	UserInsights         UserInsights          `json:"userInsights"`
}
