package recommend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/futurelink/pathfinder/internal/catalog"
	"github.com/futurelink/pathfinder/internal/llm"
)

// ErrIncompleteAnswers is returned when Generate is called before every
// question has been answered. Completion and submission are the same
// event, so this indicates a caller bug.
var ErrIncompleteAnswers = errors.New("answers are incomplete")

// Config bounds the generation request.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns generation defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}

// Service issues the recommendation call. One call per quiz completion,
// never retried automatically.
type Service struct {
	provider llm.Provider
	cfg      Config
}

// NewService creates a recommendation service.
func NewService(provider llm.Provider, cfg Config) *Service {
	return &Service{provider: provider, cfg: cfg}
}

// Generate sends the completed answers to the LLM and decodes the
// structured response. Any failure, including a response that does not
// satisfy the Recommendations shape, is returned as an error with no
// partial result.
func (s *Service) Generate(ctx context.Context, answers catalog.Answers) (*Recommendations, error) {
	if !answers.Complete() {
		return nil, ErrIncompleteAnswers
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeRecommendations)

	req := llm.Request{
		System: systemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(answers)},
		},
		Schema:      RecommendationsSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("generate recommendations: %w", err)
	}

	var rec Recommendations
	if err := json.Unmarshal(resp.Content, &rec); err != nil {
		return nil, fmt.Errorf("parse recommendations response: %w", err)
	}

	if err := checkShape(&rec); err != nil {
		return nil, fmt.Errorf("malformed recommendations: %w", err)
	}

	normalize(&rec)
	return &rec, nil
}

// checkShape enforces the parts of the contract the JSON schema cannot:
// a non-empty summary. The suggestion and insight lists may be empty but
// are normalized to non-nil so callers can range freely.
func checkShape(rec *Recommendations) error {
	if rec.Summary == "" {
		return errors.New("empty summary")
	}
	return nil
}

func normalize(rec *Recommendations) {
	if rec.CareerSuggestions == nil {
		rec.CareerSuggestions = []CareerSuggestion{}
	}
	if rec.EducationSuggestions == nil {
		rec.EducationSuggestions = []EducationSuggestion{}
	}
	if rec.ActivitySuggestions == nil {
		rec.ActivitySuggestions = []ActivitySuggestion{}
	}
	if rec.UserInsights.Aptitudes == nil {
		rec.UserInsights.Aptitudes = []string{}
	}
	if rec.UserInsights.Interests == nil {
		rec.UserInsights.Interests = []string{}
	}
	if rec.UserInsights.Likes == nil {
		rec.UserInsights.Likes = []string{}
	}
}
