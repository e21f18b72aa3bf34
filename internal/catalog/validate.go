package catalog

import (
	"fmt"
	"strings"
)

// Validate checks the structural invariants of a question set:
// IDs and answer keys are unique, every key maps to a known Answers field,
// and options are present exactly on choice-typed questions.
func Validate(qs []Question) error {
	var problems []string

	known := make(map[string]bool, len(Keys()))
	for _, k := range Keys() {
		known[k] = true
	}

	seenIDs := make(map[string]bool)
	seenKeys := make(map[string]bool)

	for _, q := range qs {
		if q.ID == "" {
			problems = append(problems, "question with empty ID")
		}
		if seenIDs[q.ID] {
			problems = append(problems, fmt.Sprintf("duplicate question ID %q", q.ID))
		}
		seenIDs[q.ID] = true

		if !known[q.Key] {
			problems = append(problems, fmt.Sprintf("question %s: unknown answer key %q", q.ID, q.Key))
		}
		if seenKeys[q.Key] {
			problems = append(problems, fmt.Sprintf("question %s: duplicate answer key %q", q.ID, q.Key))
		}
		seenKeys[q.Key] = true

		if q.Prompt == "" {
			problems = append(problems, fmt.Sprintf("question %s: empty prompt", q.ID))
		}

		switch q.Type {
		case TypeImageChoice, TypeTextChoice:
			if len(q.Options) < 2 {
				problems = append(problems, fmt.Sprintf("question %s: choice question needs at least 2 options", q.ID))
			}
			seenValues := make(map[string]bool)
			for _, opt := range q.Options {
				if opt.Value == "" {
					problems = append(problems, fmt.Sprintf("question %s: option with empty value", q.ID))
				}
				if seenValues[opt.Value] {
					problems = append(problems, fmt.Sprintf("question %s: duplicate option value %q", q.ID, opt.Value))
				}
				seenValues[opt.Value] = true
			}
		case TypeFreeText:
			if len(q.Options) != 0 {
				problems = append(problems, fmt.Sprintf("question %s: free-text question must not declare options", q.ID))
			}
		default:
			problems = append(problems, fmt.Sprintf("question %s: unknown type %q", q.ID, q.Type))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid catalog:\n  %s", strings.Join(problems, "\n  "))
	}
	return nil
}
