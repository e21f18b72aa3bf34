package llm

import "context"

// Purpose labels recorded with each llm_request event. The app has one
// real caller today; the label keeps `pathfinder llm stats` meaningful if
// more ever appear.
const (
	PurposeRecommendations = "recommendations"
	purposeUnknown         = "unknown"
)

type purposeKeyType struct{}

var purposeKey purposeKeyType

// WithPurpose tags the context so the logging layer can attribute the call.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom reads the purpose tag, defaulting to "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey).(string); ok {
		return p
	}
	return purposeUnknown
}
