package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit int // max results (0 = unlimited)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a stored LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage per purpose.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage per served model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// CompletionEventData records a finished quiz cycle: the answers that were
// submitted and whether recommendation acquisition succeeded.
type CompletionEventData struct {
	CycleID string
	Answers string // JSON-encoded answer set
	Success bool
}

// AwardEventData records the profile award applied after a successful cycle.
type AwardEventData struct {
	CycleID    string
	Points     int
	Level      int
	BadgeAdded string // badge name, empty when the badge already existed
}

// EventRepo provides append and query access to session events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns a single LLM event by ID, or nil if not found.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates token usage grouped by request purpose.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage grouped by served model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)

	// AppendCompletion records a quiz completion attempt.
	AppendCompletion(ctx context.Context, data CompletionEventData) error

	// CompletionCount returns the number of successful quiz completions.
	CompletionCount(ctx context.Context) (int, error)

	// AppendAward records a profile award.
	AppendAward(ctx context.Context, data AwardEventData) error
}
