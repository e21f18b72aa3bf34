package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/futurelink/pathfinder/internal/store"
)

// loggingProvider decorates a Provider so every call lands in the event
// log, success or not. It is the only decorator in the chain; there is no
// retry layer because the recommendation call is issued at most once.
type loggingProvider struct {
	inner    Provider
	provider string
	events   store.EventRepo
}

// WithLogging wraps a provider with llm_request event recording under the
// given provider name.
func WithLogging(p Provider, provider string, events store.EventRepo) Provider {
	return &loggingProvider{inner: p, provider: provider, events: events}
}

func (l *loggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := l.inner.Generate(ctx, req)

	event := store.LLMRequestEventData{
		Provider:    l.provider,
		Model:       l.inner.ModelID(),
		Purpose:     PurposeFrom(ctx),
		LatencyMs:   time.Since(start).Milliseconds(),
		Success:     err == nil,
		RequestBody: requestTranscript(req),
	}
	if resp != nil {
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
		event.ResponseBody = string(resp.Content)
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}

	// A logging failure must not turn a good recommendation into an error.
	if l.events != nil {
		if logErr := l.events.AppendLLMRequest(ctx, event); logErr != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record llm event: %v\n", logErr)
		}
	}

	return resp, err
}

func (l *loggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// requestTranscript renders the request the way `pathfinder llm view`
// shows it: system prompt, then each message, then the schema name and
// definition.
func requestTranscript(req Request) string {
	var b strings.Builder

	if req.System != "" {
		fmt.Fprintf(&b, "[system]\n%s\n\n", req.System)
	}
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s]\n%s\n\n", m.Role, m.Content)
	}
	if req.Schema != nil {
		if def, err := json.Marshal(req.Schema.Definition); err == nil {
			fmt.Fprintf(&b, "[schema: %s]\n%s\n", req.Schema.Name, def)
		}
	}
	return b.String()
}
