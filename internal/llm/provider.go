// Package llm abstracts the hosted model APIs behind one Provider
// interface so the recommendation service does not care which vendor is
// configured. Every provider speaks the same structured-output contract:
// a Request with a Schema comes back as validated JSON or a typed error.
package llm

import (
	"context"
	"encoding/json"
)

// Provider is implemented by each vendor client and by the mock.
type Provider interface {
	// Generate issues one completion. When req.Schema is set the returned
	// Content is JSON validated against it.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID reports the configured model identifier.
	ModelID() string
}

// Request is a single completion request. The app's only production use
// is single-turn: one user message carrying the quiz answers.
type Request struct {
	// System sets the model's role. For this app, the career counselor
	// persona and the Thai-output instruction.
	System string

	// Messages is the turn list, oldest first.
	Messages []Message

	// Schema, when set, demands structured JSON output conforming to it.
	Schema *Schema

	// MaxTokens caps the response length.
	MaxTokens int

	// Temperature in [0,1]; zero means the provider default.
	Temperature float64
}

// Message is one conversation turn.
type Message struct {
	Role    Role
	Content string
}

// Role identifies the author of a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Schema names and defines the JSON shape a structured request expects.
type Schema struct {
	// Name is a stable kebab-case identifier, also the compiled-schema
	// cache key.
	Name string

	// Description is sent to the model to steer generation.
	Description string

	// Definition is a JSON Schema document as a Go map.
	Definition map[string]any
}

// Response is a completed generation.
type Response struct {
	// Content is validated JSON when the request carried a Schema,
	// otherwise the raw text.
	Content json.RawMessage

	// Usage reports token counts for the event log and cost estimates.
	Usage Usage

	// Model is the model that actually served the call, which can be more
	// specific than the configured ID.
	Model string

	// StopReason is normalized to "end" or "max_tokens".
	StopReason string
}

// Usage is the token accounting for one call.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
