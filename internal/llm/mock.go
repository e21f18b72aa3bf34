package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is one canned reply for the MockProvider. Either Content
// (with optional Usage) or Err is consumed per Generate call.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned responses in order and keeps every request
// it saw. Tests assert on Calls to pin down exactly what a service sent,
// and on CallCount to prove the recommendation call is never retried.
type MockProvider struct {
	mu    sync.Mutex
	queue []MockResponse
	next  int

	Calls []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{queue: responses}
}

// Generate records the request and replays the next canned response. An
// exhausted queue behaves like an unreachable provider.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if m.next >= len(m.queue) {
		return nil, &ErrProviderUnavailable{}
	}
	canned := m.queue[m.next]
	m.next++

	if canned.Err != nil {
		return nil, canned.Err
	}
	return &Response{
		Content:    canned.Content,
		Usage:      canned.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse queues another canned response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queue = append(m.queue, resp)
}

// CallCount reports how many Generate calls were made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
