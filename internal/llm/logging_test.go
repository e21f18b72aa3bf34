package llm

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/futurelink/pathfinder/internal/store"
)

func openTestRepo(t *testing.T) store.EventRepo {
	t.Helper()
	s, err := store.Open(store.MemoryDSN)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s.EventRepo()
}

func TestLoggingProvider_RecordsSuccess(t *testing.T) {
	repo := openTestRepo(t)
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"summary":"ok"}`),
		Usage:   Usage{InputTokens: 50, OutputTokens: 100},
	})

	p := WithLogging(mock, "mock", repo)
	ctx := WithPurpose(context.Background(), PurposeRecommendations)

	_, err := p.Generate(ctx, Request{
		System:   "sys",
		Messages: []Message{{Role: RoleUser, Content: "hello"}},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}

	e := events[0]
	if !e.Success {
		t.Error("success not recorded")
	}
	if e.Purpose != "recommendations" {
		t.Errorf("purpose = %q", e.Purpose)
	}
	if e.Provider != "mock" {
		t.Errorf("provider = %q, want mock", e.Provider)
	}
	if e.InputTokens != 50 || e.OutputTokens != 100 {
		t.Errorf("tokens = %d/%d", e.InputTokens, e.OutputTokens)
	}
	if e.ResponseBody != `{"summary":"ok"}` {
		t.Errorf("response body = %q", e.ResponseBody)
	}
}

func TestLoggingProvider_RecordsFailure(t *testing.T) {
	repo := openTestRepo(t)
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{}})

	p := WithLogging(mock, "mock", repo)
	if _, err := p.Generate(context.Background(), Request{}); err == nil {
		t.Fatal("expected error")
	}

	events, err := repo.QueryLLMEvents(context.Background(), store.QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("got %d events, want 1", len(events))
	}
	if events[0].Success {
		t.Error("failure recorded as success")
	}
	if events[0].ErrorMessage == "" {
		t.Error("error message not recorded")
	}
	if events[0].Purpose != "unknown" {
		t.Errorf("purpose = %q, want unknown", events[0].Purpose)
	}
}

func TestLoggingProvider_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, "mock", nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("Generate with nil repo: %v", err)
	}
}
