package store

import (
	"context"
	"testing"
)

func TestAppendAndQueryLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			RequestID:    "req",
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "reframe",
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("got %d events, want 3", len(events))
	}

	// Newest first.
	if events[0].InputTokens != 102 {
		t.Errorf("first event input tokens = %d, want 102", events[0].InputTokens)
	}
}

func TestQueryLLMEventsLimitAndPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	purposes := []string{"reframe", "speech", "reframe"}
	for _, p := range purposes {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider: "mock", Model: "mock", Purpose: p, Success: true,
		})
		if err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "reframe"})
	if err != nil {
		t.Fatalf("query by purpose: %v", err)
	}
	if len(events) != 2 {
		t.Errorf("got %d reframe events, want 2", len(events))
	}

	events, err = repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query with limit: %v", err)
	}
	if len(events) != 1 {
		t.Errorf("got %d events with limit 1, want 1", len(events))
	}
}

func TestGetLLMEvent(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID:    "abc",
		Provider:     "gemini",
		Model:        "gemini-2.5-flash",
		Purpose:      "reframe",
		Success:      false,
		ErrorMessage: "rate limited",
		RequestBody:  "[user]\nhello",
	})
	if err != nil {
		t.Fatalf("append: %v", err)
	}

	e, err := repo.GetLLMEvent(ctx, 1)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if e == nil {
		t.Fatal("expected event, got nil")
	}
	if e.ErrorMessage != "rate limited" {
		t.Errorf("error message = %q", e.ErrorMessage)
	}
	if e.Success {
		t.Error("expected success=false")
	}

	missing, err := repo.GetLLMEvent(ctx, 99)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageByPurpose(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "mock", Purpose: "reframe", InputTokens: 100, OutputTokens: 40, LatencyMs: 20, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "reframe", InputTokens: 200, OutputTokens: 60, LatencyMs: 40, Success: true},
		{Provider: "mock", Model: "mock", Purpose: "speech", InputTokens: 10, OutputTokens: 0, LatencyMs: 5, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stats, want 2", len(stats))
	}

	// Sorted by purpose: reframe, speech.
	if stats[0].Purpose != "reframe" || stats[0].Calls != 2 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[0].InputTokens != 300 || stats[0].OutputTokens != 100 {
		t.Errorf("reframe tokens = %d/%d, want 300/100", stats[0].InputTokens, stats[0].OutputTokens)
	}
	if stats[0].AvgLatencyMs != 30 {
		t.Errorf("avg latency = %d, want 30", stats[0].AvgLatencyMs)
	}
	if stats[1].Purpose != "speech" || stats[1].Calls != 1 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}

func TestLLMUsageByModel(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "reframe", InputTokens: 100, OutputTokens: 40, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash", Purpose: "reframe", InputTokens: 50, OutputTokens: 10, Success: true},
		{Provider: "gemini", Model: "gemini-2.5-flash-preview-tts", Purpose: "speech", InputTokens: 20, OutputTokens: 0, Success: true},
	}
	for _, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	stats, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("got %d stats, want 2", len(stats))
	}

	// Sorted by model name.
	if stats[0].Model != "gemini-2.5-flash" || stats[0].Calls != 2 {
		t.Errorf("stats[0] = %+v", stats[0])
	}
	if stats[0].InputTokens != 150 || stats[0].OutputTokens != 50 {
		t.Errorf("flash tokens = %d/%d, want 150/50", stats[0].InputTokens, stats[0].OutputTokens)
	}
	if stats[1].Model != "gemini-2.5-flash-preview-tts" || stats[1].Calls != 1 {
		t.Errorf("stats[1] = %+v", stats[1])
	}
}
