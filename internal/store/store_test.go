package store

import (
	"context"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so we skip journal_mode here. It is tested with file-based DBs.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestInterviewSaveAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.InterviewRepo()
	ctx := context.Background()

	records, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected empty store, got %d records", len(records))
	}

	first := InterviewData{
		SessionID:       "s-1",
		Candidate:       "Priya",
		Topic:           "excel",
		ExperienceLevel: "beginner",
		QuestionIDs:     []string{"e1", "m1"},
		Answers:         []string{"a", "b"},
		Scores:          []float64{1.0, 0.4},
		Feedback:        "good effort",
		ConductedAt:     time.Now().Add(-time.Hour),
	}
	second := InterviewData{
		SessionID:   "s-2",
		Candidate:   "Marcus",
		Topic:       "excel",
		QuestionIDs: []string{"h1"},
		Answers:     []string{"c"},
		Scores:      []float64{0.9},
		Feedback:    "strong",
		ConductedAt: time.Now(),
	}

	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save first: %v", err)
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save second: %v", err)
	}

	records, err = repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].SessionID != "s-2" || records[1].SessionID != "s-1" {
		t.Errorf("order = %q, %q; want s-2, s-1", records[0].SessionID, records[1].SessionID)
	}
	if got := records[1].Scores; len(got) != 2 || got[0] != 1.0 || got[1] != 0.4 {
		t.Errorf("scores round-trip = %v", got)
	}

	limited, err := repo.List(ctx, 1)
	if err != nil {
		t.Fatalf("List limited: %v", err)
	}
	if len(limited) != 1 || limited[0].SessionID != "s-2" {
		t.Errorf("limited list = %+v", limited)
	}
}

func TestInterviewSaveRejectsMissingFeedback(t *testing.T) {
	s := openTestStore(t)
	err := s.InterviewRepo().Save(context.Background(), InterviewData{
		SessionID:   "s-3",
		Candidate:   "Priya",
		Topic:       "excel",
		QuestionIDs: []string{"e1"},
		Answers:     []string{"a"},
		Scores:      []float64{1.0},
	})
	if err == nil {
		t.Error("expected error saving interview without feedback")
	}
}

func TestInterviewSaveRejectsMisalignedTranscript(t *testing.T) {
	s := openTestStore(t)
	err := s.InterviewRepo().Save(context.Background(), InterviewData{
		SessionID:   "s-4",
		Candidate:   "Priya",
		Topic:       "excel",
		QuestionIDs: []string{"e1", "m1"},
		Answers:     []string{"a"},
		Scores:      []float64{1.0},
		Feedback:    "ok",
	})
	if err == nil {
		t.Error("expected error for misaligned transcript")
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	events := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "acknowledge", InputTokens: 100, OutputTokens: 20, LatencyMs: 300, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "acknowledge", InputTokens: 120, OutputTokens: 25, LatencyMs: 500, Success: true},
		{Provider: "openai", Model: "text-embedding-3-small", Purpose: "embedding", InputTokens: 40, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "final_report", Success: false, ErrorMessage: "rate limited"},
	}
	for _, e := range events {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("QueryLLMEvents: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("got %d events, want 4", len(all))
	}
	// Newest first.
	if all[0].Purpose != "final_report" {
		t.Errorf("first event purpose = %q, want final_report", all[0].Purpose)
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "acknowledge"})
	if err != nil {
		t.Fatalf("QueryLLMEvents filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("got %d acknowledge events, want 2", len(filtered))
	}

	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("GetLLMEvent: %v", err)
	}
	if got == nil || got.ErrorMessage != "rate limited" {
		t.Errorf("GetLLMEvent = %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("GetLLMEvent missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for missing event")
	}
}

func TestLLMUsageAggregates(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	seed := []LLMRequestEventData{
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "acknowledge", InputTokens: 100, OutputTokens: 20, LatencyMs: 200, Success: true},
		{Provider: "openai", Model: "gpt-4o-mini", Purpose: "acknowledge", InputTokens: 200, OutputTokens: 40, LatencyMs: 400, Success: true},
		{Provider: "openai", Model: "text-embedding-3-small", Purpose: "embedding", InputTokens: 50, LatencyMs: 100, Success: true},
	}
	for _, e := range seed {
		if err := repo.AppendLLMRequest(ctx, e); err != nil {
			t.Fatalf("AppendLLMRequest: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByPurpose: %v", err)
	}
	stats := map[string]LLMUsageStats{}
	for _, st := range byPurpose {
		stats[st.Purpose] = st
	}
	ack := stats["acknowledge"]
	if ack.Calls != 2 || ack.InputTokens != 300 || ack.OutputTokens != 60 {
		t.Errorf("acknowledge stats = %+v", ack)
	}
	if ack.AvgLatencyMs != 300 {
		t.Errorf("acknowledge avg latency = %d, want 300", ack.AvgLatencyMs)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("LLMUsageByModel: %v", err)
	}
	models := map[string]LLMModelUsage{}
	for _, mu := range byModel {
		models[mu.Model] = mu
	}
	if models["gpt-4o-mini"].InputTokens != 300 {
		t.Errorf("model usage = %+v", models["gpt-4o-mini"])
	}
}

func TestTrainingAppendAndList(t *testing.T) {
	s := openTestStore(t)
	repo := s.TrainingRepo()
	ctx := context.Background()

	examples := []TrainingExampleData{
		{QuestionID: "e1", Question: "What does SUM do?", Answer: "adds a range", Label: "correct"},
		{QuestionID: "e1", Question: "What does SUM do?", Answer: "something with cells", Label: "partial"},
		{QuestionID: "e1", Question: "What does SUM do?", Answer: "deletes rows", Label: "incorrect"},
	}
	for _, ex := range examples {
		if err := repo.Append(ctx, ex); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	records, err := repo.List(ctx, 0)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	// Newest first.
	if records[0].Label != "incorrect" {
		t.Errorf("first record label = %q, want incorrect", records[0].Label)
	}

	if err := repo.Append(ctx, TrainingExampleData{
		QuestionID: "e1", Question: "q", Answer: "a", Label: "bogus",
	}); err == nil {
		t.Error("expected enum error for unknown label")
	}
}
