package coach

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/neutrino09/intervu/internal/interview"
	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
)

func TestAcknowledge(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Nice, thanks for walking me through that."})
	c := New(mock)

	got, err := c.Acknowledge(context.Background(), "What does SUM do?", "It adds numbers")
	if err != nil {
		t.Fatalf("Acknowledge: %v", err)
	}
	if got == "" {
		t.Error("empty acknowledgement")
	}

	req := mock.Calls[0]
	if req.Temperature != 0.6 {
		t.Errorf("temperature = %v, want 0.6", req.Temperature)
	}
	if !strings.Contains(req.User, "It adds numbers") {
		t.Error("answer missing from prompt")
	}
}

func TestTip(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Mention the range argument next time."})
	c := New(mock)

	got, err := c.Tip(context.Background(), "it looks stuff up", "VLOOKUP searches the first column of a range")
	if err != nil {
		t.Fatalf("Tip: %v", err)
	}
	if got == "" {
		t.Error("empty tip")
	}

	req := mock.Calls[0]
	if req.Temperature != 0.5 {
		t.Errorf("temperature = %v, want 0.5", req.Temperature)
	}
	if !strings.Contains(req.User, "VLOOKUP searches") {
		t.Error("reference missing from prompt")
	}
}

func TestReport(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "Strengths: ..."})
	c := New(mock)

	transcript := []interview.Exchange{
		{
			Question: questionbank.Question{ID: "e1", Prompt: "What does SUM do?"},
			Answer:   "adds numbers",
			Score:    1.0,
		},
		{
			Question: questionbank.Question{ID: "h1", Prompt: "Explain VLOOKUP"},
			Answer:   "no idea",
			Score:    0.1,
		},
	}
	date := time.Date(2026, time.March, 14, 0, 0, 0, 0, time.UTC)

	got, err := c.Report(context.Background(), "Priya", "excel", transcript, date)
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if got == "" {
		t.Error("empty report")
	}

	req := mock.Calls[0]
	if req.Temperature != 0.4 {
		t.Errorf("temperature = %v, want 0.4", req.Temperature)
	}
	for _, want := range []string{"Priya", "excel", "March 14, 2026", "What does SUM do?", "Score: 1.00", "Score: 0.10"} {
		if !strings.Contains(req.User, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestReportPropagatesProviderError(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	c := New(mock)

	_, err := c.Report(context.Background(), "Priya", "excel", nil, time.Now())
	if err == nil {
		t.Error("expected provider error to propagate")
	}
}
