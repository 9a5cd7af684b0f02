package interview

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/neutrino09/intervu/internal/classify"
	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
	"github.com/neutrino09/intervu/internal/score"
)

func testBank(t *testing.T) *questionbank.Bank {
	t.Helper()
	return questionbank.New([]questionbank.Question{
		{ID: "e1", Topic: "excel", Prompt: "sum?", Level: questionbank.LevelEasy, Type: questionbank.TypeFormula, Expected: []string{"=SUM(A1:A10)"}},
		{ID: "m1", Topic: "excel", Prompt: "if?", Level: questionbank.LevelMedium, Type: questionbank.TypeFormula, Expected: []string{"=IF(A1>10,\"Yes\",\"No\")"}},
		{ID: "h1", Topic: "excel", Prompt: "vlookup?", Level: questionbank.LevelHard, Type: questionbank.TypeFreetext, Reference: "VLOOKUP searches the first column"},
	})
}

func testEngine(t *testing.T) *Engine {
	t.Helper()
	embedder := llm.NewMockEmbedder(nil)
	embedder.Fallback = []float64{1, 0}
	return New(testBank(t), classify.New(nil), score.New(embedder), 3)
}

func TestBeginClassifiesAndStarts(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")

	if err := e.Begin(context.Background(), s, "Priya", "I'm a beginner"); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if s.Phase != PhaseAsk {
		t.Errorf("Phase = %v, want PhaseAsk", s.Phase)
	}
	if s.ExperienceLevel != classify.Beginner {
		t.Errorf("ExperienceLevel = %q, want beginner", s.ExperienceLevel)
	}
	if s.Current == nil {
		t.Fatal("Current question not set")
	}
	if s.Current.Level != questionbank.LevelEasy {
		t.Errorf("starting level = %q, want easy for a beginner", s.Current.Level)
	}
	if len(s.Questions) != 3 {
		t.Errorf("sampled %d questions, want 3", len(s.Questions))
	}
}

func TestBeginRequiresIntroPhase(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")
	s.Phase = PhaseClosing
	if err := e.Begin(context.Background(), s, "Priya", "beginner"); err == nil {
		t.Error("Begin outside intro phase should fail")
	}
}

func TestBeginRequiresCandidateName(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")
	if err := e.Begin(context.Background(), s, "", "beginner"); err == nil {
		t.Error("Begin with empty candidate should fail")
	}
}

func TestBeginUnknownTopic(t *testing.T) {
	e := testEngine(t)
	s := NewSession("cooking")
	if err := e.Begin(context.Background(), s, "Priya", "beginner"); err == nil {
		t.Error("Begin with unknown topic should fail")
	}
}

func TestSubmitAnswerRecordsTranscript(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")
	if err := e.Begin(context.Background(), s, "Priya", "beginner"); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	got, err := e.SubmitAnswer(context.Background(), s, "=SUM(A1:A10)")
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if got != 1.0 {
		t.Errorf("score = %v, want 1.0", got)
	}
	if s.Phase != PhaseAcknowledge {
		t.Errorf("Phase = %v, want PhaseAcknowledge", s.Phase)
	}
	if len(s.AskedIDs) != 1 || len(s.Answers) != 1 || len(s.Scores) != 1 {
		t.Errorf("transcript lengths = %d/%d/%d, want 1/1/1",
			len(s.AskedIDs), len(s.Answers), len(s.Scores))
	}
	if s.AskedIDs[0] != "e1" {
		t.Errorf("AskedIDs[0] = %q, want e1", s.AskedIDs[0])
	}
	if s.LastScore != 1.0 {
		t.Errorf("LastScore = %v, want 1.0", s.LastScore)
	}
}

func TestFullSessionWalk(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")
	if err := e.Begin(context.Background(), s, "Priya", "beginner"); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// Answer every question. The transcript must stay aligned and never
	// repeat a question.
	seen := map[string]bool{}
	for s.Phase == PhaseAsk {
		if seen[s.Current.ID] {
			t.Fatalf("question %q asked twice", s.Current.ID)
		}
		seen[s.Current.ID] = true

		if _, err := e.SubmitAnswer(context.Background(), s, "an answer"); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if err := e.Advance(s); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if s.Phase != PhaseClosing {
		t.Fatalf("Phase = %v, want PhaseClosing", s.Phase)
	}
	if s.Current != nil {
		t.Error("Current should be nil in closing phase")
	}
	if len(s.AskedIDs) != 3 {
		t.Errorf("asked %d questions, want all 3", len(s.AskedIDs))
	}
	if len(s.Answers) != len(s.AskedIDs) || len(s.Scores) != len(s.AskedIDs) {
		t.Error("transcript slices out of alignment")
	}
}

func TestAdvanceAdaptsDifficulty(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")
	if err := e.Begin(context.Background(), s, "Priya", "beginner"); err != nil {
		t.Fatalf("Begin: %v", err)
	}

	// A perfect answer on the easy question should jump to the hard one.
	if _, err := e.SubmitAnswer(context.Background(), s, "=SUM(A1:A10)"); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if err := e.Advance(s); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if s.Current.Level != questionbank.LevelHard {
		t.Errorf("next level = %q, want hard after a perfect score", s.Current.Level)
	}
}

type stubReporter struct {
	text  string
	err   error
	calls int
}

func (r *stubReporter) Report(_ context.Context, _, _ string, _ []Exchange, _ time.Time) (string, error) {
	r.calls++
	return r.text, r.err
}

func TestGenerateReportCaches(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")
	s.Phase = PhaseClosing
	s.Candidate = "Priya"

	r := &stubReporter{text: "solid performance"}
	if err := e.GenerateReport(context.Background(), s, r); err != nil {
		t.Fatalf("GenerateReport: %v", err)
	}
	if s.Feedback != "solid performance" {
		t.Errorf("Feedback = %q", s.Feedback)
	}

	if err := e.GenerateReport(context.Background(), s, r); err != nil {
		t.Fatalf("GenerateReport (cached): %v", err)
	}
	if r.calls != 1 {
		t.Errorf("reporter called %d times, want 1", r.calls)
	}
}

func TestGenerateReportPropagatesError(t *testing.T) {
	e := testEngine(t)
	s := NewSession("excel")
	s.Phase = PhaseClosing

	r := &stubReporter{err: errors.New("provider down")}
	if err := e.GenerateReport(context.Background(), s, r); err == nil {
		t.Error("expected error from reporter")
	}
	if s.Feedback != "" {
		t.Errorf("Feedback = %q, want empty after failure", s.Feedback)
	}
}

func TestAverageScore(t *testing.T) {
	s := NewSession("excel")
	if got := s.AverageScore(); got != 0 {
		t.Errorf("AverageScore with no answers = %v, want 0", got)
	}
	s.Scores = []float64{1.0, 0.5, 0.0}
	if got := s.AverageScore(); got != 0.5 {
		t.Errorf("AverageScore = %v, want 0.5", got)
	}
}
