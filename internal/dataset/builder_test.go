package dataset

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
	"github.com/neutrino09/intervu/internal/store"
)

// memTrainingRepo is an in-memory TrainingRepo for tests.
type memTrainingRepo struct {
	rows []store.TrainingExampleData
}

func (m *memTrainingRepo) Append(_ context.Context, data store.TrainingExampleData) error {
	m.rows = append(m.rows, data)
	return nil
}

func (m *memTrainingRepo) List(_ context.Context, _ int) ([]store.TrainingExampleRecord, error) {
	return nil, nil
}

func answersJSON(t *testing.T) json.RawMessage {
	t.Helper()
	raw, err := json.Marshal(map[string]string{
		"correct":   "Use =SUM(A1:A10) to add the range.",
		"partial":   "You'd use some kind of SUM function.",
		"incorrect": "Just drag the cells together.",
	})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return raw
}

func TestBuildAll(t *testing.T) {
	bank := questionbank.New([]questionbank.Question{
		{ID: "e1", Topic: "excel", Prompt: "Sum A1:A10", Level: questionbank.LevelEasy, Type: questionbank.TypeFormula, Expected: []string{"=SUM(A1:A10)"}},
		{ID: "h1", Topic: "excel", Prompt: "Explain VLOOKUP", Level: questionbank.LevelHard, Type: questionbank.TypeFreetext, Reference: "searches the first column"},
	})

	mock := llm.NewMockProvider(
		llm.MockResponse{JSON: answersJSON(t)},
		llm.MockResponse{JSON: answersJSON(t)},
	)
	repo := &memTrainingRepo{}
	b := New(mock, repo)

	res, err := b.BuildAll(context.Background(), bank)
	if err != nil {
		t.Fatalf("BuildAll: %v", err)
	}
	if res.Questions != 2 || res.Examples != 6 {
		t.Errorf("result = %+v, want 2 questions / 6 examples", res)
	}
	if len(repo.rows) != 6 {
		t.Fatalf("persisted %d rows, want 6", len(repo.rows))
	}

	labels := map[string]int{}
	for _, row := range repo.rows {
		labels[row.Label]++
		if row.QuestionID == "" || row.Answer == "" {
			t.Errorf("incomplete row: %+v", row)
		}
	}
	for _, label := range []string{LabelCorrect, LabelPartial, LabelIncorrect} {
		if labels[label] != 2 {
			t.Errorf("label %q count = %d, want 2", label, labels[label])
		}
	}

	// Structured output was requested.
	if mock.Calls[0].Schema == nil {
		t.Error("expected a schema on the generation request")
	}
	if mock.Calls[0].Temperature != 0.7 {
		t.Errorf("temperature = %v, want 0.7", mock.Calls[0].Temperature)
	}
}

func TestBuildAllStopsOnProviderError(t *testing.T) {
	bank := questionbank.New([]questionbank.Question{
		{ID: "e1", Topic: "excel", Prompt: "q1", Level: questionbank.LevelEasy, Type: questionbank.TypeFreetext, Reference: "r"},
		{ID: "e2", Topic: "excel", Prompt: "q2", Level: questionbank.LevelEasy, Type: questionbank.TypeFreetext, Reference: "r"},
	})

	mock := llm.NewMockProvider(
		llm.MockResponse{JSON: answersJSON(t)},
		llm.MockResponse{Err: &llm.ErrProviderUnavailable{}},
	)
	repo := &memTrainingRepo{}
	b := New(mock, repo)

	res, err := b.BuildAll(context.Background(), bank)
	if err == nil {
		t.Fatal("expected error")
	}
	if res.Questions != 1 || res.Examples != 3 {
		t.Errorf("partial result = %+v, want 1 question / 3 examples", res)
	}
}

func TestBuildAllRejectsMalformedJSON(t *testing.T) {
	bank := questionbank.New([]questionbank.Question{
		{ID: "e1", Topic: "excel", Prompt: "q1", Level: questionbank.LevelEasy, Type: questionbank.TypeFreetext, Reference: "r"},
	})

	mock := llm.NewMockProvider(llm.MockResponse{JSON: json.RawMessage(`{"correct": `)})
	b := New(mock, &memTrainingRepo{})

	if _, err := b.BuildAll(context.Background(), bank); err == nil {
		t.Fatal("expected error for malformed JSON")
	}
}
