package score

import (
	"context"
	"math"
	"testing"

	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
)

func TestMatchFormula(t *testing.T) {
	tests := []struct {
		name     string
		answer   string
		expected []string
		want     bool
	}{
		{"exact", "=SUM(A1:A10)", []string{"=SUM(A1:A10)"}, true},
		{"case insensitive", "=sum(a1:a10)", []string{"=SUM(A1:A10)"}, true},
		{"spaces stripped", "= SUM( A1 : A10 )", []string{"=SUM(A1:A10)"}, true},
		{"embedded in sentence", "I would use =SUM(A1:A10) here", []string{"=SUM(A1:A10)"}, true},
		{"any of several", "=AVERAGE(B1:B5)", []string{"=SUM(B1:B5)", "=AVERAGE(B1:B5)"}, true},
		{"wrong formula", "=COUNT(A1:A10)", []string{"=SUM(A1:A10)"}, false},
		{"empty answer", "", []string{"=SUM(A1:A10)"}, false},
		{"whitespace answer", "   ", []string{"=SUM(A1:A10)"}, false},
		{"no expected", "=SUM(A1:A10)", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MatchFormula(tt.answer, tt.expected); got != tt.want {
				t.Errorf("MatchFormula(%q, %v) = %v, want %v", tt.answer, tt.expected, got, tt.want)
			}
		})
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a, b []float64
		want float64
	}{
		{"identical", []float64{1, 2, 3}, []float64{1, 2, 3}, 1},
		{"orthogonal", []float64{1, 0}, []float64{0, 1}, 0},
		{"opposite", []float64{1, 0}, []float64{-1, 0}, -1},
		{"zero vector", []float64{0, 0}, []float64{1, 1}, 0},
		{"length mismatch", []float64{1, 2}, []float64{1, 2, 3}, 0},
		{"empty", nil, nil, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cosine(tt.a, tt.b)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Cosine = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreFormulaQuestion(t *testing.T) {
	q := questionbank.Question{
		ID:       "q1",
		Type:     questionbank.TypeFormula,
		Expected: []string{"=SUM(A1:A10)"},
	}
	s := New(nil)

	got, err := s.Score(context.Background(), q, "=sum(a1:a10)")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 1.0 {
		t.Errorf("Score = %v, want 1.0", got)
	}

	got, err = s.Score(context.Background(), q, "=MAX(A1:A10)")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 0.0 {
		t.Errorf("Score = %v, want 0.0", got)
	}
}

func TestScoreFreetextQuestion(t *testing.T) {
	q := questionbank.Question{
		ID:        "q2",
		Type:      questionbank.TypeFreetext,
		Reference: "VLOOKUP searches the first column of a range",
	}
	embedder := llm.NewMockEmbedder(map[string][]float64{
		"it looks things up": {1, 1, 0},
		q.Reference:          {1, 0, 0},
	})
	s := New(embedder)

	got, err := s.Score(context.Background(), q, "it looks things up")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	want := 1 / math.Sqrt2
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("Score = %v, want %v", got, want)
	}
	if embedder.CallCount() != 2 {
		t.Errorf("embedder calls = %d, want 2", embedder.CallCount())
	}
}

func TestScoreEmptyFreetextSkipsEmbedder(t *testing.T) {
	q := questionbank.Question{
		ID:        "q3",
		Type:      questionbank.TypeFreetext,
		Reference: "pivot tables summarize data",
	}
	embedder := llm.NewMockEmbedder(nil)
	s := New(embedder)

	for _, answer := range []string{"", "   ", "\n\t"} {
		got, err := s.Score(context.Background(), q, answer)
		if err != nil {
			t.Fatalf("Score(%q): %v", answer, err)
		}
		if got != 0.0 {
			t.Errorf("Score(%q) = %v, want 0.0", answer, got)
		}
	}
	if embedder.CallCount() != 0 {
		t.Errorf("embedder calls = %d, want 0 for empty answers", embedder.CallCount())
	}
}

func TestScoreNegativeSimilarityClamped(t *testing.T) {
	q := questionbank.Question{
		ID:        "q4",
		Type:      questionbank.TypeFreetext,
		Reference: "ref",
	}
	embedder := llm.NewMockEmbedder(map[string][]float64{
		"opposite": {-1, 0},
		"ref":      {1, 0},
	})
	s := New(embedder)

	got, err := s.Score(context.Background(), q, "opposite")
	if err != nil {
		t.Fatalf("Score: %v", err)
	}
	if got != 0.0 {
		t.Errorf("Score = %v, want 0.0 for negative similarity", got)
	}
}
