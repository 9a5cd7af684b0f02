// Package score grades interview answers. Formula questions are graded by
// normalized substring matching against expected answers; free-text questions
// by cosine similarity between answer and reference embeddings.
package score

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
)

// Scorer grades answers against questions.
type Scorer struct {
	embedder llm.Embedder
}

// New creates a Scorer backed by the given embedder.
func New(embedder llm.Embedder) *Scorer {
	return &Scorer{embedder: embedder}
}

// Score grades an answer for the given question, returning a value in [0, 1].
// Formula answers score exactly 0 or 1. An empty free-text answer scores 0
// without contacting the embedder.
func (s *Scorer) Score(ctx context.Context, q questionbank.Question, answer string) (float64, error) {
	switch q.Type {
	case questionbank.TypeFormula:
		if MatchFormula(answer, q.Expected) {
			return 1.0, nil
		}
		return 0.0, nil
	case questionbank.TypeFreetext:
		return s.scoreFreetext(ctx, q, answer)
	default:
		return 0, fmt.Errorf("unknown question type %q", q.Type)
	}
}

func (s *Scorer) scoreFreetext(ctx context.Context, q questionbank.Question, answer string) (float64, error) {
	if strings.TrimSpace(answer) == "" {
		return 0.0, nil
	}
	if s.embedder == nil {
		return 0, fmt.Errorf("no embedder configured for free-text scoring")
	}

	ctx = llm.WithPurpose(ctx, "score_answer")

	answerVec, err := s.embedder.Embed(ctx, answer)
	if err != nil {
		return 0, fmt.Errorf("embed answer: %w", err)
	}
	refVec, err := s.embedder.Embed(ctx, q.Reference)
	if err != nil {
		return 0, fmt.Errorf("embed reference: %w", err)
	}

	sim := Cosine(answerVec, refVec)
	if sim < 0 {
		sim = 0
	}
	return sim, nil
}

// MatchFormula reports whether any expected answer appears in the candidate's
// answer after normalization. Both sides are lowercased and have all spaces
// removed, so "= SUM( A1 : A10 )" matches "=sum(a1:a10)".
func MatchFormula(answer string, expected []string) bool {
	normalized := normalizeFormula(answer)
	if normalized == "" {
		return false
	}
	for _, exp := range expected {
		want := normalizeFormula(exp)
		if want != "" && strings.Contains(normalized, want) {
			return true
		}
	}
	return false
}

func normalizeFormula(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	return strings.ReplaceAll(s, " ", "")
}

// Cosine returns the cosine similarity of two vectors. Mismatched lengths or
// zero vectors yield 0.
func Cosine(a, b []float64) float64 {
	if len(a) != len(b) || len(a) == 0 {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
