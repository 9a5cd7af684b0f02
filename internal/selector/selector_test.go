package selector

import (
	"testing"

	"github.com/neutrino09/intervu/internal/classify"
	"github.com/neutrino09/intervu/internal/questionbank"
)

func q(id string, level questionbank.Level) questionbank.Question {
	return questionbank.Question{ID: id, Level: level, Prompt: id}
}

func testPool() []questionbank.Question {
	return []questionbank.Question{
		q("e1", questionbank.LevelEasy),
		q("m1", questionbank.LevelMedium),
		q("h1", questionbank.LevelHard),
		q("e2", questionbank.LevelEasy),
		q("m2", questionbank.LevelMedium),
		q("h2", questionbank.LevelHard),
	}
}

func TestStarting(t *testing.T) {
	pool := testPool()
	tests := []struct {
		level classify.Level
		want  string
	}{
		{classify.Beginner, "e1"},
		{classify.Intermediate, "m1"},
		{classify.Advanced, "h1"},
	}
	for _, tt := range tests {
		got, ok := Starting(tt.level, pool)
		if !ok {
			t.Fatalf("Starting(%q): no question", tt.level)
		}
		if got.ID != tt.want {
			t.Errorf("Starting(%q) = %q, want %q", tt.level, got.ID, tt.want)
		}
	}
}

func TestStartingFallsBackToFirstQuestion(t *testing.T) {
	pool := []questionbank.Question{
		q("m1", questionbank.LevelMedium),
		q("m2", questionbank.LevelMedium),
	}
	got, ok := Starting(classify.Advanced, pool)
	if !ok {
		t.Fatal("Starting: no question")
	}
	if got.ID != "m1" {
		t.Errorf("Starting = %q, want first question m1", got.ID)
	}
}

func TestStartingEmptyPool(t *testing.T) {
	if _, ok := Starting(classify.Beginner, nil); ok {
		t.Error("Starting on empty pool should report false")
	}
}

func TestNextDifficultyShifts(t *testing.T) {
	pool := testPool()
	tests := []struct {
		name      string
		lastScore float64
		lastLevel questionbank.Level
		want      string
	}{
		{"high score goes hard", 0.9, questionbank.LevelEasy, "h1"},
		{"boundary 0.8 goes hard", 0.8, questionbank.LevelMedium, "h1"},
		{"low score goes easy", 0.2, questionbank.LevelHard, "e1"},
		{"boundary 0.4 goes easy", 0.4, questionbank.LevelMedium, "e1"},
		{"middling holds level", 0.6, questionbank.LevelMedium, "m1"},
		{"middling holds hard", 0.5, questionbank.LevelHard, "h1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Next(tt.lastScore, tt.lastLevel, pool, map[string]bool{})
			if !ok {
				t.Fatal("Next: no question")
			}
			if got.ID != tt.want {
				t.Errorf("Next = %q, want %q", got.ID, tt.want)
			}
		})
	}
}

func TestNextSkipsAskedQuestions(t *testing.T) {
	pool := testPool()
	asked := map[string]bool{"h1": true}
	got, ok := Next(0.9, questionbank.LevelMedium, pool, asked)
	if !ok {
		t.Fatal("Next: no question")
	}
	if got.ID != "h2" {
		t.Errorf("Next = %q, want h2", got.ID)
	}
}

func TestNextPrefersSameLevelWhenTargetExhausted(t *testing.T) {
	pool := testPool()
	asked := map[string]bool{"h1": true, "h2": true}
	got, ok := Next(0.9, questionbank.LevelMedium, pool, asked)
	if !ok {
		t.Fatal("Next: no question")
	}
	// No hard questions left; stay at the last level before pool order.
	if got.ID != "m1" {
		t.Errorf("Next = %q, want m1", got.ID)
	}
}

func TestNextSameLevelBeatsPoolOrder(t *testing.T) {
	pool := []questionbank.Question{
		q("m1", questionbank.LevelMedium),
		q("e1", questionbank.LevelEasy),
	}
	got, ok := Next(0.9, questionbank.LevelEasy, pool, map[string]bool{})
	if !ok {
		t.Fatal("Next: no question")
	}
	// No hard questions at all; the easy question wins over the earlier
	// medium one because the last question was easy.
	if got.ID != "e1" {
		t.Errorf("Next = %q, want e1", got.ID)
	}
}

func TestNextFallsBackToPoolOrder(t *testing.T) {
	pool := testPool()
	asked := map[string]bool{"h1": true, "h2": true, "m1": true, "m2": true}
	got, ok := Next(0.9, questionbank.LevelMedium, pool, asked)
	if !ok {
		t.Fatal("Next: no question")
	}
	// Neither hard nor medium questions left; fall back to pool order.
	if got.ID != "e1" {
		t.Errorf("Next = %q, want e1", got.ID)
	}
}

func TestNextExhaustedPool(t *testing.T) {
	pool := testPool()
	asked := map[string]bool{}
	for _, question := range pool {
		asked[question.ID] = true
	}
	if _, ok := Next(0.5, questionbank.LevelMedium, pool, asked); ok {
		t.Error("Next on exhausted pool should report false")
	}
}
