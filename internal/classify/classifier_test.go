package classify

import (
	"context"
	"testing"

	"github.com/neutrino09/intervu/internal/llm"
)

func TestClassifyKeywords(t *testing.T) {
	tests := []struct {
		name        string
		description string
		want        Level
	}{
		{"beginner word", "I'm a complete beginner with spreadsheets", Beginner},
		{"basic", "I know some BASIC operations", Beginner},
		{"still learning", "still learning my way around", Beginner},
		{"intermediate", "intermediate user, a few years on the job", Intermediate},
		{"comfortable", "comfortable with everyday tasks", Intermediate},
		{"lookup", "I use lookup functions regularly", Intermediate},
		{"advanced", "advanced user, ten years of experience", Advanced},
		{"vba", "I write VBA for reporting", Advanced},
		{"pivot", "pivot tables are my bread and butter", Advanced},
		{"case insensitive", "EXPERT level, honestly", Advanced},
	}

	c := New(nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.Classify(context.Background(), tt.description)
			if err != nil {
				t.Fatalf("Classify: %v", err)
			}
			if got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.description, got, tt.want)
			}
		})
	}
}

func TestClassifyPriorityOrder(t *testing.T) {
	// Beginner keywords win even when advanced keywords also appear.
	c := New(nil)
	got, err := c.Classify(context.Background(), "I know basic formulas and some VBA")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != Beginner {
		t.Errorf("Classify = %q, want %q", got, Beginner)
	}
}

func TestClassifyFallsBackToProvider(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "advanced"})
	c := New(mock)

	got, err := c.Classify(context.Background(), "I built our whole reporting pipeline")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != Advanced {
		t.Errorf("Classify = %q, want %q", got, Advanced)
	}
	if mock.CallCount() != 1 {
		t.Errorf("provider calls = %d, want 1", mock.CallCount())
	}
}

func TestClassifyProviderNotCalledOnKeywordMatch(t *testing.T) {
	mock := llm.NewMockProvider()
	c := New(mock)

	if _, err := c.Classify(context.Background(), "beginner"); err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if mock.CallCount() != 0 {
		t.Errorf("provider calls = %d, want 0", mock.CallCount())
	}
}

func TestClassifyUnrecognizedLLMOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "wizard"})
	c := New(mock)

	got, err := c.Classify(context.Background(), "I do things with cells")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != Intermediate {
		t.Errorf("Classify = %q, want %q for unrecognized output", got, Intermediate)
	}
}

func TestClassifyNormalizesLLMOutput(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Text: "  Beginner\n"})
	c := New(mock)

	got, err := c.Classify(context.Background(), "I do things with cells")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != Beginner {
		t.Errorf("Classify = %q, want %q", got, Beginner)
	}
}

func TestClassifyNilProviderNoMatch(t *testing.T) {
	c := New(nil)
	got, err := c.Classify(context.Background(), "I do things with cells")
	if err != nil {
		t.Fatalf("Classify: %v", err)
	}
	if got != Intermediate {
		t.Errorf("Classify = %q, want %q", got, Intermediate)
	}
}

