// Package classify maps a candidate's free-form experience description to a
// discrete experience level. Keyword matching handles the common phrasings;
// anything else falls through to the language model.
package classify

import (
	"context"
	"fmt"
	"strings"

	"github.com/neutrino09/intervu/internal/llm"
)

// Level is a candidate's self-reported experience level.
type Level string

const (
	Beginner     Level = "beginner"
	Intermediate Level = "intermediate"
	Advanced     Level = "advanced"
)

// Valid reports whether l is one of the three known levels.
func (l Level) Valid() bool {
	switch l {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Keyword sets checked in priority order. A beginner keyword wins over an
// advanced one when both appear in the same description.
var (
	beginnerKeywords     = []string{"beginner", "basic", "new", "learning"}
	intermediateKeywords = []string{"intermediate", "some", "comfortable", "lookup", "formulas"}
	advancedKeywords     = []string{"advanced", "expert", "pivot", "vba", "macros", "dashboard"}
)

// Classifier assigns an experience Level to a description.
type Classifier struct {
	provider llm.Provider
}

// New creates a Classifier. The provider may be nil, in which case only
// keyword matching is available and unmatched descriptions default to
// Intermediate.
func New(provider llm.Provider) *Classifier {
	return &Classifier{provider: provider}
}

// Classify determines the experience level for the given description.
// Keyword matching is tried first; the provider is only consulted when no
// keyword matches.
func (c *Classifier) Classify(ctx context.Context, description string) (Level, error) {
	if level, ok := matchKeywords(description); ok {
		return level, nil
	}
	if c.provider == nil {
		return Intermediate, nil
	}
	return c.classifyLLM(ctx, description)
}

// matchKeywords scans the description against the keyword sets in priority
// order and reports whether any matched.
func matchKeywords(description string) (Level, bool) {
	lower := strings.ToLower(description)
	for _, kw := range beginnerKeywords {
		if strings.Contains(lower, kw) {
			return Beginner, true
		}
	}
	for _, kw := range intermediateKeywords {
		if strings.Contains(lower, kw) {
			return Intermediate, true
		}
	}
	for _, kw := range advancedKeywords {
		if strings.Contains(lower, kw) {
			return Advanced, true
		}
	}
	return "", false
}

const classifySystemPrompt = `You are screening candidates for a spreadsheet skills interview.
Classify the candidate's self-described experience as exactly one word:
beginner, intermediate, or advanced. Respond with only that word.`

func (c *Classifier) classifyLLM(ctx context.Context, description string) (Level, error) {
	ctx = llm.WithPurpose(ctx, "classify_experience")

	resp, err := c.provider.Complete(ctx, llm.Request{
		System:      classifySystemPrompt,
		User:        fmt.Sprintf("Candidate's description: %s", description),
		MaxTokens:   10,
		Temperature: 0,
	})
	if err != nil {
		return "", fmt.Errorf("classify experience: %w", err)
	}

	level := Level(strings.ToLower(strings.TrimSpace(resp.Text)))
	if !level.Valid() {
		// Unrecognized model output is not fatal. Middle of the road is
		// the safest place to start the interview.
		return Intermediate, nil
	}
	return level, nil
}
