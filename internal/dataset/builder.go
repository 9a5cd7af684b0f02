// Package dataset generates synthetic labeled answers for the question bank,
// building a training set for answer scoring. For each question the model
// produces one correct, one partially correct and one incorrect answer.
package dataset

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/neutrino09/intervu/internal/llm"
	"github.com/neutrino09/intervu/internal/questionbank"
	"github.com/neutrino09/intervu/internal/store"
)

// Labels assigned to generated answers.
const (
	LabelCorrect   = "correct"
	LabelPartial   = "partial"
	LabelIncorrect = "incorrect"
)

const generateTemperature = 0.7

// Builder generates and persists labeled answers.
type Builder struct {
	provider llm.Provider
	repo     store.TrainingRepo
}

// New creates a Builder.
func New(provider llm.Provider, repo store.TrainingRepo) *Builder {
	return &Builder{provider: provider, repo: repo}
}

// Result reports what BuildAll produced.
type Result struct {
	Questions int
	Examples  int
}

// BuildAll generates labeled answers for every question in the bank and
// appends them to the training repo. Generation stops at the first error so
// a partial run is never silently truncated.
func (b *Builder) BuildAll(ctx context.Context, bank *questionbank.Bank) (Result, error) {
	var res Result
	for _, q := range bank.All() {
		examples, err := b.generate(ctx, q)
		if err != nil {
			return res, fmt.Errorf("question %s: %w", q.ID, err)
		}
		for _, ex := range examples {
			if err := b.repo.Append(ctx, ex); err != nil {
				return res, fmt.Errorf("question %s: %w", q.ID, err)
			}
			res.Examples++
		}
		res.Questions++
	}
	return res, nil
}

// labeledAnswers matches the structured output schema.
type labeledAnswers struct {
	Correct   string `json:"correct"`
	Partial   string `json:"partial"`
	Incorrect string `json:"incorrect"`
}

func (b *Builder) generate(ctx context.Context, q questionbank.Question) ([]store.TrainingExampleData, error) {
	ctx = llm.WithPurpose(ctx, "dataset_build")

	resp, err := b.provider.Complete(ctx, llm.Request{
		System:      generateSystemPrompt,
		User:        buildGeneratePrompt(q),
		Schema:      answersSchema(),
		MaxTokens:   500,
		Temperature: generateTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("generate answers: %w", err)
	}

	var parsed labeledAnswers
	if err := json.Unmarshal(resp.JSON, &parsed); err != nil {
		return nil, &llm.ErrInvalidResponse{Content: resp.JSON, Err: err}
	}

	return []store.TrainingExampleData{
		{QuestionID: q.ID, Question: q.Prompt, Answer: parsed.Correct, Label: LabelCorrect},
		{QuestionID: q.ID, Question: q.Prompt, Answer: parsed.Partial, Label: LabelPartial},
		{QuestionID: q.ID, Question: q.Prompt, Answer: parsed.Incorrect, Label: LabelIncorrect},
	}, nil
}

const generateSystemPrompt = `You are generating training data for an interview answer scorer.
For the given interview question, write three candidate answers:
one fully correct, one partially correct, and one incorrect.
Each answer should sound like something a real candidate would say.`

func buildGeneratePrompt(q questionbank.Question) string {
	return fmt.Sprintf("Question: %s", q.Prompt)
}

func answersSchema() *llm.Schema {
	return &llm.Schema{
		Name:        "labeled_answers",
		Description: "Three candidate answers of varying quality",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"correct":   map[string]any{"type": "string"},
				"partial":   map[string]any{"type": "string"},
				"incorrect": map[string]any{"type": "string"},
			},
			"required":             []any{"correct", "partial", "incorrect"},
			"additionalProperties": false,
		},
	}
}
