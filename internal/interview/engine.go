// Package interview drives a mock interview session: sampling questions,
// classifying the candidate, scoring answers and walking the session through
// its phases.
package interview

import (
	"context"
	"fmt"
	"time"

	"github.com/neutrino09/intervu/internal/classify"
	"github.com/neutrino09/intervu/internal/questionbank"
	"github.com/neutrino09/intervu/internal/score"
	"github.com/neutrino09/intervu/internal/selector"
)

// DefaultQuestionCount is how many questions are sampled per session.
const DefaultQuestionCount = 5

// Engine runs interview sessions against a question bank.
type Engine struct {
	bank       *questionbank.Bank
	classifier *classify.Classifier
	scorer     *score.Scorer
	sampleSize int
}

// New creates an Engine. A zero or negative sampleSize uses
// DefaultQuestionCount.
func New(bank *questionbank.Bank, classifier *classify.Classifier, scorer *score.Scorer, sampleSize int) *Engine {
	if sampleSize <= 0 {
		sampleSize = DefaultQuestionCount
	}
	return &Engine{
		bank:       bank,
		classifier: classifier,
		scorer:     scorer,
		sampleSize: sampleSize,
	}
}

// Begin moves a session out of the intro phase: classifies the candidate's
// experience, samples the question pool for the session topic and puts the
// starting question on the table.
func (e *Engine) Begin(ctx context.Context, s *Session, candidate, experience string) error {
	if s.Phase != PhaseIntro {
		return fmt.Errorf("session is in phase %s, not intro", s.Phase)
	}
	if candidate == "" {
		return fmt.Errorf("candidate name is required")
	}

	level, err := e.classifier.Classify(ctx, experience)
	if err != nil {
		return fmt.Errorf("classify experience: %w", err)
	}

	pool := e.bank.ForTopic(s.Topic)
	if len(pool) == 0 {
		return fmt.Errorf("no questions for topic %q", s.Topic)
	}
	sampled := questionbank.Sample(pool, e.sampleSize)

	first, ok := selector.Starting(level, sampled)
	if !ok {
		return fmt.Errorf("no starting question for topic %q", s.Topic)
	}

	s.Candidate = candidate
	s.ExperienceLevel = level
	s.Questions = sampled
	s.Current = &first
	s.Phase = PhaseAsk
	return nil
}

// SubmitAnswer scores the answer to the current question and records it in
// the transcript, moving the session to the acknowledge phase.
func (e *Engine) SubmitAnswer(ctx context.Context, s *Session, answer string) (float64, error) {
	if s.Phase != PhaseAsk {
		return 0, fmt.Errorf("session is in phase %s, not ask", s.Phase)
	}
	if s.Current == nil {
		return 0, fmt.Errorf("no current question")
	}

	result, err := e.scorer.Score(ctx, *s.Current, answer)
	if err != nil {
		return 0, fmt.Errorf("score answer: %w", err)
	}

	s.AskedIDs = append(s.AskedIDs, s.Current.ID)
	s.Answers = append(s.Answers, answer)
	s.Scores = append(s.Scores, result)
	s.LastAnswer = answer
	s.LastScore = result
	s.Phase = PhaseAcknowledge
	return result, nil
}

// Advance picks the next question based on the last score and the difficulty
// of the question just answered. When the pool is exhausted the session moves
// to closing and Current is cleared.
func (e *Engine) Advance(s *Session) error {
	if s.Phase != PhaseAcknowledge {
		return fmt.Errorf("session is in phase %s, not acknowledge", s.Phase)
	}
	if s.Current == nil {
		return fmt.Errorf("no current question")
	}

	next, ok := selector.Next(s.LastScore, s.Current.Level, s.Questions, s.asked())
	if !ok {
		s.Current = nil
		s.Phase = PhaseClosing
		return nil
	}

	s.Current = &next
	s.Phase = PhaseAsk
	return nil
}

// Reporter synthesizes a closing feedback report from the transcript.
type Reporter interface {
	Report(ctx context.Context, candidate, topic string, transcript []Exchange, date time.Time) (string, error)
}

// GenerateReport synthesizes the closing feedback report and caches it on
// the session. Calling it again is a no-op once a report exists.
func (e *Engine) GenerateReport(ctx context.Context, s *Session, r Reporter) error {
	if s.Phase != PhaseClosing {
		return fmt.Errorf("session is in phase %s, not closing", s.Phase)
	}
	if s.Feedback != "" {
		return nil
	}

	text, err := r.Report(ctx, s.Candidate, s.Topic, s.Transcript(), time.Now())
	if err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	s.Feedback = text
	return nil
}

// Transcript returns the question/answer/score triples recorded so far.
func (s *Session) Transcript() []Exchange {
	exchanges := make([]Exchange, 0, len(s.AskedIDs))
	byID := make(map[string]questionbank.Question, len(s.Questions))
	for _, q := range s.Questions {
		byID[q.ID] = q
	}
	for i, id := range s.AskedIDs {
		exchanges = append(exchanges, Exchange{
			Question: byID[id],
			Answer:   s.Answers[i],
			Score:    s.Scores[i],
		})
	}
	return exchanges
}

// Exchange is one asked question with its recorded answer and score.
type Exchange struct {
	Question questionbank.Question
	Answer   string
	Score    float64
}
