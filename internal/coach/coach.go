// Package coach turns interview events into conversational feedback: short
// acknowledgements after each answer, coaching tips, and the closing report.
package coach

import (
	"context"
	"fmt"
	"time"

	"github.com/neutrino09/intervu/internal/interview"
	"github.com/neutrino09/intervu/internal/llm"
)

// Temperatures tuned per output. Acknowledgements can be a little loose,
// the report should stay measured.
const (
	ackTemperature    = 0.6
	tipTemperature    = 0.5
	reportTemperature = 0.4
)

// Coach generates feedback text through a chat provider.
type Coach struct {
	provider llm.Provider
}

// New creates a Coach backed by the given provider.
func New(provider llm.Provider) *Coach {
	return &Coach{provider: provider}
}

// Acknowledge returns one encouraging sentence reacting to the candidate's
// answer, without revealing whether it was right.
func (c *Coach) Acknowledge(ctx context.Context, question, answer string) (string, error) {
	ctx = llm.WithPurpose(ctx, "acknowledge")

	resp, err := c.provider.Complete(ctx, llm.Request{
		System:      ackSystemPrompt,
		User:        buildAckPrompt(question, answer),
		MaxTokens:   80,
		Temperature: ackTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("acknowledge answer: %w", err)
	}
	return resp.Text, nil
}

// Tip returns a short coaching tip comparing the candidate's answer with the
// reference answer. At most two sentences.
func (c *Coach) Tip(ctx context.Context, answer, reference string) (string, error) {
	ctx = llm.WithPurpose(ctx, "coach_tip")

	resp, err := c.provider.Complete(ctx, llm.Request{
		System:      tipSystemPrompt,
		User:        buildTipPrompt(answer, reference),
		MaxTokens:   120,
		Temperature: tipTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("coach tip: %w", err)
	}
	return resp.Text, nil
}

// Report synthesizes the closing feedback report: strengths, weaknesses and
// a recommendation, grounded in the full transcript. Implements
// interview.Reporter.
func (c *Coach) Report(ctx context.Context, candidate, topic string, transcript []interview.Exchange, date time.Time) (string, error) {
	ctx = llm.WithPurpose(ctx, "final_report")

	resp, err := c.provider.Complete(ctx, llm.Request{
		System:      reportSystemPrompt,
		User:        buildReportPrompt(candidate, topic, transcript, date),
		MaxTokens:   600,
		Temperature: reportTemperature,
	})
	if err != nil {
		return "", fmt.Errorf("feedback report: %w", err)
	}
	return resp.Text, nil
}
