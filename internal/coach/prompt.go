package coach

import (
	"fmt"
	"strings"
	"time"

	"github.com/neutrino09/intervu/internal/interview"
)

const ackSystemPrompt = `You are a warm, professional interviewer running a mock skills interview.
React to the candidate's answer in exactly one encouraging sentence.
Do not say whether the answer was right or wrong.`

const tipSystemPrompt = `You are a coach reviewing a mock interview answer.
Compare the candidate's answer with the reference answer and give one
practical tip in at most two sentences. Be specific, not generic.`

const reportSystemPrompt = `You are writing the closing feedback report for a mock skills interview.
Write three short sections: Strengths, Areas to Improve, and Recommendation.
Ground every point in the transcript. Keep the tone constructive.`

func buildAckPrompt(question, answer string) string {
	var b strings.Builder
	b.WriteString("Question: ")
	b.WriteString(question)
	b.WriteString("\nCandidate's answer: ")
	b.WriteString(answer)
	return b.String()
}

func buildTipPrompt(answer, reference string) string {
	var b strings.Builder
	b.WriteString("Candidate's answer: ")
	b.WriteString(answer)
	b.WriteString("\nReference answer: ")
	b.WriteString(reference)
	return b.String()
}

func buildReportPrompt(candidate, topic string, transcript []interview.Exchange, date time.Time) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Candidate: %s\n", candidate)
	fmt.Fprintf(&b, "Topic: %s\n", topic)
	fmt.Fprintf(&b, "Date: %s\n\n", date.Format("January 2, 2006"))
	b.WriteString("Transcript:\n")
	for i, ex := range transcript {
		fmt.Fprintf(&b, "%d. Q: %s\n", i+1, ex.Question.Prompt)
		fmt.Fprintf(&b, "   A: %s\n", ex.Answer)
		fmt.Fprintf(&b, "   Score: %.2f\n", ex.Score)
	}
	return b.String()
}
