package interview

import (
	"time"

	"github.com/google/uuid"

	"github.com/neutrino09/intervu/internal/classify"
	"github.com/neutrino09/intervu/internal/questionbank"
)

// Phase represents the current phase of an interview session.
type Phase int

const (
	PhaseIntro       Phase = iota // Collecting name and experience
	PhaseAsk                      // A question is on the table
	PhaseAcknowledge              // Showing feedback on the last answer
	PhaseClosing                  // Interview over, generating the report
)

// String returns the phase name for display and persistence.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseAsk:
		return "ask"
	case PhaseAcknowledge:
		return "acknowledge"
	case PhaseClosing:
		return "closing"
	}
	return "unknown"
}

// Session tracks the runtime state of one interview.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// Candidate is the candidate's name as they gave it.
	Candidate string

	// Topic is the interview subject area.
	Topic string

	// ExperienceLevel is the classified self-reported experience.
	ExperienceLevel classify.Level

	// Questions is the sampled pool for this session, in fixed order.
	Questions []questionbank.Question

	// AskedIDs, Answers and Scores are the interview transcript. They are
	// appended together and stay index-aligned.
	AskedIDs []string
	Answers  []string
	Scores   []float64

	// Current is the question on the table (nil outside PhaseAsk).
	Current *questionbank.Question

	// Phase is the current session phase.
	Phase Phase

	// Feedback is the closing report, set once by GenerateReport.
	Feedback string

	// LastAnswer and LastScore record the most recent submission, for the
	// acknowledgement display.
	LastAnswer string
	LastScore  float64

	// StartedAt is when the session began.
	StartedAt time.Time
}

// NewSession creates a session in the intro phase.
func NewSession(topic string) *Session {
	return &Session{
		ID:        uuid.NewString(),
		Topic:     topic,
		Phase:     PhaseIntro,
		StartedAt: time.Now(),
	}
}

// QuestionCount returns how many questions this session will ask.
func (s *Session) QuestionCount() int {
	return len(s.Questions)
}

// AnsweredCount returns how many answers have been recorded.
func (s *Session) AnsweredCount() int {
	return len(s.Answers)
}

// AverageScore returns the mean of all recorded scores, or 0 when no answer
// has been recorded yet.
func (s *Session) AverageScore() float64 {
	if len(s.Scores) == 0 {
		return 0
	}
	var sum float64
	for _, score := range s.Scores {
		sum += score
	}
	return sum / float64(len(s.Scores))
}

func (s *Session) asked() map[string]bool {
	m := make(map[string]bool, len(s.AskedIDs))
	for _, id := range s.AskedIDs {
		m[id] = true
	}
	return m
}
