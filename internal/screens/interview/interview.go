// Package interview implements the interview screen: the intro exchange,
// question and answer flow, per-answer feedback and the closing report.
package interview

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/neutrino09/intervu/internal/coach"
	"github.com/neutrino09/intervu/internal/interview"
	"github.com/neutrino09/intervu/internal/questionbank"
	"github.com/neutrino09/intervu/internal/router"
	"github.com/neutrino09/intervu/internal/screen"
	"github.com/neutrino09/intervu/internal/store"
	"github.com/neutrino09/intervu/internal/ui/components"
	"github.com/neutrino09/intervu/internal/ui/layout"
)

// introStage tracks which intro question is on screen.
type introStage int

const (
	stageName introStage = iota
	stageExperience
)

// InterviewScreen implements screen.Screen for a live interview.
type InterviewScreen struct {
	engine        *interview.Engine
	coach         *coach.Coach
	interviewRepo store.InterviewRepo

	session *interview.Session
	stage   introStage

	nameInput  components.TextInput
	expInput   components.TextInput
	answerArea components.TextArea

	ack     string
	tip     string
	loading string
	errMsg  string
	saved   bool
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)
var _ screen.StatusProvider = (*InterviewScreen)(nil)

// New creates a new InterviewScreen with injected dependencies.
func New(engine *interview.Engine, c *coach.Coach, interviewRepo store.InterviewRepo, topic string) *InterviewScreen {
	return &InterviewScreen{
		engine:        engine,
		coach:         c,
		interviewRepo: interviewRepo,
		session:       interview.NewSession(topic),
		nameInput:     components.NewTextInput("Your name...", 60),
		expInput:      components.NewTextInput("e.g. comfortable with formulas, learning pivot tables...", 200),
	}
}

func (s *InterviewScreen) Init() tea.Cmd {
	return s.nameInput.Init()
}

func (s *InterviewScreen) Title() string {
	return "Interview"
}

func (s *InterviewScreen) HeaderStatus() layout.HeaderStatus {
	return layout.HeaderStatus{
		Candidate: s.session.Candidate,
		Answered:  s.session.AnsweredCount(),
		Total:     s.session.QuestionCount(),
	}
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	switch {
	case s.errMsg != "":
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	case s.loading != "":
		return nil
	case s.session.Phase == interview.PhaseIntro:
		return []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
	case s.session.Phase == interview.PhaseAsk:
		return []layout.KeyHint{
			{Key: "Ctrl+S", Description: "Submit answer"},
			{Key: "Esc", Description: "Abandon"},
		}
	case s.session.Phase == interview.PhaseAcknowledge:
		return []layout.KeyHint{{Key: "Enter", Description: "Next question"}}
	default:
		return []layout.KeyHint{{Key: "Enter", Description: "Done"}}
	}
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case beginDoneMsg:
		return s.handleBeginDone(msg)
	case answerScoredMsg:
		return s.handleAnswerScored(msg)
	case feedbackReadyMsg:
		return s.handleFeedbackReady(msg)
	case reportReadyMsg:
		return s.handleReportReady(msg)
	case savedMsg:
		return s.handleSaved(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	return s.forwardToInput(msg)
}

func (s *InterviewScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.loading != "" {
		return s, nil
	}

	switch s.session.Phase {
	case interview.PhaseIntro:
		if msg.String() == "enter" {
			return s.handleIntroSubmit()
		}
	case interview.PhaseAsk:
		if msg.String() == "ctrl+s" {
			return s.handleAnswerSubmit()
		}
	case interview.PhaseAcknowledge:
		if msg.String() == "enter" {
			return s.handleAdvance()
		}
	case interview.PhaseClosing:
		if msg.String() == "enter" && (s.saved || s.errMsg != "") {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}

	return s.forwardToInput(msg)
}

func (s *InterviewScreen) forwardToInput(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	switch s.session.Phase {
	case interview.PhaseIntro:
		if s.stage == stageName {
			s.nameInput, cmd = s.nameInput.Update(msg)
		} else {
			s.expInput, cmd = s.expInput.Update(msg)
		}
	case interview.PhaseAsk:
		s.answerArea, cmd = s.answerArea.Update(msg)
	}
	return s, cmd
}

func (s *InterviewScreen) handleIntroSubmit() (screen.Screen, tea.Cmd) {
	if s.stage == stageName {
		if strings.TrimSpace(s.nameInput.Value()) == "" {
			return s, nil
		}
		s.nameInput.Submit(true)
		s.stage = stageExperience
		return s, s.expInput.Init()
	}

	if strings.TrimSpace(s.expInput.Value()) == "" {
		return s, nil
	}

	s.expInput.Submit(true)
	s.loading = "Getting your first question ready..."
	return s, s.beginCmd(s.nameInput.Value(), s.expInput.Value())
}

func (s *InterviewScreen) beginCmd(candidate, experience string) tea.Cmd {
	return func() tea.Msg {
		err := s.engine.Begin(context.Background(), s.session,
			strings.TrimSpace(candidate), strings.TrimSpace(experience))
		return beginDoneMsg{Err: err}
	}
}

func (s *InterviewScreen) handleBeginDone(msg beginDoneMsg) (screen.Screen, tea.Cmd) {
	s.loading = ""
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.answerArea = components.NewTextArea("Type your answer...", 70, 6)
	return s, s.answerArea.Init()
}

func (s *InterviewScreen) handleAnswerSubmit() (screen.Screen, tea.Cmd) {
	answer := s.answerArea.Value()
	s.loading = "Scoring your answer..."
	return s, func() tea.Msg {
		score, err := s.engine.SubmitAnswer(context.Background(), s.session, answer)
		return answerScoredMsg{Score: score, Err: err}
	}
}

func (s *InterviewScreen) handleAnswerScored(msg answerScoredMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.loading = ""
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.loading = "Thinking..."
	q := *s.session.Current
	answer := s.session.LastAnswer
	return s, func() tea.Msg {
		ctx := context.Background()
		ack, err := s.coach.Acknowledge(ctx, q.Prompt, answer)
		if err != nil {
			return feedbackReadyMsg{Err: err}
		}
		tip, err := s.coach.Tip(ctx, answer, referenceFor(q))
		if err != nil {
			return feedbackReadyMsg{Err: err}
		}
		return feedbackReadyMsg{Ack: ack, Tip: tip}
	}
}

// referenceFor returns the model answer used for coaching comparisons.
func referenceFor(q questionbank.Question) string {
	if q.Type == questionbank.TypeFormula {
		return strings.Join(q.Expected, " or ")
	}
	return q.Reference
}

func (s *InterviewScreen) handleFeedbackReady(msg feedbackReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = ""
	if msg.Err != nil {
		// Feedback is decoration. Score is already recorded, keep going.
		s.ack = "Thanks, noted."
		s.tip = ""
		return s, nil
	}
	s.ack = msg.Ack
	s.tip = msg.Tip
	return s, nil
}

func (s *InterviewScreen) handleAdvance() (screen.Screen, tea.Cmd) {
	s.ack = ""
	s.tip = ""
	if err := s.engine.Advance(s.session); err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if s.session.Phase == interview.PhaseClosing {
		s.loading = "Writing up your feedback..."
		return s, s.reportCmd()
	}

	s.answerArea.Reset()
	return s, s.answerArea.Init()
}

func (s *InterviewScreen) reportCmd() tea.Cmd {
	return func() tea.Msg {
		err := s.engine.GenerateReport(context.Background(), s.session, s.coach)
		return reportReadyMsg{Err: err}
	}
}

func (s *InterviewScreen) handleReportReady(msg reportReadyMsg) (screen.Screen, tea.Cmd) {
	s.loading = ""
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	return s, s.saveCmd()
}

func (s *InterviewScreen) saveCmd() tea.Cmd {
	sess := s.session
	return func() tea.Msg {
		err := s.interviewRepo.Save(context.Background(), store.InterviewData{
			SessionID:       sess.ID,
			Candidate:       sess.Candidate,
			Topic:           sess.Topic,
			ExperienceLevel: string(sess.ExperienceLevel),
			QuestionIDs:     sess.AskedIDs,
			Answers:         sess.Answers,
			Scores:          sess.Scores,
			Feedback:        sess.Feedback,
			ConductedAt:     time.Now(),
		})
		return savedMsg{Err: err}
	}
}

func (s *InterviewScreen) handleSaved(msg savedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.saved = true
	return s, nil
}
