package store

import (
	"context"
	"fmt"

	"github.com/neutrino09/intervu/ent"
	entinterview "github.com/neutrino09/intervu/ent/interview"
)

// interviewRepo implements InterviewRepo backed by ent.
type interviewRepo struct {
	client *ent.Client
}

func (r *interviewRepo) Save(ctx context.Context, data InterviewData) error {
	if data.Feedback == "" {
		return fmt.Errorf("refusing to save interview %s without a feedback report", data.SessionID)
	}
	if len(data.QuestionIDs) != len(data.Answers) || len(data.Answers) != len(data.Scores) {
		return fmt.Errorf("transcript slices out of alignment: %d/%d/%d",
			len(data.QuestionIDs), len(data.Answers), len(data.Scores))
	}

	_, err := r.client.Interview.Create().
		SetSessionID(data.SessionID).
		SetCandidate(data.Candidate).
		SetTopic(data.Topic).
		SetExperienceLevel(data.ExperienceLevel).
		SetQuestionIds(data.QuestionIDs).
		SetAnswers(data.Answers).
		SetScores(data.Scores).
		SetFeedback(data.Feedback).
		SetConductedAt(data.ConductedAt).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save interview: %w", err)
	}

	return nil
}

func (r *interviewRepo) List(ctx context.Context, limit int) ([]InterviewRecord, error) {
	q := r.client.Interview.Query().
		Order(ent.Desc(entinterview.FieldConductedAt))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list interviews: %w", err)
	}

	records := make([]InterviewRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, InterviewRecord{
			ID: row.ID,
			InterviewData: InterviewData{
				SessionID:       row.SessionID,
				Candidate:       row.Candidate,
				Topic:           row.Topic,
				ExperienceLevel: row.ExperienceLevel,
				QuestionIDs:     row.QuestionIds,
				Answers:         row.Answers,
				Scores:          row.Scores,
				Feedback:        row.Feedback,
				ConductedAt:     row.ConductedAt,
			},
		})
	}
	return records, nil
}
