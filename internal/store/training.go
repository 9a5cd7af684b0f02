package store

import (
	"context"
	"fmt"

	"github.com/neutrino09/intervu/ent"
	"github.com/neutrino09/intervu/ent/trainingexample"
)

// trainingRepo implements TrainingRepo backed by ent.
type trainingRepo struct {
	client *ent.Client
}

func (r *trainingRepo) Append(ctx context.Context, data TrainingExampleData) error {
	_, err := r.client.TrainingExample.Create().
		SetQuestionID(data.QuestionID).
		SetQuestion(data.Question).
		SetAnswer(data.Answer).
		SetVerdict(trainingexample.Verdict(data.Label)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save training example: %w", err)
	}

	return nil
}

func (r *trainingRepo) List(ctx context.Context, limit int) ([]TrainingExampleRecord, error) {
	q := r.client.TrainingExample.Query().
		Order(ent.Desc(trainingexample.FieldID))
	if limit > 0 {
		q = q.Limit(limit)
	}

	rows, err := q.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list training examples: %w", err)
	}

	records := make([]TrainingExampleRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, TrainingExampleRecord{
			ID:        row.ID,
			CreatedAt: row.CreatedAt,
			TrainingExampleData: TrainingExampleData{
				QuestionID: row.QuestionID,
				Question:   row.Question,
				Answer:     row.Answer,
				Label:      string(row.Verdict),
			},
		})
	}
	return records, nil
}
