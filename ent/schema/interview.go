package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Interview records one completed interview session: the transcript, the
// closing feedback report and the candidate's details.
type Interview struct {
	ent.Schema
}

func (Interview) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			Unique().
			Immutable().
			Comment("UUID of the session this record came from"),
		field.String("candidate").
			Comment("Candidate name as entered"),
		field.String("topic").
			Comment("Interview subject area"),
		field.String("experience_level").
			Default("").
			Comment("Classified experience: beginner, intermediate, advanced"),
		field.JSON("question_ids", []string{}).
			Comment("IDs of the questions asked, in order"),
		field.JSON("answers", []string{}).
			Comment("Candidate answers, aligned with question_ids"),
		field.JSON("scores", []float64{}).
			Comment("Answer scores in [0,1], aligned with question_ids"),
		field.Text("feedback").
			Comment("Closing feedback report"),
		field.Time("conducted_at").
			Default(time.Now).
			Immutable().
			Comment("When the interview took place"),
	}
}

func (Interview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("candidate"),
		index.Fields("conducted_at"),
	}
}
