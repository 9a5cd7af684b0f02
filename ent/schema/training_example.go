package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TrainingExample is one synthetic labeled answer generated by the dataset
// builder, for training or evaluating answer scoring.
type TrainingExample struct {
	ent.Schema
}

func (TrainingExample) Fields() []ent.Field {
	return []ent.Field{
		field.String("question_id").
			Comment("ID of the question the answer responds to"),
		field.Text("question").
			Comment("Question prompt at generation time"),
		field.Text("answer").
			Comment("Generated candidate answer"),
		field.Enum("verdict").
			Values("correct", "partial", "incorrect").
			Comment("Quality label assigned at generation"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (TrainingExample) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("question_id"),
		index.Fields("verdict"),
	}
}
