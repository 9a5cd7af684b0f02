// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// InterviewsColumns holds the columns for the "interviews" table.
	InterviewsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "session_id", Type: field.TypeString, Unique: true},
		{Name: "candidate", Type: field.TypeString},
		{Name: "topic", Type: field.TypeString},
		{Name: "experience_level", Type: field.TypeString, Default: ""},
		{Name: "question_ids", Type: field.TypeJSON},
		{Name: "answers", Type: field.TypeJSON},
		{Name: "scores", Type: field.TypeJSON},
		{Name: "feedback", Type: field.TypeString, Size: 2147483647},
		{Name: "conducted_at", Type: field.TypeTime},
	}
	// InterviewsTable holds the schema information for the "interviews" table.
	InterviewsTable = &schema.Table{
		Name:       "interviews",
		Columns:    InterviewsColumns,
		PrimaryKey: []*schema.Column{InterviewsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "interview_candidate",
				Unique:  false,
				Columns: []*schema.Column{InterviewsColumns[2]},
			},
			{
				Name:    "interview_conducted_at",
				Unique:  false,
				Columns: []*schema.Column{InterviewsColumns[9]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[4]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[8]},
			},
		},
	}
	// TrainingExamplesColumns holds the columns for the "training_examples" table.
	TrainingExamplesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "question_id", Type: field.TypeString},
		{Name: "question", Type: field.TypeString, Size: 2147483647},
		{Name: "answer", Type: field.TypeString, Size: 2147483647},
		{Name: "verdict", Type: field.TypeEnum, Enums: []string{"correct", "partial", "incorrect"}},
		{Name: "created_at", Type: field.TypeTime},
	}
	// TrainingExamplesTable holds the schema information for the "training_examples" table.
	TrainingExamplesTable = &schema.Table{
		Name:       "training_examples",
		Columns:    TrainingExamplesColumns,
		PrimaryKey: []*schema.Column{TrainingExamplesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "trainingexample_question_id",
				Unique:  false,
				Columns: []*schema.Column{TrainingExamplesColumns[1]},
			},
			{
				Name:    "trainingexample_verdict",
				Unique:  false,
				Columns: []*schema.Column{TrainingExamplesColumns[4]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		InterviewsTable,
		LlmRequestEventsTable,
		TrainingExamplesTable,
	}
)

func init() {
}
