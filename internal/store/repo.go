package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter to this purpose ("" = all)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEventRecord is a persisted LLM request event.
type LLMRequestEventRecord struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// LLMUsageStats aggregates token usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates token usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// EventRepo provides append and query access to LLM request events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns events newest first, subject to opts.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEventRecord, error)

	// GetLLMEvent returns one event by ID, or nil if it doesn't exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEventRecord, error)

	// LLMUsageByPurpose aggregates usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// InterviewData captures a finished interview for persistence.
type InterviewData struct {
	SessionID       string
	Candidate       string
	Topic           string
	ExperienceLevel string
	QuestionIDs     []string
	Answers         []string
	Scores          []float64
	Feedback        string
	ConductedAt     time.Time
}

// InterviewRecord is a persisted interview.
type InterviewRecord struct {
	ID int
	InterviewData
}

// InterviewRepo stores completed interviews.
type InterviewRepo interface {
	// Save persists a finished interview.
	Save(ctx context.Context, data InterviewData) error

	// List returns interviews newest first, up to limit (0 = unlimited).
	List(ctx context.Context, limit int) ([]InterviewRecord, error)
}

// TrainingExampleData is one labeled answer for the scoring dataset.
type TrainingExampleData struct {
	QuestionID string
	Question   string
	Answer     string
	Label      string
}

// TrainingExampleRecord is a persisted training example.
type TrainingExampleRecord struct {
	ID        int
	CreatedAt time.Time
	TrainingExampleData
}

// TrainingRepo stores synthetic labeled answers.
type TrainingRepo interface {
	// Append persists one training example.
	Append(ctx context.Context, data TrainingExampleData) error

	// List returns examples newest first, up to limit (0 = unlimited).
	List(ctx context.Context, limit int) ([]TrainingExampleRecord, error)
}
