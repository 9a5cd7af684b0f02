package questionbank

// Level is the difficulty tier of a question.
type Level string

const (
	LevelEasy   Level = "easy"
	LevelMedium Level = "medium"
	LevelHard   Level = "hard"
)

// Type selects the evaluation strategy for a question.
type Type string

const (
	// TypeFormula means the answer is checked by literal substring match
	// against the Expected list.
	TypeFormula Type = "formula"

	// TypeFreetext means the answer is scored by semantic similarity
	// against the Reference text.
	TypeFreetext Type = "freetext"
)

// Question is a single interview question. Questions are immutable once
// loaded; the bank owns them for the life of the process.
type Question struct {
	// ID uniquely identifies the question within the bank.
	ID string `json:"id"`

	// Topic is the subject area, e.g. "excel". Matched case-insensitively.
	Topic string `json:"topic"`

	// Prompt is the question text shown to the candidate.
	Prompt string `json:"prompt"`

	// Level is the difficulty tier.
	Level Level `json:"level"`

	// Type selects how the answer is scored.
	Type Type `json:"type"`

	// Expected lists acceptable literal answers. Formula questions only.
	Expected []string `json:"expected,omitempty"`

	// Reference is the canonical answer text. Freetext questions only.
	Reference string `json:"reference,omitempty"`
}
