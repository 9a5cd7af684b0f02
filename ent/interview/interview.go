// Code generated by ent, DO NOT EDIT.

package interview

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the interview type in the database.
	Label = "interview"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldCandidate holds the string denoting the candidate field in the database.
	FieldCandidate = "candidate"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldExperienceLevel holds the string denoting the experience_level field in the database.
	FieldExperienceLevel = "experience_level"
	// FieldQuestionIds holds the string denoting the question_ids field in the database.
	FieldQuestionIds = "question_ids"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldScores holds the string denoting the scores field in the database.
	FieldScores = "scores"
	// FieldFeedback holds the string denoting the feedback field in the database.
	FieldFeedback = "feedback"
	// FieldConductedAt holds the string denoting the conducted_at field in the database.
	FieldConductedAt = "conducted_at"
	// Table holds the table name of the interview in the database.
	Table = "interviews"
)

// Columns holds all SQL columns for interview fields.
var Columns = []string{
	FieldID,
	FieldSessionID,
	FieldCandidate,
	FieldTopic,
	FieldExperienceLevel,
	FieldQuestionIds,
	FieldAnswers,
	FieldScores,
	FieldFeedback,
	FieldConductedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultExperienceLevel holds the default value on creation for the "experience_level" field.
	DefaultExperienceLevel string
	// DefaultConductedAt holds the default value on creation for the "conducted_at" field.
	DefaultConductedAt func() time.Time
)

// OrderOption defines the ordering options for the Interview queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByCandidate orders the results by the candidate field.
func ByCandidate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCandidate, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByExperienceLevel orders the results by the experience_level field.
func ByExperienceLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExperienceLevel, opts...).ToFunc()
}

// ByFeedback orders the results by the feedback field.
func ByFeedback(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFeedback, opts...).ToFunc()
}

// ByConductedAt orders the results by the conducted_at field.
func ByConductedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConductedAt, opts...).ToFunc()
}
