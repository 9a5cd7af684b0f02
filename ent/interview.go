// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/neutrino09/intervu/ent/interview"
)

// Interview is the model entity for the Interview schema.
type Interview struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the session this record came from
	SessionID string `json:"session_id,omitempty"`
	// Candidate name as entered
	Candidate string `json:"candidate,omitempty"`
	// Interview subject area
	Topic string `json:"topic,omitempty"`
	// Classified experience: beginner, intermediate, advanced
	ExperienceLevel string `json:"experience_level,omitempty"`
	// IDs of the questions asked, in order
	QuestionIds []string `json:"question_ids,omitempty"`
	// Candidate answers, aligned with question_ids
	Answers []string `json:"answers,omitempty"`
	// Answer scores in [0,1], aligned with question_ids
	Scores []float64 `json:"scores,omitempty"`
	// Closing feedback report
	Feedback string `json:"feedback,omitempty"`
	// When the interview took place
	ConductedAt  time.Time `json:"conducted_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Interview) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case interview.FieldQuestionIds, interview.FieldAnswers, interview.FieldScores:
			values[i] = new([]byte)
		case interview.FieldID:
			values[i] = new(sql.NullInt64)
		case interview.FieldSessionID, interview.FieldCandidate, interview.FieldTopic, interview.FieldExperienceLevel, interview.FieldFeedback:
			values[i] = new(sql.NullString)
		case interview.FieldConductedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Interview fields.
func (_m *Interview) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case interview.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case interview.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				_m.SessionID = value.String
			}
		case interview.FieldCandidate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field candidate", values[i])
			} else if value.Valid {
				_m.Candidate = value.String
			}
		case interview.FieldTopic:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field topic", values[i])
			} else if value.Valid {
				_m.Topic = value.String
			}
		case interview.FieldExperienceLevel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field experience_level", values[i])
			} else if value.Valid {
				_m.ExperienceLevel = value.String
			}
		case interview.FieldQuestionIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field question_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.QuestionIds); err != nil {
					return fmt.Errorf("unmarshal field question_ids: %w", err)
				}
			}
		case interview.FieldAnswers:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field answers", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Answers); err != nil {
					return fmt.Errorf("unmarshal field answers: %w", err)
				}
			}
		case interview.FieldScores:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field scores", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Scores); err != nil {
					return fmt.Errorf("unmarshal field scores: %w", err)
				}
			}
		case interview.FieldFeedback:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field feedback", values[i])
			} else if value.Valid {
				_m.Feedback = value.String
			}
		case interview.FieldConductedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field conducted_at", values[i])
			} else if value.Valid {
				_m.ConductedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Interview.
// This includes values selected through modifiers, order, etc.
func (_m *Interview) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Interview.
// Note that you need to call Interview.Unwrap() before calling this method if this Interview
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Interview) Update() *InterviewUpdateOne {
	return NewInterviewClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Interview entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Interview) Unwrap() *Interview {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Interview is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Interview) String() string {
	var builder strings.Builder
	builder.WriteString("Interview(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("session_id=")
	builder.WriteString(_m.SessionID)
	builder.WriteString(", ")
	builder.WriteString("candidate=")
	builder.WriteString(_m.Candidate)
	builder.WriteString(", ")
	builder.WriteString("topic=")
	builder.WriteString(_m.Topic)
	builder.WriteString(", ")
	builder.WriteString("experience_level=")
	builder.WriteString(_m.ExperienceLevel)
	builder.WriteString(", ")
	builder.WriteString("question_ids=")
	builder.WriteString(fmt.Sprintf("%v", _m.QuestionIds))
	builder.WriteString(", ")
	builder.WriteString("answers=")
	builder.WriteString(fmt.Sprintf("%v", _m.Answers))
	builder.WriteString(", ")
	builder.WriteString("scores=")
	builder.WriteString(fmt.Sprintf("%v", _m.Scores))
	builder.WriteString(", ")
	builder.WriteString("feedback=")
	builder.WriteString(_m.Feedback)
	builder.WriteString(", ")
	builder.WriteString("conducted_at=")
	builder.WriteString(_m.ConductedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Interviews is a parsable slice of Interview.
type Interviews []*Interview
