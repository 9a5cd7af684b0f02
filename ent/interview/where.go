// Code generated by ent, DO NOT EDIT.

package interview

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/neutrino09/intervu/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldID, id))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldSessionID, v))
}

// Candidate applies equality check predicate on the "candidate" field. It's identical to CandidateEQ.
func Candidate(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldCandidate, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldTopic, v))
}

// ExperienceLevel applies equality check predicate on the "experience_level" field. It's identical to ExperienceLevelEQ.
func ExperienceLevel(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldExperienceLevel, v))
}

// Feedback applies equality check predicate on the "feedback" field. It's identical to FeedbackEQ.
func Feedback(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldFeedback, v))
}

// ConductedAt applies equality check predicate on the "conducted_at" field. It's identical to ConductedAtEQ.
func ConductedAt(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldConductedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldSessionID, v))
}

// CandidateEQ applies the EQ predicate on the "candidate" field.
func CandidateEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldCandidate, v))
}

// CandidateNEQ applies the NEQ predicate on the "candidate" field.
func CandidateNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldCandidate, v))
}

// CandidateIn applies the In predicate on the "candidate" field.
func CandidateIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldCandidate, vs...))
}

// CandidateNotIn applies the NotIn predicate on the "candidate" field.
func CandidateNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldCandidate, vs...))
}

// CandidateGT applies the GT predicate on the "candidate" field.
func CandidateGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldCandidate, v))
}

// CandidateGTE applies the GTE predicate on the "candidate" field.
func CandidateGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldCandidate, v))
}

// CandidateLT applies the LT predicate on the "candidate" field.
func CandidateLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldCandidate, v))
}

// CandidateLTE applies the LTE predicate on the "candidate" field.
func CandidateLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldCandidate, v))
}

// CandidateContains applies the Contains predicate on the "candidate" field.
func CandidateContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldCandidate, v))
}

// CandidateHasPrefix applies the HasPrefix predicate on the "candidate" field.
func CandidateHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldCandidate, v))
}

// CandidateHasSuffix applies the HasSuffix predicate on the "candidate" field.
func CandidateHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldCandidate, v))
}

// CandidateEqualFold applies the EqualFold predicate on the "candidate" field.
func CandidateEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldCandidate, v))
}

// CandidateContainsFold applies the ContainsFold predicate on the "candidate" field.
func CandidateContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldCandidate, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldTopic, v))
}

// ExperienceLevelEQ applies the EQ predicate on the "experience_level" field.
func ExperienceLevelEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldExperienceLevel, v))
}

// ExperienceLevelNEQ applies the NEQ predicate on the "experience_level" field.
func ExperienceLevelNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldExperienceLevel, v))
}

// ExperienceLevelIn applies the In predicate on the "experience_level" field.
func ExperienceLevelIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelNotIn applies the NotIn predicate on the "experience_level" field.
func ExperienceLevelNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldExperienceLevel, vs...))
}

// ExperienceLevelGT applies the GT predicate on the "experience_level" field.
func ExperienceLevelGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldExperienceLevel, v))
}

// ExperienceLevelGTE applies the GTE predicate on the "experience_level" field.
func ExperienceLevelGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldExperienceLevel, v))
}

// ExperienceLevelLT applies the LT predicate on the "experience_level" field.
func ExperienceLevelLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldExperienceLevel, v))
}

// ExperienceLevelLTE applies the LTE predicate on the "experience_level" field.
func ExperienceLevelLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldExperienceLevel, v))
}

// ExperienceLevelContains applies the Contains predicate on the "experience_level" field.
func ExperienceLevelContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldExperienceLevel, v))
}

// ExperienceLevelHasPrefix applies the HasPrefix predicate on the "experience_level" field.
func ExperienceLevelHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldExperienceLevel, v))
}

// ExperienceLevelHasSuffix applies the HasSuffix predicate on the "experience_level" field.
func ExperienceLevelHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldExperienceLevel, v))
}

// ExperienceLevelEqualFold applies the EqualFold predicate on the "experience_level" field.
func ExperienceLevelEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldExperienceLevel, v))
}

// ExperienceLevelContainsFold applies the ContainsFold predicate on the "experience_level" field.
func ExperienceLevelContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldExperienceLevel, v))
}

// FeedbackEQ applies the EQ predicate on the "feedback" field.
func FeedbackEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldFeedback, v))
}

// FeedbackNEQ applies the NEQ predicate on the "feedback" field.
func FeedbackNEQ(v string) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldFeedback, v))
}

// FeedbackIn applies the In predicate on the "feedback" field.
func FeedbackIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldFeedback, vs...))
}

// FeedbackNotIn applies the NotIn predicate on the "feedback" field.
func FeedbackNotIn(vs ...string) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldFeedback, vs...))
}

// FeedbackGT applies the GT predicate on the "feedback" field.
func FeedbackGT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldFeedback, v))
}

// FeedbackGTE applies the GTE predicate on the "feedback" field.
func FeedbackGTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldFeedback, v))
}

// FeedbackLT applies the LT predicate on the "feedback" field.
func FeedbackLT(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldFeedback, v))
}

// FeedbackLTE applies the LTE predicate on the "feedback" field.
func FeedbackLTE(v string) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldFeedback, v))
}

// FeedbackContains applies the Contains predicate on the "feedback" field.
func FeedbackContains(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContains(FieldFeedback, v))
}

// FeedbackHasPrefix applies the HasPrefix predicate on the "feedback" field.
func FeedbackHasPrefix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasPrefix(FieldFeedback, v))
}

// FeedbackHasSuffix applies the HasSuffix predicate on the "feedback" field.
func FeedbackHasSuffix(v string) predicate.Interview {
	return predicate.Interview(sql.FieldHasSuffix(FieldFeedback, v))
}

// FeedbackEqualFold applies the EqualFold predicate on the "feedback" field.
func FeedbackEqualFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldEqualFold(FieldFeedback, v))
}

// FeedbackContainsFold applies the ContainsFold predicate on the "feedback" field.
func FeedbackContainsFold(v string) predicate.Interview {
	return predicate.Interview(sql.FieldContainsFold(FieldFeedback, v))
}

// ConductedAtEQ applies the EQ predicate on the "conducted_at" field.
func ConductedAtEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldEQ(FieldConductedAt, v))
}

// ConductedAtNEQ applies the NEQ predicate on the "conducted_at" field.
func ConductedAtNEQ(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNEQ(FieldConductedAt, v))
}

// ConductedAtIn applies the In predicate on the "conducted_at" field.
func ConductedAtIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldIn(FieldConductedAt, vs...))
}

// ConductedAtNotIn applies the NotIn predicate on the "conducted_at" field.
func ConductedAtNotIn(vs ...time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldNotIn(FieldConductedAt, vs...))
}

// ConductedAtGT applies the GT predicate on the "conducted_at" field.
func ConductedAtGT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGT(FieldConductedAt, v))
}

// ConductedAtGTE applies the GTE predicate on the "conducted_at" field.
func ConductedAtGTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldGTE(FieldConductedAt, v))
}

// ConductedAtLT applies the LT predicate on the "conducted_at" field.
func ConductedAtLT(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLT(FieldConductedAt, v))
}

// ConductedAtLTE applies the LTE predicate on the "conducted_at" field.
func ConductedAtLTE(v time.Time) predicate.Interview {
	return predicate.Interview(sql.FieldLTE(FieldConductedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Interview) predicate.Interview {
	return predicate.Interview(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Interview) predicate.Interview {
	return predicate.Interview(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Interview) predicate.Interview {
	return predicate.Interview(sql.NotPredicates(p))
}
