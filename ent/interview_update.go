// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/neutrino09/intervu/ent/interview"
	"github.com/neutrino09/intervu/ent/predicate"
)

// InterviewUpdate is the builder for updating Interview entities.
type InterviewUpdate struct {
	config
	hooks    []Hook
	mutation *InterviewMutation
}

// Where appends a list predicates to the InterviewUpdate builder.
func (_u *InterviewUpdate) Where(ps ...predicate.Interview) *InterviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCandidate sets the "candidate" field.
func (_u *InterviewUpdate) SetCandidate(v string) *InterviewUpdate {
	_u.mutation.SetCandidate(v)
	return _u
}

// SetNillableCandidate sets the "candidate" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableCandidate(v *string) *InterviewUpdate {
	if v != nil {
		_u.SetCandidate(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *InterviewUpdate) SetTopic(v string) *InterviewUpdate {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableTopic(v *string) *InterviewUpdate {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *InterviewUpdate) SetExperienceLevel(v string) *InterviewUpdate {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableExperienceLevel(v *string) *InterviewUpdate {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *InterviewUpdate) SetQuestionIds(v []string) *InterviewUpdate {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *InterviewUpdate) AppendQuestionIds(v []string) *InterviewUpdate {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *InterviewUpdate) SetAnswers(v []string) *InterviewUpdate {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *InterviewUpdate) AppendAnswers(v []string) *InterviewUpdate {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *InterviewUpdate) SetScores(v []float64) *InterviewUpdate {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *InterviewUpdate) AppendScores(v []float64) *InterviewUpdate {
	_u.mutation.AppendScores(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *InterviewUpdate) SetFeedback(v string) *InterviewUpdate {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *InterviewUpdate) SetNillableFeedback(v *string) *InterviewUpdate {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the InterviewMutation object of the builder.
func (_u *InterviewUpdate) Mutation() *InterviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InterviewUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InterviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InterviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(interview.Table, interview.Columns, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Candidate(); ok {
		_spec.SetField(interview.FieldCandidate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(interview.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(interview.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(interview.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(interview.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(interview.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldScores, value)
		})
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(interview.FieldFeedback, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InterviewUpdateOne is the builder for updating a single Interview entity.
type InterviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InterviewMutation
}

// SetCandidate sets the "candidate" field.
func (_u *InterviewUpdateOne) SetCandidate(v string) *InterviewUpdateOne {
	_u.mutation.SetCandidate(v)
	return _u
}

// SetNillableCandidate sets the "candidate" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableCandidate(v *string) *InterviewUpdateOne {
	if v != nil {
		_u.SetCandidate(*v)
	}
	return _u
}

// SetTopic sets the "topic" field.
func (_u *InterviewUpdateOne) SetTopic(v string) *InterviewUpdateOne {
	_u.mutation.SetTopic(v)
	return _u
}

// SetNillableTopic sets the "topic" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableTopic(v *string) *InterviewUpdateOne {
	if v != nil {
		_u.SetTopic(*v)
	}
	return _u
}

// SetExperienceLevel sets the "experience_level" field.
func (_u *InterviewUpdateOne) SetExperienceLevel(v string) *InterviewUpdateOne {
	_u.mutation.SetExperienceLevel(v)
	return _u
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableExperienceLevel(v *string) *InterviewUpdateOne {
	if v != nil {
		_u.SetExperienceLevel(*v)
	}
	return _u
}

// SetQuestionIds sets the "question_ids" field.
func (_u *InterviewUpdateOne) SetQuestionIds(v []string) *InterviewUpdateOne {
	_u.mutation.SetQuestionIds(v)
	return _u
}

// AppendQuestionIds appends value to the "question_ids" field.
func (_u *InterviewUpdateOne) AppendQuestionIds(v []string) *InterviewUpdateOne {
	_u.mutation.AppendQuestionIds(v)
	return _u
}

// SetAnswers sets the "answers" field.
func (_u *InterviewUpdateOne) SetAnswers(v []string) *InterviewUpdateOne {
	_u.mutation.SetAnswers(v)
	return _u
}

// AppendAnswers appends value to the "answers" field.
func (_u *InterviewUpdateOne) AppendAnswers(v []string) *InterviewUpdateOne {
	_u.mutation.AppendAnswers(v)
	return _u
}

// SetScores sets the "scores" field.
func (_u *InterviewUpdateOne) SetScores(v []float64) *InterviewUpdateOne {
	_u.mutation.SetScores(v)
	return _u
}

// AppendScores appends value to the "scores" field.
func (_u *InterviewUpdateOne) AppendScores(v []float64) *InterviewUpdateOne {
	_u.mutation.AppendScores(v)
	return _u
}

// SetFeedback sets the "feedback" field.
func (_u *InterviewUpdateOne) SetFeedback(v string) *InterviewUpdateOne {
	_u.mutation.SetFeedback(v)
	return _u
}

// SetNillableFeedback sets the "feedback" field if the given value is not nil.
func (_u *InterviewUpdateOne) SetNillableFeedback(v *string) *InterviewUpdateOne {
	if v != nil {
		_u.SetFeedback(*v)
	}
	return _u
}

// Mutation returns the InterviewMutation object of the builder.
func (_u *InterviewUpdateOne) Mutation() *InterviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the InterviewUpdate builder.
func (_u *InterviewUpdateOne) Where(ps ...predicate.Interview) *InterviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InterviewUpdateOne) Select(field string, fields ...string) *InterviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Interview entity.
func (_u *InterviewUpdateOne) Save(ctx context.Context) (*Interview, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InterviewUpdateOne) SaveX(ctx context.Context) *Interview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InterviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InterviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *InterviewUpdateOne) sqlSave(ctx context.Context) (_node *Interview, err error) {
	_spec := sqlgraph.NewUpdateSpec(interview.Table, interview.Columns, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Interview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, interview.FieldID)
		for _, f := range fields {
			if !interview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != interview.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Candidate(); ok {
		_spec.SetField(interview.FieldCandidate, field.TypeString, value)
	}
	if value, ok := _u.mutation.Topic(); ok {
		_spec.SetField(interview.FieldTopic, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExperienceLevel(); ok {
		_spec.SetField(interview.FieldExperienceLevel, field.TypeString, value)
	}
	if value, ok := _u.mutation.QuestionIds(); ok {
		_spec.SetField(interview.FieldQuestionIds, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedQuestionIds(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldQuestionIds, value)
		})
	}
	if value, ok := _u.mutation.Answers(); ok {
		_spec.SetField(interview.FieldAnswers, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAnswers(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldAnswers, value)
		})
	}
	if value, ok := _u.mutation.Scores(); ok {
		_spec.SetField(interview.FieldScores, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedScores(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, interview.FieldScores, value)
		})
	}
	if value, ok := _u.mutation.Feedback(); ok {
		_spec.SetField(interview.FieldFeedback, field.TypeString, value)
	}
	_node = &Interview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{interview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
