// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/neutrino09/intervu/ent/interview"
)

// InterviewCreate is the builder for creating a Interview entity.
type InterviewCreate struct {
	config
	mutation *InterviewMutation
	hooks    []Hook
}

// SetSessionID sets the "session_id" field.
func (_c *InterviewCreate) SetSessionID(v string) *InterviewCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetCandidate sets the "candidate" field.
func (_c *InterviewCreate) SetCandidate(v string) *InterviewCreate {
	_c.mutation.SetCandidate(v)
	return _c
}

// SetTopic sets the "topic" field.
func (_c *InterviewCreate) SetTopic(v string) *InterviewCreate {
	_c.mutation.SetTopic(v)
	return _c
}

// SetExperienceLevel sets the "experience_level" field.
func (_c *InterviewCreate) SetExperienceLevel(v string) *InterviewCreate {
	_c.mutation.SetExperienceLevel(v)
	return _c
}

// SetNillableExperienceLevel sets the "experience_level" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableExperienceLevel(v *string) *InterviewCreate {
	if v != nil {
		_c.SetExperienceLevel(*v)
	}
	return _c
}

// SetQuestionIds sets the "question_ids" field.
func (_c *InterviewCreate) SetQuestionIds(v []string) *InterviewCreate {
	_c.mutation.SetQuestionIds(v)
	return _c
}

// SetAnswers sets the "answers" field.
func (_c *InterviewCreate) SetAnswers(v []string) *InterviewCreate {
	_c.mutation.SetAnswers(v)
	return _c
}

// SetScores sets the "scores" field.
func (_c *InterviewCreate) SetScores(v []float64) *InterviewCreate {
	_c.mutation.SetScores(v)
	return _c
}

// SetFeedback sets the "feedback" field.
func (_c *InterviewCreate) SetFeedback(v string) *InterviewCreate {
	_c.mutation.SetFeedback(v)
	return _c
}

// SetConductedAt sets the "conducted_at" field.
func (_c *InterviewCreate) SetConductedAt(v time.Time) *InterviewCreate {
	_c.mutation.SetConductedAt(v)
	return _c
}

// SetNillableConductedAt sets the "conducted_at" field if the given value is not nil.
func (_c *InterviewCreate) SetNillableConductedAt(v *time.Time) *InterviewCreate {
	if v != nil {
		_c.SetConductedAt(*v)
	}
	return _c
}

// Mutation returns the InterviewMutation object of the builder.
func (_c *InterviewCreate) Mutation() *InterviewMutation {
	return _c.mutation
}

// Save creates the Interview in the database.
func (_c *InterviewCreate) Save(ctx context.Context) (*Interview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *InterviewCreate) SaveX(ctx context.Context) *Interview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *InterviewCreate) defaults() {
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		v := interview.DefaultExperienceLevel
		_c.mutation.SetExperienceLevel(v)
	}
	if _, ok := _c.mutation.ConductedAt(); !ok {
		v := interview.DefaultConductedAt()
		_c.mutation.SetConductedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *InterviewCreate) check() error {
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "Interview.session_id"`)}
	}
	if _, ok := _c.mutation.Candidate(); !ok {
		return &ValidationError{Name: "candidate", err: errors.New(`ent: missing required field "Interview.candidate"`)}
	}
	if _, ok := _c.mutation.Topic(); !ok {
		return &ValidationError{Name: "topic", err: errors.New(`ent: missing required field "Interview.topic"`)}
	}
	if _, ok := _c.mutation.ExperienceLevel(); !ok {
		return &ValidationError{Name: "experience_level", err: errors.New(`ent: missing required field "Interview.experience_level"`)}
	}
	if _, ok := _c.mutation.QuestionIds(); !ok {
		return &ValidationError{Name: "question_ids", err: errors.New(`ent: missing required field "Interview.question_ids"`)}
	}
	if _, ok := _c.mutation.Answers(); !ok {
		return &ValidationError{Name: "answers", err: errors.New(`ent: missing required field "Interview.answers"`)}
	}
	if _, ok := _c.mutation.Scores(); !ok {
		return &ValidationError{Name: "scores", err: errors.New(`ent: missing required field "Interview.scores"`)}
	}
	if _, ok := _c.mutation.Feedback(); !ok {
		return &ValidationError{Name: "feedback", err: errors.New(`ent: missing required field "Interview.feedback"`)}
	}
	if _, ok := _c.mutation.ConductedAt(); !ok {
		return &ValidationError{Name: "conducted_at", err: errors.New(`ent: missing required field "Interview.conducted_at"`)}
	}
	return nil
}

func (_c *InterviewCreate) sqlSave(ctx context.Context) (*Interview, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *InterviewCreate) createSpec() (*Interview, *sqlgraph.CreateSpec) {
	var (
		_node = &Interview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(interview.Table, sqlgraph.NewFieldSpec(interview.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(interview.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Candidate(); ok {
		_spec.SetField(interview.FieldCandidate, field.TypeString, value)
		_node.Candidate = value
	}
	if value, ok := _c.mutation.Topic(); ok {
		_spec.SetField(interview.FieldTopic, field.TypeString, value)
		_node.Topic = value
	}
	if value, ok := _c.mutation.ExperienceLevel(); ok {
		_spec.SetField(interview.FieldExperienceLevel, field.TypeString, value)
		_node.ExperienceLevel = value
	}
	if value, ok := _c.mutation.QuestionIds(); ok {
		_spec.SetField(interview.FieldQuestionIds, field.TypeJSON, value)
		_node.QuestionIds = value
	}
	if value, ok := _c.mutation.Answers(); ok {
		_spec.SetField(interview.FieldAnswers, field.TypeJSON, value)
		_node.Answers = value
	}
	if value, ok := _c.mutation.Scores(); ok {
		_spec.SetField(interview.FieldScores, field.TypeJSON, value)
		_node.Scores = value
	}
	if value, ok := _c.mutation.Feedback(); ok {
		_spec.SetField(interview.FieldFeedback, field.TypeString, value)
		_node.Feedback = value
	}
	if value, ok := _c.mutation.ConductedAt(); ok {
		_spec.SetField(interview.FieldConductedAt, field.TypeTime, value)
		_node.ConductedAt = value
	}
	return _node, _spec
}

// InterviewCreateBulk is the builder for creating many Interview entities in bulk.
type InterviewCreateBulk struct {
	config
	err      error
	builders []*InterviewCreate
}

// Save creates the Interview entities in the database.
func (_c *InterviewCreateBulk) Save(ctx context.Context) ([]*Interview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Interview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*InterviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *InterviewCreateBulk) SaveX(ctx context.Context) []*Interview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *InterviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *InterviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
