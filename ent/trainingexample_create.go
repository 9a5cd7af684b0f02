// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/neutrino09/intervu/ent/trainingexample"
)

// TrainingExampleCreate is the builder for creating a TrainingExample entity.
type TrainingExampleCreate struct {
	config
	mutation *TrainingExampleMutation
	hooks    []Hook
}

// SetQuestionID sets the "question_id" field.
func (_c *TrainingExampleCreate) SetQuestionID(v string) *TrainingExampleCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetQuestion sets the "question" field.
func (_c *TrainingExampleCreate) SetQuestion(v string) *TrainingExampleCreate {
	_c.mutation.SetQuestion(v)
	return _c
}

// SetAnswer sets the "answer" field.
func (_c *TrainingExampleCreate) SetAnswer(v string) *TrainingExampleCreate {
	_c.mutation.SetAnswer(v)
	return _c
}

// SetVerdict sets the "verdict" field.
func (_c *TrainingExampleCreate) SetVerdict(v trainingexample.Verdict) *TrainingExampleCreate {
	_c.mutation.SetVerdict(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TrainingExampleCreate) SetCreatedAt(v time.Time) *TrainingExampleCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TrainingExampleCreate) SetNillableCreatedAt(v *time.Time) *TrainingExampleCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the TrainingExampleMutation object of the builder.
func (_c *TrainingExampleCreate) Mutation() *TrainingExampleMutation {
	return _c.mutation
}

// Save creates the TrainingExample in the database.
func (_c *TrainingExampleCreate) Save(ctx context.Context) (*TrainingExample, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TrainingExampleCreate) SaveX(ctx context.Context) *TrainingExample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingExampleCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingExampleCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TrainingExampleCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := trainingexample.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TrainingExampleCreate) check() error {
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "TrainingExample.question_id"`)}
	}
	if _, ok := _c.mutation.Question(); !ok {
		return &ValidationError{Name: "question", err: errors.New(`ent: missing required field "TrainingExample.question"`)}
	}
	if _, ok := _c.mutation.Answer(); !ok {
		return &ValidationError{Name: "answer", err: errors.New(`ent: missing required field "TrainingExample.answer"`)}
	}
	if _, ok := _c.mutation.Verdict(); !ok {
		return &ValidationError{Name: "verdict", err: errors.New(`ent: missing required field "TrainingExample.verdict"`)}
	}
	if v, ok := _c.mutation.Verdict(); ok {
		if err := trainingexample.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "TrainingExample.verdict": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TrainingExample.created_at"`)}
	}
	return nil
}

func (_c *TrainingExampleCreate) sqlSave(ctx context.Context) (*TrainingExample, error) {
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

func (_c *TrainingExampleCreate) createSpec() (*TrainingExample, *sqlgraph.CreateSpec) {
	var (
		_node = &TrainingExample{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(trainingexample.Table, sqlgraph.NewFieldSpec(trainingexample.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(trainingexample.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Question(); ok {
		_spec.SetField(trainingexample.FieldQuestion, field.TypeString, value)
		_node.Question = value
	}
	if value, ok := _c.mutation.Answer(); ok {
		_spec.SetField(trainingexample.FieldAnswer, field.TypeString, value)
		_node.Answer = value
	}
	if value, ok := _c.mutation.Verdict(); ok {
		_spec.SetField(trainingexample.FieldVerdict, field.TypeEnum, value)
		_node.Verdict = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(trainingexample.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// TrainingExampleCreateBulk is the builder for creating many TrainingExample entities in bulk.
type TrainingExampleCreateBulk struct {
	config
	err      error
	builders []*TrainingExampleCreate
}

// Save creates the TrainingExample entities in the database.
func (_c *TrainingExampleCreateBulk) Save(ctx context.Context) ([]*TrainingExample, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TrainingExample, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TrainingExampleMutation)
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
func (_c *TrainingExampleCreateBulk) SaveX(ctx context.Context) []*TrainingExample {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TrainingExampleCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TrainingExampleCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
