// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/neutrino09/intervu/ent/predicate"
	"github.com/neutrino09/intervu/ent/trainingexample"
)

// TrainingExampleUpdate is the builder for updating TrainingExample entities.
type TrainingExampleUpdate struct {
	config
	hooks    []Hook
	mutation *TrainingExampleMutation
}

// Where appends a list predicates to the TrainingExampleUpdate builder.
func (_u *TrainingExampleUpdate) Where(ps ...predicate.TrainingExample) *TrainingExampleUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetQuestionID sets the "question_id" field.
func (_u *TrainingExampleUpdate) SetQuestionID(v string) *TrainingExampleUpdate {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TrainingExampleUpdate) SetNillableQuestionID(v *string) *TrainingExampleUpdate {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TrainingExampleUpdate) SetQuestion(v string) *TrainingExampleUpdate {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TrainingExampleUpdate) SetNillableQuestion(v *string) *TrainingExampleUpdate {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TrainingExampleUpdate) SetAnswer(v string) *TrainingExampleUpdate {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TrainingExampleUpdate) SetNillableAnswer(v *string) *TrainingExampleUpdate {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *TrainingExampleUpdate) SetVerdict(v trainingexample.Verdict) *TrainingExampleUpdate {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *TrainingExampleUpdate) SetNillableVerdict(v *trainingexample.Verdict) *TrainingExampleUpdate {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// Mutation returns the TrainingExampleMutation object of the builder.
func (_u *TrainingExampleUpdate) Mutation() *TrainingExampleMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TrainingExampleUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingExampleUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TrainingExampleUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingExampleUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingExampleUpdate) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := trainingexample.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "TrainingExample.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingExampleUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingexample.Table, trainingexample.Columns, sqlgraph.NewFieldSpec(trainingexample.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(trainingexample.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(trainingexample.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(trainingexample.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(trainingexample.FieldVerdict, field.TypeEnum, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingexample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TrainingExampleUpdateOne is the builder for updating a single TrainingExample entity.
type TrainingExampleUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TrainingExampleMutation
}

// SetQuestionID sets the "question_id" field.
func (_u *TrainingExampleUpdateOne) SetQuestionID(v string) *TrainingExampleUpdateOne {
	_u.mutation.SetQuestionID(v)
	return _u
}

// SetNillableQuestionID sets the "question_id" field if the given value is not nil.
func (_u *TrainingExampleUpdateOne) SetNillableQuestionID(v *string) *TrainingExampleUpdateOne {
	if v != nil {
		_u.SetQuestionID(*v)
	}
	return _u
}

// SetQuestion sets the "question" field.
func (_u *TrainingExampleUpdateOne) SetQuestion(v string) *TrainingExampleUpdateOne {
	_u.mutation.SetQuestion(v)
	return _u
}

// SetNillableQuestion sets the "question" field if the given value is not nil.
func (_u *TrainingExampleUpdateOne) SetNillableQuestion(v *string) *TrainingExampleUpdateOne {
	if v != nil {
		_u.SetQuestion(*v)
	}
	return _u
}

// SetAnswer sets the "answer" field.
func (_u *TrainingExampleUpdateOne) SetAnswer(v string) *TrainingExampleUpdateOne {
	_u.mutation.SetAnswer(v)
	return _u
}

// SetNillableAnswer sets the "answer" field if the given value is not nil.
func (_u *TrainingExampleUpdateOne) SetNillableAnswer(v *string) *TrainingExampleUpdateOne {
	if v != nil {
		_u.SetAnswer(*v)
	}
	return _u
}

// SetVerdict sets the "verdict" field.
func (_u *TrainingExampleUpdateOne) SetVerdict(v trainingexample.Verdict) *TrainingExampleUpdateOne {
	_u.mutation.SetVerdict(v)
	return _u
}

// SetNillableVerdict sets the "verdict" field if the given value is not nil.
func (_u *TrainingExampleUpdateOne) SetNillableVerdict(v *trainingexample.Verdict) *TrainingExampleUpdateOne {
	if v != nil {
		_u.SetVerdict(*v)
	}
	return _u
}

// Mutation returns the TrainingExampleMutation object of the builder.
func (_u *TrainingExampleUpdateOne) Mutation() *TrainingExampleMutation {
	return _u.mutation
}

// Where appends a list predicates to the TrainingExampleUpdate builder.
func (_u *TrainingExampleUpdateOne) Where(ps ...predicate.TrainingExample) *TrainingExampleUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TrainingExampleUpdateOne) Select(field string, fields ...string) *TrainingExampleUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TrainingExample entity.
func (_u *TrainingExampleUpdateOne) Save(ctx context.Context) (*TrainingExample, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TrainingExampleUpdateOne) SaveX(ctx context.Context) *TrainingExample {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TrainingExampleUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TrainingExampleUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TrainingExampleUpdateOne) check() error {
	if v, ok := _u.mutation.Verdict(); ok {
		if err := trainingexample.VerdictValidator(v); err != nil {
			return &ValidationError{Name: "verdict", err: fmt.Errorf(`ent: validator failed for field "TrainingExample.verdict": %w`, err)}
		}
	}
	return nil
}

func (_u *TrainingExampleUpdateOne) sqlSave(ctx context.Context) (_node *TrainingExample, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(trainingexample.Table, trainingexample.Columns, sqlgraph.NewFieldSpec(trainingexample.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TrainingExample.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, trainingexample.FieldID)
		for _, f := range fields {
			if !trainingexample.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != trainingexample.FieldID {
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
	if value, ok := _u.mutation.QuestionID(); ok {
		_spec.SetField(trainingexample.FieldQuestionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Question(); ok {
		_spec.SetField(trainingexample.FieldQuestion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Answer(); ok {
		_spec.SetField(trainingexample.FieldAnswer, field.TypeString, value)
	}
	if value, ok := _u.mutation.Verdict(); ok {
		_spec.SetField(trainingexample.FieldVerdict, field.TypeEnum, value)
	}
	_node = &TrainingExample{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{trainingexample.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
