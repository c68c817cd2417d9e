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
	"github.com/meera/nclexprep/ent/predicate"
	"github.com/meera/nclexprep/ent/question"
	"github.com/meera/nclexprep/ent/schema"
)

// QuestionUpdate is the builder for updating Question entities.
type QuestionUpdate struct {
	config
	hooks    []Hook
	mutation *QuestionMutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdate) Where(ps ...predicate.Question) *QuestionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdate) SetStem(v string) *QuestionUpdate {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableStem(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdate) SetOptions(v []schema.QuestionOption) *QuestionUpdate {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdate) AppendOptions(v []schema.QuestionOption) *QuestionUpdate {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectLabel sets the "correct_label" field.
func (_u *QuestionUpdate) SetCorrectLabel(v string) *QuestionUpdate {
	_u.mutation.SetCorrectLabel(v)
	return _u
}

// SetNillableCorrectLabel sets the "correct_label" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCorrectLabel(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCorrectLabel(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuestionUpdate) SetRationale(v string) *QuestionUpdate {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableRationale(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestionUpdate) SetCategory(v string) *QuestionUpdate {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableCategory(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetExamCategory sets the "exam_category" field.
func (_u *QuestionUpdate) SetExamCategory(v string) *QuestionUpdate {
	_u.mutation.SetExamCategory(v)
	return _u
}

// SetNillableExamCategory sets the "exam_category" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableExamCategory(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetExamCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdate) SetDifficulty(v string) *QuestionUpdate {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableDifficulty(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionUpdate) SetActive(v bool) *QuestionUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableActive(v *bool) *QuestionUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuestionUpdate) SetSource(v string) *QuestionUpdate {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionUpdate) SetNillableSource(v *string) *QuestionUpdate {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdate) Mutation() *QuestionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *QuestionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *QuestionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdate) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectLabel(); ok {
		if err := question.CorrectLabelValidator(v); err != nil {
			return &ValidationError{Name: "correct_label", err: fmt.Errorf(`ent: validator failed for field "Question.correct_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := question.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Question.category": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectLabel(); ok {
		_spec.SetField(question.FieldCorrectLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCategory(); ok {
		_spec.SetField(question.FieldExamCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(question.FieldSource, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// QuestionUpdateOne is the builder for updating a single Question entity.
type QuestionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *QuestionMutation
}

// SetStem sets the "stem" field.
func (_u *QuestionUpdateOne) SetStem(v string) *QuestionUpdateOne {
	_u.mutation.SetStem(v)
	return _u
}

// SetNillableStem sets the "stem" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableStem(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetStem(*v)
	}
	return _u
}

// SetOptions sets the "options" field.
func (_u *QuestionUpdateOne) SetOptions(v []schema.QuestionOption) *QuestionUpdateOne {
	_u.mutation.SetOptions(v)
	return _u
}

// AppendOptions appends value to the "options" field.
func (_u *QuestionUpdateOne) AppendOptions(v []schema.QuestionOption) *QuestionUpdateOne {
	_u.mutation.AppendOptions(v)
	return _u
}

// SetCorrectLabel sets the "correct_label" field.
func (_u *QuestionUpdateOne) SetCorrectLabel(v string) *QuestionUpdateOne {
	_u.mutation.SetCorrectLabel(v)
	return _u
}

// SetNillableCorrectLabel sets the "correct_label" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCorrectLabel(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCorrectLabel(*v)
	}
	return _u
}

// SetRationale sets the "rationale" field.
func (_u *QuestionUpdateOne) SetRationale(v string) *QuestionUpdateOne {
	_u.mutation.SetRationale(v)
	return _u
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableRationale(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetRationale(*v)
	}
	return _u
}

// SetCategory sets the "category" field.
func (_u *QuestionUpdateOne) SetCategory(v string) *QuestionUpdateOne {
	_u.mutation.SetCategory(v)
	return _u
}

// SetNillableCategory sets the "category" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableCategory(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetCategory(*v)
	}
	return _u
}

// SetExamCategory sets the "exam_category" field.
func (_u *QuestionUpdateOne) SetExamCategory(v string) *QuestionUpdateOne {
	_u.mutation.SetExamCategory(v)
	return _u
}

// SetNillableExamCategory sets the "exam_category" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableExamCategory(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetExamCategory(*v)
	}
	return _u
}

// SetDifficulty sets the "difficulty" field.
func (_u *QuestionUpdateOne) SetDifficulty(v string) *QuestionUpdateOne {
	_u.mutation.SetDifficulty(v)
	return _u
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableDifficulty(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetDifficulty(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *QuestionUpdateOne) SetActive(v bool) *QuestionUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableActive(v *bool) *QuestionUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetSource sets the "source" field.
func (_u *QuestionUpdateOne) SetSource(v string) *QuestionUpdateOne {
	_u.mutation.SetSource(v)
	return _u
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_u *QuestionUpdateOne) SetNillableSource(v *string) *QuestionUpdateOne {
	if v != nil {
		_u.SetSource(*v)
	}
	return _u
}

// Mutation returns the QuestionMutation object of the builder.
func (_u *QuestionUpdateOne) Mutation() *QuestionMutation {
	return _u.mutation
}

// Where appends a list predicates to the QuestionUpdate builder.
func (_u *QuestionUpdateOne) Where(ps ...predicate.Question) *QuestionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *QuestionUpdateOne) Select(field string, fields ...string) *QuestionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Question entity.
func (_u *QuestionUpdateOne) Save(ctx context.Context) (*Question, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *QuestionUpdateOne) SaveX(ctx context.Context) *Question {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *QuestionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *QuestionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *QuestionUpdateOne) check() error {
	if v, ok := _u.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if v, ok := _u.mutation.CorrectLabel(); ok {
		if err := question.CorrectLabelValidator(v); err != nil {
			return &ValidationError{Name: "correct_label", err: fmt.Errorf(`ent: validator failed for field "Question.correct_label": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Category(); ok {
		if err := question.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Question.category": %w`, err)}
		}
	}
	return nil
}

func (_u *QuestionUpdateOne) sqlSave(ctx context.Context) (_node *Question, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(question.Table, question.Columns, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Question.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, question.FieldID)
		for _, f := range fields {
			if !question.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != question.FieldID {
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
	if value, ok := _u.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
	}
	if value, ok := _u.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedOptions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, question.FieldOptions, value)
		})
	}
	if value, ok := _u.mutation.CorrectLabel(); ok {
		_spec.SetField(question.FieldCorrectLabel, field.TypeString, value)
	}
	if value, ok := _u.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
	}
	if value, ok := _u.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExamCategory(); ok {
		_spec.SetField(question.FieldExamCategory, field.TypeString, value)
	}
	if value, ok := _u.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Source(); ok {
		_spec.SetField(question.FieldSource, field.TypeString, value)
	}
	_node = &Question{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{question.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
