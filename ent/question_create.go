// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/nclexprep/ent/question"
	"github.com/meera/nclexprep/ent/schema"
)

// QuestionCreate is the builder for creating a Question entity.
type QuestionCreate struct {
	config
	mutation *QuestionMutation
	hooks    []Hook
}

// SetQid sets the "qid" field.
func (_c *QuestionCreate) SetQid(v string) *QuestionCreate {
	_c.mutation.SetQid(v)
	return _c
}

// SetStem sets the "stem" field.
func (_c *QuestionCreate) SetStem(v string) *QuestionCreate {
	_c.mutation.SetStem(v)
	return _c
}

// SetOptions sets the "options" field.
func (_c *QuestionCreate) SetOptions(v []schema.QuestionOption) *QuestionCreate {
	_c.mutation.SetOptions(v)
	return _c
}

// SetCorrectLabel sets the "correct_label" field.
func (_c *QuestionCreate) SetCorrectLabel(v string) *QuestionCreate {
	_c.mutation.SetCorrectLabel(v)
	return _c
}

// SetRationale sets the "rationale" field.
func (_c *QuestionCreate) SetRationale(v string) *QuestionCreate {
	_c.mutation.SetRationale(v)
	return _c
}

// SetNillableRationale sets the "rationale" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableRationale(v *string) *QuestionCreate {
	if v != nil {
		_c.SetRationale(*v)
	}
	return _c
}

// SetCategory sets the "category" field.
func (_c *QuestionCreate) SetCategory(v string) *QuestionCreate {
	_c.mutation.SetCategory(v)
	return _c
}

// SetExamCategory sets the "exam_category" field.
func (_c *QuestionCreate) SetExamCategory(v string) *QuestionCreate {
	_c.mutation.SetExamCategory(v)
	return _c
}

// SetNillableExamCategory sets the "exam_category" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableExamCategory(v *string) *QuestionCreate {
	if v != nil {
		_c.SetExamCategory(*v)
	}
	return _c
}

// SetDifficulty sets the "difficulty" field.
func (_c *QuestionCreate) SetDifficulty(v string) *QuestionCreate {
	_c.mutation.SetDifficulty(v)
	return _c
}

// SetNillableDifficulty sets the "difficulty" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableDifficulty(v *string) *QuestionCreate {
	if v != nil {
		_c.SetDifficulty(*v)
	}
	return _c
}

// SetActive sets the "active" field.
func (_c *QuestionCreate) SetActive(v bool) *QuestionCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableActive(v *bool) *QuestionCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetSource sets the "source" field.
func (_c *QuestionCreate) SetSource(v string) *QuestionCreate {
	_c.mutation.SetSource(v)
	return _c
}

// SetNillableSource sets the "source" field if the given value is not nil.
func (_c *QuestionCreate) SetNillableSource(v *string) *QuestionCreate {
	if v != nil {
		_c.SetSource(*v)
	}
	return _c
}

// Mutation returns the QuestionMutation object of the builder.
func (_c *QuestionCreate) Mutation() *QuestionMutation {
	return _c.mutation
}

// Save creates the Question in the database.
func (_c *QuestionCreate) Save(ctx context.Context) (*Question, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *QuestionCreate) SaveX(ctx context.Context) *Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *QuestionCreate) defaults() {
	if _, ok := _c.mutation.Rationale(); !ok {
		v := question.DefaultRationale
		_c.mutation.SetRationale(v)
	}
	if _, ok := _c.mutation.ExamCategory(); !ok {
		v := question.DefaultExamCategory
		_c.mutation.SetExamCategory(v)
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		v := question.DefaultDifficulty
		_c.mutation.SetDifficulty(v)
	}
	if _, ok := _c.mutation.Active(); !ok {
		v := question.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.Source(); !ok {
		v := question.DefaultSource
		_c.mutation.SetSource(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *QuestionCreate) check() error {
	if _, ok := _c.mutation.Qid(); !ok {
		return &ValidationError{Name: "qid", err: errors.New(`ent: missing required field "Question.qid"`)}
	}
	if v, ok := _c.mutation.Qid(); ok {
		if err := question.QidValidator(v); err != nil {
			return &ValidationError{Name: "qid", err: fmt.Errorf(`ent: validator failed for field "Question.qid": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Stem(); !ok {
		return &ValidationError{Name: "stem", err: errors.New(`ent: missing required field "Question.stem"`)}
	}
	if v, ok := _c.mutation.Stem(); ok {
		if err := question.StemValidator(v); err != nil {
			return &ValidationError{Name: "stem", err: fmt.Errorf(`ent: validator failed for field "Question.stem": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Options(); !ok {
		return &ValidationError{Name: "options", err: errors.New(`ent: missing required field "Question.options"`)}
	}
	if _, ok := _c.mutation.CorrectLabel(); !ok {
		return &ValidationError{Name: "correct_label", err: errors.New(`ent: missing required field "Question.correct_label"`)}
	}
	if v, ok := _c.mutation.CorrectLabel(); ok {
		if err := question.CorrectLabelValidator(v); err != nil {
			return &ValidationError{Name: "correct_label", err: fmt.Errorf(`ent: validator failed for field "Question.correct_label": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Rationale(); !ok {
		return &ValidationError{Name: "rationale", err: errors.New(`ent: missing required field "Question.rationale"`)}
	}
	if _, ok := _c.mutation.Category(); !ok {
		return &ValidationError{Name: "category", err: errors.New(`ent: missing required field "Question.category"`)}
	}
	if v, ok := _c.mutation.Category(); ok {
		if err := question.CategoryValidator(v); err != nil {
			return &ValidationError{Name: "category", err: fmt.Errorf(`ent: validator failed for field "Question.category": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ExamCategory(); !ok {
		return &ValidationError{Name: "exam_category", err: errors.New(`ent: missing required field "Question.exam_category"`)}
	}
	if _, ok := _c.mutation.Difficulty(); !ok {
		return &ValidationError{Name: "difficulty", err: errors.New(`ent: missing required field "Question.difficulty"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "Question.active"`)}
	}
	if _, ok := _c.mutation.Source(); !ok {
		return &ValidationError{Name: "source", err: errors.New(`ent: missing required field "Question.source"`)}
	}
	return nil
}

func (_c *QuestionCreate) sqlSave(ctx context.Context) (*Question, error) {
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

func (_c *QuestionCreate) createSpec() (*Question, *sqlgraph.CreateSpec) {
	var (
		_node = &Question{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(question.Table, sqlgraph.NewFieldSpec(question.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Qid(); ok {
		_spec.SetField(question.FieldQid, field.TypeString, value)
		_node.Qid = value
	}
	if value, ok := _c.mutation.Stem(); ok {
		_spec.SetField(question.FieldStem, field.TypeString, value)
		_node.Stem = value
	}
	if value, ok := _c.mutation.Options(); ok {
		_spec.SetField(question.FieldOptions, field.TypeJSON, value)
		_node.Options = value
	}
	if value, ok := _c.mutation.CorrectLabel(); ok {
		_spec.SetField(question.FieldCorrectLabel, field.TypeString, value)
		_node.CorrectLabel = value
	}
	if value, ok := _c.mutation.Rationale(); ok {
		_spec.SetField(question.FieldRationale, field.TypeString, value)
		_node.Rationale = value
	}
	if value, ok := _c.mutation.Category(); ok {
		_spec.SetField(question.FieldCategory, field.TypeString, value)
		_node.Category = value
	}
	if value, ok := _c.mutation.ExamCategory(); ok {
		_spec.SetField(question.FieldExamCategory, field.TypeString, value)
		_node.ExamCategory = value
	}
	if value, ok := _c.mutation.Difficulty(); ok {
		_spec.SetField(question.FieldDifficulty, field.TypeString, value)
		_node.Difficulty = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(question.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.Source(); ok {
		_spec.SetField(question.FieldSource, field.TypeString, value)
		_node.Source = value
	}
	return _node, _spec
}

// QuestionCreateBulk is the builder for creating many Question entities in bulk.
type QuestionCreateBulk struct {
	config
	err      error
	builders []*QuestionCreate
}

// Save creates the Question entities in the database.
func (_c *QuestionCreateBulk) Save(ctx context.Context) ([]*Question, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Question, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*QuestionMutation)
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
func (_c *QuestionCreateBulk) SaveX(ctx context.Context) []*Question {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *QuestionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *QuestionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
