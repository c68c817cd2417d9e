// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/nclexprep/ent/reviewentry"
)

// ReviewEntryCreate is the builder for creating a ReviewEntry entity.
type ReviewEntryCreate struct {
	config
	mutation *ReviewEntryMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ReviewEntryCreate) SetUserID(v string) *ReviewEntryCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetQuestionID sets the "question_id" field.
func (_c *ReviewEntryCreate) SetQuestionID(v string) *ReviewEntryCreate {
	_c.mutation.SetQuestionID(v)
	return _c
}

// SetReason sets the "reason" field.
func (_c *ReviewEntryCreate) SetReason(v string) *ReviewEntryCreate {
	_c.mutation.SetReason(v)
	return _c
}

// SetDueAt sets the "due_at" field.
func (_c *ReviewEntryCreate) SetDueAt(v time.Time) *ReviewEntryCreate {
	_c.mutation.SetDueAt(v)
	return _c
}

// SetIntervalDays sets the "interval_days" field.
func (_c *ReviewEntryCreate) SetIntervalDays(v int) *ReviewEntryCreate {
	_c.mutation.SetIntervalDays(v)
	return _c
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableIntervalDays(v *int) *ReviewEntryCreate {
	if v != nil {
		_c.SetIntervalDays(*v)
	}
	return _c
}

// SetEaseFactor sets the "ease_factor" field.
func (_c *ReviewEntryCreate) SetEaseFactor(v float64) *ReviewEntryCreate {
	_c.mutation.SetEaseFactor(v)
	return _c
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableEaseFactor(v *float64) *ReviewEntryCreate {
	if v != nil {
		_c.SetEaseFactor(*v)
	}
	return _c
}

// SetReviewCount sets the "review_count" field.
func (_c *ReviewEntryCreate) SetReviewCount(v int) *ReviewEntryCreate {
	_c.mutation.SetReviewCount(v)
	return _c
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableReviewCount(v *int) *ReviewEntryCreate {
	if v != nil {
		_c.SetReviewCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ReviewEntryCreate) SetCreatedAt(v time.Time) *ReviewEntryCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ReviewEntryCreate) SetNillableCreatedAt(v *time.Time) *ReviewEntryCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_c *ReviewEntryCreate) Mutation() *ReviewEntryMutation {
	return _c.mutation
}

// Save creates the ReviewEntry in the database.
func (_c *ReviewEntryCreate) Save(ctx context.Context) (*ReviewEntry, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ReviewEntryCreate) SaveX(ctx context.Context) *ReviewEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEntryCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEntryCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ReviewEntryCreate) defaults() {
	if _, ok := _c.mutation.IntervalDays(); !ok {
		v := reviewentry.DefaultIntervalDays
		_c.mutation.SetIntervalDays(v)
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		v := reviewentry.DefaultEaseFactor
		_c.mutation.SetEaseFactor(v)
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		v := reviewentry.DefaultReviewCount
		_c.mutation.SetReviewCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := reviewentry.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ReviewEntryCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ReviewEntry.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := reviewentry.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.QuestionID(); !ok {
		return &ValidationError{Name: "question_id", err: errors.New(`ent: missing required field "ReviewEntry.question_id"`)}
	}
	if v, ok := _c.mutation.QuestionID(); ok {
		if err := reviewentry.QuestionIDValidator(v); err != nil {
			return &ValidationError{Name: "question_id", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.question_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "ReviewEntry.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := reviewentry.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.reason": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DueAt(); !ok {
		return &ValidationError{Name: "due_at", err: errors.New(`ent: missing required field "ReviewEntry.due_at"`)}
	}
	if _, ok := _c.mutation.IntervalDays(); !ok {
		return &ValidationError{Name: "interval_days", err: errors.New(`ent: missing required field "ReviewEntry.interval_days"`)}
	}
	if _, ok := _c.mutation.EaseFactor(); !ok {
		return &ValidationError{Name: "ease_factor", err: errors.New(`ent: missing required field "ReviewEntry.ease_factor"`)}
	}
	if _, ok := _c.mutation.ReviewCount(); !ok {
		return &ValidationError{Name: "review_count", err: errors.New(`ent: missing required field "ReviewEntry.review_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ReviewEntry.created_at"`)}
	}
	return nil
}

func (_c *ReviewEntryCreate) sqlSave(ctx context.Context) (*ReviewEntry, error) {
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

func (_c *ReviewEntryCreate) createSpec() (*ReviewEntry, *sqlgraph.CreateSpec) {
	var (
		_node = &ReviewEntry{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(reviewentry.Table, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(reviewentry.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.QuestionID(); ok {
		_spec.SetField(reviewentry.FieldQuestionID, field.TypeString, value)
		_node.QuestionID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(reviewentry.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	if value, ok := _c.mutation.DueAt(); ok {
		_spec.SetField(reviewentry.FieldDueAt, field.TypeTime, value)
		_node.DueAt = value
	}
	if value, ok := _c.mutation.IntervalDays(); ok {
		_spec.SetField(reviewentry.FieldIntervalDays, field.TypeInt, value)
		_node.IntervalDays = value
	}
	if value, ok := _c.mutation.EaseFactor(); ok {
		_spec.SetField(reviewentry.FieldEaseFactor, field.TypeFloat64, value)
		_node.EaseFactor = value
	}
	if value, ok := _c.mutation.ReviewCount(); ok {
		_spec.SetField(reviewentry.FieldReviewCount, field.TypeInt, value)
		_node.ReviewCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(reviewentry.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// ReviewEntryCreateBulk is the builder for creating many ReviewEntry entities in bulk.
type ReviewEntryCreateBulk struct {
	config
	err      error
	builders []*ReviewEntryCreate
}

// Save creates the ReviewEntry entities in the database.
func (_c *ReviewEntryCreateBulk) Save(ctx context.Context) ([]*ReviewEntry, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ReviewEntry, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ReviewEntryMutation)
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
func (_c *ReviewEntryCreateBulk) SaveX(ctx context.Context) []*ReviewEntry {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ReviewEntryCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ReviewEntryCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
