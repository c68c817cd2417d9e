// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/nclexprep/ent/predicate"
	"github.com/meera/nclexprep/ent/reviewentry"
)

// ReviewEntryUpdate is the builder for updating ReviewEntry entities.
type ReviewEntryUpdate struct {
	config
	hooks    []Hook
	mutation *ReviewEntryMutation
}

// Where appends a list predicates to the ReviewEntryUpdate builder.
func (_u *ReviewEntryUpdate) Where(ps ...predicate.ReviewEntry) *ReviewEntryUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReason sets the "reason" field.
func (_u *ReviewEntryUpdate) SetReason(v string) *ReviewEntryUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableReason(v *string) *ReviewEntryUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEntryUpdate) SetDueAt(v time.Time) *ReviewEntryUpdate {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableDueAt(v *time.Time) *ReviewEntryUpdate {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEntryUpdate) SetIntervalDays(v int) *ReviewEntryUpdate {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableIntervalDays(v *int) *ReviewEntryUpdate {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEntryUpdate) AddIntervalDays(v int) *ReviewEntryUpdate {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewEntryUpdate) SetEaseFactor(v float64) *ReviewEntryUpdate {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableEaseFactor(v *float64) *ReviewEntryUpdate {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewEntryUpdate) AddEaseFactor(v float64) *ReviewEntryUpdate {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewEntryUpdate) SetReviewCount(v int) *ReviewEntryUpdate {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewEntryUpdate) SetNillableReviewCount(v *int) *ReviewEntryUpdate {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewEntryUpdate) AddReviewCount(v int) *ReviewEntryUpdate {
	_u.mutation.AddReviewCount(v)
	return _u
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_u *ReviewEntryUpdate) Mutation() *ReviewEntryMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ReviewEntryUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEntryUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ReviewEntryUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEntryUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEntryUpdate) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := reviewentry.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEntryUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewentry.Table, reviewentry.Columns, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(reviewentry.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewentry.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewentry.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewentry.FieldReviewCount, field.TypeInt, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ReviewEntryUpdateOne is the builder for updating a single ReviewEntry entity.
type ReviewEntryUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ReviewEntryMutation
}

// SetReason sets the "reason" field.
func (_u *ReviewEntryUpdateOne) SetReason(v string) *ReviewEntryUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableReason(v *string) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// SetDueAt sets the "due_at" field.
func (_u *ReviewEntryUpdateOne) SetDueAt(v time.Time) *ReviewEntryUpdateOne {
	_u.mutation.SetDueAt(v)
	return _u
}

// SetNillableDueAt sets the "due_at" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableDueAt(v *time.Time) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetDueAt(*v)
	}
	return _u
}

// SetIntervalDays sets the "interval_days" field.
func (_u *ReviewEntryUpdateOne) SetIntervalDays(v int) *ReviewEntryUpdateOne {
	_u.mutation.ResetIntervalDays()
	_u.mutation.SetIntervalDays(v)
	return _u
}

// SetNillableIntervalDays sets the "interval_days" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableIntervalDays(v *int) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetIntervalDays(*v)
	}
	return _u
}

// AddIntervalDays adds value to the "interval_days" field.
func (_u *ReviewEntryUpdateOne) AddIntervalDays(v int) *ReviewEntryUpdateOne {
	_u.mutation.AddIntervalDays(v)
	return _u
}

// SetEaseFactor sets the "ease_factor" field.
func (_u *ReviewEntryUpdateOne) SetEaseFactor(v float64) *ReviewEntryUpdateOne {
	_u.mutation.ResetEaseFactor()
	_u.mutation.SetEaseFactor(v)
	return _u
}

// SetNillableEaseFactor sets the "ease_factor" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableEaseFactor(v *float64) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetEaseFactor(*v)
	}
	return _u
}

// AddEaseFactor adds value to the "ease_factor" field.
func (_u *ReviewEntryUpdateOne) AddEaseFactor(v float64) *ReviewEntryUpdateOne {
	_u.mutation.AddEaseFactor(v)
	return _u
}

// SetReviewCount sets the "review_count" field.
func (_u *ReviewEntryUpdateOne) SetReviewCount(v int) *ReviewEntryUpdateOne {
	_u.mutation.ResetReviewCount()
	_u.mutation.SetReviewCount(v)
	return _u
}

// SetNillableReviewCount sets the "review_count" field if the given value is not nil.
func (_u *ReviewEntryUpdateOne) SetNillableReviewCount(v *int) *ReviewEntryUpdateOne {
	if v != nil {
		_u.SetReviewCount(*v)
	}
	return _u
}

// AddReviewCount adds value to the "review_count" field.
func (_u *ReviewEntryUpdateOne) AddReviewCount(v int) *ReviewEntryUpdateOne {
	_u.mutation.AddReviewCount(v)
	return _u
}

// Mutation returns the ReviewEntryMutation object of the builder.
func (_u *ReviewEntryUpdateOne) Mutation() *ReviewEntryMutation {
	return _u.mutation
}

// Where appends a list predicates to the ReviewEntryUpdate builder.
func (_u *ReviewEntryUpdateOne) Where(ps ...predicate.ReviewEntry) *ReviewEntryUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ReviewEntryUpdateOne) Select(field string, fields ...string) *ReviewEntryUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ReviewEntry entity.
func (_u *ReviewEntryUpdateOne) Save(ctx context.Context) (*ReviewEntry, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ReviewEntryUpdateOne) SaveX(ctx context.Context) *ReviewEntry {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ReviewEntryUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ReviewEntryUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ReviewEntryUpdateOne) check() error {
	if v, ok := _u.mutation.Reason(); ok {
		if err := reviewentry.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "ReviewEntry.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *ReviewEntryUpdateOne) sqlSave(ctx context.Context) (_node *ReviewEntry, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(reviewentry.Table, reviewentry.Columns, sqlgraph.NewFieldSpec(reviewentry.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ReviewEntry.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, reviewentry.FieldID)
		for _, f := range fields {
			if !reviewentry.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != reviewentry.FieldID {
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
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(reviewentry.FieldReason, field.TypeString, value)
	}
	if value, ok := _u.mutation.DueAt(); ok {
		_spec.SetField(reviewentry.FieldDueAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.IntervalDays(); ok {
		_spec.SetField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIntervalDays(); ok {
		_spec.AddField(reviewentry.FieldIntervalDays, field.TypeInt, value)
	}
	if value, ok := _u.mutation.EaseFactor(); ok {
		_spec.SetField(reviewentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedEaseFactor(); ok {
		_spec.AddField(reviewentry.FieldEaseFactor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.ReviewCount(); ok {
		_spec.SetField(reviewentry.FieldReviewCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedReviewCount(); ok {
		_spec.AddField(reviewentry.FieldReviewCount, field.TypeInt, value)
	}
	_node = &ReviewEntry{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{reviewentry.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
