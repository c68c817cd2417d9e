// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/nclexprep/ent/awardevent"
	"github.com/meera/nclexprep/ent/predicate"
)

// AwardEventUpdate is the builder for updating AwardEvent entities.
type AwardEventUpdate struct {
	config
	hooks    []Hook
	mutation *AwardEventMutation
}

// Where appends a list predicates to the AwardEventUpdate builder.
func (_u *AwardEventUpdate) Where(ps ...predicate.AwardEvent) *AwardEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *AwardEventUpdate) SetUserID(v string) *AwardEventUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableUserID(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAwardType sets the "award_type" field.
func (_u *AwardEventUpdate) SetAwardType(v string) *AwardEventUpdate {
	_u.mutation.SetAwardType(v)
	return _u
}

// SetNillableAwardType sets the "award_type" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableAwardType(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetAwardType(*v)
	}
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AwardEventUpdate) SetAchievementID(v string) *AwardEventUpdate {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableAchievementID(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AwardEventUpdate) SetTier(v string) *AwardEventUpdate {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableTier(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *AwardEventUpdate) SetPoints(v int) *AwardEventUpdate {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillablePoints(v *int) *AwardEventUpdate {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AwardEventUpdate) AddPoints(v int) *AwardEventUpdate {
	_u.mutation.AddPoints(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AwardEventUpdate) SetSessionID(v string) *AwardEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableSessionID(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AwardEventUpdate) SetReason(v string) *AwardEventUpdate {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AwardEventUpdate) SetNillableReason(v *string) *AwardEventUpdate {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the AwardEventMutation object of the builder.
func (_u *AwardEventUpdate) Mutation() *AwardEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AwardEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwardEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AwardEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwardEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwardEventUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := awardevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AwardType(); ok {
		if err := awardevent.AwardTypeValidator(v); err != nil {
			return &ValidationError{Name: "award_type", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.award_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := awardevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := awardevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *AwardEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(awardevent.Table, awardevent.Columns, sqlgraph.NewFieldSpec(awardevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(awardevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AwardType(); ok {
		_spec.SetField(awardevent.FieldAwardType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(awardevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(awardevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(awardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(awardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(awardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(awardevent.FieldReason, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{awardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AwardEventUpdateOne is the builder for updating a single AwardEvent entity.
type AwardEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AwardEventMutation
}

// SetUserID sets the "user_id" field.
func (_u *AwardEventUpdateOne) SetUserID(v string) *AwardEventUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableUserID(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetAwardType sets the "award_type" field.
func (_u *AwardEventUpdateOne) SetAwardType(v string) *AwardEventUpdateOne {
	_u.mutation.SetAwardType(v)
	return _u
}

// SetNillableAwardType sets the "award_type" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableAwardType(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetAwardType(*v)
	}
	return _u
}

// SetAchievementID sets the "achievement_id" field.
func (_u *AwardEventUpdateOne) SetAchievementID(v string) *AwardEventUpdateOne {
	_u.mutation.SetAchievementID(v)
	return _u
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableAchievementID(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetAchievementID(*v)
	}
	return _u
}

// SetTier sets the "tier" field.
func (_u *AwardEventUpdateOne) SetTier(v string) *AwardEventUpdateOne {
	_u.mutation.SetTier(v)
	return _u
}

// SetNillableTier sets the "tier" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableTier(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetTier(*v)
	}
	return _u
}

// SetPoints sets the "points" field.
func (_u *AwardEventUpdateOne) SetPoints(v int) *AwardEventUpdateOne {
	_u.mutation.ResetPoints()
	_u.mutation.SetPoints(v)
	return _u
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillablePoints(v *int) *AwardEventUpdateOne {
	if v != nil {
		_u.SetPoints(*v)
	}
	return _u
}

// AddPoints adds value to the "points" field.
func (_u *AwardEventUpdateOne) AddPoints(v int) *AwardEventUpdateOne {
	_u.mutation.AddPoints(v)
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *AwardEventUpdateOne) SetSessionID(v string) *AwardEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableSessionID(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetReason sets the "reason" field.
func (_u *AwardEventUpdateOne) SetReason(v string) *AwardEventUpdateOne {
	_u.mutation.SetReason(v)
	return _u
}

// SetNillableReason sets the "reason" field if the given value is not nil.
func (_u *AwardEventUpdateOne) SetNillableReason(v *string) *AwardEventUpdateOne {
	if v != nil {
		_u.SetReason(*v)
	}
	return _u
}

// Mutation returns the AwardEventMutation object of the builder.
func (_u *AwardEventUpdateOne) Mutation() *AwardEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the AwardEventUpdate builder.
func (_u *AwardEventUpdateOne) Where(ps ...predicate.AwardEvent) *AwardEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AwardEventUpdateOne) Select(field string, fields ...string) *AwardEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AwardEvent entity.
func (_u *AwardEventUpdateOne) Save(ctx context.Context) (*AwardEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AwardEventUpdateOne) SaveX(ctx context.Context) *AwardEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AwardEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AwardEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AwardEventUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := awardevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AwardType(); ok {
		if err := awardevent.AwardTypeValidator(v); err != nil {
			return &ValidationError{Name: "award_type", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.award_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Tier(); ok {
		if err := awardevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.tier": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Reason(); ok {
		if err := awardevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_u *AwardEventUpdateOne) sqlSave(ctx context.Context) (_node *AwardEvent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(awardevent.Table, awardevent.Columns, sqlgraph.NewFieldSpec(awardevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AwardEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, awardevent.FieldID)
		for _, f := range fields {
			if !awardevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != awardevent.FieldID {
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
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(awardevent.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.AwardType(); ok {
		_spec.SetField(awardevent.FieldAwardType, field.TypeString, value)
	}
	if value, ok := _u.mutation.AchievementID(); ok {
		_spec.SetField(awardevent.FieldAchievementID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Tier(); ok {
		_spec.SetField(awardevent.FieldTier, field.TypeString, value)
	}
	if value, ok := _u.mutation.Points(); ok {
		_spec.SetField(awardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPoints(); ok {
		_spec.AddField(awardevent.FieldPoints, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(awardevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reason(); ok {
		_spec.SetField(awardevent.FieldReason, field.TypeString, value)
	}
	_node = &AwardEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{awardevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
