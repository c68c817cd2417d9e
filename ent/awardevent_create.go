// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/meera/nclexprep/ent/awardevent"
)

// AwardEventCreate is the builder for creating a AwardEvent entity.
type AwardEventCreate struct {
	config
	mutation *AwardEventMutation
	hooks    []Hook
}

// SetSequence sets the "sequence" field.
func (_c *AwardEventCreate) SetSequence(v int64) *AwardEventCreate {
	_c.mutation.SetSequence(v)
	return _c
}

// SetTimestamp sets the "timestamp" field.
func (_c *AwardEventCreate) SetTimestamp(v time.Time) *AwardEventCreate {
	_c.mutation.SetTimestamp(v)
	return _c
}

// SetNillableTimestamp sets the "timestamp" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillableTimestamp(v *time.Time) *AwardEventCreate {
	if v != nil {
		_c.SetTimestamp(*v)
	}
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *AwardEventCreate) SetUserID(v string) *AwardEventCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetAwardType sets the "award_type" field.
func (_c *AwardEventCreate) SetAwardType(v string) *AwardEventCreate {
	_c.mutation.SetAwardType(v)
	return _c
}

// SetAchievementID sets the "achievement_id" field.
func (_c *AwardEventCreate) SetAchievementID(v string) *AwardEventCreate {
	_c.mutation.SetAchievementID(v)
	return _c
}

// SetNillableAchievementID sets the "achievement_id" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillableAchievementID(v *string) *AwardEventCreate {
	if v != nil {
		_c.SetAchievementID(*v)
	}
	return _c
}

// SetTier sets the "tier" field.
func (_c *AwardEventCreate) SetTier(v string) *AwardEventCreate {
	_c.mutation.SetTier(v)
	return _c
}

// SetPoints sets the "points" field.
func (_c *AwardEventCreate) SetPoints(v int) *AwardEventCreate {
	_c.mutation.SetPoints(v)
	return _c
}

// SetNillablePoints sets the "points" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillablePoints(v *int) *AwardEventCreate {
	if v != nil {
		_c.SetPoints(*v)
	}
	return _c
}

// SetSessionID sets the "session_id" field.
func (_c *AwardEventCreate) SetSessionID(v string) *AwardEventCreate {
	_c.mutation.SetSessionID(v)
	return _c
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_c *AwardEventCreate) SetNillableSessionID(v *string) *AwardEventCreate {
	if v != nil {
		_c.SetSessionID(*v)
	}
	return _c
}

// SetReason sets the "reason" field.
func (_c *AwardEventCreate) SetReason(v string) *AwardEventCreate {
	_c.mutation.SetReason(v)
	return _c
}

// Mutation returns the AwardEventMutation object of the builder.
func (_c *AwardEventCreate) Mutation() *AwardEventMutation {
	return _c.mutation
}

// Save creates the AwardEvent in the database.
func (_c *AwardEventCreate) Save(ctx context.Context) (*AwardEvent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AwardEventCreate) SaveX(ctx context.Context) *AwardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwardEventCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwardEventCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AwardEventCreate) defaults() {
	if _, ok := _c.mutation.Timestamp(); !ok {
		v := awardevent.DefaultTimestamp()
		_c.mutation.SetTimestamp(v)
	}
	if _, ok := _c.mutation.AchievementID(); !ok {
		v := awardevent.DefaultAchievementID
		_c.mutation.SetAchievementID(v)
	}
	if _, ok := _c.mutation.Points(); !ok {
		v := awardevent.DefaultPoints
		_c.mutation.SetPoints(v)
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		v := awardevent.DefaultSessionID
		_c.mutation.SetSessionID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AwardEventCreate) check() error {
	if _, ok := _c.mutation.Sequence(); !ok {
		return &ValidationError{Name: "sequence", err: errors.New(`ent: missing required field "AwardEvent.sequence"`)}
	}
	if _, ok := _c.mutation.Timestamp(); !ok {
		return &ValidationError{Name: "timestamp", err: errors.New(`ent: missing required field "AwardEvent.timestamp"`)}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "AwardEvent.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := awardevent.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AwardType(); !ok {
		return &ValidationError{Name: "award_type", err: errors.New(`ent: missing required field "AwardEvent.award_type"`)}
	}
	if v, ok := _c.mutation.AwardType(); ok {
		if err := awardevent.AwardTypeValidator(v); err != nil {
			return &ValidationError{Name: "award_type", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.award_type": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AchievementID(); !ok {
		return &ValidationError{Name: "achievement_id", err: errors.New(`ent: missing required field "AwardEvent.achievement_id"`)}
	}
	if _, ok := _c.mutation.Tier(); !ok {
		return &ValidationError{Name: "tier", err: errors.New(`ent: missing required field "AwardEvent.tier"`)}
	}
	if v, ok := _c.mutation.Tier(); ok {
		if err := awardevent.TierValidator(v); err != nil {
			return &ValidationError{Name: "tier", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Points(); !ok {
		return &ValidationError{Name: "points", err: errors.New(`ent: missing required field "AwardEvent.points"`)}
	}
	if _, ok := _c.mutation.SessionID(); !ok {
		return &ValidationError{Name: "session_id", err: errors.New(`ent: missing required field "AwardEvent.session_id"`)}
	}
	if _, ok := _c.mutation.Reason(); !ok {
		return &ValidationError{Name: "reason", err: errors.New(`ent: missing required field "AwardEvent.reason"`)}
	}
	if v, ok := _c.mutation.Reason(); ok {
		if err := awardevent.ReasonValidator(v); err != nil {
			return &ValidationError{Name: "reason", err: fmt.Errorf(`ent: validator failed for field "AwardEvent.reason": %w`, err)}
		}
	}
	return nil
}

func (_c *AwardEventCreate) sqlSave(ctx context.Context) (*AwardEvent, error) {
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

func (_c *AwardEventCreate) createSpec() (*AwardEvent, *sqlgraph.CreateSpec) {
	var (
		_node = &AwardEvent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(awardevent.Table, sqlgraph.NewFieldSpec(awardevent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Sequence(); ok {
		_spec.SetField(awardevent.FieldSequence, field.TypeInt64, value)
		_node.Sequence = value
	}
	if value, ok := _c.mutation.Timestamp(); ok {
		_spec.SetField(awardevent.FieldTimestamp, field.TypeTime, value)
		_node.Timestamp = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(awardevent.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.AwardType(); ok {
		_spec.SetField(awardevent.FieldAwardType, field.TypeString, value)
		_node.AwardType = value
	}
	if value, ok := _c.mutation.AchievementID(); ok {
		_spec.SetField(awardevent.FieldAchievementID, field.TypeString, value)
		_node.AchievementID = value
	}
	if value, ok := _c.mutation.Tier(); ok {
		_spec.SetField(awardevent.FieldTier, field.TypeString, value)
		_node.Tier = value
	}
	if value, ok := _c.mutation.Points(); ok {
		_spec.SetField(awardevent.FieldPoints, field.TypeInt, value)
		_node.Points = value
	}
	if value, ok := _c.mutation.SessionID(); ok {
		_spec.SetField(awardevent.FieldSessionID, field.TypeString, value)
		_node.SessionID = value
	}
	if value, ok := _c.mutation.Reason(); ok {
		_spec.SetField(awardevent.FieldReason, field.TypeString, value)
		_node.Reason = value
	}
	return _node, _spec
}

// AwardEventCreateBulk is the builder for creating many AwardEvent entities in bulk.
type AwardEventCreateBulk struct {
	config
	err      error
	builders []*AwardEventCreate
}

// Save creates the AwardEvent entities in the database.
func (_c *AwardEventCreateBulk) Save(ctx context.Context) ([]*AwardEvent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AwardEvent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AwardEventMutation)
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
func (_c *AwardEventCreateBulk) SaveX(ctx context.Context) []*AwardEvent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AwardEventCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AwardEventCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
