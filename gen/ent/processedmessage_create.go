// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/processedmessage"
)

// ProcessedMessageCreate is the builder for creating a ProcessedMessage entity.
type ProcessedMessageCreate struct {
	config
	mutation *ProcessedMessageMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *ProcessedMessageCreate) SetUserID(v string) *ProcessedMessageCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *ProcessedMessageCreate) SetMessageID(v string) *ProcessedMessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetProcessedAt sets the "processed_at" field.
func (_c *ProcessedMessageCreate) SetProcessedAt(v time.Time) *ProcessedMessageCreate {
	_c.mutation.SetProcessedAt(v)
	return _c
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_c *ProcessedMessageCreate) SetNillableProcessedAt(v *time.Time) *ProcessedMessageCreate {
	if v != nil {
		_c.SetProcessedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ProcessedMessageCreate) SetID(v uuid.UUID) *ProcessedMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *ProcessedMessageCreate) SetNillableID(v *uuid.UUID) *ProcessedMessageCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the ProcessedMessageMutation object of the builder.
func (_c *ProcessedMessageCreate) Mutation() *ProcessedMessageMutation {
	return _c.mutation
}

// Save creates the ProcessedMessage in the database.
func (_c *ProcessedMessageCreate) Save(ctx context.Context) (*ProcessedMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ProcessedMessageCreate) SaveX(ctx context.Context) *ProcessedMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ProcessedMessageCreate) defaults() {
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		v := processedmessage.DefaultProcessedAt()
		_c.mutation.SetProcessedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := processedmessage.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ProcessedMessageCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "ProcessedMessage.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := processedmessage.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProcessedMessage.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "ProcessedMessage.message_id"`)}
	}
	if v, ok := _c.mutation.MessageID(); ok {
		if err := processedmessage.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "ProcessedMessage.message_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedAt(); !ok {
		return &ValidationError{Name: "processed_at", err: errors.New(`ent: missing required field "ProcessedMessage.processed_at"`)}
	}
	return nil
}

func (_c *ProcessedMessageCreate) sqlSave(ctx context.Context) (*ProcessedMessage, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ProcessedMessageCreate) createSpec() (*ProcessedMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &ProcessedMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(processedmessage.Table, sqlgraph.NewFieldSpec(processedmessage.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(processedmessage.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(processedmessage.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.ProcessedAt(); ok {
		_spec.SetField(processedmessage.FieldProcessedAt, field.TypeTime, value)
		_node.ProcessedAt = value
	}
	return _node, _spec
}

// ProcessedMessageCreateBulk is the builder for creating many ProcessedMessage entities in bulk.
type ProcessedMessageCreateBulk struct {
	config
	err      error
	builders []*ProcessedMessageCreate
}

// Save creates the ProcessedMessage entities in the database.
func (_c *ProcessedMessageCreateBulk) Save(ctx context.Context) ([]*ProcessedMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ProcessedMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ProcessedMessageMutation)
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
func (_c *ProcessedMessageCreateBulk) SaveX(ctx context.Context) []*ProcessedMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ProcessedMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ProcessedMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
