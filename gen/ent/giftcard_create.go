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
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/giftcard"
)

// GiftCardCreate is the builder for creating a GiftCard entity.
type GiftCardCreate struct {
	config
	mutation *GiftCardMutation
	hooks    []Hook
}

// SetCode sets the "code" field.
func (_c *GiftCardCreate) SetCode(v string) *GiftCardCreate {
	_c.mutation.SetCode(v)
	return _c
}

// SetValue sets the "value" field.
func (_c *GiftCardCreate) SetValue(v int) *GiftCardCreate {
	_c.mutation.SetValue(v)
	return _c
}

// SetUserID sets the "user_id" field.
func (_c *GiftCardCreate) SetUserID(v string) *GiftCardCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *GiftCardCreate) SetMessageID(v string) *GiftCardCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_c *GiftCardCreate) SetNillableMessageID(v *string) *GiftCardCreate {
	if v != nil {
		_c.SetMessageID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *GiftCardCreate) SetCreatedAt(v time.Time) *GiftCardCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *GiftCardCreate) SetNillableCreatedAt(v *time.Time) *GiftCardCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *GiftCardCreate) SetID(v uuid.UUID) *GiftCardCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *GiftCardCreate) SetNillableID(v *uuid.UUID) *GiftCardCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the GiftCardMutation object of the builder.
func (_c *GiftCardCreate) Mutation() *GiftCardMutation {
	return _c.mutation
}

// Save creates the GiftCard in the database.
func (_c *GiftCardCreate) Save(ctx context.Context) (*GiftCard, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *GiftCardCreate) SaveX(ctx context.Context) *GiftCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GiftCardCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GiftCardCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *GiftCardCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := giftcard.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := giftcard.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *GiftCardCreate) check() error {
	if _, ok := _c.mutation.Code(); !ok {
		return &ValidationError{Name: "code", err: errors.New(`ent: missing required field "GiftCard.code"`)}
	}
	if v, ok := _c.mutation.Code(); ok {
		if err := giftcard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "GiftCard.code": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Value(); !ok {
		return &ValidationError{Name: "value", err: errors.New(`ent: missing required field "GiftCard.value"`)}
	}
	if v, ok := _c.mutation.Value(); ok {
		if err := giftcard.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "GiftCard.value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "GiftCard.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := giftcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GiftCard.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "GiftCard.created_at"`)}
	}
	return nil
}

func (_c *GiftCardCreate) sqlSave(ctx context.Context) (*GiftCard, error) {
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

func (_c *GiftCardCreate) createSpec() (*GiftCard, *sqlgraph.CreateSpec) {
	var (
		_node = &GiftCard{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(giftcard.Table, sqlgraph.NewFieldSpec(giftcard.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Code(); ok {
		_spec.SetField(giftcard.FieldCode, field.TypeString, value)
		_node.Code = value
	}
	if value, ok := _c.mutation.Value(); ok {
		_spec.SetField(giftcard.FieldValue, field.TypeInt, value)
		_node.Value = value
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(giftcard.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(giftcard.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(giftcard.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// GiftCardCreateBulk is the builder for creating many GiftCard entities in bulk.
type GiftCardCreateBulk struct {
	config
	err      error
	builders []*GiftCardCreate
}

// Save creates the GiftCard entities in the database.
func (_c *GiftCardCreateBulk) Save(ctx context.Context) ([]*GiftCard, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*GiftCard, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*GiftCardMutation)
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
func (_c *GiftCardCreateBulk) SaveX(ctx context.Context) []*GiftCard {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *GiftCardCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *GiftCardCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
