// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/giftcard"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/predicate"
)

// GiftCardUpdate is the builder for updating GiftCard entities.
type GiftCardUpdate struct {
	config
	hooks    []Hook
	mutation *GiftCardMutation
}

// Where appends a list predicates to the GiftCardUpdate builder.
func (_u *GiftCardUpdate) Where(ps ...predicate.GiftCard) *GiftCardUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCode sets the "code" field.
func (_u *GiftCardUpdate) SetCode(v string) *GiftCardUpdate {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *GiftCardUpdate) SetNillableCode(v *string) *GiftCardUpdate {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *GiftCardUpdate) SetValue(v int) *GiftCardUpdate {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *GiftCardUpdate) SetNillableValue(v *int) *GiftCardUpdate {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *GiftCardUpdate) AddValue(v int) *GiftCardUpdate {
	_u.mutation.AddValue(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GiftCardUpdate) SetUserID(v string) *GiftCardUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GiftCardUpdate) SetNillableUserID(v *string) *GiftCardUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *GiftCardUpdate) SetMessageID(v string) *GiftCardUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *GiftCardUpdate) SetNillableMessageID(v *string) *GiftCardUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *GiftCardUpdate) ClearMessageID() *GiftCardUpdate {
	_u.mutation.ClearMessageID()
	return _u
}

// Mutation returns the GiftCardMutation object of the builder.
func (_u *GiftCardUpdate) Mutation() *GiftCardMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *GiftCardUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GiftCardUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *GiftCardUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GiftCardUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GiftCardUpdate) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := giftcard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "GiftCard.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := giftcard.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "GiftCard.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := giftcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GiftCard.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GiftCardUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(giftcard.Table, giftcard.Columns, sqlgraph.NewFieldSpec(giftcard.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(giftcard.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(giftcard.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(giftcard.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(giftcard.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(giftcard.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(giftcard.FieldMessageID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{giftcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// GiftCardUpdateOne is the builder for updating a single GiftCard entity.
type GiftCardUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *GiftCardMutation
}

// SetCode sets the "code" field.
func (_u *GiftCardUpdateOne) SetCode(v string) *GiftCardUpdateOne {
	_u.mutation.SetCode(v)
	return _u
}

// SetNillableCode sets the "code" field if the given value is not nil.
func (_u *GiftCardUpdateOne) SetNillableCode(v *string) *GiftCardUpdateOne {
	if v != nil {
		_u.SetCode(*v)
	}
	return _u
}

// SetValue sets the "value" field.
func (_u *GiftCardUpdateOne) SetValue(v int) *GiftCardUpdateOne {
	_u.mutation.ResetValue()
	_u.mutation.SetValue(v)
	return _u
}

// SetNillableValue sets the "value" field if the given value is not nil.
func (_u *GiftCardUpdateOne) SetNillableValue(v *int) *GiftCardUpdateOne {
	if v != nil {
		_u.SetValue(*v)
	}
	return _u
}

// AddValue adds value to the "value" field.
func (_u *GiftCardUpdateOne) AddValue(v int) *GiftCardUpdateOne {
	_u.mutation.AddValue(v)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *GiftCardUpdateOne) SetUserID(v string) *GiftCardUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *GiftCardUpdateOne) SetNillableUserID(v *string) *GiftCardUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *GiftCardUpdateOne) SetMessageID(v string) *GiftCardUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *GiftCardUpdateOne) SetNillableMessageID(v *string) *GiftCardUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// ClearMessageID clears the value of the "message_id" field.
func (_u *GiftCardUpdateOne) ClearMessageID() *GiftCardUpdateOne {
	_u.mutation.ClearMessageID()
	return _u
}

// Mutation returns the GiftCardMutation object of the builder.
func (_u *GiftCardUpdateOne) Mutation() *GiftCardMutation {
	return _u.mutation
}

// Where appends a list predicates to the GiftCardUpdate builder.
func (_u *GiftCardUpdateOne) Where(ps ...predicate.GiftCard) *GiftCardUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *GiftCardUpdateOne) Select(field string, fields ...string) *GiftCardUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated GiftCard entity.
func (_u *GiftCardUpdateOne) Save(ctx context.Context) (*GiftCard, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *GiftCardUpdateOne) SaveX(ctx context.Context) *GiftCard {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *GiftCardUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *GiftCardUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *GiftCardUpdateOne) check() error {
	if v, ok := _u.mutation.Code(); ok {
		if err := giftcard.CodeValidator(v); err != nil {
			return &ValidationError{Name: "code", err: fmt.Errorf(`ent: validator failed for field "GiftCard.code": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Value(); ok {
		if err := giftcard.ValueValidator(v); err != nil {
			return &ValidationError{Name: "value", err: fmt.Errorf(`ent: validator failed for field "GiftCard.value": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UserID(); ok {
		if err := giftcard.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "GiftCard.user_id": %w`, err)}
		}
	}
	return nil
}

func (_u *GiftCardUpdateOne) sqlSave(ctx context.Context) (_node *GiftCard, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(giftcard.Table, giftcard.Columns, sqlgraph.NewFieldSpec(giftcard.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "GiftCard.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, giftcard.FieldID)
		for _, f := range fields {
			if !giftcard.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != giftcard.FieldID {
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
	if value, ok := _u.mutation.Code(); ok {
		_spec.SetField(giftcard.FieldCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.Value(); ok {
		_spec.SetField(giftcard.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedValue(); ok {
		_spec.AddField(giftcard.FieldValue, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(giftcard.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(giftcard.FieldMessageID, field.TypeString, value)
	}
	if _u.mutation.MessageIDCleared() {
		_spec.ClearField(giftcard.FieldMessageID, field.TypeString)
	}
	_node = &GiftCard{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{giftcard.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
