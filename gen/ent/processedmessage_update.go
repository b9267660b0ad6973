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
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/predicate"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/processedmessage"
)

// ProcessedMessageUpdate is the builder for updating ProcessedMessage entities.
type ProcessedMessageUpdate struct {
	config
	hooks    []Hook
	mutation *ProcessedMessageMutation
}

// Where appends a list predicates to the ProcessedMessageUpdate builder.
func (_u *ProcessedMessageUpdate) Where(ps ...predicate.ProcessedMessage) *ProcessedMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetUserID sets the "user_id" field.
func (_u *ProcessedMessageUpdate) SetUserID(v string) *ProcessedMessageUpdate {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProcessedMessageUpdate) SetNillableUserID(v *string) *ProcessedMessageUpdate {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ProcessedMessageUpdate) SetMessageID(v string) *ProcessedMessageUpdate {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ProcessedMessageUpdate) SetNillableMessageID(v *string) *ProcessedMessageUpdate {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedMessageUpdate) SetProcessedAt(v time.Time) *ProcessedMessageUpdate {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ProcessedMessageUpdate) SetNillableProcessedAt(v *time.Time) *ProcessedMessageUpdate {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// Mutation returns the ProcessedMessageMutation object of the builder.
func (_u *ProcessedMessageUpdate) Mutation() *ProcessedMessageMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ProcessedMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ProcessedMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedMessageUpdate) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := processedmessage.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProcessedMessage.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageID(); ok {
		if err := processedmessage.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "ProcessedMessage.message_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedmessage.Table, processedmessage.Columns, sqlgraph.NewFieldSpec(processedmessage.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.UserID(); ok {
		_spec.SetField(processedmessage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(processedmessage.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedmessage.FieldProcessedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ProcessedMessageUpdateOne is the builder for updating a single ProcessedMessage entity.
type ProcessedMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ProcessedMessageMutation
}

// SetUserID sets the "user_id" field.
func (_u *ProcessedMessageUpdateOne) SetUserID(v string) *ProcessedMessageUpdateOne {
	_u.mutation.SetUserID(v)
	return _u
}

// SetNillableUserID sets the "user_id" field if the given value is not nil.
func (_u *ProcessedMessageUpdateOne) SetNillableUserID(v *string) *ProcessedMessageUpdateOne {
	if v != nil {
		_u.SetUserID(*v)
	}
	return _u
}

// SetMessageID sets the "message_id" field.
func (_u *ProcessedMessageUpdateOne) SetMessageID(v string) *ProcessedMessageUpdateOne {
	_u.mutation.SetMessageID(v)
	return _u
}

// SetNillableMessageID sets the "message_id" field if the given value is not nil.
func (_u *ProcessedMessageUpdateOne) SetNillableMessageID(v *string) *ProcessedMessageUpdateOne {
	if v != nil {
		_u.SetMessageID(*v)
	}
	return _u
}

// SetProcessedAt sets the "processed_at" field.
func (_u *ProcessedMessageUpdateOne) SetProcessedAt(v time.Time) *ProcessedMessageUpdateOne {
	_u.mutation.SetProcessedAt(v)
	return _u
}

// SetNillableProcessedAt sets the "processed_at" field if the given value is not nil.
func (_u *ProcessedMessageUpdateOne) SetNillableProcessedAt(v *time.Time) *ProcessedMessageUpdateOne {
	if v != nil {
		_u.SetProcessedAt(*v)
	}
	return _u
}

// Mutation returns the ProcessedMessageMutation object of the builder.
func (_u *ProcessedMessageUpdateOne) Mutation() *ProcessedMessageMutation {
	return _u.mutation
}

// Where appends a list predicates to the ProcessedMessageUpdate builder.
func (_u *ProcessedMessageUpdateOne) Where(ps ...predicate.ProcessedMessage) *ProcessedMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ProcessedMessageUpdateOne) Select(field string, fields ...string) *ProcessedMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ProcessedMessage entity.
func (_u *ProcessedMessageUpdateOne) Save(ctx context.Context) (*ProcessedMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ProcessedMessageUpdateOne) SaveX(ctx context.Context) *ProcessedMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ProcessedMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ProcessedMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ProcessedMessageUpdateOne) check() error {
	if v, ok := _u.mutation.UserID(); ok {
		if err := processedmessage.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "ProcessedMessage.user_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.MessageID(); ok {
		if err := processedmessage.MessageIDValidator(v); err != nil {
			return &ValidationError{Name: "message_id", err: fmt.Errorf(`ent: validator failed for field "ProcessedMessage.message_id": %w`, err)}
		}
	}
	return nil
}

func (_u *ProcessedMessageUpdateOne) sqlSave(ctx context.Context) (_node *ProcessedMessage, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(processedmessage.Table, processedmessage.Columns, sqlgraph.NewFieldSpec(processedmessage.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ProcessedMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, processedmessage.FieldID)
		for _, f := range fields {
			if !processedmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != processedmessage.FieldID {
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
		_spec.SetField(processedmessage.FieldUserID, field.TypeString, value)
	}
	if value, ok := _u.mutation.MessageID(); ok {
		_spec.SetField(processedmessage.FieldMessageID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessedAt(); ok {
		_spec.SetField(processedmessage.FieldProcessedAt, field.TypeTime, value)
	}
	_node = &ProcessedMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{processedmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
