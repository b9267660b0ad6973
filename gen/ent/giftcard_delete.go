// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/giftcard"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/predicate"
)

// GiftCardDelete is the builder for deleting a GiftCard entity.
type GiftCardDelete struct {
	config
	hooks    []Hook
	mutation *GiftCardMutation
}

// Where appends a list predicates to the GiftCardDelete builder.
func (_d *GiftCardDelete) Where(ps ...predicate.GiftCard) *GiftCardDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *GiftCardDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GiftCardDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *GiftCardDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(giftcard.Table, sqlgraph.NewFieldSpec(giftcard.FieldID, field.TypeUUID))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// GiftCardDeleteOne is the builder for deleting a single GiftCard entity.
type GiftCardDeleteOne struct {
	_d *GiftCardDelete
}

// Where appends a list predicates to the GiftCardDelete builder.
func (_d *GiftCardDeleteOne) Where(ps ...predicate.GiftCard) *GiftCardDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *GiftCardDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{giftcard.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *GiftCardDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
