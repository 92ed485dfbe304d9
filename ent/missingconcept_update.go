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
	"github.com/seonho-dev/tutorgraph/ent/missingconcept"
	"github.com/seonho-dev/tutorgraph/ent/predicate"
)

// MissingConceptUpdate is the builder for updating MissingConcept entities.
type MissingConceptUpdate struct {
	config
	hooks    []Hook
	mutation *MissingConceptMutation
}

// Where appends a list predicates to the MissingConceptUpdate builder.
func (_u *MissingConceptUpdate) Where(ps ...predicate.MissingConcept) *MissingConceptUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *MissingConceptUpdate) SetName(v string) *MissingConceptUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MissingConceptUpdate) SetNillableName(v *string) *MissingConceptUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHitCount sets the "hit_count" field.
func (_u *MissingConceptUpdate) SetHitCount(v int) *MissingConceptUpdate {
	_u.mutation.ResetHitCount()
	_u.mutation.SetHitCount(v)
	return _u
}

// SetNillableHitCount sets the "hit_count" field if the given value is not nil.
func (_u *MissingConceptUpdate) SetNillableHitCount(v *int) *MissingConceptUpdate {
	if v != nil {
		_u.SetHitCount(*v)
	}
	return _u
}

// AddHitCount adds value to the "hit_count" field.
func (_u *MissingConceptUpdate) AddHitCount(v int) *MissingConceptUpdate {
	_u.mutation.AddHitCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MissingConceptUpdate) SetLastSeen(v time.Time) *MissingConceptUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the MissingConceptMutation object of the builder.
func (_u *MissingConceptUpdate) Mutation() *MissingConceptMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *MissingConceptUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissingConceptUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *MissingConceptUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissingConceptUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissingConceptUpdate) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := missingconcept.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

func (_u *MissingConceptUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(missingconcept.Table, missingconcept.Columns, sqlgraph.NewFieldSpec(missingconcept.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(missingconcept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HitCount(); ok {
		_spec.SetField(missingconcept.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHitCount(); ok {
		_spec.AddField(missingconcept.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(missingconcept.FieldLastSeen, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missingconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// MissingConceptUpdateOne is the builder for updating a single MissingConcept entity.
type MissingConceptUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MissingConceptMutation
}

// SetName sets the "name" field.
func (_u *MissingConceptUpdateOne) SetName(v string) *MissingConceptUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *MissingConceptUpdateOne) SetNillableName(v *string) *MissingConceptUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHitCount sets the "hit_count" field.
func (_u *MissingConceptUpdateOne) SetHitCount(v int) *MissingConceptUpdateOne {
	_u.mutation.ResetHitCount()
	_u.mutation.SetHitCount(v)
	return _u
}

// SetNillableHitCount sets the "hit_count" field if the given value is not nil.
func (_u *MissingConceptUpdateOne) SetNillableHitCount(v *int) *MissingConceptUpdateOne {
	if v != nil {
		_u.SetHitCount(*v)
	}
	return _u
}

// AddHitCount adds value to the "hit_count" field.
func (_u *MissingConceptUpdateOne) AddHitCount(v int) *MissingConceptUpdateOne {
	_u.mutation.AddHitCount(v)
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *MissingConceptUpdateOne) SetLastSeen(v time.Time) *MissingConceptUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// Mutation returns the MissingConceptMutation object of the builder.
func (_u *MissingConceptUpdateOne) Mutation() *MissingConceptMutation {
	return _u.mutation
}

// Where appends a list predicates to the MissingConceptUpdate builder.
func (_u *MissingConceptUpdateOne) Where(ps ...predicate.MissingConcept) *MissingConceptUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *MissingConceptUpdateOne) Select(field string, fields ...string) *MissingConceptUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated MissingConcept entity.
func (_u *MissingConceptUpdateOne) Save(ctx context.Context) (*MissingConcept, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *MissingConceptUpdateOne) SaveX(ctx context.Context) *MissingConcept {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *MissingConceptUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *MissingConceptUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *MissingConceptUpdateOne) defaults() {
	if _, ok := _u.mutation.LastSeen(); !ok {
		v := missingconcept.UpdateDefaultLastSeen()
		_u.mutation.SetLastSeen(v)
	}
}

func (_u *MissingConceptUpdateOne) sqlSave(ctx context.Context) (_node *MissingConcept, err error) {
	_spec := sqlgraph.NewUpdateSpec(missingconcept.Table, missingconcept.Columns, sqlgraph.NewFieldSpec(missingconcept.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "MissingConcept.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, missingconcept.FieldID)
		for _, f := range fields {
			if !missingconcept.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != missingconcept.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(missingconcept.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HitCount(); ok {
		_spec.SetField(missingconcept.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHitCount(); ok {
		_spec.AddField(missingconcept.FieldHitCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(missingconcept.FieldLastSeen, field.TypeTime, value)
	}
	_node = &MissingConcept{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{missingconcept.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
