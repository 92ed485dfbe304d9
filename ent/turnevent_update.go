// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seonho-dev/tutorgraph/ent/predicate"
	"github.com/seonho-dev/tutorgraph/ent/turnevent"
)

// TurnEventUpdate is the builder for updating TurnEvent entities.
type TurnEventUpdate struct {
	config
	hooks    []Hook
	mutation *TurnEventMutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdate) Where(ps ...predicate.TurnEvent) *TurnEventUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetLearnerID sets the "learner_id" field.
func (_u *TurnEventUpdate) SetLearnerID(v string) *TurnEventUpdate {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableLearnerID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdate) SetSessionID(v string) *TurnEventUpdate {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableSessionID(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *TurnEventUpdate) SetTask(v string) *TurnEventUpdate {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableTask(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetModeBefore sets the "mode_before" field.
func (_u *TurnEventUpdate) SetModeBefore(v string) *TurnEventUpdate {
	_u.mutation.SetModeBefore(v)
	return _u
}

// SetNillableModeBefore sets the "mode_before" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableModeBefore(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetModeBefore(*v)
	}
	return _u
}

// SetModeAfter sets the "mode_after" field.
func (_u *TurnEventUpdate) SetModeAfter(v string) *TurnEventUpdate {
	_u.mutation.SetModeAfter(v)
	return _u
}

// SetNillableModeAfter sets the "mode_after" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableModeAfter(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetModeAfter(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *TurnEventUpdate) SetInput(v string) *TurnEventUpdate {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableInput(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetExplainedConcept sets the "explained_concept" field.
func (_u *TurnEventUpdate) SetExplainedConcept(v string) *TurnEventUpdate {
	_u.mutation.SetExplainedConcept(v)
	return _u
}

// SetNillableExplainedConcept sets the "explained_concept" field if the given value is not nil.
func (_u *TurnEventUpdate) SetNillableExplainedConcept(v *string) *TurnEventUpdate {
	if v != nil {
		_u.SetExplainedConcept(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdate) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TurnEventUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TurnEventUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TurnEventUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(turnevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(turnevent.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModeBefore(); ok {
		_spec.SetField(turnevent.FieldModeBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModeAfter(); ok {
		_spec.SetField(turnevent.FieldModeAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(turnevent.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExplainedConcept(); ok {
		_spec.SetField(turnevent.FieldExplainedConcept, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TurnEventUpdateOne is the builder for updating a single TurnEvent entity.
type TurnEventUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TurnEventMutation
}

// SetLearnerID sets the "learner_id" field.
func (_u *TurnEventUpdateOne) SetLearnerID(v string) *TurnEventUpdateOne {
	_u.mutation.SetLearnerID(v)
	return _u
}

// SetNillableLearnerID sets the "learner_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableLearnerID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetLearnerID(*v)
	}
	return _u
}

// SetSessionID sets the "session_id" field.
func (_u *TurnEventUpdateOne) SetSessionID(v string) *TurnEventUpdateOne {
	_u.mutation.SetSessionID(v)
	return _u
}

// SetNillableSessionID sets the "session_id" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableSessionID(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetSessionID(*v)
	}
	return _u
}

// SetTask sets the "task" field.
func (_u *TurnEventUpdateOne) SetTask(v string) *TurnEventUpdateOne {
	_u.mutation.SetTask(v)
	return _u
}

// SetNillableTask sets the "task" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableTask(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetTask(*v)
	}
	return _u
}

// SetModeBefore sets the "mode_before" field.
func (_u *TurnEventUpdateOne) SetModeBefore(v string) *TurnEventUpdateOne {
	_u.mutation.SetModeBefore(v)
	return _u
}

// SetNillableModeBefore sets the "mode_before" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableModeBefore(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetModeBefore(*v)
	}
	return _u
}

// SetModeAfter sets the "mode_after" field.
func (_u *TurnEventUpdateOne) SetModeAfter(v string) *TurnEventUpdateOne {
	_u.mutation.SetModeAfter(v)
	return _u
}

// SetNillableModeAfter sets the "mode_after" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableModeAfter(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetModeAfter(*v)
	}
	return _u
}

// SetInput sets the "input" field.
func (_u *TurnEventUpdateOne) SetInput(v string) *TurnEventUpdateOne {
	_u.mutation.SetInput(v)
	return _u
}

// SetNillableInput sets the "input" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableInput(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetInput(*v)
	}
	return _u
}

// SetExplainedConcept sets the "explained_concept" field.
func (_u *TurnEventUpdateOne) SetExplainedConcept(v string) *TurnEventUpdateOne {
	_u.mutation.SetExplainedConcept(v)
	return _u
}

// SetNillableExplainedConcept sets the "explained_concept" field if the given value is not nil.
func (_u *TurnEventUpdateOne) SetNillableExplainedConcept(v *string) *TurnEventUpdateOne {
	if v != nil {
		_u.SetExplainedConcept(*v)
	}
	return _u
}

// Mutation returns the TurnEventMutation object of the builder.
func (_u *TurnEventUpdateOne) Mutation() *TurnEventMutation {
	return _u.mutation
}

// Where appends a list predicates to the TurnEventUpdate builder.
func (_u *TurnEventUpdateOne) Where(ps ...predicate.TurnEvent) *TurnEventUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TurnEventUpdateOne) Select(field string, fields ...string) *TurnEventUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TurnEvent entity.
func (_u *TurnEventUpdateOne) Save(ctx context.Context) (*TurnEvent, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TurnEventUpdateOne) SaveX(ctx context.Context) *TurnEvent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TurnEventUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TurnEventUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *TurnEventUpdateOne) sqlSave(ctx context.Context) (_node *TurnEvent, err error) {
	_spec := sqlgraph.NewUpdateSpec(turnevent.Table, turnevent.Columns, sqlgraph.NewFieldSpec(turnevent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TurnEvent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, turnevent.FieldID)
		for _, f := range fields {
			if !turnevent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != turnevent.FieldID {
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
	if value, ok := _u.mutation.LearnerID(); ok {
		_spec.SetField(turnevent.FieldLearnerID, field.TypeString, value)
	}
	if value, ok := _u.mutation.SessionID(); ok {
		_spec.SetField(turnevent.FieldSessionID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Task(); ok {
		_spec.SetField(turnevent.FieldTask, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModeBefore(); ok {
		_spec.SetField(turnevent.FieldModeBefore, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModeAfter(); ok {
		_spec.SetField(turnevent.FieldModeAfter, field.TypeString, value)
	}
	if value, ok := _u.mutation.Input(); ok {
		_spec.SetField(turnevent.FieldInput, field.TypeString, value)
	}
	if value, ok := _u.mutation.ExplainedConcept(); ok {
		_spec.SetField(turnevent.FieldExplainedConcept, field.TypeString, value)
	}
	_node = &TurnEvent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{turnevent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
