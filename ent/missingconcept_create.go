// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/seonho-dev/tutorgraph/ent/missingconcept"
)

// MissingConceptCreate is the builder for creating a MissingConcept entity.
type MissingConceptCreate struct {
	config
	mutation *MissingConceptMutation
	hooks    []Hook
}

// SetName sets the "name" field.
func (_c *MissingConceptCreate) SetName(v string) *MissingConceptCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetHitCount sets the "hit_count" field.
func (_c *MissingConceptCreate) SetHitCount(v int) *MissingConceptCreate {
	_c.mutation.SetHitCount(v)
	return _c
}

// SetNillableHitCount sets the "hit_count" field if the given value is not nil.
func (_c *MissingConceptCreate) SetNillableHitCount(v *int) *MissingConceptCreate {
	if v != nil {
		_c.SetHitCount(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *MissingConceptCreate) SetLastSeen(v time.Time) *MissingConceptCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *MissingConceptCreate) SetNillableLastSeen(v *time.Time) *MissingConceptCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// Mutation returns the MissingConceptMutation object of the builder.
func (_c *MissingConceptCreate) Mutation() *MissingConceptMutation {
	return _c.mutation
}

// Save creates the MissingConcept in the database.
func (_c *MissingConceptCreate) Save(ctx context.Context) (*MissingConcept, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *MissingConceptCreate) SaveX(ctx context.Context) *MissingConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissingConceptCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissingConceptCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *MissingConceptCreate) defaults() {
	if _, ok := _c.mutation.HitCount(); !ok {
		v := missingconcept.DefaultHitCount
		_c.mutation.SetHitCount(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := missingconcept.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *MissingConceptCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "MissingConcept.name"`)}
	}
	if _, ok := _c.mutation.HitCount(); !ok {
		return &ValidationError{Name: "hit_count", err: errors.New(`ent: missing required field "MissingConcept.hit_count"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "MissingConcept.last_seen"`)}
	}
	return nil
}

func (_c *MissingConceptCreate) sqlSave(ctx context.Context) (*MissingConcept, error) {
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

func (_c *MissingConceptCreate) createSpec() (*MissingConcept, *sqlgraph.CreateSpec) {
	var (
		_node = &MissingConcept{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(missingconcept.Table, sqlgraph.NewFieldSpec(missingconcept.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(missingconcept.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.HitCount(); ok {
		_spec.SetField(missingconcept.FieldHitCount, field.TypeInt, value)
		_node.HitCount = value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(missingconcept.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	return _node, _spec
}

// MissingConceptCreateBulk is the builder for creating many MissingConcept entities in bulk.
type MissingConceptCreateBulk struct {
	config
	err      error
	builders []*MissingConceptCreate
}

// Save creates the MissingConcept entities in the database.
func (_c *MissingConceptCreateBulk) Save(ctx context.Context) ([]*MissingConcept, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*MissingConcept, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*MissingConceptMutation)
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
func (_c *MissingConceptCreateBulk) SaveX(ctx context.Context) []*MissingConcept {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *MissingConceptCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *MissingConceptCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
