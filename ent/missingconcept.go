// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/seonho-dev/tutorgraph/ent/missingconcept"
)

// MissingConcept is the model entity for the MissingConcept schema.
type MissingConcept struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Concept name as extracted from the learner's question
	Name string `json:"name,omitempty"`
	// How many times the concept was requested
	HitCount int `json:"hit_count,omitempty"`
	// Most recent request
	LastSeen     time.Time `json:"last_seen,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*MissingConcept) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case missingconcept.FieldID, missingconcept.FieldHitCount:
			values[i] = new(sql.NullInt64)
		case missingconcept.FieldName:
			values[i] = new(sql.NullString)
		case missingconcept.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the MissingConcept fields.
func (_m *MissingConcept) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case missingconcept.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case missingconcept.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case missingconcept.FieldHitCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hit_count", values[i])
			} else if value.Valid {
				_m.HitCount = int(value.Int64)
			}
		case missingconcept.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the MissingConcept.
// This includes values selected through modifiers, order, etc.
func (_m *MissingConcept) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this MissingConcept.
// Note that you need to call MissingConcept.Unwrap() before calling this method if this MissingConcept
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *MissingConcept) Update() *MissingConceptUpdateOne {
	return NewMissingConceptClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the MissingConcept entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *MissingConcept) Unwrap() *MissingConcept {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: MissingConcept is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *MissingConcept) String() string {
	var builder strings.Builder
	builder.WriteString("MissingConcept(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("hit_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.HitCount))
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// MissingConcepts is a parsable slice of MissingConcept.
type MissingConcepts []*MissingConcept
