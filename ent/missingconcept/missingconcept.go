// Code generated by ent, DO NOT EDIT.

package missingconcept

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the missingconcept type in the database.
	Label = "missing_concept"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldHitCount holds the string denoting the hit_count field in the database.
	FieldHitCount = "hit_count"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// Table holds the table name of the missingconcept in the database.
	Table = "missing_concepts"
)

// Columns holds all SQL columns for missingconcept fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldHitCount,
	FieldLastSeen,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultHitCount holds the default value on creation for the "hit_count" field.
	DefaultHitCount int
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// UpdateDefaultLastSeen holds the default value on update for the "last_seen" field.
	UpdateDefaultLastSeen func() time.Time
)

// OrderOption defines the ordering options for the MissingConcept queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByHitCount orders the results by the hit_count field.
func ByHitCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHitCount, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}
