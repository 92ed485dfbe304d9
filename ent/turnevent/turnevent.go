// Code generated by ent, DO NOT EDIT.

package turnevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the turnevent type in the database.
	Label = "turn_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldLearnerID holds the string denoting the learner_id field in the database.
	FieldLearnerID = "learner_id"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldTask holds the string denoting the task field in the database.
	FieldTask = "task"
	// FieldModeBefore holds the string denoting the mode_before field in the database.
	FieldModeBefore = "mode_before"
	// FieldModeAfter holds the string denoting the mode_after field in the database.
	FieldModeAfter = "mode_after"
	// FieldInput holds the string denoting the input field in the database.
	FieldInput = "input"
	// FieldExplainedConcept holds the string denoting the explained_concept field in the database.
	FieldExplainedConcept = "explained_concept"
	// Table holds the table name of the turnevent in the database.
	Table = "turn_events"
)

// Columns holds all SQL columns for turnevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldLearnerID,
	FieldSessionID,
	FieldTask,
	FieldModeBefore,
	FieldModeAfter,
	FieldInput,
	FieldExplainedConcept,
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
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// DefaultSessionID holds the default value on creation for the "session_id" field.
	DefaultSessionID string
	// DefaultInput holds the default value on creation for the "input" field.
	DefaultInput string
	// DefaultExplainedConcept holds the default value on creation for the "explained_concept" field.
	DefaultExplainedConcept string
)

// OrderOption defines the ordering options for the TurnEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// ByLearnerID orders the results by the learner_id field.
func ByLearnerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearnerID, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByTask orders the results by the task field.
func ByTask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTask, opts...).ToFunc()
}

// ByModeBefore orders the results by the mode_before field.
func ByModeBefore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModeBefore, opts...).ToFunc()
}

// ByModeAfter orders the results by the mode_after field.
func ByModeAfter(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModeAfter, opts...).ToFunc()
}

// ByInput orders the results by the input field.
func ByInput(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInput, opts...).ToFunc()
}

// ByExplainedConcept orders the results by the explained_concept field.
func ByExplainedConcept(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExplainedConcept, opts...).ToFunc()
}
