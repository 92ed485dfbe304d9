// Code generated by ent, DO NOT EDIT.

package missingconcept

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/seonho-dev/tutorgraph/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldName, v))
}

// HitCount applies equality check predicate on the "hit_count" field. It's identical to HitCountEQ.
func HitCount(v int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldHitCount, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldLastSeen, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldContainsFold(FieldName, v))
}

// HitCountEQ applies the EQ predicate on the "hit_count" field.
func HitCountEQ(v int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldHitCount, v))
}

// HitCountNEQ applies the NEQ predicate on the "hit_count" field.
func HitCountNEQ(v int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNEQ(FieldHitCount, v))
}

// HitCountIn applies the In predicate on the "hit_count" field.
func HitCountIn(vs ...int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldIn(FieldHitCount, vs...))
}

// HitCountNotIn applies the NotIn predicate on the "hit_count" field.
func HitCountNotIn(vs ...int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNotIn(FieldHitCount, vs...))
}

// HitCountGT applies the GT predicate on the "hit_count" field.
func HitCountGT(v int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGT(FieldHitCount, v))
}

// HitCountGTE applies the GTE predicate on the "hit_count" field.
func HitCountGTE(v int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGTE(FieldHitCount, v))
}

// HitCountLT applies the LT predicate on the "hit_count" field.
func HitCountLT(v int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLT(FieldHitCount, v))
}

// HitCountLTE applies the LTE predicate on the "hit_count" field.
func HitCountLTE(v int) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLTE(FieldHitCount, v))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.MissingConcept {
	return predicate.MissingConcept(sql.FieldLTE(FieldLastSeen, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.MissingConcept) predicate.MissingConcept {
	return predicate.MissingConcept(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.MissingConcept) predicate.MissingConcept {
	return predicate.MissingConcept(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.MissingConcept) predicate.MissingConcept {
	return predicate.MissingConcept(sql.NotPredicates(p))
}
