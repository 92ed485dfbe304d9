package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MissingConcept tracks concepts learners asked about that the knowledge
// graph could not resolve. Feeds curriculum-gap review.
type MissingConcept struct {
	ent.Schema
}

func (MissingConcept) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			Unique().
			Comment("Concept name as extracted from the learner's question"),
		field.Int("hit_count").
			Default(1).
			Comment("How many times the concept was requested"),
		field.Time("last_seen").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Most recent request"),
	}
}

func (MissingConcept) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hit_count"),
	}
}
