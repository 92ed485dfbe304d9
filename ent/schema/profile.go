package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Profile is the durable learning memory for one learner: which concepts
// have been explained and how many times. Session-transient dialogue state
// is never persisted here.
type Profile struct {
	ent.Schema
}

func (Profile) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Unique().
			Comment("Stable learner identifier (key for load/save)"),
		field.Int("schema_version").
			Default(1).
			Comment("Profile payload version"),
		field.JSON("explained_concepts", []string{}).
			Comment("Insertion-ordered, deduplicated list of explained concept names"),
		field.JSON("explanation_count", map[string]int{}).
			Comment("Concept name to times-explained count"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}
