package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TurnEvent records one completed dialogue turn: what the learner said,
// which task the router picked, and the mode transition the engine made.
type TurnEvent struct {
	ent.Schema
}

func (TurnEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (TurnEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("learner_id").
			Comment("Profile this turn belongs to"),
		field.String("session_id").
			Default("").
			Comment("Chat session this turn belongs to"),
		field.String("task").
			Comment("Router task: greeting, ask_problem, tutor_flow, chitchat, solve_problem"),
		field.String("mode_before").
			Comment("Session mode at turn entry"),
		field.String("mode_after").
			Comment("Session mode after the transition"),
		field.Text("input").
			Default("").
			Comment("Raw learner input"),
		field.String("explained_concept").
			Default("").
			Comment("Concept explained this turn, if any"),
	}
}

func (TurnEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("learner_id"),
		index.Fields("session_id"),
		index.Fields("task"),
	}
}
