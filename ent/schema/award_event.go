package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AwardEvent records a gamification award: an achievement unlock or a streak
// milestone. Append-only; the earned set is derived by replaying these rows.
type AwardEvent struct {
	ent.Schema
}

func (AwardEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AwardEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty(),
		field.String("award_type").
			NotEmpty().
			Comment("achievement or streak"),
		field.String("achievement_id").
			Default("").
			Comment("Catalog ID for achievement awards"),
		field.String("tier").
			NotEmpty().
			Comment("bronze, silver, gold, or platinum"),
		field.Int("points").
			Default(0).
			Comment("Points granted with the award"),
		field.String("session_id").
			Default("").
			Comment("Session during which the award was earned"),
		field.String("reason").
			NotEmpty().
			Comment("Human-readable award description"),
	}
}

func (AwardEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("award_type"),
		index.Fields("achievement_id"),
	}
}
