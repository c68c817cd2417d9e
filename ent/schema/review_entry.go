package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ReviewEntry is one spaced-repetition queue row per (user, question) pair.
// Unlike the event tables this row is mutable: every re-attempt rewrites the
// schedule fields in place. The (user_id, question_id) unique index is what
// makes admission idempotent.
type ReviewEntry struct {
	ent.Schema
}

func (ReviewEntry) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Immutable(),
		field.String("question_id").
			NotEmpty().
			Immutable().
			Comment("Question qid"),
		field.String("reason").
			NotEmpty().
			Comment("incorrect, low_confidence, spaced_repetition, or bookmarked"),
		field.Time("due_at").
			Comment("When the item should resurface"),
		field.Int("interval_days").
			Default(1).
			Comment("Current interval, always >= 1"),
		field.Float("ease_factor").
			Default(2.5).
			Comment("SM-2 ease multiplier, clamped to [1.3, 3.0]"),
		field.Int("review_count").
			Default(0).
			Comment("Completed re-attempts"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (ReviewEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "question_id").
			Unique(),
		index.Fields("user_id", "due_at"),
	}
}
