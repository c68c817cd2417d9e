package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AnswerEvent records one answered question. Append-only per user: rows are
// written once when the answer is submitted and never mutated. Correctness is
// derived against the question's correct label at write time and stored
// redundantly so history reads never need a join to score themselves.
type AnswerEvent struct {
	ent.Schema
}

func (AnswerEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AnswerEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("user_id").
			NotEmpty().
			Comment("Owning user or anonymous session"),
		field.String("question_id").
			NotEmpty().
			Comment("Question qid this answer is for"),
		field.String("session_id").
			Default("").
			Comment("Practice session UUID, empty for review-flow answers"),
		field.String("selected_label").
			NotEmpty().
			Comment("Option label the user chose"),
		field.Bool("correct").
			Comment("Whether selected_label matched the correct label"),
		field.String("confidence").
			Default("").
			Comment("Self-reported: low, medium, high, or empty"),
		field.String("category").
			NotEmpty().
			Comment("Question category at answer time"),
		field.Int("time_ms").
			Default(0).
			Comment("Milliseconds from display to submit"),
	}
}

func (AnswerEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("question_id"),
		index.Fields("session_id"),
		index.Fields("user_id", "question_id"),
	}
}
