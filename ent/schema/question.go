package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Question is a single NCLEX practice item. Questions are immutable after
// creation: content tooling writes them, the practice and review flows only
// read them.
type Question struct {
	ent.Schema
}

// QuestionOption is one labeled answer choice, serialized into the options
// JSON column. Labels are unique within a question ("A".."D").
type QuestionOption struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

func (Question) Fields() []ent.Field {
	return []ent.Field{
		field.String("qid").
			Unique().
			NotEmpty().
			Immutable().
			Comment("Stable public identifier (UUID)"),
		field.String("stem").
			NotEmpty().
			Comment("The question text shown to the user"),
		field.JSON("options", []QuestionOption{}).
			Comment("Ordered labeled answer choices"),
		field.String("correct_label").
			NotEmpty().
			Comment("Label of the correct option"),
		field.String("rationale").
			Default("").
			Comment("Explanation shown after answering"),
		field.String("category").
			NotEmpty().
			Comment("Content category used for adaptive selection"),
		field.String("exam_category").
			Default("").
			Comment("Official NCLEX test-plan category"),
		field.String("difficulty").
			Default("medium").
			Comment("easy, medium, or hard"),
		field.Bool("active").
			Default(true).
			Comment("Inactive questions are excluded from practice"),
		field.String("source").
			Default("imported").
			Comment("imported or generated"),
	}
}

func (Question) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("qid"),
		index.Fields("category"),
		index.Fields("active"),
	}
}
