// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AnswerEventsColumns holds the columns for the "answer_events" table.
	AnswerEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "selected_label", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "confidence", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString},
		{Name: "time_ms", Type: field.TypeInt, Default: 0},
	}
	// AnswerEventsTable holds the schema information for the "answer_events" table.
	AnswerEventsTable = &schema.Table{
		Name:       "answer_events",
		Columns:    AnswerEventsColumns,
		PrimaryKey: []*schema.Column{AnswerEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "answerevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[1]},
			},
			{
				Name:    "answerevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[2]},
			},
			{
				Name:    "answerevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3]},
			},
			{
				Name:    "answerevent_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[4]},
			},
			{
				Name:    "answerevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[5]},
			},
			{
				Name:    "answerevent_user_id_question_id",
				Unique:  false,
				Columns: []*schema.Column{AnswerEventsColumns[3], AnswerEventsColumns[4]},
			},
		},
	}
	// AwardEventsColumns holds the columns for the "award_events" table.
	AwardEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "award_type", Type: field.TypeString},
		{Name: "achievement_id", Type: field.TypeString, Default: ""},
		{Name: "tier", Type: field.TypeString},
		{Name: "points", Type: field.TypeInt, Default: 0},
		{Name: "session_id", Type: field.TypeString, Default: ""},
		{Name: "reason", Type: field.TypeString},
	}
	// AwardEventsTable holds the schema information for the "award_events" table.
	AwardEventsTable = &schema.Table{
		Name:       "award_events",
		Columns:    AwardEventsColumns,
		PrimaryKey: []*schema.Column{AwardEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "awardevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[1]},
			},
			{
				Name:    "awardevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[2]},
			},
			{
				Name:    "awardevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[3]},
			},
			{
				Name:    "awardevent_award_type",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[4]},
			},
			{
				Name:    "awardevent_achievement_id",
				Unique:  false,
				Columns: []*schema.Column{AwardEventsColumns[5]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// QuestionsColumns holds the columns for the "questions" table.
	QuestionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "qid", Type: field.TypeString, Unique: true},
		{Name: "stem", Type: field.TypeString},
		{Name: "options", Type: field.TypeJSON},
		{Name: "correct_label", Type: field.TypeString},
		{Name: "rationale", Type: field.TypeString, Default: ""},
		{Name: "category", Type: field.TypeString},
		{Name: "exam_category", Type: field.TypeString, Default: ""},
		{Name: "difficulty", Type: field.TypeString, Default: "medium"},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "source", Type: field.TypeString, Default: "imported"},
	}
	// QuestionsTable holds the schema information for the "questions" table.
	QuestionsTable = &schema.Table{
		Name:       "questions",
		Columns:    QuestionsColumns,
		PrimaryKey: []*schema.Column{QuestionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "question_qid",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[1]},
			},
			{
				Name:    "question_category",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[6]},
			},
			{
				Name:    "question_active",
				Unique:  false,
				Columns: []*schema.Column{QuestionsColumns[9]},
			},
		},
	}
	// ReviewEntriesColumns holds the columns for the "review_entries" table.
	ReviewEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "user_id", Type: field.TypeString},
		{Name: "question_id", Type: field.TypeString},
		{Name: "reason", Type: field.TypeString},
		{Name: "due_at", Type: field.TypeTime},
		{Name: "interval_days", Type: field.TypeInt, Default: 1},
		{Name: "ease_factor", Type: field.TypeFloat64, Default: 2.5},
		{Name: "review_count", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ReviewEntriesTable holds the schema information for the "review_entries" table.
	ReviewEntriesTable = &schema.Table{
		Name:       "review_entries",
		Columns:    ReviewEntriesColumns,
		PrimaryKey: []*schema.Column{ReviewEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "reviewentry_user_id_question_id",
				Unique:  true,
				Columns: []*schema.Column{ReviewEntriesColumns[1], ReviewEntriesColumns[2]},
			},
			{
				Name:    "reviewentry_user_id_due_at",
				Unique:  false,
				Columns: []*schema.Column{ReviewEntriesColumns[1], ReviewEntriesColumns[4]},
			},
		},
	}
	// SessionEventsColumns holds the columns for the "session_events" table.
	SessionEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
		{Name: "session_id", Type: field.TypeString},
		{Name: "action", Type: field.TypeString},
		{Name: "mode", Type: field.TypeString, Default: "practice"},
		{Name: "questions_served", Type: field.TypeInt, Default: 0},
		{Name: "correct_answers", Type: field.TypeInt, Default: 0},
		{Name: "duration_secs", Type: field.TypeInt, Default: 0},
	}
	// SessionEventsTable holds the schema information for the "session_events" table.
	SessionEventsTable = &schema.Table{
		Name:       "session_events",
		Columns:    SessionEventsColumns,
		PrimaryKey: []*schema.Column{SessionEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "sessionevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[1]},
			},
			{
				Name:    "sessionevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[2]},
			},
			{
				Name:    "sessionevent_session_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[4]},
			},
			{
				Name:    "sessionevent_user_id",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[3]},
			},
			{
				Name:    "sessionevent_action",
				Unique:  false,
				Columns: []*schema.Column{SessionEventsColumns[5]},
			},
		},
	}
	// SnapshotsColumns holds the columns for the "snapshots" table.
	SnapshotsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "data", Type: field.TypeJSON},
	}
	// SnapshotsTable holds the schema information for the "snapshots" table.
	SnapshotsTable = &schema.Table{
		Name:       "snapshots",
		Columns:    SnapshotsColumns,
		PrimaryKey: []*schema.Column{SnapshotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "snapshot_timestamp",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[2]},
			},
			{
				Name:    "snapshot_sequence",
				Unique:  false,
				Columns: []*schema.Column{SnapshotsColumns[1]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AnswerEventsTable,
		AwardEventsTable,
		LlmRequestEventsTable,
		QuestionsTable,
		ReviewEntriesTable,
		SessionEventsTable,
		SnapshotsTable,
	}
)

func init() {
}
