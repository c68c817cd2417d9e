// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the question type in the database.
	Label = "question"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldQid holds the string denoting the qid field in the database.
	FieldQid = "qid"
	// FieldStem holds the string denoting the stem field in the database.
	FieldStem = "stem"
	// FieldOptions holds the string denoting the options field in the database.
	FieldOptions = "options"
	// FieldCorrectLabel holds the string denoting the correct_label field in the database.
	FieldCorrectLabel = "correct_label"
	// FieldRationale holds the string denoting the rationale field in the database.
	FieldRationale = "rationale"
	// FieldCategory holds the string denoting the category field in the database.
	FieldCategory = "category"
	// FieldExamCategory holds the string denoting the exam_category field in the database.
	FieldExamCategory = "exam_category"
	// FieldDifficulty holds the string denoting the difficulty field in the database.
	FieldDifficulty = "difficulty"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// Table holds the table name of the question in the database.
	Table = "questions"
)

// Columns holds all SQL columns for question fields.
var Columns = []string{
	FieldID,
	FieldQid,
	FieldStem,
	FieldOptions,
	FieldCorrectLabel,
	FieldRationale,
	FieldCategory,
	FieldExamCategory,
	FieldDifficulty,
	FieldActive,
	FieldSource,
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
	// QidValidator is a validator for the "qid" field. It is called by the builders before save.
	QidValidator func(string) error
	// StemValidator is a validator for the "stem" field. It is called by the builders before save.
	StemValidator func(string) error
	// CorrectLabelValidator is a validator for the "correct_label" field. It is called by the builders before save.
	CorrectLabelValidator func(string) error
	// DefaultRationale holds the default value on creation for the "rationale" field.
	DefaultRationale string
	// CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	CategoryValidator func(string) error
	// DefaultExamCategory holds the default value on creation for the "exam_category" field.
	DefaultExamCategory string
	// DefaultDifficulty holds the default value on creation for the "difficulty" field.
	DefaultDifficulty string
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
)

// OrderOption defines the ordering options for the Question queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByQid orders the results by the qid field.
func ByQid(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldQid, opts...).ToFunc()
}

// ByStem orders the results by the stem field.
func ByStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStem, opts...).ToFunc()
}

// ByCorrectLabel orders the results by the correct_label field.
func ByCorrectLabel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectLabel, opts...).ToFunc()
}

// ByRationale orders the results by the rationale field.
func ByRationale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRationale, opts...).ToFunc()
}

// ByCategory orders the results by the category field.
func ByCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCategory, opts...).ToFunc()
}

// ByExamCategory orders the results by the exam_category field.
func ByExamCategory(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExamCategory, opts...).ToFunc()
}

// ByDifficulty orders the results by the difficulty field.
func ByDifficulty(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDifficulty, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}
