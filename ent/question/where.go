// Code generated by ent, DO NOT EDIT.

package question

import (
	"entgo.io/ent/dialect/sql"
	"github.com/meera/nclexprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldID, id))
}

// Qid applies equality check predicate on the "qid" field. It's identical to QidEQ.
func Qid(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// Stem applies equality check predicate on the "stem" field. It's identical to StemEQ.
func Stem(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// CorrectLabel applies equality check predicate on the "correct_label" field. It's identical to CorrectLabelEQ.
func CorrectLabel(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectLabel, v))
}

// Rationale applies equality check predicate on the "rationale" field. It's identical to RationaleEQ.
func Rationale(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRationale, v))
}

// Category applies equality check predicate on the "category" field. It's identical to CategoryEQ.
func Category(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategory, v))
}

// ExamCategory applies equality check predicate on the "exam_category" field. It's identical to ExamCategoryEQ.
func ExamCategory(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExamCategory, v))
}

// Difficulty applies equality check predicate on the "difficulty" field. It's identical to DifficultyEQ.
func Difficulty(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldActive, v))
}

// Source applies equality check predicate on the "source" field. It's identical to SourceEQ.
func Source(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSource, v))
}

// QidEQ applies the EQ predicate on the "qid" field.
func QidEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldQid, v))
}

// QidNEQ applies the NEQ predicate on the "qid" field.
func QidNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldQid, v))
}

// QidIn applies the In predicate on the "qid" field.
func QidIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldQid, vs...))
}

// QidNotIn applies the NotIn predicate on the "qid" field.
func QidNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldQid, vs...))
}

// QidGT applies the GT predicate on the "qid" field.
func QidGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldQid, v))
}

// QidGTE applies the GTE predicate on the "qid" field.
func QidGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldQid, v))
}

// QidLT applies the LT predicate on the "qid" field.
func QidLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldQid, v))
}

// QidLTE applies the LTE predicate on the "qid" field.
func QidLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldQid, v))
}

// QidContains applies the Contains predicate on the "qid" field.
func QidContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldQid, v))
}

// QidHasPrefix applies the HasPrefix predicate on the "qid" field.
func QidHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldQid, v))
}

// QidHasSuffix applies the HasSuffix predicate on the "qid" field.
func QidHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldQid, v))
}

// QidEqualFold applies the EqualFold predicate on the "qid" field.
func QidEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldQid, v))
}

// QidContainsFold applies the ContainsFold predicate on the "qid" field.
func QidContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldQid, v))
}

// StemEQ applies the EQ predicate on the "stem" field.
func StemEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldStem, v))
}

// StemNEQ applies the NEQ predicate on the "stem" field.
func StemNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldStem, v))
}

// StemIn applies the In predicate on the "stem" field.
func StemIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldStem, vs...))
}

// StemNotIn applies the NotIn predicate on the "stem" field.
func StemNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldStem, vs...))
}

// StemGT applies the GT predicate on the "stem" field.
func StemGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldStem, v))
}

// StemGTE applies the GTE predicate on the "stem" field.
func StemGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldStem, v))
}

// StemLT applies the LT predicate on the "stem" field.
func StemLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldStem, v))
}

// StemLTE applies the LTE predicate on the "stem" field.
func StemLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldStem, v))
}

// StemContains applies the Contains predicate on the "stem" field.
func StemContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldStem, v))
}

// StemHasPrefix applies the HasPrefix predicate on the "stem" field.
func StemHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldStem, v))
}

// StemHasSuffix applies the HasSuffix predicate on the "stem" field.
func StemHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldStem, v))
}

// StemEqualFold applies the EqualFold predicate on the "stem" field.
func StemEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldStem, v))
}

// StemContainsFold applies the ContainsFold predicate on the "stem" field.
func StemContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldStem, v))
}

// CorrectLabelEQ applies the EQ predicate on the "correct_label" field.
func CorrectLabelEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCorrectLabel, v))
}

// CorrectLabelNEQ applies the NEQ predicate on the "correct_label" field.
func CorrectLabelNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCorrectLabel, v))
}

// CorrectLabelIn applies the In predicate on the "correct_label" field.
func CorrectLabelIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCorrectLabel, vs...))
}

// CorrectLabelNotIn applies the NotIn predicate on the "correct_label" field.
func CorrectLabelNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCorrectLabel, vs...))
}

// CorrectLabelGT applies the GT predicate on the "correct_label" field.
func CorrectLabelGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCorrectLabel, v))
}

// CorrectLabelGTE applies the GTE predicate on the "correct_label" field.
func CorrectLabelGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCorrectLabel, v))
}

// CorrectLabelLT applies the LT predicate on the "correct_label" field.
func CorrectLabelLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCorrectLabel, v))
}

// CorrectLabelLTE applies the LTE predicate on the "correct_label" field.
func CorrectLabelLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCorrectLabel, v))
}

// CorrectLabelContains applies the Contains predicate on the "correct_label" field.
func CorrectLabelContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCorrectLabel, v))
}

// CorrectLabelHasPrefix applies the HasPrefix predicate on the "correct_label" field.
func CorrectLabelHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCorrectLabel, v))
}

// CorrectLabelHasSuffix applies the HasSuffix predicate on the "correct_label" field.
func CorrectLabelHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCorrectLabel, v))
}

// CorrectLabelEqualFold applies the EqualFold predicate on the "correct_label" field.
func CorrectLabelEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCorrectLabel, v))
}

// CorrectLabelContainsFold applies the ContainsFold predicate on the "correct_label" field.
func CorrectLabelContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCorrectLabel, v))
}

// RationaleEQ applies the EQ predicate on the "rationale" field.
func RationaleEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldRationale, v))
}

// RationaleNEQ applies the NEQ predicate on the "rationale" field.
func RationaleNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldRationale, v))
}

// RationaleIn applies the In predicate on the "rationale" field.
func RationaleIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldRationale, vs...))
}

// RationaleNotIn applies the NotIn predicate on the "rationale" field.
func RationaleNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldRationale, vs...))
}

// RationaleGT applies the GT predicate on the "rationale" field.
func RationaleGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldRationale, v))
}

// RationaleGTE applies the GTE predicate on the "rationale" field.
func RationaleGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldRationale, v))
}

// RationaleLT applies the LT predicate on the "rationale" field.
func RationaleLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldRationale, v))
}

// RationaleLTE applies the LTE predicate on the "rationale" field.
func RationaleLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldRationale, v))
}

// RationaleContains applies the Contains predicate on the "rationale" field.
func RationaleContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldRationale, v))
}

// RationaleHasPrefix applies the HasPrefix predicate on the "rationale" field.
func RationaleHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldRationale, v))
}

// RationaleHasSuffix applies the HasSuffix predicate on the "rationale" field.
func RationaleHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldRationale, v))
}

// RationaleEqualFold applies the EqualFold predicate on the "rationale" field.
func RationaleEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldRationale, v))
}

// RationaleContainsFold applies the ContainsFold predicate on the "rationale" field.
func RationaleContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldRationale, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldCategory, vs...))
}

// CategoryGT applies the GT predicate on the "category" field.
func CategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldCategory, v))
}

// CategoryGTE applies the GTE predicate on the "category" field.
func CategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldCategory, v))
}

// CategoryLT applies the LT predicate on the "category" field.
func CategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldCategory, v))
}

// CategoryLTE applies the LTE predicate on the "category" field.
func CategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldCategory, v))
}

// CategoryContains applies the Contains predicate on the "category" field.
func CategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldCategory, v))
}

// CategoryHasPrefix applies the HasPrefix predicate on the "category" field.
func CategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldCategory, v))
}

// CategoryHasSuffix applies the HasSuffix predicate on the "category" field.
func CategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldCategory, v))
}

// CategoryEqualFold applies the EqualFold predicate on the "category" field.
func CategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldCategory, v))
}

// CategoryContainsFold applies the ContainsFold predicate on the "category" field.
func CategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldCategory, v))
}

// ExamCategoryEQ applies the EQ predicate on the "exam_category" field.
func ExamCategoryEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldExamCategory, v))
}

// ExamCategoryNEQ applies the NEQ predicate on the "exam_category" field.
func ExamCategoryNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldExamCategory, v))
}

// ExamCategoryIn applies the In predicate on the "exam_category" field.
func ExamCategoryIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldExamCategory, vs...))
}

// ExamCategoryNotIn applies the NotIn predicate on the "exam_category" field.
func ExamCategoryNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldExamCategory, vs...))
}

// ExamCategoryGT applies the GT predicate on the "exam_category" field.
func ExamCategoryGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldExamCategory, v))
}

// ExamCategoryGTE applies the GTE predicate on the "exam_category" field.
func ExamCategoryGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldExamCategory, v))
}

// ExamCategoryLT applies the LT predicate on the "exam_category" field.
func ExamCategoryLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldExamCategory, v))
}

// ExamCategoryLTE applies the LTE predicate on the "exam_category" field.
func ExamCategoryLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldExamCategory, v))
}

// ExamCategoryContains applies the Contains predicate on the "exam_category" field.
func ExamCategoryContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldExamCategory, v))
}

// ExamCategoryHasPrefix applies the HasPrefix predicate on the "exam_category" field.
func ExamCategoryHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldExamCategory, v))
}

// ExamCategoryHasSuffix applies the HasSuffix predicate on the "exam_category" field.
func ExamCategoryHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldExamCategory, v))
}

// ExamCategoryEqualFold applies the EqualFold predicate on the "exam_category" field.
func ExamCategoryEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldExamCategory, v))
}

// ExamCategoryContainsFold applies the ContainsFold predicate on the "exam_category" field.
func ExamCategoryContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldExamCategory, v))
}

// DifficultyEQ applies the EQ predicate on the "difficulty" field.
func DifficultyEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldDifficulty, v))
}

// DifficultyNEQ applies the NEQ predicate on the "difficulty" field.
func DifficultyNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldDifficulty, v))
}

// DifficultyIn applies the In predicate on the "difficulty" field.
func DifficultyIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldDifficulty, vs...))
}

// DifficultyNotIn applies the NotIn predicate on the "difficulty" field.
func DifficultyNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldDifficulty, vs...))
}

// DifficultyGT applies the GT predicate on the "difficulty" field.
func DifficultyGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldDifficulty, v))
}

// DifficultyGTE applies the GTE predicate on the "difficulty" field.
func DifficultyGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldDifficulty, v))
}

// DifficultyLT applies the LT predicate on the "difficulty" field.
func DifficultyLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldDifficulty, v))
}

// DifficultyLTE applies the LTE predicate on the "difficulty" field.
func DifficultyLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldDifficulty, v))
}

// DifficultyContains applies the Contains predicate on the "difficulty" field.
func DifficultyContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldDifficulty, v))
}

// DifficultyHasPrefix applies the HasPrefix predicate on the "difficulty" field.
func DifficultyHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldDifficulty, v))
}

// DifficultyHasSuffix applies the HasSuffix predicate on the "difficulty" field.
func DifficultyHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldDifficulty, v))
}

// DifficultyEqualFold applies the EqualFold predicate on the "difficulty" field.
func DifficultyEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldDifficulty, v))
}

// DifficultyContainsFold applies the ContainsFold predicate on the "difficulty" field.
func DifficultyContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldDifficulty, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldActive, v))
}

// SourceEQ applies the EQ predicate on the "source" field.
func SourceEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldEQ(FieldSource, v))
}

// SourceNEQ applies the NEQ predicate on the "source" field.
func SourceNEQ(v string) predicate.Question {
	return predicate.Question(sql.FieldNEQ(FieldSource, v))
}

// SourceIn applies the In predicate on the "source" field.
func SourceIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldIn(FieldSource, vs...))
}

// SourceNotIn applies the NotIn predicate on the "source" field.
func SourceNotIn(vs ...string) predicate.Question {
	return predicate.Question(sql.FieldNotIn(FieldSource, vs...))
}

// SourceGT applies the GT predicate on the "source" field.
func SourceGT(v string) predicate.Question {
	return predicate.Question(sql.FieldGT(FieldSource, v))
}

// SourceGTE applies the GTE predicate on the "source" field.
func SourceGTE(v string) predicate.Question {
	return predicate.Question(sql.FieldGTE(FieldSource, v))
}

// SourceLT applies the LT predicate on the "source" field.
func SourceLT(v string) predicate.Question {
	return predicate.Question(sql.FieldLT(FieldSource, v))
}

// SourceLTE applies the LTE predicate on the "source" field.
func SourceLTE(v string) predicate.Question {
	return predicate.Question(sql.FieldLTE(FieldSource, v))
}

// SourceContains applies the Contains predicate on the "source" field.
func SourceContains(v string) predicate.Question {
	return predicate.Question(sql.FieldContains(FieldSource, v))
}

// SourceHasPrefix applies the HasPrefix predicate on the "source" field.
func SourceHasPrefix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasPrefix(FieldSource, v))
}

// SourceHasSuffix applies the HasSuffix predicate on the "source" field.
func SourceHasSuffix(v string) predicate.Question {
	return predicate.Question(sql.FieldHasSuffix(FieldSource, v))
}

// SourceEqualFold applies the EqualFold predicate on the "source" field.
func SourceEqualFold(v string) predicate.Question {
	return predicate.Question(sql.FieldEqualFold(FieldSource, v))
}

// SourceContainsFold applies the ContainsFold predicate on the "source" field.
func SourceContainsFold(v string) predicate.Question {
	return predicate.Question(sql.FieldContainsFold(FieldSource, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Question) predicate.Question {
	return predicate.Question(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Question) predicate.Question {
	return predicate.Question(sql.NotPredicates(p))
}
