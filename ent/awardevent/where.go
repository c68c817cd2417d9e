// Code generated by ent, DO NOT EDIT.

package awardevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/meera/nclexprep/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldID, id))
}

// Sequence applies equality check predicate on the "sequence" field. It's identical to SequenceEQ.
func Sequence(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSequence, v))
}

// Timestamp applies equality check predicate on the "timestamp" field. It's identical to TimestampEQ.
func Timestamp(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldUserID, v))
}

// AwardType applies equality check predicate on the "award_type" field. It's identical to AwardTypeEQ.
func AwardType(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldAwardType, v))
}

// AchievementID applies equality check predicate on the "achievement_id" field. It's identical to AchievementIDEQ.
func AchievementID(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldAchievementID, v))
}

// Tier applies equality check predicate on the "tier" field. It's identical to TierEQ.
func Tier(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTier, v))
}

// Points applies equality check predicate on the "points" field. It's identical to PointsEQ.
func Points(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldPoints, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSessionID, v))
}

// Reason applies equality check predicate on the "reason" field. It's identical to ReasonEQ.
func Reason(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldReason, v))
}

// SequenceEQ applies the EQ predicate on the "sequence" field.
func SequenceEQ(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSequence, v))
}

// SequenceNEQ applies the NEQ predicate on the "sequence" field.
func SequenceNEQ(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldSequence, v))
}

// SequenceIn applies the In predicate on the "sequence" field.
func SequenceIn(vs ...int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldSequence, vs...))
}

// SequenceNotIn applies the NotIn predicate on the "sequence" field.
func SequenceNotIn(vs ...int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldSequence, vs...))
}

// SequenceGT applies the GT predicate on the "sequence" field.
func SequenceGT(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldSequence, v))
}

// SequenceGTE applies the GTE predicate on the "sequence" field.
func SequenceGTE(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldSequence, v))
}

// SequenceLT applies the LT predicate on the "sequence" field.
func SequenceLT(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldSequence, v))
}

// SequenceLTE applies the LTE predicate on the "sequence" field.
func SequenceLTE(v int64) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldSequence, v))
}

// TimestampEQ applies the EQ predicate on the "timestamp" field.
func TimestampEQ(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTimestamp, v))
}

// TimestampNEQ applies the NEQ predicate on the "timestamp" field.
func TimestampNEQ(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldTimestamp, v))
}

// TimestampIn applies the In predicate on the "timestamp" field.
func TimestampIn(vs ...time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldTimestamp, vs...))
}

// TimestampNotIn applies the NotIn predicate on the "timestamp" field.
func TimestampNotIn(vs ...time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldTimestamp, vs...))
}

// TimestampGT applies the GT predicate on the "timestamp" field.
func TimestampGT(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldTimestamp, v))
}

// TimestampGTE applies the GTE predicate on the "timestamp" field.
func TimestampGTE(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldTimestamp, v))
}

// TimestampLT applies the LT predicate on the "timestamp" field.
func TimestampLT(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldTimestamp, v))
}

// TimestampLTE applies the LTE predicate on the "timestamp" field.
func TimestampLTE(v time.Time) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldTimestamp, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldUserID, v))
}

// AwardTypeEQ applies the EQ predicate on the "award_type" field.
func AwardTypeEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldAwardType, v))
}

// AwardTypeNEQ applies the NEQ predicate on the "award_type" field.
func AwardTypeNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldAwardType, v))
}

// AwardTypeIn applies the In predicate on the "award_type" field.
func AwardTypeIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldAwardType, vs...))
}

// AwardTypeNotIn applies the NotIn predicate on the "award_type" field.
func AwardTypeNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldAwardType, vs...))
}

// AwardTypeGT applies the GT predicate on the "award_type" field.
func AwardTypeGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldAwardType, v))
}

// AwardTypeGTE applies the GTE predicate on the "award_type" field.
func AwardTypeGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldAwardType, v))
}

// AwardTypeLT applies the LT predicate on the "award_type" field.
func AwardTypeLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldAwardType, v))
}

// AwardTypeLTE applies the LTE predicate on the "award_type" field.
func AwardTypeLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldAwardType, v))
}

// AwardTypeContains applies the Contains predicate on the "award_type" field.
func AwardTypeContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldAwardType, v))
}

// AwardTypeHasPrefix applies the HasPrefix predicate on the "award_type" field.
func AwardTypeHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldAwardType, v))
}

// AwardTypeHasSuffix applies the HasSuffix predicate on the "award_type" field.
func AwardTypeHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldAwardType, v))
}

// AwardTypeEqualFold applies the EqualFold predicate on the "award_type" field.
func AwardTypeEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldAwardType, v))
}

// AwardTypeContainsFold applies the ContainsFold predicate on the "award_type" field.
func AwardTypeContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldAwardType, v))
}

// AchievementIDEQ applies the EQ predicate on the "achievement_id" field.
func AchievementIDEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldAchievementID, v))
}

// AchievementIDNEQ applies the NEQ predicate on the "achievement_id" field.
func AchievementIDNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldAchievementID, v))
}

// AchievementIDIn applies the In predicate on the "achievement_id" field.
func AchievementIDIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldAchievementID, vs...))
}

// AchievementIDNotIn applies the NotIn predicate on the "achievement_id" field.
func AchievementIDNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldAchievementID, vs...))
}

// AchievementIDGT applies the GT predicate on the "achievement_id" field.
func AchievementIDGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldAchievementID, v))
}

// AchievementIDGTE applies the GTE predicate on the "achievement_id" field.
func AchievementIDGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldAchievementID, v))
}

// AchievementIDLT applies the LT predicate on the "achievement_id" field.
func AchievementIDLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldAchievementID, v))
}

// AchievementIDLTE applies the LTE predicate on the "achievement_id" field.
func AchievementIDLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldAchievementID, v))
}

// AchievementIDContains applies the Contains predicate on the "achievement_id" field.
func AchievementIDContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldAchievementID, v))
}

// AchievementIDHasPrefix applies the HasPrefix predicate on the "achievement_id" field.
func AchievementIDHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldAchievementID, v))
}

// AchievementIDHasSuffix applies the HasSuffix predicate on the "achievement_id" field.
func AchievementIDHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldAchievementID, v))
}

// AchievementIDEqualFold applies the EqualFold predicate on the "achievement_id" field.
func AchievementIDEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldAchievementID, v))
}

// AchievementIDContainsFold applies the ContainsFold predicate on the "achievement_id" field.
func AchievementIDContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldAchievementID, v))
}

// TierEQ applies the EQ predicate on the "tier" field.
func TierEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldTier, v))
}

// TierNEQ applies the NEQ predicate on the "tier" field.
func TierNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldTier, v))
}

// TierIn applies the In predicate on the "tier" field.
func TierIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldTier, vs...))
}

// TierNotIn applies the NotIn predicate on the "tier" field.
func TierNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldTier, vs...))
}

// TierGT applies the GT predicate on the "tier" field.
func TierGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldTier, v))
}

// TierGTE applies the GTE predicate on the "tier" field.
func TierGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldTier, v))
}

// TierLT applies the LT predicate on the "tier" field.
func TierLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldTier, v))
}

// TierLTE applies the LTE predicate on the "tier" field.
func TierLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldTier, v))
}

// TierContains applies the Contains predicate on the "tier" field.
func TierContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldTier, v))
}

// TierHasPrefix applies the HasPrefix predicate on the "tier" field.
func TierHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldTier, v))
}

// TierHasSuffix applies the HasSuffix predicate on the "tier" field.
func TierHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldTier, v))
}

// TierEqualFold applies the EqualFold predicate on the "tier" field.
func TierEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldTier, v))
}

// TierContainsFold applies the ContainsFold predicate on the "tier" field.
func TierContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldTier, v))
}

// PointsEQ applies the EQ predicate on the "points" field.
func PointsEQ(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldPoints, v))
}

// PointsNEQ applies the NEQ predicate on the "points" field.
func PointsNEQ(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldPoints, v))
}

// PointsIn applies the In predicate on the "points" field.
func PointsIn(vs ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldPoints, vs...))
}

// PointsNotIn applies the NotIn predicate on the "points" field.
func PointsNotIn(vs ...int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldPoints, vs...))
}

// PointsGT applies the GT predicate on the "points" field.
func PointsGT(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldPoints, v))
}

// PointsGTE applies the GTE predicate on the "points" field.
func PointsGTE(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldPoints, v))
}

// PointsLT applies the LT predicate on the "points" field.
func PointsLT(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldPoints, v))
}

// PointsLTE applies the LTE predicate on the "points" field.
func PointsLTE(v int) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldPoints, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldSessionID, v))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldSessionID, v))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldSessionID, v))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldSessionID, v))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldSessionID, v))
}

// ReasonEQ applies the EQ predicate on the "reason" field.
func ReasonEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEQ(FieldReason, v))
}

// ReasonNEQ applies the NEQ predicate on the "reason" field.
func ReasonNEQ(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNEQ(FieldReason, v))
}

// ReasonIn applies the In predicate on the "reason" field.
func ReasonIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldIn(FieldReason, vs...))
}

// ReasonNotIn applies the NotIn predicate on the "reason" field.
func ReasonNotIn(vs ...string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldNotIn(FieldReason, vs...))
}

// ReasonGT applies the GT predicate on the "reason" field.
func ReasonGT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGT(FieldReason, v))
}

// ReasonGTE applies the GTE predicate on the "reason" field.
func ReasonGTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldGTE(FieldReason, v))
}

// ReasonLT applies the LT predicate on the "reason" field.
func ReasonLT(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLT(FieldReason, v))
}

// ReasonLTE applies the LTE predicate on the "reason" field.
func ReasonLTE(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldLTE(FieldReason, v))
}

// ReasonContains applies the Contains predicate on the "reason" field.
func ReasonContains(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContains(FieldReason, v))
}

// ReasonHasPrefix applies the HasPrefix predicate on the "reason" field.
func ReasonHasPrefix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasPrefix(FieldReason, v))
}

// ReasonHasSuffix applies the HasSuffix predicate on the "reason" field.
func ReasonHasSuffix(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldHasSuffix(FieldReason, v))
}

// ReasonEqualFold applies the EqualFold predicate on the "reason" field.
func ReasonEqualFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldEqualFold(FieldReason, v))
}

// ReasonContainsFold applies the ContainsFold predicate on the "reason" field.
func ReasonContainsFold(v string) predicate.AwardEvent {
	return predicate.AwardEvent(sql.FieldContainsFold(FieldReason, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AwardEvent) predicate.AwardEvent {
	return predicate.AwardEvent(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AwardEvent) predicate.AwardEvent {
	return predicate.AwardEvent(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AwardEvent) predicate.AwardEvent {
	return predicate.AwardEvent(sql.NotPredicates(p))
}
