// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/meera/nclexprep/ent/answerevent"
	"github.com/meera/nclexprep/ent/awardevent"
	"github.com/meera/nclexprep/ent/llmrequestevent"
	"github.com/meera/nclexprep/ent/question"
	"github.com/meera/nclexprep/ent/reviewentry"
	"github.com/meera/nclexprep/ent/schema"
	"github.com/meera/nclexprep/ent/sessionevent"
	"github.com/meera/nclexprep/ent/snapshot"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	answereventMixin := schema.AnswerEvent{}.Mixin()
	answereventMixinFields0 := answereventMixin[0].Fields()
	_ = answereventMixinFields0
	answereventFields := schema.AnswerEvent{}.Fields()
	_ = answereventFields
	// answereventDescTimestamp is the schema descriptor for timestamp field.
	answereventDescTimestamp := answereventMixinFields0[1].Descriptor()
	// answerevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	answerevent.DefaultTimestamp = answereventDescTimestamp.Default.(func() time.Time)
	// answereventDescUserID is the schema descriptor for user_id field.
	answereventDescUserID := answereventFields[0].Descriptor()
	// answerevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	answerevent.UserIDValidator = answereventDescUserID.Validators[0].(func(string) error)
	// answereventDescQuestionID is the schema descriptor for question_id field.
	answereventDescQuestionID := answereventFields[1].Descriptor()
	// answerevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	answerevent.QuestionIDValidator = answereventDescQuestionID.Validators[0].(func(string) error)
	// answereventDescSessionID is the schema descriptor for session_id field.
	answereventDescSessionID := answereventFields[2].Descriptor()
	// answerevent.DefaultSessionID holds the default value on creation for the session_id field.
	answerevent.DefaultSessionID = answereventDescSessionID.Default.(string)
	// answereventDescSelectedLabel is the schema descriptor for selected_label field.
	answereventDescSelectedLabel := answereventFields[3].Descriptor()
	// answerevent.SelectedLabelValidator is a validator for the "selected_label" field. It is called by the builders before save.
	answerevent.SelectedLabelValidator = answereventDescSelectedLabel.Validators[0].(func(string) error)
	// answereventDescConfidence is the schema descriptor for confidence field.
	answereventDescConfidence := answereventFields[5].Descriptor()
	// answerevent.DefaultConfidence holds the default value on creation for the confidence field.
	answerevent.DefaultConfidence = answereventDescConfidence.Default.(string)
	// answereventDescCategory is the schema descriptor for category field.
	answereventDescCategory := answereventFields[6].Descriptor()
	// answerevent.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	answerevent.CategoryValidator = answereventDescCategory.Validators[0].(func(string) error)
	// answereventDescTimeMs is the schema descriptor for time_ms field.
	answereventDescTimeMs := answereventFields[7].Descriptor()
	// answerevent.DefaultTimeMs holds the default value on creation for the time_ms field.
	answerevent.DefaultTimeMs = answereventDescTimeMs.Default.(int)
	awardeventMixin := schema.AwardEvent{}.Mixin()
	awardeventMixinFields0 := awardeventMixin[0].Fields()
	_ = awardeventMixinFields0
	awardeventFields := schema.AwardEvent{}.Fields()
	_ = awardeventFields
	// awardeventDescTimestamp is the schema descriptor for timestamp field.
	awardeventDescTimestamp := awardeventMixinFields0[1].Descriptor()
	// awardevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	awardevent.DefaultTimestamp = awardeventDescTimestamp.Default.(func() time.Time)
	// awardeventDescUserID is the schema descriptor for user_id field.
	awardeventDescUserID := awardeventFields[0].Descriptor()
	// awardevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	awardevent.UserIDValidator = awardeventDescUserID.Validators[0].(func(string) error)
	// awardeventDescAwardType is the schema descriptor for award_type field.
	awardeventDescAwardType := awardeventFields[1].Descriptor()
	// awardevent.AwardTypeValidator is a validator for the "award_type" field. It is called by the builders before save.
	awardevent.AwardTypeValidator = awardeventDescAwardType.Validators[0].(func(string) error)
	// awardeventDescAchievementID is the schema descriptor for achievement_id field.
	awardeventDescAchievementID := awardeventFields[2].Descriptor()
	// awardevent.DefaultAchievementID holds the default value on creation for the achievement_id field.
	awardevent.DefaultAchievementID = awardeventDescAchievementID.Default.(string)
	// awardeventDescTier is the schema descriptor for tier field.
	awardeventDescTier := awardeventFields[3].Descriptor()
	// awardevent.TierValidator is a validator for the "tier" field. It is called by the builders before save.
	awardevent.TierValidator = awardeventDescTier.Validators[0].(func(string) error)
	// awardeventDescPoints is the schema descriptor for points field.
	awardeventDescPoints := awardeventFields[4].Descriptor()
	// awardevent.DefaultPoints holds the default value on creation for the points field.
	awardevent.DefaultPoints = awardeventDescPoints.Default.(int)
	// awardeventDescSessionID is the schema descriptor for session_id field.
	awardeventDescSessionID := awardeventFields[5].Descriptor()
	// awardevent.DefaultSessionID holds the default value on creation for the session_id field.
	awardevent.DefaultSessionID = awardeventDescSessionID.Default.(string)
	// awardeventDescReason is the schema descriptor for reason field.
	awardeventDescReason := awardeventFields[6].Descriptor()
	// awardevent.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	awardevent.ReasonValidator = awardeventDescReason.Validators[0].(func(string) error)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[3].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[4].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescLatencyMs is the schema descriptor for latency_ms field.
	llmrequesteventDescLatencyMs := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultLatencyMs holds the default value on creation for the latency_ms field.
	llmrequestevent.DefaultLatencyMs = llmrequesteventDescLatencyMs.Default.(int64)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQid is the schema descriptor for qid field.
	questionDescQid := questionFields[0].Descriptor()
	// question.QidValidator is a validator for the "qid" field. It is called by the builders before save.
	question.QidValidator = questionDescQid.Validators[0].(func(string) error)
	// questionDescStem is the schema descriptor for stem field.
	questionDescStem := questionFields[1].Descriptor()
	// question.StemValidator is a validator for the "stem" field. It is called by the builders before save.
	question.StemValidator = questionDescStem.Validators[0].(func(string) error)
	// questionDescCorrectLabel is the schema descriptor for correct_label field.
	questionDescCorrectLabel := questionFields[3].Descriptor()
	// question.CorrectLabelValidator is a validator for the "correct_label" field. It is called by the builders before save.
	question.CorrectLabelValidator = questionDescCorrectLabel.Validators[0].(func(string) error)
	// questionDescRationale is the schema descriptor for rationale field.
	questionDescRationale := questionFields[4].Descriptor()
	// question.DefaultRationale holds the default value on creation for the rationale field.
	question.DefaultRationale = questionDescRationale.Default.(string)
	// questionDescCategory is the schema descriptor for category field.
	questionDescCategory := questionFields[5].Descriptor()
	// question.CategoryValidator is a validator for the "category" field. It is called by the builders before save.
	question.CategoryValidator = questionDescCategory.Validators[0].(func(string) error)
	// questionDescExamCategory is the schema descriptor for exam_category field.
	questionDescExamCategory := questionFields[6].Descriptor()
	// question.DefaultExamCategory holds the default value on creation for the exam_category field.
	question.DefaultExamCategory = questionDescExamCategory.Default.(string)
	// questionDescDifficulty is the schema descriptor for difficulty field.
	questionDescDifficulty := questionFields[7].Descriptor()
	// question.DefaultDifficulty holds the default value on creation for the difficulty field.
	question.DefaultDifficulty = questionDescDifficulty.Default.(string)
	// questionDescActive is the schema descriptor for active field.
	questionDescActive := questionFields[8].Descriptor()
	// question.DefaultActive holds the default value on creation for the active field.
	question.DefaultActive = questionDescActive.Default.(bool)
	// questionDescSource is the schema descriptor for source field.
	questionDescSource := questionFields[9].Descriptor()
	// question.DefaultSource holds the default value on creation for the source field.
	question.DefaultSource = questionDescSource.Default.(string)
	reviewentryFields := schema.ReviewEntry{}.Fields()
	_ = reviewentryFields
	// reviewentryDescUserID is the schema descriptor for user_id field.
	reviewentryDescUserID := reviewentryFields[0].Descriptor()
	// reviewentry.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reviewentry.UserIDValidator = reviewentryDescUserID.Validators[0].(func(string) error)
	// reviewentryDescQuestionID is the schema descriptor for question_id field.
	reviewentryDescQuestionID := reviewentryFields[1].Descriptor()
	// reviewentry.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	reviewentry.QuestionIDValidator = reviewentryDescQuestionID.Validators[0].(func(string) error)
	// reviewentryDescReason is the schema descriptor for reason field.
	reviewentryDescReason := reviewentryFields[2].Descriptor()
	// reviewentry.ReasonValidator is a validator for the "reason" field. It is called by the builders before save.
	reviewentry.ReasonValidator = reviewentryDescReason.Validators[0].(func(string) error)
	// reviewentryDescIntervalDays is the schema descriptor for interval_days field.
	reviewentryDescIntervalDays := reviewentryFields[4].Descriptor()
	// reviewentry.DefaultIntervalDays holds the default value on creation for the interval_days field.
	reviewentry.DefaultIntervalDays = reviewentryDescIntervalDays.Default.(int)
	// reviewentryDescEaseFactor is the schema descriptor for ease_factor field.
	reviewentryDescEaseFactor := reviewentryFields[5].Descriptor()
	// reviewentry.DefaultEaseFactor holds the default value on creation for the ease_factor field.
	reviewentry.DefaultEaseFactor = reviewentryDescEaseFactor.Default.(float64)
	// reviewentryDescReviewCount is the schema descriptor for review_count field.
	reviewentryDescReviewCount := reviewentryFields[6].Descriptor()
	// reviewentry.DefaultReviewCount holds the default value on creation for the review_count field.
	reviewentry.DefaultReviewCount = reviewentryDescReviewCount.Default.(int)
	// reviewentryDescCreatedAt is the schema descriptor for created_at field.
	reviewentryDescCreatedAt := reviewentryFields[7].Descriptor()
	// reviewentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	reviewentry.DefaultCreatedAt = reviewentryDescCreatedAt.Default.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescUserID is the schema descriptor for user_id field.
	sessioneventDescUserID := sessioneventFields[0].Descriptor()
	// sessionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	sessionevent.UserIDValidator = sessioneventDescUserID.Validators[0].(func(string) error)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[1].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescAction is the schema descriptor for action field.
	sessioneventDescAction := sessioneventFields[2].Descriptor()
	// sessionevent.ActionValidator is a validator for the "action" field. It is called by the builders before save.
	sessionevent.ActionValidator = sessioneventDescAction.Validators[0].(func(string) error)
	// sessioneventDescMode is the schema descriptor for mode field.
	sessioneventDescMode := sessioneventFields[3].Descriptor()
	// sessionevent.DefaultMode holds the default value on creation for the mode field.
	sessionevent.DefaultMode = sessioneventDescMode.Default.(string)
	// sessioneventDescQuestionsServed is the schema descriptor for questions_served field.
	sessioneventDescQuestionsServed := sessioneventFields[4].Descriptor()
	// sessionevent.DefaultQuestionsServed holds the default value on creation for the questions_served field.
	sessionevent.DefaultQuestionsServed = sessioneventDescQuestionsServed.Default.(int)
	// sessioneventDescCorrectAnswers is the schema descriptor for correct_answers field.
	sessioneventDescCorrectAnswers := sessioneventFields[5].Descriptor()
	// sessionevent.DefaultCorrectAnswers holds the default value on creation for the correct_answers field.
	sessionevent.DefaultCorrectAnswers = sessioneventDescCorrectAnswers.Default.(int)
	// sessioneventDescDurationSecs is the schema descriptor for duration_secs field.
	sessioneventDescDurationSecs := sessioneventFields[6].Descriptor()
	// sessionevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	sessionevent.DefaultDurationSecs = sessioneventDescDurationSecs.Default.(int)
	snapshotFields := schema.Snapshot{}.Fields()
	_ = snapshotFields
	// snapshotDescTimestamp is the schema descriptor for timestamp field.
	snapshotDescTimestamp := snapshotFields[1].Descriptor()
	// snapshot.DefaultTimestamp holds the default value on creation for the timestamp field.
	snapshot.DefaultTimestamp = snapshotDescTimestamp.Default.(func() time.Time)
}
