package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// OptionData is one labeled answer choice of a question row.
type OptionData struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// QuestionRecord is the storage shape of a question bank item.
type QuestionRecord struct {
	QID          string
	Stem         string
	Options      []OptionData
	CorrectLabel string
	Rationale    string
	Category     string
	ExamCategory string
	Difficulty   string
	Active       bool
	Source       string
}

// AnswerEventData captures a single answered question for appending.
type AnswerEventData struct {
	UserID        string
	QuestionID    string
	SessionID     string
	SelectedLabel string
	Correct       bool
	Confidence    string // "", "low", "medium", "high"
	Category      string
	TimeMs        int
}

// AnswerEventRecord is a stored answer event read back from the log.
type AnswerEventRecord struct {
	UserID        string
	QuestionID    string
	SessionID     string
	SelectedLabel string
	Correct       bool
	Confidence    string
	Category      string
	TimeMs        int
	Sequence      int64
	Timestamp     time.Time
}

// SessionEventData captures a session lifecycle event for appending.
type SessionEventData struct {
	UserID          string
	SessionID       string
	Action          string // "start" or "end"
	Mode            string // "practice", "focused", or "review"
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// SessionSummaryRecord is a completed session read back for display.
type SessionSummaryRecord struct {
	SessionID       string
	Mode            string
	Timestamp       time.Time
	QuestionsServed int
	CorrectAnswers  int
	DurationSecs    int
}

// AwardEventData captures a gamification award for appending.
type AwardEventData struct {
	UserID        string
	AwardType     string // "achievement" or "streak"
	AchievementID string
	Tier          string
	Points        int
	SessionID     string
	Reason        string
}

// AwardEventRecord is a stored award read back from the log.
type AwardEventRecord struct {
	UserID        string
	AwardType     string
	AchievementID string
	Tier          string
	Points        int
	SessionID     string
	Reason        string
	Sequence      int64
	Timestamp     time.Time
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEventRecord is a stored LLM request event read back for inspection.
type LLMEventRecord struct {
	ID           int
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
	Timestamp    time.Time
}

// LLMUsageStats aggregates LLM usage for one purpose label.
type LLMUsageStats struct {
	Purpose      string
	Calls        int
	InputTokens  int
	OutputTokens int
	AvgLatencyMs int64
}

// LLMModelUsage aggregates LLM usage for one model.
type LLMModelUsage struct {
	Model        string
	Calls        int
	InputTokens  int
	OutputTokens int
}

// ReviewEntryRecord is one spaced-repetition queue row.
type ReviewEntryRecord struct {
	UserID       string
	QuestionID   string
	Reason       string
	DueAt        time.Time
	IntervalDays int
	EaseFactor   float64
	ReviewCount  int
	CreatedAt    time.Time
}

// DueItem is a due review entry joined with its question.
type DueItem struct {
	Entry    ReviewEntryRecord
	Question *QuestionRecord
}

// ReviewUpdate holds the schedule fields rewritten after a re-attempt.
// All four are persisted together in a single row write.
type ReviewUpdate struct {
	DueAt        time.Time
	IntervalDays int
	EaseFactor   float64
	ReviewCount  int
}

// ProgressSnapshotData is the persisted form of UserProgressState.
type ProgressSnapshotData struct {
	UserID        string `json:"user_id"`
	Points        int    `json:"points"`
	AnswerStreak  int    `json:"answer_streak"`
	BestStreak    int    `json:"best_streak"`
	DailyStreak   int    `json:"daily_streak"`
	LastStudyDay  string `json:"last_study_day"` // YYYY-MM-DD, empty if never
	TotalAnswered int    `json:"total_answered"`
	TotalCorrect  int    `json:"total_correct"`
}

// SnapshotData captures the full user state at a point in time.
type SnapshotData struct {
	Version  int                   `json:"version"`
	Progress *ProgressSnapshotData `json:"progress,omitempty"`
}

// Snapshot represents a point-in-time capture of user state.
type Snapshot struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	Data      SnapshotData
}

// SnapshotRepo manages user state snapshots.
type SnapshotRepo interface {
	// Save stores a new snapshot.
	Save(ctx context.Context, snap *Snapshot) error

	// Latest returns the most recent snapshot, or nil if none exist.
	Latest(ctx context.Context) (*Snapshot, error)

	// Prune deletes all but the N most recent snapshots.
	Prune(ctx context.Context, keep int) error
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendAnswerEvent records an answered question. Append-only.
	AppendAnswerEvent(ctx context.Context, data AnswerEventData) error

	// QueryAnswerEvents returns a user's answer history, oldest first.
	QueryAnswerEvents(ctx context.Context, userID string, opts QueryOpts) ([]AnswerEventRecord, error)

	// CountAnswersSince counts a user's answers at or after since.
	CountAnswersSince(ctx context.Context, userID string, since time.Time) (int, error)

	// AppendSessionEvent records a session start/end.
	AppendSessionEvent(ctx context.Context, data SessionEventData) error

	// QuerySessionSummaries returns completed sessions, newest first.
	QuerySessionSummaries(ctx context.Context, userID string, opts QueryOpts) ([]SessionSummaryRecord, error)

	// AppendAwardEvent records a gamification award.
	AppendAwardEvent(ctx context.Context, data AwardEventData) error

	// QueryAwardEvents returns a user's awards, newest first.
	QueryAwardEvents(ctx context.Context, userID string, opts QueryOpts) ([]AwardEventRecord, error)

	// EarnedAchievements returns the set of achievement IDs the user holds.
	EarnedAchievements(ctx context.Context, userID string) (map[string]bool, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMEventRecord, error)

	// GetLLMEvent returns one LLM event by row ID, or nil if missing.
	GetLLMEvent(ctx context.Context, id int) (*LLMEventRecord, error)

	// LLMUsageByPurpose aggregates token usage per purpose label.
	LLMUsageByPurpose(ctx context.Context) ([]LLMUsageStats, error)

	// LLMUsageByModel aggregates token usage per model.
	LLMUsageByModel(ctx context.Context) ([]LLMModelUsage, error)
}

// QuestionRepo provides access to the question bank.
type QuestionRepo interface {
	// Upsert inserts a question or replaces the content of an existing qid.
	Upsert(ctx context.Context, q QuestionRecord) error

	// List returns questions, optionally restricted to active ones.
	List(ctx context.Context, activeOnly bool) ([]QuestionRecord, error)

	// Get returns one question by qid, or nil if missing.
	Get(ctx context.Context, qid string) (*QuestionRecord, error)

	// Count returns the number of questions in the bank.
	Count(ctx context.Context) (int, error)
}

// ReviewRepo provides access to the spaced-repetition queue.
type ReviewRepo interface {
	// Admit inserts a queue entry unless one already exists for the
	// (user, question) pair. Returns true if a row was created.
	Admit(ctx context.Context, entry ReviewEntryRecord) (bool, error)

	// Get returns the entry for the pair, or nil if not queued.
	Get(ctx context.Context, userID, questionID string) (*ReviewEntryRecord, error)

	// ListDue returns entries due at or before the given time, oldest-due
	// first, each joined with its question.
	ListDue(ctx context.Context, userID string, before time.Time) ([]DueItem, error)

	// CountDue returns the number of due entries.
	CountDue(ctx context.Context, userID string, before time.Time) (int, error)

	// Update rewrites the schedule fields of an existing entry.
	Update(ctx context.Context, userID, questionID string, upd ReviewUpdate) error
}
