package session

import (
	"context"
	"time"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/store"
)

// fakeStore implements the store interfaces session depends on, in memory.
type fakeStore struct {
	questions []store.QuestionRecord
	answers   []store.AnswerEventRecord
	sessions  []store.SessionEventData
	awards    []store.AwardEventData
	snapshots []*store.Snapshot
	entries   map[string]*store.ReviewEntryRecord
	seq       int64
}

func newFakeStore() *fakeStore {
	return &fakeStore{entries: make(map[string]*store.ReviewEntryRecord)}
}

func (f *fakeStore) addQuestion(q bank.Question) {
	f.questions = append(f.questions, bank.ToRecord(q))
}

// QuestionRepo

func (f *fakeStore) Upsert(_ context.Context, q store.QuestionRecord) error {
	f.questions = append(f.questions, q)
	return nil
}

func (f *fakeStore) List(_ context.Context, activeOnly bool) ([]store.QuestionRecord, error) {
	var out []store.QuestionRecord
	for _, q := range f.questions {
		if activeOnly && !q.Active {
			continue
		}
		out = append(out, q)
	}
	return out, nil
}

func (f *fakeStore) Get(_ context.Context, qid string) (*store.QuestionRecord, error) {
	for i := range f.questions {
		if f.questions[i].QID == qid {
			return &f.questions[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) Count(_ context.Context) (int, error) {
	return len(f.questions), nil
}

// EventRepo

func (f *fakeStore) AppendAnswerEvent(_ context.Context, data store.AnswerEventData) error {
	f.seq++
	f.answers = append(f.answers, store.AnswerEventRecord{
		UserID:        data.UserID,
		QuestionID:    data.QuestionID,
		SessionID:     data.SessionID,
		SelectedLabel: data.SelectedLabel,
		Correct:       data.Correct,
		Confidence:    data.Confidence,
		Category:      data.Category,
		TimeMs:        data.TimeMs,
		Sequence:      f.seq,
		Timestamp:     time.Now(),
	})
	return nil
}

func (f *fakeStore) QueryAnswerEvents(_ context.Context, userID string, _ store.QueryOpts) ([]store.AnswerEventRecord, error) {
	var out []store.AnswerEventRecord
	for _, a := range f.answers {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeStore) CountAnswersSince(_ context.Context, userID string, since time.Time) (int, error) {
	n := 0
	for _, a := range f.answers {
		if a.UserID == userID && !a.Timestamp.Before(since) {
			n++
		}
	}
	return n, nil
}

func (f *fakeStore) AppendSessionEvent(_ context.Context, data store.SessionEventData) error {
	f.sessions = append(f.sessions, data)
	return nil
}

func (f *fakeStore) QuerySessionSummaries(_ context.Context, _ string, _ store.QueryOpts) ([]store.SessionSummaryRecord, error) {
	var out []store.SessionSummaryRecord
	for _, s := range f.sessions {
		if s.Action != "end" {
			continue
		}
		out = append(out, store.SessionSummaryRecord{
			SessionID:       s.SessionID,
			Mode:            s.Mode,
			QuestionsServed: s.QuestionsServed,
			CorrectAnswers:  s.CorrectAnswers,
			DurationSecs:    s.DurationSecs,
		})
	}
	return out, nil
}

func (f *fakeStore) AppendAwardEvent(_ context.Context, data store.AwardEventData) error {
	f.awards = append(f.awards, data)
	return nil
}

func (f *fakeStore) QueryAwardEvents(_ context.Context, userID string, _ store.QueryOpts) ([]store.AwardEventRecord, error) {
	var out []store.AwardEventRecord
	for _, a := range f.awards {
		if a.UserID == userID {
			out = append(out, store.AwardEventRecord{
				UserID:        a.UserID,
				AwardType:     a.AwardType,
				AchievementID: a.AchievementID,
				Tier:          a.Tier,
				Points:        a.Points,
			})
		}
	}
	return out, nil
}

func (f *fakeStore) EarnedAchievements(_ context.Context, userID string) (map[string]bool, error) {
	earned := make(map[string]bool)
	for _, a := range f.awards {
		if a.UserID == userID && a.AchievementID != "" {
			earned[a.AchievementID] = true
		}
	}
	return earned, nil
}

func (f *fakeStore) AppendLLMRequest(_ context.Context, _ store.LLMRequestEventData) error {
	return nil
}

func (f *fakeStore) QueryLLMEvents(_ context.Context, _ store.QueryOpts) ([]store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeStore) GetLLMEvent(_ context.Context, _ int) (*store.LLMEventRecord, error) {
	return nil, nil
}

func (f *fakeStore) LLMUsageByPurpose(_ context.Context) ([]store.LLMUsageStats, error) {
	return nil, nil
}

func (f *fakeStore) LLMUsageByModel(_ context.Context) ([]store.LLMModelUsage, error) {
	return nil, nil
}

// SnapshotRepo

func (f *fakeStore) Save(_ context.Context, snap *store.Snapshot) error {
	f.snapshots = append(f.snapshots, snap)
	return nil
}

func (f *fakeStore) Latest(_ context.Context) (*store.Snapshot, error) {
	if len(f.snapshots) == 0 {
		return nil, nil
	}
	return f.snapshots[len(f.snapshots)-1], nil
}

func (f *fakeStore) Prune(_ context.Context, _ int) error {
	return nil
}

// ReviewRepo

func reviewKey(userID, questionID string) string {
	return userID + "/" + questionID
}

func (f *fakeStore) Admit(_ context.Context, entry store.ReviewEntryRecord) (bool, error) {
	k := reviewKey(entry.UserID, entry.QuestionID)
	if _, ok := f.entries[k]; ok {
		return false, nil
	}
	e := entry
	f.entries[k] = &e
	return true, nil
}

func (f *fakeStore) GetEntry(_ context.Context, userID, questionID string) (*store.ReviewEntryRecord, error) {
	e, ok := f.entries[reviewKey(userID, questionID)]
	if !ok {
		return nil, nil
	}
	cp := *e
	return &cp, nil
}

func (f *fakeStore) ListDue(_ context.Context, userID string, before time.Time) ([]store.DueItem, error) {
	var out []store.DueItem
	for _, e := range f.entries {
		if e.UserID != userID || e.DueAt.After(before) {
			continue
		}
		item := store.DueItem{Entry: *e}
		for i := range f.questions {
			if f.questions[i].QID == e.QuestionID {
				item.Question = &f.questions[i]
				break
			}
		}
		out = append(out, item)
	}
	return out, nil
}

func (f *fakeStore) CountDue(ctx context.Context, userID string, before time.Time) (int, error) {
	items, _ := f.ListDue(ctx, userID, before)
	return len(items), nil
}

func (f *fakeStore) Update(_ context.Context, userID, questionID string, upd store.ReviewUpdate) error {
	e, ok := f.entries[reviewKey(userID, questionID)]
	if !ok {
		return nil
	}
	e.DueAt = upd.DueAt
	e.IntervalDays = upd.IntervalDays
	e.EaseFactor = upd.EaseFactor
	e.ReviewCount = upd.ReviewCount
	return nil
}

// reviewRepoView adapts fakeStore to store.ReviewRepo, which names its
// lookup method Get like QuestionRepo does.
type reviewRepoView struct{ *fakeStore }

func (v reviewRepoView) Get(ctx context.Context, userID, questionID string) (*store.ReviewEntryRecord, error) {
	return v.GetEntry(ctx, userID, questionID)
}
