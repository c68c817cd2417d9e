package store

import (
	"context"
	"fmt"

	"github.com/meera/nclexprep/ent"
	"github.com/meera/nclexprep/ent/question"
	entschema "github.com/meera/nclexprep/ent/schema"
)

// questionRepo implements QuestionRepo using the ent client.
type questionRepo struct {
	client *ent.Client
}

func (r *questionRepo) Upsert(ctx context.Context, q QuestionRecord) error {
	existing, err := r.client.Question.Query().
		Where(question.Qid(q.QID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("query question %s: %w", q.QID, err)
	}

	opts := make([]entschema.QuestionOption, len(q.Options))
	for i, o := range q.Options {
		opts[i] = entschema.QuestionOption{Label: o.Label, Text: o.Text}
	}

	if existing == nil {
		_, err = r.client.Question.Create().
			SetQid(q.QID).
			SetStem(q.Stem).
			SetOptions(opts).
			SetCorrectLabel(q.CorrectLabel).
			SetRationale(q.Rationale).
			SetCategory(q.Category).
			SetExamCategory(q.ExamCategory).
			SetDifficulty(q.Difficulty).
			SetActive(q.Active).
			SetSource(q.Source).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create question %s: %w", q.QID, err)
		}
		return nil
	}

	_, err = existing.Update().
		SetStem(q.Stem).
		SetOptions(opts).
		SetCorrectLabel(q.CorrectLabel).
		SetRationale(q.Rationale).
		SetCategory(q.Category).
		SetExamCategory(q.ExamCategory).
		SetDifficulty(q.Difficulty).
		SetActive(q.Active).
		SetSource(q.Source).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update question %s: %w", q.QID, err)
	}
	return nil
}

func (r *questionRepo) List(ctx context.Context, activeOnly bool) ([]QuestionRecord, error) {
	query := r.client.Question.Query().
		Order(ent.Asc(question.FieldID))
	if activeOnly {
		query = query.Where(question.Active(true))
	}

	rows, err := query.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	records := make([]QuestionRecord, len(rows))
	for i, q := range rows {
		records[i] = questionToRecord(q)
	}
	return records, nil
}

func (r *questionRepo) Get(ctx context.Context, qid string) (*QuestionRecord, error) {
	q, err := r.client.Question.Query().
		Where(question.Qid(qid)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get question %s: %w", qid, err)
	}
	rec := questionToRecord(q)
	return &rec, nil
}

func (r *questionRepo) Count(ctx context.Context) (int, error) {
	n, err := r.client.Question.Query().Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count questions: %w", err)
	}
	return n, nil
}

func questionToRecord(q *ent.Question) QuestionRecord {
	opts := make([]OptionData, len(q.Options))
	for i, o := range q.Options {
		opts[i] = OptionData{Label: o.Label, Text: o.Text}
	}
	return QuestionRecord{
		QID:          q.Qid,
		Stem:         q.Stem,
		Options:      opts,
		CorrectLabel: q.CorrectLabel,
		Rationale:    q.Rationale,
		Category:     q.Category,
		ExamCategory: q.ExamCategory,
		Difficulty:   q.Difficulty,
		Active:       q.Active,
		Source:       q.Source,
	}
}
