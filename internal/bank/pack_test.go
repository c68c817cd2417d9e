package bank

import (
	"context"
	"strings"
	"testing"

	"github.com/meera/nclexprep/internal/store"
)

// memQuestionRepo is an in-memory QuestionRepo for import tests.
type memQuestionRepo struct {
	rows map[string]store.QuestionRecord
}

func newMemQuestionRepo() *memQuestionRepo {
	return &memQuestionRepo{rows: make(map[string]store.QuestionRecord)}
}

func (m *memQuestionRepo) Upsert(_ context.Context, q store.QuestionRecord) error {
	m.rows[q.QID] = q
	return nil
}

func (m *memQuestionRepo) List(_ context.Context, activeOnly bool) ([]store.QuestionRecord, error) {
	var out []store.QuestionRecord
	for _, r := range m.rows {
		if activeOnly && !r.Active {
			continue
		}
		out = append(out, r)
	}
	return out, nil
}

func (m *memQuestionRepo) Get(_ context.Context, qid string) (*store.QuestionRecord, error) {
	if r, ok := m.rows[qid]; ok {
		return &r, nil
	}
	return nil, nil
}

func (m *memQuestionRepo) Count(_ context.Context) (int, error) {
	return len(m.rows), nil
}

const packJSON = `{
	"format_version": "v1.0.0",
	"name": "cardiac-basics",
	"questions": [
		{
			"stem": "A client on digoxin reports nausea and sees yellow halos. What should the nurse do first?",
			"options": [
				{"label": "A", "text": "Hold the dose and check the digoxin level"},
				{"label": "B", "text": "Give the dose with food"},
				{"label": "C", "text": "Encourage oral fluids"},
				{"label": "D", "text": "Document and continue"}
			],
			"correct_label": "A",
			"category": "Pharmacology",
			"exam_category": "Pharmacological and Parenteral Therapies",
			"difficulty": "medium"
		},
		{
			"stem": "Broken question with too few options",
			"options": [{"label": "A", "text": "Only one"}],
			"correct_label": "A",
			"category": "Safety"
		}
	]
}`

func TestDecodePack_VersionGate(t *testing.T) {
	tests := []struct {
		name    string
		version string
		wantErr string
	}{
		{"current", "v1.1.0", ""},
		{"older minor", "v1.0.0", ""},
		{"newer", "v1.2.0", "newer than supported"},
		{"next major", "v2.0.0", "newer than supported"},
		{"not semver", "1.0", "invalid format_version"},
		{"empty", "", "no format_version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body := `{"format_version": "` + tt.version + `", "questions": []}`
			if tt.version == "" {
				body = `{"questions": []}`
			}
			_, err := DecodePack(strings.NewReader(body))
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("DecodePack = %v, want nil", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("DecodePack err = %v, want %q", err, tt.wantErr)
			}
		})
	}
}

func TestImport_SkipsInvalidKeepsValid(t *testing.T) {
	p, err := DecodePack(strings.NewReader(packJSON))
	if err != nil {
		t.Fatal(err)
	}

	repo := newMemQuestionRepo()
	res, err := Import(context.Background(), repo, p)
	if err != nil {
		t.Fatal(err)
	}

	if res.Imported != 1 {
		t.Errorf("imported = %d, want 1", res.Imported)
	}
	if len(res.Skipped) != 1 {
		t.Fatalf("skipped = %v, want one entry", res.Skipped)
	}
	if !strings.Contains(res.Skipped[0], "options") {
		t.Errorf("skip reason %q should mention options", res.Skipped[0])
	}

	rows, _ := repo.List(context.Background(), true)
	if len(rows) != 1 {
		t.Fatalf("stored = %d, want 1", len(rows))
	}
	if rows[0].QID == "" {
		t.Error("imported question should have been assigned an id")
	}
	if rows[0].Source != string(SourceImported) {
		t.Errorf("source = %q, want imported", rows[0].Source)
	}
}
