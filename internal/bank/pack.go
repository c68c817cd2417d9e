package bank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/google/uuid"
	"golang.org/x/mod/semver"

	"github.com/meera/nclexprep/internal/store"
)

// PackFormatVersion is the newest question-pack format this build reads.
// Packs declare their own format_version; anything with a higher major (or
// any newer version) is rejected rather than half-imported.
const PackFormatVersion = "v1.1.0"

// Pack is a serialized bundle of questions for import.
type Pack struct {
	FormatVersion string     `json:"format_version"`
	Name          string     `json:"name"`
	Questions     []Question `json:"questions"`
}

// ImportResult summarizes a pack import.
type ImportResult struct {
	Imported int
	Skipped  []string // validation errors for rejected questions
}

// DecodePack parses and version-checks a question pack.
func DecodePack(r io.Reader) (*Pack, error) {
	var p Pack
	dec := json.NewDecoder(r)
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("parse pack: %w", err)
	}

	v := p.FormatVersion
	if v == "" {
		return nil, fmt.Errorf("pack has no format_version")
	}
	if !semver.IsValid(v) {
		return nil, fmt.Errorf("invalid format_version %q (want e.g. %q)", v, PackFormatVersion)
	}
	if semver.Compare(v, PackFormatVersion) > 0 {
		return nil, fmt.Errorf("pack format %s is newer than supported %s; update nclexprep", v, PackFormatVersion)
	}
	if semver.Major(v) != semver.Major(PackFormatVersion) {
		return nil, fmt.Errorf("pack format %s has unsupported major version (want %s)", v, semver.Major(PackFormatVersion))
	}

	return &p, nil
}

// Import validates each question in the pack and upserts the valid ones.
// Questions without an id are assigned one. Invalid questions are skipped,
// not fatal: a pack with one bad item still imports the rest.
func Import(ctx context.Context, repo store.QuestionRepo, p *Pack) (*ImportResult, error) {
	res := &ImportResult{}

	for i := range p.Questions {
		q := p.Questions[i]
		if q.ID == "" {
			q.ID = uuid.NewString()
		}
		if q.Difficulty == "" {
			q.Difficulty = DifficultyMedium
		}
		if q.Source == "" {
			q.Source = SourceImported
		}
		q.Active = true

		if err := Validate(&q); err != nil {
			res.Skipped = append(res.Skipped, err.Error())
			continue
		}

		if err := repo.Upsert(ctx, ToRecord(q)); err != nil {
			return res, fmt.Errorf("import question %s: %w", q.ID, err)
		}
		res.Imported++
	}

	return res, nil
}
