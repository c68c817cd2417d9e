package bank

import "testing"

func TestSeedPackIsValid(t *testing.T) {
	p := SeedPack()

	if p.FormatVersion != PackFormatVersion {
		t.Errorf("format version = %q, want %q", p.FormatVersion, PackFormatVersion)
	}
	if len(p.Questions) == 0 {
		t.Fatal("seed pack has no questions")
	}

	seen := make(map[string]bool)
	for i := range p.Questions {
		q := p.Questions[i]
		if q.Difficulty == "" {
			q.Difficulty = DifficultyMedium
		}
		if err := Validate(&q); err != nil {
			t.Errorf("seed question %s: %v", q.ID, err)
		}
		if seen[q.ID] {
			t.Errorf("duplicate seed id %s", q.ID)
		}
		seen[q.ID] = true
	}
}

func TestSeedPackCoversMultipleCategories(t *testing.T) {
	cats := make(map[string]bool)
	for _, q := range SeedPack().Questions {
		cats[q.Category] = true
	}
	if len(cats) < 4 {
		t.Errorf("seed pack covers %d categories, want at least 4", len(cats))
	}
}
