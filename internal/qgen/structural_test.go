package qgen

import (
	"strings"
	"testing"

	"github.com/meera/nclexprep/internal/bank"
)

func validItem() *Item {
	return &Item{
		Stem: "A client with type 1 diabetes is found unresponsive with a blood glucose of 38 mg/dL. What should the nurse do first?",
		Options: []bank.Option{
			{Label: "A", Text: "Administer IV dextrose"},
			{Label: "B", Text: "Give orange juice by mouth"},
			{Label: "C", Text: "Recheck the glucose in 15 minutes"},
			{Label: "D", Text: "Administer regular insulin"},
		},
		CorrectLabel: "A",
		Rationale:    "An unresponsive client cannot swallow safely; IV dextrose is the immediate treatment for severe hypoglycemia.",
		Category:     "Endocrine",
		Difficulty:   bank.DifficultyMedium,
	}
}

func TestStructuralValidator(t *testing.T) {
	v := &StructuralValidator{}

	cases := []struct {
		name    string
		mutate  func(*Item)
		wantMsg string
	}{
		{"valid", func(it *Item) {}, ""},
		{"empty stem", func(it *Item) { it.Stem = "" }, "stem is empty"},
		{"stem too long", func(it *Item) { it.Stem = strings.Repeat("x", 1001) }, "exceeds 1000"},
		{"too few options", func(it *Item) { it.Options = it.Options[:3] }, "exactly 4"},
		{"empty option", func(it *Item) { it.Options[2].Text = "" }, "option text is empty"},
		{"duplicate option", func(it *Item) { it.Options[1].Text = it.Options[0].Text }, "duplicate option"},
		{"bad correct label", func(it *Item) { it.CorrectLabel = "E" }, "does not match any option"},
		{"empty rationale", func(it *Item) { it.Rationale = "" }, "rationale is empty"},
		{"bad difficulty", func(it *Item) { it.Difficulty = "extreme" }, "difficulty must be"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			it := validItem()
			tc.mutate(it)
			err := v.Validate(it, GenerateInput{})
			if tc.wantMsg == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Message, tc.wantMsg) {
				t.Errorf("message = %q, want substring %q", err.Message, tc.wantMsg)
			}
		})
	}
}

func TestDedupValidatorNormalizes(t *testing.T) {
	v := &DedupValidator{}
	it := validItem()

	input := GenerateInput{PriorStems: []string{
		"  A client with type 1 diabetes is found UNRESPONSIVE with a blood glucose of 38 mg/dL. What should the nurse do first?",
	}}
	if err := v.Validate(it, input); err == nil {
		t.Error("expected duplicate to be rejected despite case and spacing")
	}

	if err := v.Validate(it, GenerateInput{PriorStems: []string{"Different stem entirely."}}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestBuildDedupLimit(t *testing.T) {
	stems := []string{"one", "two", "three", "four"}
	got := buildDedup(stems, 2)
	if strings.Contains(got, "one") || !strings.Contains(got, "four") {
		t.Errorf("dedup list should keep the most recent entries: %q", got)
	}
	if buildDedup(nil, 5) != "None" {
		t.Error("empty prior stems should render as None")
	}
}
