// Package adaptive orders the question pool by where a user needs the most
// practice. It derives everything from answer history on demand; nothing here
// is persisted or maintained incrementally.
package adaptive

import (
	"sort"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/store"
)

// NeutralAccuracy is the accuracy assumed for a category with no history.
const NeutralAccuracy = 0.5

// CategoryStat is the per-category accuracy aggregate derived from answer
// history. One definition of "accuracy" for every consumer: the selector,
// the weakest-category picker, and the stats screens all go through here.
type CategoryStat struct {
	Category string
	Correct  int
	Total    int
}

// Accuracy returns the fraction of correct answers in [0, 1], or
// NeutralAccuracy when no attempts have been recorded.
func (s CategoryStat) Accuracy() float64 {
	if s.Total == 0 {
		return NeutralAccuracy
	}
	return float64(s.Correct) / float64(s.Total)
}

// Summarize aggregates answer history into per-category stats. Each event is
// attributed to the category of its question; events whose question is no
// longer in the pool fall back to the category recorded on the event itself.
// Results are sorted by category name.
func Summarize(history []store.AnswerEventRecord, questions []bank.Question) []CategoryStat {
	byQuestion := make(map[string]string, len(questions))
	for _, q := range questions {
		byQuestion[q.ID] = q.Category
	}

	agg := make(map[string]*CategoryStat)
	for _, ev := range history {
		cat, ok := byQuestion[ev.QuestionID]
		if !ok {
			cat = ev.Category
		}
		if cat == "" {
			continue
		}
		stat, ok := agg[cat]
		if !ok {
			stat = &CategoryStat{Category: cat}
			agg[cat] = stat
		}
		stat.Total++
		if ev.Correct {
			stat.Correct++
		}
	}

	out := make([]CategoryStat, 0, len(agg))
	for _, stat := range agg {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out
}

// accuracyByCategory indexes Summarize output for comparison-time lookups.
func accuracyByCategory(stats []CategoryStat) map[string]float64 {
	m := make(map[string]float64, len(stats))
	for _, s := range stats {
		m[s.Category] = s.Accuracy()
	}
	return m
}
