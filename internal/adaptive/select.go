package adaptive

import (
	"sort"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/store"
)

// Focused-practice qualification defaults. A category must have at least
// MinSampleSize attempts and accuracy below MaxAccuracyThreshold percent
// before it counts as weak.
const (
	MinSampleSize        = 3
	MaxAccuracyThreshold = 70.0
)

// RankQuestions orders the full pool by practice priority: unanswered
// questions first, then ascending accuracy of the question's category.
// Categories with no history sit at the neutral midpoint. The result is a
// permutation of the input; the sort is stable so equal-priority questions
// keep their relative order.
func RankQuestions(questions []bank.Question, history []store.AnswerEventRecord) []bank.Question {
	answered := make(map[string]bool, len(history))
	for _, ev := range history {
		answered[ev.QuestionID] = true
	}
	accuracy := accuracyByCategory(Summarize(history, questions))

	score := func(q bank.Question) float64 {
		if acc, ok := accuracy[q.Category]; ok {
			return acc
		}
		return NeutralAccuracy
	}

	ranked := make([]bank.Question, len(questions))
	copy(ranked, questions)
	sort.SliceStable(ranked, func(i, j int) bool {
		ai, aj := answered[ranked[i].ID], answered[ranked[j].ID]
		if ai != aj {
			return !ai
		}
		return score(ranked[i]) < score(ranked[j])
	})
	return ranked
}

// PickWeakestCategory returns the category where the user most needs focused
// practice: the lowest-accuracy category with at least minSample attempts and
// accuracy strictly below maxAccuracyPct percent. The false return means no
// category qualifies, which is a normal outcome ("nothing weak enough with
// enough data"), not an error.
func PickWeakestCategory(questions []bank.Question, history []store.AnswerEventRecord, minSample int, maxAccuracyPct float64) (string, bool) {
	stats := Summarize(history, questions)

	var (
		weakest string
		lowest  float64
		found   bool
	)
	for _, s := range stats {
		if s.Total < minSample {
			continue
		}
		pct := s.Accuracy() * 100
		if pct >= maxAccuracyPct {
			continue
		}
		if !found || pct < lowest {
			weakest = s.Category
			lowest = pct
			found = true
		}
	}
	return weakest, found
}

// WeakestCategory applies the default qualification thresholds.
func WeakestCategory(questions []bank.Question, history []store.AnswerEventRecord) (string, bool) {
	return PickWeakestCategory(questions, history, MinSampleSize, MaxAccuracyThreshold)
}
