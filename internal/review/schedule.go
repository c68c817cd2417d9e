package review

import (
	"math"
	"time"
)

// Confidence is the user's self-reported confidence on an answer.
type Confidence string

const (
	ConfidenceNone   Confidence = ""
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Reason records why a question entered the review queue.
type Reason string

const (
	ReasonIncorrect        Reason = "incorrect"
	ReasonLowConfidence    Reason = "low_confidence"
	ReasonSpacedRepetition Reason = "spaced_repetition"
	ReasonBookmarked       Reason = "bookmarked"
)

// Scheduling constants. The 1-day and 6-day warm-up steps are fixed points
// of the algorithm, not derived values: multiplicative growth only begins at
// the third successful review.
const (
	InitialIntervalDays = 1
	SecondIntervalDays  = 6

	InitialEase = 2.5
	MinEase     = 1.3
	MaxEase     = 3.0

	EaseReward  = 0.1
	EasePenalty = 0.2
)

// Schedule is the spaced-repetition state of one queue entry.
type Schedule struct {
	IntervalDays int
	EaseFactor   float64
	ReviewCount  int
	DueAt        time.Time
}

// InitialSchedule is the state of a freshly admitted entry: due immediately,
// one-day interval, default ease, no completed reviews.
func InitialSchedule(now time.Time) Schedule {
	return Schedule{
		IntervalDays: InitialIntervalDays,
		EaseFactor:   InitialEase,
		ReviewCount:  0,
		DueAt:        now,
	}
}

// NextSchedule computes the schedule after a re-attempt.
//
// A correct answer with confidence above "low" advances the interval through
// the warm-up (1 day, then 6 days) and afterwards multiplies by the ease
// factor. High confidence additionally rewards the ease. An incorrect answer,
// or any answer flagged low-confidence, resets the interval to one day and
// penalizes the ease. The ease never leaves [MinEase, MaxEase] and the
// interval is always at least one day, so the computation is total.
func NextSchedule(prev Schedule, correct bool, conf Confidence, now time.Time) Schedule {
	ease := prev.EaseFactor
	if ease == 0 {
		ease = InitialEase
	}

	var interval int
	if correct && conf != ConfidenceLow {
		switch prev.ReviewCount {
		case 0:
			interval = InitialIntervalDays
		case 1:
			interval = SecondIntervalDays
		default:
			interval = int(math.Round(float64(prev.IntervalDays) * ease))
		}
		if conf == ConfidenceHigh {
			ease += EaseReward
		}
	} else {
		interval = InitialIntervalDays
		ease -= EasePenalty
	}

	if interval < 1 {
		interval = 1
	}
	ease = clampEase(ease)

	return Schedule{
		IntervalDays: interval,
		EaseFactor:   ease,
		ReviewCount:  prev.ReviewCount + 1,
		DueAt:        now.AddDate(0, 0, interval),
	}
}

func clampEase(ease float64) float64 {
	if ease < MinEase {
		return MinEase
	}
	if ease > MaxEase {
		return MaxEase
	}
	return ease
}

// AdmissionReason maps an answer outcome to a queue-admission reason.
// Only incorrect or low-confidence answers admit; ok is false otherwise.
func AdmissionReason(correct bool, conf Confidence) (Reason, bool) {
	if !correct {
		return ReasonIncorrect, true
	}
	if conf == ConfidenceLow {
		return ReasonLowConfidence, true
	}
	return "", false
}
