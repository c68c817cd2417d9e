package review

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func TestInitialSchedule(t *testing.T) {
	s := InitialSchedule(testNow)
	if s.IntervalDays != InitialIntervalDays {
		t.Errorf("interval = %d, want %d", s.IntervalDays, InitialIntervalDays)
	}
	if s.EaseFactor != InitialEase {
		t.Errorf("ease = %v, want %v", s.EaseFactor, InitialEase)
	}
	if s.ReviewCount != 0 {
		t.Errorf("review count = %d, want 0", s.ReviewCount)
	}
	if !s.DueAt.Equal(testNow) {
		t.Errorf("due at = %v, want %v", s.DueAt, testNow)
	}
}

func TestNextScheduleWarmup(t *testing.T) {
	// First success: interval 1. Second success: interval 6. Third: round(6*ease).
	s := InitialSchedule(testNow)

	s = NextSchedule(s, true, ConfidenceMedium, testNow)
	if s.IntervalDays != 1 {
		t.Fatalf("after first success interval = %d, want 1", s.IntervalDays)
	}
	if s.ReviewCount != 1 {
		t.Fatalf("after first success count = %d, want 1", s.ReviewCount)
	}

	s = NextSchedule(s, true, ConfidenceMedium, testNow)
	if s.IntervalDays != 6 {
		t.Fatalf("after second success interval = %d, want 6", s.IntervalDays)
	}

	s = NextSchedule(s, true, ConfidenceMedium, testNow)
	// round(6 * 2.5) = 15
	if s.IntervalDays != 15 {
		t.Fatalf("after third success interval = %d, want 15", s.IntervalDays)
	}
	if s.ReviewCount != 3 {
		t.Fatalf("count = %d, want 3", s.ReviewCount)
	}
}

func TestNextScheduleHighConfidenceRaisesEase(t *testing.T) {
	s := InitialSchedule(testNow)
	s = NextSchedule(s, true, ConfidenceHigh, testNow)
	if s.EaseFactor != 2.6 {
		t.Errorf("ease = %v, want 2.6", s.EaseFactor)
	}
	s = NextSchedule(s, true, ConfidenceMedium, testNow)
	if s.EaseFactor != 2.6 {
		t.Errorf("ease after medium-confidence success = %v, want unchanged 2.6", s.EaseFactor)
	}
}

func TestNextScheduleEaseCap(t *testing.T) {
	s := Schedule{IntervalDays: 15, EaseFactor: 2.95, ReviewCount: 3, DueAt: testNow}
	s = NextSchedule(s, true, ConfidenceHigh, testNow)
	if s.EaseFactor != MaxEase {
		t.Errorf("ease = %v, want capped at %v", s.EaseFactor, MaxEase)
	}
}

func TestNextScheduleFailureResets(t *testing.T) {
	cases := []struct {
		name    string
		correct bool
		conf    Confidence
	}{
		{"incorrect", false, ConfidenceHigh},
		{"low confidence correct", true, ConfidenceLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := Schedule{IntervalDays: 15, EaseFactor: 2.6, ReviewCount: 3, DueAt: testNow}
			got := NextSchedule(s, tc.correct, tc.conf, testNow)
			if got.IntervalDays != 1 {
				t.Errorf("interval = %d, want reset to 1", got.IntervalDays)
			}
			if got.EaseFactor != 2.4 {
				t.Errorf("ease = %v, want 2.4", got.EaseFactor)
			}
			if got.ReviewCount != 4 {
				t.Errorf("count = %d, want 4", got.ReviewCount)
			}
			wantDue := testNow.AddDate(0, 0, 1)
			if !got.DueAt.Equal(wantDue) {
				t.Errorf("due at = %v, want %v", got.DueAt, wantDue)
			}
		})
	}
}

func TestNextScheduleEaseFloor(t *testing.T) {
	s := Schedule{IntervalDays: 1, EaseFactor: 1.35, ReviewCount: 5, DueAt: testNow}
	s = NextSchedule(s, false, ConfidenceNone, testNow)
	if s.EaseFactor != MinEase {
		t.Errorf("ease = %v, want floored at %v", s.EaseFactor, MinEase)
	}
}

func TestNextScheduleZeroEaseDefaults(t *testing.T) {
	s := Schedule{IntervalDays: 6, EaseFactor: 0, ReviewCount: 2, DueAt: testNow}
	s = NextSchedule(s, true, ConfidenceMedium, testNow)
	// round(6 * 2.5) = 15
	if s.IntervalDays != 15 {
		t.Errorf("interval = %d, want 15 using default ease", s.IntervalDays)
	}
}

func TestNextScheduleEaseNeverLeavesBounds(t *testing.T) {
	// Drive a long mixed run and check the ease invariant holds throughout.
	s := InitialSchedule(testNow)
	outcomes := []struct {
		correct bool
		conf    Confidence
	}{
		{true, ConfidenceHigh}, {true, ConfidenceHigh}, {false, ConfidenceNone},
		{true, ConfidenceLow}, {true, ConfidenceHigh}, {false, ConfidenceHigh},
		{true, ConfidenceHigh}, {true, ConfidenceHigh}, {true, ConfidenceHigh},
		{true, ConfidenceHigh}, {false, ConfidenceLow}, {false, ConfidenceLow},
		{false, ConfidenceLow}, {false, ConfidenceLow}, {false, ConfidenceLow},
		{false, ConfidenceLow}, {false, ConfidenceLow},
	}
	for i, o := range outcomes {
		s = NextSchedule(s, o.correct, o.conf, testNow)
		if s.EaseFactor < MinEase || s.EaseFactor > MaxEase {
			t.Fatalf("step %d: ease %v out of [%v, %v]", i, s.EaseFactor, MinEase, MaxEase)
		}
		if s.ReviewCount != i+1 {
			t.Fatalf("step %d: count = %d, want %d", i, s.ReviewCount, i+1)
		}
	}
}

func TestNextScheduleDueDate(t *testing.T) {
	s := Schedule{IntervalDays: 6, EaseFactor: 2.5, ReviewCount: 2, DueAt: testNow}
	got := NextSchedule(s, true, ConfidenceMedium, testNow)
	wantDue := testNow.AddDate(0, 0, 15)
	if !got.DueAt.Equal(wantDue) {
		t.Errorf("due at = %v, want %v", got.DueAt, wantDue)
	}
}

func TestAdmissionReason(t *testing.T) {
	cases := []struct {
		name       string
		correct    bool
		conf       Confidence
		wantReason Reason
		wantAdmit  bool
	}{
		{"incorrect high confidence", false, ConfidenceHigh, ReasonIncorrect, true},
		{"incorrect no confidence", false, ConfidenceNone, ReasonIncorrect, true},
		{"correct low confidence", true, ConfidenceLow, ReasonLowConfidence, true},
		{"correct medium confidence", true, ConfidenceMedium, "", false},
		{"correct high confidence", true, ConfidenceHigh, "", false},
		{"correct no confidence", true, ConfidenceNone, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			reason, admit := AdmissionReason(tc.correct, tc.conf)
			if admit != tc.wantAdmit {
				t.Fatalf("admit = %v, want %v", admit, tc.wantAdmit)
			}
			if admit && reason != tc.wantReason {
				t.Errorf("reason = %q, want %q", reason, tc.wantReason)
			}
		})
	}
}
