package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/nclexprep/internal/awards"
	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/session"
)

func sampleSummary() *session.Summary {
	return &session.Summary{
		Mode:           session.ModePractice,
		Duration:       95 * time.Second,
		TotalQuestions: 10,
		TotalCorrect:   7,
		Accuracy:       0.7,
		PointsEarned:   85,
		CategoryResults: []session.CategoryResult{
			{Category: "Pharmacology", Attempted: 4, Correct: 4},
			{Category: "Renal", Attempted: 6, Correct: 3},
		},
		Awards: []awards.Award{
			{Name: "Hot Streak", Tier: awards.TierBronze, Reason: "5 correct in a row", Points: 25},
		},
	}
}

func TestViewShowsResults(t *testing.T) {
	s := New(sampleSummary())
	view := s.View(100, 40)

	for _, want := range []string{
		"Session complete!",
		"Duration: 1:35",
		"Accuracy: 70%",
		"+85 points",
		"Pharmacology",
		"4/4 correct",
		"Hot Streak",
	} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestEnterReturnsHome(t *testing.T) {
	s := New(sampleSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command on enter")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestEscReturnsHome(t *testing.T) {
	s := New(sampleSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected a command on esc")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
