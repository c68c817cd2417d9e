package practice

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/review"
	"github.com/meera/nclexprep/internal/screen"
	"github.com/meera/nclexprep/internal/session"
)

func sampleQuestions() []bank.Question {
	return []bank.Question{
		{
			ID:   "q1",
			Stem: "A client with heart failure is prescribed furosemide. Which lab value should the nurse monitor most closely?",
			Options: []bank.Option{
				{Label: "A", Text: "Serum calcium"},
				{Label: "B", Text: "Serum potassium"},
				{Label: "C", Text: "Serum sodium"},
				{Label: "D", Text: "Blood glucose"},
			},
			CorrectLabel: "B",
			Category:     "Pharmacology",
			Difficulty:   bank.DifficultyMedium,
		},
		{
			ID:   "q2",
			Stem: "Which finding should the nurse report immediately for a client receiving a blood transfusion?",
			Options: []bank.Option{
				{Label: "A", Text: "Temperature rise of 2 degrees"},
				{Label: "B", Text: "Mild thirst"},
				{Label: "C", Text: "Request for a blanket"},
				{Label: "D", Text: "Slight anxiety"},
			},
			CorrectLabel: "A",
			Category:     "Physiological Adaptation",
			Difficulty:   bank.DifficultyEasy,
		},
	}
}

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testPracticeScreen() *PracticeScreen {
	s := New(Deps{UserID: "test-user"}, session.ModePractice)
	plan := &session.Plan{Mode: session.ModePractice, Questions: sampleQuestions()}
	s.state = session.NewState(plan, "test-user", progress.State{}, time.Now())
	s.stage = stageQuestion
	s.choice = newChoice(s.state.CurrentQuestion())
	return s
}

func TestTitleByMode(t *testing.T) {
	tests := []struct {
		mode session.Mode
		want string
	}{
		{session.ModePractice, "Practice"},
		{session.ModeFocused, "Focused Practice"},
		{session.ModeReview, "Review"},
	}
	for _, tt := range tests {
		s := New(Deps{}, tt.mode)
		if got := s.Title(); got != tt.want {
			t.Errorf("Title() for mode %v = %q, want %q", tt.mode, got, tt.want)
		}
	}
}

func TestOptionNavigation(t *testing.T) {
	s := testPracticeScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyDown))
	ps := scr.(*PracticeScreen)
	if ps.choice.Selected != 1 {
		t.Errorf("selected = %d after down, want 1", ps.choice.Selected)
	}

	scr, _ = ps.Update(specialKey(tea.KeyUp))
	ps = scr.(*PracticeScreen)
	if ps.choice.Selected != 0 {
		t.Errorf("selected = %d after up, want 0", ps.choice.Selected)
	}
}

func TestLetterSelectsOption(t *testing.T) {
	s := testPracticeScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(keyPress('c'))
	ps := scr.(*PracticeScreen)
	if ps.choice.Selected != 2 {
		t.Errorf("selected = %d after 'c', want 2", ps.choice.Selected)
	}

	// Letters past the option count are ignored.
	scr, _ = ps.Update(keyPress('f'))
	ps = scr.(*PracticeScreen)
	if ps.choice.Selected != 2 {
		t.Errorf("selected = %d after 'f', want 2", ps.choice.Selected)
	}
}

func TestEnterOpensConfidencePicker(t *testing.T) {
	s := testPracticeScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	ps := scr.(*PracticeScreen)
	if ps.stage != stageConfidence {
		t.Errorf("stage = %v after enter, want stageConfidence", ps.stage)
	}
	if ps.conf != review.ConfidenceMedium {
		t.Errorf("conf = %q after enter, want medium default", ps.conf)
	}

	scr, _ = ps.Update(specialKey(tea.KeyLeft))
	ps = scr.(*PracticeScreen)
	if ps.conf != review.ConfidenceLow {
		t.Errorf("conf = %q after left, want low", ps.conf)
	}

	// Low is the floor.
	scr, _ = ps.Update(specialKey(tea.KeyLeft))
	ps = scr.(*PracticeScreen)
	if ps.conf != review.ConfidenceLow {
		t.Errorf("conf = %q after second left, want low", ps.conf)
	}

	scr, _ = ps.Update(specialKey(tea.KeyRight))
	scr, _ = scr.Update(specialKey(tea.KeyRight))
	ps = scr.(*PracticeScreen)
	if ps.conf != review.ConfidenceHigh {
		t.Errorf("conf = %q after two rights, want high", ps.conf)
	}

	// Esc backs out to the question.
	scr, _ = ps.Update(specialKey(tea.KeyEscape))
	ps = scr.(*PracticeScreen)
	if ps.stage != stageQuestion {
		t.Errorf("stage = %v after esc, want stageQuestion", ps.stage)
	}
}

func TestDigitPicksConfidence(t *testing.T) {
	s := testPracticeScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEnter))
	scr, _ = scr.Update(keyPress('3'))
	ps := scr.(*PracticeScreen)
	if ps.conf != review.ConfidenceHigh {
		t.Errorf("conf = %q after '3', want high", ps.conf)
	}
}

func TestQuitConfirm(t *testing.T) {
	s := testPracticeScreen()

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ps := scr.(*PracticeScreen)
	if ps.stage != stageQuitConfirm {
		t.Errorf("stage = %v after esc, want stageQuitConfirm", ps.stage)
	}

	scr, _ = ps.Update(keyPress('n'))
	ps = scr.(*PracticeScreen)
	if ps.stage != stageQuestion {
		t.Errorf("stage = %v after 'n', want stageQuestion", ps.stage)
	}
}

func TestNewChoiceMarksCorrectIndex(t *testing.T) {
	q := sampleQuestions()[0]
	mc := newChoice(&q)
	if mc.CorrectIndex != 1 {
		t.Errorf("CorrectIndex = %d, want 1", mc.CorrectIndex)
	}
	if len(mc.Options) != 4 {
		t.Errorf("options = %d, want 4", len(mc.Options))
	}
}

func TestOptionIndex(t *testing.T) {
	tests := []struct {
		key  string
		n    int
		want int
	}{
		{"a", 4, 0},
		{"d", 4, 3},
		{"D", 4, 3},
		{"e", 4, -1},
		{"1", 4, 0},
		{"4", 4, 3},
		{"5", 4, -1},
		{"enter", 4, -1},
	}
	for _, tt := range tests {
		if got := optionIndex(tt.key, tt.n); got != tt.want {
			t.Errorf("optionIndex(%q, %d) = %d, want %d", tt.key, tt.n, got, tt.want)
		}
	}
}

func TestQuestionViewShowsOptions(t *testing.T) {
	s := testPracticeScreen()
	view := s.View(100, 40)

	for _, want := range []string{"Question 1 of 2", "Pharmacology", "Serum potassium", "A)", "D)"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFocusedFallbackNoticeShown(t *testing.T) {
	s := New(Deps{UserID: "test-user"}, session.ModeFocused)
	plan := &session.Plan{Mode: session.ModeFocused, Questions: sampleQuestions(), NoWeakCategory: true}
	s.state = session.NewState(plan, "test-user", progress.State{}, time.Now())
	s.stage = stageQuestion
	s.choice = newChoice(s.state.CurrentQuestion())

	view := s.View(100, 40)
	if !strings.Contains(view, "No category is weak enough") {
		t.Error("focused fallback notice missing from view")
	}

	// A focused plan with a real target category shows no such notice.
	s2 := testPracticeScreen()
	if strings.Contains(s2.View(100, 40), "No category is weak enough") {
		t.Error("notice shown for a plan that did not fall back")
	}
}
