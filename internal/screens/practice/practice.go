package practice

import (
	"context"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/review"
	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/screen"
	"github.com/meera/nclexprep/internal/screens/paywall"
	"github.com/meera/nclexprep/internal/screens/summary"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
	"github.com/meera/nclexprep/internal/tutor"
	"github.com/meera/nclexprep/internal/ui/components"
	"github.com/meera/nclexprep/internal/ui/layout"
)

// stage is the sub-state of the practice screen.
type stage int

const (
	stageLoading stage = iota
	stageQuestion
	stageConfidence
	stageFeedback
	stageQuitConfirm
	stageEmpty
	stageError
)

// Deps carries the services the practice screen needs. Tutor may be nil.
type Deps struct {
	UserID    string
	Planner   *session.Planner
	Engine    *session.Engine
	Tutor     *tutor.Service
	Snapshots store.SnapshotRepo
}

// PracticeScreen runs one session: practice, focused, or review.
type PracticeScreen struct {
	deps  Deps
	mode  session.Mode
	stage stage

	state  *session.State
	choice components.MultiChoice
	conf   review.Confidence

	result      *session.AnswerResult
	explanation *tutor.Explanation
	tutorBusy   bool
	tutorErr    string

	errMsg string
}

var _ screen.Screen = (*PracticeScreen)(nil)
var _ screen.KeyHintProvider = (*PracticeScreen)(nil)

// New creates a practice screen for the given mode.
func New(deps Deps, mode session.Mode) *PracticeScreen {
	return &PracticeScreen{
		deps:  deps,
		mode:  mode,
		stage: stageLoading,
	}
}

func (s *PracticeScreen) Init() tea.Cmd {
	return s.buildPlan()
}

func (s *PracticeScreen) Title() string {
	switch s.mode {
	case session.ModeFocused:
		return "Focused Practice"
	case session.ModeReview:
		return "Review"
	default:
		return "Practice"
	}
}

func (s *PracticeScreen) KeyHints() []layout.KeyHint {
	switch s.stage {
	case stageQuestion:
		return []layout.KeyHint{
			{Key: "A-D", Description: "Choose"},
			{Key: "Enter", Description: "Answer"},
			{Key: "Esc", Description: "Quit"},
		}
	case stageConfidence:
		return []layout.KeyHint{
			{Key: "1-3/←→", Description: "Confidence"},
			{Key: "Enter", Description: "Submit"},
		}
	case stageFeedback:
		hints := []layout.KeyHint{{Key: "Enter", Description: "Continue"}}
		if s.canExplain() {
			hints = append([]layout.KeyHint{{Key: "T", Description: "Ask tutor"}}, hints...)
		}
		return hints
	case stageQuitConfirm:
		return []layout.KeyHint{
			{Key: "Y", Description: "End session"},
			{Key: "N", Description: "Keep going"},
		}
	default:
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}}
	}
}

func (s *PracticeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case planReadyMsg:
		return s.handlePlanReady(msg)
	case answerRecordedMsg:
		return s.handleAnswerRecorded(msg)
	case tutorReadyMsg:
		s.tutorBusy = false
		if msg.Err != nil {
			s.tutorErr = msg.Err.Error()
		} else {
			s.explanation = msg.Explanation
		}
		return s, nil
	case finishedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.stage = stageError
			return s, nil
		}
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: summary.New(msg.Summary)}
		}
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// buildPlan assembles the question list and session state off the UI loop.
func (s *PracticeScreen) buildPlan() tea.Cmd {
	deps := s.deps
	mode := s.mode
	return func() tea.Msg {
		ctx := context.Background()
		now := time.Now()

		plan, status, err := deps.Planner.BuildPlan(ctx, deps.UserID, mode, now)
		if err != nil {
			return planReadyMsg{Err: err}
		}

		prog, err := progress.Load(ctx, deps.Snapshots, deps.UserID)
		if err != nil {
			return planReadyMsg{Err: err}
		}

		state := session.NewState(plan, deps.UserID, prog, now)
		if len(plan.Questions) > 0 {
			if err := deps.Engine.Start(ctx, state); err != nil {
				return planReadyMsg{Err: err}
			}
		}
		return planReadyMsg{State: state, Status: status}
	}
}

func (s *PracticeScreen) handlePlanReady(msg planReadyMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.stage = stageError
		return s, nil
	}
	if !msg.Status.Allowed() {
		return s, func() tea.Msg {
			return router.ReplaceScreenMsg{Screen: paywall.New(msg.Status)}
		}
	}
	if len(msg.State.Plan.Questions) == 0 {
		s.stage = stageEmpty
		return s, nil
	}
	s.state = msg.State
	s.stage = stageQuestion
	s.choice = newChoice(msg.State.CurrentQuestion())
	return s, nil
}

// newChoice builds the option selector for a question.
func newChoice(q *bank.Question) components.MultiChoice {
	if q == nil {
		return components.MultiChoice{}
	}
	texts := make([]string, len(q.Options))
	correct := 0
	for i, opt := range q.Options {
		texts[i] = opt.Text
		if opt.Label == q.CorrectLabel {
			correct = i
		}
	}
	return components.NewMultiChoice(q.Stem, texts, correct)
}

func (s *PracticeScreen) handleAnswerRecorded(msg answerRecordedMsg) (screen.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		s.stage = stageError
		return s, nil
	}
	s.result = msg.Result
	s.explanation = nil
	s.tutorErr = ""
	s.stage = stageFeedback
	s.choice.Submitted = true
	s.choice.ChosenIndex = s.choice.Selected

	prog := s.state.Progress
	return s, func() tea.Msg {
		return screen.StatsMsg{Points: prog.Points, DayStreak: prog.DailyStreak}
	}
}

func (s *PracticeScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	switch s.stage {
	case stageError, stageEmpty:
		return s, func() tea.Msg { return router.PopScreenMsg{} }

	case stageQuitConfirm:
		switch key {
		case "y", "Y":
			return s, s.finish()
		case "n", "N", "esc":
			s.stage = stageQuestion
		}
		return s, nil

	case stageQuestion:
		q := s.state.CurrentQuestion()
		if q == nil {
			return s, nil
		}
		switch key {
		case "esc":
			s.stage = stageQuitConfirm
			return s, nil
		case "up", "k", "down", "j":
			s.choice, _ = s.choice.Update(msg)
			return s, nil
		case "enter":
			s.stage = stageConfidence
			s.conf = review.ConfidenceMedium
			return s, nil
		}
		// Direct selection by label or number.
		if idx := optionIndex(key, len(q.Options)); idx >= 0 {
			s.choice.Selected = idx
			return s, nil
		}
		return s, nil

	case stageConfidence:
		switch key {
		case "esc":
			s.stage = stageQuestion
			return s, nil
		case "left", "h":
			s.conf = lowerConfidence(s.conf)
			return s, nil
		case "right", "l", "tab":
			s.conf = higherConfidence(s.conf)
			return s, nil
		case "1":
			s.conf = review.ConfidenceLow
			return s, s.submit()
		case "2":
			s.conf = review.ConfidenceMedium
			return s, s.submit()
		case "3":
			s.conf = review.ConfidenceHigh
			return s, s.submit()
		case "enter":
			return s, s.submit()
		}
		return s, nil

	case stageFeedback:
		if key == "t" || key == "T" {
			if s.canExplain() && !s.tutorBusy {
				s.tutorBusy = true
				return s, s.askTutor()
			}
			return s, nil
		}
		return s.advance()
	}

	return s, nil
}

// canExplain reports whether the tutor can be asked about the last answer.
func (s *PracticeScreen) canExplain() bool {
	return s.deps.Tutor != nil && s.deps.Tutor.Available() &&
		s.result != nil && !s.result.Correct && s.explanation == nil
}

func (s *PracticeScreen) submit() tea.Cmd {
	q := s.state.CurrentQuestion()
	if q == nil || s.choice.Selected >= len(q.Options) {
		return nil
	}
	label := q.Options[s.choice.Selected].Label
	conf := s.conf

	engine := s.deps.Engine
	state := s.state
	return func() tea.Msg {
		result, err := engine.HandleAnswer(context.Background(), state, label, conf, time.Now())
		return answerRecordedMsg{Result: result, Err: err}
	}
}

func (s *PracticeScreen) askTutor() tea.Cmd {
	q := s.state.CurrentQuestion()
	if q == nil {
		return nil
	}
	chosen := q.Options[s.choice.Selected].Label
	svc := s.deps.Tutor
	question := *q
	return func() tea.Msg {
		exp, err := svc.Explain(context.Background(), question, chosen)
		return tutorReadyMsg{Explanation: exp, Err: err}
	}
}

// advance moves past the feedback to the next question, or ends the session.
func (s *PracticeScreen) advance() (screen.Screen, tea.Cmd) {
	s.state.Advance(time.Now())
	s.result = nil
	s.explanation = nil
	if s.state.Done() {
		return s, s.finish()
	}
	s.choice = newChoice(s.state.CurrentQuestion())
	s.stage = stageQuestion
	return s, nil
}

func (s *PracticeScreen) finish() tea.Cmd {
	engine := s.deps.Engine
	state := s.state
	return func() tea.Msg {
		sum, err := engine.Finish(context.Background(), state, time.Now())
		return finishedMsg{Summary: sum, Err: err}
	}
}

func lowerConfidence(c review.Confidence) review.Confidence {
	switch c {
	case review.ConfidenceHigh:
		return review.ConfidenceMedium
	default:
		return review.ConfidenceLow
	}
}

func higherConfidence(c review.Confidence) review.Confidence {
	switch c {
	case review.ConfidenceLow:
		return review.ConfidenceMedium
	default:
		return review.ConfidenceHigh
	}
}

// optionIndex maps a key press to an option index: letters a-d or digits 1-4.
func optionIndex(key string, n int) int {
	if len(key) != 1 {
		return -1
	}
	c := key[0]
	var idx int
	switch {
	case c >= 'a' && c <= 'z':
		idx = int(c - 'a')
	case c >= 'A' && c <= 'Z':
		idx = int(c - 'A')
	case c >= '1' && c <= '9':
		idx = int(c - '1')
	default:
		return -1
	}
	if idx >= n {
		return -1
	}
	return idx
}
