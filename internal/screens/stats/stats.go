package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/nclexprep/internal/adaptive"
	"github.com/meera/nclexprep/internal/bank"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/screen"
	"github.com/meera/nclexprep/internal/store"
	"github.com/meera/nclexprep/internal/ui/components"
	"github.com/meera/nclexprep/internal/ui/layout"
	"github.com/meera/nclexprep/internal/ui/theme"
)

type statsLoadedMsg struct {
	Progress   progress.State
	Categories []adaptive.CategoryStat
	Weakest    string
	HasWeakest bool
	DueCount   int
	Sessions   []store.SessionSummaryRecord
	Err        error
}

// StatsScreen displays accumulated performance figures.
type StatsScreen struct {
	userID    string
	questions store.QuestionRepo
	events    store.EventRepo
	snapshots store.SnapshotRepo
	reviews   store.ReviewRepo

	data   statsLoadedMsg
	loaded bool
	errMsg string
}

var _ screen.Screen = (*StatsScreen)(nil)
var _ screen.KeyHintProvider = (*StatsScreen)(nil)

// New creates a new StatsScreen.
func New(userID string, questions store.QuestionRepo, events store.EventRepo, snapshots store.SnapshotRepo, reviews store.ReviewRepo) *StatsScreen {
	return &StatsScreen{
		userID:    userID,
		questions: questions,
		events:    events,
		snapshots: snapshots,
		reviews:   reviews,
	}
}

func (s *StatsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		prog, err := progress.Load(ctx, s.snapshots, s.userID)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		history, err := s.events.QueryAnswerEvents(ctx, s.userID, store.QueryOpts{})
		if err != nil {
			return statsLoadedMsg{Err: err}
		}

		recs, err := s.questions.List(ctx, true)
		if err != nil {
			return statsLoadedMsg{Err: err}
		}
		pool := bank.FromRecords(recs)

		weakest, hasWeakest := adaptive.WeakestCategory(pool, history)
		dueCount, _ := s.reviews.CountDue(ctx, s.userID, time.Now())
		sessions, _ := s.events.QuerySessionSummaries(ctx, s.userID, store.QueryOpts{Limit: 5})

		return statsLoadedMsg{
			Progress:   prog,
			Categories: adaptive.Summarize(history, pool),
			Weakest:    weakest,
			HasWeakest: hasWeakest,
			DueCount:   dueCount,
			Sessions:   sessions,
		}
	}
}

func (s *StatsScreen) Title() string {
	return "Stats"
}

func (s *StatsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (s *StatsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.data = msg
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		if msg.String() == "esc" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *StatsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading stats...")
	}

	var b strings.Builder
	prog := s.data.Progress

	// Overview line.
	overview := fmt.Sprintf("Answered: %d    Correct: %d    Accuracy: %.0f%%    Reviews due: %d",
		prog.TotalAnswered, prog.TotalCorrect, prog.Accuracy()*100, s.data.DueCount)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(overview))
	b.WriteString("\n")

	streaks := fmt.Sprintf("Points: %d    Best answer streak: %d    Study streak: %d days",
		prog.Points, prog.BestStreak, prog.DailyStreak)
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
		Render(streaks))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Accuracy by category")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	barWidth := min(width-8, 60)
	answered := false
	for _, cs := range s.data.Categories {
		if cs.Total == 0 {
			continue
		}
		answered = true
		label := fmt.Sprintf("%-34s %3d/%-3d", cs.Category, cs.Correct, cs.Total)
		bar := components.NewProgressBar(label, cs.Accuracy(), true, barWidth+20)
		line := bar.View()
		if s.data.HasWeakest && cs.Category == s.data.Weakest {
			line += lipgloss.NewStyle().Foreground(theme.Accent).Render("  ◀ weakest")
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}
	if !answered {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("Answer some questions to see category stats"))
		b.WriteString("\n")
	}

	// Recent sessions.
	if len(s.data.Sessions) > 0 {
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Recent sessions")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, sess := range s.data.Sessions {
			mins := sess.DurationSecs / 60
			secs := sess.DurationSecs % 60
			line := fmt.Sprintf("  %s  %-10s %2d/%-2d correct   %d:%02d",
				sess.Timestamp.Format("Jan 02 15:04"),
				sess.Mode, sess.CorrectAnswers, sess.QuestionsServed, mins, secs)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Text).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
