package home

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/nclexprep/internal/entitlement"
	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/screen"
	"github.com/meera/nclexprep/internal/screens/achievements"
	"github.com/meera/nclexprep/internal/screens/practice"
	"github.com/meera/nclexprep/internal/screens/stats"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
	"github.com/meera/nclexprep/internal/tutor"
	"github.com/meera/nclexprep/internal/ui/components"
	"github.com/meera/nclexprep/internal/ui/theme"
)

// Deps bundles the services the home screen and its children need.
type Deps struct {
	UserID    string
	Questions store.QuestionRepo
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Reviews   store.ReviewRepo
	Planner   *session.Planner
	Engine    *session.Engine
	Gate      *entitlement.Gate
	Tutor     *tutor.Service
}

// HomeScreen is the main menu of the application.
type HomeScreen struct {
	deps       Deps
	menu       components.Menu
	bankCount  int
	dueCount   int
	quota      entitlement.Status
	quotaKnown bool
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a new HomeScreen. Counts shown on the screen are loaded
// up front so the menu renders complete on first paint.
func New(deps Deps) *HomeScreen {
	ctx := context.Background()
	now := time.Now()

	var bankCount, dueCount int
	if deps.Questions != nil {
		bankCount, _ = deps.Questions.Count(ctx)
	}
	if deps.Reviews != nil {
		dueCount, _ = deps.Reviews.CountDue(ctx, deps.UserID, now)
	}

	var quota entitlement.Status
	var quotaKnown bool
	if deps.Gate != nil {
		if st, err := deps.Gate.Check(ctx, deps.UserID, now); err == nil {
			quota = st
			quotaKnown = true
		}
	}

	h := &HomeScreen{
		deps:       deps,
		bankCount:  bankCount,
		dueCount:   dueCount,
		quota:      quota,
		quotaKnown: quotaKnown,
	}

	reviewLabel := "REVIEW DUE"
	if dueCount > 0 {
		reviewLabel = fmt.Sprintf("REVIEW DUE (%d)", dueCount)
	}

	items := []components.MenuItem{
		{Label: "PRACTICE", Action: h.startSession(session.ModePractice)},
		{Label: "FOCUSED PRACTICE", Action: h.startSession(session.ModeFocused)},
		{Label: reviewLabel, Action: h.startSession(session.ModeReview), Disabled: dueCount == 0},
		{Label: "STATS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: stats.New(deps.UserID, deps.Questions, deps.Events, deps.Snapshots, deps.Reviews)}
			}
		}},
		{Label: "ACHIEVEMENTS", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: achievements.New(deps.UserID, deps.Events)}
			}
		}},
		{Label: "QUIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	h.menu = components.NewMenu(items)
	return h
}

func (h *HomeScreen) startSession(mode session.Mode) func() tea.Cmd {
	return func() tea.Cmd {
		deps := practice.Deps{
			UserID:    h.deps.UserID,
			Planner:   h.deps.Planner,
			Engine:    h.deps.Engine,
			Tutor:     h.deps.Tutor,
			Snapshots: h.deps.Snapshots,
		}
		return func() tea.Msg {
			return router.PushScreenMsg{Screen: practice.New(deps, mode)}
		}
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("NCLEX PREP")
	sections = append(sections, title)
	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render("Practice smarter. Pass the first time."))
	sections = append(sections, "")

	sections = append(sections, h.renderStatsLine())
	sections = append(sections, "")

	sections = append(sections, h.menu.View())

	content := strings.Join(sections, "\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func (h *HomeScreen) renderStatsLine() string {
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	val := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)

	parts := []string{
		dim.Render("Questions: ") + val.Render(fmt.Sprintf("%d", h.bankCount)),
		dim.Render("Reviews due: ") + val.Render(fmt.Sprintf("%d", h.dueCount)),
	}

	if h.quotaKnown {
		if h.quota.Remaining < 0 {
			parts = append(parts, dim.Render("Plan: ")+val.Render("premium"))
		} else {
			parts = append(parts, dim.Render("Answers left today: ")+val.Render(fmt.Sprintf("%d", h.quota.Remaining)))
		}
	}

	return strings.Join(parts, dim.Render("   ·   "))
}

func (h *HomeScreen) Title() string {
	return "Home"
}
