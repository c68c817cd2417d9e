package app

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/nclexprep/internal/entitlement"
	"github.com/meera/nclexprep/internal/progress"
	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/screen"
	"github.com/meera/nclexprep/internal/screens/home"
	"github.com/meera/nclexprep/internal/screens/practice"
	"github.com/meera/nclexprep/internal/screens/welcome"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/store"
	"github.com/meera/nclexprep/internal/tutor"
	"github.com/meera/nclexprep/internal/ui/layout"
)

// Options carries the dependencies the TUI needs. Tutor may be nil when
// no LLM provider is configured; everything else is required.
type Options struct {
	UserID    string
	Questions store.QuestionRepo
	Events    store.EventRepo
	Snapshots store.SnapshotRepo
	Reviews   store.ReviewRepo
	Planner   *session.Planner
	Engine    *session.Engine
	Gate      *entitlement.Gate
	Tutor     *tutor.Service

	// StartMode, when set, skips the welcome screen and opens straight
	// into a session of that mode.
	StartMode session.Mode
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router    *router.Router
	opts      Options
	width     int
	height    int
	points    int
	dayStreak int
}

// newAppModel creates a new AppModel that opens on the welcome screen.
func newAppModel(opts Options) AppModel {
	deps := home.Deps{
		UserID:    opts.UserID,
		Questions: opts.Questions,
		Events:    opts.Events,
		Snapshots: opts.Snapshots,
		Reviews:   opts.Reviews,
		Planner:   opts.Planner,
		Engine:    opts.Engine,
		Gate:      opts.Gate,
		Tutor:     opts.Tutor,
	}
	var initial screen.Screen
	if opts.StartMode != "" {
		initial = home.New(deps)
	} else {
		initial = welcome.New(func() screen.Screen {
			return home.New(deps)
		})
	}
	return AppModel{
		router: router.New(initial),
		opts:   opts,
	}
}

func (m AppModel) Init() tea.Cmd {
	cmds := []tea.Cmd{m.loadStats()}
	if m.opts.StartMode != "" {
		deps := practice.Deps{
			UserID:    m.opts.UserID,
			Planner:   m.opts.Planner,
			Engine:    m.opts.Engine,
			Tutor:     m.opts.Tutor,
			Snapshots: m.opts.Snapshots,
		}
		mode := m.opts.StartMode
		cmds = append(cmds, func() tea.Msg {
			return router.PushScreenMsg{Screen: practice.New(deps, mode)}
		})
	}
	return tea.Batch(cmds...)
}

// loadStats reads the persisted progress state for the header figures.
func (m AppModel) loadStats() tea.Cmd {
	snapshots := m.opts.Snapshots
	userID := m.opts.UserID
	return func() tea.Msg {
		if snapshots == nil {
			return nil
		}
		st, err := progress.Load(context.Background(), snapshots, userID)
		if err != nil {
			return nil
		}
		return screen.StatsMsg{Points: st.Points, DayStreak: st.DailyStreak}
	}
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.StatsMsg:
		m.points = msg.Points
		m.dayStreak = msg.DayStreak
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	header := layout.RenderHeader(title, m.points, m.dayStreak, m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	if footerHints == nil {
		if m.router.Depth() > 1 {
			footerHints = []layout.KeyHint{
				{Key: "Esc", Description: "Back"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		} else {
			footerHints = []layout.KeyHint{
				{Key: "↑↓", Description: "Navigate"},
				{Key: "Enter", Description: "Select"},
				{Key: "Ctrl+C", Description: "Quit"},
			}
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
