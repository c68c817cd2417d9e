package achievements

import (
	"context"
	"fmt"
	"image/color"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/nclexprep/internal/awards"
	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/screen"
	"github.com/meera/nclexprep/internal/store"
	"github.com/meera/nclexprep/internal/ui/layout"
	"github.com/meera/nclexprep/internal/ui/theme"
)

type awardsLoadedMsg struct {
	Earned  map[string]bool
	History []store.AwardEventRecord
	Err     error
}

// AchievementsScreen displays the achievement catalog and what the user
// has earned so far.
type AchievementsScreen struct {
	userID       string
	eventRepo    store.EventRepo
	catalog      []awards.Achievement
	earned       map[string]bool
	earnedAt     map[string]string // achievement ID → date earned
	selectedTier int               // index into awards.AllTiers()
	loaded       bool
	errMsg       string
}

var _ screen.Screen = (*AchievementsScreen)(nil)
var _ screen.KeyHintProvider = (*AchievementsScreen)(nil)

// New creates a new AchievementsScreen.
func New(userID string, eventRepo store.EventRepo) *AchievementsScreen {
	return &AchievementsScreen{
		userID:    userID,
		eventRepo: eventRepo,
		catalog:   awards.Catalog(),
	}
}

func (s *AchievementsScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		earned, err := s.eventRepo.EarnedAchievements(ctx, s.userID)
		if err != nil {
			return awardsLoadedMsg{Err: err}
		}
		history, err := s.eventRepo.QueryAwardEvents(ctx, s.userID, store.QueryOpts{})
		if err != nil {
			return awardsLoadedMsg{Earned: earned}
		}
		return awardsLoadedMsg{Earned: earned, History: history}
	}
}

func (s *AchievementsScreen) Title() string {
	return "Achievements"
}

func (s *AchievementsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Tab", Description: "Switch tier"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *AchievementsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case awardsLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.earned = msg.Earned
			s.earnedAt = make(map[string]string)
			for _, rec := range msg.History {
				if rec.AchievementID == "" {
					continue
				}
				if _, ok := s.earnedAt[rec.AchievementID]; !ok {
					s.earnedAt[rec.AchievementID] = rec.Timestamp.Format("Jan 02, 2006")
				}
			}
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "tab":
			tiers := awards.AllTiers()
			s.selectedTier = (s.selectedTier + 1) % len(tiers)
			return s, nil
		case "shift+tab":
			tiers := awards.AllTiers()
			s.selectedTier = (s.selectedTier - 1 + len(tiers)) % len(tiers)
			return s, nil
		}
	}
	return s, nil
}

func (s *AchievementsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading achievements...")
	}

	var b strings.Builder

	earnedCount := 0
	for _, a := range s.catalog {
		if s.earned[a.ID] {
			earnedCount++
		}
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).Align(lipgloss.Center).Foreground(theme.Text).
		Render(fmt.Sprintf("\nEarned %d of %d\n", earnedCount, len(s.catalog))))
	b.WriteString("\n")

	// Tier tabs.
	tiers := awards.AllTiers()
	var tabs []string
	for i, t := range tiers {
		label := fmt.Sprintf("%s %s (%d)", t.Icon(), t.DisplayName(), s.countByTier(t))
		if i == s.selectedTier {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(label))
		} else {
			tabs = append(tabs, lipgloss.NewStyle().Foreground(theme.TextDim).Render(label))
		}
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(tabs, "     ")))
	b.WriteString("\n\n")

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", min(width-8, 60)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	tier := tiers[s.selectedTier]
	shown := 0
	for _, a := range s.catalog {
		if a.Tier != tier {
			continue
		}
		shown++

		var marker, suffix string
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		if s.earned[a.ID] {
			marker = "✓"
			style = lipgloss.NewStyle().Foreground(tierColor(a.Tier))
			if date, ok := s.earnedAt[a.ID]; ok {
				suffix = "   " + date
			}
		} else {
			marker = "·"
		}

		line := fmt.Sprintf("  %s %-18s %-42s%s", marker, a.Name, a.Description, suffix)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	if shown == 0 {
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("No achievements at this tier"))
	}

	return b.String()
}

func (s *AchievementsScreen) countByTier(t awards.Tier) int {
	count := 0
	for _, a := range s.catalog {
		if a.Tier == t && s.earned[a.ID] {
			count++
		}
	}
	return count
}

func tierColor(t awards.Tier) color.Color {
	switch t {
	case awards.TierBronze:
		return theme.TierBronze
	case awards.TierSilver:
		return theme.TierSilver
	case awards.TierGold:
		return theme.TierGold
	case awards.TierPlatinum:
		return theme.TierPlatinum
	default:
		return theme.Text
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
