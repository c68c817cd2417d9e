package practice

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/meera/nclexprep/internal/review"
	"github.com/meera/nclexprep/internal/session"
	"github.com/meera/nclexprep/internal/ui/components"
	"github.com/meera/nclexprep/internal/ui/theme"
)

func (s *PracticeScreen) View(width, height int) string {
	switch s.stage {
	case stageLoading:
		return centerDim(width, "\n\n\n  Preparing your session...")
	case stageError:
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", s.errMsg))
	case stageEmpty:
		return s.renderEmpty(width)
	case stageQuitConfirm:
		return renderQuitConfirm(width)
	case stageFeedback:
		return s.renderFeedback(width)
	default:
		return s.renderQuestion(width)
	}
}

func (s *PracticeScreen) renderEmpty(width int) string {
	msg := "No questions available.\n\nImport a question pack with `nclexprep import`."
	if s.mode == session.ModeReview {
		msg = "Nothing due for review.\n\nCome back after your next practice session."
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n" + msg + "\n\n  Press any key to go back.")
}

func (s *PracticeScreen) renderQuestion(width int) string {
	state := s.state
	q := state.CurrentQuestion()
	if q == nil {
		return centerDim(width, "\n\n  Loading question...")
	}

	var b strings.Builder

	// Position line with session progress bar.
	total := len(state.Plan.Questions)
	pct := float64(state.Index) / float64(total)
	posLabel := fmt.Sprintf("Question %d of %d", state.Index+1, total)
	bar := components.NewProgressBar(posLabel, pct, false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	catLine := q.Category
	if q.ExamCategory != "" {
		catLine += "  ·  " + q.ExamCategory
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Render(catLine))
	b.WriteString("\n")

	if state.Plan.NoWeakCategory {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Render("No category is weak enough to focus on yet, serving general practice"))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Stem and options, wrapped to a readable column.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View(min(width-8, 72))))

	if s.stage == stageConfidence {
		b.WriteString("\n")
		b.WriteString(s.renderConfidencePicker(width))
	}

	return b.String()
}

func (s *PracticeScreen) renderConfidencePicker(width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("How sure are you?"))
	b.WriteString("\n\n")

	labels := []struct {
		conf review.Confidence
		text string
	}{
		{review.ConfidenceLow, "[1] Just guessing"},
		{review.ConfidenceMedium, "[2] Somewhat sure"},
		{review.ConfidenceHigh, "[3] Certain"},
	}
	dim := lipgloss.NewStyle().Foreground(theme.TextDim)
	active := lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	parts := make([]string, 0, len(labels))
	for _, l := range labels {
		style := dim
		if s.conf == l.conf {
			style = active
		}
		parts = append(parts, style.Render(l.text))
	}
	line := strings.Join(parts, "    ")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
	return b.String()
}

func (s *PracticeScreen) renderFeedback(width int) string {
	q := s.state.CurrentQuestion()
	result := s.result
	if q == nil || result == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	if result.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render("Not quite"))
	}
	b.WriteString("\n\n")

	// Options again, now colored by outcome.
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View(min(width-8, 72))))
	b.WriteString("\n")

	if result.Rationale != "" {
		rationale := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render(result.Rationale)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, rationale))
		b.WriteString("\n\n")
	}

	if result.Admitted {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Secondary).
			Render("Added to your review queue"))
		b.WriteString("\n\n")
	}

	for _, m := range result.Milestones {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Streak! %d in a row (+%d pts)", m.Streak, m.Points)))
		b.WriteString("\n")
	}
	for _, a := range result.NewAwards {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Accent).
			Bold(true).
			Render(fmt.Sprintf("Achievement unlocked: %s %s (+%d pts)", a.Tier.Icon(), a.Name, a.Points)))
		b.WriteString("\n")
	}
	if len(result.Milestones)+len(result.NewAwards) > 0 {
		b.WriteString("\n")
	}

	b.WriteString(s.renderTutorSection(width))

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to continue..."))

	return b.String()
}

func (s *PracticeScreen) renderTutorSection(width int) string {
	var b strings.Builder

	switch {
	case s.tutorBusy:
		b.WriteString(centerDim(width, "Asking the tutor..."))
		b.WriteString("\n\n")
	case s.tutorErr != "":
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Tutor unavailable: " + s.tutorErr))
		b.WriteString("\n\n")
	case s.explanation != nil:
		exp := s.explanation
		block := lipgloss.NewStyle().Width(min(width-12, 66))
		section := func(label, text string) string {
			return lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label) +
				"\n" + block.Foreground(theme.Text).Render(text)
		}
		content := strings.Join([]string{
			section("Why your answer is wrong", exp.WhyWrong),
			section("Why the correct answer is right", exp.WhyRight),
			section("Remember", exp.Takeaway),
		}, "\n\n")
		card := theme.Card.Render(content)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, card))
		b.WriteString("\n\n")
	case s.canExplain():
		b.WriteString(centerDim(width, "Press T to ask the tutor why"))
		b.WriteString("\n\n")
	}

	return b.String()
}

func renderQuitConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("End session early?"))
	b.WriteString("\n")
	b.WriteString(centerDim(width, "Answers so far are already saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Render("[Y] Yes, end session"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

func centerDim(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(text)
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
