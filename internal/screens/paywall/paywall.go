package paywall

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/meera/nclexprep/internal/entitlement"
	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/screen"
	"github.com/meera/nclexprep/internal/ui/components"
	"github.com/meera/nclexprep/internal/ui/layout"
	"github.com/meera/nclexprep/internal/ui/theme"
)

// PaywallScreen is shown when the free daily quota is used up. It lets the
// user check a license key's format before setting it in the environment.
type PaywallScreen struct {
	status  entitlement.Status
	input   components.TextInput
	checked bool
	valid   bool
}

var _ screen.Screen = (*PaywallScreen)(nil)
var _ screen.KeyHintProvider = (*PaywallScreen)(nil)

// New creates a PaywallScreen for the given quota status.
func New(status entitlement.Status) *PaywallScreen {
	return &PaywallScreen{
		status: status,
		input:  components.NewTextInput("NP-XXXXXXXXXXXXXXXX", false, 19),
	}
}

func (s *PaywallScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *PaywallScreen) Title() string {
	return "Daily Limit"
}

func (s *PaywallScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Check key"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *PaywallScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			key := strings.TrimSpace(s.input.Value())
			if key != "" {
				s.checked = true
				s.valid = entitlement.ValidLicense(key)
				s.input.Submit(s.valid)
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *PaywallScreen) View(width, height int) string {
	var sections []string

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Accent).
		Bold(true).
		Render("You've hit today's free limit"))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Render(fmt.Sprintf("The free plan includes %d answers per day.\nYour quota resets at midnight.", entitlement.FreeDailyQuota)))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Premium removes the limit. Set %s to your\nlicense key and restart the app.", entitlement.LicenseEnvVar)))

	sections = append(sections, lipgloss.NewStyle().
		Foreground(theme.Text).
		Render("Check a key: ")+s.input.View())

	if s.checked {
		if s.valid {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Success).
				Render("Key format is valid."))
		} else {
			sections = append(sections, lipgloss.NewStyle().
				Foreground(theme.Error).
				Render("That doesn't look like a license key."))
		}
	}

	content := strings.Join(sections, "\n\n")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
