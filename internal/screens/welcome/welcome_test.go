package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/meera/nclexprep/internal/router"
	"github.com/meera/nclexprep/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "home" }
func (s *stubScreen) Title() string                           { return "Home" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) {
	for i := 0; i < n; i++ {
		w.Update(tickMsg(time.Now()))
	}
}

func TestTaglineAppearsAfterDelay(t *testing.T) {
	w, _ := newTestWelcome()

	view := w.View(80, 24)
	if strings.Contains(view, "remembers what you forget") {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, 6)
	view = w.View(80, 24)
	if !strings.Contains(view, "remembers what you forget") {
		t.Error("tagline should be visible after 600ms")
	}
}

func TestKeyIgnoredBeforeSkippable(t *testing.T) {
	w, calls := newTestWelcome()

	sendTicks(w, 3)
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("key press before skippable threshold should be ignored")
	}
	if *calls != 0 {
		t.Error("home factory should not have been called")
	}
}

func TestKeyTransitionsAfterSkippable(t *testing.T) {
	w, calls := newTestWelcome()

	sendTicks(w, 12)
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	msg := cmd()
	if _, ok := msg.(router.ReplaceScreenMsg); !ok {
		t.Errorf("expected ReplaceScreenMsg, got %T", msg)
	}
	if *calls != 1 {
		t.Errorf("home factory call count = %d, want 1", *calls)
	}
}

func TestTransitionOnlyOnce(t *testing.T) {
	w, calls := newTestWelcome()

	sendTicks(w, 12)
	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a transition command")
	}
	_, cmd = w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd != nil {
		t.Error("second key press should not transition again")
	}
	if *calls != 1 {
		t.Errorf("home factory call count = %d, want 1", *calls)
	}
}

func TestCompactBanner(t *testing.T) {
	w, _ := newTestWelcome()
	view := w.View(40, 24)
	if !strings.Contains(view, bannerCompact) {
		t.Error("narrow terminal should use the compact banner")
	}
}
