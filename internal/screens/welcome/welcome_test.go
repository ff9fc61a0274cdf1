package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/gmatize/gmatize/internal/router"
	"github.com/gmatize/gmatize/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return "test" }
func (s *stubScreen) Title() string                           { return "Test" }

func newTestWelcome() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func TestStartTestPushesScreen(t *testing.T) {
	w, callCount := newTestWelcome()

	_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command from START TEST")
	}
	msg := cmd()
	push, ok := msg.(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", msg)
	}
	if push.Screen == nil {
		t.Error("pushed screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory called %d times, want 1", *callCount)
	}
}

func TestFactoryCalledPerStart(t *testing.T) {
	w, callCount := newTestWelcome()

	for i := 0; i < 3; i++ {
		_, cmd := w.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
		if cmd == nil {
			t.Fatal("expected a command")
		}
		cmd()
	}
	if *callCount != 3 {
		t.Errorf("factory called %d times, want 3", *callCount)
	}
}

func TestQuitItem(t *testing.T) {
	w, _ := newTestWelcome()

	// Move to QUIT and select it.
	s, _ := w.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
}

func TestViewShowsRules(t *testing.T) {
	w, _ := newTestWelcome()

	view := w.View(100, 40)
	if !strings.Contains(view, "10 questions") {
		t.Error("expected question count in the rules")
	}
	if !strings.Contains(view, "Easy questions score 1 point, medium 2, hard 3.") {
		t.Error("expected scoring rules")
	}
}

func TestCompactBanner(t *testing.T) {
	view := RenderBanner(40)
	if !strings.Contains(view, "G M A T I Z E") {
		t.Error("expected compact banner on narrow terminals")
	}
}
