package welcome

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/sqlcoach/internal/router"
	"github.com/abhisek/sqlcoach/internal/screen"
)

// stubScreen is a minimal screen implementation for testing.
type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "coach" }
func (s *stubScreen) Title() string                          { return "Coach" }

func newTestWelcomeWithCounter() (*WelcomeScreen, *int) {
	callCount := 0
	factory := func() screen.Screen {
		callCount++
		return &stubScreen{}
	}
	return New(factory), &callCount
}

func sendTicks(w *WelcomeScreen, n int) (screen.Screen, tea.Cmd) {
	var s screen.Screen = w
	var cmd tea.Cmd
	for i := 0; i < n; i++ {
		s, cmd = s.Update(tickMsg(time.Now()))
	}
	return s, cmd
}

func ticksFor(d time.Duration) int {
	return int(d / tickInterval)
}

func TestQueryTypesOut(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	if w.typed() != "" {
		t.Errorf("expected nothing typed at start, got %q", w.typed())
	}

	sendTicks(w, 6)
	if w.typed() != "SELECT" {
		t.Errorf("expected %q after 6 ticks, got %q", "SELECT", w.typed())
	}

	sendTicks(w, ticksFor(typeDur))
	if w.typed() != typedQuery {
		t.Errorf("expected full query, got %q", w.typed())
	}
}

func TestPhaseTransitions(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()

	view := w.View(100, 30)
	if strings.Contains(view, tagline) {
		t.Error("tagline should not be visible at start")
	}

	sendTicks(w, ticksFor(bannerAt))
	view = w.View(100, 30)
	if !strings.Contains(view, tagline) {
		t.Error("tagline should be visible once the banner shows")
	}
	if strings.Contains(view, "press any key") {
		t.Error("key hint should wait for the end of the animation")
	}

	sendTicks(w, ticksFor(totalDur-bannerAt))
	if !strings.Contains(w.View(100, 30), "press any key") {
		t.Error("key hint should be visible after the animation")
	}
}

func TestElapsedCapped(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	sendTicks(w, ticksFor(totalDur)+40)
	if w.elapsed != totalDur {
		t.Errorf("expected elapsed capped at %v, got %v", totalDur, w.elapsed)
	}
	if *callCount != 0 {
		t.Errorf("factory should not be called without keypress, got %d", *callCount)
	}
}

func TestKeypressDuringAnimationSkipsToTransition(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()
	sendTicks(w, 3)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	if cmd == nil {
		t.Fatal("keypress during animation should trigger transition")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	if msg.Screen == nil {
		t.Error("replace screen should not be nil")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called once, got %d", *callCount)
	}
}

func TestFactoryCalledOnce(t *testing.T) {
	w, callCount := newTestWelcomeWithCounter()

	sendTicks(w, ticksFor(totalDur))
	w.Update(tea.KeyPressMsg{Code: 'a'})

	_, cmd := w.Update(tea.KeyPressMsg{Code: 'b'})
	if cmd != nil {
		t.Error("second keypress should not produce a command")
	}
	if *callCount != 1 {
		t.Errorf("factory should be called exactly once, got %d", *callCount)
	}
}

func TestTicksStopAfterTransition(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	w.Update(tea.KeyPressMsg{Code: 'x'})

	_, cmd := sendTicks(w, 1)
	if cmd != nil {
		t.Error("ticks should stop once the screen has transitioned")
	}
}

func TestCompactBanner(t *testing.T) {
	if !strings.Contains(RenderBanner(60), bannerCompact) {
		t.Error("narrow terminals should get the compact banner")
	}
	if strings.Contains(RenderBanner(120), bannerCompact) {
		t.Error("wide terminals should get the full banner")
	}
}

func TestTitleEmpty(t *testing.T) {
	w, _ := newTestWelcomeWithCounter()
	if w.Title() != "" {
		t.Errorf("expected empty title, got %q", w.Title())
	}
}
