package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/sqlcoach/internal/coach"
	"github.com/abhisek/sqlcoach/internal/router"
	"github.com/abhisek/sqlcoach/internal/screen"
	"github.com/abhisek/sqlcoach/internal/ui/layout"
)

type stubScreen struct {
	title string
	hints []layout.KeyHint
	msgs  []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd { return nil }
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.msgs = append(s.msgs, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return "body:" + s.title }
func (s *stubScreen) Title() string        { return s.title }

type hintedScreen struct{ stubScreen }

func (s *hintedScreen) KeyHints() []layout.KeyHint { return s.hints }

type stubProgress struct{ completed, total int }

func (p stubProgress) Report() coach.Outcome {
	return coach.Outcome{Kind: coach.KindProgress, Report: &coach.Report{Completed: p.completed, Total: p.total}}
}

func sized(m AppModel, w, h int) AppModel {
	next, _ := m.Update(tea.WindowSizeMsg{Width: w, Height: h})
	return next.(AppModel)
}

func TestViewShowsTitleAndProgress(t *testing.T) {
	m := sized(newAppModel(&stubScreen{title: "Lesson 1.1: SELECT"}, stubProgress{3, 13}), 100, 30)
	content := m.frame()

	assert.Contains(t, content, "SQL Coach")
	assert.Contains(t, content, "Lesson 1.1: SELECT")
	assert.Contains(t, content, "✓ 3/13")
	assert.Contains(t, content, "body:Lesson 1.1: SELECT")
}

func TestViewUsesScreenKeyHints(t *testing.T) {
	s := &hintedScreen{stubScreen{title: "x", hints: []layout.KeyHint{{Key: "Enter", Description: "Run"}}}}
	m := sized(newAppModel(s, nil), 100, 30)
	content := m.frame()
	assert.Contains(t, content, "Run")
	assert.NotContains(t, content, "any key")

	m = sized(newAppModel(&stubScreen{}, nil), 100, 30)
	assert.Contains(t, m.frame(), "any key")
}

func TestViewTooSmall(t *testing.T) {
	m := sized(newAppModel(&stubScreen{}, nil), 40, 10)
	assert.Contains(t, m.frame(), "Terminal too small!")
}

func TestViewUsesAltScreen(t *testing.T) {
	m := newAppModel(&stubScreen{}, nil)
	assert.True(t, m.View().AltScreen)
	assert.True(t, sized(m, 100, 30).View().AltScreen)
}

func TestCtrlCQuits(t *testing.T) {
	s := &stubScreen{}
	m := newAppModel(s, nil)
	_, cmd := m.Update(tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
	assert.Empty(t, s.msgs, "ctrl+c is not forwarded")
}

func TestMessagesForwardedToActiveScreen(t *testing.T) {
	s := &stubScreen{}
	m := newAppModel(s, nil)
	m.Update(tea.KeyPressMsg{Code: 'a', Text: "a"})
	assert.Len(t, s.msgs, 1)
}

func TestReplaceScreenSwapsActive(t *testing.T) {
	first := &stubScreen{title: "first"}
	second := &stubScreen{title: "second"}
	m := newAppModel(first, nil)
	m.Update(router.ReplaceScreenMsg{Screen: second})

	assert.Equal(t, 1, m.router.Depth())
	assert.Equal(t, "second", m.router.Active().Title())
}

func TestEscPopsOnlyPushedScreens(t *testing.T) {
	base := &stubScreen{title: "base"}
	m := newAppModel(base, nil)

	_, cmd := m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	assert.Len(t, base.msgs, 1, "esc on the root screen is forwarded")
	assert.Nil(t, cmd)

	m.Update(router.PushScreenMsg{Screen: &stubScreen{title: "pushed"}})
	_, cmd = m.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	m.Update(cmd())
	assert.Equal(t, "base", m.router.Active().Title())
}
