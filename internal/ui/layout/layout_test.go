package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 40))
	assert.True(t, IsTooSmall(120, 23))
	assert.False(t, IsTooSmall(80, 24))
}

func TestHeaderShowsTitleAndCount(t *testing.T) {
	h := RenderHeader("Lesson 2.1: GROUP BY", 4, 13, 100)
	assert.Contains(t, h, "SQL Coach")
	assert.Contains(t, h, "Lesson 2.1: GROUP BY")
	assert.Contains(t, h, "✓ 4/13")

	h = RenderHeader("Welcome", 0, 0, 100)
	assert.NotContains(t, h, "✓")
}

func TestFooterDropsOverflowingHints(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Run"},
		{Key: "F2", Description: "Lessons"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	wide := RenderFooter(hints, 100)
	assert.Contains(t, wide, "Quit")

	narrow := RenderFooter(hints, 24)
	assert.Contains(t, narrow, "Run")
	assert.NotContains(t, narrow, "Quit")
}

func TestFrameHasExactHeight(t *testing.T) {
	header := RenderHeader("x", 1, 2, 80)
	footer := RenderFooter([]KeyHint{{Key: "q", Description: "Quit"}}, 80)

	short := RenderFrame(header, "one\ntwo", footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(short))

	long := RenderFrame(header, strings.Repeat("row\n", 100), footer, 80, 24)
	assert.Equal(t, 24, lipgloss.Height(long))
	assert.Contains(t, long, "Quit")
}
