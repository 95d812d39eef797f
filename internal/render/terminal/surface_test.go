package terminal

import (
	"strings"
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(s *Surface) []string {
	return strings.Split(strings.TrimSuffix(s.Plain(), "\n"), "\n")
}

func TestSurface_Empty(t *testing.T) {
	s := NewSurface(10, 3)
	got := lines(s)
	require.Len(t, got, 3)
	for _, line := range got {
		assert.Equal(t, strings.Repeat(" ", 10), line)
	}
	assert.Equal(t, draw.Vec2{80, 48}, s.ScreenSize())
}

func TestSurface_Text(t *testing.T) {
	s := NewSurface(10, 3)

	s.Text("hello", draw.Vec2{16, 16}, 1, draw.White, true)
	s.Text("abcdefgh", draw.Vec2{56, 32}, 1, draw.White, false)
	s.Text("xyz", draw.Vec2{-8, 0}, 1, draw.White, false)
	s.Text("gone", draw.Vec2{0, 100}, 1, draw.White, false)

	got := lines(s)
	assert.Equal(t, "yz        ", got[0])
	assert.Equal(t, "  hello   ", got[1])
	assert.Equal(t, "       abc", got[2], "cut at the right edge")

	assert.Contains(t, s.String(), "hello")
	assert.Equal(t, draw.Vec2{40, 16}, s.TextSize("hello", 3))
}

func TestSurface_Outline(t *testing.T) {
	s := NewSurface(6, 3)
	s.RectOutline(draw.Vec2{0, 0}, draw.Vec2{32, 48}, draw.Highlight, 2)

	got := lines(s)
	assert.Equal(t, "┌──┐  ", got[0])
	assert.Equal(t, "│  │  ", got[1])
	assert.Equal(t, "└──┘  ", got[2])
}

func TestSurface_RectBlends(t *testing.T) {
	s := NewSurface(4, 2)
	s.Rect(draw.Vec2{0, 0}, draw.Vec2{16, 16}, draw.Color{1, 1, 1, 0.5})

	c := s.cells[0]
	require.True(t, c.hasBg)
	assert.InDelta(t, 0.5, c.bg.R, 0.01)
	assert.False(t, s.cells[2].hasBg, "outside the rect")

	s.Rect(draw.Vec2{0, 0}, draw.Vec2{8, 16}, draw.Color{1, 0, 0, 1})
	assert.InDelta(t, 1.0, s.cells[0].bg.R, 0.01)
	assert.InDelta(t, 0.0, s.cells[0].bg.G, 0.01, "opaque colors replace")

	s.Rect(draw.Vec2{10, 10}, draw.Vec2{5, 5}, draw.White)
	s.Clear()
	assert.False(t, s.cells[0].hasBg)
}

func TestSurface_Icon(t *testing.T) {
	s := NewSurface(5, 3)
	s.Icon(draw.Icon{Source: draw.IconFile, Path: "icons/might.png"}, draw.Vec2{0, 0}, draw.Vec2{24, 48}, draw.White)

	got := lines(s)
	assert.Equal(t, "┌─┐  ", got[0])
	assert.Equal(t, "│M│  ", got[1])
	assert.Equal(t, "└─┘  ", got[2])
}

func TestFloorDiv(t *testing.T) {
	assert.Equal(t, 0, floorDiv(7.9, 8))
	assert.Equal(t, 1, floorDiv(8, 8))
	assert.Equal(t, -1, floorDiv(-0.5, 8))
	assert.Equal(t, -1, floorDiv(-8, 8))
	assert.Equal(t, -2, floorDiv(-9, 8))
}
