// Package terminal renders overlays into a grid of character cells for a terminal preview.
// Screen pixels map onto cells of CellWidth by CellHeight pixels.
package terminal

import (
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/reflow/truncate"
)

// Default cell size in screen pixels
const (
	CellWidth  = 8
	CellHeight = 16
)

type cell struct {
	r     rune
	fg    colorful.Color
	bg    colorful.Color
	hasFg bool
	hasBg bool
}

// Surface is a draw.Surface over a fixed cell grid.
// Alpha blends colors against what is already in the cell; text ignores scale.
type Surface struct {
	cols, rows int
	cells      []cell
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface creates an empty grid
func NewSurface(cols, rows int) *Surface {
	cols, rows = max(cols, 1), max(rows, 1)
	s := &Surface{cols: cols, rows: rows, cells: make([]cell, cols*rows)}
	s.Clear()
	return s
}

// ScreenSize is the screen in pixels the grid covers
func (s *Surface) ScreenSize() draw.Vec2 {
	return draw.Vec2{float32(s.cols * CellWidth), float32(s.rows * CellHeight)}
}

// Clear empties every cell
func (s *Surface) Clear() {
	for i := range s.cells {
		s.cells[i] = cell{r: ' '}
	}
}

func (s *Surface) Icon(icon draw.Icon, min, max draw.Vec2, tint draw.Color) {
	x0, y0, x1, y1, ok := s.span(min, max)
	if !ok {
		return
	}
	s.fill(x0, y0, x1, y1, tint.WithAlpha(0.5))
	s.outline(x0, y0, x1, y1, tint)
	if label := iconLabel(icon); label != 0 {
		s.put((x0+x1)/2, (y0+y1)/2, label, tint)
	}
}

func (s *Surface) Rect(min, max draw.Vec2, c draw.Color) {
	x0, y0, x1, y1, ok := s.span(min, max)
	if !ok {
		return
	}
	s.fill(x0, y0, x1, y1, c)
}

func (s *Surface) RectOutline(min, max draw.Vec2, c draw.Color, _ float32) {
	x0, y0, x1, y1, ok := s.span(min, max)
	if !ok {
		return
	}
	s.outline(x0, y0, x1, y1, c)
}

// Text writes one rune per cell starting at pos, cut at the right edge
func (s *Surface) Text(text string, pos draw.Vec2, _ float32, c draw.Color, _ bool) {
	x, y := s.cellAt(pos)
	if y < 0 || y >= s.rows || x >= s.cols {
		return
	}
	runes := []rune(truncate.String(text, uint(s.cols-max(x, 0))))
	if x < 0 {
		if -x >= len(runes) {
			return
		}
		runes, x = runes[-x:], 0
	}
	for i, r := range runes {
		s.put(x+i, y, r, c)
	}
}

func (s *Surface) TextSize(text string, _ float32) draw.Vec2 {
	return draw.Vec2{float32(len([]rune(text)) * CellWidth), CellHeight}
}

// Plain returns the grid as text without colors
func (s *Surface) Plain() string {
	var b strings.Builder
	for y := 0; y < s.rows; y++ {
		for x := 0; x < s.cols; x++ {
			b.WriteRune(s.cells[y*s.cols+x].r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// String renders the grid with colors. Runs of equally styled cells share one style.
func (s *Surface) String() string {
	var b strings.Builder
	for y := 0; y < s.rows; y++ {
		row := s.cells[y*s.cols : (y+1)*s.cols]
		for start := 0; start < len(row); {
			end := start + 1
			for end < len(row) && sameStyle(row[start], row[end]) {
				end++
			}
			var run strings.Builder
			for _, c := range row[start:end] {
				run.WriteRune(c.r)
			}
			b.WriteString(style(row[start]).Render(run.String()))
			start = end
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func style(c cell) lipgloss.Style {
	st := lipgloss.NewStyle()
	if c.hasFg {
		st = st.Foreground(lipgloss.Color(c.fg.Clamped().Hex()))
	}
	if c.hasBg {
		st = st.Background(lipgloss.Color(c.bg.Clamped().Hex()))
	}
	return st
}

func sameStyle(a, b cell) bool {
	return a.hasFg == b.hasFg && a.hasBg == b.hasBg &&
		(!a.hasFg || a.fg.Hex() == b.fg.Hex()) &&
		(!a.hasBg || a.bg.Hex() == b.bg.Hex())
}

func (s *Surface) cellAt(pos draw.Vec2) (int, int) {
	return floorDiv(pos[0], CellWidth), floorDiv(pos[1], CellHeight)
}

// span converts a pixel rect into an inclusive cell range clipped to the grid
func (s *Surface) span(lo, hi draw.Vec2) (x0, y0, x1, y1 int, ok bool) {
	if hi[0] <= lo[0] || hi[1] <= lo[1] {
		return 0, 0, 0, 0, false
	}
	x0, y0 = s.cellAt(lo)
	x1, y1 = s.cellAt(draw.Vec2{hi[0] - 0.001, hi[1] - 0.001})
	x0, y0 = max(x0, 0), max(y0, 0)
	x1, y1 = min(x1, s.cols-1), min(y1, s.rows-1)
	return x0, y0, x1, y1, x0 <= x1 && y0 <= y1
}

func (s *Surface) fill(x0, y0, x1, y1 int, c draw.Color) {
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			cl := &s.cells[y*s.cols+x]
			cl.bg = blend(cl.bg, cl.hasBg, c)
			cl.hasBg = true
		}
	}
}

func (s *Surface) outline(x0, y0, x1, y1 int, c draw.Color) {
	for x := x0; x <= x1; x++ {
		s.put(x, y0, '─', c)
		s.put(x, y1, '─', c)
	}
	for y := y0; y <= y1; y++ {
		s.put(x0, y, '│', c)
		s.put(x1, y, '│', c)
	}
	s.put(x0, y0, '┌', c)
	s.put(x1, y0, '┐', c)
	s.put(x0, y1, '└', c)
	s.put(x1, y1, '┘', c)
}

func (s *Surface) put(x, y int, r rune, c draw.Color) {
	if x < 0 || y < 0 || x >= s.cols || y >= s.rows || c[3] <= 0 {
		return
	}
	cl := &s.cells[y*s.cols+x]
	cl.r = r
	cl.fg = toColorful(c)
	cl.hasFg = true
}

// blend mixes c over the existing color by its alpha; over nothing it scales toward black
func blend(under colorful.Color, has bool, c draw.Color) colorful.Color {
	if !has {
		under = colorful.Color{}
	}
	alpha := float64(c[3])
	if alpha >= 1 {
		return toColorful(c)
	}
	return under.BlendRgb(toColorful(c), clamp01(alpha))
}

func toColorful(c draw.Color) colorful.Color {
	return colorful.Color{R: float64(c[0]), G: float64(c[1]), B: float64(c[2])}
}

func iconLabel(icon draw.Icon) rune {
	if icon.IsEmpty() {
		return 0
	}
	for _, r := range strings.ToUpper(filepath.Base(icon.Path)) {
		return r
	}
	return 0
}

func floorDiv(v float32, size int) int {
	n := int(v) / size
	if v < 0 && float32(n*size) != v {
		n--
	}
	return n
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
