package element

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/props"
)

// Bar fills a rectangle by the active's progress.
// Progress between the lower and upper bound is stretched over the full bar.
type Bar struct {
	ProgressValue progress.Value
	LowerBound    float32
	UpperBound    float32
	Size          draw.Vec2
	Align         draw.Align
	Direction     draw.Direction

	// Ticks are marker positions in percent of the unstretched progress
	Ticks []float32

	Props props.Props[BarStyle, BarStylePartial]
}

func NewBar() *Bar {
	return &Bar{
		ProgressValue: progress.ValuePrimary,
		LowerBound:    0,
		UpperBound:    1,
		Size:          draw.Vec2{128, 16},
		Align:         draw.AlignCenter,
		Direction:     draw.DirRight,
		Props:         props.New[BarStyle, BarStylePartial](defaultBarStyle()),
	}
}

func (b *Bar) update(ctx *frame.Context, active *progress.Active) {
	b.Props.Update(ctx, active)
}

// Normalize maps a progress into the bar's bounds, clamped to [0,1]
func (b *Bar) Normalize(p float32) float32 {
	if b.UpperBound <= b.LowerBound {
		return clamp01(p)
	}
	return clamp01((p - b.LowerBound) / (b.UpperBound - b.LowerBound))
}

func (b *Bar) render(rc *RenderContext, common *Common, active *progress.Active) {
	style := b.Props.Current()
	min := b.Align.Offset(rc.Origin(), b.Size)
	max := min.Add(b.Size)

	rc.Surface.Rect(min, max, rc.color(style.Background))

	if active != nil {
		if fill, ok := active.Fill(b.ProgressValue, rc.Now); ok {
			fillMin, fillMax := b.Direction.Split(min, max, b.Normalize(fill))
			rc.Surface.Rect(fillMin, fillMax, rc.color(style.Fill))
		}
	}

	for _, tick := range b.Ticks {
		at := b.Normalize(tick / 100)
		if at <= 0 || at >= 1 {
			continue
		}
		tickMin, tickMax := b.tickRect(min, max, at, style.TickSize)
		rc.Surface.Rect(tickMin, tickMax, rc.color(style.TickColor))
	}

	if style.BorderSize > 0 {
		rc.Surface.RectOutline(min, max, rc.color(style.BorderColor), style.BorderSize)
	}
	rc.highlight(common, min, max)
}

// tickRect is a line across the bar at the given fraction of its length
func (b *Bar) tickRect(min, max draw.Vec2, at, size float32) (draw.Vec2, draw.Vec2) {
	switch b.Direction {
	case draw.DirLeft:
		x := max[0] - (max[0]-min[0])*at
		return draw.Vec2{x - size/2, min[1]}, draw.Vec2{x + size/2, max[1]}
	case draw.DirUp:
		y := max[1] - (max[1]-min[1])*at
		return draw.Vec2{min[0], y - size/2}, draw.Vec2{max[0], y + size/2}
	case draw.DirDown:
		y := min[1] + (max[1]-min[1])*at
		return draw.Vec2{min[0], y - size/2}, draw.Vec2{max[0], y + size/2}
	}
	x := min[0] + (max[0]-min[0])*at
	return draw.Vec2{x - size/2, min[1]}, draw.Vec2{x + size/2, max[1]}
}

func (b *Bar) clone() *Bar {
	clone := *b
	if b.Ticks != nil {
		clone.Ticks = append([]float32(nil), b.Ticks...)
	}
	clone.Props = b.Props.Clone()
	return &clone
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
