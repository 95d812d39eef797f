package element

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/props"
)

// IconElement draws a single icon with optional duration overlay and stack count
type IconElement struct {
	Icon         draw.Icon
	Size         draw.Vec2
	ShowDuration bool
	ShowStacks   bool
	Props        props.Props[IconStyle, IconStylePartial]
}

func NewIconElement() *IconElement {
	return &IconElement{
		Size:         draw.Vec2{32, 32},
		ShowDuration: true,
		ShowStacks:   true,
		Props:        props.New[IconStyle, IconStylePartial](defaultIconStyle()),
	}
}

func (i *IconElement) update(ctx *frame.Context, active *progress.Active) {
	i.Props.Update(ctx, active)
}

func (i *IconElement) render(rc *RenderContext, common *Common, active *progress.Active) {
	min, max := renderIcon(rc, i.Icon, rc.Origin(), i.Size, i.Props.Current(), active, i.ShowDuration, i.ShowStacks)
	rc.highlight(common, min, max)
}

func (i *IconElement) clone() *IconElement {
	clone := *i
	clone.Props = i.Props.Clone()
	return &clone
}

// renderIcon draws an icon centered on pos and returns its bounds.
// Timed actives get a dark overlay over the elapsed part.
func renderIcon(
	rc *RenderContext,
	icon draw.Icon,
	pos, size draw.Vec2,
	style IconStyle,
	active *progress.Active,
	showDuration, showStacks bool,
) (draw.Vec2, draw.Vec2) {
	half := size.Scale(0.5 * style.Zoom)
	min, max := pos.Sub(half), pos.Add(half)
	rc.Surface.Icon(icon, min, max, rc.color(style.Tint))

	if active == nil {
		return min, max
	}

	if showDuration && active.IsTimed() && !active.IsInfinite() {
		if fill, ok := active.Fill(progress.ValuePrimary, rc.Now); ok && fill < 1 {
			overlayMin, overlayMax := draw.DirDown.Split(min, max, 1-fill)
			rc.Surface.Rect(overlayMin, overlayMax, rc.color(draw.Color{0, 0, 0, 0.6}))
		}
	}
	if showStacks && active.Kind != progress.KindResource {
		if stacks := active.Intensity(); stacks > 1 {
			text := progress.FormatInt(stacks)
			textSize := rc.Surface.TextSize(text, 1)
			rc.Surface.Text(text, max.Sub(textSize), 1, rc.color(draw.White), true)
		}
	}
	return min, max
}
