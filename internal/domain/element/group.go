package element

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
)

// Group positions its members relative to itself and passes them its active
type Group struct {
	Members []Element
}

func NewGroup() *Group {
	return &Group{}
}

func (g *Group) update(ctx *frame.Context, active *progress.Active) {
	for i := range g.Members {
		g.Members[i].Update(ctx, active)
	}
}

func (g *Group) render(rc *RenderContext, common *Common) {
	for i := range g.Members {
		g.Members[i].Render(rc)
	}
	origin := rc.Origin()
	rc.highlight(common, origin.Sub(draw.Vec2{4, 4}), origin.Add(draw.Vec2{4, 4}))
}

func (g *Group) clone() *Group {
	return &Group{Members: cloneElements(g.Members)}
}

func cloneElements(elements []Element) []Element {
	if elements == nil {
		return nil
	}
	clones := make([]Element, len(elements))
	for i := range elements {
		clones[i] = elements[i].Clone()
	}
	return clones
}
