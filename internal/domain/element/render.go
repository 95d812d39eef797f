package element

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
)

// RenderContext carries the draw target and the accumulated position and opacity down the tree
type RenderContext struct {
	Surface draw.Surface
	Screen  draw.Vec2
	Now     uint32
	Edit    *frame.EditState

	// Pretty formats numbers in their short form
	Pretty bool

	origin  draw.Vec2
	opacity float32
}

// NewRenderContext starts rendering at the top left of the screen at full opacity
func NewRenderContext(surface draw.Surface, screen draw.Vec2, now uint32, edit *frame.EditState) *RenderContext {
	return &RenderContext{
		Surface: surface,
		Screen:  screen,
		Now:     now,
		Edit:    edit,
		Pretty:  true,
		opacity: 1,
	}
}

// Origin is the position children are placed relative to
func (r *RenderContext) Origin() draw.Vec2 {
	return r.origin
}

// Opacity is the accumulated opacity
func (r *RenderContext) Opacity() float32 {
	return r.opacity
}

// enter returns a child context positioned for the node
func (r *RenderContext) enter(c *Common) *RenderContext {
	child := *r
	child.origin = c.Anchor.Pos(r.Screen, r.origin).Add(c.Pos)
	child.opacity = r.opacity * c.Opacity
	return &child
}

// color applies the accumulated opacity
func (r *RenderContext) color(c draw.Color) draw.Color {
	return c.WithAlpha(r.opacity)
}

// highlight outlines the node when it is selected in the editor
func (r *RenderContext) highlight(c *Common, min, max draw.Vec2) {
	if r.Edit.IsAllowed() && r.Edit.IsSelected(c.ID) {
		r.Surface.RectOutline(min, max, draw.Highlight, 2)
	}
}
