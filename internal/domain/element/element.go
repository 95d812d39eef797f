package element

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
)

// Element is one node of the tree
type Element struct {
	Common
	Kind Kind
}

// New creates an element of the given kind with default settings
func New(name string, kind Kind) Element {
	return Element{Common: NewCommon(name), Kind: kind}
}

// Update resolves the node and, when visible, its kind and children
func (e *Element) Update(ctx *frame.Context, parent *progress.Active) {
	if !e.Common.Update(ctx, parent) {
		return
	}

	active := e.Active()
	switch k := e.Kind.(type) {
	case *Group:
		k.update(ctx, active)
	case *IconElement:
		k.update(ctx, active)
	case *IconList:
		k.update(ctx, e.ID, active)
	case *Text:
		k.update(ctx, active)
	case *Bar:
		k.update(ctx, active)
	}
}

// Render draws the node when visible
func (e *Element) Render(rc *RenderContext) {
	if !e.IsVisible() {
		return
	}

	rc = rc.enter(&e.Common)
	active := e.Active()
	switch k := e.Kind.(type) {
	case *Group:
		k.render(rc, &e.Common)
	case *IconElement:
		k.render(rc, &e.Common, active)
	case *IconList:
		k.render(rc, &e.Common)
	case *Text:
		k.render(rc, &e.Common, active)
	case *Bar:
		k.render(rc, &e.Common, active)
	}
}

// Clone deep copies the element. The copy and all its descendants get fresh ids.
func (e *Element) Clone() Element {
	return Element{
		Common: e.Common.Clone(),
		Kind:   cloneKind(e.Kind),
	}
}

// Type returns the kind tag
func (e *Element) Type() Type {
	return e.Kind.Type()
}

// Members returns the group's member slice, nil for other kinds
func (e *Element) Members() *[]Element {
	if g, ok := e.Kind.(*Group); ok {
		return &g.Members
	}
	return nil
}
