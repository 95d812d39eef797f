package element

import (
	"sort"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
)

// Pack is the root of an element tree. Its Common anchor is the screen anchor and its
// elements see the always-on dummy active unless the pack's own trigger says otherwise.
type Pack struct {
	Common
	Layer    int
	Elements []Element
}

// NewPack creates an empty pack anchored at the top left of the screen
func NewPack(name string) Pack {
	common := NewCommon(name)
	common.Anchor = draw.AnchorTopLeft
	return Pack{Common: common}
}

// Update resolves the pack and its visible elements
func (p *Pack) Update(ctx *frame.Context) {
	dummy := progress.Dummy()
	if !p.Common.Update(ctx, &dummy) {
		return
	}
	active := p.Active()
	for i := range p.Elements {
		p.Elements[i].Update(ctx, active)
	}
}

// Render draws the pack's visible elements
func (p *Pack) Render(rc *RenderContext) {
	if !p.IsVisible() {
		return
	}
	rc = rc.enter(&p.Common)
	for i := range p.Elements {
		p.Elements[i].Render(rc)
	}
}

// Clone deep copies the pack with fresh ids throughout
func (p *Pack) Clone() Pack {
	return Pack{
		Common:   p.Common.Clone(),
		Layer:    p.Layer,
		Elements: cloneElements(p.Elements),
	}
}

// Find returns the element with the id anywhere in the pack
func (p *Pack) Find(target id.ID) *Element {
	return Find(p.Elements, target)
}

// Container returns the child slice owned by parent: the pack root for the pack's own id,
// or a group's members. Nil when parent is neither.
func (p *Pack) Container(parent id.ID) *[]Element {
	if parent == p.ID {
		return &p.Elements
	}
	return Container(p.Elements, parent)
}

// Remove detaches the element with the id from wherever it is in the pack
func (p *Pack) Remove(target id.ID) (Element, bool) {
	return Remove(&p.Elements, target)
}

// SortByLayer orders packs for drawing, lower layers first. Equal layers keep their order.
func SortByLayer(packs []*Pack) {
	sort.SliceStable(packs, func(i, j int) bool {
		return packs[i].Layer < packs[j].Layer
	})
}
