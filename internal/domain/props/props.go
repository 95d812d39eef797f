// Package props implements conditional properties: a base value plus an ordered list of
// conditions whose partial overrides apply on top of it while their trigger is met.
package props

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
)

// Patch is a partial of T where every field is optional. Apply copies only the set fields.
type Patch[T any, P any] interface {
	Apply(*T)
	Clone() P
}

// Condition overrides properties while its trigger is met
type Condition[T any, P Patch[T, P]] struct {
	Trigger    ConditionTrigger `json:"trigger"`
	Properties P                `json:"properties"`
}

// Clone returns a deep copy
func (c Condition[T, P]) Clone() Condition[T, P] {
	return Condition[T, P]{
		Trigger:    c.Trigger.Clone(),
		Properties: c.Properties.Clone(),
	}
}

// Props is a base value with conditional overrides. Current is the only read path.
type Props[T any, P Patch[T, P]] struct {
	Base       T
	Conditions []Condition[T, P]

	current  T
	computed bool
}

// New creates props with a base value and no conditions
func New[T any, P Patch[T, P]](base T) Props[T, P] {
	return Props[T, P]{Base: base}
}

// Update recomputes the current value on dirty frames and on first use.
// Conditions apply in list order, so later conditions win per field.
func (p *Props[T, P]) Update(ctx *frame.Context, active *progress.Active) {
	if p.computed && !ctx.HasUpdateOrEdit() {
		return
	}

	current := p.Base
	for i := range p.Conditions {
		if p.Conditions[i].Trigger.IsMet(ctx, active) {
			p.Conditions[i].Properties.Apply(&current)
		}
	}
	p.current = current
	p.computed = true
}

// Current returns the value computed by the last Update, the base before the first one
func (p *Props[T, P]) Current() T {
	if !p.computed {
		return p.Base
	}
	return p.current
}

// Invalidate forces the next Update to recompute
func (p *Props[T, P]) Invalidate() {
	p.computed = false
}

// Clone returns a deep copy with the cache reset
func (p Props[T, P]) Clone() Props[T, P] {
	clone := Props[T, P]{Base: p.Base}
	if p.Conditions != nil {
		clone.Conditions = make([]Condition[T, P], len(p.Conditions))
		for i, c := range p.Conditions {
			clone.Conditions[i] = c.Clone()
		}
	}
	return clone
}
