package trigger

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
)

// ProgressTrigger resolves a node's active and decides visibility with its threshold
type ProgressTrigger struct {
	Source    progress.Source
	Threshold progress.Threshold
	State     AbilityStateTrigger

	active   *progress.Active
	met      bool
	computed bool
}

// NewProgressTrigger inherits the parent's active and shows while it is present
func NewProgressTrigger() ProgressTrigger {
	return ProgressTrigger{
		Source:    progress.Inherit(),
		Threshold: progress.DefaultThreshold(),
	}
}

// Update resolves the active for this frame and returns whether the node is visible.
// Nodes being edited, and their ancestors, show a synthesized preview and are always visible.
func (t *ProgressTrigger) Update(ctx *frame.Context, node id.ID, parent *progress.Active) bool {
	if ctx.Edit.ShowPreview(node) {
		t.active = progress.Preview(t.Source, parent, ctx.Now)
		t.met = true
		t.computed = false
		return true
	}

	if !t.computed || ctx.HasUpdateOrEdit() {
		t.active = t.Source.Resolve(ctx.Snapshot, parent)
		t.met = t.Threshold.IsMet(t.active, ctx.Now) && t.State.IsMet(t.active)
		t.computed = true
	}
	return t.met
}

// Active returns the active resolved by the last Update, nil when nothing is active
func (t *ProgressTrigger) Active() *progress.Active {
	return t.active
}

// IsMet returns the visibility decided by the last Update
func (t *ProgressTrigger) IsMet() bool {
	return t.met
}

// Clone returns a deep copy with the cache reset
func (t ProgressTrigger) Clone() ProgressTrigger {
	return ProgressTrigger{
		Source:    t.Source.Clone(),
		Threshold: t.Threshold,
		State:     t.State,
	}
}
