package frame

import (
	"slices"

	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
)

// EditState tracks the selected element and its ancestry.
// The ancestry is rebuilt by the next tree traversal after the selection changes.
type EditState struct {
	selected id.ID
	parents  []id.ID
	allowed  bool

	// DuringCombat keeps editing enabled while the player is in combat
	DuringCombat bool
}

// NewEditState creates an edit state with nothing selected
func NewEditState(duringCombat bool) *EditState {
	return &EditState{DuringCombat: duringCombat}
}

// Select toggles the selection: the selected id deselects, any other id replaces it
func (e *EditState) Select(node id.ID) {
	e.parents = nil
	if e.selected == node {
		e.selected = id.None
		return
	}
	e.selected = node
}

// Clear drops the selection
func (e *EditState) Clear() {
	e.selected = id.None
	e.parents = nil
}

// Selected returns the selected id, id.None when nothing is selected
func (e *EditState) Selected() id.ID {
	if e == nil {
		return id.None
	}
	return e.selected
}

// IsSelected reports whether the node is the selection
func (e *EditState) IsSelected(node id.ID) bool {
	return e != nil && !e.selected.IsNone() && e.selected == node
}

// Parents returns the selection's ancestors, outermost first
func (e *EditState) Parents() []id.ID {
	if e == nil {
		return nil
	}
	return e.parents
}

// Visit is called by tree traversal for every node with the ids of its ancestors.
// Visiting the selection records its ancestry.
func (e *EditState) Visit(node id.ID, ancestors []id.ID) {
	if e == nil || node != e.selected || e.selected.IsNone() {
		return
	}
	e.parents = slices.Clone(ancestors)
}

// IsEditedOrParent reports whether the node is the selection or one of its ancestors
func (e *EditState) IsEditedOrParent(node id.ID) bool {
	if e == nil || e.selected.IsNone() {
		return false
	}
	return node == e.selected || slices.Contains(e.parents, node)
}

// ResetAllowed must be called once per frame before the policy is applied
func (e *EditState) ResetAllowed() {
	if e != nil {
		e.allowed = false
	}
}

// SetAllowed applies the combat policy for this frame
func (e *EditState) SetAllowed(inCombat bool) {
	if e != nil {
		e.allowed = !inCombat || e.DuringCombat
	}
}

// IsAllowed reports whether editing is permitted this frame
func (e *EditState) IsAllowed() bool {
	return e != nil && e.allowed
}

// IsEditing reports whether editing is permitted and something is selected
func (e *EditState) IsEditing() bool {
	return e.IsAllowed() && !e.selected.IsNone()
}

// ShowPreview reports whether the node renders synthesized preview values
func (e *EditState) ShowPreview(node id.ID) bool {
	return e.IsAllowed() && e.IsEditedOrParent(node)
}
