package trigger

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// FilterTrigger gates a node on player and map independently of its progress
type FilterTrigger struct {
	Player PlayerTrigger `json:"player"`
	Map    MapTrigger    `json:"map"`

	met      bool
	computed bool
}

// Update re-evaluates the filter when player or map data changed and returns whether it is met.
// Nodes being edited always pass.
func (f *FilterTrigger) Update(ctx *frame.Context, node id.ID) bool {
	if ctx.Edit.ShowPreview(node) {
		return true
	}
	if !f.computed || ctx.HasUpdate(snapshot.ChangedPlayer|snapshot.ChangedMap) {
		f.met = f.Player.IsMet(ctx.Player()) && f.Map.IsMet(ctx.Map())
		f.computed = true
	}
	return f.met
}

// IsMet returns the last evaluated result
func (f *FilterTrigger) IsMet() bool {
	return !f.computed || f.met
}

// Clone returns a deep copy with the cache reset
func (f FilterTrigger) Clone() FilterTrigger {
	return FilterTrigger{Player: f.Player.Clone(), Map: f.Map.Clone()}
}
