// Package frame carries the per-frame state shared by every node during one update pass.
package frame

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// Context is built once per frame by the runtime and passed down the tree
type Context struct {
	// Now is the snapshot timestamp in milliseconds
	Now uint32

	Snapshot *snapshot.Snapshot

	// Updates are the categories considered dirty this frame. The periodic tick marks everything.
	Updates snapshot.Changes

	// Edit is nil outside the editor
	Edit *EditState
}

// NewContext builds a frame context for a snapshot
func NewContext(snap *snapshot.Snapshot, updates snapshot.Changes, edit *EditState) *Context {
	ctx := &Context{
		Snapshot: snap,
		Updates:  updates,
		Edit:     edit,
	}
	if snap != nil {
		ctx.Now = snap.Now
	}
	return ctx
}

// HasUpdate reports whether any of the given categories are dirty
func (c *Context) HasUpdate(flags snapshot.Changes) bool {
	return c.Updates.Has(flags)
}

// HasAnyUpdate reports whether anything is dirty
func (c *Context) HasAnyUpdate() bool {
	return c.Updates != snapshot.ChangedNone
}

// HasUpdateOrEdit reports whether cached values must be recomputed this frame
func (c *Context) HasUpdateOrEdit() bool {
	return c.HasAnyUpdate() || c.Edit.IsEditing()
}

// Player returns the snapshot player, nil without a snapshot
func (c *Context) Player() *snapshot.Player {
	if c.Snapshot == nil {
		return nil
	}
	return &c.Snapshot.Player
}

// Map returns the snapshot map, nil without a snapshot
func (c *Context) Map() *snapshot.Map {
	if c.Snapshot == nil {
		return nil
	}
	return &c.Snapshot.Map
}
