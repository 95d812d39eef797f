package element

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/trigger"
)

// Common is the identity, placement and trigger block every node carries.
// ID is not persisted; it is assigned on construction and regenerated on clone and load.
type Common struct {
	ID      id.ID
	Enabled bool
	Name    string
	Anchor  draw.Anchor
	Pos     draw.Vec2
	Opacity float32
	Trigger trigger.ProgressTrigger
	Filter  trigger.FilterTrigger

	visible bool
}

// NewCommon creates an enabled, fully opaque node anchored to its parent that inherits its parent's active
func NewCommon(name string) Common {
	return Common{
		ID:      id.Next(),
		Enabled: true,
		Name:    name,
		Anchor:  draw.AnchorParent,
		Opacity: 1,
		Trigger: trigger.NewProgressTrigger(),
	}
}

// Update evaluates the node's filter and progress trigger and records visibility
func (c *Common) Update(ctx *frame.Context, parent *progress.Active) bool {
	filtered := c.Filter.Update(ctx, c.ID)
	met := c.Trigger.Update(ctx, c.ID, parent)
	c.visible = c.Enabled && filtered && met
	return c.visible
}

// IsVisible returns the visibility decided by the last Update
func (c *Common) IsVisible() bool {
	return c.visible
}

// Active returns the node's resolved active, nil when nothing is active
func (c *Common) Active() *progress.Active {
	return c.Trigger.Active()
}

// Clone returns a copy with a fresh id and reset caches
func (c *Common) Clone() Common {
	return Common{
		ID:      id.Next(),
		Enabled: c.Enabled,
		Name:    c.Name,
		Anchor:  c.Anchor,
		Pos:     c.Pos,
		Opacity: c.Opacity,
		Trigger: c.Trigger.Clone(),
		Filter:  c.Filter.Clone(),
	}
}

// DisplayName is the name shown in tree views
func (c *Common) DisplayName(t Type) string {
	if c.Name != "" {
		return c.Name
	}
	return "Unnamed " + string(t)
}
