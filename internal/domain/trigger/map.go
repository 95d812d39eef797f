package trigger

import (
	"slices"

	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// MapTrigger filters on map category and map id.
// IDs is an allow list, or a deny list when Inverted is set.
type MapTrigger struct {
	Categories []snapshot.MapCategory `json:"categories,omitempty"`
	IDs        []uint32               `json:"ids,omitempty"`
	Inverted   bool                   `json:"inverted,omitempty"`
}

// IsEmpty reports whether the trigger matches every map
func (t *MapTrigger) IsEmpty() bool {
	return len(t.Categories) == 0 && len(t.IDs) == 0
}

// IsMet evaluates the trigger. A missing map only satisfies an empty trigger.
func (t *MapTrigger) IsMet(m *snapshot.Map) bool {
	if t.IsEmpty() {
		return true
	}
	if m == nil {
		return false
	}
	if len(t.Categories) > 0 && !slices.Contains(t.Categories, m.Category) {
		return false
	}
	if len(t.IDs) > 0 && slices.Contains(t.IDs, m.ID) == t.Inverted {
		return false
	}
	return true
}

// Clone returns a deep copy
func (t MapTrigger) Clone() MapTrigger {
	t.Categories = slices.Clone(t.Categories)
	t.IDs = slices.Clone(t.IDs)
	return t
}
