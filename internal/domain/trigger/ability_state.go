package trigger

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// AbilityStateTrigger filters an ability active on its transient state flags.
// Non-ability actives only pass when nothing is required.
type AbilityStateTrigger struct {
	Require snapshot.StateFlags
	Exclude snapshot.StateFlags
}

// IsEmpty reports whether the trigger matches every active
func (t AbilityStateTrigger) IsEmpty() bool {
	return t.Require == 0 && t.Exclude == 0
}

// IsMet evaluates the trigger against the resolved active
func (t AbilityStateTrigger) IsMet(active *progress.Active) bool {
	if t.IsEmpty() {
		return true
	}
	if active == nil || active.Kind != progress.KindAbility {
		return t.Require == 0
	}
	return active.State.Has(t.Require) && active.State&t.Exclude == 0
}
