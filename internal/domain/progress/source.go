package progress

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// SourceKind names where progress comes from
type SourceKind string

const (
	SourceInherit           SourceKind = "inherit"
	SourceAlways            SourceKind = "always"
	SourceBuff              SourceKind = "buff"
	SourceAbility           SourceKind = "ability"
	SourceSkillbarSlot      SourceKind = "skillbar_slot"
	SourceHealth            SourceKind = "health"
	SourceBarrier           SourceKind = "barrier"
	SourceEndurance         SourceKind = "endurance"
	SourcePrimaryResource   SourceKind = "primary_resource"
	SourceSecondaryResource SourceKind = "secondary_resource"
)

// AllSourceKinds lists every source kind in menu order
var AllSourceKinds = [...]SourceKind{
	SourceInherit,
	SourceAlways,
	SourceBuff,
	SourceAbility,
	SourceSkillbarSlot,
	SourceHealth,
	SourceBarrier,
	SourceEndurance,
	SourcePrimaryResource,
	SourceSecondaryResource,
}

var resourceChannels = map[SourceKind]snapshot.ResourceChannel{
	SourceHealth:            snapshot.ResourceHealth,
	SourceBarrier:           snapshot.ResourceBarrier,
	SourceEndurance:         snapshot.ResourceEndurance,
	SourcePrimaryResource:   snapshot.ResourcePrimary,
	SourceSecondaryResource: snapshot.ResourceSecondary,
}

// Source describes where a node's progress comes from.
// IDs is used by buff and ability sources, Slot by skill bar slot sources.
type Source struct {
	Kind SourceKind
	IDs  []uint32
	Slot snapshot.Slot
}

// Inherit uses the parent's active
func Inherit() Source { return Source{Kind: SourceInherit} }

// Always is permanently active
func Always() Source { return Source{Kind: SourceAlways} }

// Buffs merges one or more buff ids
func Buffs(ids ...uint32) Source { return Source{Kind: SourceBuff, IDs: ids} }

// Abilities picks the first ability id found on the skill bar
func Abilities(ids ...uint32) Source { return Source{Kind: SourceAbility, IDs: ids} }

// SkillbarSlot tracks whatever ability sits in a slot
func SkillbarSlot(slot snapshot.Slot) Source { return Source{Kind: SourceSkillbarSlot, Slot: slot} }

// ResourceSource tracks one of the fixed resource channels
func ResourceSource(kind SourceKind) Source { return Source{Kind: kind} }

// UsesIDs reports whether the kind is configured with ids
func (s SourceKind) UsesIDs() bool {
	return s == SourceBuff || s == SourceAbility
}

// IsResource reports whether the kind reads a resource channel
func (s SourceKind) IsResource() bool {
	_, ok := resourceChannels[s]
	return ok
}

// Clone returns a copy that does not share the id slice
func (s Source) Clone() Source {
	if s.IDs != nil {
		s.IDs = append([]uint32(nil), s.IDs...)
	}
	return s
}

// Resolve turns the snapshot into the active value for this source.
// A nil result means nothing is active and the node renders as inactive.
func (s Source) Resolve(snap *snapshot.Snapshot, parent *Active) *Active {
	switch s.Kind {
	case SourceInherit:
		return cloneActive(parent)
	case SourceAlways:
		dummy := Dummy()
		return &dummy
	case SourceBuff:
		return s.resolveBuffs(snap)
	case SourceAbility:
		return s.resolveAbility(snap)
	case SourceSkillbarSlot:
		if snap == nil {
			return nil
		}
		ability, ok := snap.Skillbar.Slot(s.Slot)
		if !ok {
			return nil
		}
		active := NewAbility(ability, snap.Now)
		return &active
	}

	if channel, ok := resourceChannels[s.Kind]; ok {
		if snap == nil {
			return nil
		}
		res, ok := snap.Resources.Get(channel)
		if !ok {
			return nil
		}
		active := NewResource(res.Current, res.Max)
		return &active
	}
	return nil
}

// resolveBuffs merges all listed ids: stacks are summed, apply and runout take the maximum.
// Missing or expired buffs contribute nothing; the result is a zeroed buff, never nil,
// unless the buff table itself is unavailable.
func (s Source) resolveBuffs(snap *snapshot.Snapshot) *Active {
	if !snap.HasBuffs() {
		return nil
	}

	merged := Active{Kind: KindBuff}
	if len(s.IDs) > 0 {
		merged.ID = s.IDs[0]
	}
	for _, buffID := range s.IDs {
		buff, ok := snap.Buffs[buffID]
		if !ok || buff.IsExpired(snap.Now) {
			continue
		}
		merged.Stacks += buff.Stacks
		merged.ApplyTime = max(merged.ApplyTime, buff.ApplyTime)
		merged.RunoutTime = max(merged.RunoutTime, buff.RunoutTime)
	}
	return &merged
}

// resolveAbility returns the first id with a skill bar entry, in id order
func (s Source) resolveAbility(snap *snapshot.Snapshot) *Active {
	if snap == nil || snap.Skillbar == nil {
		return nil
	}
	for _, abilityID := range s.IDs {
		if ability, ok := snap.Skillbar.Find(abilityID); ok {
			active := NewAbility(ability, snap.Now)
			return &active
		}
	}
	return nil
}

func cloneActive(a *Active) *Active {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}
