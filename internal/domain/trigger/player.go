// Package trigger evaluates whether a node should be visible: progress against a threshold,
// player build and gear, and the current map.
package trigger

import (
	"slices"

	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// CombatState filters on whether the player is fighting
type CombatState string

const (
	CombatAny CombatState = "any"
	CombatIn  CombatState = "in"
	CombatOut CombatState = "out"
)

// AllCombatStates lists every combat state
var AllCombatStates = [...]CombatState{CombatAny, CombatIn, CombatOut}

// Matches reports whether the combat flag satisfies the state
func (c CombatState) Matches(inCombat bool) bool {
	switch c {
	case CombatIn:
		return inCombat
	case CombatOut:
		return !inCombat
	}
	return true
}

// TraitRequirement requires a trait to be selected, or to be absent when Present is false
type TraitRequirement struct {
	ID      uint32 `json:"id"`
	Present bool   `json:"present"`
}

// PlayerTrigger filters on build, gear and combat. Empty lists match anything.
type PlayerTrigger struct {
	Combat          CombatState           `json:"combat,omitempty"`
	Professions     []snapshot.Profession `json:"professions,omitempty"`
	Specializations []uint32              `json:"specializations,omitempty"`
	Traits          []TraitRequirement    `json:"traits,omitempty"`
	Mounts          []snapshot.Mount      `json:"mounts,omitempty"`
	Weapons         []snapshot.WeaponType `json:"weapons,omitempty"`
}

// IsEmpty reports whether the trigger matches every player
func (t *PlayerTrigger) IsEmpty() bool {
	return (t.Combat == "" || t.Combat == CombatAny) &&
		len(t.Professions) == 0 &&
		len(t.Specializations) == 0 &&
		len(t.Traits) == 0 &&
		len(t.Mounts) == 0 &&
		len(t.Weapons) == 0
}

// IsMet evaluates the trigger. A missing player only satisfies an empty trigger.
func (t *PlayerTrigger) IsMet(player *snapshot.Player) bool {
	if t.IsEmpty() {
		return true
	}
	if player == nil {
		return false
	}

	if !t.Combat.Matches(player.InCombat) {
		return false
	}
	if len(t.Professions) > 0 && !slices.Contains(t.Professions, player.Profession) {
		return false
	}
	if len(t.Specializations) > 0 && !slices.ContainsFunc(t.Specializations, player.HasSpecialization) {
		return false
	}
	for _, req := range t.Traits {
		if player.HasTrait(req.ID) != req.Present {
			return false
		}
	}
	if len(t.Mounts) > 0 && !slices.Contains(t.Mounts, player.Mount) {
		return false
	}
	if len(t.Weapons) > 0 && !slices.ContainsFunc(t.Weapons, player.HasWeapon) {
		return false
	}
	return true
}

// Clone returns a deep copy
func (t PlayerTrigger) Clone() PlayerTrigger {
	t.Professions = slices.Clone(t.Professions)
	t.Specializations = slices.Clone(t.Specializations)
	t.Traits = slices.Clone(t.Traits)
	t.Mounts = slices.Clone(t.Mounts)
	t.Weapons = slices.Clone(t.Weapons)
	return t
}
