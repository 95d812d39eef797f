// Package simulate produces synthetic snapshots so the overlay can run without the game.
// Given the same scenario and roller seed it replays the same snapshots for the same timestamps.
package simulate

import (
	"log"
	"maps"
	"slices"

	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// Simulator turns timestamps into snapshots and flags what changed since the previous one
type Simulator struct {
	scenario Scenario

	buffOffsets     []uint32
	abilityOffsets  []uint32
	resourceOffsets []uint32

	prev *snapshot.Snapshot
}

// New creates a simulator. Each cycle gets a random phase offset so cycles do not line up.
// A nil roller leaves every offset at zero.
func New(scenario Scenario, roller Roller) *Simulator {
	s := &Simulator{scenario: scenario}

	s.buffOffsets = make([]uint32, len(scenario.Buffs))
	for i, b := range scenario.Buffs {
		s.buffOffsets[i] = offset(roller, b.Period)
	}
	s.abilityOffsets = make([]uint32, len(scenario.Abilities))
	for i, a := range scenario.Abilities {
		s.abilityOffsets[i] = offset(roller, a.Recharge+a.Ready)
	}
	s.resourceOffsets = make([]uint32, len(scenario.Resources))
	for i, r := range scenario.Resources {
		s.resourceOffsets[i] = offset(roller, r.Period)
	}

	log.Printf("[SIM] Scenario with %d buffs, %d abilities, %d resources",
		len(scenario.Buffs), len(scenario.Abilities), len(scenario.Resources))
	return s
}

func offset(roller Roller, period uint32) uint32 {
	if roller == nil || period == 0 {
		return 0
	}
	return uint32(roller.IntN(int(period)))
}

// Snapshot builds the snapshot for now. Changed is relative to the previous call;
// the first call reports everything changed.
func (s *Simulator) Snapshot(now uint32) *snapshot.Snapshot {
	snap := &snapshot.Snapshot{
		Now:       now,
		Buffs:     s.buffs(now),
		Skillbar:  s.skillbar(now),
		Resources: s.resources(now),
		Player:    s.player(now),
		Map:       s.currentMap(now),
	}
	snap.Changed = changes(s.prev, snap)
	s.prev = snap
	return snap
}

func (s *Simulator) buffs(now uint32) snapshot.Buffs {
	buffs := snapshot.Buffs{}
	for i, b := range s.scenario.Buffs {
		if b.Period == 0 || b.Duration == 0 {
			continue
		}
		phase := (now + s.buffOffsets[i]) % b.Period
		if phase >= b.Duration {
			continue
		}

		applied := uint32(0)
		if now >= phase {
			applied = now - phase
		}
		runout := applied + b.Duration
		if b.Infinite {
			runout = snapshot.MaxTime
		}
		buffs[b.ID] = snapshot.Buff{
			Stacks:     b.MaxStacks - uint32(uint64(phase)*uint64(b.MaxStacks)/uint64(b.Duration)),
			ApplyTime:  applied,
			RunoutTime: runout,
		}
	}
	return buffs
}

func (s *Simulator) skillbar(now uint32) *snapshot.Skillbar {
	bar := &snapshot.Skillbar{Slots: make(map[snapshot.Slot]snapshot.Ability, len(s.scenario.Abilities))}
	for i, a := range s.scenario.Abilities {
		ability := snapshot.Ability{ID: a.ID, Ammo: a.Ammo, Recharge: a.Recharge}

		cycle := a.Recharge + a.Ready
		if cycle > 0 {
			phase := (now + s.abilityOffsets[i]) % cycle
			if phase < a.Recharge {
				remaining := a.Recharge - phase
				ability.RechargeRemaining = remaining
				if a.Ammo > 1 {
					ability.Ammo = a.Ammo - 1
					ability.AmmoRecharge = a.Recharge
					ability.AmmoRechargeRemaining = remaining
				} else {
					ability.Ammo = 0
				}
			}
		}
		bar.Slots[a.Slot] = ability
	}
	return bar
}

func (s *Simulator) resources(now uint32) snapshot.Resources {
	resources := make(snapshot.Resources, len(s.scenario.Resources))
	for i, r := range s.scenario.Resources {
		resources[r.Channel] = snapshot.Resource{
			Current: wave(now+s.resourceOffsets[i], r.Period, r.Max),
			Max:     r.Max,
		}
	}
	return resources
}

// wave rises from zero to peak over the first half of the period and falls back over the second
func wave(t, period, peak uint32) uint32 {
	if period < 2 {
		return peak
	}
	phase := t % period
	half := period / 2
	if phase < half {
		return uint32(uint64(peak) * uint64(phase) / uint64(half))
	}
	return uint32(uint64(peak) * uint64(period-phase) / uint64(period-half))
}

func (s *Simulator) player(now uint32) snapshot.Player {
	p := s.scenario.Player
	p.Specializations = slices.Clone(p.Specializations)
	p.Traits = slices.Clone(p.Traits)
	p.Weapons = slices.Clone(p.Weapons)

	if period := s.scenario.CombatPeriod; period > 0 {
		p.InCombat = now%period >= period/2
	}
	return p
}

func (s *Simulator) currentMap(now uint32) snapshot.Map {
	if len(s.scenario.Maps) == 0 {
		return snapshot.Map{Category: snapshot.MapUnknown}
	}
	if s.scenario.MapPeriod == 0 {
		return s.scenario.Maps[0]
	}
	return s.scenario.Maps[int(now/s.scenario.MapPeriod)%len(s.scenario.Maps)]
}

func changes(prev, cur *snapshot.Snapshot) snapshot.Changes {
	if prev == nil {
		return snapshot.ChangedAll
	}

	changed := snapshot.ChangedNone
	if !maps.Equal(prev.Buffs, cur.Buffs) {
		changed |= snapshot.ChangedBuffs
	}
	if !maps.Equal(prev.Skillbar.Slots, cur.Skillbar.Slots) {
		changed |= snapshot.ChangedSkillbar
	}
	if !maps.Equal(prev.Resources, cur.Resources) {
		changed |= snapshot.ChangedResources
	}
	if !samePlayer(prev.Player, cur.Player) {
		changed |= snapshot.ChangedPlayer
	}
	if prev.Map != cur.Map {
		changed |= snapshot.ChangedMap
	}
	return changed
}

func samePlayer(a, b snapshot.Player) bool {
	return a.Name == b.Name &&
		a.Profession == b.Profession &&
		a.Mount == b.Mount &&
		a.InCombat == b.InCombat &&
		slices.Equal(a.Specializations, b.Specializations) &&
		slices.Equal(a.Traits, b.Traits) &&
		slices.Equal(a.Weapons, b.Weapons)
}
