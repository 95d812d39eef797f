package progress

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// ActiveKind is the live variant of an Active value
type ActiveKind uint8

const (
	KindResource ActiveKind = iota
	KindBuff
	KindAbility
)

func (k ActiveKind) String() string {
	switch k {
	case KindResource:
		return "resource"
	case KindBuff:
		return "buff"
	case KindAbility:
		return "ability"
	}
	return "unknown"
}

// Active is what is currently active for a node: a resource level, a merged buff or an ability.
// Only the fields belonging to Kind are meaningful. Values are rebuilt every resolution pass and
// never mutated in place.
type Active struct {
	Kind ActiveKind

	// ID is the buff or ability id
	ID uint32

	// resource
	Current uint32
	Max     uint32

	// buff
	Stacks     uint32
	ApplyTime  uint32
	RunoutTime uint32

	// ability
	Ammo                  uint32
	Recharge              uint32
	RechargeRemaining     uint32
	AmmoRecharge          uint32
	AmmoRechargeRemaining uint32
	State                 snapshot.StateFlags
	ResolvedAt            uint32
}

// NewResource creates a resource active
func NewResource(current, max uint32) Active {
	return Active{Kind: KindResource, Current: current, Max: max}
}

// NewBuff creates a buff active
func NewBuff(id, stacks, apply, runout uint32) Active {
	return Active{Kind: KindBuff, ID: id, Stacks: stacks, ApplyTime: apply, RunoutTime: runout}
}

// NewAbility creates an ability active from a skill bar entry observed at now
func NewAbility(ability snapshot.Ability, now uint32) Active {
	return Active{
		Kind:                  KindAbility,
		ID:                    ability.ID,
		Ammo:                  ability.Ammo,
		Recharge:              ability.Recharge,
		RechargeRemaining:     ability.RechargeRemaining,
		AmmoRecharge:          ability.AmmoRecharge,
		AmmoRechargeRemaining: ability.AmmoRechargeRemaining,
		State:                 ability.State,
		ResolvedAt:            now,
	}
}

// Dummy is the always-on active: one stack, unknown duration
func Dummy() Active {
	return NewBuff(0, 1, 0, snapshot.MaxTime)
}

// Intensity is the stack count, resource level or ammo count
func (a Active) Intensity() uint32 {
	switch a.Kind {
	case KindResource:
		return a.Current
	case KindBuff:
		return a.Stacks
	case KindAbility:
		return a.Ammo
	}
	return 0
}

// IsTimed reports whether current/max are durations in milliseconds
func (a Active) IsTimed() bool {
	return a.Kind == KindBuff || a.Kind == KindAbility
}

// IsInverted reports whether the ratio counts down while the visual should fill up
func (a Active) IsInverted() bool {
	return a.Kind == KindAbility
}

// IsInfinite reports whether the active is a buff with unknown duration
func (a Active) IsInfinite() bool {
	return a.Kind == KindBuff && a.RunoutTime == snapshot.MaxTime
}

// CurrentAt returns the current amount for the value selector. Durations are remaining milliseconds.
func (a Active) CurrentAt(value Value, now uint32) (uint32, bool) {
	value = a.pick(value, now)
	switch a.Kind {
	case KindResource:
		return a.Current, true
	case KindBuff:
		if a.IsInfinite() {
			return 0, false
		}
		return saturatingSub(a.RunoutTime, now), true
	case KindAbility:
		if value == ValueSecondary {
			return a.remaining(a.AmmoRechargeRemaining, now), true
		}
		return a.remaining(a.RechargeRemaining, now), true
	}
	return 0, false
}

// MaxAt returns the full amount for the value selector
func (a Active) MaxAt(value Value, now uint32) (uint32, bool) {
	value = a.pick(value, now)
	switch a.Kind {
	case KindResource:
		return a.Max, true
	case KindBuff:
		if a.IsInfinite() {
			return 0, false
		}
		return saturatingSub(a.RunoutTime, a.ApplyTime), true
	case KindAbility:
		if value == ValueSecondary {
			return a.AmmoRecharge, true
		}
		return a.Recharge, true
	}
	return 0, false
}

// Progress returns current/max in [0,1] with 0/0 as 0 and x/0 as 1.
// A buff of unknown duration is always full.
func (a Active) Progress(value Value, now uint32) (float32, bool) {
	if a.IsInfinite() {
		return 1, true
	}
	current, ok := a.CurrentAt(value, now)
	if !ok {
		return 0, false
	}
	max, ok := a.MaxAt(value, now)
	if !ok {
		return 0, false
	}
	return ratio(current, max), true
}

// Fill is Progress adjusted for inverted actives. Every percent consumer goes through Fill.
func (a Active) Fill(value Value, now uint32) (float32, bool) {
	p, ok := a.Progress(value, now)
	if !ok {
		return 0, false
	}
	if a.IsInverted() {
		return 1 - p, true
	}
	return p, true
}

// CurrentText formats the current amount, empty when unknown
func (a Active) CurrentText(value Value, now uint32, pretty bool) string {
	current, ok := a.CurrentAt(value, now)
	if !ok {
		return ""
	}
	return a.format(current, pretty)
}

// MaxText formats the max amount, empty when unknown
func (a Active) MaxText(value Value, now uint32, pretty bool) string {
	max, ok := a.MaxAt(value, now)
	if !ok {
		return ""
	}
	return a.format(max, pretty)
}

func (a Active) format(amount uint32, pretty bool) string {
	if a.IsTimed() {
		if pretty {
			return FormatDuration(amount)
		}
		return FormatSeconds(amount)
	}
	if pretty {
		return FormatAmount(amount)
	}
	return FormatInt(amount)
}

// pick resolves the prefer variants to primary or secondary
func (a Active) pick(value Value, now uint32) Value {
	switch value {
	case ValuePreferPrimary:
		if current, _ := a.CurrentAt(ValuePrimary, now); current > 0 {
			return ValuePrimary
		}
		return ValueSecondary
	case ValuePreferSecondary:
		if current, _ := a.CurrentAt(ValueSecondary, now); current > 0 {
			return ValueSecondary
		}
		return ValuePrimary
	case ValueSecondary:
		return ValueSecondary
	}
	return ValuePrimary
}

// remaining counts an ability timer down from the moment it was resolved
func (a Active) remaining(at uint32, now uint32) uint32 {
	if now <= a.ResolvedAt {
		return at
	}
	return saturatingSub(at, now-a.ResolvedAt)
}

func ratio(current, max uint32) float32 {
	if max == 0 {
		if current == 0 {
			return 0
		}
		return 1
	}
	p := float32(current) / float32(max)
	if p > 1 {
		return 1
	}
	return p
}

func saturatingSub(a, b uint32) uint32 {
	if b >= a {
		return 0
	}
	return a - b
}
