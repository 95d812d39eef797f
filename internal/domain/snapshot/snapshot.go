// Package snapshot describes the read-only game state the overlay core consumes once per frame.
// The host (memory poller, API bridge or simulator) owns building it; the core never mutates it.
package snapshot

import "math"

// MaxTime marks a timestamp that is unknown or hidden, e.g. a buff without a visible duration.
const MaxTime uint32 = math.MaxUint32

// Changes flags which categories of the snapshot changed since the previous frame
type Changes uint8

const (
	ChangedBuffs Changes = 1 << iota
	ChangedSkillbar
	ChangedResources
	ChangedPlayer
	ChangedMap

	ChangedNone Changes = 0
	ChangedAll          = ChangedBuffs | ChangedSkillbar | ChangedResources | ChangedPlayer | ChangedMap
)

// Has reports whether any of the given flags are set
func (c Changes) Has(flags Changes) bool {
	return c&flags != 0
}

// Snapshot is the per-frame view of the game
type Snapshot struct {
	// Now is a monotonic timestamp in milliseconds
	Now uint32

	// Changed is set by the host for categories that differ from the previous snapshot
	Changed Changes

	// Buffs is nil when buff data is unavailable
	Buffs Buffs

	// Skillbar is nil when skill data is unavailable
	Skillbar *Skillbar

	// Resources omits channels that are currently unavailable
	Resources Resources

	Player Player
	Map    Map
}

// HasBuffs reports whether buff data is available
func (s *Snapshot) HasBuffs() bool {
	return s != nil && s.Buffs != nil
}

// Buff is one entry of the buff table
type Buff struct {
	Stacks     uint32
	ApplyTime  uint32
	RunoutTime uint32
}

// IsInfinite reports whether the buff has no known duration
func (b Buff) IsInfinite() bool {
	return b.RunoutTime == MaxTime
}

// IsExpired reports whether the buff ran out before now
func (b Buff) IsExpired(now uint32) bool {
	return !b.IsInfinite() && b.RunoutTime < now
}

// Buffs maps buff ids to their current state
type Buffs map[uint32]Buff

// ResourceChannel names one of the fixed resource channels
type ResourceChannel string

const (
	ResourceHealth    ResourceChannel = "health"
	ResourceBarrier   ResourceChannel = "barrier"
	ResourceEndurance ResourceChannel = "endurance"
	ResourcePrimary   ResourceChannel = "primary"
	ResourceSecondary ResourceChannel = "secondary"
)

// AllResourceChannels lists every channel in display order
var AllResourceChannels = [...]ResourceChannel{
	ResourceHealth,
	ResourceBarrier,
	ResourceEndurance,
	ResourcePrimary,
	ResourceSecondary,
}

// Resource is a current/max pair
type Resource struct {
	Current uint32
	Max     uint32
}

// Resources maps channels to values; a missing channel is unavailable
type Resources map[ResourceChannel]Resource

// Get returns the channel value if available
func (r Resources) Get(channel ResourceChannel) (Resource, bool) {
	if r == nil {
		return Resource{}, false
	}
	res, ok := r[channel]
	return res, ok
}
