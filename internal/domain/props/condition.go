package props

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/trigger"
)

// ConditionKind names what a condition checks
type ConditionKind string

const (
	ConditionProgressThreshold ConditionKind = "progress_threshold"
	ConditionPlayer            ConditionKind = "player"
	ConditionMap               ConditionKind = "map"
)

// AllConditionKinds lists every condition kind
var AllConditionKinds = [...]ConditionKind{
	ConditionProgressThreshold,
	ConditionPlayer,
	ConditionMap,
}

// ConditionTrigger is one of a progress threshold, a player filter or a map filter.
// Only the field belonging to Kind is used.
type ConditionTrigger struct {
	Kind      ConditionKind
	Threshold progress.Threshold
	Player    trigger.PlayerTrigger
	Map       trigger.MapTrigger
}

// ThresholdCondition checks the node's active against a threshold
func ThresholdCondition(threshold progress.Threshold) ConditionTrigger {
	return ConditionTrigger{Kind: ConditionProgressThreshold, Threshold: threshold}
}

// PlayerCondition checks the player
func PlayerCondition(player trigger.PlayerTrigger) ConditionTrigger {
	return ConditionTrigger{Kind: ConditionPlayer, Player: player}
}

// MapCondition checks the map
func MapCondition(m trigger.MapTrigger) ConditionTrigger {
	return ConditionTrigger{Kind: ConditionMap, Map: m}
}

// IsMet evaluates the trigger. A progress threshold without an active is never met.
func (c *ConditionTrigger) IsMet(ctx *frame.Context, active *progress.Active) bool {
	switch c.Kind {
	case ConditionProgressThreshold:
		if active == nil {
			return false
		}
		return c.Threshold.IsMet(active, ctx.Now)
	case ConditionPlayer:
		return c.Player.IsMet(ctx.Player())
	case ConditionMap:
		return c.Map.IsMet(ctx.Map())
	}
	return false
}

// Clone returns a deep copy
func (c ConditionTrigger) Clone() ConditionTrigger {
	c.Player = c.Player.Clone()
	c.Map = c.Map.Clone()
	return c
}
