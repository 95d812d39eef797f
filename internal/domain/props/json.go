package props

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/overlay-engine/internal/domain/jsonshape"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/trigger"
)

type conditionTriggerJSON struct {
	Type      ConditionKind          `json:"type"`
	Threshold *progress.Threshold    `json:"threshold,omitempty"`
	Player    *trigger.PlayerTrigger `json:"player,omitempty"`
	Map       *trigger.MapTrigger    `json:"map,omitempty"`
}

// MarshalJSON writes the kind with its payload
func (c ConditionTrigger) MarshalJSON() ([]byte, error) {
	out := conditionTriggerJSON{Type: c.Kind}
	switch c.Kind {
	case ConditionProgressThreshold:
		out.Threshold = &c.Threshold
	case ConditionPlayer:
		out.Player = &c.Player
	case ConditionMap:
		out.Map = &c.Map
	}
	return json.Marshal(out)
}

// UnmarshalJSON reads the kind with its payload
func (c *ConditionTrigger) UnmarshalJSON(data []byte) error {
	threshold := progress.DefaultThreshold()
	raw := conditionTriggerJSON{Threshold: &threshold}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	out := ConditionTrigger{Kind: raw.Type}
	switch raw.Type {
	case ConditionProgressThreshold:
		out.Threshold = threshold
	case ConditionPlayer:
		if raw.Player != nil {
			out.Player = *raw.Player
		}
	case ConditionMap:
		if raw.Map != nil {
			out.Map = *raw.Map
		}
	default:
		return fmt.Errorf("unknown condition type %q", raw.Type)
	}
	*c = out
	return nil
}

// MarshalJSON flattens the base value and adds the conditions list
func (p Props[T, P]) MarshalJSON() ([]byte, error) {
	conditions := p.Conditions
	if conditions == nil {
		conditions = []Condition[T, P]{}
	}
	return jsonshape.Merge(p.Base, struct {
		Conditions []Condition[T, P] `json:"conditions"`
	}{conditions})
}

// UnmarshalJSON reads the base from the flattened object on top of the current base,
// so defaults set before decoding survive absent keys.
func (p *Props[T, P]) UnmarshalJSON(data []byte) error {
	if err := json.Unmarshal(data, &p.Base); err != nil {
		return err
	}

	raw, ok, err := jsonshape.Field(data, "conditions")
	if err != nil {
		return err
	}
	p.Conditions = nil
	if ok {
		if err := json.Unmarshal(raw, &p.Conditions); err != nil {
			return err
		}
	}
	p.computed = false
	return nil
}
