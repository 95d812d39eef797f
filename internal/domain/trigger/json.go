package trigger

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/overlay-engine/internal/domain/jsonshape"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

var stateFlagNames = []struct {
	flag snapshot.StateFlags
	name string
}{
	{snapshot.StateAutoAttack, "auto_attack"},
	{snapshot.StatePressed, "pressed"},
	{snapshot.StatePending, "pending"},
}

func flagsToNames(flags snapshot.StateFlags) []string {
	var names []string
	for _, f := range stateFlagNames {
		if flags.Has(f.flag) {
			names = append(names, f.name)
		}
	}
	return names
}

func namesToFlags(names []string) (snapshot.StateFlags, error) {
	var flags snapshot.StateFlags
outer:
	for _, name := range names {
		for _, f := range stateFlagNames {
			if f.name == name {
				flags |= f.flag
				continue outer
			}
		}
		return 0, fmt.Errorf("unknown ability state %q", name)
	}
	return flags, nil
}

type abilityStateJSON struct {
	Require []string `json:"require,omitempty"`
	Exclude []string `json:"exclude,omitempty"`
}

// MarshalJSON writes the flags as name lists
func (t AbilityStateTrigger) MarshalJSON() ([]byte, error) {
	return json.Marshal(abilityStateJSON{
		Require: flagsToNames(t.Require),
		Exclude: flagsToNames(t.Exclude),
	})
}

// UnmarshalJSON reads the flag name lists
func (t *AbilityStateTrigger) UnmarshalJSON(data []byte) error {
	var raw abilityStateJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	require, err := namesToFlags(raw.Require)
	if err != nil {
		return err
	}
	exclude, err := namesToFlags(raw.Exclude)
	if err != nil {
		return err
	}
	*t = AbilityStateTrigger{Require: require, Exclude: exclude}
	return nil
}

// UnmarshalJSON validates the combat state; empty means any
func (c *CombatState) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	switch CombatState(name) {
	case "", CombatAny:
		*c = CombatAny
	case CombatIn, CombatOut:
		*c = CombatState(name)
	default:
		return fmt.Errorf("unknown combat state %q", name)
	}
	return nil
}

var progressTriggerAliases = jsonshape.Aliases{
	"progress": "source",
}

type progressTriggerJSON struct {
	Source    progress.Source     `json:"source"`
	Threshold progress.Threshold  `json:"threshold"`
	State     AbilityStateTrigger `json:"state"`
}

// MarshalJSON writes source, threshold and the ability state filter
func (t ProgressTrigger) MarshalJSON() ([]byte, error) {
	return json.Marshal(progressTriggerJSON{
		Source:    t.Source,
		Threshold: t.Threshold,
		State:     t.State,
	})
}

// UnmarshalJSON keeps the defaults for fields that are absent
func (t *ProgressTrigger) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, progressTriggerAliases)
	if err != nil {
		return err
	}

	defaults := NewProgressTrigger()
	raw := progressTriggerJSON{
		Source:    defaults.Source,
		Threshold: defaults.Threshold,
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ProgressTrigger{
		Source:    raw.Source,
		Threshold: raw.Threshold,
		State:     raw.State,
	}
	return nil
}

type filterTriggerJSON struct {
	Player PlayerTrigger `json:"player"`
	Map    MapTrigger    `json:"map"`
}

// UnmarshalJSON resets the cached result along with the configuration
func (f *FilterTrigger) UnmarshalJSON(data []byte) error {
	var raw filterTriggerJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*f = FilterTrigger{Player: raw.Player, Map: raw.Map}
	return nil
}
