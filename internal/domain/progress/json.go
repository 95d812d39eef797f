package progress

import (
	"encoding/json"
	"fmt"

	"github.com/KirkDiggler/overlay-engine/internal/domain/jsonshape"
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// legacy source kind names accepted on read
var sourceKindAliases = map[string]SourceKind{
	"any_buff":    SourceBuff,
	"has_buff":    SourceBuff,
	"any_ability": SourceAbility,
}

var thresholdAliases = jsonshape.Aliases{
	"amount": "amount_type",
	"type":   "threshold_type",
}

type sourceJSON struct {
	Type SourceKind `json:"type"`
	IDs  []uint32   `json:"ids,omitempty"`
	Slot string     `json:"slot,omitempty"`
}

// MarshalJSON writes {"type": kind, ...} with only the fields the kind uses
func (s Source) MarshalJSON() ([]byte, error) {
	out := sourceJSON{Type: s.Kind}
	if s.Kind.UsesIDs() {
		out.IDs = s.IDs
	}
	if s.Kind == SourceSkillbarSlot {
		out.Slot = s.Slot.String()
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the object form, a bare kind string, legacy kind names and a singular id
func (s *Source) UnmarshalJSON(data []byte) error {
	if jsonshape.IsString(data) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		kind, err := parseSourceKind(name)
		if err != nil {
			return err
		}
		*s = Source{Kind: kind}
		return nil
	}

	var raw struct {
		Type string   `json:"type"`
		IDs  []uint32 `json:"ids"`
		ID   *uint32  `json:"id"`
		Slot string   `json:"slot"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	kind, err := parseSourceKind(raw.Type)
	if err != nil {
		return err
	}

	out := Source{Kind: kind}
	if kind.UsesIDs() {
		out.IDs = raw.IDs
		if out.IDs == nil && raw.ID != nil {
			out.IDs = []uint32{*raw.ID}
		}
	}
	if kind == SourceSkillbarSlot {
		slot, ok := snapshot.ParseSlot(raw.Slot)
		if !ok {
			return fmt.Errorf("unknown skill bar slot %q", raw.Slot)
		}
		out.Slot = slot
	}
	*s = out
	return nil
}

func parseSourceKind(name string) (SourceKind, error) {
	if name == "" {
		return SourceInherit, nil
	}
	for _, kind := range AllSourceKinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	if kind, ok := sourceKindAliases[name]; ok {
		return kind, nil
	}
	return "", fmt.Errorf("unknown progress source %q", name)
}

type thresholdTypeJSON struct {
	Type  ThresholdKind `json:"type"`
	Value *float32      `json:"value,omitempty"`
	Min   *float32      `json:"min,omitempty"`
	Max   *float32      `json:"max,omitempty"`
}

// MarshalJSON writes {"type": kind} plus the operands the kind uses
func (tt ThresholdType) MarshalJSON() ([]byte, error) {
	out := thresholdTypeJSON{Type: tt.Kind}
	switch tt.Kind {
	case ThresholdBelow, ThresholdAbove, ThresholdExact:
		out.Value = &tt.Value
	case ThresholdBetween:
		out.Min = &tt.Min
		out.Max = &tt.Max
	}
	return json.Marshal(out)
}

// UnmarshalJSON accepts the object form or a bare kind string
func (tt *ThresholdType) UnmarshalJSON(data []byte) error {
	if jsonshape.IsString(data) {
		var name string
		if err := json.Unmarshal(data, &name); err != nil {
			return err
		}
		kind, err := parseThresholdKind(name)
		if err != nil {
			return err
		}
		*tt = ThresholdType{Kind: kind}
		return nil
	}

	var raw thresholdTypeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, err := parseThresholdKind(string(raw.Type))
	if err != nil {
		return err
	}

	out := ThresholdType{Kind: kind}
	if raw.Value != nil {
		out.Value = *raw.Value
	}
	if raw.Min != nil {
		out.Min = *raw.Min
	}
	if raw.Max != nil {
		out.Max = *raw.Max
	}
	*tt = out
	return nil
}

// UnmarshalJSON fills only the fields present, keeping the receiver's values as defaults
func (t *Threshold) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, thresholdAliases)
	if err != nil {
		return err
	}
	type plain Threshold
	return json.Unmarshal(data, (*plain)(t))
}

func parseThresholdKind(name string) (ThresholdKind, error) {
	if name == "" {
		return ThresholdPresent, nil
	}
	for _, kind := range AllThresholdKinds {
		if string(kind) == name {
			return kind, nil
		}
	}
	return "", fmt.Errorf("unknown threshold type %q", name)
}
