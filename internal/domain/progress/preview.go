package progress

// PreviewCycle is the length of the edit preview saw-tooth in milliseconds
const PreviewCycle uint32 = 5000

// Preview synthesizes a deterministic active for edit mode. Timers run down over a fixed
// five second cycle keyed off now, so the same timestamp always yields the same value.
func Preview(s Source, parent *Active, now uint32) *Active {
	passed := now % PreviewCycle
	start := now - passed
	remaining := PreviewCycle - passed

	var firstID uint32
	if len(s.IDs) > 0 {
		firstID = s.IDs[0]
	}

	switch s.Kind {
	case SourceInherit:
		return cloneActive(parent)
	case SourceAlways:
		dummy := Dummy()
		return &dummy
	case SourceBuff:
		buff := NewBuff(firstID, 1+passed/1000, start, start+PreviewCycle)
		return &buff
	case SourceAbility, SourceSkillbarSlot:
		ability := Active{
			Kind:                  KindAbility,
			ID:                    firstID,
			Ammo:                  1,
			Recharge:              PreviewCycle,
			RechargeRemaining:     remaining,
			AmmoRecharge:          PreviewCycle,
			AmmoRechargeRemaining: remaining,
			ResolvedAt:            now,
		}
		return &ability
	}

	res := NewResource(remaining, PreviewCycle)
	return &res
}
