package snapshot

// Slot is a fixed position on the skill bar
type Slot uint8

const (
	SlotWeapon1 Slot = iota
	SlotWeapon2
	SlotWeapon3
	SlotWeapon4
	SlotWeapon5
	SlotHeal
	SlotUtility1
	SlotUtility2
	SlotUtility3
	SlotElite
	SlotProfession1
	SlotProfession2
	SlotProfession3
	SlotProfession4
	SlotProfession5
	SlotSpecialAction
	SlotMount
)

// AllSlots lists every slot in skill bar order
var AllSlots = [...]Slot{
	SlotWeapon1, SlotWeapon2, SlotWeapon3, SlotWeapon4, SlotWeapon5,
	SlotHeal, SlotUtility1, SlotUtility2, SlotUtility3, SlotElite,
	SlotProfession1, SlotProfession2, SlotProfession3, SlotProfession4, SlotProfession5,
	SlotSpecialAction, SlotMount,
}

var slotNames = [...]string{
	"weapon_1", "weapon_2", "weapon_3", "weapon_4", "weapon_5",
	"heal", "utility_1", "utility_2", "utility_3", "elite",
	"profession_1", "profession_2", "profession_3", "profession_4", "profession_5",
	"special_action", "mount",
}

func (s Slot) String() string {
	if int(s) < len(slotNames) {
		return slotNames[s]
	}
	return "unknown"
}

// ParseSlot converts a slot name back to a Slot
func ParseSlot(name string) (Slot, bool) {
	for i, n := range slotNames {
		if n == name {
			return Slot(i), true
		}
	}
	return 0, false
}

// StateFlags describe transient ability state
type StateFlags uint8

const (
	StateAutoAttack StateFlags = 1 << iota
	StatePressed
	StatePending
)

// Has reports whether all given flags are set
func (f StateFlags) Has(flags StateFlags) bool {
	return f&flags == flags
}

// Ability is one skill bar entry
type Ability struct {
	ID                    uint32
	Ammo                  uint32
	Recharge              uint32
	RechargeRemaining     uint32
	AmmoRecharge          uint32
	AmmoRechargeRemaining uint32
	State                 StateFlags
}

// Skillbar holds the abilities currently on the bar
type Skillbar struct {
	Slots map[Slot]Ability
}

// Slot returns the ability at the given slot
func (s *Skillbar) Slot(slot Slot) (Ability, bool) {
	if s == nil || s.Slots == nil {
		return Ability{}, false
	}
	ability, ok := s.Slots[slot]
	return ability, ok
}

// Find returns the first ability with the given id in slot order
func (s *Skillbar) Find(abilityID uint32) (Ability, bool) {
	if s == nil || s.Slots == nil {
		return Ability{}, false
	}
	for _, slot := range AllSlots {
		if ability, ok := s.Slots[slot]; ok && ability.ID == abilityID {
			return ability, true
		}
	}
	return Ability{}, false
}
