package simulate

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// BuffCycle applies a buff for Duration out of every Period milliseconds.
// Stacks start at MaxStacks and decay linearly to one before it runs out.
type BuffCycle struct {
	ID        uint32
	Period    uint32
	Duration  uint32
	MaxStacks uint32

	// Infinite buffs report snapshot.MaxTime as runout while applied
	Infinite bool
}

// AbilityCycle recharges an ability for Recharge milliseconds, then keeps it ready for Ready
type AbilityCycle struct {
	Slot     snapshot.Slot
	ID       uint32
	Recharge uint32
	Ready    uint32
	Ammo     uint32
}

// ResourceWave moves a resource channel between zero and Max and back every Period
type ResourceWave struct {
	Channel snapshot.ResourceChannel
	Max     uint32
	Period  uint32
}

// Scenario describes what the simulator plays back
type Scenario struct {
	Buffs     []BuffCycle
	Abilities []AbilityCycle
	Resources []ResourceWave

	// CombatPeriod toggles combat every half period; zero keeps the player out of combat
	CombatPeriod uint32

	// MapPeriod rotates through Maps; zero stays on the first map
	MapPeriod uint32
	Maps      []snapshot.Map

	Player snapshot.Player
}

// DefaultScenario is a guardian in open world content with a handful of boons and a full bar
func DefaultScenario() Scenario {
	return Scenario{
		Buffs: []BuffCycle{
			{ID: 740, Period: 12000, Duration: 8000, MaxStacks: 25},
			{ID: 725, Period: 9000, Duration: 4000, MaxStacks: 1},
			{ID: 1187, Period: 15000, Duration: 6000, MaxStacks: 1},
			{ID: 743, Period: 20000, Duration: 10000, MaxStacks: 1},
			{ID: 5974, Period: 60000, Duration: 30000, MaxStacks: 1, Infinite: true},
		},
		Abilities: []AbilityCycle{
			{Slot: snapshot.SlotWeapon2, ID: 9137, Recharge: 6000, Ready: 1500, Ammo: 1},
			{Slot: snapshot.SlotWeapon3, ID: 9081, Recharge: 10000, Ready: 2000, Ammo: 1},
			{Slot: snapshot.SlotHeal, ID: 9083, Recharge: 20000, Ready: 3000, Ammo: 1},
			{Slot: snapshot.SlotUtility1, ID: 9084, Recharge: 30000, Ready: 5000, Ammo: 2},
			{Slot: snapshot.SlotElite, ID: 30273, Recharge: 90000, Ready: 10000, Ammo: 1},
		},
		Resources: []ResourceWave{
			{Channel: snapshot.ResourceHealth, Max: 19212, Period: 16000},
			{Channel: snapshot.ResourceEndurance, Max: 100, Period: 7000},
			{Channel: snapshot.ResourcePrimary, Max: 3, Period: 12000},
		},
		CombatPeriod: 40000,
		MapPeriod:    120000,
		Maps: []snapshot.Map{
			{ID: 1206, Category: snapshot.MapPvE},
			{ID: 1155, Category: snapshot.MapInstance},
		},
		Player: snapshot.Player{
			Name:       "Simulated Guardian",
			Profession: snapshot.ProfessionGuardian,
		},
	}
}
