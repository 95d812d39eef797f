package testutils

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
)

// Buff and ability ids used by the fixtures
const (
	BuffMight   uint32 = 740
	BuffFury    uint32 = 725
	AbilityHeal uint32 = 9083
)

// CreateTestPack builds a pack with one element of every kind
func CreateTestPack(name string) *element.Pack {
	pack := element.NewPack(name)

	icon := element.New("might", element.NewIconElement())
	icon.Trigger.Source = progress.Buffs(BuffMight)
	icon.Pos = draw.Vec2{40, 40}

	list := element.NewIconList()
	might, fury := element.NewListIcon("might"), element.NewListIcon("fury")
	might.Trigger.Source = progress.Buffs(BuffMight)
	fury.Trigger.Source = progress.Buffs(BuffFury)
	list.Icons = []element.ListIcon{might, fury}
	boons := element.New("boons", list)
	boons.Pos = draw.Vec2{40, 80}

	bar := element.New("health", element.NewBar())
	bar.Trigger.Source = progress.ResourceSource(progress.SourceHealth)
	label := element.New("label", element.NewText())

	group := element.New("vitals", element.NewGroup())
	group.Pos = draw.Vec2{200, 200}
	*group.Members() = []element.Element{bar, label}

	pack.Elements = []element.Element{icon, boons, group}
	return &pack
}

// CreateTestSnapshot returns a snapshot with might and health available, everything marked changed
func CreateTestSnapshot(now uint32) *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Now:     now,
		Changed: snapshot.ChangedAll,
		Buffs: snapshot.Buffs{
			BuffMight: {Stacks: 12, ApplyTime: now - 1000, RunoutTime: now + 9000},
		},
		Skillbar: &snapshot.Skillbar{Slots: map[snapshot.Slot]snapshot.Ability{
			snapshot.SlotHeal: {ID: AbilityHeal, Ammo: 1, Recharge: 20000, RechargeRemaining: 5000},
		}},
		Resources: snapshot.Resources{
			snapshot.ResourceHealth: {Current: 7500, Max: 10000},
		},
		Player: snapshot.Player{Name: "Tester", Profession: snapshot.ProfessionGuardian},
		Map:    snapshot.Map{ID: 1206, Category: snapshot.MapPvE},
	}
}
