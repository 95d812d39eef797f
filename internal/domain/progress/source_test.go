package progress

import (
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	buffA uint32 = 740
	buffB uint32 = 1187
)

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Now: 500,
		Buffs: snapshot.Buffs{
			buffA: {Stacks: 2, ApplyTime: 100, RunoutTime: 1000},
			buffB: {Stacks: 3, ApplyTime: 200, RunoutTime: 2000},
		},
		Skillbar: &snapshot.Skillbar{Slots: map[snapshot.Slot]snapshot.Ability{
			snapshot.SlotWeapon2:  {ID: 9, Recharge: 6000, RechargeRemaining: 3000},
			snapshot.SlotUtility1: {ID: 7, Ammo: 2},
		}},
		Resources: snapshot.Resources{
			snapshot.ResourceHealth: {Current: 800, Max: 1000},
		},
	}
}

func TestSource_ResolveBuffMerge(t *testing.T) {
	snap := testSnapshot()

	active := Buffs(buffA, buffB).Resolve(snap, nil)
	require.NotNil(t, active)
	assert.Equal(t, KindBuff, active.Kind)
	assert.Equal(t, uint32(5), active.Stacks)
	assert.Equal(t, uint32(2000), active.RunoutTime)
	assert.Equal(t, uint32(200), active.ApplyTime)
	assert.Equal(t, buffA, active.ID)

	t.Run("expired buffs contribute nothing", func(t *testing.T) {
		snap := testSnapshot()
		snap.Now = 1500

		active := Buffs(buffA, buffB).Resolve(snap, nil)
		require.NotNil(t, active)
		assert.Equal(t, uint32(3), active.Stacks)
		assert.Equal(t, uint32(2000), active.RunoutTime)
	})

	t.Run("no match yields a zeroed buff", func(t *testing.T) {
		active := Buffs(1, 2).Resolve(snap, nil)
		require.NotNil(t, active)
		assert.Equal(t, uint32(0), active.Stacks)
		assert.Equal(t, uint32(0), active.RunoutTime)
	})

	t.Run("unavailable buff table yields nothing", func(t *testing.T) {
		snap := testSnapshot()
		snap.Buffs = nil
		assert.Nil(t, Buffs(buffA).Resolve(snap, nil))
	})

	t.Run("infinite buff wins runout", func(t *testing.T) {
		snap := testSnapshot()
		snap.Buffs[3] = snapshot.Buff{Stacks: 1, RunoutTime: snapshot.MaxTime}
		active := Buffs(buffA, 3).Resolve(snap, nil)
		require.NotNil(t, active)
		assert.True(t, active.IsInfinite())
	})
}

func TestSource_ResolveIsIdempotent(t *testing.T) {
	snap := testSnapshot()
	sources := []Source{
		Buffs(buffA, buffB),
		Abilities(7),
		SkillbarSlot(snapshot.SlotWeapon2),
		ResourceSource(SourceHealth),
		Always(),
	}

	for _, src := range sources {
		first := src.Resolve(snap, nil)
		second := src.Resolve(snap, nil)
		require.NotNil(t, first, src.Kind)
		assert.Equal(t, *first, *second, src.Kind)
	}
}

func TestSource_ResolveAbilityFirstMatchWins(t *testing.T) {
	snap := testSnapshot()

	active := Abilities(99, 7, 9).Resolve(snap, nil)
	require.NotNil(t, active)
	assert.Equal(t, uint32(7), active.ID)
	assert.Equal(t, uint32(2), active.Ammo)
	assert.Equal(t, snap.Now, active.ResolvedAt)

	assert.Nil(t, Abilities(99).Resolve(snap, nil))

	snap.Skillbar = nil
	assert.Nil(t, Abilities(7).Resolve(snap, nil))
}

func TestSource_ResolveSlot(t *testing.T) {
	snap := testSnapshot()

	active := SkillbarSlot(snapshot.SlotWeapon2).Resolve(snap, nil)
	require.NotNil(t, active)
	assert.Equal(t, uint32(9), active.ID)

	assert.Nil(t, SkillbarSlot(snapshot.SlotElite).Resolve(snap, nil))
}

func TestSource_ResolveResources(t *testing.T) {
	snap := testSnapshot()

	active := ResourceSource(SourceHealth).Resolve(snap, nil)
	require.NotNil(t, active)
	assert.Equal(t, NewResource(800, 1000), *active)

	assert.Nil(t, ResourceSource(SourceBarrier).Resolve(snap, nil), "unavailable channel is inactive")
	assert.Nil(t, ResourceSource(SourceHealth).Resolve(nil, nil))
}

func TestSource_ResolveInherit(t *testing.T) {
	parent := NewBuff(1, 4, 0, 100)

	active := Inherit().Resolve(nil, &parent)
	require.NotNil(t, active)
	assert.Equal(t, parent, *active)

	active.Stacks = 99
	assert.Equal(t, uint32(4), parent.Stacks, "inherited value is a copy")

	assert.Nil(t, Inherit().Resolve(nil, nil))
}

func TestSource_ResolveAlways(t *testing.T) {
	active := Always().Resolve(nil, nil)
	require.NotNil(t, active)
	assert.Equal(t, Dummy(), *active)
}

func TestSource_Clone(t *testing.T) {
	src := Buffs(1, 2)
	clone := src.Clone()
	clone.IDs[0] = 5
	assert.Equal(t, uint32(1), src.IDs[0])
}

func TestPreview_IsDeterministicSawTooth(t *testing.T) {
	src := Buffs(buffA)

	first := Preview(src, nil, 12_300)
	second := Preview(src, nil, 12_300)
	require.NotNil(t, first)
	assert.Equal(t, *first, *second)
	assert.Equal(t, uint32(10_000), first.ApplyTime, "the cycle is aligned to multiples of five seconds")
	assert.Equal(t, uint32(15_000), first.RunoutTime)
	assert.Equal(t, uint32(3), first.Stacks)

	ability := Preview(Abilities(7), nil, 6_000)
	require.NotNil(t, ability)
	current, _ := ability.CurrentAt(ValuePrimary, 6_000)
	assert.Equal(t, uint32(4_000), current)

	res := Preview(ResourceSource(SourceEndurance), nil, 2_500)
	require.NotNil(t, res)
	p, _ := res.Progress(ValuePrimary, 2_500)
	assert.Equal(t, float32(0.5), p)

	parent := NewResource(1, 2)
	inherited := Preview(Inherit(), &parent, 0)
	require.NotNil(t, inherited)
	assert.Equal(t, parent, *inherited)
}
