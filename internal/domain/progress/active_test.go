package progress

import (
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
	"github.com/stretchr/testify/assert"
)

func TestActive_ProgressEdgePolicy(t *testing.T) {
	tests := []struct {
		name     string
		active   Active
		expected float32
	}{
		{name: "zero over zero is empty", active: NewResource(0, 0), expected: 0},
		{name: "value over zero is full", active: NewResource(5, 0), expected: 1},
		{name: "half", active: NewResource(50, 100), expected: 0.5},
		{name: "overflow clamps", active: NewResource(150, 100), expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, ok := tt.active.Progress(ValuePrimary, 0)
			assert.True(t, ok)
			assert.Equal(t, tt.expected, p)
		})
	}
}

func TestActive_ResourceAmounts(t *testing.T) {
	res := NewResource(40, 160)

	current, ok := res.CurrentAt(ValuePrimary, 0)
	assert.True(t, ok)
	assert.Equal(t, res.Current, current)

	max, ok := res.MaxAt(ValueSecondary, 0)
	assert.True(t, ok)
	assert.Equal(t, res.Max, max, "resources have a single amount")
	assert.Equal(t, uint32(40), res.Intensity())
}

func TestActive_Buff(t *testing.T) {
	buff := NewBuff(1, 3, 1000, 5000)

	current, ok := buff.CurrentAt(ValuePrimary, 2000)
	assert.True(t, ok)
	assert.Equal(t, uint32(3000), current)

	max, ok := buff.MaxAt(ValuePrimary, 2000)
	assert.True(t, ok)
	assert.Equal(t, uint32(4000), max)

	p, _ := buff.Progress(ValuePrimary, 2000)
	assert.Equal(t, float32(0.75), p)
	assert.Equal(t, uint32(3), buff.Intensity())
	assert.False(t, buff.IsInverted())

	t.Run("past runout saturates at zero", func(t *testing.T) {
		current, ok := buff.CurrentAt(ValuePrimary, 9000)
		assert.True(t, ok)
		assert.Equal(t, uint32(0), current)
	})
}

func TestActive_InfiniteBuffShortCircuits(t *testing.T) {
	buff := NewBuff(1, 1, 1000, snapshot.MaxTime)

	_, ok := buff.CurrentAt(ValuePrimary, 2000)
	assert.False(t, ok)
	assert.Equal(t, "", buff.CurrentText(ValuePrimary, 2000, true))
	assert.Equal(t, "", buff.MaxText(ValuePrimary, 2000, true))

	p, ok := buff.Progress(ValuePrimary, 2000)
	assert.True(t, ok)
	assert.Equal(t, float32(1), p)
}

func TestActive_AbilityIsInverted(t *testing.T) {
	ability := NewAbility(snapshot.Ability{
		ID:                7,
		Ammo:              1,
		Recharge:          10_000,
		RechargeRemaining: 4000,
	}, 1000)

	assert.True(t, ability.IsInverted())

	current, ok := ability.CurrentAt(ValuePrimary, 2000)
	assert.True(t, ok)
	assert.Equal(t, uint32(3000), current, "counts down from the moment it was resolved")

	p, _ := ability.Progress(ValuePrimary, 2000)
	assert.InDelta(t, 0.3, p, 0.0001)

	fill, _ := ability.Fill(ValuePrimary, 2000)
	assert.InDelta(t, 0.7, fill, 0.0001)
}

func TestActive_PreferValues(t *testing.T) {
	ability := NewAbility(snapshot.Ability{
		Recharge:              5000,
		RechargeRemaining:     0,
		AmmoRecharge:          8000,
		AmmoRechargeRemaining: 2000,
	}, 0)

	current, _ := ability.CurrentAt(ValuePreferPrimary, 0)
	assert.Equal(t, uint32(2000), current, "falls back to secondary when primary is idle")

	max, _ := ability.MaxAt(ValuePreferPrimary, 0)
	assert.Equal(t, uint32(8000), max)

	current, _ = ability.CurrentAt(ValuePreferSecondary, 0)
	assert.Equal(t, uint32(2000), current)

	current, _ = ability.CurrentAt(ValuePrimary, 0)
	assert.Equal(t, uint32(0), current)
}

func TestActive_Text(t *testing.T) {
	assert.Equal(t, "1:05", NewBuff(1, 1, 0, 65_000).CurrentText(ValuePrimary, 0, true))
	assert.Equal(t, "12", NewBuff(1, 1, 0, 12_500).CurrentText(ValuePrimary, 0, true))
	assert.Equal(t, "4.5", NewBuff(1, 1, 0, 4_500).CurrentText(ValuePrimary, 0, true))
	assert.Equal(t, "4.5", NewBuff(1, 1, 0, 4_500).CurrentText(ValuePrimary, 0, false))
	assert.Equal(t, "12.3k", NewResource(12_345, 20_000).CurrentText(ValuePrimary, 0, true))
	assert.Equal(t, "12345", NewResource(12_345, 20_000).CurrentText(ValuePrimary, 0, false))
	assert.Equal(t, "20.0k", NewResource(12_345, 20_000).MaxText(ValuePrimary, 0, true))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "0.0", FormatDuration(0))
	assert.Equal(t, "9.9", FormatDuration(9_999))
	assert.Equal(t, "10", FormatDuration(10_000))
	assert.Equal(t, "1:00", FormatDuration(60_000))
	assert.Equal(t, "999", FormatAmount(999))
	assert.Equal(t, "2.5m", FormatAmount(2_500_000))
}

func TestDummy(t *testing.T) {
	dummy := Dummy()
	assert.Equal(t, KindBuff, dummy.Kind)
	assert.Equal(t, uint32(1), dummy.Intensity())
	assert.True(t, dummy.IsInfinite())
}
