package element

import (
	"encoding/json"
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw/drawtest"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const legacyPack = `{
	"name": "legacy",
	"anchor": "top_left",
	"offset": [100, 50],
	"alpha": 1,
	"layer": 3,
	"children": [
		{
			"type": "icon",
			"name": "might",
			"offset": [10, 10],
			"trigger": {"progress": {"type": "has_buff", "id": 740}},
			"color": [1, 0, 0, 1],
			"conditions": [
				{
					"trigger": {"type": "progress_threshold", "threshold": {"type": {"type": "above", "value": 2}, "amount": "intensity"}},
					"properties": {"color": [0, 1, 0, 1]}
				}
			]
		},
		{
			"type": "list",
			"name": "boons",
			"pos": [0, 40],
			"icons": [
				{"name": "might", "trigger": {"source": {"type": "any_buff", "ids": [740]}}},
				{"name": "never", "enabled": false}
			]
		},
		{
			"type": "text_box",
			"name": "label",
			"content": "%n %i",
			"size": 2,
			"trigger": {"source": "always"}
		},
		{
			"type": "bar",
			"name": "health",
			"offset": [0, 100],
			"progress": "primary",
			"ticks": [25, 75],
			"trigger": {"source": {"type": "health"}}
		},
		{
			"type": "group",
			"name": "nested",
			"trigger": {"source": {"type": "any_ability", "id": 5}, "threshold": {"threshold_type": "missing"}},
			"children": [
				{"type": "IconList", "name": "inner"}
			]
		},
		{"type": "nonsense", "name": "skipped"},
		{"type": "bar", "name": "bad value", "progress_value": "tertiary"}
	]
}`

func TestPack_UnmarshalLegacy(t *testing.T) {
	var pack Pack
	require.NoError(t, json.Unmarshal([]byte(legacyPack), &pack))

	assert.Equal(t, "legacy", pack.Name)
	assert.Equal(t, draw.Vec2{100, 50}, pack.Pos)
	assert.Equal(t, float32(1), pack.Opacity)
	assert.Equal(t, 3, pack.Layer)
	assert.False(t, pack.ID.IsNone())
	require.Len(t, pack.Elements, 5, "malformed elements are skipped")

	icon := pack.Elements[0]
	assert.Equal(t, draw.Vec2{10, 10}, icon.Pos)
	assert.Equal(t, progress.Buffs(740), icon.Trigger.Source)
	iconKind := icon.Kind.(*IconElement)
	assert.Equal(t, draw.Color{1, 0, 0, 1}, iconKind.Props.Base.Tint)
	assert.Equal(t, float32(1), iconKind.Props.Base.Zoom, "absent style fields keep defaults")
	require.Len(t, iconKind.Props.Conditions, 1)
	assert.Equal(t, progress.Above(2), iconKind.Props.Conditions[0].Trigger.Threshold.ThresholdType)
	require.NotNil(t, iconKind.Props.Conditions[0].Properties.Tint)

	list := pack.Elements[1].Kind.(*IconList)
	require.Len(t, list.Icons, 2)
	assert.True(t, list.Icons[0].Enabled)
	assert.Equal(t, progress.Buffs(740), list.Icons[0].Trigger.Source)
	assert.False(t, list.Icons[1].Enabled)
	assert.Equal(t, progress.Inherit(), list.Icons[1].Trigger.Source)

	text := pack.Elements[2].Kind.(*Text)
	assert.Equal(t, "%n %i", text.Text)
	assert.Equal(t, float32(2), text.Props.Base.Scale)

	bar := pack.Elements[3].Kind.(*Bar)
	assert.Equal(t, progress.ValuePrimary, bar.ProgressValue)
	assert.Equal(t, []float32{25, 75}, bar.Ticks)
	assert.Equal(t, float32(1), bar.UpperBound)

	group := pack.Elements[4]
	assert.Equal(t, progress.ThresholdMissing, group.Trigger.Threshold.ThresholdType.Kind)
	members := group.Members()
	require.NotNil(t, members)
	require.Len(t, *members, 1)
	assert.Equal(t, TypeIconList, (*members)[0].Type())
}

func TestPack_RoundTripKeepsRendering(t *testing.T) {
	var original Pack
	require.NoError(t, json.Unmarshal([]byte(legacyPack), &original))

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, legacy := range []string{"offset", "alpha", "children"} {
		assert.NotContains(t, fields, legacy, "legacy keys are never written")
	}
	assert.Contains(t, fields, "elements")

	var decoded Pack
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Len(t, decoded.Elements, len(original.Elements))
	assert.NotEqual(t, original.ID, decoded.ID, "ids are regenerated on load")

	again, err := json.Marshal(decoded)
	require.NoError(t, err)
	assert.JSONEq(t, string(data), string(again))

	snap := testSnapshot()
	first := renderPack(t, &original, snap, nil)
	second := renderPack(t, &decoded, snap, nil)
	assert.NotEmpty(t, first.Calls)
	assert.Equal(t, first.Calls, second.Calls)
	assert.Contains(t, first.Texts(), "label 1")
}

func TestElement_MarshalShape(t *testing.T) {
	bar := New("hp", NewBar())
	bar.Trigger.Source = progress.ResourceSource(progress.SourceHealth)

	data, err := json.Marshal(bar)
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &fields))
	for _, key := range []string{"type", "name", "enabled", "pos", "opacity", "trigger", "filter", "progress_value", "fill", "background", "conditions"} {
		assert.Contains(t, fields, key)
	}
	assert.NotContains(t, fields, "id", "ids are not persisted")
	assert.JSONEq(t, `"bar"`, string(fields["type"]))

	_, err = json.Marshal(Element{Common: NewCommon("no kind")})
	assert.Error(t, err)
}

func TestElement_UnmarshalErrors(t *testing.T) {
	var e Element
	assert.Error(t, json.Unmarshal([]byte(`{"type":"sprite"}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"icon","anchor":"somewhere"}`), &e))
	assert.Error(t, json.Unmarshal([]byte(`{"type":"text","trigger":{"source":{"type":"mana"}}}`), &e))
}

func TestRecorderSurfaceIsUsed(t *testing.T) {
	var _ draw.Surface = &drawtest.Recorder{}
}
