package element

import (
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw/drawtest"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/snapshot"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mightID uint32 = 740

func testSnapshot() *snapshot.Snapshot {
	return &snapshot.Snapshot{
		Now:     5000,
		Changed: snapshot.ChangedAll,
		Buffs: snapshot.Buffs{
			mightID: {Stacks: 3, ApplyTime: 0, RunoutTime: 10_000},
		},
		Resources: snapshot.Resources{
			snapshot.ResourceHealth: {Current: 500, Max: 1000},
		},
	}
}

func newIcon(name string, source progress.Source, pos draw.Vec2) Element {
	e := New(name, NewIconElement())
	e.Trigger.Source = source
	e.Pos = pos
	return e
}

func newBar(name string, source progress.Source, pos draw.Vec2) Element {
	e := New(name, NewBar())
	e.Trigger.Source = source
	e.Pos = pos
	return e
}

func newText(name, format string, source progress.Source) Element {
	text := NewText()
	text.Text = format
	e := New(name, text)
	e.Trigger.Source = source
	return e
}

func renderPack(t *testing.T, pack *Pack, snap *snapshot.Snapshot, edit *frame.EditState) *drawtest.Recorder {
	t.Helper()
	pack.Update(frame.NewContext(snap, snap.Changed, edit))

	rec := &drawtest.Recorder{}
	pack.Render(NewRenderContext(rec, draw.Vec2{1920, 1080}, snap.Now, edit))
	return rec
}

func TestPack_RenderIcon(t *testing.T) {
	pack := NewPack("test")
	pack.Pos = draw.Vec2{100, 50}
	pack.Elements = []Element{newIcon("might", progress.Buffs(mightID), draw.Vec2{10, 10})}

	rec := renderPack(t, &pack, testSnapshot(), nil)

	icons := rec.OfKind(drawtest.CallIcon)
	require.Len(t, icons, 1)
	assert.Equal(t, draw.Vec2{94, 44}, icons[0].Min)
	assert.Equal(t, draw.Vec2{126, 76}, icons[0].Max)
	assert.Equal(t, draw.White, icons[0].Color)

	overlays := rec.OfKind(drawtest.CallRect)
	require.Len(t, overlays, 1, "half elapsed duration overlay")
	assert.Equal(t, draw.Vec2{94, 44}, overlays[0].Min)
	assert.Equal(t, draw.Vec2{126, 60}, overlays[0].Max)

	assert.Equal(t, []string{"3"}, rec.Texts())
}

func TestPack_HidesInactiveElements(t *testing.T) {
	pack := NewPack("test")
	pack.Elements = []Element{
		newBar("barrier", progress.ResourceSource(progress.SourceBarrier), draw.Vec2{}),
		newIcon("missing buff", progress.Buffs(1), draw.Vec2{}),
	}
	disabled := newIcon("disabled", progress.Always(), draw.Vec2{})
	disabled.Enabled = false
	pack.Elements = append(pack.Elements, disabled)

	rec := renderPack(t, &pack, testSnapshot(), nil)
	assert.Empty(t, rec.Calls)
}

func TestBar_Render(t *testing.T) {
	pack := NewPack("test")
	pack.Pos = draw.Vec2{100, 50}
	bar := newBar("health", progress.ResourceSource(progress.SourceHealth), draw.Vec2{0, 100})
	bar.Kind.(*Bar).Ticks = []float32{25}
	pack.Elements = []Element{bar}

	rec := renderPack(t, &pack, testSnapshot(), nil)

	rects := rec.OfKind(drawtest.CallRect)
	require.Len(t, rects, 3, "background, fill and one tick")
	assert.Equal(t, draw.Vec2{36, 142}, rects[0].Min)
	assert.Equal(t, draw.Vec2{164, 158}, rects[0].Max)
	assert.Equal(t, draw.Vec2{36, 142}, rects[1].Min)
	assert.Equal(t, draw.Vec2{100, 158}, rects[1].Max)
	assert.Equal(t, draw.Vec2{67.5, 142}, rects[2].Min)
	assert.Equal(t, draw.Vec2{68.5, 158}, rects[2].Max)

	outlines := rec.OfKind(drawtest.CallRectOutline)
	require.Len(t, outlines, 1)
	assert.Equal(t, draw.Black, outlines[0].Color)
}

func TestBar_Normalize(t *testing.T) {
	bar := NewBar()
	assert.Equal(t, float32(0.5), bar.Normalize(0.5))

	bar.LowerBound, bar.UpperBound = 0.5, 1
	assert.Equal(t, float32(0), bar.Normalize(0.25))
	assert.Equal(t, float32(0.5), bar.Normalize(0.75))
	assert.Equal(t, float32(1), bar.Normalize(1))

	bar.LowerBound, bar.UpperBound = 1, 1
	assert.Equal(t, float32(0.3), bar.Normalize(0.3), "empty bounds fall back to raw progress")
}

func TestGroup_MembersInheritActive(t *testing.T) {
	group := New("group", NewGroup())
	group.Trigger.Source = progress.Buffs(mightID)
	group.Pos = draw.Vec2{10, 0}
	group.Kind.(*Group).Members = []Element{
		newText("stacks", "%n: %i", progress.Inherit()),
	}

	pack := NewPack("test")
	pack.Elements = []Element{group}

	rec := renderPack(t, &pack, testSnapshot(), nil)
	assert.Equal(t, []string{"stacks: 3"}, rec.Texts())

	texts := rec.OfKind(drawtest.CallText)
	require.Len(t, texts, 1)
	assert.Equal(t, draw.Vec2{10 - 36, -8}, texts[0].Min, "centered on the group origin")

	stored := pack.Elements[0].Kind.(*Group).Members[0]
	require.NotNil(t, stored.Active())
	assert.Equal(t, uint32(3), stored.Active().Stacks)
}

func TestPack_OpacityAccumulates(t *testing.T) {
	pack := NewPack("test")
	pack.Opacity = 0.5
	icon := newIcon("icon", progress.Always(), draw.Vec2{})
	icon.Opacity = 0.5
	pack.Elements = []Element{icon}

	rec := renderPack(t, &pack, testSnapshot(), nil)
	icons := rec.OfKind(drawtest.CallIcon)
	require.Len(t, icons, 1)
	assert.Equal(t, draw.Color{1, 1, 1, 0.25}, icons[0].Color)
}

func TestPack_EditHighlightAndPreview(t *testing.T) {
	pack := NewPack("test")
	icon := newIcon("missing", progress.Buffs(1), draw.Vec2{})
	pack.Elements = []Element{icon}

	edit := frame.NewEditState(false)
	edit.Select(icon.ID)
	edit.SetAllowed(false)

	rec := renderPack(t, &pack, testSnapshot(), edit)
	assert.Len(t, rec.OfKind(drawtest.CallIcon), 1, "edited node previews even without data")

	outlines := rec.OfKind(drawtest.CallRectOutline)
	require.Len(t, outlines, 1)
	assert.Equal(t, draw.Highlight, outlines[0].Color)
}

func TestIconList_CollapsesHiddenIcons(t *testing.T) {
	list := NewIconList()
	visible := NewListIcon("might")
	visible.Trigger.Source = progress.Buffs(mightID)
	hidden := NewListIcon("missing")
	hidden.Trigger.Source = progress.Buffs(1)
	always := NewListIcon("always")
	always.Trigger.Source = progress.Always()
	list.Icons = []ListIcon{visible, hidden, always}

	pack := NewPack("test")
	pack.Elements = []Element{New("list", list)}

	rec := renderPack(t, &pack, testSnapshot(), nil)
	icons := rec.OfKind(drawtest.CallIcon)
	require.Len(t, icons, 2)
	assert.Equal(t, draw.Vec2{-16, -16}, icons[0].Min)
	assert.Equal(t, draw.Vec2{18, -16}, icons[1].Min, "second visible icon takes the next slot")
}

func TestFormatText(t *testing.T) {
	buff := progress.NewBuff(mightID, 12, 0, 75_000)
	res := progress.NewResource(12_345, 20_000)

	assert.Equal(t, "Might x12", FormatText("%n x%i", "Might", &buff, 10_000, true))
	assert.Equal(t, "1:05 / 1:15", FormatText("%c / %m", "", &buff, 10_000, true))
	assert.Equal(t, "65.0", FormatText("%C", "", &buff, 10_000, true))
	assert.Equal(t, "12.3k 12345 20000", FormatText("%c %C %M", "", &res, 0, true))
	assert.Equal(t, "62%", FormatText("%p%%", "", &res, 0, true))
	assert.Equal(t, "%x and %", FormatText("%x and %", "", &res, 0, true))
	assert.Equal(t, "name: ", FormatText("%n: %i", "name", nil, 0, true))
	assert.Equal(t, "plain", FormatText("plain", "", nil, 0, true))
}

func TestElement_CloneRegeneratesIDs(t *testing.T) {
	group := New("group", NewGroup())
	group.Kind.(*Group).Members = []Element{
		newIcon("icon", progress.Buffs(1, 2), draw.Vec2{1, 2}),
	}

	clone := group.Clone()
	assert.NotEqual(t, group.ID, clone.ID)

	original := group.Kind.(*Group).Members[0]
	copied := clone.Kind.(*Group).Members[0]
	assert.NotEqual(t, original.ID, copied.ID)
	assert.Equal(t, original.Name, copied.Name)
	assert.Equal(t, original.Pos, copied.Pos)

	copied.Trigger.Source.IDs[0] = 99
	clone.Kind.(*Group).Members = append(clone.Kind.(*Group).Members, New("extra", NewText()))
	assert.Equal(t, uint32(1), original.Trigger.Source.IDs[0])
	assert.Len(t, group.Kind.(*Group).Members, 1)
}

func TestTree(t *testing.T) {
	leaf := newIcon("leaf", progress.Always(), draw.Vec2{})
	inner := New("inner", NewGroup())
	inner.Kind.(*Group).Members = []Element{leaf}
	outer := New("outer", NewGroup())
	outer.Kind.(*Group).Members = []Element{inner}
	sibling := newText("sibling", "", progress.Always())

	pack := NewPack("pack")
	pack.Elements = []Element{outer, sibling}

	t.Run("find", func(t *testing.T) {
		found := pack.Find(leaf.ID)
		require.NotNil(t, found)
		assert.Equal(t, "leaf", found.Name)
		assert.Nil(t, pack.Find(pack.ID))
	})

	t.Run("container", func(t *testing.T) {
		assert.Same(t, &pack.Elements, pack.Container(pack.ID))
		members := pack.Container(inner.ID)
		require.NotNil(t, members)
		assert.Len(t, *members, 1)
		assert.Nil(t, pack.Container(leaf.ID), "icons own no children")
	})

	t.Run("contains", func(t *testing.T) {
		assert.True(t, pack.Find(outer.ID).Contains(leaf.ID))
		assert.True(t, pack.Find(outer.ID).Contains(outer.ID))
		assert.False(t, pack.Find(inner.ID).Contains(sibling.ID))
	})

	t.Run("walk", func(t *testing.T) {
		var names []string
		var depths []int
		Walk(pack.Elements, func(e *Element, depth int) bool {
			names = append(names, e.Name)
			depths = append(depths, depth)
			return true
		})
		assert.Equal(t, []string{"outer", "inner", "leaf", "sibling"}, names)
		assert.Equal(t, []int{0, 1, 2, 0}, depths)
	})

	t.Run("remove", func(t *testing.T) {
		removed, ok := pack.Remove(leaf.ID)
		require.True(t, ok)
		assert.Equal(t, leaf.ID, removed.ID)
		assert.Nil(t, pack.Find(leaf.ID))

		_, ok = pack.Remove(leaf.ID)
		assert.False(t, ok)
	})
}

func TestSortByLayer(t *testing.T) {
	a, b, c := NewPack("a"), NewPack("b"), NewPack("c")
	a.Layer, b.Layer, c.Layer = 2, 0, 2
	packs := []*Pack{&a, &b, &c}

	SortByLayer(packs)
	assert.Equal(t, "b", packs[0].Name)
	assert.Equal(t, "a", packs[1].Name)
	assert.Equal(t, "c", packs[2].Name)
}
