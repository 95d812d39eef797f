package edit

import (
	"testing"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/progress"
	"github.com/KirkDiggler/overlay-engine/internal/domain/props"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

func TestApplyAction(t *testing.T) {
	clone := func(s string) string { return s + "'" }

	tests := []struct {
		name     string
		items    []string
		action   Action
		expected []string
		applied  bool
	}{
		{name: "up on single item", items: []string{"a"}, action: Up(0), expected: []string{"a"}, applied: true},
		{name: "up swaps", items: []string{"a", "b", "c"}, action: Up(2), expected: []string{"a", "c", "b"}, applied: true},
		{name: "up wraps to end", items: []string{"a", "b", "c"}, action: Up(0), expected: []string{"b", "c", "a"}, applied: true},
		{name: "down swaps", items: []string{"a", "b", "c"}, action: Down(0), expected: []string{"b", "a", "c"}, applied: true},
		{name: "down wraps to front", items: []string{"a", "b", "c"}, action: Down(2), expected: []string{"c", "a", "b"}, applied: true},
		{name: "delete", items: []string{"a", "b", "c"}, action: Delete(1), expected: []string{"a", "c"}, applied: true},
		{name: "duplicate inserts after", items: []string{"a", "b"}, action: Duplicate(0), expected: []string{"a", "a'", "b"}, applied: true},
		{name: "duplicate last", items: []string{"a", "b"}, action: Duplicate(1), expected: []string{"a", "b", "b'"}, applied: true},
		{name: "empty slice", items: []string{}, action: Down(0), expected: []string{}, applied: false},
		{name: "out of range", items: []string{"a"}, action: Delete(3), expected: []string{"a"}, applied: false},
		{name: "negative", items: []string{"a"}, action: Up(-1), expected: []string{"a"}, applied: false},
		{name: "none", items: []string{"a"}, action: Action{}, expected: []string{"a"}, applied: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := append([]string{}, tt.items...)
			assert.Equal(t, tt.applied, ApplyAction(&items, tt.action, clone))
			assert.Equal(t, tt.expected, items)
		})
	}
}

func TestAction_OrKeepsFirst(t *testing.T) {
	assert.Equal(t, Up(1), Action{}.Or(Up(1)))
	assert.Equal(t, Up(1), Up(1).Or(Delete(2)))

	first := ElementAction{Kind: ElementCut, Index: 1}
	assert.Equal(t, first, first.Or(ElementAction{Kind: ElementDelete}))
}

func TestApplyAction_Conditions(t *testing.T) {
	icon := element.NewIconElement()
	red, blue := draw.Color{1, 0, 0, 1}, draw.Color{0, 0, 1, 1}
	icon.Props.Conditions = []props.Condition[element.IconStyle, element.IconStylePartial]{
		{Properties: element.IconStylePartial{Tint: &red}},
		{Properties: element.IconStylePartial{Tint: &blue}},
	}

	ApplyAction(&icon.Props.Conditions, Up(1), nil)
	assert.Equal(t, blue, *icon.Props.Conditions[0].Properties.Tint)

	ApplyAction(&icon.Props.Conditions, Duplicate(0), func(c props.Condition[element.IconStyle, element.IconStylePartial]) props.Condition[element.IconStyle, element.IconStylePartial] {
		return c.Clone()
	})
	require.Len(t, icon.Props.Conditions, 3)
	assert.NotSame(t, icon.Props.Conditions[0].Properties.Tint, icon.Props.Conditions[1].Properties.Tint)
}

type SessionTestSuite struct {
	suite.Suite
	session *Session
	pack    *element.Pack
	other   *element.Pack
	group   id.ID
	icon    id.ID
	text    id.ID
	bar     id.ID
}

func (s *SessionTestSuite) SetupTest() {
	s.session = NewSession(false)

	icon := element.New("icon", element.NewIconElement())
	text := element.New("text", element.NewText())
	group := element.New("group", element.NewGroup())
	*group.Members() = []element.Element{icon, text}
	bar := element.New("bar", element.NewBar())

	pack := element.NewPack("pack")
	pack.Elements = []element.Element{group, bar}
	other := element.NewPack("other")

	s.pack, s.other = &pack, &other
	s.group, s.icon, s.text, s.bar = group.ID, icon.ID, text.ID, bar.ID
}

func (s *SessionTestSuite) packs() []*element.Pack {
	return []*element.Pack{s.pack, s.other}
}

func (s *SessionTestSuite) names(elements []element.Element) []string {
	var names []string
	for _, e := range elements {
		names = append(names, e.Name)
	}
	return names
}

func (s *SessionTestSuite) members() []element.Element {
	return *s.pack.Container(s.group)
}

func (s *SessionTestSuite) TestCaptureFirstWins() {
	s.True(s.session.Capture(ElementAction{Kind: ElementDelete, Parent: s.pack.ID, Index: 1}))
	s.False(s.session.Capture(ElementAction{Kind: ElementDelete, Parent: s.pack.ID, Index: 0}))

	result := s.session.Apply(s.packs())
	s.Equal(ElementDelete, result.Action.Kind)
	s.Equal([]string{"group"}, s.names(s.pack.Elements))
	s.Equal([]*element.Pack{s.pack}, result.Modified)

	s.True(s.session.Pending().IsNone(), "apply clears the pending action")
}

func (s *SessionTestSuite) TestClipboardLastWriteWins() {
	s.session.Capture(ElementAction{Kind: ElementCopy, Parent: s.group, Index: 0})
	s.session.Apply(s.packs())
	s.session.Capture(ElementAction{Kind: ElementCopy, Parent: s.group, Index: 1})
	result := s.session.Apply(s.packs())

	s.Empty(result.Modified, "copy does not modify the tree")
	clip := s.session.Clipboard()
	s.Require().NotNil(clip)
	s.Equal("text", clip.Name)
	s.NotEqual(s.text, clip.ID, "clipboard holds a copy")
}

func (s *SessionTestSuite) TestCutAndPaste() {
	s.session.State.Select(s.icon)

	s.session.Capture(ElementAction{Kind: ElementCut, Parent: s.group, Index: 0})
	s.session.Apply(s.packs())
	s.Equal([]string{"text"}, s.names(s.members()))
	s.True(s.session.State.Selected().IsNone(), "cutting the selection clears it")

	s.session.Capture(ElementAction{Kind: ElementPaste, Parent: s.other.ID, Index: -1})
	result := s.session.Apply(s.packs())
	s.Equal([]*element.Pack{s.other}, result.Modified)
	s.Require().Len(s.other.Elements, 1)
	s.Equal("icon", s.other.Elements[0].Name)

	s.session.Capture(ElementAction{Kind: ElementPaste, Parent: s.other.ID, Index: 0})
	s.session.Apply(s.packs())
	s.Require().Len(s.other.Elements, 2)
	s.NotEqual(s.other.Elements[0].ID, s.other.Elements[1].ID, "every paste gets fresh ids")
}

func (s *SessionTestSuite) TestPasteWithEmptyClipboard() {
	s.session.Capture(ElementAction{Kind: ElementPaste, Parent: s.pack.ID, Index: -1})
	result := s.session.Apply(s.packs())
	s.True(result.Action.IsNone())
	s.Len(s.pack.Elements, 2)
}

func (s *SessionTestSuite) TestDuplicateAndReorder() {
	s.session.Capture(ElementAction{Kind: ElementDuplicate, Parent: s.group, Index: 0})
	s.session.Apply(s.packs())
	s.Equal([]string{"icon", "icon", "text"}, s.names(s.members()))
	s.NotEqual(s.members()[0].ID, s.members()[1].ID)

	s.session.Capture(ElementAction{Kind: ElementUp, Parent: s.group, Index: 0})
	s.session.Apply(s.packs())
	s.Equal([]string{"icon", "text", "icon"}, s.names(s.members()))

	s.session.Capture(ElementAction{Kind: ElementDown, Parent: s.group, Index: 1})
	s.session.Apply(s.packs())
	s.Equal([]string{"icon", "icon", "text"}, s.names(s.members()))
}

func (s *SessionTestSuite) TestOutOfRangeIsDropped() {
	s.session.Capture(ElementAction{Kind: ElementDelete, Parent: s.group, Index: 7})
	result := s.session.Apply(s.packs())
	s.True(result.Action.IsNone())
	s.Len(s.members(), 2)

	s.session.Capture(ElementAction{Kind: ElementDelete, Parent: id.Next(), Index: 0})
	result = s.session.Apply(s.packs())
	s.True(result.Action.IsNone())
}

func (s *SessionTestSuite) TestDragKeepsNodeUntilDrop() {
	s.session.Capture(ElementAction{Kind: ElementDrag, Parent: s.pack.ID, Index: 1})
	s.session.Apply(s.packs())
	s.Equal(s.bar, s.session.Dragging())
	s.Len(s.pack.Elements, 2, "dragging does not remove anything")

	s.session.CancelDrag()
	s.True(s.session.Dragging().IsNone())
	s.Len(s.pack.Elements, 2)

	s.session.Capture(ElementAction{Kind: ElementDrag, Parent: s.pack.ID, Index: 1})
	s.session.Apply(s.packs())
	s.session.Capture(ElementAction{Kind: ElementDrop, Parent: s.group, Index: 1})
	result := s.session.Apply(s.packs())

	s.Equal(ElementDrop, result.Action.Kind)
	s.Equal([]string{"group"}, s.names(s.pack.Elements))
	s.Equal([]string{"icon", "bar", "text"}, s.names(s.members()))
	s.Equal(s.bar, s.members()[1].ID, "moving keeps the id")
	s.True(s.session.Dragging().IsNone())
}

func (s *SessionTestSuite) TestDropIntoSelfIsRefused() {
	s.session.Capture(ElementAction{Kind: ElementDrag, Parent: s.pack.ID, Index: 0})
	s.session.Apply(s.packs())

	s.session.Capture(ElementAction{Kind: ElementDrop, Parent: s.group, Index: -1})
	result := s.session.Apply(s.packs())

	s.True(result.Action.IsNone())
	s.Equal([]string{"group", "bar"}, s.names(s.pack.Elements))
	s.Len(s.members(), 2)
	s.True(s.session.Dragging().IsNone(), "a refused drop ends the drag")
}

func (s *SessionTestSuite) TestDropWithinSameSliceAdjustsIndex() {
	s.session.Capture(ElementAction{Kind: ElementDrag, Parent: s.pack.ID, Index: 0})
	s.session.Apply(s.packs())

	s.session.Capture(ElementAction{Kind: ElementDrop, Parent: s.pack.ID, Index: 2})
	s.session.Apply(s.packs())
	s.Equal([]string{"bar", "group"}, s.names(s.pack.Elements))
}

func (s *SessionTestSuite) TestDropAcrossPacks() {
	s.session.Capture(ElementAction{Kind: ElementDrag, Parent: s.pack.ID, Index: 1})
	s.session.Apply(s.packs())

	s.session.Capture(ElementAction{Kind: ElementDrop, Parent: s.other.ID, Index: -1})
	result := s.session.Apply(s.packs())
	s.ElementsMatch([]*element.Pack{s.pack, s.other}, result.Modified)
	s.Equal([]string{"bar"}, s.names(s.other.Elements))
}

func (s *SessionTestSuite) TestFieldCopyToSiblings() {
	bar := element.New("bar 2", element.NewBar())
	bar.Trigger.Source = progress.ResourceSource(progress.SourceEndurance)
	*s.pack.Container(s.group) = append(s.members(), bar)

	src := s.pack.Find(s.icon)
	src.Trigger.Source = progress.Buffs(740)

	s.True(s.session.CaptureFieldCopy(CopyTrigger(s.group, src)))
	s.False(s.session.CaptureFieldCopy(CopyFilter(s.group, src)), "one field copy per pass")

	result := s.session.Apply(s.packs())
	s.Equal("trigger", result.FieldCopy)
	s.Equal([]*element.Pack{s.pack}, result.Modified)
	for _, e := range s.members() {
		s.Equal(progress.Buffs(740), e.Trigger.Source, e.Name)
	}
	s.Equal(progress.Inherit(), s.pack.Find(s.bar).Trigger.Source, "only siblings are touched")
}

func (s *SessionTestSuite) TestCopyBaseStyleAndCondition() {
	other := element.New("other icon", element.NewIconList())
	*s.pack.Container(s.group) = append(s.members(), other)

	src := s.pack.Find(s.icon)
	icon := src.Kind.(*element.IconElement)
	icon.Props.Base.Zoom = 2
	red := draw.Color{1, 0, 0, 1}
	icon.Props.Conditions = []props.Condition[element.IconStyle, element.IconStylePartial]{
		{Trigger: props.ThresholdCondition(progress.DefaultThreshold()), Properties: element.IconStylePartial{Tint: &red}},
	}

	s.session.CaptureFieldCopy(CopyBaseStyle(s.group, src))
	s.session.Apply(s.packs())

	list := s.pack.Find(other.ID).Kind.(*element.IconList)
	s.Equal(float32(2), list.Props.Base.Zoom, "icon lists share the icon style")
	text := s.pack.Find(s.text).Kind.(*element.Text)
	s.Equal(float32(1), text.Props.Base.Scale, "other styles are left alone")

	s.session.CaptureFieldCopy(CopyCondition(s.group, src, 0))
	s.session.Apply(s.packs())
	s.Require().Len(list.Props.Conditions, 1)
	s.Len(icon.Props.Conditions, 1, "the source keeps its own list")

	s.False(s.session.CaptureFieldCopy(CopyCondition(s.group, src, 5)), "missing condition")
}

func (s *SessionTestSuite) TestTraverse() {
	var rows []Row
	input := RowInputFunc(func(row Row) RowResult {
		rows = append(rows, row)
		if row.Element.ID == s.text {
			return RowResult{Clicked: true, Action: ElementDelete}
		}
		if row.Element.ID == s.bar {
			return RowResult{Action: ElementCopy}
		}
		return RowResult{}
	})

	s.session.Traverse(s.pack, input)
	s.Require().Len(rows, 4)
	s.Equal([]int{0, 1, 1, 0}, []int{rows[0].Depth, rows[1].Depth, rows[2].Depth, rows[3].Depth})
	s.Equal(s.group, rows[1].Parent)
	s.Equal(s.text, s.session.State.Selected())
	s.Empty(s.session.State.Parents(), "ancestry is recorded on the next traversal")
	s.Equal(ElementAction{Kind: ElementDelete, Parent: s.group, Index: 1}, s.session.Pending())

	s.session.Apply(s.packs())
	s.True(s.session.State.Selected().IsNone(), "deleting the selection clears it")

	s.session.State.Select(s.icon)
	s.session.Traverse(s.pack, RowInputFunc(func(Row) RowResult { return RowResult{} }))
	s.Equal([]id.ID{s.pack.ID, s.group}, s.session.State.Parents())
}

func (s *SessionTestSuite) TestRowActionTargets() {
	group := s.pack.Find(s.group)
	bar := s.pack.Find(s.bar)

	s.Equal(ElementAction{Kind: ElementPaste, Parent: s.group, Index: -1}, rowAction(ElementPaste, group, s.pack.ID, 0))
	s.Equal(ElementAction{Kind: ElementDrop, Parent: s.pack.ID, Index: 2}, rowAction(ElementDrop, bar, s.pack.ID, 1))
	s.Equal(ElementAction{Kind: ElementUp, Parent: s.pack.ID, Index: 1}, rowAction(ElementUp, bar, s.pack.ID, 1))
}

func TestSessionSuite(t *testing.T) {
	suite.Run(t, new(SessionTestSuite))
}
