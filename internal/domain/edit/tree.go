package edit

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
)

// Row is one line of the tree view as handed to the input
type Row struct {
	Element  *element.Element
	Parent   id.ID
	Index    int
	Depth    int
	Selected bool
	Dragging bool
}

// RowResult is what the user did on a row this pass
type RowResult struct {
	Clicked bool
	Action  ElementActionKind
}

// RowInput draws or inspects a tree row and reports interaction with it
type RowInput interface {
	Row(row Row) RowResult
}

// RowInputFunc adapts a function to RowInput
type RowInputFunc func(row Row) RowResult

func (f RowInputFunc) Row(row Row) RowResult {
	return f(row)
}

// Traverse walks the pack's tree in display order. It records the selection's ancestry,
// applies clicks to the selection and captures at most one action. Nothing in the tree is
// modified until Apply.
func (s *Session) Traverse(pack *element.Pack, input RowInput) {
	s.State.Visit(pack.ID, nil)
	s.traverse(pack.Elements, pack.ID, []id.ID{pack.ID}, 0, input)
}

func (s *Session) traverse(elements []element.Element, parent id.ID, ancestors []id.ID, depth int, input RowInput) {
	for i := range elements {
		e := &elements[i]
		s.State.Visit(e.ID, ancestors)

		result := input.Row(Row{
			Element:  e,
			Parent:   parent,
			Index:    i,
			Depth:    depth,
			Selected: s.State.IsSelected(e.ID),
			Dragging: s.dragging == e.ID,
		})
		if result.Clicked {
			s.State.Select(e.ID)
		}
		if result.Action != ElementNone {
			s.Capture(rowAction(result.Action, e, parent, i))
		}

		if members := e.Members(); members != nil {
			s.traverse(*members, e.ID, append(ancestors, e.ID), depth+1, input)
		}
	}
}

// rowAction targets the row's slot. Paste and drop on a group go into the group,
// elsewhere they land right after the row.
func rowAction(kind ElementActionKind, e *element.Element, parent id.ID, index int) ElementAction {
	if kind == ElementPaste || kind == ElementDrop {
		if e.Members() != nil {
			return ElementAction{Kind: kind, Parent: e.ID, Index: -1}
		}
		return ElementAction{Kind: kind, Parent: parent, Index: index + 1}
	}
	return ElementAction{Kind: kind, Parent: parent, Index: index}
}
