package edit

import (
	"log"

	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/frame"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
)

// Session is the editor state for one user: selection, clipboard, drag slot and the
// actions captured during the current pass.
type Session struct {
	State *frame.EditState

	clipboard *element.Element
	dragging  id.ID

	pending   ElementAction
	fieldCopy FieldCopy
}

// NewSession creates a session with nothing selected
func NewSession(duringCombat bool) *Session {
	return &Session{State: frame.NewEditState(duringCombat)}
}

// Clipboard returns the clipboard contents, nil when empty. The value is owned by the session.
func (s *Session) Clipboard() *element.Element {
	return s.clipboard
}

// SetClipboard replaces the clipboard with a copy of e
func (s *Session) SetClipboard(e *element.Element) {
	clone := e.Clone()
	s.clipboard = &clone
}

// Dragging returns the id of the element being dragged, id.None when not dragging
func (s *Session) Dragging() id.ID {
	return s.dragging
}

// CancelDrag ends a drag without moving anything
func (s *Session) CancelDrag() {
	s.dragging = id.None
}

// Capture records an action for this pass. Only the first action of a pass is kept.
func (s *Session) Capture(a ElementAction) bool {
	if a.IsNone() || !s.pending.IsNone() {
		return false
	}
	s.pending = a
	return true
}

// CaptureFieldCopy records a field copy for this pass. Only the first one is kept.
func (s *Session) CaptureFieldCopy(fc FieldCopy) bool {
	if fc.IsNone() || !s.fieldCopy.IsNone() {
		return false
	}
	s.fieldCopy = fc
	return true
}

// Pending returns the action captured this pass
func (s *Session) Pending() ElementAction {
	return s.pending
}

// Result describes what Apply did
type Result struct {
	Action    ElementAction
	FieldCopy string

	// Modified lists the packs whose tree changed
	Modified []*element.Pack
}

// Apply runs the captured action and field copy against the packs and clears them.
// Actions that do not fit the tree are dropped.
func (s *Session) Apply(packs []*element.Pack) Result {
	action, fc := s.pending, s.fieldCopy
	s.pending, s.fieldCopy = ElementAction{}, FieldCopy{}

	var result Result
	if !action.IsNone() {
		if modified, ok := s.applyAction(packs, action); ok {
			result.Action = action
			result.Modified = append(result.Modified, modified...)
		} else {
			log.Printf("[EDIT] Dropped action %s", action)
		}
	}
	if !fc.IsNone() {
		if pack := applyFieldCopy(packs, fc); pack != nil {
			result.FieldCopy = fc.Field
			result.Modified = appendUnique(result.Modified, pack)
		}
	}
	return result
}

func (s *Session) applyAction(packs []*element.Pack, a ElementAction) ([]*element.Pack, bool) {
	pack, container := findContainer(packs, a.Parent)
	if container == nil {
		return nil, false
	}

	switch a.Kind {
	case ElementPaste:
		if s.clipboard == nil {
			return nil, false
		}
		*container = insert(*container, a.Index, s.clipboard.Clone())
		return []*element.Pack{pack}, true
	case ElementDrop:
		return s.drop(packs, pack, a)
	}

	items := *container
	if a.Index < 0 || a.Index >= len(items) {
		return nil, false
	}
	target := &items[a.Index]

	switch a.Kind {
	case ElementCopy:
		s.SetClipboard(target)
		return nil, true
	case ElementCut:
		removed := items[a.Index]
		*container = append(items[:a.Index], items[a.Index+1:]...)
		s.clipboard = &removed
		s.forget(&removed)
	case ElementDelete:
		removed := items[a.Index]
		*container = append(items[:a.Index], items[a.Index+1:]...)
		s.forget(&removed)
	case ElementDuplicate:
		ApplyAction(container, Duplicate(a.Index), func(e element.Element) element.Element { return e.Clone() })
	case ElementUp:
		ApplyAction(container, Up(a.Index), nil)
	case ElementDown:
		ApplyAction(container, Down(a.Index), nil)
	case ElementDrag:
		s.dragging = target.ID
		return nil, true
	default:
		return nil, false
	}
	return []*element.Pack{pack}, true
}

// drop moves the dragged element into the target slice. Dropping an element into itself
// or one of its descendants is refused and ends the drag.
func (s *Session) drop(packs []*element.Pack, target *element.Pack, a ElementAction) ([]*element.Pack, bool) {
	dragged := s.dragging
	s.dragging = id.None
	if dragged.IsNone() {
		return nil, false
	}

	source, sourceContainer, index := findOwner(packs, dragged)
	if source == nil {
		return nil, false
	}
	if (*sourceContainer)[index].Contains(a.Parent) {
		log.Printf("[EDIT] Refused dropping %s into itself", dragged)
		return nil, false
	}

	moved := (*sourceContainer)[index]
	*sourceContainer = append((*sourceContainer)[:index], (*sourceContainer)[index+1:]...)

	_, targetContainer := findContainer(packs, a.Parent)
	insertAt := a.Index
	if targetContainer == sourceContainer && insertAt > index {
		insertAt--
	}
	*targetContainer = insert(*targetContainer, insertAt, moved)

	return appendUnique([]*element.Pack{source}, target), true
}

// forget clears the selection and drag when they point into a removed subtree
func (s *Session) forget(removed *element.Element) {
	if selected := s.State.Selected(); !selected.IsNone() && removed.Contains(selected) {
		s.State.Clear()
	}
	if !s.dragging.IsNone() && removed.Contains(s.dragging) {
		s.dragging = id.None
	}
}

func applyFieldCopy(packs []*element.Pack, fc FieldCopy) *element.Pack {
	pack, container := findContainer(packs, fc.Parent)
	if container == nil {
		return nil
	}
	for i := range *container {
		sibling := &(*container)[i]
		if sibling.ID != fc.Source {
			fc.apply(sibling)
		}
	}
	return pack
}

// findContainer locates the child slice owned by a pack or group id
func findContainer(packs []*element.Pack, parent id.ID) (*element.Pack, *[]element.Element) {
	for _, pack := range packs {
		if container := pack.Container(parent); container != nil {
			return pack, container
		}
	}
	return nil, nil
}

// findOwner locates the slice and index holding the element with the id
func findOwner(packs []*element.Pack, target id.ID) (*element.Pack, *[]element.Element, int) {
	for _, pack := range packs {
		if container, index := owner(&pack.Elements, target); container != nil {
			return pack, container, index
		}
	}
	return nil, nil, -1
}

func owner(elements *[]element.Element, target id.ID) (*[]element.Element, int) {
	for i := range *elements {
		e := &(*elements)[i]
		if e.ID == target {
			return elements, i
		}
		if members := e.Members(); members != nil {
			if container, index := owner(members, target); container != nil {
				return container, index
			}
		}
	}
	return nil, -1
}

func appendUnique(packs []*element.Pack, pack *element.Pack) []*element.Pack {
	for _, p := range packs {
		if p == pack {
			return packs
		}
	}
	return append(packs, pack)
}
