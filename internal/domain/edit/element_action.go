package edit

import (
	"fmt"

	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
)

// ElementActionKind is a structural change to an element's position in the tree
type ElementActionKind uint8

const (
	ElementNone ElementActionKind = iota
	ElementCut
	ElementCopy
	ElementDuplicate
	ElementUp
	ElementDown
	ElementDelete
	ElementDrag
	ElementPaste
	ElementDrop
)

// AllElementActions lists the actions offered on a tree row
var AllElementActions = [...]ElementActionKind{
	ElementCut,
	ElementCopy,
	ElementDuplicate,
	ElementUp,
	ElementDown,
	ElementDelete,
	ElementDrag,
	ElementPaste,
	ElementDrop,
}

func (k ElementActionKind) String() string {
	switch k {
	case ElementNone:
		return "none"
	case ElementCut:
		return "cut"
	case ElementCopy:
		return "copy"
	case ElementDuplicate:
		return "duplicate"
	case ElementUp:
		return "up"
	case ElementDown:
		return "down"
	case ElementDelete:
		return "delete"
	case ElementDrag:
		return "drag"
	case ElementPaste:
		return "paste"
	case ElementDrop:
		return "drop"
	}
	return fmt.Sprintf("element_action(%d)", uint8(k))
}

// ElementAction targets the child slice owned by Parent, a pack or group id.
// Index is the element acted on, or the insert position for paste and drop where -1 appends.
type ElementAction struct {
	Kind   ElementActionKind
	Parent id.ID
	Index  int
}

// IsNone reports whether there is nothing to do
func (a ElementAction) IsNone() bool {
	return a.Kind == ElementNone
}

// Or keeps the first action of a pass
func (a ElementAction) Or(other ElementAction) ElementAction {
	if !a.IsNone() {
		return a
	}
	return other
}

// modifies reports whether applying the action changes the tree
func (a ElementAction) modifies() bool {
	switch a.Kind {
	case ElementNone, ElementCopy, ElementDrag:
		return false
	}
	return true
}

func (a ElementAction) String() string {
	return fmt.Sprintf("%s parent=%s index=%d", a.Kind, a.Parent, a.Index)
}
