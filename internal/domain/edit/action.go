// Package edit performs structural changes to the element tree. Actions are captured while
// the tree is traversed, at most one per pass, and applied after traversal completes.
package edit

import "fmt"

// ActionKind is a reorder or delete on a homogeneous slice
type ActionKind uint8

const (
	ActionNone ActionKind = iota
	ActionUp
	ActionDown
	ActionDelete
	ActionDuplicate
)

func (k ActionKind) String() string {
	switch k {
	case ActionNone:
		return "none"
	case ActionUp:
		return "up"
	case ActionDown:
		return "down"
	case ActionDelete:
		return "delete"
	case ActionDuplicate:
		return "duplicate"
	}
	return fmt.Sprintf("action(%d)", uint8(k))
}

// Action targets one index of a slice such as a condition list or icon list icons
type Action struct {
	Kind  ActionKind
	Index int
}

func Up(i int) Action        { return Action{Kind: ActionUp, Index: i} }
func Down(i int) Action      { return Action{Kind: ActionDown, Index: i} }
func Delete(i int) Action    { return Action{Kind: ActionDelete, Index: i} }
func Duplicate(i int) Action { return Action{Kind: ActionDuplicate, Index: i} }

// IsNone reports whether there is nothing to do
func (a Action) IsNone() bool {
	return a.Kind == ActionNone
}

// Or keeps the first action of a pass: a is returned unless it is none
func (a Action) Or(other Action) Action {
	if !a.IsNone() {
		return a
	}
	return other
}

// ApplyAction mutates items. Up on the first item moves it to the end and Down on the last
// moves it to the front. Empty slices and out of range indices are left alone.
// Duplicate inserts clone(item) right after the item.
func ApplyAction[T any](items *[]T, a Action, clone func(T) T) bool {
	list := *items
	i := a.Index
	if i < 0 || i >= len(list) {
		return false
	}

	switch a.Kind {
	case ActionUp:
		if i == 0 {
			*items = append(list[1:], list[0])
		} else {
			list[i-1], list[i] = list[i], list[i-1]
		}
	case ActionDown:
		last := len(list) - 1
		if i == last {
			*items = append([]T{list[last]}, list[:last]...)
		} else {
			list[i], list[i+1] = list[i+1], list[i]
		}
	case ActionDelete:
		*items = append(list[:i], list[i+1:]...)
	case ActionDuplicate:
		if clone == nil {
			return false
		}
		dup := clone(list[i])
		*items = insert(list, i+1, dup)
	default:
		return false
	}
	return true
}

// insert places item at index, appending when index is out of range
func insert[T any](items []T, index int, item T) []T {
	if index < 0 || index >= len(items) {
		return append(items, item)
	}
	items = append(items, item)
	copy(items[index+1:], items[index:])
	items[index] = item
	return items
}
