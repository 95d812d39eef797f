package element

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
)

// Find returns the element with the id at any depth, nil when absent
func Find(elements []Element, target id.ID) *Element {
	for i := range elements {
		e := &elements[i]
		if e.ID == target {
			return e
		}
		if members := e.Members(); members != nil {
			if found := Find(*members, target); found != nil {
				return found
			}
		}
	}
	return nil
}

// Container returns the members of the group with the id, nil when there is no such group
func Container(elements []Element, parent id.ID) *[]Element {
	e := Find(elements, parent)
	if e == nil {
		return nil
	}
	return e.Members()
}

// Remove detaches the element with the id at any depth
func Remove(elements *[]Element, target id.ID) (Element, bool) {
	for i := range *elements {
		e := &(*elements)[i]
		if e.ID == target {
			removed := *e
			*elements = append((*elements)[:i], (*elements)[i+1:]...)
			return removed, true
		}
		if members := e.Members(); members != nil {
			if removed, ok := Remove(members, target); ok {
				return removed, true
			}
		}
	}
	return Element{}, false
}

// Contains reports whether the element or any descendant has the id
func (e *Element) Contains(target id.ID) bool {
	if e.ID == target {
		return true
	}
	if members := e.Members(); members != nil {
		return Find(*members, target) != nil
	}
	return false
}

// Walk visits elements depth first with their depth. Returning false skips the children.
func Walk(elements []Element, fn func(e *Element, depth int) bool) {
	walk(elements, 0, fn)
}

func walk(elements []Element, depth int, fn func(e *Element, depth int) bool) {
	for i := range elements {
		e := &elements[i]
		if !fn(e, depth) {
			continue
		}
		if members := e.Members(); members != nil {
			walk(*members, depth+1, fn)
		}
	}
}
