// Package element is the editable tree the overlay renders: packs own elements, groups own
// members, and every node carries a Common block plus one kind-specific payload.
package element

import (
	"encoding/json"
	"fmt"
)

// Type tags the element kind in persisted documents
type Type string

const (
	TypeGroup    Type = "group"
	TypeIcon     Type = "icon"
	TypeIconList Type = "icon_list"
	TypeText     Type = "text"
	TypeBar      Type = "bar"
)

// AllTypes lists every element kind in menu order
var AllTypes = [...]Type{TypeGroup, TypeIcon, TypeIconList, TypeText, TypeBar}

// legacy type tags accepted on read
var typeAliases = map[string]Type{
	"list":     TypeIconList,
	"IconList": TypeIconList,
	"text_box": TypeText,
}

// ParseType resolves a type tag, including legacy names
func ParseType(name string) (Type, error) {
	if t, ok := typeAliases[name]; ok {
		return t, nil
	}
	for _, t := range AllTypes {
		if string(t) == name {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown element type %q", name)
}

// Kind is the kind-specific payload of an element. The set of kinds is closed:
// *Group, *IconElement, *IconList, *Text and *Bar.
type Kind interface {
	Type() Type
	json.Marshaler
	json.Unmarshaler

	sealed()
}

func (*Group) sealed()       {}
func (*IconElement) sealed() {}
func (*IconList) sealed()    {}
func (*Text) sealed()        {}
func (*Bar) sealed()         {}

func (*Group) Type() Type       { return TypeGroup }
func (*IconElement) Type() Type { return TypeIcon }
func (*IconList) Type() Type    { return TypeIconList }
func (*Text) Type() Type        { return TypeText }
func (*Bar) Type() Type         { return TypeBar }

// NewKind creates a kind with its defaults
func NewKind(t Type) (Kind, error) {
	switch t {
	case TypeGroup:
		return NewGroup(), nil
	case TypeIcon:
		return NewIconElement(), nil
	case TypeIconList:
		return NewIconList(), nil
	case TypeText:
		return NewText(), nil
	case TypeBar:
		return NewBar(), nil
	}
	return nil, fmt.Errorf("unknown element type %q", t)
}

// cloneKind deep copies a kind. Nested elements get fresh ids.
func cloneKind(kind Kind) Kind {
	switch k := kind.(type) {
	case *Group:
		return k.clone()
	case *IconElement:
		return k.clone()
	case *IconList:
		return k.clone()
	case *Text:
		return k.clone()
	case *Bar:
		return k.clone()
	}
	return nil
}
