package edit

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/element"
	"github.com/KirkDiggler/overlay-engine/internal/domain/id"
	"github.com/KirkDiggler/overlay-engine/internal/domain/props"
)

// FieldCopy copies one field of a source element to every sibling in the same child slice
type FieldCopy struct {
	Parent id.ID
	Source id.ID
	Field  string

	apply func(dst *element.Element)
}

// IsNone reports whether there is nothing to copy
func (f *FieldCopy) IsNone() bool {
	return f == nil || f.apply == nil
}

// CopyTrigger copies the progress trigger
func CopyTrigger(parent id.ID, src *element.Element) FieldCopy {
	trig := src.Trigger.Clone()
	return FieldCopy{
		Parent: parent,
		Source: src.ID,
		Field:  "trigger",
		apply: func(dst *element.Element) {
			dst.Trigger = trig.Clone()
		},
	}
}

// CopyFilter copies the player and map filter
func CopyFilter(parent id.ID, src *element.Element) FieldCopy {
	filter := src.Filter.Clone()
	return FieldCopy{
		Parent: parent,
		Source: src.ID,
		Field:  "filter",
		apply: func(dst *element.Element) {
			dst.Filter = filter.Clone()
		},
	}
}

// CopyBaseStyle copies the base style to siblings with the same style type.
// Icons and icon lists share their style.
func CopyBaseStyle(parent id.ID, src *element.Element) FieldCopy {
	fc := FieldCopy{Parent: parent, Source: src.ID, Field: "style"}

	switch k := src.Kind.(type) {
	case *element.IconElement:
		fc.apply = iconStyleSetter(k.Props.Base)
	case *element.IconList:
		fc.apply = iconStyleSetter(k.Props.Base)
	case *element.Text:
		base := k.Props.Base
		fc.apply = func(dst *element.Element) {
			if t, ok := dst.Kind.(*element.Text); ok {
				setBase(&t.Props, base)
			}
		}
	case *element.Bar:
		base := k.Props.Base
		fc.apply = func(dst *element.Element) {
			if b, ok := dst.Kind.(*element.Bar); ok {
				setBase(&b.Props, base)
			}
		}
	case *element.Group:
		// groups have no style
	}
	return fc
}

func iconStyleSetter(base element.IconStyle) func(dst *element.Element) {
	return func(dst *element.Element) {
		switch d := dst.Kind.(type) {
		case *element.IconElement:
			setBase(&d.Props, base)
		case *element.IconList:
			setBase(&d.Props, base)
		}
	}
}

// CopyCondition appends one condition of the source to siblings with the same style type
func CopyCondition(parent id.ID, src *element.Element, index int) FieldCopy {
	fc := FieldCopy{Parent: parent, Source: src.ID, Field: "condition"}

	switch k := src.Kind.(type) {
	case *element.IconElement:
		fc.apply = iconConditionAppender(k.Props, index)
	case *element.IconList:
		fc.apply = iconConditionAppender(k.Props, index)
	case *element.Text:
		if c, ok := conditionAt(k.Props, index); ok {
			fc.apply = func(dst *element.Element) {
				if t, ok := dst.Kind.(*element.Text); ok {
					appendCondition(&t.Props, c)
				}
			}
		}
	case *element.Bar:
		if c, ok := conditionAt(k.Props, index); ok {
			fc.apply = func(dst *element.Element) {
				if b, ok := dst.Kind.(*element.Bar); ok {
					appendCondition(&b.Props, c)
				}
			}
		}
	case *element.Group:
		// groups have no style
	}
	return fc
}

func iconConditionAppender(
	src props.Props[element.IconStyle, element.IconStylePartial],
	index int,
) func(dst *element.Element) {
	c, ok := conditionAt(src, index)
	if !ok {
		return nil
	}
	return func(dst *element.Element) {
		switch d := dst.Kind.(type) {
		case *element.IconElement:
			appendCondition(&d.Props, c)
		case *element.IconList:
			appendCondition(&d.Props, c)
		}
	}
}

func conditionAt[T any, P props.Patch[T, P]](p props.Props[T, P], index int) (props.Condition[T, P], bool) {
	if index < 0 || index >= len(p.Conditions) {
		return props.Condition[T, P]{}, false
	}
	return p.Conditions[index].Clone(), true
}

func appendCondition[T any, P props.Patch[T, P]](p *props.Props[T, P], c props.Condition[T, P]) {
	p.Conditions = append(p.Conditions, c.Clone())
	p.Invalidate()
}

func setBase[T any, P props.Patch[T, P]](p *props.Props[T, P], base T) {
	p.Base = base
	p.Invalidate()
}
