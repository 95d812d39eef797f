package draw

import "fmt"

// Anchor is the point a node is positioned relative to: its parent, or a screen corner
type Anchor string

const (
	AnchorParent      Anchor = "parent"
	AnchorTopLeft     Anchor = "top_left"
	AnchorTopRight    Anchor = "top_right"
	AnchorBottomLeft  Anchor = "bottom_left"
	AnchorBottomRight Anchor = "bottom_right"
	AnchorCenter      Anchor = "center"
)

// AllAnchors lists every anchor
var AllAnchors = [...]Anchor{AnchorParent, AnchorTopLeft, AnchorTopRight, AnchorBottomLeft, AnchorBottomRight, AnchorCenter}

// Pos returns the anchor point for a screen of the given size. Parent anchors resolve to parent.
func (a Anchor) Pos(screen Vec2, parent Vec2) Vec2 {
	switch a {
	case AnchorTopRight:
		return Vec2{screen[0], 0}
	case AnchorBottomLeft:
		return Vec2{0, screen[1]}
	case AnchorBottomRight:
		return screen
	case AnchorCenter:
		return screen.Scale(0.5)
	case AnchorParent, "":
		return parent
	}
	return Vec2{}
}

// Align positions content relative to its origin
type Align string

const (
	AlignLeft   Align = "left"
	AlignCenter Align = "center"
	AlignRight  Align = "right"
)

// AllAligns lists every alignment
var AllAligns = [...]Align{AlignLeft, AlignCenter, AlignRight}

// Offset returns the origin of content with the given size so that it aligns at pos
func (a Align) Offset(pos Vec2, size Vec2) Vec2 {
	switch a {
	case AlignCenter:
		return Vec2{pos[0] - size[0]/2, pos[1] - size[1]/2}
	case AlignRight:
		return Vec2{pos[0] - size[0], pos[1]}
	}
	return pos
}

// Direction is the growth direction of bars and lists
type Direction string

const (
	DirRight Direction = "right"
	DirLeft  Direction = "left"
	DirUp    Direction = "up"
	DirDown  Direction = "down"
)

// AllDirections lists every direction
var AllDirections = [...]Direction{DirRight, DirLeft, DirUp, DirDown}

// IsHorizontal reports whether the direction runs along x
func (d Direction) IsHorizontal() bool {
	return d == DirRight || d == DirLeft || d == ""
}

// Step returns the offset between consecutive items of the given size with spacing between them
func (d Direction) Step(size Vec2, spacing float32) Vec2 {
	switch d {
	case DirLeft:
		return Vec2{-(size[0] + spacing), 0}
	case DirUp:
		return Vec2{0, -(size[1] + spacing)}
	case DirDown:
		return Vec2{0, size[1] + spacing}
	}
	return Vec2{size[0] + spacing, 0}
}

// Split returns the filled part of the rect [min, max] for a progress in [0,1]
func (d Direction) Split(min, max Vec2, progress float32) (Vec2, Vec2) {
	width, height := max[0]-min[0], max[1]-min[1]
	switch d {
	case DirLeft:
		return Vec2{max[0] - width*progress, min[1]}, max
	case DirUp:
		return Vec2{min[0], max[1] - height*progress}, max
	case DirDown:
		return min, Vec2{max[0], min[1] + height*progress}
	}
	return min, Vec2{min[0] + width*progress, max[1]}
}

// ParseAnchor validates an anchor name
func ParseAnchor(name string) (Anchor, error) {
	for _, a := range AllAnchors {
		if string(a) == name {
			return a, nil
		}
	}
	return "", fmt.Errorf("unknown anchor %q", name)
}
