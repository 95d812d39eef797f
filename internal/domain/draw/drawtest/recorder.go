// Package drawtest records draw calls for assertions in tests.
package drawtest

import (
	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
)

// CallKind names the surface method that was called
type CallKind string

const (
	CallIcon        CallKind = "icon"
	CallRect        CallKind = "rect"
	CallRectOutline CallKind = "rect_outline"
	CallText        CallKind = "text"
)

// Call is one recorded draw call. Fields not used by the kind are zero.
type Call struct {
	Kind      CallKind
	Icon      draw.Icon
	Min       draw.Vec2
	Max       draw.Vec2
	Color     draw.Color
	Thickness float32
	Text      string
	Scale     float32
	Shadow    bool
}

// Recorder is a draw.Surface that keeps every call in order
type Recorder struct {
	Calls []Call
}

var _ draw.Surface = (*Recorder)(nil)

func (r *Recorder) Icon(icon draw.Icon, min, max draw.Vec2, tint draw.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallIcon, Icon: icon, Min: min, Max: max, Color: tint})
}

func (r *Recorder) Rect(min, max draw.Vec2, color draw.Color) {
	r.Calls = append(r.Calls, Call{Kind: CallRect, Min: min, Max: max, Color: color})
}

func (r *Recorder) RectOutline(min, max draw.Vec2, color draw.Color, thickness float32) {
	r.Calls = append(r.Calls, Call{Kind: CallRectOutline, Min: min, Max: max, Color: color, Thickness: thickness})
}

func (r *Recorder) Text(text string, pos draw.Vec2, scale float32, color draw.Color, shadow bool) {
	r.Calls = append(r.Calls, Call{Kind: CallText, Text: text, Min: pos, Scale: scale, Color: color, Shadow: shadow})
}

// TextSize uses a fixed 8x16 cell per rune
func (r *Recorder) TextSize(text string, scale float32) draw.Vec2 {
	return draw.Vec2{float32(len([]rune(text))) * 8 * scale, 16 * scale}
}

// OfKind returns the calls of one kind in order
func (r *Recorder) OfKind(kind CallKind) []Call {
	var calls []Call
	for _, c := range r.Calls {
		if c.Kind == kind {
			calls = append(calls, c)
		}
	}
	return calls
}

// Outlines returns the outline calls drawn in one color
func (r *Recorder) Outlines(color draw.Color) []Call {
	var calls []Call
	for _, c := range r.OfKind(CallRectOutline) {
		if c.Color == color {
			calls = append(calls, c)
		}
	}
	return calls
}

// Texts returns the drawn strings in order
func (r *Recorder) Texts() []string {
	var texts []string
	for _, c := range r.OfKind(CallText) {
		texts = append(texts, c.Text)
	}
	return texts
}

// Reset drops all recorded calls
func (r *Recorder) Reset() {
	r.Calls = nil
}
