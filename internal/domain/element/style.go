package element

import (
	"encoding/json"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	"github.com/KirkDiggler/overlay-engine/internal/domain/jsonshape"
)

// IconStyle is the conditional part of an icon
type IconStyle struct {
	Tint draw.Color `json:"tint"`

	// Zoom scales the icon around its center
	Zoom float32 `json:"zoom"`
}

func defaultIconStyle() IconStyle {
	return IconStyle{Tint: draw.White, Zoom: 1}
}

// IconStylePartial overrides icon style fields
type IconStylePartial struct {
	Tint *draw.Color `json:"tint,omitempty"`
	Zoom *float32    `json:"zoom,omitempty"`
}

func (p IconStylePartial) Apply(s *IconStyle) {
	if p.Tint != nil {
		s.Tint = *p.Tint
	}
	if p.Zoom != nil {
		s.Zoom = *p.Zoom
	}
}

func (p IconStylePartial) Clone() IconStylePartial {
	return IconStylePartial{Tint: clonePtr(p.Tint), Zoom: clonePtr(p.Zoom)}
}

var iconStyleAliases = jsonshape.Aliases{"color": "tint"}

func (s *IconStyle) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, iconStyleAliases)
	if err != nil {
		return err
	}
	type plain IconStyle
	return json.Unmarshal(data, (*plain)(s))
}

func (p *IconStylePartial) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, iconStyleAliases)
	if err != nil {
		return err
	}
	type plain IconStylePartial
	return json.Unmarshal(data, (*plain)(p))
}

// TextStyle is the conditional part of a text
type TextStyle struct {
	Color draw.Color `json:"color"`
	Scale float32    `json:"scale"`
}

func defaultTextStyle() TextStyle {
	return TextStyle{Color: draw.White, Scale: 1}
}

// TextStylePartial overrides text style fields
type TextStylePartial struct {
	Color *draw.Color `json:"color,omitempty"`
	Scale *float32    `json:"scale,omitempty"`
}

func (p TextStylePartial) Apply(s *TextStyle) {
	if p.Color != nil {
		s.Color = *p.Color
	}
	if p.Scale != nil {
		s.Scale = *p.Scale
	}
}

func (p TextStylePartial) Clone() TextStylePartial {
	return TextStylePartial{Color: clonePtr(p.Color), Scale: clonePtr(p.Scale)}
}

var textStyleAliases = jsonshape.Aliases{"size": "scale"}

func (s *TextStyle) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, textStyleAliases)
	if err != nil {
		return err
	}
	type plain TextStyle
	return json.Unmarshal(data, (*plain)(s))
}

func (p *TextStylePartial) UnmarshalJSON(data []byte) error {
	data, err := jsonshape.Rename(data, textStyleAliases)
	if err != nil {
		return err
	}
	type plain TextStylePartial
	return json.Unmarshal(data, (*plain)(p))
}

// BarStyle is the conditional part of a bar
type BarStyle struct {
	Fill        draw.Color `json:"fill"`
	Background  draw.Color `json:"background"`
	BorderColor draw.Color `json:"border_color"`
	BorderSize  float32    `json:"border_size"`
	TickColor   draw.Color `json:"tick_color"`
	TickSize    float32    `json:"tick_size"`
}

func defaultBarStyle() BarStyle {
	return BarStyle{
		Fill:        draw.Color{1, 0, 0, 1},
		Background:  draw.Color{0, 0, 0, 0.5},
		BorderColor: draw.Black,
		BorderSize:  1,
		TickColor:   draw.Black,
		TickSize:    1,
	}
}

// BarStylePartial overrides bar style fields
type BarStylePartial struct {
	Fill        *draw.Color `json:"fill,omitempty"`
	Background  *draw.Color `json:"background,omitempty"`
	BorderColor *draw.Color `json:"border_color,omitempty"`
	BorderSize  *float32    `json:"border_size,omitempty"`
	TickColor   *draw.Color `json:"tick_color,omitempty"`
	TickSize    *float32    `json:"tick_size,omitempty"`
}

func (p BarStylePartial) Apply(s *BarStyle) {
	if p.Fill != nil {
		s.Fill = *p.Fill
	}
	if p.Background != nil {
		s.Background = *p.Background
	}
	if p.BorderColor != nil {
		s.BorderColor = *p.BorderColor
	}
	if p.BorderSize != nil {
		s.BorderSize = *p.BorderSize
	}
	if p.TickColor != nil {
		s.TickColor = *p.TickColor
	}
	if p.TickSize != nil {
		s.TickSize = *p.TickSize
	}
}

func (p BarStylePartial) Clone() BarStylePartial {
	return BarStylePartial{
		Fill:        clonePtr(p.Fill),
		Background:  clonePtr(p.Background),
		BorderColor: clonePtr(p.BorderColor),
		BorderSize:  clonePtr(p.BorderSize),
		TickColor:   clonePtr(p.TickColor),
		TickSize:    clonePtr(p.TickSize),
	}
}

func clonePtr[T any](v *T) *T {
	if v == nil {
		return nil
	}
	clone := *v
	return &clone
}
