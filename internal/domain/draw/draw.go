// Package draw defines the surface elements render to and the small value types they use.
// Surfaces are implemented by the terminal and raster renderers.
package draw

// Vec2 is a screen position or size in pixels
type Vec2 [2]float32

// Add returns the component-wise sum
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v[0] + o[0], v[1] + o[1]}
}

// Sub returns the component-wise difference
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v[0] - o[0], v[1] - o[1]}
}

// Scale multiplies both components
func (v Vec2) Scale(f float32) Vec2 {
	return Vec2{v[0] * f, v[1] * f}
}

// X returns the horizontal component
func (v Vec2) X() float32 { return v[0] }

// Y returns the vertical component
func (v Vec2) Y() float32 { return v[1] }

// Color is RGBA in [0,1]
type Color [4]float32

var (
	White       = Color{1, 1, 1, 1}
	Black       = Color{0, 0, 0, 1}
	Transparent = Color{0, 0, 0, 0}
	Highlight   = Color{1, 0.6, 0.1, 1}
)

// WithAlpha scales the alpha channel
func (c Color) WithAlpha(alpha float32) Color {
	c[3] *= alpha
	return c
}

// Surface receives draw calls in screen coordinates. Rects are given as min and max corners.
type Surface interface {
	Icon(icon Icon, min, max Vec2, tint Color)
	Rect(min, max Vec2, color Color)
	RectOutline(min, max Vec2, color Color, thickness float32)
	Text(text string, pos Vec2, scale float32, color Color, shadow bool)

	// TextSize measures text as Text would draw it
	TextSize(text string, scale float32) Vec2
}

// IconSource names how an icon texture is located
type IconSource string

const (
	IconEmpty IconSource = "empty"
	IconFile  IconSource = "file"
	IconURL   IconSource = "url"
)

// Icon references a texture by path or url. Loading is the surface's concern.
type Icon struct {
	Source IconSource `json:"source"`
	Path   string     `json:"path,omitempty"`
}

// IsEmpty reports whether the icon has no texture
func (i Icon) IsEmpty() bool {
	return i.Source == "" || i.Source == IconEmpty || i.Path == ""
}
