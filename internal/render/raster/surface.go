// Package raster renders overlays into an image with gg, for PNG previews of a pack.
package raster

import (
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/overlay-engine/internal/domain/draw"
	ovlerr "github.com/KirkDiggler/overlay-engine/internal/errors"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// BaseFontSize is the point size of text drawn at scale 1
const BaseFontSize = 14.0

// Surface is a draw.Surface backed by an RGBA image.
// Icons are drawn as tinted tiles labelled with the first letter of the texture name.
type Surface struct {
	dc    *gg.Context
	font  *truetype.Font
	faces map[float32]font.Face
}

var _ draw.Surface = (*Surface)(nil)

// NewSurface creates a transparent surface of the given pixel size
func NewSurface(width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, ovlerr.InvalidArgumentf("invalid surface size %dx%d", width, height)
	}

	ttf, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, ovlerr.Wrap(err, "failed to parse font")
	}

	return &Surface{
		dc:    gg.NewContext(width, height),
		font:  ttf,
		faces: make(map[float32]font.Face),
	}, nil
}

// Size returns the surface size as a screen vector
func (s *Surface) Size() draw.Vec2 {
	return draw.Vec2{float32(s.dc.Width()), float32(s.dc.Height())}
}

// Fill paints the whole surface, e.g. with a backdrop before rendering
func (s *Surface) Fill(c draw.Color) {
	s.setColor(c)
	s.dc.Clear()
}

func (s *Surface) Icon(icon draw.Icon, min, max draw.Vec2, tint draw.Color) {
	x, y, w, h := rect(min, max)
	if w <= 0 || h <= 0 {
		return
	}

	tile := tint
	tile[3] *= 0.35
	s.setColor(tile)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()

	s.setColor(tint)
	s.dc.SetLineWidth(1)
	s.dc.DrawRectangle(x+0.5, y+0.5, w-1, h-1)
	s.dc.Stroke()

	if label := iconLabel(icon); label != "" {
		s.dc.SetFontFace(s.face(float32(h) / 2 / BaseFontSize))
		s.dc.DrawStringAnchored(label, x+w/2, y+h/2, 0.5, 0.5)
	}
}

func (s *Surface) Rect(min, max draw.Vec2, c draw.Color) {
	x, y, w, h := rect(min, max)
	if w <= 0 || h <= 0 {
		return
	}
	s.setColor(c)
	s.dc.DrawRectangle(x, y, w, h)
	s.dc.Fill()
}

func (s *Surface) RectOutline(min, max draw.Vec2, c draw.Color, thickness float32) {
	x, y, w, h := rect(min, max)
	if w <= 0 || h <= 0 || thickness <= 0 {
		return
	}
	half := float64(thickness) / 2
	s.setColor(c)
	s.dc.SetLineWidth(float64(thickness))
	s.dc.DrawRectangle(x+half, y+half, w-2*half, h-2*half)
	s.dc.Stroke()
}

// Text draws with pos as the top left corner of the text box
func (s *Surface) Text(text string, pos draw.Vec2, scale float32, c draw.Color, shadow bool) {
	if text == "" {
		return
	}
	s.dc.SetFontFace(s.face(scale))
	x, y := float64(pos[0]), float64(pos[1])

	if shadow {
		s.setColor(draw.Black.WithAlpha(c[3]))
		s.dc.DrawStringAnchored(text, x+1, y+1, 0, 1)
	}
	s.setColor(c)
	s.dc.DrawStringAnchored(text, x, y, 0, 1)
}

func (s *Surface) TextSize(text string, scale float32) draw.Vec2 {
	s.dc.SetFontFace(s.face(scale))
	w, h := s.dc.MeasureString(text)
	return draw.Vec2{float32(w), float32(h)}
}

// Image returns the rendered image
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// EncodePNG writes the image as PNG
func (s *Surface) EncodePNG(w io.Writer) error {
	if err := s.dc.EncodePNG(w); err != nil {
		return ovlerr.Wrap(err, "failed to encode png")
	}
	return nil
}

// SavePNG writes the image to a file
func (s *Surface) SavePNG(path string) error {
	if err := s.dc.SavePNG(path); err != nil {
		return ovlerr.Wrapf(err, "failed to save %s", path)
	}
	return nil
}

func (s *Surface) face(scale float32) font.Face {
	if scale <= 0 {
		scale = 1
	}
	if face, ok := s.faces[scale]; ok {
		return face
	}
	face := truetype.NewFace(s.font, &truetype.Options{
		Size:    BaseFontSize * float64(scale),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	s.faces[scale] = face
	return face
}

func (s *Surface) setColor(c draw.Color) {
	s.dc.SetRGBA(float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3]))
}

func rect(min, max draw.Vec2) (x, y, w, h float64) {
	return float64(min[0]), float64(min[1]), float64(max[0] - min[0]), float64(max[1] - min[1])
}

func iconLabel(icon draw.Icon) string {
	if icon.IsEmpty() {
		return ""
	}
	name := filepath.Base(icon.Path)
	for _, r := range name {
		return strings.ToUpper(string(r))
	}
	return ""
}
