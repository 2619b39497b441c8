// Package render holds the ebiten-backed render handles the simulation drives.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Sprite is a drawable sub-region of a sprite sheet with its own transform
// and tint. Setters only record state; nothing touches the GPU until Draw,
// so a Sprite with a nil sheet is usable headless.
type Sprite struct {
	sheet  *ebiten.Image
	region image.Rectangle

	x, y             float64
	originX, originY float64
	scaleX, scaleY   float64
	clr              color.RGBA
}

// NewSprite creates an untinted sprite over sheet. sheet may be nil, in which
// case Draw renders a placeholder rectangle the size of the current region.
func NewSprite(sheet *ebiten.Image) *Sprite {
	return &Sprite{
		sheet:  sheet,
		scaleX: 1,
		scaleY: 1,
		clr:    color.RGBA{255, 255, 255, 255},
	}
}

// SetPosition sets the world position of the sprite origin
func (s *Sprite) SetPosition(x, y float64) {
	s.x, s.y = x, y
}

// Position returns the world position of the sprite origin
func (s *Sprite) Position() (x, y float64) {
	return s.x, s.y
}

// SetOrigin sets the local pivot, in unscaled frame pixels
func (s *Sprite) SetOrigin(x, y float64) {
	s.originX, s.originY = x, y
}

// Origin returns the local pivot
func (s *Sprite) Origin() (x, y float64) {
	return s.originX, s.originY
}

// SetScale sets the scale; a negative X mirrors the sprite horizontally
func (s *Sprite) SetScale(x, y float64) {
	s.scaleX, s.scaleY = x, y
}

// Scale returns the current scale
func (s *Sprite) Scale() (x, y float64) {
	return s.scaleX, s.scaleY
}

// SetColor sets the tint color including alpha
func (s *Sprite) SetColor(c color.RGBA) {
	s.clr = c
}

// Color returns the tint color
func (s *Sprite) Color() color.RGBA {
	return s.clr
}

// SetAlpha replaces the alpha channel and keeps the RGB tint
func (s *Sprite) SetAlpha(a uint8) {
	c := s.Color()
	s.SetColor(color.RGBA{c.R, c.G, c.B, a})
}

// SetRegion selects the sheet rectangle to draw
func (s *Sprite) SetRegion(r image.Rectangle) {
	s.region = r
}

// Region returns the selected sheet rectangle
func (s *Sprite) Region() image.Rectangle {
	return s.region
}

// Draw renders the sprite with the camera offset applied
func (s *Sprite) Draw(screen *ebiten.Image, camX, camY float64) {
	if s.sheet == nil {
		s.drawPlaceholder(screen, camX, camY)
		return
	}

	sub, ok := s.sheet.SubImage(s.region).(*ebiten.Image)
	if !ok {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(-s.originX, -s.originY)
	op.GeoM.Scale(s.scaleX, s.scaleY)
	op.GeoM.Translate(s.x-camX, s.y-camY)
	op.ColorScale.Scale(float32(s.clr.R)/255, float32(s.clr.G)/255, float32(s.clr.B)/255, 1)
	op.ColorScale.ScaleAlpha(float32(s.clr.A) / 255)
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(sub, op)
}

func (s *Sprite) drawPlaceholder(screen *ebiten.Image, camX, camY float64) {
	w := float64(s.region.Dx()) * abs(s.scaleX)
	h := float64(s.region.Dy()) * abs(s.scaleY)
	left := s.x - s.originX*abs(s.scaleX) - camX
	top := s.y - s.originY*abs(s.scaleY) - camY

	// DrawRect expects premultiplied color
	a := float64(s.clr.A) / 255
	c := color.RGBA{
		uint8(float64(s.clr.R) * a),
		uint8(float64(s.clr.G) * a),
		uint8(float64(s.clr.B) * a),
		s.clr.A,
	}
	ebitenutil.DrawRect(screen, left, top, w, h, c)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
