package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

const (
	heartSize    = 12.0
	heartSpacing = 4.0
	heartPadding = 10.0
)

var (
	colorHeartFull  = color.RGBA{220, 50, 70, 255}
	colorHeartEmpty = color.RGBA{60, 60, 60, 255}
)

// HealthBar is the on-screen heart counter. It owns the health value and
// clamps it to [0, max].
type HealthBar struct {
	value int
	max   int
	heart *ebiten.Image
}

// NewHealthBar creates a full health bar. heart may be nil to draw squares.
func NewHealthBar(max int, heart *ebiten.Image) *HealthBar {
	return &HealthBar{value: max, max: max, heart: heart}
}

// Value returns the current health
func (h *HealthBar) Value() int { return h.value }

// Max returns the maximum health
func (h *HealthBar) Max() int { return h.max }

// Change removes one point when damage is true and restores one otherwise
func (h *HealthBar) Change(damage bool) {
	if damage {
		h.value--
	} else {
		h.value++
	}
	if h.value < 0 {
		h.value = 0
	}
	if h.value > h.max {
		h.value = h.max
	}
}

// Reset refills the bar
func (h *HealthBar) Reset() {
	h.value = h.max
}

// Draw renders one heart per max point in screen space
func (h *HealthBar) Draw(screen *ebiten.Image) {
	for i := 0; i < h.max; i++ {
		x := heartPadding + float64(i)*(heartSize+heartSpacing)
		full := i < h.value

		if h.heart == nil {
			c := colorHeartEmpty
			if full {
				c = colorHeartFull
			}
			ebitenutil.DrawRect(screen, x, heartPadding, heartSize, heartSize, c)
			continue
		}

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(x, heartPadding)
		if !full {
			op.ColorScale.Scale(0.25, 0.25, 0.25, 1)
		}
		screen.DrawImage(h.heart, op)
	}
}
