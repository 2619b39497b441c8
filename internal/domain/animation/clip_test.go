package animation

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingFramer struct {
	regions []image.Rectangle
}

func (f *recordingFramer) SetRegion(r image.Rectangle) {
	f.regions = append(f.regions, r)
}

func (f *recordingFramer) last() image.Rectangle {
	return f.regions[len(f.regions)-1]
}

func TestLayout_Region(t *testing.T) {
	l := Layout{FrameW: 50, FrameH: 37, Row: 2, StartFrame: 1}

	assert.Equal(t, image.Rect(50, 74, 100, 111), l.Region(0))
	assert.Equal(t, image.Rect(150, 74, 200, 111), l.Region(2))
}

func TestClip_Update(t *testing.T) {
	t.Run("holds frame until duration elapses", func(t *testing.T) {
		c := NewClip(3, 0.1, Layout{FrameW: 10, FrameH: 10}, nil)

		c.Update(0.05)
		assert.Equal(t, 0, c.CurrentFrame())

		c.Update(0.06)
		assert.Equal(t, 1, c.CurrentFrame())
	})

	t.Run("advances at most one frame per update", func(t *testing.T) {
		c := NewClip(3, 0.1, Layout{}, nil)

		c.Update(1.0)

		assert.Equal(t, 1, c.CurrentFrame())
	})

	t.Run("wraps to zero", func(t *testing.T) {
		c := NewClip(7, 0.08, Layout{}, nil)

		for i := 0; i < 7; i++ {
			c.Update(0.08)
		}

		assert.Equal(t, 0, c.CurrentFrame())
	})

	t.Run("applies new region to target", func(t *testing.T) {
		f := &recordingFramer{}
		c := NewClip(2, 0.1, Layout{FrameW: 10, FrameH: 20, Row: 1}, f)

		c.Update(0.1)

		assert.Len(t, f.regions, 1)
		assert.Equal(t, image.Rect(10, 20, 20, 40), f.last())
	})

	t.Run("single frame clip stays put", func(t *testing.T) {
		c := NewClip(1, 0.1, Layout{}, nil)

		c.Update(0.1)
		c.Update(0.1)

		assert.Equal(t, 0, c.CurrentFrame())
		assert.True(t, c.IsLast())
	})
}

func TestClip_SetFrame(t *testing.T) {
	f := &recordingFramer{}
	c := NewClip(4, 0.1, Layout{FrameW: 10, FrameH: 10}, f)
	c.Update(0.09)

	c.SetFrame(3)

	assert.Equal(t, 3, c.CurrentFrame())
	assert.True(t, c.IsLast())
	assert.Equal(t, image.Rect(30, 0, 40, 10), f.last())

	// Timer restarted
	c.Update(0.09)
	assert.Equal(t, 3, c.CurrentFrame())
}

func TestClip_Accessors(t *testing.T) {
	c := NewClip(5, 0.2, Layout{}, nil)

	assert.Equal(t, 5, c.FrameCount())
	assert.Equal(t, 0.2, c.FrameDuration())
	assert.False(t, c.IsLast())
}
