// Package animation provides frame-based sprite sheet clips.
package animation

import "image"

// Framer receives the sheet region of the frame being shown
type Framer interface {
	SetRegion(r image.Rectangle)
}

// Layout describes where a clip's frames live on the sprite sheet.
// Frames run left to right along Row, starting at column StartFrame.
type Layout struct {
	FrameW     int
	FrameH     int
	Row        int
	StartFrame int
}

// Region returns the sheet rectangle of the given frame index
func (l Layout) Region(frame int) image.Rectangle {
	x := (l.StartFrame + frame) * l.FrameW
	y := l.Row * l.FrameH
	return image.Rect(x, y, x+l.FrameW, y+l.FrameH)
}

// Clip is one named animation: a looping frame counter advanced by elapsed time
type Clip struct {
	frameCount    int
	frameDuration float64
	layout        Layout
	target        Framer

	current int
	elapsed float64
}

// NewClip creates a clip positioned at frame 0. frameCount must be at least 1.
func NewClip(frameCount int, frameDuration float64, layout Layout, target Framer) *Clip {
	return &Clip{
		frameCount:    frameCount,
		frameDuration: frameDuration,
		layout:        layout,
		target:        target,
	}
}

// Update accumulates dt and advances one frame once FrameDuration is reached.
// The new frame's region is applied to the target.
func (c *Clip) Update(dt float64) {
	c.elapsed += dt
	if c.elapsed < c.frameDuration {
		return
	}
	c.elapsed = 0
	c.current = (c.current + 1) % c.frameCount
	c.Apply()
}

// SetFrame jumps to frame n and restarts the frame timer
func (c *Clip) SetFrame(n int) {
	c.current = n
	c.elapsed = 0
	c.Apply()
}

// CurrentFrame returns the index of the frame being shown
func (c *Clip) CurrentFrame() int { return c.current }

// FrameCount returns the number of frames in the clip
func (c *Clip) FrameCount() int { return c.frameCount }

// FrameDuration returns the seconds each frame is held
func (c *Clip) FrameDuration() float64 { return c.frameDuration }

// IsLast reports whether the clip shows its final frame
func (c *Clip) IsLast() bool {
	return c.current == c.frameCount-1
}

// Apply pushes the current frame's region to the target
func (c *Clip) Apply() {
	if c.target != nil {
		c.target.SetRegion(c.layout.Region(c.current))
	}
}
