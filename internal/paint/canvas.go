package paint

import (
	"image"
	"image/color"
	"sync"

	"gocv.io/x/gocv"
)

// Canvas is the accumulating raster surface strokes are painted into. The
// buffer starts all-zero (background) and is append-only except for full
// clears. It also owns the stroke's "last point": the previous fingertip
// position a new segment connects to, or nothing right after a reset.
type Canvas struct {
	mu      sync.Mutex
	buf     gocv.Mat
	last    image.Point
	hasLast bool
}

// NewCanvas creates a canvas of the given pixel dimensions with a zeroed
// (background) buffer and no last point.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		buf: gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3),
	}
}

// ContinueStroke extends the current stroke to p. The first call after a
// reset only records p, drawing nothing, so a fresh stroke never connects
// to a stale point. Every later call draws one line segment from the last
// point to p. Reports whether a segment was drawn.
func (c *Canvas) ContinueStroke(p image.Point, col color.RGBA, thickness int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.hasLast {
		c.last = p
		c.hasLast = true
		return false
	}

	gocv.Line(&c.buf, c.last, p, col, thickness)
	c.last = p
	return true
}

// Clear resets every pixel to background and forgets the last point.
// Idempotent.
func (c *Canvas) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.buf.SetTo(gocv.NewScalar(0, 0, 0, 0))
	c.hasLast = false
}

// ResetStroke forgets the last point so the next drawing frame starts a
// fresh stroke. The buffer is untouched.
func (c *Canvas) ResetStroke() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.hasLast = false
}

// LastPoint returns the stroke's last point and whether one is set.
func (c *Canvas) LastPoint() (image.Point, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.last, c.hasLast
}

// Mat returns the underlying buffer. The caller must not close it.
func (c *Canvas) Mat() gocv.Mat {
	return c.buf
}

// Close releases the buffer.
func (c *Canvas) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Close()
}
