// Package testdata synthesizes camera frames for tests. Frames are built
// in memory so the repository ships no image assets.
package testdata

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// SolidFrame returns a width x height BGR frame filled with the given color.
func SolidFrame(width, height int, c color.RGBA) *gocv.Mat {
	mat := gocv.NewMatWithSize(height, width, gocv.MatTypeCV8UC3)
	if c != (color.RGBA{}) {
		mat.SetTo(gocv.NewScalar(float64(c.B), float64(c.G), float64(c.R), 0))
	}
	return &mat
}

// MovingSquareSequence returns n frames with a white square sliding across
// an otherwise black scene, enough pixel change per frame to register as
// motion.
func MovingSquareSequence(width, height, n int) []*gocv.Mat {
	frames := make([]*gocv.Mat, 0, n)
	step := width / (n + 1)
	for i := 0; i < n; i++ {
		frame := SolidFrame(width, height, color.RGBA{})
		x := step * i
		gocv.Rectangle(frame, image.Rect(x, height/4, x+width/4, 3*height/4),
			color.RGBA{R: 255, G: 255, B: 255}, -1)
		frames = append(frames, frame)
	}
	return frames
}

// CloseFrames releases every frame in the sequence.
func CloseFrames(frames []*gocv.Mat) {
	for _, f := range frames {
		f.Close()
	}
}
