// Package detector provides hand detection interfaces and types for gesture tracking.
package detector

import "image"

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D represents a normalized MediaPipe landmark coordinate.
// X and Y are in [0,1] relative to frame width and height.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// HandLandmarks represents the 21 hand landmarks detected by MediaPipe.
type HandLandmarks struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness string                `json:"handedness"` // "Left" or "Right"
	Score      float64               `json:"score"`
}

// PixelLandmarks is a per-frame snapshot of one hand's landmarks in pixel
// coordinates. The array index is the landmark id. Snapshots are derived
// fresh each frame and never persist across frames.
type PixelLandmarks struct {
	Points [NumLandmarks]image.Point
}

// ToPixels projects the normalized landmarks onto a width x height frame.
func (h *HandLandmarks) ToPixels(width, height int) *PixelLandmarks {
	if h == nil {
		return nil
	}

	var p PixelLandmarks
	for i := 0; i < NumLandmarks; i++ {
		p.Points[i] = image.Point{
			X: int(h.Points[i].X * float64(width)),
			Y: int(h.Points[i].Y * float64(height)),
		}
	}
	return &p
}

// PositionOf returns the pixel position of the landmark with the given id.
// An id outside [0, NumLandmarks) is an invariant violation and panics.
func (p *PixelLandmarks) PositionOf(id int) image.Point {
	return p.Points[id]
}
