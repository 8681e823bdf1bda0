package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []HandLandmarks
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []HandLandmarks) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]HandLandmarks, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// PointingHandLandmarks returns a preset hand with only the index finger
// extended, the pose that puts the painter in drawing mode. The index
// fingertip sits at the given normalized position.
func PointingHandLandmarks(tipX, tipY float64) HandLandmarks {
	h := curledHandLandmarks()

	// Index finger extended toward the requested tip position.
	h.Points[IndexMCP] = Point3D{X: tipX - 0.02, Y: tipY + 0.30, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: tipX - 0.01, Y: tipY + 0.20, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: tipX, Y: tipY + 0.10, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: tipX, Y: tipY, Z: 0.0}

	return h
}

// PeaceHandLandmarks returns a preset hand with index and middle fingers
// extended, the pose that puts the painter in selection mode. The index
// fingertip sits at the given normalized position.
func PeaceHandLandmarks(tipX, tipY float64) HandLandmarks {
	h := PointingHandLandmarks(tipX, tipY)

	// Middle finger extended next to the index.
	h.Points[MiddleMCP] = Point3D{X: tipX + 0.04, Y: tipY + 0.32, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: tipX + 0.05, Y: tipY + 0.20, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: tipX + 0.05, Y: tipY + 0.09, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: tipX + 0.05, Y: tipY - 0.02, Z: 0.0}

	return h
}

// OpenPalmLandmarks returns a preset hand with all five fingers extended,
// the pose that clears the canvas.
func OpenPalmLandmarks() HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.85, Z: 0.0}

	// Thumb extended to the side: tip x beyond the IP joint, right-hand
	// orientation (thumb tip right of pinky tip in the mirrored view).
	h.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.78, Z: 0.02}
	h.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.72, Z: 0.03}
	h.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.66, Z: 0.03}
	h.Points[ThumbTip] = Point3D{X: 0.74, Y: 0.61, Z: 0.03}

	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.66, Z: 0.0}
	h.Points[IndexPIP] = Point3D{X: 0.56, Y: 0.54, Z: 0.0}
	h.Points[IndexDIP] = Point3D{X: 0.57, Y: 0.44, Z: 0.0}
	h.Points[IndexTip] = Point3D{X: 0.57, Y: 0.34, Z: 0.0}

	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64, Z: 0.0}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.50, Z: 0.0}
	h.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.39, Z: 0.0}
	h.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.27, Z: 0.0}

	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.66, Z: 0.0}
	h.Points[RingPIP] = Point3D{X: 0.44, Y: 0.53, Z: 0.0}
	h.Points[RingDIP] = Point3D{X: 0.43, Y: 0.43, Z: 0.0}
	h.Points[RingTip] = Point3D{X: 0.43, Y: 0.33, Z: 0.0}

	h.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.69, Z: 0.0}
	h.Points[PinkyPIP] = Point3D{X: 0.38, Y: 0.59, Z: 0.0}
	h.Points[PinkyDIP] = Point3D{X: 0.36, Y: 0.50, Z: 0.0}
	h.Points[PinkyTip] = Point3D{X: 0.35, Y: 0.42, Z: 0.0}

	return h
}

// FistLandmarks returns a preset hand with no fingers extended.
func FistLandmarks() HandLandmarks {
	return curledHandLandmarks()
}

// curledHandLandmarks builds a hand with the thumb and all four fingers
// curled: every fingertip below its PIP joint, thumb tip tucked left of
// its IP joint in right-hand orientation.
func curledHandLandmarks() HandLandmarks {
	h := HandLandmarks{
		Handedness: "Right",
		Score:      0.95,
	}

	h.Points[Wrist] = Point3D{X: 0.5, Y: 0.85, Z: 0.0}

	// Thumb tucked: tip x (0.55) < IP x (0.58) while tip x > pinky tip x
	// (0.40), so the right-hand branch reports it down.
	h.Points[ThumbCMC] = Point3D{X: 0.56, Y: 0.78, Z: 0.0}
	h.Points[ThumbMCP] = Point3D{X: 0.59, Y: 0.72, Z: 0.0}
	h.Points[ThumbIP] = Point3D{X: 0.58, Y: 0.68, Z: 0.0}
	h.Points[ThumbTip] = Point3D{X: 0.55, Y: 0.66, Z: 0.0}

	h.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.66, Z: -0.02}
	h.Points[IndexPIP] = Point3D{X: 0.55, Y: 0.62, Z: -0.05}
	h.Points[IndexDIP] = Point3D{X: 0.53, Y: 0.66, Z: -0.04}
	h.Points[IndexTip] = Point3D{X: 0.51, Y: 0.70, Z: -0.02}

	h.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.64, Z: -0.02}
	h.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.60, Z: -0.05}
	h.Points[MiddleDIP] = Point3D{X: 0.48, Y: 0.64, Z: -0.04}
	h.Points[MiddleTip] = Point3D{X: 0.46, Y: 0.68, Z: -0.02}

	h.Points[RingMCP] = Point3D{X: 0.45, Y: 0.66, Z: -0.02}
	h.Points[RingPIP] = Point3D{X: 0.45, Y: 0.62, Z: -0.05}
	h.Points[RingDIP] = Point3D{X: 0.43, Y: 0.66, Z: -0.04}
	h.Points[RingTip] = Point3D{X: 0.41, Y: 0.70, Z: -0.02}

	h.Points[PinkyMCP] = Point3D{X: 0.41, Y: 0.69, Z: -0.02}
	h.Points[PinkyPIP] = Point3D{X: 0.41, Y: 0.66, Z: -0.05}
	h.Points[PinkyDIP] = Point3D{X: 0.40, Y: 0.69, Z: -0.04}
	h.Points[PinkyTip] = Point3D{X: 0.40, Y: 0.72, Z: -0.02}

	return h
}
