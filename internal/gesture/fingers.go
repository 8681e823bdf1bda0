// Package gesture classifies raised fingers from hand landmark geometry.
package gesture

import (
	"errors"

	"github.com/ayusman/chitra/internal/detector"
)

// ErrNotDetected is returned when no hand landmarks are available for the
// current frame. It is an expected, frequent condition (the hand left the
// frame) and must be recovered locally, never treated as fatal.
var ErrNotDetected = errors.New("no hand detected")

// Finger indices into a FingerState.
const (
	Thumb = iota
	Index
	Middle
	Ring
	Pinky
	NumFingers
)

// FingerState reports which of the five fingers are extended.
type FingerState [NumFingers]bool

// tipIDs maps finger index to its fingertip landmark id.
var tipIDs = [NumFingers]int{
	detector.ThumbTip,
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// All reports whether every finger is extended.
func (f FingerState) All() bool {
	for _, up := range f {
		if !up {
			return false
		}
	}
	return true
}

// Classify derives the finger state from one hand's pixel landmarks.
// Returns ErrNotDetected when hand is nil.
//
// A non-thumb finger counts as extended when its tip is above the joint
// two landmarks below it (smaller y is higher on screen). The thumb folds
// sideways, so it is compared on x against landmark 3, with the direction
// of the comparison chosen by hand orientation: thumb tip left of the
// pinky tip means a left hand in the mirrored view.
func Classify(hand *detector.PixelLandmarks) (FingerState, error) {
	if hand == nil {
		return FingerState{}, ErrNotDetected
	}

	var state FingerState

	thumbTip := hand.PositionOf(detector.ThumbTip)
	thumbIP := hand.PositionOf(detector.ThumbIP)
	pinkyTip := hand.PositionOf(detector.PinkyTip)

	if thumbTip.X < pinkyTip.X {
		state[Thumb] = thumbTip.X < thumbIP.X
	} else {
		state[Thumb] = thumbTip.X > thumbIP.X
	}

	for finger := Index; finger <= Pinky; finger++ {
		tip := tipIDs[finger]
		state[finger] = hand.PositionOf(tip).Y < hand.PositionOf(tip-2).Y
	}

	return state, nil
}
