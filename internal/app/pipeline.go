package app

import (
	"fmt"
	"image"
	"log"
	"time"

	"gocv.io/x/gocv"

	"github.com/ayusman/chitra/internal/detector"
	"github.com/ayusman/chitra/internal/gesture"
	"github.com/ayusman/chitra/internal/paint"
)

// Overlay colors and geometry for the cosmetic frame decorations.
var landmarkColor = paint.Blue

const selectionPad = 25

// runPipeline is the frame-synchronous painting loop. Each tick fully
// processes one frame before the next is captured:
//
//  1. Read a frame and mirror it horizontally.
//  2. Motion gating: idle rate while still, active rate while moving;
//     dropping to idle lifts the pen so a later stroke starts fresh.
//  3. Hand detection (first hand only). No hand means no gesture this
//     frame; canvas and selection state stay untouched.
//  4. Classify raised fingers, advance the session, draw overlays.
//  5. Composite canvas and header onto the frame, publish it and hand it
//     to the display.
func (a *App) runPipeline() {
	activeMode := false
	lastMotionTime := time.Now()
	prevFrameTime := time.Now()

	frameInterval := time.Second / time.Duration(IdleFPS)

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-a.stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.Camera().ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			gocv.Flip(*frame, frame, 1) // mirror view

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.Camera().SetFPS(ActiveFPS)
					frameInterval = time.Second / time.Duration(ActiveFPS)
					ticker.Reset(frameInterval)
					log.Println("Switched to active mode")
				}
			} else if activeMode {
				if time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
					activeMode = false
					a.Camera().SetFPS(IdleFPS)
					frameInterval = time.Second / time.Duration(IdleFPS)
					ticker.Reset(frameInterval)
					a.session.Canvas().ResetStroke()
					log.Println("Switched to idle mode")
				}
			}

			var hands []detector.HandLandmarks
			if activeMode && a.Detector() != nil {
				hands, err = a.Detector().Detect(frame)
				if err != nil {
					log.Printf("Error detecting hands: %v", err)
					hands = nil
				}
			}

			a.processHands(frame, hands)

			state := a.session.State()
			paint.Composite(frame, a.session.Canvas().Mat(), a.headers[state.HeaderIndex])

			// FPS counter
			now := time.Now()
			fps := 1.0 / now.Sub(prevFrameTime).Seconds()
			prevFrameTime = now
			gocv.PutText(frame, fmt.Sprintf("%d", int(fps)), image.Point{X: 10, Y: 70},
				gocv.FontHersheyPlain, 3, landmarkColor, 3)

			a.publishFrame(frame, hands)

			quit := a.showFrame(frame)
			frame.Close()

			if quit {
				if a.config.OnQuit != nil {
					a.config.OnQuit()
				}
				return
			}
		}
	}
}

// processHands resolves the gesture for the first detected hand and draws
// the cosmetic overlays. With no hand the frame carries no gesture: the
// canvas, the active swatch and the stroke's last point are left exactly
// as they were.
func (a *App) processHands(frame *gocv.Mat, hands []detector.HandLandmarks) {
	if len(hands) == 0 {
		return
	}

	pixels := hands[0].ToPixels(frame.Cols(), frame.Rows())

	fingers, err := gesture.Classify(pixels)
	if err != nil {
		// Expected when the hand leaves the frame; nothing to resolve.
		return
	}

	drawLandmarks(frame, pixels)

	indexTip := pixels.PositionOf(detector.IndexTip)
	middleTip := pixels.PositionOf(detector.MiddleTip)

	mode := a.session.Advance(fingers, indexTip)
	state := a.session.State()

	switch mode {
	case paint.ModeSelecting:
		// Highlight between the two raised fingertips.
		r := image.Rect(indexTip.X, indexTip.Y-selectionPad, middleTip.X, middleTip.Y+selectionPad)
		gocv.Rectangle(frame, r, state.Color, -1)
	case paint.ModeDrawing:
		gocv.Circle(frame, indexTip, state.Thickness, state.Color, -1)
	}
}

// drawLandmarks marks each detected landmark on the preview frame.
func drawLandmarks(frame *gocv.Mat, pixels *detector.PixelLandmarks) {
	for i := 0; i < detector.NumLandmarks; i++ {
		gocv.Circle(frame, pixels.PositionOf(i), 10, landmarkColor, 2)
	}
}

// publishFrame stores the composited frame as JPEG for the MJPEG stream
// and the WebSocket broadcast.
func (a *App) publishFrame(frame *gocv.Mat, hands []detector.HandLandmarks) {
	buf, err := gocv.IMEncode(".jpg", *frame)
	if err != nil {
		log.Printf("Error encoding frame: %v", err)
		return
	}
	defer buf.Close()

	jpeg := make([]byte, buf.Len())
	copy(jpeg, buf.GetBytes())
	a.publish(jpeg, hands)
}

// showFrame hands the frame to the configured display, reporting whether
// the user asked to quit.
func (a *App) showFrame(frame *gocv.Mat) bool {
	if a.config.Display == nil {
		return false
	}

	quit, err := a.config.Display.Show(frame)
	if err != nil {
		log.Printf("Display error: %v", err)
		return false
	}
	return quit
}
