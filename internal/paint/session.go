package paint

import (
	"image"
	"image/color"
	"sync"

	"github.com/google/uuid"

	"github.com/ayusman/chitra/internal/gesture"
)

// Mode is the gesture mode resolved for one frame.
type Mode int

const (
	// ModeIdle means no gesture action this frame.
	ModeIdle Mode = iota
	// ModeSelecting means index and middle fingers are up; the fingertip
	// may pick a toolbar swatch.
	ModeSelecting
	// ModeDrawing means only the index finger is up; the fingertip paints.
	ModeDrawing
	// ModeClearing means an open palm wiped the canvas.
	ModeClearing
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeSelecting:
		return "selecting"
	case ModeDrawing:
		return "drawing"
	case ModeClearing:
		return "clearing"
	default:
		return "idle"
	}
}

// DefaultThickness is the brush thickness in pixels.
const DefaultThickness = 20

// State is a snapshot of the session's mutable paint state.
type State struct {
	Mode        Mode       `json:"mode"`
	HeaderIndex int        `json:"headerIndex"`
	Color       color.RGBA `json:"color"`
	Thickness   int        `json:"thickness"`
}

// Session holds all mutable painting state for one run: the stroke canvas,
// the active color and header selection, and stroke/clear counters. State
// is mutated by the frame pipeline and by the control API, so it is
// guarded by a mutex.
type Session struct {
	mu          sync.Mutex
	id          string
	canvas      *Canvas
	palette     Palette
	color       color.RGBA
	headerIndex int
	thickness   int
	mode        Mode
	strokes     int
	clears      int
}

// NewSession creates a session with a fresh canvas of the given dimensions,
// the default palette and swatch 0 (red) selected.
func NewSession(width, height int) *Session {
	palette := DefaultPalette()
	return &Session{
		id:          uuid.NewString(),
		canvas:      NewCanvas(width, height),
		palette:     palette,
		color:       palette[0].Color,
		headerIndex: palette[0].HeaderIndex,
		thickness:   DefaultThickness,
	}
}

// Advance resolves the gesture mode for one frame from the finger state and
// the index fingertip position, applying its side effects.
//
// Selection (index and middle up) lifts the pen and, when the fingertip is
// inside the toolbar band, switches the active swatch. Drawing (index up,
// middle down) extends the stroke. Anything else is idle and lifts the pen.
// The open-palm clear check runs last and unconditionally, after whichever
// of select/draw fired, and wins the reported mode.
func (s *Session) Advance(fs gesture.FingerState, indexTip image.Point) Mode {
	s.mu.Lock()
	defer s.mu.Unlock()

	mode := ModeIdle
	switch {
	case fs[gesture.Index] && fs[gesture.Middle]:
		mode = ModeSelecting
		s.canvas.ResetStroke()
		if sw, ok := s.palette.Hit(indexTip); ok {
			s.headerIndex = sw.HeaderIndex
			s.color = sw.Color
		}
	case fs[gesture.Index]:
		mode = ModeDrawing
		if _, ok := s.canvas.LastPoint(); !ok {
			s.strokes++
		}
		s.canvas.ContinueStroke(indexTip, s.color, s.thickness)
	default:
		s.canvas.ResetStroke()
	}

	if fs.All() {
		s.canvas.Clear()
		s.clears++
		mode = ModeClearing
	}

	s.mode = mode
	return mode
}

// Select switches the active swatch by header index, the same side effect
// as a toolbar hit in selection mode.
func (s *Session) Select(index int) error {
	sw, err := s.palette.ByIndex(index)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.headerIndex = sw.HeaderIndex
	s.color = sw.Color
	return nil
}

// Clear wipes the canvas, the same side effect as the open-palm gesture.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.canvas.Clear()
	s.clears++
}

// SetThickness sets the brush thickness. Non-positive values are ignored.
func (s *Session) SetThickness(thickness int) {
	if thickness <= 0 {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.thickness = thickness
}

// State returns a snapshot of the current paint state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return State{
		Mode:        s.mode,
		HeaderIndex: s.headerIndex,
		Color:       s.color,
		Thickness:   s.thickness,
	}
}

// Counters returns the stroke and clear counts accumulated so far.
func (s *Session) Counters() (strokes, clears int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.strokes, s.clears
}

// ID returns the session's unique id.
func (s *Session) ID() string {
	return s.id
}

// Palette returns the toolbar palette.
func (s *Session) Palette() Palette {
	return s.palette
}

// Canvas returns the stroke canvas.
func (s *Session) Canvas() *Canvas {
	return s.canvas
}

// Close releases the canvas.
func (s *Session) Close() {
	s.canvas.Close()
}
