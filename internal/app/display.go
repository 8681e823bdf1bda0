package app

import "gocv.io/x/gocv"

// Display consumes composited frames. Implementations decide how to show
// them and whether the user asked to exit.
type Display interface {
	// Show presents one frame. Returns true when the user requested quit.
	Show(frame *gocv.Mat) (quit bool, err error)
	Close() error
}

// WindowDisplay shows frames in an OpenCV window. Pressing q or Escape
// requests quit.
type WindowDisplay struct {
	window *gocv.Window
}

// NewWindowDisplay creates a named preview window.
func NewWindowDisplay(title string) *WindowDisplay {
	return &WindowDisplay{window: gocv.NewWindow(title)}
}

// Show displays the frame and polls for a key press.
func (d *WindowDisplay) Show(frame *gocv.Mat) (bool, error) {
	d.window.IMShow(*frame)
	key := d.window.WaitKey(1)
	return key == 'q' || key == 27, nil
}

// Close destroys the window.
func (d *WindowDisplay) Close() error {
	return d.window.Close()
}
