// Package app provides the main application logic for the Chitra air painter.
package app

import (
	"log"
	"sync"

	"gocv.io/x/gocv"

	"github.com/ayusman/chitra/internal/capture"
	"github.com/ayusman/chitra/internal/detector"
	"github.com/ayusman/chitra/internal/paint"
	"github.com/ayusman/chitra/internal/store"
)

// Pipeline timing constants.
const (
	// IdleFPS is the frame rate while the scene is still.
	IdleFPS = 5
	// ActiveFPS is the frame rate while motion is present.
	ActiveFPS = 15
	// IdleTimeoutMs is how long after the last motion the pipeline drops
	// back to the idle rate.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	CameraID     int
	MotionThresh float64
	Width        int
	Height       int
	HeaderDir    string
	Display      Display
	// OnQuit is called once when the display requests exit.
	OnQuit func()
}

// App orchestrates the painting pipeline: capture, hand detection, gesture
// resolution, canvas compositing and output publishing.
type App struct {
	config   Config
	camera   capture.Camera
	motion   *capture.MotionDetector
	detector detector.Detector
	session  *paint.Session
	headers  []gocv.Mat
	enabled  bool
	mu       sync.RWMutex
	stopCh   chan struct{}

	latestMu sync.RWMutex
	latest   []byte
	hands    []detector.HandLandmarks
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.Width <= 0 {
		config.Width = capture.DefaultWidth
	}
	if config.Height <= 0 {
		config.Height = capture.DefaultHeight
	}
	motionThreshold := config.MotionThresh
	if motionThreshold <= 0 {
		motionThreshold = 1.0 // Default threshold: 1% pixel change
	}

	a := &App{
		config:  config,
		camera:  capture.NewCamera(config.CameraID),
		motion:  capture.NewMotionDetector(motionThreshold),
		session: paint.NewSession(config.Width, config.Height),
		enabled: true,
	}

	a.headers = loadHeaders(config.HeaderDir, config.Width, a.session.Palette())

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(detector.DefaultConfig()); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// loadHeaders reads toolbar images from dir, synthesizing them when the
// directory is missing or incomplete.
func loadHeaders(dir string, width int, palette paint.Palette) []gocv.Mat {
	if dir != "" {
		headers, err := paint.LoadHeaders(dir, len(palette))
		if err == nil {
			return headers
		}
		log.Printf("Header images unavailable (%v), synthesizing toolbar", err)
	}
	return paint.SynthesizeHeaders(width, palette)
}

// SetEnabled enables or disables painting.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether painting is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetCamera sets the camera implementation to use.
func (a *App) SetCamera(c capture.Camera) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.camera = c
}

// LoadSettings applies persisted settings (selected swatch, brush
// thickness) to the session.
func (a *App) LoadSettings() error {
	if a.config.Store == nil {
		return nil
	}
	settings := a.config.Store.Settings()

	index, err := settings.GetInt(store.SettingHeaderIndex, 0)
	if err != nil {
		return err
	}
	if err := a.session.Select(index); err != nil {
		log.Printf("Ignoring persisted swatch %d: %v", index, err)
	}

	thickness, err := settings.GetInt(store.SettingBrushThickness, paint.DefaultThickness)
	if err != nil {
		return err
	}
	a.session.SetThickness(thickness)

	return nil
}

// SaveSettings persists the session's current swatch and brush thickness.
func (a *App) SaveSettings() error {
	if a.config.Store == nil {
		return nil
	}
	settings := a.config.Store.Settings()
	state := a.session.State()

	if err := settings.SetInt(store.SettingHeaderIndex, state.HeaderIndex); err != nil {
		return err
	}
	return settings.SetInt(store.SettingBrushThickness, state.Thickness)
}

// Start begins the painting pipeline.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}

	a.camera.SetFPS(IdleFPS)

	if a.config.Store != nil {
		err := a.config.Store.Sessions().Create(&store.Session{ID: a.session.ID()})
		if err != nil {
			log.Printf("Failed to record session: %v", err)
		}
	}

	a.stopCh = make(chan struct{})
	go a.runPipeline()

	log.Println("Painting pipeline started")
	return nil
}

// Stop halts the pipeline, persists settings and session counters, and
// releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	if a.config.Store != nil {
		strokes, clears := a.session.Counters()
		if err := a.config.Store.Sessions().Finish(a.session.ID(), strokes, clears); err != nil {
			log.Printf("Failed to finish session record: %v", err)
		}
		if err := a.SaveSettings(); err != nil {
			log.Printf("Failed to persist settings: %v", err)
		}
	}

	log.Println("Painting pipeline stopped")
}

// CloseAssets releases the header Mats and the canvas. Call after Stop.
func (a *App) CloseAssets() {
	paint.CloseHeaders(a.headers)
	a.session.Close()
}

// Session returns the paint session.
func (a *App) Session() *paint.Session {
	return a.session
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.camera
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}

// Latest returns the most recent composited frame as JPEG bytes.
func (a *App) Latest() ([]byte, bool) {
	a.latestMu.RLock()
	defer a.latestMu.RUnlock()
	if a.latest == nil {
		return nil, false
	}
	return a.latest, true
}

// Snapshot returns the current paint state and the most recent hands.
func (a *App) Snapshot() (paint.State, []detector.HandLandmarks) {
	state := a.session.State()
	a.latestMu.RLock()
	defer a.latestMu.RUnlock()
	return state, a.hands
}

func (a *App) publish(jpeg []byte, hands []detector.HandLandmarks) {
	a.latestMu.Lock()
	defer a.latestMu.Unlock()
	a.latest = jpeg
	a.hands = hands
}
