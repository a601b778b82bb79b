// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/camera"
	"github.com/litescript/orrery/internal/ephemeris"
	"github.com/litescript/orrery/internal/logging"
	"github.com/litescript/orrery/internal/sim"
)

// FrameMsg triggers one animation frame. It carries the frame's wall-clock
// time, which is the only time source the camera ever sees.
type FrameMsg time.Time

// defaultCameraHeight frames the whole system out to Pluto's ring.
const defaultCameraHeight = 1.7

// defaultPose is the overview camera looking straight down at the Sun.
var defaultPose = camera.Pose{
	Position: astro.Vec3{Z: defaultCameraHeight},
	Target:   astro.Vec3{},
}

// Config wires the model's collaborators. Every dependency is injected so
// independent scenes and tests never share state.
type Config struct {
	Engine *ephemeris.Engine
	Clock  *sim.Clock
	Camera *camera.Controller
	Logger *logging.Logger
	FPS    int
}

// Model is the root Bubble Tea model.
type Model struct {
	// Dependencies
	engine *ephemeris.Engine
	clock  *sim.Clock
	cam    *camera.Controller
	logger *logging.Logger

	// Scene and camera state
	scene    *scene
	pose     camera.Pose
	locked   *camera.Anchor
	inFlight bool

	// UI state
	width      int
	height     int
	ready      bool
	focusIdx   int // index into ephemeris.Bodies, -1 = Sun
	showOrbits bool
	showStars  bool

	frameInterval time.Duration
	lastFrame     time.Time
}

// New creates the root UI model.
func New(cfg Config) Model {
	fps := cfg.FPS
	if fps <= 0 {
		fps = 30
	}
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Discard()
	}
	cam := cfg.Camera
	if cam == nil {
		cam = camera.NewController(camera.DefaultConfig())
	}

	return Model{
		engine:        cfg.Engine,
		clock:         cfg.Clock,
		cam:           cam,
		logger:        logger,
		scene:         newScene(astro.DefaultProjectionConfig()),
		pose:          defaultPose,
		focusIdx:      -1,
		showOrbits:    true,
		showStars:     true,
		frameInterval: time.Second / time.Duration(fps),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.frameCmd()
}

func (m Model) frameCmd() tea.Cmd {
	return tea.Tick(m.frameInterval, func(t time.Time) tea.Msg {
		return FrameMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
		return m.handleKey(msg), nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

	case FrameMsg:
		m = m.step(time.Time(msg))
		return m, m.frameCmd()
	}

	return m, nil
}

// step advances one frame. Within a frame the order is fixed: advance the
// simulated date, query the ephemeris, then advance the camera, so the
// camera always targets the current frame's body positions.
func (m Model) step(now time.Time) Model {
	dt := now.Sub(m.lastFrame)
	if m.lastFrame.IsZero() || dt < 0 {
		dt = m.frameInterval
	}
	// A stalled terminal must not fling the simulation forward
	if dt > 250*time.Millisecond {
		dt = 250 * time.Millisecond
	}
	m.lastFrame = now

	m.clock.Advance(dt)
	m.scene.update(m.engine, m.clock.Now())
	m.inFlight = m.cam.Advance(&m.pose, m.locked, now)

	return m
}

func (m Model) handleKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	// Focus cycling
	case "]", "k":
		m.focusIdx++
		if m.focusIdx >= len(ephemeris.Bodies) {
			m.focusIdx = -1 // wrap to Sun
		}
	case "[", "j":
		m.focusIdx--
		if m.focusIdx < -1 {
			m.focusIdx = len(ephemeris.Bodies) - 1
		}

	// Fly to the focused body
	case "enter", "f":
		m = m.flyToFocused()

	// Reset to the overview pose
	case "r":
		m = m.resetView()

	// Cancel an in-flight transition where it stands
	case "esc":
		m.cam.Cancel()
		m.inFlight = false

	// Time controls
	case " ":
		m.clock.TogglePause()
	case "+", "=":
		m.clock.SpeedUp()
	case "-":
		m.clock.SpeedDown()
	case ".":
		if m.clock.Paused() {
			m.clock.StepDays(1)
		}
	case ",":
		if m.clock.Paused() {
			m.clock.StepDays(-1)
		}

	// Display toggles
	case "o":
		m.showOrbits = !m.showOrbits
	case "t":
		m.showStars = !m.showStars
	case "z":
		m.scene.proj.Mode = (m.scene.proj.Mode + 1) % 3
	}

	return m
}

// flyToFocused begins a camera transition toward the focused body's live
// anchor and locks tracking onto it for when the transition completes.
func (m Model) flyToFocused() Model {
	if m.focusIdx < 0 {
		return m.resetView()
	}

	b := ephemeris.Bodies[m.focusIdx]
	anchor := m.scene.anchor(b)
	standoff := standoffFor(ephemeris.Info[b].Class)

	m.cam.Begin(anchor, standoff, m.pose, m.frameNow())
	m.locked = &anchor
	m.inFlight = true

	m.logger.Debug("fly-to %s (standoff %.2f)", b.Name(), standoff)
	return m
}

// resetView flies back to the default overview with an explicit end
// position and releases any anchor lock.
func (m Model) resetView() Model {
	m.cam.BeginReset(camera.StaticAnchor(astro.Vec3{}), defaultPose.Position, m.pose, m.frameNow())
	m.locked = nil
	m.inFlight = true
	m.focusIdx = -1
	return m
}

// frameNow returns the current frame's time. Before the first frame no
// tick has stamped lastFrame yet, so fall back to the wall clock; a zero
// start time would make the next Advance see the full duration elapsed
// and snap the camera.
func (m Model) frameNow() time.Time {
	if m.lastFrame.IsZero() {
		return time.Now()
	}
	return m.lastFrame
}

// FocusedBody returns the focused body and true, or false when the Sun is
// focused.
func (m Model) FocusedBody() (ephemeris.Body, bool) {
	if m.focusIdx < 0 {
		return "", false
	}
	return ephemeris.Bodies[m.focusIdx], true
}
