// Package camera implements a smooth, continuously-retargeting fly-to
// transition between arbitrary 3D anchors, plus damped idle tracking of a
// locked anchor.
//
// The controller owns no clock of its own: callers pass the current time
// into Begin and Advance, so transitions are fully testable without real
// delays. It is designed for a single frame loop and is not safe for
// concurrent use.
package camera

import (
	"time"

	"github.com/litescript/orrery/internal/astro"
)

// Handle reports an anchor's current world position. Implementations are
// supplied by the driver (the core never reaches into a scene itself).
type Handle interface {
	WorldPosition() astro.Vec3
}

// Anchor is a fly-to target: either a static point or a live handle whose
// position is re-sampled every frame.
type Anchor struct {
	live   Handle
	static astro.Vec3
}

// StaticAnchor returns an anchor fixed at a point.
func StaticAnchor(p astro.Vec3) Anchor {
	return Anchor{static: p}
}

// LiveAnchor returns an anchor that follows a handle's live position.
func LiveAnchor(h Handle) Anchor {
	return Anchor{live: h}
}

// Position returns the anchor's current world position. Live anchors are
// re-sampled on every call; a stale position is never cached.
func (a Anchor) Position() astro.Vec3 {
	if a.live != nil {
		return a.live.WorldPosition()
	}
	return a.static
}

// Pose is a camera position and look target.
type Pose struct {
	Position astro.Vec3
	Target   astro.Vec3
}

// Config holds the tunable transition constants.
type Config struct {
	// Duration of a fly-to transition.
	Duration time.Duration

	// MinHeightFrac clamps the end position's height to this fraction of
	// the standoff distance, keeping the camera from diving below a body.
	MinHeightFrac float64

	// IdleDamping is the per-frame fraction by which the look target eases
	// toward a locked anchor while no transition is active.
	IdleDamping float64
}

// DefaultConfig returns the standard transition settings.
func DefaultConfig() Config {
	return Config{
		Duration:      1600 * time.Millisecond,
		MinHeightFrac: 0.3,
		IdleDamping:   0.08,
	}
}

// transition is one in-flight fly-to. At most one exists at a time.
type transition struct {
	anchor      Anchor
	standoff    float64
	startPos    astro.Vec3
	startTarget astro.Vec3
	startTime   time.Time
	duration    time.Duration

	// explicitEnd, when set, overrides the computed end position (used by
	// reset-to-default-view requests).
	explicitEnd    astro.Vec3
	hasExplicitEnd bool
}

// Controller drives camera transitions. A new Begin replaces any in-flight
// transition outright; there is no queue.
type Controller struct {
	cfg    Config
	active *transition
}

// NewController creates a controller with the given settings. Zero-valued
// fields fall back to the defaults.
func NewController(cfg Config) *Controller {
	def := DefaultConfig()
	if cfg.Duration <= 0 {
		cfg.Duration = def.Duration
	}
	if cfg.MinHeightFrac == 0 {
		cfg.MinHeightFrac = def.MinHeightFrac
	}
	if cfg.IdleDamping == 0 {
		cfg.IdleDamping = def.IdleDamping
	}
	return &Controller{cfg: cfg}
}

// Begin starts a fly-to toward an anchor, ending at the standoff distance
// along the camera's pre-transition viewing direction. Any in-flight
// transition is discarded.
func (c *Controller) Begin(anchor Anchor, standoff float64, pose Pose, now time.Time) {
	c.active = &transition{
		anchor:      anchor,
		standoff:    standoff,
		startPos:    pose.Position,
		startTarget: pose.Target,
		startTime:   now,
		duration:    c.cfg.Duration,
	}
}

// BeginReset starts a fly-to that ends at an exact camera position rather
// than a standoff-derived one. Used for reset-to-default-view requests.
func (c *Controller) BeginReset(anchor Anchor, endPos astro.Vec3, pose Pose, now time.Time) {
	c.active = &transition{
		anchor:         anchor,
		startPos:       pose.Position,
		startTarget:    pose.Target,
		startTime:      now,
		duration:       c.cfg.Duration,
		explicitEnd:    endPos,
		hasExplicitEnd: true,
	}
}

// Cancel discards any in-flight transition, leaving the camera wherever
// the last Advance put it.
func (c *Controller) Cancel() {
	c.active = nil
}

// Active reports whether a transition is in flight.
func (c *Controller) Active() bool {
	return c.active != nil
}

// Advance moves the pose one frame forward and reports whether a
// transition is still in flight.
//
// With no active transition this is a no-op apart from idle tracking: when
// a locked anchor is supplied, the look target eases toward its live
// position at the configured damping rate.
func (c *Controller) Advance(pose *Pose, locked *Anchor, now time.Time) bool {
	tr := c.active
	if tr == nil {
		if locked != nil {
			pose.Target = pose.Target.Lerp(locked.Position(), c.cfg.IdleDamping)
		}
		return false
	}

	raw := now.Sub(tr.startTime).Seconds() / tr.duration.Seconds()
	if raw < 0 {
		raw = 0
	}
	if raw > 1 {
		raw = 1
	}
	t := easeInOutQuart(raw)

	// Re-sample the anchor every frame so a moving anchor is tracked to
	// its current position, not its position at transition start.
	liveTarget := tr.anchor.Position()

	endPos := tr.explicitEnd
	if !tr.hasExplicitEnd {
		dir := tr.startPos.Sub(tr.startTarget).Normalized()
		endPos = liveTarget.Add(dir.Scale(tr.standoff))
		if minZ := c.cfg.MinHeightFrac * tr.standoff; endPos.Z < minZ {
			endPos.Z = minZ
		}
	}

	pose.Position = tr.startPos.Lerp(endPos, t)
	pose.Target = tr.startTarget.Lerp(liveTarget, t)

	if raw >= 1 {
		c.active = nil
		return false
	}
	return true
}

// easeInOutQuart is the quartic ease-in-out curve:
// t<0.5 → 8t⁴, else 1 − (−2t+2)⁴/2.
func easeInOutQuart(t float64) float64 {
	if t < 0.5 {
		return 8 * t * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f*f/2
}
