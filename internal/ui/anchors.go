package ui

import (
	"math"
	"time"

	"github.com/litescript/orrery/internal/astro"
	"github.com/litescript/orrery/internal/camera"
	"github.com/litescript/orrery/internal/ephemeris"
)

// bodyAnchor is a live camera anchor backed by the body's most recent
// projected position. The scene updates it once per frame, after the
// ephemeris query and before the camera advances, so the camera always
// sees the current frame's position.
type bodyAnchor struct {
	pos astro.Vec3
}

// WorldPosition implements camera.Handle.
func (a *bodyAnchor) WorldPosition() astro.Vec3 {
	return a.pos
}

// scene holds per-frame body positions in display units.
type scene struct {
	proj    astro.ProjectionConfig
	anchors map[ephemeris.Body]*bodyAnchor
	results map[ephemeris.Body]ephemeris.Result
}

func newScene(proj astro.ProjectionConfig) *scene {
	anchors := make(map[ephemeris.Body]*bodyAnchor, len(ephemeris.Bodies))
	for _, b := range ephemeris.Bodies {
		anchors[b] = &bodyAnchor{}
	}
	return &scene{
		proj:    proj,
		anchors: anchors,
	}
}

// moonOrbitDisplayRadius is the decorative radius of the Moon's orbit
// around Earth, in display units.
const moonOrbitDisplayRadius = 0.045

// moonPeriodDays is the Moon's synodic-ish period used for the decoration.
const moonPeriodDays = 27.32

// update recomputes every body's display position for the given simulated
// date. The Moon carries no heliocentric elements (the engine returns its
// neutral default), so it is placed on a small circle around Earth here.
func (s *scene) update(eng *ephemeris.Engine, date time.Time) {
	s.results = eng.Positions(date)

	for b, r := range s.results {
		if b == ephemeris.Moon {
			continue
		}
		p := astro.ProjectTopDown(r.Angle, r.Distance, s.proj)
		s.anchors[b].pos = astro.Vec3{X: p.X, Y: p.Y}
	}

	earth := s.anchors[ephemeris.Earth].pos
	phase := 2 * math.Pi * math.Mod(astro.JulianDay(date), moonPeriodDays) / moonPeriodDays
	s.anchors[ephemeris.Moon].pos = earth.Add(astro.Vec3{
		X: moonOrbitDisplayRadius * math.Cos(phase),
		Y: moonOrbitDisplayRadius * math.Sin(phase),
	})
}

// anchor returns the live camera anchor for a body.
func (s *scene) anchor(b ephemeris.Body) camera.Anchor {
	return camera.LiveAnchor(s.anchors[b])
}

// position returns a body's current display position.
func (s *scene) position(b ephemeris.Body) astro.Vec3 {
	return s.anchors[b].pos
}

// standoffFor returns the fly-to standoff distance (display units) for a
// body class: big bodies get a wider framing.
func standoffFor(class ephemeris.BodyClass) float64 {
	switch class {
	case ephemeris.ClassGiant:
		return 0.50
	case ephemeris.ClassDwarf:
		return 0.35
	case ephemeris.ClassSatellite:
		return 0.15
	default:
		return 0.25
	}
}
