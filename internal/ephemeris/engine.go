package ephemeris

import (
	"math"
	"time"

	"github.com/litescript/orrery/internal/astro"
)

// Result is the instantaneous heliocentric position of one body in the
// ecliptic plane at a given date. Angle follows the mathematical ecliptic
// convention (counter-clockwise positive, measured from the vernal
// equinox); renderers with the opposite rotation direction negate it.
type Result struct {
	Angle    float64 // heliocentric longitude, radians in (-π, π]
	Distance float64 // in-plane distance from the Sun, AU
}

// Engine computes heliocentric positions from Keplerian elements. It holds
// only immutable data, so a single Engine may be shared freely and every
// query is deterministic in the date argument.
type Engine struct {
	elements map[Body]Elements
	solver   SolverConfig
}

// NewEngine creates an engine with the standard body set and solver settings.
func NewEngine() *Engine {
	return NewEngineWithConfig(DefaultSolverConfig())
}

// NewEngineWithConfig creates an engine with custom solver settings.
func NewEngineWithConfig(cfg SolverConfig) *Engine {
	return &Engine{
		elements: elements,
		solver:   cfg,
	}
}

// PositionOf returns the heliocentric position of a body at the given date.
// Bodies without orbital elements (decorative bodies, unknown identifiers)
// return a neutral default of angle 0 at 1 AU rather than an error.
func (e *Engine) PositionOf(b Body, t time.Time) Result {
	el, ok := e.elements[b]
	if !ok {
		return Result{Angle: 0, Distance: 1}
	}

	T := astro.CenturiesSinceJ2000(t)
	cur := el.At(T)

	// Mean anomaly from mean longitude and longitude of perihelion
	M := astro.NormalizeDeg180(cur.L - cur.Peri)

	// Eccentric anomaly via Kepler's equation
	E := astro.DegToRad(SolveEccentricAnomaly(M, cur.E, e.solver))

	// Position in the orbital plane, perihelion along +x'
	xp := cur.A * (math.Cos(E) - cur.E)
	yp := cur.A * math.Sqrt(1-cur.E*cur.E) * math.Sin(E)

	// Rotate into the ecliptic frame: argument of perihelion ω = ϖ - Ω,
	// ascending node Ω, inclination I. Only the two in-plane output
	// coordinates are needed.
	w := astro.DegToRad(cur.Peri - cur.Node)
	node := astro.DegToRad(cur.Node)
	inc := astro.DegToRad(cur.I)

	cosW, sinW := math.Cos(w), math.Sin(w)
	cosN, sinN := math.Cos(node), math.Sin(node)
	cosI := math.Cos(inc)

	xEcl := (cosW*cosN-sinW*sinN*cosI)*xp + (-sinW*cosN-cosW*sinN*cosI)*yp
	yEcl := (cosW*sinN+sinW*cosN*cosI)*xp + (-sinW*sinN+cosW*cosN*cosI)*yp

	angle := math.Atan2(yEcl, xEcl)
	if angle <= -math.Pi {
		// atan2 yields -π for y = -0; the contract range is (-π, π]
		angle = math.Pi
	}

	return Result{
		Angle:    angle,
		Distance: math.Hypot(xEcl, yEcl),
	}
}

// Positions returns the position of every modeled body at the given date.
func (e *Engine) Positions(t time.Time) map[Body]Result {
	out := make(map[Body]Result, len(Bodies))
	for _, b := range Bodies {
		out[b] = e.PositionOf(b, t)
	}
	return out
}

// ElementsAt returns a body's orbital elements extrapolated to the given
// date. The second return is false for bodies without elements.
func (e *Engine) ElementsAt(b Body, t time.Time) (Elements, bool) {
	el, ok := e.elements[b]
	if !ok {
		return Elements{}, false
	}
	return el.At(astro.CenturiesSinceJ2000(t)), true
}

// HasElements reports whether a body carries orbital elements.
func (e *Engine) HasElements(b Body) bool {
	_, ok := e.elements[b]
	return ok
}

// OrbitalPeriodDays returns a body's approximate orbital period in days
// from Kepler's third law, or 0 for bodies without elements.
func (e *Engine) OrbitalPeriodDays(b Body) float64 {
	el, ok := e.elements[b]
	if !ok {
		return 0
	}
	return math.Sqrt(el.A*el.A*el.A) * 365.25
}
