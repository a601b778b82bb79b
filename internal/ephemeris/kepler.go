package ephemeris

import (
	"math"

	"github.com/litescript/orrery/internal/astro"
)

// SolverConfig controls the Kepler equation solver.
type SolverConfig struct {
	MaxIterations int     // iteration cap; the best iterate is returned when hit
	ToleranceDeg  float64 // stop once |correction| falls below this, in degrees
}

// DefaultSolverConfig returns the standard solver settings.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxIterations: 20,
		ToleranceDeg:  1e-7,
	}
}

// SolveEccentricAnomaly solves Kepler's equation M = E - e*·sin(E) for the
// eccentric anomaly E using Newton-Raphson iteration, with all angles in
// degrees (e* is the eccentricity scaled by 180/π).
//
// Valid for 0 <= e < 1; convergence degrades as e approaches 1. The
// function never fails: if the iteration cap is hit the best available
// estimate is returned and callers tolerate the bounded error.
func SolveEccentricAnomaly(meanAnomalyDeg, e float64, cfg SolverConfig) float64 {
	eStarDeg := astro.RadToDeg(e)

	M := meanAnomalyDeg
	E := M + eStarDeg*math.Sin(astro.DegToRad(M))

	for i := 0; i < cfg.MaxIterations; i++ {
		dM := M - (E - eStarDeg*math.Sin(astro.DegToRad(E)))
		dE := dM / (1 - e*math.Cos(astro.DegToRad(E)))
		E += dE

		if math.Abs(dE) < cfg.ToleranceDeg {
			break
		}
	}

	return E
}
