package ephemeris

import (
	"math"
	"testing"

	"github.com/litescript/orrery/internal/astro"
)

func TestSolveCircularOrbit(t *testing.T) {
	// For e=0 the equation degenerates to E == M and the initial guess is
	// already exact.
	cfg := DefaultSolverConfig()

	for _, m := range []float64{-180, -90, -33.3, 0, 10, 90, 179.99} {
		got := SolveEccentricAnomaly(m, 0, cfg)
		if got != m {
			t.Errorf("e=0: SolveEccentricAnomaly(%v) = %v, want exactly %v", m, got, m)
		}
	}
}

func TestSolveRoundTrip(t *testing.T) {
	// Verify the equation actually solved: M == E - e*·sin(E) in degrees.
	cfg := DefaultSolverConfig()

	eccs := []float64{0, 0.0167, 0.1, 0.2056, 0.3, 0.5, 0.7, 0.9}
	anomalies := []float64{-179, -120, -45, -1, 0, 1, 30, 90, 135, 180}

	for _, e := range eccs {
		for _, m := range anomalies {
			E := SolveEccentricAnomaly(m, e, cfg)
			eStar := astro.RadToDeg(e)
			back := E - eStar*math.Sin(astro.DegToRad(E))
			if math.Abs(back-m) > 1e-6 {
				t.Errorf("e=%v M=%v: round-trip = %v (E=%v), error %v",
					e, m, back, E, math.Abs(back-m))
			}
		}
	}
}

func TestSolveHighEccentricityNoPanic(t *testing.T) {
	// Near-parabolic eccentricities may not converge within the cap; the
	// solver must still return a finite estimate.
	cfg := DefaultSolverConfig()

	for _, e := range []float64{0.95, 0.99, 0.999} {
		for _, m := range []float64{-170, -5, 0.1, 45, 179} {
			E := SolveEccentricAnomaly(m, e, cfg)
			if math.IsNaN(E) || math.IsInf(E, 0) {
				t.Errorf("e=%v M=%v: non-finite result %v", e, m, E)
			}
		}
	}
}

func TestSolveIterationCap(t *testing.T) {
	// A one-iteration cap must terminate and return the first iterate, not
	// loop or error.
	cfg := SolverConfig{MaxIterations: 1, ToleranceDeg: 0}

	E := SolveEccentricAnomaly(90, 0.5, cfg)
	if math.IsNaN(E) || math.IsInf(E, 0) {
		t.Fatalf("capped solve returned non-finite %v", E)
	}

	// With a generous cap the same inputs converge; the capped result
	// should already be in the neighborhood.
	full := SolveEccentricAnomaly(90, 0.5, DefaultSolverConfig())
	if math.Abs(E-full) > 15 {
		t.Errorf("capped iterate %v too far from converged %v", E, full)
	}
}
