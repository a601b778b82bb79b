package ephemeris

import (
	"math"
	"testing"
	"time"
)

var j2000 = time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC)

func TestPositionRangeAllBodies(t *testing.T) {
	// For all bodies and dates spanning 1900-2100 the angle stays in
	// (-π, π] and the distance is positive.
	eng := NewEngine()

	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2100, 1, 1, 0, 0, 0, 0, time.UTC)

	for date := start; date.Before(end); date = date.AddDate(0, 6, 7) {
		for b, r := range eng.Positions(date) {
			if r.Angle <= -math.Pi || r.Angle > math.Pi {
				t.Errorf("%s at %v: angle %v out of (-π, π]", b, date, r.Angle)
			}
			if r.Distance <= 0 {
				t.Errorf("%s at %v: distance %v not positive", b, date, r.Distance)
			}
		}
	}
}

func TestPositionDeterministic(t *testing.T) {
	eng := NewEngine()
	date := time.Date(2026, 8, 30, 17, 4, 5, 123456789, time.UTC)

	for _, b := range Bodies {
		r1 := eng.PositionOf(b, date)
		r2 := eng.PositionOf(b, date)
		if r1 != r2 {
			t.Errorf("%s: repeated query differs: %v vs %v", b, r1, r2)
		}
	}
}

func TestUnknownBodyDefault(t *testing.T) {
	eng := NewEngine()

	want := Result{Angle: 0, Distance: 1}
	if got := eng.PositionOf(Body("vulcan"), j2000); got != want {
		t.Errorf("unknown body = %v, want %v", got, want)
	}

	// The Moon is modeled without heliocentric elements and rides the
	// same default.
	if got := eng.PositionOf(Moon, j2000); got != want {
		t.Errorf("moon = %v, want %v", got, want)
	}
	if eng.HasElements(Moon) {
		t.Error("moon unexpectedly has heliocentric elements")
	}
}

func TestElementsAtJ2000(t *testing.T) {
	// At T≈0 the secular rate contribution vanishes, so the extrapolated
	// elements equal the tabulated J2000 values.
	eng := NewEngine()

	for b, want := range elements {
		got, ok := eng.ElementsAt(b, j2000)
		if !ok {
			t.Fatalf("%s: no elements", b)
		}
		const tol = 1e-9
		if math.Abs(got.A-want.A) > tol ||
			math.Abs(got.E-want.E) > tol ||
			math.Abs(got.I-want.I) > tol ||
			math.Abs(got.L-want.L) > tol ||
			math.Abs(got.Peri-want.Peri) > tol ||
			math.Abs(got.Node-want.Node) > tol {
			t.Errorf("%s at J2000: got %+v, want tabulated %+v", b, got, want)
		}
	}
}

func TestEarthLongitudeAtJ2000(t *testing.T) {
	// Known-epoch sanity: Earth's heliocentric ecliptic longitude at
	// J2000 is about 100.4° (opposite the Sun's geocentric ~280°).
	eng := NewEngine()

	r := eng.PositionOf(Earth, j2000)
	lonDeg := r.Angle * 180 / math.Pi
	if math.Abs(lonDeg-100.4) > 0.5 {
		t.Errorf("Earth longitude at J2000 = %.3f°, want ≈100.4°", lonDeg)
	}
	if math.Abs(r.Distance-1.0) > 0.02 {
		t.Errorf("Earth distance at J2000 = %.4f AU, want ≈1", r.Distance)
	}
}

func TestMercuryDistanceBounds(t *testing.T) {
	// Mercury's in-plane distance must stay between perihelion and
	// aphelion (with a little slack for the inclination projection).
	eng := NewEngine()

	el := elements[Mercury]
	periAU := el.A * (1 - el.E)
	apoAU := el.A * (1 + el.E)

	date := time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 200; i++ {
		r := eng.PositionOf(Mercury, date)
		if r.Distance < periAU*0.98 || r.Distance > apoAU*1.01 {
			t.Errorf("at %v: distance %.4f outside [%.4f, %.4f]",
				date, r.Distance, periAU, apoAU)
		}
		date = date.AddDate(0, 0, 1)
	}
}

func TestFullRevolution(t *testing.T) {
	// Sampling one orbital period at 1-day steps, the unwrapped sum of
	// signed angular deltas completes one revolution, and no single step
	// exceeds a small bound except at the ±π wrap (which unwrapping
	// removes).
	eng := NewEngine()

	tests := []struct {
		body    Body
		maxStep float64 // radians per day
	}{
		{Mercury, 0.15}, // ~6.5°/day near perihelion
		{Earth, 0.05},
		{Mars, 0.05},
	}

	for _, tt := range tests {
		t.Run(string(tt.body), func(t *testing.T) {
			period := eng.OrbitalPeriodDays(tt.body)
			if period <= 0 {
				t.Fatalf("no period for %s", tt.body)
			}
			days := int(math.Round(period))

			date := time.Date(2010, 3, 14, 0, 0, 0, 0, time.UTC)
			prev := eng.PositionOf(tt.body, date).Angle
			sum := 0.0
			for i := 1; i <= days; i++ {
				date = date.AddDate(0, 0, 1)
				cur := eng.PositionOf(tt.body, date).Angle

				delta := cur - prev
				// Unwrap across the ±π boundary
				if delta > math.Pi {
					delta -= 2 * math.Pi
				} else if delta < -math.Pi {
					delta += 2 * math.Pi
				}

				if math.Abs(delta) > tt.maxStep {
					t.Errorf("day %d: step %v exceeds %v rad", i, delta, tt.maxStep)
				}
				sum += delta
				prev = cur
			}

			want := 2 * math.Pi * float64(days) / period
			if math.Abs(sum-want) > 0.05 {
				t.Errorf("unwrapped revolution = %v rad, want ≈%v", sum, want)
			}
		})
	}
}

func TestPositionsCoversAllBodies(t *testing.T) {
	eng := NewEngine()

	got := eng.Positions(j2000)
	if len(got) != len(Bodies) {
		t.Fatalf("Positions returned %d entries, want %d", len(got), len(Bodies))
	}
	for _, b := range Bodies {
		if _, ok := got[b]; !ok {
			t.Errorf("missing body %s", b)
		}
	}
}

func TestOrbitalPeriodDays(t *testing.T) {
	eng := NewEngine()

	tests := []struct {
		body Body
		want float64 // days
		tol  float64
	}{
		{Mercury, 88, 1},
		{Earth, 365.25, 1},
		{Jupiter, 4333, 30},
		{Pluto, 90560, 600},
		{Moon, 0, 0}, // no heliocentric elements
	}

	for _, tt := range tests {
		t.Run(string(tt.body), func(t *testing.T) {
			got := eng.OrbitalPeriodDays(tt.body)
			if math.Abs(got-tt.want) > tt.tol {
				t.Errorf("period = %v days, want %v ± %v", got, tt.want, tt.tol)
			}
		})
	}
}
