package astro

import (
	"math"
	"testing"
)

func TestProjectTopDown(t *testing.T) {
	cfg := DefaultProjectionConfig()

	tests := []struct {
		name      string
		angleDeg  float64
		distAU    float64
		wantAngle float64 // expected display angle in degrees
	}{
		{"1 AU along +X", 0, 1, 0},
		{"1 AU along +Y", 90, 1, 90},
		{"1 AU along -X", 180, 1, 180},
		{"1 AU along -Y", -90, 1, -90},
		{"5 AU at 45 degrees", 45, 5, 45},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ProjectTopDown(DegToRad(tt.angleDeg), tt.distAU, cfg)

			// Projection scales radius but must preserve the angle
			gotAngle := math.Atan2(got.Y, got.X) * 180 / math.Pi
			angleDiff := math.Abs(gotAngle - tt.wantAngle)
			if angleDiff > 180 {
				angleDiff = 360 - angleDiff
			}
			if angleDiff > 0.1 {
				t.Errorf("angle = %.2f°, want %.2f°", gotAngle, tt.wantAngle)
			}

			if math.Abs(got.R-tt.distAU) > 1e-10 {
				t.Errorf("R = %v, want %v", got.R, tt.distAU)
			}
		})
	}
}

func TestScaleRadiusMonotonic(t *testing.T) {
	modes := []struct {
		name string
		mode ScaleMode
	}{
		{"log", ScaleLogR},
		{"inner", ScaleInner},
		{"outer", ScaleOuter},
	}

	for _, m := range modes {
		t.Run(m.name, func(t *testing.T) {
			cfg := ProjectionConfig{Scale: 1.0, Mode: m.mode}
			prev := ScaleDistance(0, cfg)
			for r := 0.1; r <= 40; r += 0.1 {
				cur := ScaleDistance(r, cfg)
				if cur < prev-1e-12 {
					t.Fatalf("mode %v not monotonic at r=%.1f: %v < %v", m.mode, r, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestScaleDistanceMatchesProjection(t *testing.T) {
	// Orbit rings are drawn with ScaleDistance; bodies with ProjectTopDown.
	// The two must agree so bodies sit exactly on their rings.
	cfg := DefaultProjectionConfig()
	for _, r := range []float64{0.39, 1.0, 5.2, 30.1, 39.5} {
		p := ProjectTopDown(0, r, cfg)
		ring := ScaleDistance(r, cfg)
		if math.Abs(p.X-ring) > 1e-12 {
			t.Errorf("r=%v: projected radius %v != ring radius %v", r, p.X, ring)
		}
	}
}
