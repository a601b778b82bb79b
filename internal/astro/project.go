package astro

import (
	"math"
)

// ProjectedPoint represents a 2D projected position with metadata.
type ProjectedPoint struct {
	X float64 // Display X coordinate (scaled display units)
	Y float64 // Display Y coordinate (scaled display units)
	R float64 // Original radial distance in AU
}

// ScaleMode defines how radial distances are mapped to display space.
type ScaleMode int

const (
	// ScaleLogR uses logarithmic scaling: r_display = log10(r_AU + 1)
	ScaleLogR ScaleMode = iota

	// ScaleInner uses linear scaling optimized for 0-5 AU
	ScaleInner

	// ScaleOuter uses compressed scaling for the outer solar system (>5 AU)
	ScaleOuter
)

// ProjectionConfig configures the top-down ecliptic projection.
type ProjectionConfig struct {
	Scale float64   // Base scale factor
	Mode  ScaleMode // Scaling mode
}

// DefaultProjectionConfig returns a reasonable default configuration.
func DefaultProjectionConfig() ProjectionConfig {
	return ProjectionConfig{
		Scale: 1.0,
		Mode:  ScaleLogR,
	}
}

// ProjectTopDown projects a heliocentric ecliptic position given as a polar
// pair (angle in radians, distance in AU) to 2D display coordinates.
// X points right (toward the vernal equinox) and Y points up.
func ProjectTopDown(angleRad, distAU float64, cfg ProjectionConfig) ProjectedPoint {
	rDisplay := scaleRadius(distAU, cfg)

	return ProjectedPoint{
		X: rDisplay * math.Cos(angleRad) * cfg.Scale,
		Y: rDisplay * math.Sin(angleRad) * cfg.Scale,
		R: distAU,
	}
}

// ScaleDistance maps a radial distance in AU to display units under the
// configured scale mode, for drawing orbit rings at the same radius the
// body projection uses.
func ScaleDistance(distAU float64, cfg ProjectionConfig) float64 {
	return scaleRadius(distAU, cfg) * cfg.Scale
}

// scaleRadius applies the configured scaling mode to a radial distance.
func scaleRadius(rAU float64, cfg ProjectionConfig) float64 {
	switch cfg.Mode {
	case ScaleLogR:
		// Logarithmic scaling: good for showing both inner and outer system
		// log10(r + 1) gives 0 at origin, ~0.78 at 5 AU, ~1.32 at 20 AU
		return math.Log10(rAU + 1)

	case ScaleInner:
		// Linear scaling for the inner solar system; clamp outer planets
		if rAU > 5 {
			return 5
		}
		return rAU

	case ScaleOuter:
		// Piece-wise: linear to 5 AU, then logarithmic beyond
		if rAU <= 5 {
			return rAU / 5 * 0.5
		}
		return 0.5 + math.Log10(rAU/5+1)*0.5

	default:
		return math.Log10(rAU + 1)
	}
}
