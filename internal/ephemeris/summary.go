package ephemeris

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"
	"time"
)

// WriteSummaryTable writes a plain-text table of every body's heliocentric
// position at the given date. Used by the headless CLI mode.
func WriteSummaryTable(w io.Writer, eng *Engine, date time.Time) {
	fmt.Fprintf(w, "Heliocentric positions at %s\n\n", date.UTC().Format(time.RFC3339))

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "BODY\tLONGITUDE\tDISTANCE\tPERIOD")

	for _, b := range Bodies {
		if !eng.HasElements(b) {
			fmt.Fprintf(tw, "%s\t-\t-\t-\n", b.Name())
			continue
		}
		r := eng.PositionOf(b, date)
		fmt.Fprintf(tw, "%s\t%.2f°\t%.3f AU\t%.0f d\n",
			b.Name(),
			normalizeLonDeg(r.Angle),
			r.Distance,
			eng.OrbitalPeriodDays(b))
	}

	tw.Flush()
}

// normalizeLonDeg converts an angle in radians to degrees in [0, 360).
func normalizeLonDeg(rad float64) float64 {
	deg := math.Mod(rad*180/math.Pi, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
