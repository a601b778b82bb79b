// Package sim owns the simulated date driving the orrery animation.
package sim

import (
	"time"
)

// SpeedPreset is one user-selectable animation speed.
type SpeedPreset struct {
	Label  string
	Factor float64 // simulated seconds per real second
}

// SpeedPresets are the selectable speeds, slowest first.
var SpeedPresets = []SpeedPreset{
	{"1 s/s", 1},
	{"1 min/s", 60},
	{"1 hr/s", 3600},
	{"1 day/s", 86400},
	{"1 wk/s", 7 * 86400},
	{"30 day/s", 30 * 86400},
	{"1 yr/s", 365.25 * 86400},
}

// DefaultSpeedIndex selects 1 day per second.
const DefaultSpeedIndex = 3

// Clock holds the single mutable "current simulated date". The ephemeris
// engine is a pure function of a date argument; this is the one place the
// date is owned and advanced. Frame-driven and single-threaded: all
// methods are called from one animation loop.
type Clock struct {
	current  time.Time
	speedIdx int
	paused   bool
}

// NewClock creates a clock starting at the given date.
func NewClock(start time.Time) *Clock {
	return &Clock{
		current:  start,
		speedIdx: DefaultSpeedIndex,
	}
}

// Now returns the current simulated date.
func (c *Clock) Now() time.Time {
	return c.current
}

// Advance moves the simulated date forward by the real frame delta scaled
// by the selected speed factor. No-op while paused.
func (c *Clock) Advance(realDelta time.Duration) {
	if c.paused {
		return
	}
	simSec := realDelta.Seconds() * c.Speed().Factor
	c.current = c.current.Add(time.Duration(simSec * float64(time.Second)))
}

// Speed returns the active speed preset.
func (c *Clock) Speed() SpeedPreset {
	return SpeedPresets[c.speedIdx]
}

// SpeedUp selects the next faster preset, saturating at the fastest.
func (c *Clock) SpeedUp() {
	if c.speedIdx < len(SpeedPresets)-1 {
		c.speedIdx++
	}
}

// SpeedDown selects the next slower preset, saturating at the slowest.
func (c *Clock) SpeedDown() {
	if c.speedIdx > 0 {
		c.speedIdx--
	}
}

// TogglePause flips the paused state and reports the new value.
func (c *Clock) TogglePause() bool {
	c.paused = !c.paused
	return c.paused
}

// Paused reports whether the clock is paused.
func (c *Clock) Paused() bool {
	return c.paused
}

// StepDays jumps the simulated date by whole days, independent of speed or
// pause state. Used for manual scrubbing while paused.
func (c *Clock) StepDays(n int) {
	c.current = c.current.AddDate(0, 0, n)
}

// Set replaces the simulated date outright.
func (c *Clock) Set(t time.Time) {
	c.current = t
}
