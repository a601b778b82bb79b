package astro

import (
	"time"
)

// unixEpochJD is the Julian Day of the Unix epoch (1970-01-01T00:00:00Z).
const unixEpochJD = 2440587.5

// j2000JD is the Julian Day of the J2000.0 epoch (2000-01-01T12:00:00 TT).
const j2000JD = 2451545.0

// daysPerCentury is the length of a Julian century in days.
const daysPerCentury = 36525.0

// JulianDay converts a timestamp to a Julian Day number.
// Leap years and calendar details are resolved by time.Time itself; the
// conversion is a fixed offset from the Unix epoch.
func JulianDay(t time.Time) float64 {
	sec := float64(t.Unix()) + float64(t.Nanosecond())/1e9
	return unixEpochJD + sec/86400.0
}

// CenturiesSinceJ2000 returns the number of Julian centuries between the
// J2000.0 epoch and t. Negative for dates before 2000-01-01 12:00.
func CenturiesSinceJ2000(t time.Time) float64 {
	return (JulianDay(t) - j2000JD) / daysPerCentury
}
