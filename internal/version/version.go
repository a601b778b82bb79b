// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Camera fly-to transitions with live retargeting, locked-anchor tracking
// 0.2.0 - Keplerian ephemeris engine (secular rates, Pluto), time controls
// 0.1.0 - Initial release: animated top-down orrery view, headless summary mode
