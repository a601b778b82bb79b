// Package ephemeris computes heliocentric positions of solar-system bodies
// from Keplerian orbital elements for an arbitrary date.
package ephemeris

// Body identifies a modeled celestial body.
type Body string

const (
	Mercury Body = "mercury"
	Venus   Body = "venus"
	Earth   Body = "earth"
	Mars    Body = "mars"
	Jupiter Body = "jupiter"
	Saturn  Body = "saturn"
	Uranus  Body = "uranus"
	Neptune Body = "neptune"
	Moon    Body = "moon"
	Pluto   Body = "pluto"
)

// BodyClass categorizes bodies for rendering.
type BodyClass int

const (
	ClassInner     BodyClass = iota // Mercury, Venus, Earth, Mars
	ClassGiant                      // Jupiter, Saturn, Uranus, Neptune
	ClassDwarf                      // Pluto
	ClassSatellite                  // Moon (decorative, positioned by the driver)
)

// BodyInfo carries display metadata for a body.
type BodyInfo struct {
	Name  string
	Class BodyClass
}

// Bodies lists all modeled bodies: the eight classical planets in IAU
// order, then the Moon and Pluto.
var Bodies = []Body{
	Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Moon, Pluto,
}

// Info maps each body to its display metadata.
var Info = map[Body]BodyInfo{
	Mercury: {Name: "Mercury", Class: ClassInner},
	Venus:   {Name: "Venus", Class: ClassInner},
	Earth:   {Name: "Earth", Class: ClassInner},
	Mars:    {Name: "Mars", Class: ClassInner},
	Jupiter: {Name: "Jupiter", Class: ClassGiant},
	Saturn:  {Name: "Saturn", Class: ClassGiant},
	Uranus:  {Name: "Uranus", Class: ClassGiant},
	Neptune: {Name: "Neptune", Class: ClassGiant},
	Moon:    {Name: "Moon", Class: ClassSatellite},
	Pluto:   {Name: "Pluto", Class: ClassDwarf},
}

// Name returns the display name for a body, or the raw identifier when
// the body is unknown.
func (b Body) Name() string {
	if info, ok := Info[b]; ok {
		return info.Name
	}
	return string(b)
}
