package ephemeris

// Elements holds Keplerian orbital elements at the J2000.0 epoch together
// with their secular rates. Angles are in degrees, distances in AU, rates
// per Julian century.
type Elements struct {
	A, ARate       float64 // semi-major axis (AU)
	E, ERate       float64 // eccentricity
	I, IRate       float64 // inclination (deg)
	L, LRate       float64 // mean longitude (deg)
	Peri, PeriRate float64 // longitude of perihelion ϖ (deg)
	Node, NodeRate float64 // longitude of ascending node Ω (deg)
}

// At returns the elements linearly extrapolated to T Julian centuries
// after J2000.0. Rates are preserved unchanged.
func (el Elements) At(T float64) Elements {
	el.A += el.ARate * T
	el.E += el.ERate * T
	el.I += el.IRate * T
	el.L += el.LRate * T
	el.Peri += el.PeriRate * T
	el.Node += el.NodeRate * T
	return el
}

// elements tabulates J2000 orbital elements and secular rates for the
// classical planets (JPL approximate-positions table, valid 1800-2050)
// plus fixed, non-rated elements for Pluto. The Moon carries no
// heliocentric elements; the driver positions it relative to Earth.
var elements = map[Body]Elements{
	Mercury: {
		A: 0.38709927, ARate: 0.00000037,
		E: 0.20563593, ERate: 0.00001906,
		I: 7.00497902, IRate: -0.00594749,
		L: 252.25032350, LRate: 149472.67411175,
		Peri: 77.45779628, PeriRate: 0.16047689,
		Node: 48.33076593, NodeRate: -0.12534081,
	},
	Venus: {
		A: 0.72333566, ARate: 0.00000390,
		E: 0.00677672, ERate: -0.00004107,
		I: 3.39467605, IRate: -0.00078890,
		L: 181.97909950, LRate: 58517.81538729,
		Peri: 131.60246718, PeriRate: 0.00268329,
		Node: 76.67984255, NodeRate: -0.27769418,
	},
	Earth: {
		// Earth-Moon barycenter
		A: 1.00000261, ARate: 0.00000562,
		E: 0.01671123, ERate: -0.00004392,
		I: -0.00001531, IRate: -0.01294668,
		L: 100.46457166, LRate: 35999.37244981,
		Peri: 102.93768193, PeriRate: 0.32327364,
		Node: 0.0, NodeRate: 0.0,
	},
	Mars: {
		A: 1.52371034, ARate: 0.00001847,
		E: 0.09339410, ERate: 0.00007882,
		I: 1.84969142, IRate: -0.00813131,
		L: -4.55343205, LRate: 19140.30268499,
		Peri: -23.94362959, PeriRate: 0.44441088,
		Node: 49.55953891, NodeRate: -0.29257343,
	},
	Jupiter: {
		A: 5.20288700, ARate: -0.00011607,
		E: 0.04838624, ERate: -0.00013253,
		I: 1.30439695, IRate: -0.00183714,
		L: 34.39644051, LRate: 3034.74612775,
		Peri: 14.72847983, PeriRate: 0.21252668,
		Node: 100.47390909, NodeRate: 0.20469106,
	},
	Saturn: {
		A: 9.53667594, ARate: -0.00125060,
		E: 0.05386179, ERate: -0.00050991,
		I: 2.48599187, IRate: 0.00193609,
		L: 49.95424423, LRate: 1222.49362201,
		Peri: 92.59887831, PeriRate: -0.41897216,
		Node: 113.66242448, NodeRate: -0.28867794,
	},
	Uranus: {
		A: 19.18916464, ARate: -0.00196176,
		E: 0.04725744, ERate: -0.00004397,
		I: 0.77263783, IRate: -0.00242939,
		L: 313.23810451, LRate: 428.48202785,
		Peri: 170.95427630, PeriRate: 0.40805281,
		Node: 74.01692503, NodeRate: 0.04240589,
	},
	Neptune: {
		A: 30.06992276, ARate: 0.00026291,
		E: 0.00859048, ERate: 0.00005105,
		I: 1.77004347, IRate: 0.00035372,
		L: -55.12002969, LRate: 218.45945325,
		Peri: 44.96476227, PeriRate: -0.32241464,
		Node: 131.78422574, NodeRate: -0.00508664,
	},
	Pluto: {
		// Fixed J2000 elements, no secular rates
		A: 39.48211675,
		E: 0.24882730,
		I: 17.14001206,
		L: 238.92903833,
		Peri: 224.06891629,
		Node: 110.30393684,
	},
}
