package geodesic

import "math"

// Line is a geodesic fixed by a starting point and azimuth. The per-geodesic
// series setup (the Clairaut constant and the coefficient tables selected by
// the capability set) is done once at construction, so repeated position
// queries along the line are cheap closed-form evaluations.
//
// A Line is immutable and safe for concurrent use.
type Line struct {
	lat1, lon1, azi1 float64
	salp1, calp1     float64
	caps             Capabilities

	a, f, b, c2, f1 float64
	salp0, calp0    float64
	k2              float64
	ssig1, csig1    float64
	dn1             float64
	stau1, ctau1    float64
	somg1, comg1    float64

	aa1m1, aa2m1 float64
	aa3c, aa4    float64
	bb11, bb21   float64
	bb31, bb41   float64

	c1a  [nC1 + 1]float64
	c1pa [nC1p + 1]float64
	c2a  [nC2 + 1]float64
	c3a  [nC3]float64
	c4a  [nC4]float64

	// Reference point 3 fixed by SetDistance/SetArc (DirectLine and
	// InverseLine construction).
	s13, a13 float64
}

func lineInit(g *geodGeodesic, l *Line, lat1, lon1, azi1 float64,
	salp1, calp1 float64, caps Capabilities) {
	l.a = g.a
	l.f = g.f
	l.b = g.b
	l.c2 = g.c2
	l.f1 = g.f1
	if caps == 0 {
		// Default: position queries by distance, computing lat/lon/azi.
		caps = DistanceIn | Longitude
	}
	// Always allow latitude and azimuth, and unrolling of longitude.
	l.caps = caps | Latitude | Azimuth | Capabilities(LongUnroll)
	l.lat1 = latFix(lat1)
	l.lon1 = lon1
	if math.IsNaN(salp1) || math.IsNaN(calp1) {
		l.azi1 = angNormalize(azi1)
		l.salp1, l.calp1 = sincosd(angRound(l.azi1))
	} else {
		l.azi1 = azi1
		l.salp1 = salp1
		l.calp1 = calp1
	}

	sbet1, cbet1 := sincosd(angRound(l.lat1))
	sbet1 *= l.f1
	// Ensure cbet1 = +epsilon at poles.
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	l.dn1 = math.Sqrt(1 + g.ep2*sq(sbet1))

	// Evaluate alp0 from sin(alp1) * cos(bet1) = sin(alp0).
	l.salp0 = l.salp1 * cbet1 // alp0 in [0, pi/2 - |bet1|]
	// Alt: calp0 = hypot(sbet1, calp1 * cbet1). The following is slightly
	// better (consider the case salp1 = 0).
	l.calp0 = math.Hypot(l.calp1, l.salp1*sbet1)
	// Evaluate sig with tan(bet1) = tan(sig1) * cos(alp1).
	// sig = 0 is nearest northward crossing of equator.
	// With bet1 = 0, alp1 = pi/2, we have sig1 = 0 (equatorial line).
	// With bet1 =  pi/2, alp1 = -pi, sig1 =  pi/2
	// With bet1 = -pi/2, alp1 =  0 , sig1 = -pi/2
	// Evaluate omg1 with tan(omg1) = sin(alp0) * tan(sig1).
	// With alp0 in (0, pi/2], quadrants for sig and omg coincide.
	// No atan2(0,0) ambiguity at poles since cbet1 = +epsilon.
	// With alp0 = 0, omg1 = 0 for alp1 = 0, omg1 = pi for alp1 = pi.
	l.ssig1 = sbet1
	l.somg1 = l.salp0 * sbet1
	if sbet1 != 0 || l.calp1 != 0 {
		l.csig1 = cbet1 * l.calp1
	} else {
		l.csig1 = 1
	}
	l.comg1 = l.csig1
	l.ssig1, l.csig1 = norm2(l.ssig1, l.csig1) // sig1 in (-pi, pi]
	// norm2(somg1, comg1) isn't needed.

	l.k2 = sq(l.calp0) * g.ep2
	eps := l.k2 / (2*(1+math.Sqrt(1+l.k2)) + l.k2)

	if l.caps&capC1 != 0 {
		l.aa1m1 = a1m1f(eps)
		c1f(eps, l.c1a[:])
		l.bb11 = sinCosSeries(true, l.ssig1, l.csig1, l.c1a[:])
		s := math.Sin(l.bb11)
		c := math.Cos(l.bb11)
		// tau1 = sig1 + B11
		l.stau1 = l.ssig1*c + l.csig1*s
		l.ctau1 = l.csig1*c - l.ssig1*s
		// Not necessary because c1pa reverts c1a:
		//   bb11 = -sinCosSeries(true, stau1, ctau1, c1pa)
	}
	if l.caps&capC1p != 0 {
		c1pf(eps, l.c1pa[:])
	}
	if l.caps&capC2 != 0 {
		l.aa2m1 = a2m1f(eps)
		c2f(eps, l.c2a[:])
		l.bb21 = sinCosSeries(true, l.ssig1, l.csig1, l.c2a[:])
	}
	if l.caps&capC3 != 0 {
		g.c3f(eps, l.c3a[:])
		l.aa3c = -l.f * l.salp0 * g.a3f(eps)
		l.bb31 = sinCosSeries(true, l.ssig1, l.csig1, l.c3a[:])
	}
	if l.caps&capC4 != 0 {
		g.c4f(eps, l.c4a[:])
		// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0)
		l.aa4 = sq(l.a) * l.calp0 * l.salp0 * g.e2
		l.bb41 = sinCosSeries(false, l.ssig1, l.csig1, l.c4a[:])
	}
	l.s13 = math.NaN()
	l.a13 = math.NaN()
}

// genPosition computes the position at the signed arc (ArcMode) or distance
// from the start. Outputs not selected by outmask, or not covered by the
// line's capability set, are NaN.
func (l *Line) genPosition(flags Flags, s12a12 float64,
	outmask Capabilities) (a12, lat2, lon2, azi2, s12, m12, gM12, gM21, gS12 float64) {
	a12 = math.NaN()
	lat2 = math.NaN()
	lon2 = math.NaN()
	azi2 = math.NaN()
	s12 = math.NaN()
	m12 = math.NaN()
	gM12 = math.NaN()
	gM21 = math.NaN()
	gS12 = math.NaN()
	arcmode := flags&ArcMode != 0
	unroll := flags&LongUnroll != 0
	outmask &= l.caps & outMask
	if !(arcmode || l.caps&(outMask&DistanceIn) != 0) {
		// Impossible distance-based query on a line built without
		// DistanceIn.
		return
	}

	var sig12, ssig12, csig12 float64
	b12 := 0.0
	ab1 := 0.0
	if arcmode {
		// Interpret s12a12 as a (possibly unrolled) arc length.
		sig12 = s12a12 * radians
		ssig12, csig12 = sincosd(s12a12)
	} else {
		// Interpret s12a12 as a distance.
		tau12 := s12a12 / (l.b * (1 + l.aa1m1))
		s := math.Sin(tau12)
		c := math.Cos(tau12)
		// tau2 = tau1 + tau12
		b12 = -sinCosSeries(true,
			l.stau1*c+l.ctau1*s,
			l.ctau1*c-l.stau1*s, l.c1pa[:])
		sig12 = tau12 - (b12 - l.bb11)
		ssig12 = math.Sin(sig12)
		csig12 = math.Cos(sig12)
		if math.Abs(l.f) > 0.01 {
			// The reverted series is accurate for |f| < 1/50, good enough
			// for |f| < 1/100. For more eccentric ellipsoids correct sig12
			// with one Newton step on
			//   f(sig12) = (A1 * (sig12 + B1(sig12)) - s12/b)
			// which fixes the error from O(f^8) to O(f^12).
			ssig2 := l.ssig1*csig12 + l.csig1*ssig12
			csig2 := l.csig1*csig12 - l.ssig1*ssig12
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
			serr := (1+l.aa1m1)*(sig12+(b12-l.bb11)) - s12a12/l.b
			sig12 -= serr / math.Sqrt(1+l.k2*sq(ssig2))
			ssig12 = math.Sin(sig12)
			csig12 = math.Cos(sig12)
			// b12 is updated below.
		}
	}

	// sig2 = sig1 + sig12
	ssig2 := l.ssig1*csig12 + l.csig1*ssig12
	csig2 := l.csig1*csig12 - l.ssig1*ssig12
	dn2 := math.Sqrt(1 + l.k2*sq(ssig2))
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		if arcmode || math.Abs(l.f) > 0.01 {
			b12 = sinCosSeries(true, ssig2, csig2, l.c1a[:])
		}
		ab1 = (1 + l.aa1m1) * (b12 - l.bb11)
	}
	// sin(bet2) = cos(alp0) * sin(sig2)
	sbet2 := l.calp0 * ssig2
	// Alt: cbet2 = hypot(csig2, salp0 * ssig2)
	cbet2 := math.Hypot(l.salp0, l.calp0*csig2)
	if cbet2 == 0 {
		// I.e. salp0 = 0, csig2 = 0. Break the degeneracy in this case.
		cbet2 = tiny
		csig2 = tiny
	}
	// tan(alp0) = cos(sig2) * tan(alp2)
	salp2 := l.salp0
	calp2 := l.calp0 * csig2 // No need to normalize

	if outmask&Distance != 0 {
		if arcmode {
			s12 = l.b * ((1+l.aa1m1)*sig12 + ab1)
		} else {
			s12 = s12a12
		}
	}
	if outmask&Longitude != 0 {
		// tan(omg2) = sin(alp0) * tan(sig2)
		somg2 := l.salp0 * ssig2
		comg2 := csig2 // No need to normalize
		e := math.Copysign(1, l.salp0)
		// omg12 = omg2 - omg1
		var omg12 float64
		if unroll {
			omg12 = e * (sig12 -
				(math.Atan2(ssig2, csig2) - math.Atan2(l.ssig1, l.csig1)) +
				(math.Atan2(e*somg2, comg2) - math.Atan2(e*l.somg1, l.comg1)))
		} else {
			omg12 = math.Atan2(somg2*l.comg1-comg2*l.somg1,
				comg2*l.comg1+somg2*l.somg1)
		}
		lam12 := omg12 + l.aa3c*(sig12+
			(sinCosSeries(true, ssig2, csig2, l.c3a[:])-l.bb31))
		lon12 := lam12 * degrees
		if unroll {
			lon2 = l.lon1 + lon12
		} else {
			lon2 = angNormalize(angNormalize(l.lon1) + angNormalize(lon12))
		}
	}
	if outmask&Latitude != 0 {
		lat2 = atan2d(sbet2, l.f1*cbet2)
	}
	if outmask&Azimuth != 0 {
		azi2 = atan2d(salp2, calp2)
	}
	if outmask&(ReducedLength|GeodesicScale) != 0 {
		b22 := sinCosSeries(true, ssig2, csig2, l.c2a[:])
		ab2 := (1 + l.aa2m1) * (b22 - l.bb21)
		j12 := (l.aa1m1-l.aa2m1)*sig12 + (ab1 - ab2)
		if outmask&ReducedLength != 0 {
			// The parens around (csig1 * ssig2) and (ssig1 * csig2) ensure
			// accurate cancellation for coincident points.
			m12 = l.b * ((dn2*(l.csig1*ssig2) - l.dn1*(l.ssig1*csig2)) -
				l.csig1*csig2*j12)
		}
		if outmask&GeodesicScale != 0 {
			t := l.k2 * (ssig2 - l.ssig1) * (ssig2 + l.ssig1) / (l.dn1 + dn2)
			gM12 = csig12 + (t*ssig2-csig2*j12)*l.ssig1/l.dn1
			gM21 = csig12 - (t*l.ssig1-l.csig1*j12)*ssig2/dn2
		}
	}
	if outmask&Area != 0 {
		b42 := sinCosSeries(false, ssig2, csig2, l.c4a[:])
		var salp12, calp12 float64
		if l.calp0 == 0 || l.salp0 == 0 {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize.
			salp12 = salp2*l.calp1 - calp2*l.salp1
			calp12 = calp2*l.calp1 + salp2*l.salp1
		} else {
			// tan(alp) = tan(alp0) * sec(sig)
			// tan(alp2-alp1) = (tan(alp2) - tan(alp1)) / (tan(alp2)*tan(alp1)+1)
			// = calp0 * salp0 * (csig1-csig2) / (salp0^2 + calp0^2 * csig1*csig2)
			// If csig12 > 0, write
			//   csig1 - csig2 = ssig12 * (csig1 * ssig12 / (1 + csig12) + ssig1)
			// else
			//   csig1 - csig2 = csig1 * (1 - csig12) + ssig12 * ssig1
			// No need to normalize.
			var t float64
			if csig12 <= 0 {
				t = l.csig1*(1-csig12) + ssig12*l.ssig1
			} else {
				t = ssig12 * (l.csig1*ssig12/(1+csig12) + l.ssig1)
			}
			salp12 = l.calp0 * l.salp0 * t
			calp12 = sq(l.salp0) + sq(l.calp0)*l.csig1*csig2
		}
		gS12 = l.c2*math.Atan2(salp12, calp12) + l.aa4*(b42-l.bb41)
	}
	if arcmode {
		a12 = s12a12
	} else {
		a12 = sig12 * degrees
	}
	return
}

// Latitude returns the latitude of the line's starting point (degrees).
func (l *Line) Latitude() float64 { return l.lat1 }

// Longitude returns the longitude of the line's starting point (degrees).
func (l *Line) Longitude() float64 { return l.lon1 }

// Azimuth returns the azimuth of the line at its starting point (degrees).
func (l *Line) Azimuth() float64 { return l.azi1 }

// Capabilities returns the computational capabilities the line was built
// with. Latitude, Azimuth, and longitude unrolling are always included.
func (l *Line) Capabilities() Capabilities { return l.caps }

// Has reports whether the line's capabilities include all of want.
func (l *Line) Has(want Capabilities) bool { return l.caps.Has(want) }

// Distance returns the distance to the reference point fixed by DirectLine,
// InverseLine, or SetDistance, or NaN if no reference point is set.
func (l *Line) Distance() float64 { return l.s13 }

// Arc returns the arc length to the reference point (degrees), or NaN if no
// reference point is set.
func (l *Line) Arc() float64 { return l.a13 }

// SetDistance fixes the line's reference point 3 at distance s13 meters from
// point 1. This is the one mutating operation on a Line and is intended for
// use before the line is shared.
func (l *Line) SetDistance(s13 float64) {
	l.s13 = s13
	l.a13, _, _, _, _, _, _, _, _ = l.genPosition(NoFlags, s13, 0)
}

// SetArc fixes the line's reference point 3 at arc length a13 degrees from
// point 1.
func (l *Line) SetArc(a13 float64) {
	l.a13 = a13
	_, _, _, _, l.s13, _, _, _, _ = l.genPosition(ArcMode, a13, Distance)
}

// GenSetDistance fixes the reference point 3 in terms of either a distance
// (meters) or an arc length (degrees) depending on the ArcMode flag.
func (l *Line) GenSetDistance(flags Flags, s13a13 float64) {
	if flags&ArcMode != 0 {
		l.SetArc(s13a13)
	} else {
		l.SetDistance(s13a13)
	}
}

// Position computes the point at the given signed distance s12 (meters) from
// the line's starting point.
//
// Out param lat2 is a pointer to the latitude of the point (degrees).
// Out param lon2 is a pointer to the longitude of the point (degrees).
// Out param azi2 is a pointer to the (forward) azimuth there (degrees).
// Returns the arc length from point 1 to the point (degrees).
//
// The line must have been built with the DistanceIn capability. Any of the
// "return" arguments may be replaced with nil if the quantity is not needed.
func (l *Line) Position(s12 float64, lat2, lon2, azi2 *float64) float64 {
	return l.GenPosition(NoFlags, s12, lat2, lon2, azi2, nil, nil, nil, nil, nil)
}

// GenPosition computes the position at the given signed distance (meters)
// or, with the ArcMode flag, arc length (degrees) from the line's starting
// point.
//
// Out param lat2 is a pointer to the latitude of the point (degrees).
// Out param lon2 is a pointer to the longitude of the point (degrees).
// Out param azi2 is a pointer to the (forward) azimuth there (degrees).
// Out param s12 is a pointer to the distance traveled (meters).
// Out param m12 is a pointer to the reduced length of the geodesic (meters).
// Out param M12, M21 are pointers to the geodesic scales (dimensionless).
// Out param S12 is a pointer to the area under the geodesic (meters²).
// Returns the arc length from point 1 to the point (degrees).
//
// Any of the "return" arguments may be replaced with nil. A quantity whose
// capability was not requested when the line was constructed is reported as
// NaN, never a wrong value. With the LongUnroll flag, lon2 is not normalized
// to [-180,180] but increases or decreases monotonically along the line.
func (l *Line) GenPosition(flags Flags, s12a12 float64,
	lat2, lon2, azi2, s12, m12, gM12, gM21, gS12 *float64) float64 {
	var outmask Capabilities
	if lat2 != nil {
		outmask |= Latitude
	}
	if lon2 != nil {
		outmask |= Longitude
	}
	if azi2 != nil {
		outmask |= Azimuth
	}
	if s12 != nil {
		outmask |= Distance
	}
	if m12 != nil {
		outmask |= ReducedLength
	}
	if gM12 != nil || gM21 != nil {
		outmask |= GeodesicScale
	}
	if gS12 != nil {
		outmask |= Area
	}
	if flags&LongUnroll != 0 {
		outmask |= Capabilities(LongUnroll)
	}
	a12, plat2, plon2, pazi2, ps12, pm12, pM12, pM21, pS12 :=
		l.genPosition(flags, s12a12, outmask)
	assign(lat2, plat2)
	assign(lon2, plon2)
	assign(azi2, pazi2)
	assign(s12, ps12)
	assign(m12, pm12)
	assign(gM12, pM12)
	assign(gM21, pM21)
	assign(gS12, pS12)
	return a12
}

func assign(p *float64, v float64) {
	if p != nil {
		*p = v
	}
}
