package geodesic

import "math"

// lengths returns (in units of b) the distance s12b and reduced length m12b
// of the geodesic segment from sig1 to sig2, the coefficient m0 of the
// secular term in the reduced length, and the geodesic scales M12 and M21.
// Which of these is computed is controlled by outmask.
func (g *geodGeodesic) lengths(
	eps, sig12,
	ssig1, csig1, dn1,
	ssig2, csig2, dn2,
	cbet1, cbet2 float64,
	outmask Capabilities, c1a, c2a []float64,
) (s12b, m12b, m0, gM12, gM21 float64) {
	outmask &= outMask
	s12b = math.NaN()
	m12b = math.NaN()
	m0 = math.NaN()
	gM12 = math.NaN()
	gM21 = math.NaN()

	var gA1, gA2, m0x, j12 float64
	if outmask&(Distance|ReducedLength|GeodesicScale) != 0 {
		gA1 = a1m1f(eps)
		c1f(eps, c1a)
		if outmask&(ReducedLength|GeodesicScale) != 0 {
			gA2 = a2m1f(eps)
			c2f(eps, c2a)
			m0x = gA1 - gA2
			gA2 = 1 + gA2
		}
		gA1 = 1 + gA1
	}
	if outmask&Distance != 0 {
		gB1 := sinCosSeries(true, ssig2, csig2, c1a) -
			sinCosSeries(true, ssig1, csig1, c1a)
		// Missing a factor of b.
		s12b = gA1 * (sig12 + gB1)
		if outmask&(ReducedLength|GeodesicScale) != 0 {
			gB2 := sinCosSeries(true, ssig2, csig2, c2a) -
				sinCosSeries(true, ssig1, csig1, c2a)
			j12 = m0x*sig12 + (gA1*gB1 - gA2*gB2)
		}
	} else if outmask&(ReducedLength|GeodesicScale) != 0 {
		// This requires nC1 >= nC2.
		for l := 1; l <= nC2; l++ {
			c2a[l] = gA1*c1a[l] - gA2*c2a[l]
		}
		j12 = m0x*sig12 + (sinCosSeries(true, ssig2, csig2, c2a) -
			sinCosSeries(true, ssig1, csig1, c2a))
	}
	if outmask&ReducedLength != 0 {
		m0 = m0x
		// Missing a factor of b. The parens around (csig1 * ssig2) and
		// (ssig1 * csig2) ensure accurate cancellation for coincident
		// points.
		m12b = dn2*(csig1*ssig2) - dn1*(ssig1*csig2) - csig1*csig2*j12
	}
	if outmask&GeodesicScale != 0 {
		csig12 := csig1*csig2 + ssig1*ssig2
		t := g.ep2 * (cbet1 - cbet2) * (cbet1 + cbet2) / (dn1 + dn2)
		gM12 = csig12 + (t*ssig2-csig2*j12)*ssig1/dn1
		gM21 = csig12 - (t*ssig1-csig1*j12)*ssig2/dn2
	}
	return s12b, m12b, m0, gM12, gM21
}

// inverseStart finds a starting value for Newton's method in salp1 and calp1
// (with sig12 returned as -1). If Newton's method isn't needed (short lines),
// salp2, calp2, and dnm are also set and sig12 is the solved arc.
func (g *geodGeodesic) inverseStart(
	sbet1, cbet1, dn1,
	sbet2, cbet2, dn2,
	lam12, slam12, clam12 float64,
	c1a, c2a []float64,
) (sig12, salp1, calp1, salp2, calp2, dnm float64) {
	sig12 = -1
	salp2 = math.NaN()
	calp2 = math.NaN()
	dnm = math.NaN()
	// bet12 = bet2 - bet1 in [0, pi); bet12a = bet2 + bet1 in (-pi, 0].
	sbet12 := sbet2*cbet1 - cbet2*sbet1
	cbet12 := cbet2*cbet1 + sbet2*sbet1
	sbet12a := sbet2*cbet1 + cbet2*sbet1

	var somg12, comg12 float64
	shortline := cbet12 >= 0 && sbet12 < 0.5 && cbet2*lam12 < 0.5
	if shortline {
		sbetm2 := sq(sbet1 + sbet2)
		// sin((bet1+bet2)/2)^2
		//  = (sbet1 + sbet2)^2 / ((sbet1 + sbet2)^2 + (cbet1 + cbet2)^2)
		sbetm2 /= sbetm2 + sq(cbet1+cbet2)
		dnm = math.Sqrt(1 + g.ep2*sbetm2)
		omg12 := lam12 / (g.f1 * dnm)
		somg12 = math.Sin(omg12)
		comg12 = math.Cos(omg12)
	} else {
		somg12 = slam12
		comg12 = clam12
	}

	salp1 = cbet2 * somg12
	if comg12 >= 0 {
		calp1 = sbet12 + cbet2*sbet1*sq(somg12)/(1+comg12)
	} else {
		calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
	}
	ssig12 := math.Hypot(salp1, calp1)
	csig12 := sbet1*sbet2 + cbet1*cbet2*comg12

	if shortline && ssig12 < g.etol2 {
		// Really short lines.
		salp2 = cbet1 * somg12
		var mult float64
		if comg12 >= 0 {
			mult = sq(somg12) / (1 + comg12)
		} else {
			mult = 1 - comg12
		}
		calp2 = sbet12 - cbet1*sbet2*mult
		salp2, calp2 = norm2(salp2, calp2)
		// Set the return value.
		sig12 = math.Atan2(ssig12, csig12)
	} else if math.Abs(g.n) > 0.1 || // Skip astroid calc if too eccentric
		csig12 >= 0 ||
		ssig12 >= 6*math.Abs(g.n)*math.Pi*sq(cbet1) {
		// Nothing to do, zeroth order spherical approximation is OK.
	} else {
		// Scale lam12 and bet2 to x, y coordinate system where antipodal
		// point is at origin and singular point is at y = 0, x = -1.
		var x, y, lamscale, betscale float64
		lam12x := math.Atan2(-slam12, -clam12)
		if g.f >= 0 { // In fact f == 0 does not get here
			// x = dlong, y = dlat
			k2 := sq(sbet1) * g.ep2
			eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
			lamscale = g.f * cbet1 * g.a3f(eps) * math.Pi
			betscale = lamscale * cbet1
			x = lam12x / lamscale
			y = sbet12a / betscale
		} else {
			// f < 0: x = dlat, y = dlong
			cbet12a := cbet2*cbet1 - sbet2*sbet1
			bet12a := math.Atan2(sbet12a, cbet12a)
			// In the case of lon12 = 180, this repeats a calculation made
			// in Inverse.
			_, m12b, m0, _, _ := g.lengths(
				g.n, math.Pi+bet12a, sbet1, -cbet1, dn1, sbet2, cbet2, dn2,
				cbet1, cbet2, ReducedLength, c1a, c2a)
			x = -1 + m12b/(cbet1*cbet2*m0*math.Pi)
			if x < -0.01 {
				betscale = sbet12a / x
			} else {
				betscale = -g.f * sq(cbet1) * math.Pi
			}
			lamscale = betscale / cbet1
			y = lam12x / lamscale
		}
		if y > -tol1 && x > -1-xthresh {
			// Strip near cut.
			if g.f >= 0 {
				salp1 = math.Min(1, -x)
				calp1 = -math.Sqrt(1 - sq(salp1))
			} else {
				if x > -tol1 {
					calp1 = math.Max(0, x)
				} else {
					calp1 = math.Max(-1, x)
				}
				salp1 = math.Sqrt(1 - sq(calp1))
			}
		} else {
			// Estimate alp1 by solving the astroid problem. The estimate
			// goes via omg12 and the spherical formula rather than reading
			// alp1 off the astroid directly; this reduces the mean number
			// of Newton iterations for astroid cases from 2.24 to 2.12.
			k := astroid(x, y)
			var omg12a float64
			if g.f >= 0 {
				omg12a = lamscale * (-x * k / (1 + k))
			} else {
				omg12a = lamscale * (-y * (1 + k) / k)
			}
			somg12 = math.Sin(omg12a)
			comg12 = -math.Cos(omg12a)
			// Update spherical estimate of alp1 using omg12 instead of
			// lam12.
			salp1 = cbet2 * somg12
			calp1 = sbet12a - cbet2*sbet1*sq(somg12)/(1-comg12)
		}
	}
	// Sanity check on the starting guess. The backwards check allows NaN
	// through.
	if !(salp1 <= 0) {
		salp1, calp1 = norm2(salp1, calp1)
	} else {
		salp1 = 1
		calp1 = 0
	}
	return sig12, salp1, calp1, salp2, calp2, dnm
}

// lambda12 solves the "hybrid" problem: given alp1, compute lam12 and the
// intermediate spherical quantities. If diffp is set, dlam12, the derivative
// of lam12 with respect to alp1, is also computed (for Newton's method).
func (g *geodGeodesic) lambda12(
	sbet1, cbet1, dn1,
	sbet2, cbet2, dn2,
	salp1, calp1,
	slam120, clam120 float64,
	diffp bool,
	c1a, c2a, c3a []float64,
) (lam12, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2, eps, domg12, dlam12 float64) {
	if sbet1 == 0 && calp1 == 0 {
		// Break degeneracy of the equatorial line. This case has already
		// been handled.
		calp1 = -tiny
	}
	// sin(alp1) * cos(bet1) = sin(alp0)
	salp0 := salp1 * cbet1
	calp0 := math.Hypot(calp1, salp1*sbet1) // calp0 > 0

	// tan(bet1) = tan(sig1) * cos(alp1)
	// tan(omg1) = sin(alp0) * tan(sig1)
	ssig1 = sbet1
	somg1 := salp0 * sbet1
	csig1 = calp1 * cbet1
	comg1 := csig1
	ssig1, csig1 = norm2(ssig1, csig1)
	// norm2(somg1, comg1) isn't needed.

	// Enforce symmetries in the case abs(bet2) = -bet1; this can yield
	// singularities in the Newton iteration otherwise.
	// sin(alp2) * cos(bet2) = sin(alp0)
	salp2 = salp1
	if cbet2 != cbet1 {
		salp2 = salp0 / cbet2
	}
	// calp2 = sqrt(1 - sq(salp2))
	//       = sqrt(sq(calp0) - sq(sbet2)) / cbet2
	// The positive sqrt gives alp2 in [0, pi/2].
	if cbet2 != cbet1 || math.Abs(sbet2) != -sbet1 {
		if cbet1 < -sbet1 {
			calp2 = math.Sqrt(sq(calp1*cbet1)+(cbet2-cbet1)*(cbet1+cbet2)) / cbet2
		} else {
			calp2 = math.Sqrt(sq(calp1*cbet1)+(sbet1-sbet2)*(sbet1+sbet2)) / cbet2
		}
	} else {
		calp2 = math.Abs(calp1)
	}
	// tan(bet2) = tan(sig2) * cos(alp2)
	// tan(omg2) = sin(alp0) * tan(sig2)
	ssig2 = sbet2
	somg2 := salp0 * sbet2
	csig2 = calp2 * cbet2
	comg2 := csig2
	ssig2, csig2 = norm2(ssig2, csig2)

	// sig12 = sig2 - sig1, limited to [0, pi].
	sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2),
		csig1*csig2+ssig1*ssig2)
	// omg12 = omg2 - omg1, limited to [0, pi].
	somg12 := math.Max(0, comg1*somg2-somg1*comg2)
	comg12 := comg1*comg2 + somg1*somg2
	// eta = omg12 - lam120
	eta := math.Atan2(somg12*clam120-comg12*slam120,
		comg12*clam120+somg12*slam120)
	k2 := sq(calp0) * g.ep2
	eps = k2 / (2*(1+math.Sqrt(1+k2)) + k2)
	g.c3f(eps, c3a)
	b312 := sinCosSeries(true, ssig2, csig2, c3a) -
		sinCosSeries(true, ssig1, csig1, c3a)
	domg12 = -g.f * g.a3f(eps) * salp0 * (sig12 + b312)
	lam12 = eta + domg12

	if diffp {
		if calp2 == 0 {
			dlam12 = -2 * g.f1 * dn1 / sbet1
		} else {
			_, dlam12, _, _, _ = g.lengths(
				eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2,
				cbet1, cbet2, ReducedLength, c1a, c2a)
			dlam12 *= g.f1 / (calp2 * cbet2)
		}
	} else {
		dlam12 = math.NaN()
	}
	return
}

// genInverse solves the general inverse problem, returning the azimuths as
// sine/cosine pairs so callers needing a Line can avoid a round trip
// through degrees.
func (g *geodGeodesic) genInverse(lat1, lon1, lat2, lon2 float64,
	outmask Capabilities) (a12, s12, salp1, calp1, salp2, calp2, m12, gM12, gM21, gS12 float64) {
	a12 = math.NaN()
	s12 = math.NaN()
	m12 = math.NaN()
	gM12 = math.NaN()
	gM21 = math.NaN()
	gS12 = math.NaN()
	outmask &= outMask

	// Compute longitude difference carefully; result is in [-180, 180] with
	// -180 only for west-going geodesics, 180 for east-going and
	// meridional ones.
	lon12, lon12s := angDiff(lon1, lon2)
	// Make longitude difference positive.
	lonsign := 1.0
	if lon12 < 0 {
		lonsign = -1
	}
	// If very close to being on the same half-meridian, then make it so.
	lon12 = lonsign * angRound(lon12)
	lon12s = angRound((180 - lon12) - lonsign*lon12s)
	lam12 := lon12 * radians
	var slam12, clam12 float64
	if lon12 > 90 {
		slam12, clam12 = sincosd(lon12s)
		clam12 = -clam12
	} else {
		slam12, clam12 = sincosd(lon12)
	}

	// If really close to the equator, treat as on equator.
	lat1 = angRound(latFix(lat1))
	lat2 = angRound(latFix(lat2))
	// Swap points so that the point with the higher (abs) latitude is point
	// 1. If one latitude is a NaN, it becomes lat1.
	swapp := -1.0
	if math.Abs(lat1) >= math.Abs(lat2) {
		swapp = 1
	}
	if swapp < 0 {
		lonsign *= -1
		lat1, lat2 = lat2, lat1
	}
	// Make lat1 <= 0.
	latsign := 1.0
	if lat1 >= 0 {
		latsign = -1
	}
	lat1 *= latsign
	lat2 *= latsign
	// Now we have
	//
	//     0 <= lon12 <= 180
	//     -90 <= lat1 <= 0
	//     lat1 <= lat2 <= -lat1
	//
	// lonsign, swapp, latsign register the transformation to bring the
	// coordinates to this canonical form, where 1 means no change was made.
	// Fewer cases need checking this way, e.g. on verifying quadrants in
	// atan2, and some symmetries in the results are enforced.

	sbet1, cbet1 := sincosd(lat1)
	sbet1 *= g.f1
	// Ensure cbet1 = +epsilon at poles.
	sbet1, cbet1 = norm2(sbet1, cbet1)
	cbet1 = math.Max(tiny, cbet1)
	sbet2, cbet2 := sincosd(lat2)
	sbet2 *= g.f1
	sbet2, cbet2 = norm2(sbet2, cbet2)
	cbet2 = math.Max(tiny, cbet2)

	// If cbet1 < -sbet1, then cbet2 - cbet1 is a sensitive measure of
	// |bet1| - |bet2|; alternatively (cbet1 >= -sbet1), abs(sbet2) + sbet1
	// is a better measure. This logic is used in assigning calp2 in
	// lambda12. Sometimes these quantities vanish; in that case force
	// bet2 = +/- bet1 exactly.
	if cbet1 < -sbet1 {
		if cbet2 == cbet1 {
			if sbet2 < 0 {
				sbet2 = sbet1
			} else {
				sbet2 = -sbet1
			}
		}
	} else {
		if math.Abs(sbet2) == -sbet1 {
			cbet2 = cbet1
		}
	}
	dn1 := math.Sqrt(1 + g.ep2*sq(sbet1))
	dn2 := math.Sqrt(1 + g.ep2*sq(sbet2))

	var c1a [nC1 + 1]float64
	var c2a [nC2 + 1]float64
	var c3a [nC3]float64
	var sig12, s12x, m12x float64
	// somg12 > 1 marks that it needs to be calculated.
	somg12 := 2.0
	comg12 := 0.0
	omg12 := 0.0
	var domg12 float64

	meridian := lat1 == -90 || slam12 == 0
	if meridian {
		// Endpoints lie on a single full meridian, so the geodesic might
		// lie on a meridian.
		calp1 = clam12
		salp1 = slam12 // Head to the target longitude
		calp2 = 1      // At the target we're heading north
		salp2 = 0
		// tan(bet) = tan(sig) * cos(alp)
		ssig1 := sbet1
		csig1 := calp1 * cbet1
		ssig2 := sbet2
		csig2 := calp2 * cbet2
		// sig12 = sig2 - sig1
		sig12 = math.Atan2(math.Max(0, csig1*ssig2-ssig1*csig2),
			csig1*csig2+ssig1*ssig2)
		s12x, m12x, _, gM12, gM21 = g.lengths(
			g.n, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2, cbet1, cbet2,
			outmask|Distance|ReducedLength, c1a[:], c2a[:])
		// Zero length geodesics might yield m12 < 0; in fact sig12 > pi/2
		// marks a meridional geodesic which is not a shortest path.
		if sig12 < 1 || m12x >= 0 {
			if sig12 < 3*tiny {
				sig12 = 0
				m12x = 0
				s12x = 0
			}
			m12x *= g.b
			s12x *= g.b
			a12 = sig12 * degrees
		} else {
			// m12 < 0, i.e. prolate and too close to antipodal.
			meridian = false
		}
	}

	if !meridian && sbet1 == 0 && (g.f <= 0 || lon12s >= g.f*180) {
		// The geodesic runs along the equator. Mimic the way lambda12
		// works with calp1 = 0.
		calp1 = 0
		calp2 = 0
		salp1 = 1
		salp2 = 1
		s12x = g.a * lam12
		sig12 = lam12 / g.f1
		omg12 = sig12
		m12x = g.b * math.Sin(sig12)
		if outmask&GeodesicScale != 0 {
			gM12 = math.Cos(sig12)
			gM21 = gM12
		}
		a12 = lon12 / g.f1
	} else if !meridian {
		// Now point1 and point2 belong within a hemisphere bounded by a
		// meridian and the geodesic is neither meridional nor equatorial.

		// Figure a starting point for Newton's method.
		var dnm float64
		sig12, salp1, calp1, salp2, calp2, dnm = g.inverseStart(
			sbet1, cbet1, dn1, sbet2, cbet2, dn2, lam12, slam12, clam12,
			c1a[:], c2a[:])
		if sig12 >= 0 {
			// Short lines (inverseStart sets salp2, calp2, dnm).
			s12x = sig12 * g.b * dnm
			m12x = sq(dnm) * g.b * math.Sin(sig12/dnm)
			if outmask&GeodesicScale != 0 {
				gM12 = math.Cos(sig12 / dnm)
				gM21 = gM12
			}
			a12 = sig12 * degrees
			omg12 = lam12 / (g.f1 * dnm)
		} else {
			// Newton's method. This is a straightforward solution of
			// f(alp1) = lambda12(alp1) - lam12 = 0 with one wrinkle:
			// f(alp) has exactly one root in the interval (0, pi) and its
			// derivative is positive at the root. Thus f(alp) is positive
			// for alp > alp1 and negative for alp < alp1. During the
			// iteration a range (alp1a, alp1b) bracketing the root is
			// maintained and shrunk whenever possible; Newton's method is
			// restarted from the midpoint of the bracket whenever the
			// derivative of f is negative (the new value of alp1 would
			// then be further from the solution) or the new estimate lies
			// outside (0, pi). The iteration count is hard-capped and the
			// best bracketed estimate stands if the cap is reached.
			tripn := false
			tripb := false
			salp1a := tiny
			calp1a := 1.0
			salp1b := tiny
			calp1b := -1.0
			var v, ssig1, csig1, ssig2, csig2, eps, dv float64
			for numit := 0; numit < maxit2; numit++ {
				v, salp2, calp2, sig12, ssig1, csig1, ssig2, csig2,
					eps, domg12, dv = g.lambda12(
					sbet1, cbet1, dn1, sbet2, cbet2, dn2,
					salp1, calp1, slam12, clam12, numit < maxit1,
					c1a[:], c2a[:], c3a[:])
				// 2 * tol0 is approximately 1 ulp for a number in [0, pi].
				// The test is reversed to allow escape with NaNs.
				mult := 1.0
				if tripn {
					mult = 8
				}
				if tripb || !(math.Abs(v) >= mult*tol0) {
					break
				}
				// Update bracketing values.
				if v > 0 && (numit > maxit1 || calp1/salp1 > calp1b/salp1b) {
					salp1b = salp1
					calp1b = calp1
				} else if v < 0 && (numit > maxit1 || calp1/salp1 < calp1a/salp1a) {
					salp1a = salp1
					calp1a = calp1
				}
				if numit < maxit1 && dv > 0 {
					dalp1 := -v / dv
					sdalp1 := math.Sin(dalp1)
					cdalp1 := math.Cos(dalp1)
					nsalp1 := salp1*cdalp1 + calp1*sdalp1
					if nsalp1 > 0 && math.Abs(dalp1) < math.Pi {
						calp1 = calp1*cdalp1 - salp1*sdalp1
						salp1 = nsalp1
						salp1, calp1 = norm2(salp1, calp1)
						// In some regimes we don't get quadratic
						// convergence because the slope -> 0, so use
						// convergence conditions based on epsilon instead
						// of sqrt(epsilon).
						tripn = math.Abs(v) <= 16*tol0
						continue
					}
				}
				// Either dv was not positive or the updated value was
				// outside the legal range. Use the midpoint of the bracket
				// as the next estimate. This mechanism is not needed for
				// the WGS84 ellipsoid, but it does catch problems with
				// more eccentric ellipsoids.
				salp1 = (salp1a + salp1b) / 2
				calp1 = (calp1a + calp1b) / 2
				salp1, calp1 = norm2(salp1, calp1)
				tripn = false
				tripb = math.Abs(salp1a-salp1)+(calp1a-calp1) < tolb ||
					math.Abs(salp1-salp1b)+(calp1-calp1b) < tolb
			}
			lengthmask := outmask
			if outmask&(ReducedLength|GeodesicScale) != 0 {
				lengthmask |= Distance
			}
			s12x, m12x, _, gM12, gM21 = g.lengths(
				eps, sig12, ssig1, csig1, dn1, ssig2, csig2, dn2,
				cbet1, cbet2, lengthmask, c1a[:], c2a[:])
			m12x *= g.b
			s12x *= g.b
			a12 = sig12 * degrees
			if outmask&Area != 0 {
				// omg12 = lam12 - domg12
				sdomg12 := math.Sin(domg12)
				cdomg12 := math.Cos(domg12)
				somg12 = slam12*cdomg12 - clam12*sdomg12
				comg12 = clam12*cdomg12 + slam12*sdomg12
			}
		}
	}

	if outmask&Distance != 0 {
		s12 = 0 + s12x // Convert -0 to 0
	}
	if outmask&ReducedLength != 0 {
		m12 = 0 + m12x
	}
	if outmask&Area != 0 {
		// From lambda12: sin(alp1) * cos(bet1) = sin(alp0).
		salp0 := salp1 * cbet1
		calp0 := math.Hypot(calp1, salp1*sbet1) // calp0 > 0
		if calp0 != 0 && salp0 != 0 {
			// From lambda12: tan(bet) = tan(sig) * cos(alp).
			ssig1 := sbet1
			csig1 := calp1 * cbet1
			ssig2 := sbet2
			csig2 := calp2 * cbet2
			k2 := sq(calp0) * g.ep2
			eps := k2 / (2*(1+math.Sqrt(1+k2)) + k2)
			// Multiplier = a^2 * e^2 * cos(alpha0) * sin(alpha0).
			a4 := sq(g.a) * calp0 * salp0 * g.e2
			ssig1, csig1 = norm2(ssig1, csig1)
			ssig2, csig2 = norm2(ssig2, csig2)
			var c4a [nC4]float64
			g.c4f(eps, c4a[:])
			b41 := sinCosSeries(false, ssig1, csig1, c4a[:])
			b42 := sinCosSeries(false, ssig2, csig2, c4a[:])
			gS12 = a4 * (b42 - b41)
		} else {
			// Avoid problems with indeterminate sig1, sig2 on the equator.
			gS12 = 0
		}
		if !meridian && somg12 > 1 {
			somg12 = math.Sin(omg12)
			comg12 = math.Cos(omg12)
		}
		var alp12 float64
		if !meridian && comg12 > -0.7071 && sbet2-sbet1 < 1.75 {
			// omg12 < 3/4*pi and the lat/lon differences are not too big:
			// use tan(Gamma/2) = tan(omg12/2)
			//   * (tan(bet1/2) + tan(bet2/2)) / (1 + tan(bet1/2)*tan(bet2/2))
			// with tan(x/2) = sin(x)/(1 + cos(x)).
			domg12 := 1 + comg12
			dbet1 := 1 + cbet1
			dbet2 := 1 + cbet2
			alp12 = 2 * math.Atan2(somg12*(sbet1*dbet2+sbet2*dbet1),
				domg12*(sbet1*sbet2+dbet1*dbet2))
		} else {
			// alp12 = alp2 - alp1, used in atan2 so no need to normalize.
			salp12 := salp2*calp1 - calp2*salp1
			calp12 := calp2*calp1 + salp2*salp1
			// The right thing appears to happen if alp1 = +/-180 and
			// alp2 = 0, viz salp12 = -0 and alp12 = -180; but this
			// depends on the sign being attached to 0 correctly. Enforce
			// it.
			if salp12 == 0 && calp12 < 0 {
				salp12 = tiny * calp1
				calp12 = -1
			}
			alp12 = math.Atan2(salp12, calp12)
		}
		gS12 += g.c2 * alp12
		gS12 *= swapp * lonsign * latsign
		gS12 += 0 // Convert -0 to 0
	}

	// Convert calp, salp to azimuths accounting for lonsign, swapp, latsign.
	if swapp < 0 {
		salp1, salp2 = salp2, salp1
		calp1, calp2 = calp2, calp1
		if outmask&GeodesicScale != 0 {
			gM12, gM21 = gM21, gM12
		}
	}
	salp1 *= swapp * lonsign
	calp1 *= swapp * latsign
	salp2 *= swapp * lonsign
	calp2 *= swapp * latsign
	return a12, s12, salp1, calp1, salp2, calp2, m12, gM12, gM21, gS12
}

func sq(x float64) float64 { return x * x }
