package geodesic

import "math"

// The series expansions are carried to order 6 in the third flattening n,
// which keeps the truncation error below double-precision round-off for
// |f| <= 1/50.
const geodesicOrder = 6

const (
	nA1  = geodesicOrder
	nC1  = geodesicOrder
	nC1p = geodesicOrder
	nA2  = geodesicOrder
	nC2  = geodesicOrder
	nA3  = geodesicOrder
	nA3x = nA3
	nC3  = geodesicOrder
	nC3x = (nC3 * (nC3 - 1)) / 2
	nC4  = geodesicOrder
	nC4x = (nC4 * (nC4 + 1)) / 2
)

// Newton's method gets maxit1 iterations; thereafter bisection alone is
// guaranteed to converge within the remaining budget.
const (
	digits = 53
	maxit1 = 20
	maxit2 = maxit1 + digits + 10
)

var (
	epsilon = math.Nextafter(1, 2) - 1 // 2^-52
	tol0    = epsilon
	tol1    = 200 * tol0
	tol2    = math.Sqrt(epsilon)
	tolb    = tol0 * tol2 // Check on bisection interval
	xthresh = 1000 * tol2
	tiny    = math.Sqrt(math.SmallestNonzeroFloat64 * math.Pow(2, 52)) // sqrt of min normal
)

// geodGeodesic holds the ellipsoid parameters together with every derived
// constant and coefficient table that depends only on the ellipsoid, so the
// per-call work is limited to quantities that depend on the points.
type geodGeodesic struct {
	a     float64 // equatorial radius
	f     float64 // flattening
	f1    float64 // 1 - f
	e2    float64 // eccentricity squared, f*(2-f)
	ep2   float64 // second eccentricity squared, e2/(1-e2)
	n     float64 // third flattening, f/(2-f)
	b     float64 // polar radius, a*(1-f)
	c2    float64 // authalic radius squared
	etol2 float64 // the sig12 threshold for "really short" lines

	a3x [nA3x]float64
	c3x [nC3x]float64
	c4x [nC4x]float64
}

func geodInit(g *geodGeodesic, a, f float64) {
	g.a = a
	g.f = f
	g.f1 = 1 - f
	g.e2 = f * (2 - f)
	g.ep2 = g.e2 / (g.f1 * g.f1)
	g.n = f / (2 - f)
	g.b = a * g.f1
	// Authalic radius squared.
	g.c2 = (g.a*g.a + g.b*g.b*eatanhe1(g.e2)) / 2
	// The sig12 threshold for "really short". Using the auxiliary sphere
	// solution with dnm computed at (bet1 + bet2)/2, the relative error in
	// the azimuth consistency check is sig12^2 * abs(f) * min(1, 1-f/2) / 2.
	// Setting this equal to epsilon gives sig12 = etol2. Here 0.1 is a
	// safety factor and max(0.001, abs(f)) stops etol2 getting too large in
	// the nearly spherical case.
	g.etol2 = 0.1 * tol2 /
		math.Sqrt(math.Max(0.001, math.Abs(f))*math.Min(1, 1-f/2)/2)
	g.a3coeff()
	g.c3coeff()
	g.c4coeff()
}

// eatanhe1 returns atanh(sqrt(x))/sqrt(x) generalized to negative x, with
// eatanhe1(0) = 1; used for the authalic radius.
func eatanhe1(x float64) float64 {
	switch {
	case x > 0:
		return math.Atanh(math.Sqrt(x)) / math.Sqrt(x)
	case x < 0:
		return math.Atan(math.Sqrt(-x)) / math.Sqrt(-x)
	default:
		return 1
	}
}

// a3coeff fills the scale-free coefficients of the A3 expansion, a
// polynomial in n for each power of eps.
func (g *geodGeodesic) a3coeff() {
	coeff := []float64{
		-3, 128,
		-2, -3, 64,
		-1, -3, -1, 16,
		3, -1, -2, 8,
		1, -1, 2,
		1, 1,
	}
	o, k := 0, 0
	for j := nA3 - 1; j >= 0; j-- { // coeff of eps^j
		m := min(nA3-j-1, j) // order of polynomial in n
		g.a3x[k] = polyval(m, coeff, o, g.n) / coeff[o+m+1]
		k++
		o += m + 2
	}
}

func (g *geodGeodesic) c3coeff() {
	coeff := []float64{
		3, 128,
		2, 5, 128,
		-1, 3, 3, 64,
		-1, 0, 1, 8,
		-1, 1, 4,
		5, 256,
		1, 3, 128,
		-3, -2, 3, 64,
		1, -3, 2, 32,
		7, 512,
		-10, 9, 384,
		5, -9, 5, 192,
		7, 512,
		-14, 7, 512,
		21, 2560,
	}
	o, k := 0, 0
	for l := 1; l < nC3; l++ { // l is index of C3[l]
		for j := nC3 - 1; j >= l; j-- { // coeff of eps^j
			m := min(nC3-j-1, j) // order of polynomial in n
			g.c3x[k] = polyval(m, coeff, o, g.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

func (g *geodGeodesic) c4coeff() {
	coeff := []float64{
		97, 15015,
		1088, 156, 45045,
		-224, -4784, 1573, 45045,
		-10656, 14144, -4576, -858, 45045,
		64, 624, -4576, 6864, -3003, 15015,
		100, 208, 572, 3432, -12012, 30030, 45045,
		1, 9009,
		-2944, 468, 135135,
		5792, 1040, -1287, 135135,
		5952, -11648, 9152, -2574, 135135,
		-64, -624, 4576, -6864, 3003, 135135,
		8, 10725,
		1856, -936, 225225,
		-8448, 4992, -1144, 225225,
		-1440, 4160, -4576, 1716, 225225,
		-136, 63063,
		1024, -208, 105105,
		3584, -3328, 1144, 315315,
		-128, 135135,
		-2560, 832, 405405,
		128, 99099,
	}
	o, k := 0, 0
	for l := 0; l < nC4; l++ { // l is index of C4[l]
		for j := nC4 - 1; j >= l; j-- { // coeff of eps^j
			m := nC4 - j - 1 // order of polynomial in n
			g.c4x[k] = polyval(m, coeff, o, g.n) / coeff[o+m+1]
			k++
			o += m + 2
		}
	}
}

// a3f evaluates A3.
func (g *geodGeodesic) a3f(eps float64) float64 {
	return polyval(nA3-1, g.a3x[:], 0, eps)
}

// c3f evaluates C3 coefficients; elements c[1] thru c[nC3-1] are set.
func (g *geodGeodesic) c3f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 1; l < nC3; l++ { // l is index of C3[l]
		m := nC3 - l - 1 // order of polynomial in eps
		mult *= eps
		c[l] = mult * polyval(m, g.c3x[:], o, eps)
		o += m + 1
	}
}

// c4f evaluates C4 coefficients; elements c[0] thru c[nC4-1] are set.
func (g *geodGeodesic) c4f(eps float64, c []float64) {
	mult := 1.0
	o := 0
	for l := 0; l < nC4; l++ { // l is index of C4[l]
		m := nC4 - l - 1 // order of polynomial in eps
		c[l] = mult * polyval(m, g.c4x[:], o, eps)
		o += m + 1
		mult *= eps
	}
}

// a1m1f returns A1 - 1, the mean-value part of the arc-to-distance series.
func a1m1f(eps float64) float64 {
	coeff := []float64{1, 4, 64, 0, 256}
	m := nA1 / 2
	t := polyval(m, coeff, 0, eps*eps) / coeff[m+1]
	return (t + eps) / (1 - eps)
}

// c1f fills the C1 coefficients (arc to distance); c[1] thru c[nC1] are set.
func c1f(eps float64, c []float64) {
	coeff := []float64{
		-1, 6, -16, 32,
		-9, 64, -128, 2048,
		9, -16, 768,
		3, -5, 512,
		-7, 1280,
		-7, 2048,
	}
	eps2 := eps * eps
	d := eps
	o := 0
	for l := 1; l <= nC1; l++ { // l is index of C1[l]
		m := (nC1 - l) / 2 // order of polynomial in eps^2
		c[l] = d * polyval(m, coeff, o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// c1pf fills the C1' coefficients, the reversion of the C1 series used to
// convert a distance back to an arc length without a root find; c[1] thru
// c[nC1p] are set.
func c1pf(eps float64, c []float64) {
	coeff := []float64{
		205, -432, 768, 1536,
		4005, -4736, 3840, 12288,
		-225, 116, 384,
		-7173, 2695, 7680,
		3467, 7680,
		38081, 61440,
	}
	eps2 := eps * eps
	d := eps
	o := 0
	for l := 1; l <= nC1p; l++ { // l is index of C1p[l]
		m := (nC1p - l) / 2 // order of polynomial in eps^2
		c[l] = d * polyval(m, coeff, o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}

// a2m1f returns A2 - 1, used for the reduced length and geodesic scale.
func a2m1f(eps float64) float64 {
	coeff := []float64{-11, -28, -192, 0, 256}
	m := nA2 / 2
	t := polyval(m, coeff, 0, eps*eps) / coeff[m+1]
	return (t - eps) / (1 + eps)
}

// c2f fills the C2 coefficients; c[1] thru c[nC2] are set.
func c2f(eps float64, c []float64) {
	coeff := []float64{
		1, 2, 16, 32,
		35, 64, 384, 2048,
		15, 80, 768,
		7, 35, 512,
		63, 1280,
		77, 2048,
	}
	eps2 := eps * eps
	d := eps
	o := 0
	for l := 1; l <= nC2; l++ { // l is index of C2[l]
		m := (nC2 - l) / 2 // order of polynomial in eps^2
		c[l] = d * polyval(m, coeff, o, eps2) / coeff[o+m+1]
		o += m + 2
		d *= eps
	}
}
