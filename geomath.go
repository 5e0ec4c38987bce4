package geodesic

import "math"

// Exact degree-based angle arithmetic. Working in degrees (rather than
// converting to radians at the boundary) keeps quantities like 90 and 180
// exact, which the solver relies on to detect meridional and equatorial
// geodesics.

const radians = math.Pi / 180
const degrees = 180 / math.Pi

// sumx returns the error-free transformation of u + v: s is the rounded sum
// and t the exact residual, so that u + v = s + t exactly.
func sumx(u, v float64) (s, t float64) {
	s = u + v
	up := s - v
	vpp := s - up
	up -= u
	vpp -= v
	t = -(up + vpp)
	return s, t
}

// polyval evaluates a polynomial of order n with coefficients p[s:] by
// Horner's method.
func polyval(n int, p []float64, s int, x float64) float64 {
	var y float64
	if n >= 0 {
		y = p[s]
	}
	for ; n > 0; n-- {
		s++
		y = y*x + p[s]
	}
	return y
}

// angNormalize reduces an angle to (-180,180].
func angNormalize(x float64) float64 {
	y := math.Remainder(x, 360)
	if y == -180 {
		return 180
	}
	return y
}

// angDiff computes y - x reduced to [-180,180], returning the rounded
// difference d and the truncation error e such that d + e is exact.
// The result is +180 for east-going differences and -180 only for
// west-going ones.
func angDiff(x, y float64) (d, e float64) {
	d, t := sumx(angNormalize(-x), angNormalize(y))
	d = angNormalize(d)
	if d == 180 && t > 0 {
		return sumx(-180, t)
	}
	return sumx(d, t)
}

// angRound rounds a tiny angle in degrees to zero. The smallest gap in the
// result is 1/2^57 near x = 1/16, about 0.7 pm on the earth, which removes
// the need to handle non-zero but negligible angles (e.g. 1e-200) as special
// near-singular cases.
func angRound(x float64) float64 {
	const z = 1 / 16.0
	if x == 0 {
		return 0
	}
	y := math.Abs(x)
	if y < z {
		// The compiler mustn't "simplify" z - (z - y) to y.
		y = z - (z - y)
	}
	if x < 0 {
		return -y
	}
	return y
}

// latFix replaces latitudes outside [-90,90] with NaN.
func latFix(x float64) float64 {
	if math.Abs(x) > 90 {
		return math.NaN()
	}
	return x
}

// sincosd computes the sine and cosine of x degrees, exact at the multiples
// of 90 so that, e.g., sincosd(180) = (0, -1) with no rounding residue.
func sincosd(x float64) (sinx, cosx float64) {
	r := math.Mod(x, 360)
	q := 0
	if !math.IsNaN(r) {
		q = int(math.Round(r / 90))
	}
	r -= 90 * float64(q)
	s, c := math.Sincos(r * radians)
	switch q & 3 {
	case 1:
		s, c = c, -s
	case 2:
		s, c = -s, -c
	case 3:
		s, c = -c, s
	}
	if x == 0 {
		// Preserve the sign of a zero argument.
		s = x
	}
	return s, c
}

// atan2d computes atan2(y, x) in degrees, with quadrant folding done in
// degrees so results at the cardinal directions are exact.
func atan2d(y, x float64) float64 {
	q := 0
	if math.Abs(y) > math.Abs(x) {
		x, y = y, x
		q = 2
	}
	if x < 0 {
		x = -x
		q++
	}
	ang := math.Atan2(y, x) * degrees
	switch q {
	case 1:
		if y >= 0 {
			ang = 180 - ang
		} else {
			ang = -180 - ang
		}
	case 2:
		ang = 90 - ang
	case 3:
		ang = -90 + ang
	}
	return ang
}

// norm2 normalizes the two-vector (x, y) to unit length.
func norm2(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	return x / r, y / r
}

// sinCosSeries sums a trigonometric series by Clenshaw summation:
//
//	sinp:  sum(c[i] * sin( 2*i    * x), i, 1, n)
//	else:  sum(c[i] * cos((2*i+1) * x), i, 0, n-1)
//
// where sinx = sin(x), cosx = cos(x). c[0] is unused for the sin series.
func sinCosSeries(sinp bool, sinx, cosx float64, c []float64) float64 {
	k := len(c)
	n := k
	if sinp {
		n--
	}
	ar := 2 * (cosx - sinx) * (cosx + sinx) // 2 * cos(2*x)
	var y0, y1 float64
	if n&1 != 0 {
		k--
		y0 = c[k]
	}
	for n /= 2; n > 0; n-- {
		// Unroll loop x 2, so accumulators return to their original role.
		k--
		y1 = ar*y0 - y1 + c[k]
		k--
		y0 = ar*y1 - y0 + c[k]
	}
	if sinp {
		return 2 * sinx * cosx * y0 // sin(2*x) * y0
	}
	return cosx * (y0 - y1) // cos(x) * (y0 - y1)
}

// astroid solves k^4 + 2*k^3 - (x^2+y^2-1)*k^2 - 2*y^2*k - y^2 = 0 for the
// positive root k. This is the core of the starting-guess computation for
// nearly antipodal inverse problems, where the problem reduces to finding
// the point on an astroid closest to (x, y).
func astroid(x, y float64) float64 {
	p := x * x
	q := y * y
	r := (p + q - 1) / 6
	if q == 0 && r <= 0 {
		// y = 0 with |x| <= 1; the positive root is 0.
		return 0
	}
	// Avoid possible division by zero when r = 0 by multiplying the
	// equations for s and t by r^3 and r respectively.
	s := p * q / 4 // s = r^3 * s'
	r2 := r * r
	r3 := r * r2
	// The discriminant of the quadratic equation for t3. This is zero on
	// the evolute curve p^(1/3) + q^(1/3) = 1.
	disc := s * (s + 2*r3)
	u := r
	if disc >= 0 {
		t3 := s + r3
		// Pick the sign of the sqrt to maximize |t3|, minimizing the loss
		// of precision due to cancellation.
		if t3 < 0 {
			t3 -= math.Sqrt(disc)
		} else {
			t3 += math.Sqrt(disc)
		}
		t := math.Cbrt(t3) // t = r * t'
		u += t
		if t != 0 {
			u += r2 / t
		}
	} else {
		// t is complex, but the way u is defined the result is real.
		ang := math.Atan2(math.Sqrt(-disc), -(s + r3))
		// There are three possible cube roots; choose the one which avoids
		// cancellation. disc < 0 implies r < 0.
		u += 2 * r * math.Cos(ang/3)
	}
	v := math.Sqrt(u*u + q) // guaranteed positive
	uv := u + v
	if u < 0 {
		// Avoid loss of accuracy when u < 0.
		uv = q / (v - u)
	}
	w := (uv - q) / (2 * v)
	// Rearranged to avoid loss of accuracy due to subtraction. Division by
	// zero is impossible because uv > 0 and w >= 0.
	return uv / (math.Sqrt(uv+w*w) + w)
}
