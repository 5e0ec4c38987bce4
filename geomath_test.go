package geodesic

import (
	"math"
	"testing"
)

func TestAngNormalize(t *testing.T) {
	cases := []struct{ in, out float64 }{
		{0, 0}, {180, 180}, {-180, 180}, {540, 180}, {-540, 180},
		{360, 0}, {720, 0}, {-90, -90}, {270, -90},
	}
	for _, c := range cases {
		if got := angNormalize(c.in); got != c.out {
			t.Fatalf("angNormalize(%v) = %v, want %v", c.in, got, c.out)
		}
	}
}

func TestAngDiff(t *testing.T) {
	// Differences come back in [-180,180], the short way around.
	if d, _ := angDiff(140, -160); d != 60 {
		t.Fatalf("angDiff(140, -160) = %v", d)
	}
	if d, _ := angDiff(-160, 140); d != -60 {
		t.Fatalf("angDiff(-160, 140) = %v", d)
	}
	if d, _ := angDiff(350, 10); d != 20 {
		t.Fatalf("angDiff(350, 10) = %v", d)
	}
	// The error term makes the pair exact: d + e = y - x.
	x, y := 0.1, 359.9
	d, e := angDiff(x, y)
	if math.Abs(d+e-(-0.2)) > 1e-12 || math.Abs(d-(-0.2)) > 1e-12 {
		t.Fatalf("angDiff(%v, %v) = %v + %v", x, y, d, e)
	}
}

func TestAngRound(t *testing.T) {
	if got := angRound(1e-200); got != 0 {
		t.Fatalf("angRound(1e-200) = %g", got)
	}
	if got := angRound(-1e-200); got != 0 {
		t.Fatalf("angRound(-1e-200) = %g", got)
	}
	// Angles big enough to matter pass through unchanged.
	if got := angRound(0.1); got != 0.1 {
		t.Fatalf("angRound(0.1) = %v", got)
	}
	if got := angRound(-45); got != -45 {
		t.Fatalf("angRound(-45) = %v", got)
	}
	if got := angRound(0); got != 0 {
		t.Fatalf("angRound(0) = %v", got)
	}
}

func TestLatFix(t *testing.T) {
	if latFix(90) != 90 || latFix(-90) != -90 || latFix(45) != 45 {
		t.Fatal()
	}
	if !math.IsNaN(latFix(90.000001)) || !math.IsNaN(latFix(-91)) {
		t.Fatal()
	}
}

func TestSincosdExact(t *testing.T) {
	// Multiples of 90 come out exact, with no rounding residue from pi.
	cases := []struct{ x, s, c float64 }{
		{0, 0, 1}, {90, 1, 0}, {180, 0, -1}, {270, -1, 0},
		{360, 0, 1}, {-90, -1, 0}, {-180, 0, -1}, {-270, 1, 0},
	}
	for _, c := range cases {
		s, co := sincosd(c.x)
		if s != c.s || co != c.c {
			t.Fatalf("sincosd(%v) = (%v, %v), want (%v, %v)", c.x, s, co, c.s, c.c)
		}
	}
	// And elsewhere it agrees with the radian versions.
	for x := -300.0; x <= 300; x += 7.25 {
		s, c := sincosd(x)
		if math.Abs(s-math.Sin(x*radians)) > 1e-15 ||
			math.Abs(c-math.Cos(x*radians)) > 1e-15 {
			t.Fatalf("sincosd(%v) = (%v, %v)", x, s, c)
		}
	}
}

func TestAtan2dExact(t *testing.T) {
	cases := []struct{ y, x, want float64 }{
		{0, 1, 0}, {1, 0, 90}, {0, -1, 180}, {-1, 0, -90},
	}
	for _, c := range cases {
		if got := atan2d(c.y, c.x); got != c.want {
			t.Fatalf("atan2d(%v, %v) = %v, want %v", c.y, c.x, got, c.want)
		}
	}
	// Diagonals are only exact to round-off.
	if got := atan2d(1, 1); math.Abs(got-45) > 1e-13 {
		t.Fatalf("atan2d(1, 1) = %v", got)
	}
	if got := atan2d(-1, -1); math.Abs(got+135) > 1e-13 {
		t.Fatalf("atan2d(-1, -1) = %v", got)
	}
}

func TestSumx(t *testing.T) {
	// The residual captures what rounding discarded.
	s, e := sumx(1e100, 1)
	if s != 1e100 || e != 1 {
		t.Fatalf("sumx(1e100, 1) = (%g, %g)", s, e)
	}
	a, b := 0.1, 0.2
	s, e = sumx(a, b)
	if s != a+b || e == 0 || math.Abs(e) > 1e-16 {
		t.Fatalf("sumx(0.1, 0.2) = (%v, %v)", s, e)
	}
}

func TestPolyval(t *testing.T) {
	p := []float64{1, 2, 3}
	if got := polyval(2, p, 0, 2); got != 11 {
		t.Fatalf("polyval = %v", got)
	}
	if got := polyval(1, p, 1, 10); got != 23 {
		t.Fatalf("polyval with offset = %v", got)
	}
	if got := polyval(-1, p, 0, 5); got != 0 {
		t.Fatalf("polyval order -1 = %v", got)
	}
}

func TestNorm2(t *testing.T) {
	x, y := norm2(3, 4)
	if x != 0.6 || y != 0.8 {
		t.Fatalf("norm2(3, 4) = (%v, %v)", x, y)
	}
}

func TestSinCosSeries(t *testing.T) {
	// A one-term cosine series is c[0]*cos(x); a one-term sine series (the
	// leading element is unused) is c[1]*sin(2x).
	for x := 0.1; x < 3; x += 0.3 {
		s, c := math.Sin(x), math.Cos(x)
		if got := sinCosSeries(false, s, c, []float64{2}); math.Abs(got-2*c) > 1e-15 {
			t.Fatalf("cos series at %v: %v", x, got)
		}
		if got := sinCosSeries(true, s, c, []float64{0, 3}); math.Abs(got-3*math.Sin(2*x)) > 1e-14 {
			t.Fatalf("sin series at %v: %v", x, got)
		}
		// A longer series against the direct sum.
		coef := []float64{0, 0.5, -0.25, 0.125}
		want := 0.5*math.Sin(2*x) - 0.25*math.Sin(4*x) + 0.125*math.Sin(6*x)
		if got := sinCosSeries(true, s, c, coef); math.Abs(got-want) > 1e-14 {
			t.Fatalf("sin series at %v: %v, want %v", x, got, want)
		}
	}
}

func TestAstroid(t *testing.T) {
	// k = 0 on the x axis inside the astroid, k = 1 at (0, 1).
	if got := astroid(0.5, 0); got != 0 {
		t.Fatalf("astroid(0.5, 0) = %v", got)
	}
	if got := astroid(0, 1); math.Abs(got-1) > 1e-15 {
		t.Fatalf("astroid(0, 1) = %v", got)
	}
	// Any root must satisfy the quartic.
	for _, xy := range [][2]float64{{0.9, 0.1}, {1.1, 0.3}, {0.2, 0.95}} {
		x, y := xy[0], xy[1]
		k := astroid(x, y)
		res := k*k*k*k + 2*k*k*k - (x*x+y*y-1)*k*k - 2*y*y*k - y*y
		if math.Abs(res) > 1e-12 {
			t.Fatalf("astroid(%v, %v) = %v, residual %g", x, y, k, res)
		}
	}
}
