package geodesic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// A 17-vertex outline of Antarctica. The polygon encircles the south pole
// and crosses the ±180 meridian, so it exercises the transit bookkeeping.
var antarctica = [][2]float64{
	{-72.9, -74}, {-71.9, -102}, {-74.9, -102}, {-74.3, -131},
	{-77.5, -163}, {-77.4, 163}, {-71.7, 172}, {-65.9, 140}, {-65.7, 113},
	{-66.6, 88}, {-66.9, 59}, {-69.8, 25}, {-70.0, -4}, {-71.0, -14},
	{-77.3, -33}, {-77.9, -46}, {-74.7, -61},
}

func TestPolygonAntarctica(t *testing.T) {
	p := WGS84.PolygonInit(false)
	for _, v := range antarctica {
		p.AddPoint(v[0], v[1])
	}
	var area, perimeter float64
	n := p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 17, n)
	assert.InDelta(t, 14710425.407, perimeter, 0.5)
	assert.InDelta(t, 13376856682207.4, area, 2e3)
}

func TestPolygonOrientationAntisymmetry(t *testing.T) {
	p := WGS84.PolygonInit(false)
	for _, v := range antarctica {
		p.AddPoint(v[0], v[1])
	}
	var fwd, rev float64
	p.Compute(false, true, &fwd, nil)
	p.Compute(true, true, &rev, nil)
	if fwd != -rev {
		t.Fatalf("areas not exact negatives: %f, %f", fwd, -rev)
	}
}

func TestPolygonUnsignedConvention(t *testing.T) {
	// With sign unset, a polygon wound the "wrong" way reports the area of
	// the rest of the earth instead of a negative value.
	lats := []float64{0, 0, 10}
	lons := []float64{0, 10, 5}
	var ccw, cw float64
	p := WGS84.PolygonInit(false)
	for i := range lats {
		p.AddPoint(lats[i], lons[i])
	}
	p.Compute(false, false, &ccw, nil)
	p.Clear()
	for i := range lats {
		j := len(lats) - 1 - i
		p.AddPoint(lats[j], lons[j])
	}
	p.Compute(false, false, &cw, nil)
	assert.Greater(t, ccw, 0.0)
	assert.Greater(t, cw, 0.0)
	assert.InDelta(t, WGS84.EllipsoidArea(), ccw+cw, 10)

	// And with sign set, the two windings are negatives to round-off.
	var signed float64
	p.Compute(false, true, &signed, nil)
	assert.InDelta(t, -ccw, signed, 1)
}

func TestPolygonSphereOctant(t *testing.T) {
	// A triangle with vertices 90 degrees apart covers an octant of the
	// sphere: area = pi*r^2/2, with no series truncation in the way.
	const r = 6378137.0
	e := NewEllipsoid(r, 0)
	p := e.PolygonInit(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 90)
	p.AddPoint(90, 0)
	var area, perimeter float64
	p.Compute(false, true, &area, &perimeter)
	assert.InDelta(t, math.Pi*r*r/2, area, 1e2)
	// Three quarter great circles.
	assert.InDelta(t, 3*math.Pi*r/2, perimeter, 1e-6)
}

func TestPolygonTestPointPurity(t *testing.T) {
	p := WGS84.PolygonInit(false)
	for _, v := range antarctica[:9] {
		p.AddPoint(v[0], v[1])
	}
	var area0, perim0 float64
	p.Compute(false, true, &area0, &perim0)

	// testPoint reports the hypothetical result...
	var tarea, tperim float64
	n := p.TestPoint(antarctica[9][0], antarctica[9][1], false, true,
		&tarea, &tperim)
	assert.Equal(t, 10, n)

	// ...and however many times it is called, the accumulator is unchanged.
	for i := 0; i < 5; i++ {
		p.TestPoint(-70, float64(i*30), false, true, nil, nil)
		p.TestEdge(45, 1e6, false, true, nil, nil)
	}
	var area1, perim1 float64
	p.Compute(false, true, &area1, &perim1)
	if area0 != area1 || perim0 != perim1 {
		t.Fatalf("accumulator mutated: (%f, %f) != (%f, %f)",
			area0, perim0, area1, perim1)
	}

	// Actually adding the vertex reproduces the testPoint result.
	p.AddPoint(antarctica[9][0], antarctica[9][1])
	var area2, perim2 float64
	p.Compute(false, true, &area2, &perim2)
	assert.Equal(t, tarea, area2)
	assert.Equal(t, tperim, perim2)
}

func TestPolygonTestEdge(t *testing.T) {
	p := WGS84.PolygonInit(false)

	// An edge with no starting point has nothing to attach to.
	var area, perimeter float64
	n := p.TestEdge(90, 1e6, false, true, &area, &perimeter)
	assert.Equal(t, 0, n)
	assert.True(t, math.IsNaN(area))
	assert.True(t, math.IsNaN(perimeter))

	p.AddPoint(10, 10)
	p.AddPoint(10, 12)
	var azi, s float64
	WGS84.Inverse(10, 12, 12, 12, &s, &azi, nil)
	tn := p.TestEdge(azi, s, false, true, &area, &perimeter)
	p.AddEdge(azi, s)
	var area2, perimeter2 float64
	n = p.Compute(false, true, &area2, &perimeter2)
	assert.Equal(t, tn, n)
	assert.Equal(t, area, area2)
	assert.Equal(t, perimeter, perimeter2)
}

func TestPolygonAddEdgeMatchesAddPoint(t *testing.T) {
	// Building the same figure from direct-problem edges and from its
	// solved vertices must agree.
	type edge struct{ azi, s float64 }
	edges := []edge{{20, 1500e3}, {110, 1000e3}, {200, 1400e3}}

	pe := WGS84.PolygonInit(false)
	pv := WGS84.PolygonInit(false)
	lat, lon := -5.0, 40.0
	pe.AddPoint(lat, lon)
	pv.AddPoint(lat, lon)
	for _, ed := range edges {
		pe.AddEdge(ed.azi, ed.s)
		var lat2, lon2 float64
		WGS84.Direct(lat, lon, ed.azi, ed.s, &lat2, &lon2, nil)
		pv.AddPoint(lat2, lon2)
		lat, lon = lat2, lon2
	}
	var eArea, ePerim, vArea, vPerim float64
	ne := pe.Compute(false, true, &eArea, &ePerim)
	nv := pv.Compute(false, true, &vArea, &vPerim)
	assert.Equal(t, ne, nv)
	assert.InDelta(t, vPerim, ePerim, 1e-6)
	assert.InDelta(t, vArea, eArea, 1)
}

func TestPolylinePerimeterOnly(t *testing.T) {
	p := WGS84.PolygonInit(true)
	p.AddPoint(0, 0)
	p.AddPoint(0, 1)
	p.AddPoint(0, 2)
	area := -1.0
	var perimeter float64
	n := p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 3, n)
	// Two one-degree steps along the equator; no closing edge.
	want := 2 * 6378137 * math.Pi / 180
	assert.InDelta(t, want, perimeter, 1e-6)
	// The area output is left untouched for polylines.
	assert.Equal(t, -1.0, area)
}

func TestPolygonClear(t *testing.T) {
	p := WGS84.PolygonInit(false)
	p.AddPoint(0, 0)
	p.AddPoint(0, 1)
	p.AddPoint(1, 1)
	p.Clear()
	var area, perimeter float64
	n := p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0.0, area)
	assert.Equal(t, 0.0, perimeter)

	// The cleared accumulator is fully reusable.
	p.AddPoint(0, 0)
	p.AddPoint(0, 1)
	p.AddPoint(1, 1)
	n = p.Compute(false, true, &area, &perimeter)
	assert.Equal(t, 3, n)
	assert.Greater(t, area, 0.0)
	assert.Greater(t, perimeter, 0.0)
}

func TestPolygonAreaBatch(t *testing.T) {
	lats := make([]float64, len(antarctica))
	lons := make([]float64, len(antarctica))
	for i, v := range antarctica {
		lats[i] = v[0]
		lons[i] = v[1]
	}
	var area, perimeter float64
	n := WGS84.PolygonArea(lats, lons, &area, &perimeter)
	require.Equal(t, 17, n)
	assert.InDelta(t, 14710425.407, perimeter, 0.5)
	assert.InDelta(t, 13376856682207.4, area, 2e3)
}

func TestPolygonAreaMismatchedLengths(t *testing.T) {
	assert.Panics(t, func() {
		WGS84.PolygonArea([]float64{0, 0, 10}, []float64{0, 10}, nil, nil)
	})
}

func TestPolygonComputeIsRepeatable(t *testing.T) {
	p := WGS84.PolygonInit(false)
	for _, v := range antarctica {
		p.AddPoint(v[0], v[1])
	}
	var a1, p1, a2, p2 float64
	p.Compute(false, true, &a1, &p1)
	p.Compute(false, true, &a2, &p2)
	if a1 != a2 || p1 != p2 {
		t.Fatalf("compute not repeatable: (%f, %f) != (%f, %f)", a1, p1, a2, p2)
	}
	// More points can be added after a Compute.
	p.AddPoint(-72.9, -74)
	n := p.Compute(false, true, &a2, &p2)
	assert.Equal(t, 18, n)
}
