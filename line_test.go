package geodesic

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLinePositionMatchesDirect(t *testing.T) {
	// line(p, azi).Position(d) must agree with direct(p, azi, d) to
	// round-off for any d.
	rng := rand.New(rand.NewSource(44))
	for i := 0; i < 1000; i++ {
		lat1 := rng.Float64()*180 - 90
		lon1 := rng.Float64()*360 - 180
		azi1 := rng.Float64()*360 - 180
		l := WGS84.Line(lat1, lon1, azi1, Standard|DistanceIn)
		for j := 0; j < 5; j++ {
			s12 := (rng.Float64()*2 - 1) * 1e7
			var lat2, lon2, azi2 float64
			l.Position(s12, &lat2, &lon2, &azi2)
			var dlat2, dlon2, dazi2 float64
			WGS84.Direct(lat1, lon1, azi1, s12, &dlat2, &dlon2, &dazi2)
			if math.Abs(lat2-dlat2) > 1e-12 || math.Abs(lon2-dlon2) > 1e-12 ||
				math.Abs(azi2-dazi2) > 1e-12 {
				t.Fatalf("line (%f %f %f %f): got (%.15f %.15f %.15f), direct (%.15f %.15f %.15f)",
					lat1, lon1, azi1, s12, lat2, lon2, azi2, dlat2, dlon2, dazi2)
			}
		}
	}
}

func TestInverseLineWaypoints(t *testing.T) {
	// Waypoints at fractions 0, 0.1, ..., 1.0 of the total distance are
	// monotone in cumulative distance, each step is 10% of the total, and
	// the last one lands on the target point.
	l := WGS84.InverseLine(40.64, -73.78, 1.36, 103.99, Standard|DistanceIn)
	total := l.Distance()
	require.False(t, math.IsNaN(total))

	var prevlat, prevlon float64
	for i := 0; i <= 10; i++ {
		var lat2, lon2 float64
		l.Position(total*float64(i)/10, &lat2, &lon2, nil)
		if i == 0 {
			assert.InDelta(t, 40.64, lat2, 1e-9)
			assert.InDelta(t, -73.78, lon2, 1e-9)
		} else {
			var step float64
			WGS84.Inverse(prevlat, prevlon, lat2, lon2, &step, nil, nil)
			assert.InDelta(t, total/10, step, 1)
		}
		prevlat, prevlon = lat2, lon2
	}
	assert.InDelta(t, 1.36, prevlat, 1e-9)
	assert.InDelta(t, 103.99, prevlon, 1e-9)
}

func TestDirectLineReference(t *testing.T) {
	l := WGS84.DirectLine(40.64, -73.78, 45, 10000000, 0)
	assert.Equal(t, 10000000.0, l.Distance())
	assert.False(t, math.IsNaN(l.Arc()))

	// The reference point is the direct-problem destination.
	var lat2, lon2, azi2 float64
	l.Position(l.Distance(), &lat2, &lon2, &azi2)
	assert.InDelta(t, 32.62110046, lat2, 1e-7)
	assert.InDelta(t, 49.05248709, lon2, 1e-7)
	assert.InDelta(t, 140.40598588, azi2, 1e-7)

	// Arc-mode query at the reference arc lands on the same point.
	var alat2, alon2 float64
	l.GenPosition(ArcMode, l.Arc(), &alat2, &alon2, nil, nil, nil, nil, nil, nil)
	assert.InDelta(t, lat2, alat2, 1e-12)
	assert.InDelta(t, lon2, alon2, 1e-12)
}

func TestLineAccessors(t *testing.T) {
	l := WGS84.Line(40.64, -73.78, 45, Standard|DistanceIn)
	assert.Equal(t, 40.64, l.Latitude())
	assert.Equal(t, -73.78, l.Longitude())
	assert.Equal(t, 45.0, l.Azimuth())
	assert.True(t, l.Has(Latitude|Longitude|Azimuth|Distance|DistanceIn))
	assert.False(t, l.Has(Area))
	// No reference point until one is set.
	assert.True(t, math.IsNaN(l.Distance()))
	assert.True(t, math.IsNaN(l.Arc()))
	l.SetDistance(5000e3)
	assert.Equal(t, 5000e3, l.Distance())
	assert.False(t, math.IsNaN(l.Arc()))
}

func TestLineDefaultCapabilities(t *testing.T) {
	// caps None selects the default set: position queries by distance that
	// compute latitude, longitude, and azimuth, nothing more.
	l := WGS84.Line(40.64, -73.78, 45, None)
	assert.True(t, l.Has(Latitude|Longitude|Azimuth|DistanceIn))
	assert.False(t, l.Has(Distance))
	assert.False(t, l.Has(ReducedLength))
	assert.False(t, l.Has(GeodesicScale))
	assert.False(t, l.Has(Area))

	var lat2, lon2, azi2, m12 float64
	l.GenPosition(NoFlags, 1e6, &lat2, &lon2, &azi2, nil, &m12, nil, nil, nil)
	assert.True(t, math.IsNaN(m12))
	var dlat2, dlon2, dazi2 float64
	WGS84.Direct(40.64, -73.78, 45, 1e6, &dlat2, &dlon2, &dazi2)
	assert.Equal(t, dlat2, lat2)
	assert.Equal(t, dlon2, lon2)
	assert.Equal(t, dazi2, azi2)
}

func TestLineCapabilityGating(t *testing.T) {
	// Quantities not requested at construction come back as NaN, never a
	// wrong value or a crash.
	l := WGS84.Line(40.64, -73.78, 45, Standard|DistanceIn)
	var m12, gM12, gM21, gS12 float64
	a12 := l.GenPosition(NoFlags, 1e6, nil, nil, nil, nil,
		&m12, &gM12, &gM21, &gS12)
	assert.False(t, math.IsNaN(a12))
	assert.True(t, math.IsNaN(m12))
	assert.True(t, math.IsNaN(gM12))
	assert.True(t, math.IsNaN(gM21))
	assert.True(t, math.IsNaN(gS12))

	// A line without DistanceIn cannot take a distance as input...
	arconly := WGS84.Line(40.64, -73.78, 45, Latitude|Longitude|Azimuth)
	var lat2 float64
	arconly.Position(1e6, &lat2, nil, nil)
	assert.True(t, math.IsNaN(lat2))
	// ...but arc-mode queries still work.
	arconly.GenPosition(ArcMode, 9, &lat2, nil, nil, nil, nil, nil, nil, nil)
	assert.False(t, math.IsNaN(lat2))
}

func TestLineFullOutputs(t *testing.T) {
	l := WGS84.Line(40.64, -73.78, 45, All)
	var lat2, lon2, azi2, s12, m12, gM12, gM21, gS12 float64
	a12 := l.GenPosition(NoFlags, 10000000, &lat2, &lon2, &azi2, &s12,
		&m12, &gM12, &gM21, &gS12)
	assert.InDelta(t, 10000000, s12, 1e-6)
	assert.InDelta(t, 32.62110046, lat2, 1e-7)
	assert.InDelta(t, 49.05248709, lon2, 1e-7)
	assert.InDelta(t, 140.40598588, azi2, 1e-7)
	assert.False(t, math.IsNaN(a12))
	assert.False(t, math.IsNaN(m12))
	assert.False(t, math.IsNaN(gM12))
	assert.False(t, math.IsNaN(gM21))
	assert.False(t, math.IsNaN(gS12))
	// M12*M21 - m12*m12' relation aside, the scales of a short segment are
	// close to 1 and the reduced length close to the distance.
	var sm12, sM12, sM21 float64
	l.GenPosition(NoFlags, 1000, nil, nil, nil, nil, &sm12, &sM12, &sM21, nil)
	assert.InDelta(t, 1000, sm12, 1e-3)
	assert.InDelta(t, 1, sM12, 1e-6)
	assert.InDelta(t, 1, sM21, 1e-6)
}

func TestLineLongUnroll(t *testing.T) {
	// With LongUnroll the longitude grows monotonically along an
	// east-going equatorial line, past +180 and around the earth.
	l := WGS84.Line(0, 0, 90, Standard|DistanceIn)
	circumference := 2 * math.Pi * 6378137
	prev := 0.0
	for i := 1; i <= 8; i++ {
		var lon2 float64
		l.GenPosition(LongUnroll, circumference*float64(i)/4,
			nil, &lon2, nil, nil, nil, nil, nil, nil)
		if lon2 <= prev {
			t.Fatalf("unrolled longitude not monotonic: %f after %f", lon2, prev)
		}
		prev = lon2
	}
	assert.InDelta(t, 720, prev, 1e-6)

	// Without the flag the longitude stays in [-180,180].
	var lon2 float64
	l.Position(circumference*5/8, nil, &lon2, nil)
	assert.LessOrEqual(t, lon2, 180.0)
	assert.GreaterOrEqual(t, lon2, -180.0)
}

func TestGenDirectArcMode(t *testing.T) {
	// A quarter meridian north from the equator is 90 degrees of arc.
	var lat2, lon2, s12 float64
	a12 := WGS84.GenDirect(0, 0, 0, ArcMode, 90,
		&lat2, &lon2, nil, &s12, nil, nil, nil, nil)
	assert.Equal(t, 90.0, a12)
	assert.InDelta(t, 90, lat2, 1e-9)
	// Quarter meridian on WGS84.
	assert.InDelta(t, 10001965.729, s12, 1e-3)
}
