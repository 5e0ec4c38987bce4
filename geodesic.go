// Package geodesic solves geodesic problems on an ellipsoid of revolution:
// the direct problem (point + azimuth + distance -> point), the inverse
// problem (point + point -> distance and azimuths), incremental evaluation
// of many points along one geodesic, and the perimeter and area of geodesic
// polygons.
package geodesic

import "math"

// WGS84 conforming ellipsoid.
// https://en.wikipedia.org/wiki/World_Geodetic_System
var WGS84 = NewEllipsoid(6378137, 1/298.257223563)

// Ellipsoid is an object for performing geodesic operations.
//
// An Ellipsoid is immutable after construction and safe for concurrent use.
type Ellipsoid struct {
	g          geodGeodesic
	radius     float64
	flattening float64
}

// NewEllipsoid initializes a new geodesic ellipsoid object.
//
// Param radius is the equatorial radius (meters).
// Param flattening is the flattening factor of the ellipsoid. Zero gives a
// sphere; a negative value gives a prolate ellipsoid.
//
// The parameters are accepted as given: the caller is responsible for
// supplying a positive radius and a flattening < 1.
//
// The WGS84 package-level variable is a pre-initialized ellipsoid
// representing Earth.
func NewEllipsoid(radius, flattening float64) *Ellipsoid {
	e := &Ellipsoid{radius: radius, flattening: flattening}
	geodInit(&e.g, radius, flattening)
	return e
}

// Radius of the Ellipsoid
func (e *Ellipsoid) Radius() float64 {
	return e.radius
}

// Flattening of the Ellipsoid
func (e *Ellipsoid) Flattening() float64 {
	return e.flattening
}

// PolarRadius returns the polar semi-axis b = a*(1-f) (meters).
func (e *Ellipsoid) PolarRadius() float64 {
	return e.g.b
}

// EccentricitySquared returns the square of the first eccentricity, f*(2-f).
func (e *Ellipsoid) EccentricitySquared() float64 {
	return e.g.e2
}

// ThirdFlattening returns n = f/(2-f), the small parameter the series
// expansions are organized in.
func (e *Ellipsoid) ThirdFlattening() float64 {
	return e.g.n
}

// EllipsoidArea returns the total area of the ellipsoid (meters²).
func (e *Ellipsoid) EllipsoidArea() float64 {
	return 4 * math.Pi * e.g.c2
}

// Inverse solves the inverse geodesic problem.
//
// Param lat1 is latitude of point 1 (degrees).
// Param lon1 is longitude of point 1 (degrees).
// Param lat2 is latitude of point 2 (degrees).
// Param lon2 is longitude of point 2 (degrees).
// Out param s12 is a pointer to the distance from point 1 to point 2 (meters).
// Out param azi1 is a pointer to the azimuth at point 1 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 and lat2 should be in the range [-90,+90].
// The values of azi1 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, s12, etc., may be replaced with nil, if you
// do not need some quantities computed.
//
// The solution to the inverse problem is found using Newton's method.  If
// this fails to converge (this is very unlikely in geodetic applications
// but does occur for very eccentric ellipsoids), then the bisection method
// is used to refine the solution.
func (e *Ellipsoid) Inverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2 *float64,
) {
	e.GenInverse(lat1, lon1, lat2, lon2, s12, azi1, azi2, nil, nil, nil, nil)
}

// GenInverse is the general form of the inverse problem, additionally
// computing the reduced length m12, the geodesic scales M12 and M21, and
// the area S12 under the geodesic.  Returns the arc length a12 (degrees).
//
// Any of the "return" arguments may be replaced with nil.
func (e *Ellipsoid) GenInverse(
	lat1, lon1, lat2, lon2 float64,
	s12, azi1, azi2, m12, M12, M21, S12 *float64,
) float64 {
	var outmask Capabilities
	if s12 != nil {
		outmask |= Distance
	}
	if azi1 != nil || azi2 != nil {
		outmask |= Azimuth
	}
	if m12 != nil {
		outmask |= ReducedLength
	}
	if M12 != nil || M21 != nil {
		outmask |= GeodesicScale
	}
	if S12 != nil {
		outmask |= Area
	}
	a12, ps12, salp1, calp1, salp2, calp2, pm12, pM12, pM21, pS12 :=
		e.g.genInverse(lat1, lon1, lat2, lon2, outmask)
	assign(s12, ps12)
	if azi1 != nil {
		*azi1 = atan2d(salp1, calp1)
	}
	if azi2 != nil {
		*azi2 = atan2d(salp2, calp2)
	}
	assign(m12, pm12)
	assign(M12, pM12)
	assign(M21, pM21)
	assign(S12, pS12)
	return a12
}

// Direct solves the direct geodesic problem.
//
// Param lat1 is the latitude of point 1 (degrees).
// Param lon1 is the longitude of point 1 (degrees).
// Param azi1 is the azimuth at point 1 (degrees).
// Param s12 is the distance from point 1 to point 2 (meters). negative is ok.
// Out param lat2 is a pointer to the latitude of point 2 (degrees).
// Out param lon2 is a pointer to the longitude of point 2 (degrees).
// Out param azi2 is a pointer to the (forward) azimuth at point 2 (degrees).
//
// lat1 should be in the range [-90,+90].  A distance of zero returns point 1
// unchanged; a negative distance travels the geodesic backwards.
// The values of lon2 and azi2 returned are in the range [-180,+180].
// Any of the "return" arguments, lat2, etc., may be replaced with nil, if you
// do not need some quantities computed.
func (e *Ellipsoid) Direct(
	lat1, lon1, azi1, s12 float64,
	lat2, lon2, azi2 *float64,
) {
	e.GenDirect(lat1, lon1, azi1, NoFlags, s12,
		lat2, lon2, azi2, nil, nil, nil, nil, nil)
}

// GenDirect is the general form of the direct problem.  With the ArcMode
// flag, s12OrA12 is an arc length in degrees instead of a distance in
// meters; with the LongUnroll flag the returned longitude is not normalized
// to [-180,180].  Returns the arc length a12 (degrees).
//
// Any of the "return" arguments may be replaced with nil.
func (e *Ellipsoid) GenDirect(
	lat1, lon1, azi1 float64, flags Flags, s12OrA12 float64,
	lat2, lon2, azi2, s12, m12, M12, M21, S12 *float64,
) float64 {
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
	if M12 != nil || M21 != nil {
		outmask |= GeodesicScale
	}
	if S12 != nil {
		outmask |= Area
	}
	if flags&LongUnroll != 0 {
		outmask |= Capabilities(LongUnroll)
	}
	a12, plat2, plon2, pazi2, ps12, pm12, pM12, pM21, pS12 :=
		e.g.genDirect(lat1, lon1, azi1, flags, s12OrA12, outmask)
	assign(lat2, plat2)
	assign(lon2, plon2)
	assign(azi2, pazi2)
	assign(s12, ps12)
	assign(m12, pm12)
	assign(M12, pM12)
	assign(M21, pM21)
	assign(S12, pS12)
	return a12
}

// genDirect sets up a throwaway line and evaluates it once.
func (g *geodGeodesic) genDirect(lat1, lon1, azi1 float64, flags Flags,
	s12a12 float64, outmask Capabilities) (a12, lat2, lon2, azi2, s12, m12, gM12, gM21, gS12 float64) {
	caps := outmask
	if flags&ArcMode == 0 {
		// Automatically supply DistanceIn.
		caps |= DistanceIn
	}
	var l Line
	azi1 = angNormalize(azi1)
	salp1, calp1 := sincosd(angRound(azi1))
	lineInit(g, &l, lat1, lon1, azi1, salp1, calp1, caps)
	return l.genPosition(flags, s12a12, outmask)
}

// Line returns a geodesic line through the given point with the given
// azimuth.  The capability set determines which quantities later position
// queries can compute; pass 0 for the default (latitude, longitude, and
// azimuth from a distance input), All for everything, or e.g.
// Standard|DistanceIn.  The series setup cost of the line is paid once, so
// sampling many points along one geodesic through a Line is much cheaper
// than repeated Direct calls.
func (e *Ellipsoid) Line(lat1, lon1, azi1 float64, caps Capabilities) Line {
	var l Line
	azi1 = angNormalize(azi1)
	salp1, calp1 := sincosd(angRound(azi1))
	lineInit(&e.g, &l, lat1, lon1, azi1, salp1, calp1, caps)
	return l
}

// DirectLine returns the geodesic line of the direct problem: the line
// through (lat1,lon1) with azimuth azi1, with its reference point 3 fixed
// at distance s12, so later queries can be expressed relative to the
// solved endpoint (see Line.Distance and Line.Arc).
func (e *Ellipsoid) DirectLine(lat1, lon1, azi1, s12 float64,
	caps Capabilities) Line {
	return e.genDirectLine(lat1, lon1, azi1, NoFlags, s12, caps)
}

func (e *Ellipsoid) genDirectLine(lat1, lon1, azi1 float64, flags Flags,
	s12OrA12 float64, caps Capabilities) Line {
	var l Line
	// Automatically supply DistanceIn; the caps == 0 default includes it.
	if caps != 0 && flags&ArcMode == 0 {
		caps |= DistanceIn
	}
	azi1 = angNormalize(azi1)
	salp1, calp1 := sincosd(angRound(azi1))
	lineInit(&e.g, &l, lat1, lon1, azi1, salp1, calp1, caps)
	l.GenSetDistance(flags, s12OrA12)
	return l
}

// InverseLine solves the inverse problem for the two points and returns the
// connecting geodesic line, with its reference point 3 fixed at point 2.
// Position queries at fractions of l.Distance() then interpolate waypoints
// between the two points.
func (e *Ellipsoid) InverseLine(lat1, lon1, lat2, lon2 float64,
	caps Capabilities) Line {
	var l Line
	a12, _, salp1, calp1, _, _, _, _, _, _ :=
		e.g.genInverse(lat1, lon1, lat2, lon2, 0)
	azi1 := atan2d(salp1, calp1)
	// Ensure that a12 can be converted to a distance.
	if caps&(outMask&DistanceIn) != 0 {
		caps |= Distance
	}
	lineInit(&e.g, &l, lat1, lon1, azi1, salp1, calp1, caps)
	l.SetArc(a12)
	return l
}

// Polygon struct for accumulating information about a geodesic polygon.
// Used for computing the perimeter and area of a polygon.
// This must be initialized from Ellipsoid.PolygonInit before use.
//
// A Polygon is a single mutable accumulator: concurrent AddPoint/AddEdge
// calls must be serialized by the caller.  Compute, TestPoint, and TestEdge
// never mutate the accumulated state.
type Polygon struct {
	e *Ellipsoid
	p geodPolygon
}

// PolygonInit initializes a polygon.
// Param polyline for polyline instead of a polygon.
//
// If polyline is not set, then the sequence of vertices and edges added by
// Polygon.AddPoint() and Polygon.AddEdge() define a polygon and
// the perimeter and area are returned by Polygon.Compute().
// If polyline is set, then the vertices and edges define a polyline and
// only the perimeter is returned by Polygon.Compute().
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons.  At any point you can ask for the perimeter and area so far.
func (e *Ellipsoid) PolygonInit(polyline bool) Polygon {
	var p Polygon
	p.e = e
	geodPolygonInit(&p.p, polyline)
	return p
}

// AddPoint adds a point to the polygon or polyline.
//
// Param lat is the latitude of the point (degrees).
// Param lon is the longitude of the point (degrees).
func (p *Polygon) AddPoint(lat, lon float64) {
	geodPolygonAddPoint(&p.e.g, &p.p, lat, lon)
}

// AddEdge adds an edge to the polygon or polyline.
//
// Param azi is the azimuth at current point (degrees).
// Param s is the distance from current point to next point (meters).
func (p *Polygon) AddEdge(azi, s float64) {
	geodPolygonAddEdge(&p.e.g, &p.p, azi, s)
}

// Compute the results for a polygon
//
// Param reverse, if set then clockwise (instead of
//   counter-clockwise) traversal counts as a positive area.
// Param sign, if set then return a signed result for the area if
//   the polygon is traversed in the "wrong" direction instead of returning
//   the area for the rest of the earth.
// Out param area is a pointer to the area of the polygon (meters-squared);
// Out param perimeter is a pointer to the perimeter of the polygon or length
//   of the polyline (meters).
// Returns the number of points.
//
// The area and perimeter are accumulated at two times the standard floating
// point precision to guard against the loss of accuracy with many-sided
// polygons.  Arbitrarily complex polygons are allowed.  In the case of
// self-intersecting polygons the area is accumulated "algebraically", e.g.,
// the areas of the 2 loops in a figure-8 polygon will partially cancel.
// There's no need to "close" the polygon by repeating the first vertex.  Set
// area or perimeter to nil, if you do not want the corresponding quantity
// returned.
//
// More points can be added to the polygon after this call.
func (p *Polygon) Compute(reverse, sign bool, area, perimeter *float64) int {
	return geodPolygonCompute(&p.e.g, &p.p, reverse, sign, area, perimeter)
}

// TestPoint returns what Compute would return if lat, lon were added as one
// more vertex, without changing the accumulated state.  It may be called
// any number of times without affecting later Compute results.
func (p *Polygon) TestPoint(lat, lon float64, reverse, sign bool,
	area, perimeter *float64) int {
	return geodPolygonTestPoint(&p.e.g, &p.p, lat, lon, reverse, sign,
		area, perimeter)
}

// TestEdge returns what Compute would return if an edge with the given
// azimuth and distance were added, without changing the accumulated state.
// If no point has been added yet there is nothing to attach the edge to:
// the outputs are NaN and the returned count is 0.
func (p *Polygon) TestEdge(azi, s float64, reverse, sign bool,
	area, perimeter *float64) int {
	return geodPolygonTestEdge(&p.e.g, &p.p, azi, s, reverse, sign,
		area, perimeter)
}

// Clear the polygon, allowing a new polygon to be started.
func (p *Polygon) Clear() {
	geodPolygonClear(&p.p)
}

// PolygonArea computes the perimeter and area of the polygon with the given
// vertices in one call.  The area is signed: counter-clockwise traversal
// counts positive.  Returns the number of points.
//
// Panics if lats and lons have different lengths; mismatched parallel
// arrays are a caller bug, not a numerical edge case.
//
// Out params area (meters-squared) and perimeter (meters) may be nil.
func (e *Ellipsoid) PolygonArea(lats, lons []float64,
	area, perimeter *float64) int {
	if len(lats) != len(lons) {
		panic("geodesic: PolygonArea: mismatched lats/lons lengths")
	}
	p := e.PolygonInit(false)
	for i := range lats {
		p.AddPoint(lats[i], lons[i])
	}
	return p.Compute(false, true, area, perimeter)
}
