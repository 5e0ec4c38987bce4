package geodesic

import "math"

// accumulator maintains a sum at twice the working precision as a pair of
// doubles (s, t), s holding the rounded sum and t the residual, following
// Shewchuk's error-free transformations. This guards the polygon sums
// against accuracy loss with many-sided polygons.
type accumulator struct {
	s, t float64
}

func (acc *accumulator) set(y float64) {
	acc.s = y
	acc.t = 0
}

func (acc *accumulator) add(y float64) {
	// Accumulate starting at the least significant end.
	y, u := sumx(y, acc.t)
	acc.s, acc.t = sumx(y, acc.s)
	if acc.s == 0 {
		acc.s = u
	} else {
		acc.t += u
	}
}

func (acc *accumulator) sum() float64 {
	return acc.s
}

// sumWith returns the value the accumulator would have after add(y),
// without mutating it.
func (acc *accumulator) sumWith(y float64) float64 {
	b := *acc
	b.add(y)
	return b.s
}

func (acc *accumulator) negate() {
	acc.s = -acc.s
	acc.t = -acc.t
}

// remainder reduces the sum to [-y/2, y/2].
func (acc *accumulator) remainder(y float64) {
	acc.s = math.Remainder(acc.s, y)
	// Renormalize.
	acc.add(0)
}

// geodPolygon is the state of a polygon or polyline accumulation: the first
// and current vertices, the running perimeter and area sums, and the count
// of crossings of the ±180° meridian. It is a flat value, so checkpointing
// for the test operations is a plain copy.
type geodPolygon struct {
	lat0, lon0 float64 // first vertex
	lat1, lon1 float64 // current vertex (lon1 may be unrolled by addEdge)

	perimetersum accumulator
	areasum      accumulator
	num          int
	crossings    int
	polyline     bool
	mask         Capabilities
}

func geodPolygonInit(p *geodPolygon, polyline bool) {
	p.polyline = polyline
	p.mask = Latitude | Longitude | Distance | Capabilities(LongUnroll)
	if !polyline {
		p.mask |= Area
	}
	geodPolygonClear(p)
}

func geodPolygonClear(p *geodPolygon) {
	p.lat0 = math.NaN()
	p.lon0 = math.NaN()
	p.lat1 = math.NaN()
	p.lon1 = math.NaN()
	p.perimetersum.set(0)
	p.areasum.set(0)
	p.num = 0
	p.crossings = 0
}

// transit counts the crossing of the ±180° meridian by the shortest edge
// from lon1 to lon2: +1 for an easterly crossing, -1 for a westerly one.
func transit(lon1, lon2 float64) int {
	lon12, _ := angDiff(lon1, lon2)
	lon1 = angNormalize(lon1)
	lon2 = angNormalize(lon2)
	switch {
	case lon12 > 0 && ((lon1 < 0 && lon2 >= 0) || (lon1 > 0 && lon2 == 0)):
		return 1
	case lon12 < 0 && lon1 >= 0 && lon2 < 0:
		return -1
	default:
		return 0
	}
}

// transitdirect is the edge flavor of transit: lon2 arrives unrolled from
// the direct solver, so the crossing count falls out of which 360° band
// each longitude lies in.
func transitdirect(lon1, lon2 float64) int {
	lon1 = math.Remainder(lon1, 720)
	lon2 = math.Remainder(lon2, 720)
	u, v := 0, 0
	if lon2 <= 0 && lon2 > -360 {
		u = 1
	}
	if lon1 <= 0 && lon1 > -360 {
		v = 1
	}
	return u - v
}

func geodPolygonAddPoint(g *geodGeodesic, p *geodPolygon, lat, lon float64) {
	if p.num == 0 {
		p.lat0 = lat
		p.lon0 = lon
	} else {
		_, s12, _, _, _, _, _, _, _, gS12 := g.genInverse(
			p.lat1, p.lon1, lat, lon, p.mask)
		p.perimetersum.add(s12)
		if !p.polyline {
			p.areasum.add(gS12)
			p.crossings += transit(p.lon1, lon)
		}
	}
	p.lat1 = lat
	p.lon1 = lon
	p.num++
}

func geodPolygonAddEdge(g *geodGeodesic, p *geodPolygon, azi, s float64) {
	if p.num == 0 {
		// An edge needs a starting point.
		return
	}
	_, lat, lon, _, _, _, _, _, gS12 := g.genDirect(
		p.lat1, p.lon1, azi, LongUnroll, s, p.mask)
	p.perimetersum.add(s)
	if !p.polyline {
		p.areasum.add(gS12)
		p.crossings += transitdirect(p.lon1, lon)
	}
	p.lat1 = lat
	p.lon1 = lon
	p.num++
}

// areaReduce converts the accumulated clockwise-positive spherical-excess
// sum into the requested area convention. With reverse unset,
// counter-clockwise traversal counts positive. With sign set the result is
// signed in (-area0/2, area0/2]; otherwise it is the area of the enclosed
// region in [0, area0), i.e. the rest of the earth when the polygon was
// wound the "wrong" way.
func areaReduce(acc accumulator, area0 float64, crossings int,
	reverse, sign bool) float64 {
	acc.remainder(area0)
	if crossings&1 != 0 {
		if acc.sum() < 0 {
			acc.add(area0 / 2)
		} else {
			acc.add(-area0 / 2)
		}
	}
	if !reverse {
		acc.negate()
	}
	if sign {
		if acc.sum() > area0/2 {
			acc.add(-area0)
		} else if acc.sum() <= -area0/2 {
			acc.add(area0)
		}
	} else {
		if acc.sum() >= area0 {
			acc.add(-area0)
		} else if acc.sum() < 0 {
			acc.add(area0)
		}
	}
	return 0 + acc.sum()
}

func geodPolygonCompute(g *geodGeodesic, p *geodPolygon,
	reverse, sign bool, area, perimeter *float64) int {
	if p.num < 2 {
		assign(perimeter, 0)
		if !p.polyline {
			assign(area, 0)
		}
		return p.num
	}
	if p.polyline {
		assign(perimeter, p.perimetersum.sum())
		return p.num
	}
	// Close the polygon with the implicit edge back to the first vertex,
	// without mutating the accumulated state.
	_, s12, _, _, _, _, _, _, _, gS12 := g.genInverse(
		p.lat1, p.lon1, p.lat0, p.lon0, p.mask)
	assign(perimeter, p.perimetersum.sumWith(s12))
	tempsum := p.areasum
	tempsum.add(gS12)
	crossings := p.crossings + transit(p.lon1, p.lon0)
	assign(area, areaReduce(tempsum, 4*math.Pi*g.c2, crossings, reverse, sign))
	return p.num
}

func geodPolygonTestPoint(g *geodGeodesic, p *geodPolygon, lat, lon float64,
	reverse, sign bool, area, perimeter *float64) int {
	// Checkpoint the running sums, apply the hypothetical vertex, and
	// compute on the copy; the caller's accumulator is untouched.
	t := *p
	geodPolygonAddPoint(g, &t, lat, lon)
	return geodPolygonCompute(g, &t, reverse, sign, area, perimeter)
}

func geodPolygonTestEdge(g *geodGeodesic, p *geodPolygon, azi, s float64,
	reverse, sign bool, area, perimeter *float64) int {
	if p.num == 0 {
		// An edge needs a starting point.
		assign(perimeter, math.NaN())
		if !p.polyline {
			assign(area, math.NaN())
		}
		return 0
	}
	t := *p
	geodPolygonAddEdge(g, &t, azi, s)
	return geodPolygonCompute(g, &t, reverse, sign, area, perimeter)
}
