package geodesic

// Capabilities select which quantities an Ellipsoid or Line computes.
//
// The low bits record which series coefficient tables a computation needs;
// the high bits are the user-visible outputs. Or capabilities together to
// request several outputs, e.g. Distance|Azimuth.
type Capabilities uint32

const (
	capC1  Capabilities = 1 << 0
	capC1p Capabilities = 1 << 1
	capC2  Capabilities = 1 << 2
	capC3  Capabilities = 1 << 3
	capC4  Capabilities = 1 << 4

	capAll  Capabilities = 0x1f
	outAll  Capabilities = 0x7f80
	outMask Capabilities = 0xff80 // Includes longUnroll

	// None selects the default capability set for a Line: position queries
	// by distance, computing latitude, longitude, and azimuth.
	None Capabilities = 0

	// Latitude of the second point. Always available; included here so a
	// capability set can be described completely.
	Latitude Capabilities = 1 << 7

	// Longitude of the second point.
	Longitude Capabilities = 1<<8 | capC3

	// Azimuth at the second point. Always available.
	Azimuth Capabilities = 1 << 9

	// Distance between the points.
	Distance Capabilities = 1<<10 | capC1

	// DistanceIn allows a Line position query to take a distance (rather
	// than only an arc length) as input.
	DistanceIn Capabilities = 1<<11 | capC1 | capC1p

	// ReducedLength is the derivative of the transverse separation of two
	// nearby geodesics with respect to the initial azimuth.
	ReducedLength Capabilities = 1<<12 | capC1 | capC2

	// GeodesicScale describes how a transverse displacement at one endpoint
	// maps to the other endpoint.
	GeodesicScale Capabilities = 1<<13 | capC1 | capC2

	// Area is the signed area between the geodesic segment and the equator.
	Area Capabilities = 1<<14 | capC4

	// Standard is the default for most operations.
	Standard Capabilities = Latitude | Longitude | Azimuth | Distance

	// All of the above.
	All Capabilities = outAll | capAll
)

// Has reports whether every output in want is included in c.
func (c Capabilities) Has(want Capabilities) bool {
	return c&want&outMask == want&outMask
}

// Flags modify how a general position or direct computation interprets its
// input and reports longitudes.
type Flags uint32

const (
	// NoFlags is the default behavior: the input is a true distance in
	// meters and longitudes are normalized to [-180,180].
	NoFlags Flags = 0

	// ArcMode means the input is an arc length on the auxiliary sphere in
	// degrees instead of a distance in meters.
	ArcMode Flags = 1 << 0

	// LongUnroll leaves the longitude unnormalized, so that it increases or
	// decreases monotonically along a line and records how many times the
	// geodesic has wrapped the earth.
	LongUnroll Flags = 1 << 15
)
