package site

import "github.com/katalvlaran/vorocel/geom"

// Site is the tagged sum of PointSite and LineSite. A type switch on the
// concrete value is sufficient; no further dispatch machinery is needed.
type Site interface {
	// ApexPoint returns the foot of perpendicular from q onto the site
	// (for a PointSite, the site's own point regardless of q).
	ApexPoint(q geom.Point) geom.Point

	// InRegion reports whether q projects into the site's region (always
	// true for a PointSite; true only between the two endpoints for a
	// LineSite).
	InRegion(q geom.Point) bool

	// Coefficients returns the line equation a*x + b*y + c = 0 through
	// the site (for a PointSite, a degenerate all-zero line).
	Coefficients() (a, b, c float64)
}

// PointSite is an isolated point in the plane.
type PointSite struct {
	P geom.Point
}

// NewPointSite constructs a PointSite at p.
func NewPointSite(p geom.Point) *PointSite { return &PointSite{P: p} }

// ApexPoint always returns the site's own point.
func (s *PointSite) ApexPoint(_ geom.Point) geom.Point { return s.P }

// InRegion is always true for a point site.
func (s *PointSite) InRegion(_ geom.Point) bool { return true }

// Coefficients returns the zero line; a point site has no line equation.
func (s *PointSite) Coefficients() (a, b, c float64) { return 0, 0, 0 }

// LineSite is a directed straight segment A->B, offset to one side by K.
// K=+1 covers the left-hand offset face, K=-1 the right-hand one; the two
// faces of one inserted segment share the same A, B and opposite K.
type LineSite struct {
	A, B geom.Point
	K    int8
}

// NewLineSite constructs a LineSite from a to b with the given offset sign.
func NewLineSite(a, b geom.Point, k int8) *LineSite {
	return &LineSite{A: a, B: b, K: k}
}

// Dir returns the unit direction vector from A to B.
func (s *LineSite) Dir() geom.Point { return s.B.Sub(s.A).Normalize() }

// Normal returns the unit normal pointing towards the K=+1 offset side.
func (s *LineSite) Normal() geom.Point { return s.Dir().XYPerp() }

// Length returns the Euclidean length of the segment.
func (s *LineSite) Length() float64 { return s.A.Distance(s.B) }

// ApexPoint returns the foot of perpendicular from q onto the infinite line
// through A and B.
func (s *LineSite) ApexPoint(q geom.Point) geom.Point {
	d := s.Dir()
	t := q.Sub(s.A).Dot(d)
	return s.A.Add(d.Mult(t))
}

// InRegion reports whether q's projection onto the line falls strictly
// between A and B.
func (s *LineSite) InRegion(q geom.Point) bool {
	d := s.B.Sub(s.A)
	l2 := d.NormSq()
	if l2 == 0 {
		return false
	}
	t := q.Sub(s.A).Dot(d) / l2
	return t > 0 && t < 1
}

// Coefficients returns a, b, c for the line a*x + b*y + c = 0 through A, B,
// with (a,b) the unit normal so that distance-to-line is |a*x+b*y+c|.
func (s *LineSite) Coefficients() (a, b, c float64) {
	n := s.Normal()
	a, b = n.X, n.Y
	c = -(a*s.A.X + b*s.A.Y)
	return a, b, c
}
