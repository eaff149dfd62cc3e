package native

import "github.com/katalvlaran/vorocel/geom"

// InCircle is the clearance-disk in-circle predicate: a vertex q was
// created equidistant from its incident sites at distance q.Distance(generator);
// that distance is q's clearance radius. InCircle compares it against q's
// distance to the new site's apex point. A negative result means q now sits
// strictly closer to the new site than to its own generator, i.e. q falls
// inside the new site's clearance disk and is a deletion candidate.
type InCircle struct{}

// InCircle implements predicate.InCirclePredicate.
func (InCircle) InCircle(q, generator, apex geom.Point) float64 {
	return q.Distance(apex) - q.Distance(generator)
}
