package predicate

import (
	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

// Solution is the result of positioning a new vertex on a bisector edge.
type Solution struct {
	// Point is the planar point where the new bisector meets the edge.
	Point geom.Point
	// K3 is the offset-side sign label the resulting vertex inherits.
	K3 int8
}

// Solver positions a new vertex on a bisector edge against an incoming
// site, and reports the residual of that placement.
type Solver interface {
	// Position returns the point where the bisector of the edge's two
	// defining sites meets the bisector of (either site, newSite), plus
	// the k3 label of the resulting vertex.
	Position(g *dcel.Graph, e dcel.EdgeID, newSite site.Site) (Solution, error)

	// DistError returns a residual measuring how well sol satisfies the
	// equidistance equations it was solved from; values above 1e-9 are
	// logged but never fatal.
	DistError(g *dcel.Graph, e dcel.EdgeID, sol Solution, newSite site.Site) float64
}

// InCirclePredicate evaluates the signed in-circle distance used to grow
// the delete tree and to rank the priority queue.
type InCirclePredicate interface {
	// InCircle returns a signed h for vertex q against generator and the
	// new site's apex point a; h < 0 means q lies inside the new site's
	// clearance disk (a deletion candidate). |h| ranks queue priority.
	InCircle(q, generator, apex geom.Point) float64
}

// SpatialIndex returns a good starting face for the seed search, and is
// told about every new site-carrying face so later queries can find it.
type SpatialIndex interface {
	// FindFace returns the face most likely to contain a seed vertex
	// whose in-circle predicate is negative for a query at p.
	FindFace(g *dcel.Graph, p geom.Point) dcel.FaceID

	// AddFace registers f (a freshly stitched point-site or line-site face)
	// with the index so future FindFace calls can return it.
	AddFace(g *dcel.Graph, f dcel.FaceID)
}
