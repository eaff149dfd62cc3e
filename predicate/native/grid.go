package native

import (
	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/geom"
	"github.com/katalvlaran/vorocel/site"
)

// Grid is an n_bins x n_bins bucket grid over [-far,+far]^2. Each bucket
// holds every face registered in it; FindFace returns the first live one in
// the query point's bucket, falling back to a linear scan of every
// registered face if the bucket is empty (e.g. a query right at the frame
// boundary, or a degenerate single-bucket grid).
type Grid struct {
	far    float64
	nBins  int
	bins   [][]dcel.FaceID
	allReg []dcel.FaceID
}

// NewGrid constructs a Grid covering [-far,+far]^2 with nBins buckets per
// axis. nBins < 1 is clamped to 1.
func NewGrid(far float64, nBins int) *Grid {
	if nBins < 1 {
		nBins = 1
	}
	return &Grid{
		far:   far,
		nBins: nBins,
		bins:  make([][]dcel.FaceID, nBins*nBins),
	}
}

func (idx *Grid) bucketOf(p geom.Point) int {
	norm := func(v float64) int {
		b := int((v + idx.far) / (2 * idx.far) * float64(idx.nBins))
		if b < 0 {
			b = 0
		}
		if b >= idx.nBins {
			b = idx.nBins - 1
		}
		return b
	}
	bx, by := norm(p.X), norm(p.Y)
	return by*idx.nBins + bx
}

// AddFace implements predicate.SpatialIndex.
func (idx *Grid) AddFace(g *dcel.Graph, f dcel.FaceID) {
	p, ok := idx.representativePoint(g, f)
	if !ok {
		idx.allReg = append(idx.allReg, f)
		return
	}
	b := idx.bucketOf(p)
	idx.bins[b] = append(idx.bins[b], f)
	idx.allReg = append(idx.allReg, f)
}

// FindFace implements predicate.SpatialIndex.
func (idx *Grid) FindFace(g *dcel.Graph, p geom.Point) dcel.FaceID {
	b := idx.bucketOf(p)
	for _, f := range idx.bins[b] {
		if _, err := g.Face(f); err == nil {
			return f
		}
	}
	for _, f := range idx.allReg {
		if _, err := g.Face(f); err == nil {
			return f
		}
	}
	return dcel.NilFace
}

// representativePoint returns the site's own point (a PointSite) or, for a
// LineSite face, the segment midpoint, as the coordinate to bucket the face
// under.
func (idx *Grid) representativePoint(g *dcel.Graph, f dcel.FaceID) (geom.Point, bool) {
	face, err := g.Face(f)
	if err != nil || face.Site == nil {
		return geom.Point{}, false
	}
	switch s := face.Site.(type) {
	case *site.PointSite:
		return s.P, true
	case *site.LineSite:
		return s.A.Add(s.B).Mult(0.5), true
	default:
		return geom.Point{}, false
	}
}
