package engine_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/dcel"
	"github.com/katalvlaran/vorocel/engine"
	"github.com/katalvlaran/vorocel/geom"
)

func twoPointSites(t *testing.T, e *engine.Engine) (int, int) {
	t.Helper()
	idx0, err := e.InsertPointSite(geom.Pt(1, 1), 0)
	require.NoError(t, err)
	idx1, err := e.InsertPointSite(geom.Pt(-1, -1), 0)
	require.NoError(t, err)
	return idx0, idx1
}

func TestInsertLineSite_BetweenTwoExistingPointSites(t *testing.T) {
	e := engine.New(100, 8)
	idx0, idx1 := twoPointSites(t, e)

	ok, err := e.InsertLineSite(idx0, idx1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, e.NumLineSites())
	require.NoError(t, e.Check())
}

// TestInsertLineSite_SplitsEndpointCells verifies the two endpoints'
// point-site cells are genuinely carved into two faces each (a fresh K=+1
// face and the original face, both carrying the point site), not left as two
// untouched polygons floating beside a disconnected line-site rig.
func TestInsertLineSite_SplitsEndpointCells(t *testing.T) {
	e := engine.New(100, 8)
	idx0, idx1 := twoPointSites(t, e)

	facesBefore := e.Graph().NumFaces()
	ok, err := e.InsertLineSite(idx0, idx1, 0)
	require.NoError(t, err)
	require.True(t, ok)

	// One line face per side (positive, negative) plus one fresh remainder
	// face per endpoint's split cell: four new faces, all stitched into the
	// existing graph rather than appended as an isolated component.
	require.Equal(t, facesBefore+4, e.Graph().NumFaces())
	require.NoError(t, e.Check())
}

// TestInsertLineSite_SharedEndpointMerged verifies that a second segment
// reusing an already-consumed endpoint succeeds: the shared point gets a
// second, independent null-face triangle spliced onto its existing ENDPOINT
// vertex (mergeNullFace) rather than being rejected.
func TestInsertLineSite_SharedEndpointMerged(t *testing.T) {
	e := engine.New(100, 8)
	idx0, err := e.InsertPointSite(geom.Pt(1, 1), 0)
	require.NoError(t, err)
	idx1, err := e.InsertPointSite(geom.Pt(-1, -1), 0)
	require.NoError(t, err)
	idx2, err := e.InsertPointSite(geom.Pt(1, -1), 0)
	require.NoError(t, err)

	ok, err := e.InsertLineSite(idx0, idx1, 0)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = e.InsertLineSite(idx0, idx2, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 2, e.NumLineSites())
	require.NoError(t, e.Check())
}

// TestInsertLineSite_RecarvesThirdSiteCell covers the case where a segment's
// interior (not just its endpoints) passes close enough to a third,
// previously-inserted site to steal part of its cell: recarveInterior should
// leave behind a SPLIT vertex marking the re-carved boundary.
func TestInsertLineSite_RecarvesThirdSiteCell(t *testing.T) {
	e := engine.New(100, 8)
	idx0, err := e.InsertPointSite(geom.Pt(-1, 0), 0)
	require.NoError(t, err)
	idx1, err := e.InsertPointSite(geom.Pt(1, 0), 0)
	require.NoError(t, err)
	_, err = e.InsertPointSite(geom.Pt(0, 0.01), 0)
	require.NoError(t, err)

	ok, err := e.InsertLineSite(idx0, idx1, 0)
	require.NoError(t, err)
	require.True(t, ok)
	require.NoError(t, e.Check())

	foundSplit := false
	for _, id := range e.Graph().AllVertices() {
		v, err := e.Graph().Vertex(id)
		if err != nil {
			continue
		}
		if v.Kind == dcel.SPLIT {
			foundSplit = true
			break
		}
	}
	require.True(t, foundSplit, "expected a SPLIT vertex from the mid-segment re-carving pass")
}

func TestInsertLineSite_UnknownIndexRejected(t *testing.T) {
	e := engine.New(100, 8)
	idx0, _ := twoPointSites(t, e)

	_, err := e.InsertLineSite(idx0, 99, 0)
	require.True(t, errors.Is(err, engine.ErrUnknownSiteIndex))
}

func TestInsertLineSite_DegenerateSegmentRejected(t *testing.T) {
	e := engine.New(100, 8)
	idx0, _ := twoPointSites(t, e)

	_, err := e.InsertLineSite(idx0, idx0, 0)
	require.True(t, errors.Is(err, engine.ErrDegenerateSegment))
}

func TestInsertLineSite_StepModeStopsEarly(t *testing.T) {
	for step := 1; step <= 4; step++ {
		e := engine.New(100, 8)
		idx0, idx1 := twoPointSites(t, e)
		ok, err := e.InsertLineSite(idx0, idx1, step)
		require.NoError(t, err)
		require.False(t, ok)
		require.Equal(t, 0, e.NumLineSites())
	}
}
