package engine_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/vorocel/engine"
)

func TestNew_PanicsOnNonPositiveFarRadius(t *testing.T) {
	require.Panics(t, func() { engine.New(0, 8) })
	require.Panics(t, func() { engine.New(-1, 8) })
}

func TestWithFarMultiplier_PanicsBelowOne(t *testing.T) {
	require.Panics(t, func() {
		engine.New(100, 8, engine.WithFarMultiplier(0.5))
	})
}

func TestWithSolver_PanicsOnNil(t *testing.T) {
	require.Panics(t, func() {
		engine.New(100, 8, engine.WithSolver(nil))
	})
}

func TestNew_SeedsThreeFrameGeneratorsAsPointSites(t *testing.T) {
	e := engine.New(100, 8)
	require.Equal(t, 3, e.NumPointSites())
	require.Equal(t, 0, e.NumLineSites())
	require.NoError(t, e.Check())
}

func TestNew_FrameIsATriangulatedRingOfThreeFaces(t *testing.T) {
	e := engine.New(100, 8)
	g := e.Graph()
	// Origin + 3 outer vertices + 3 reference apex vertices, no insertions yet.
	require.Equal(t, 7, g.NumVertices())
	require.Equal(t, 3, g.NumFaces())
}
