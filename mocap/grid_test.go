package mocap

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkerGrid_Shape(t *testing.T) {
	t.Parallel()

	g := NewMarkerGrid([]string{"LASI", "RASI", "LPSI"}, 4)
	assert.Equal(t, 4, g.Frames())
	assert.Equal(t, 3, g.Markers())
	assert.Equal(t, []string{"LASI", "RASI", "LPSI"}, g.Labels())
	assert.Equal(t, 1, g.Index("RASI"))
	assert.Equal(t, -1, g.Index("missing"))

	labels := g.Labels()
	labels[0] = "changed"
	assert.Equal(t, "LASI", g.Labels()[0], "Labels must return a copy")
}

func TestMarkerGrid_ColumnRoundTrip(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, []string{"A", "B"}, 5, 0, 1)
	g := s.Markers

	col := g.Column(1, Y)
	assert.Equal(t, []float64{-1, 1, 3, 5, 7}, col)

	require.NoError(t, g.SetColumn(1, Y, []float64{0.5, 1.5, 2.5, 3.5, 4.5}))
	assert.Equal(t, []float64{0.5, 1.5, 2.5, 3.5, 4.5}, g.Column(1, Y))

	// Other components and markers are untouched.
	assert.Equal(t, [3]float32{1, 0.5, 1000}, g.At(0, 1))
	assert.Equal(t, [3]float32{0, 0, 1000}, g.At(0, 0))
}

func TestMarkerGrid_SetColumnNarrowsToFloat32(t *testing.T) {
	t.Parallel()

	g := NewMarkerGrid([]string{"A"}, 1)
	require.NoError(t, g.SetColumn(0, X, []float64{0.1}))
	assert.Equal(t, float32(0.1), g.At(0, 0)[X])
}

func TestMarkerGrid_SetColumnShapeMismatch(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, []string{"A"}, 3, 0, 1)
	before := s.Markers.Column(0, X)

	err := s.Markers.SetColumn(0, X, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrGridShape))

	var shapeErr *GridShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, GridShapeError{Domain: "marker", Column: 0, Got: 2, Want: 3}, *shapeErr)
	assert.Equal(t, before, s.Markers.Column(0, X), "a rejected write must not touch the grid")

	assert.ErrorIs(t, s.Markers.SetColumn(0, 3, make([]float64, 3)), ErrGridShape)
	assert.ErrorIs(t, s.Markers.SetColumn(1, X, make([]float64, 3)), ErrGridShape)
}

func TestAnalogGrid_DefaultLabels(t *testing.T) {
	t.Parallel()

	g := NewAnalogGrid([]string{"Fx1", ""}, 3, 10)
	if diff := cmp.Diff([]string{"Fx1", "Channel_2", "Channel_3"}, g.Labels()); diff != "" {
		t.Fatalf("labels mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 10, g.Samples())
	assert.Equal(t, 3, g.Channels())
}

func TestAnalogGrid_SetColumn(t *testing.T) {
	t.Parallel()

	s := newTestSession(t, nil, 2, 3, 2)
	g := s.Analog

	require.NoError(t, g.SetColumn(1, []float64{-1, -2, -3, -4}))
	assert.Equal(t, []float64{-1, -2, -3, -4}, g.Column(1))
	assert.Equal(t, []float64{0, 1, 2, 3}, g.Column(0))
	assert.Equal(t, []float64{2000, 2001, 2002, 2003}, g.Column(2))

	err := g.SetColumn(1, []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrGridShape)
	assert.EqualError(t, err, "mocap: analog column 1: got 3 values, want 4")
	assert.EqualError(t, g.SetColumn(3, nil), "mocap: analog column 3 out of range")
}
