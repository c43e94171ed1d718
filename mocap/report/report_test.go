package report

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-mocap/mocap"
)

func newSession(t *testing.T) *mocap.Session {
	t.Helper()

	mg := mocap.NewMarkerGrid([]string{"KNEE"}, 4)
	for f := 0; f < 4; f++ {
		mg.Set(f, 0, [3]float32{float32(f), 10, float32(-f)})
	}
	ag := mocap.NewAnalogGrid([]string{"Fz", "EMG"}, 2, 8)
	for i := 0; i < 8; i++ {
		ag.Set(i, 0, 100)
		ag.Set(i, 1, float64(i))
	}
	return &mocap.Session{
		MarkerRate:   50,
		Oversampling: 2,
		FirstFrame:   3,
		Units:        "mm",
		Markers:      mg,
		Analog:       ag,
		Platforms: []mocap.ForcePlatform{
			{Type: 2, Channels: []int{1, 0}},
			{Type: 4, Channels: []int{1}},
		},
	}
}

func TestDescribe(t *testing.T) {
	t.Parallel()

	sum := Describe(newSession(t))

	assert.Equal(t, 4, sum.Frames)
	assert.Equal(t, 100.0, sum.AnalogRate)
	assert.Equal(t, 8, sum.AnalogSamples)
	assert.Equal(t, []string{"KNEE"}, sum.MarkerLabels)
	assert.Equal(t, []int{1}, sum.ForceChannels)
	require.Len(t, sum.Platforms, 2)
	assert.Equal(t, 2, sum.Platforms[1].Number)
	assert.Equal(t, 4, sum.Platforms[1].Type)

	require.Len(t, sum.MarkerStats, 3)
	x := sum.MarkerStats[0]
	assert.Equal(t, "KNEE.X", x.Label)
	assert.Equal(t, 0.0, x.Min)
	assert.Equal(t, 3.0, x.Max)
	assert.InDelta(t, 1.5, x.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(5.0/3.0), x.StdDev, 1e-12)
	assert.Equal(t, "KNEE.Z", sum.MarkerStats[2].Label)

	require.Len(t, sum.AnalogStats, 2)
	assert.Equal(t, SeriesStats{Label: "Fz", Min: 100, Max: 100, Mean: 100}, sum.AnalogStats[0])
}

func TestStats_ShortSeries(t *testing.T) {
	t.Parallel()

	assert.Equal(t, SeriesStats{Label: "a"}, Stats("a", nil))
	assert.Equal(t, SeriesStats{Label: "b", Min: 2, Max: 2, Mean: 2}, Stats("b", []float64{2}))
}

func TestSummaryPrint(t *testing.T) {
	t.Parallel()

	sum := Describe(newSession(t))

	var general bytes.Buffer
	require.NoError(t, sum.Print(&general, 0))
	assert.Contains(t, general.String(), "== General Information ==")
	assert.NotContains(t, general.String(), "-- Markers --")

	var all bytes.Buffer
	require.NoError(t, sum.Print(&all, SectionAll))
	out := all.String()
	assert.Contains(t, out, "-- Markers --")
	assert.Contains(t, out, "-- Forces --")
	assert.Contains(t, out, "-- Analog --")
	assert.Contains(t, out, `["KNEE"]`)
	assert.Contains(t, out, "type 4, channels [1]")
}

func TestPlotComparison(t *testing.T) {
	t.Parallel()

	raw := []float64{0, 1, 0, 1, 0, 1}
	filtered := []float64{0.4, 0.5, 0.5, 0.5, 0.5, 0.6}
	path := filepath.Join(t.TempDir(), "cmp.png")

	require.NoError(t, PlotComparison(path, "KNEE X", 100, raw, filtered))
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestPlotComparison_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.ErrorIs(t, PlotComparison(filepath.Join(dir, "a.png"), "", 100, []float64{1}, nil), ErrSeriesMismatch)
	require.ErrorIs(t, PlotComparison(filepath.Join(dir, "b.png"), "", 100, nil, nil), ErrSeriesMismatch)
	require.Error(t, PlotComparison(filepath.Join(dir, "c.png"), "", 0, []float64{1}, []float64{1}))
}
