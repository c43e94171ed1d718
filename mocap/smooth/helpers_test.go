package smooth

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-mocap/mocap"
)

// newSession builds a session whose cells hold distinct values.
func newSession(t *testing.T, markers, frames, channels, oversampling int, platforms ...mocap.ForcePlatform) *mocap.Session {
	t.Helper()

	labels := make([]string, markers)
	for i := range labels {
		labels[i] = fmt.Sprintf("M%d", i+1)
	}
	mg := mocap.NewMarkerGrid(labels, frames)
	for f := 0; f < frames; f++ {
		for m := 0; m < markers; m++ {
			ph := float64(f) / 10
			mg.Set(f, m, [3]float32{
				float32(100*m) + float32(10*math.Sin(ph)),
				float32(-50*m) + float32(5*math.Cos(ph)),
				float32(900 + m + f),
			})
		}
	}

	ag := mocap.NewAnalogGrid(nil, channels, frames*oversampling)
	for s := 0; s < ag.Samples(); s++ {
		for c := 0; c < channels; c++ {
			ag.Set(s, c, float64(c)+math.Sin(float64(s)/7))
		}
	}

	return &mocap.Session{
		MarkerRate:   100,
		Oversampling: oversampling,
		FirstFrame:   1,
		Units:        "mm",
		Markers:      mg,
		Analog:       ag,
		Platforms:    platforms,
	}
}

// snapshot copies every analog column.
func analogSnapshot(s *mocap.Session) [][]float64 {
	out := make([][]float64, s.Analog.Channels())
	for c := range out {
		out[c] = s.Analog.Column(c)
	}
	return out
}

// markerSnapshot copies every marker component, indexed [marker][dim].
func markerSnapshot(s *mocap.Session) [][3][]float64 {
	out := make([][3][]float64, s.Markers.Markers())
	for m := range out {
		for d := 0; d < 3; d++ {
			out[m][d] = s.Markers.Column(m, d)
		}
	}
	return out
}

var errBoom = errors.New("boom")

// offsetFilter adds a fixed offset to every sample so that filtered
// columns are easy to spot. It fails on call number failAt (1-based) and
// returns shortBy fewer samples than it received when shortBy > 0.
type offsetFilter struct {
	offset  float64
	calls   int
	failAt  int
	shortBy int
}

func (f *offsetFilter) Bidirectional(series []float64) ([]float64, error) {
	f.calls++
	if f.failAt > 0 && f.calls == f.failAt {
		return nil, errBoom
	}
	out := make([]float64, len(series)-f.shortBy)
	for i := range out {
		out[i] = series[i] + f.offset
	}
	return out, nil
}

// recordingDesigner records every design request and hands out
// offsetFilters, failing for the listed sample rates.
type recordingDesigner struct {
	rates   []float64
	failFor map[float64]bool
	filters []*offsetFilter
}

func (d *recordingDesigner) design(order int, sampleRate, cutoffHz float64) (Filter, error) {
	d.rates = append(d.rates, sampleRate)
	if d.failFor[sampleRate] {
		return nil, fmt.Errorf("design at %g Hz: %w", sampleRate, errBoom)
	}
	f := &offsetFilter{offset: 1}
	d.filters = append(d.filters, f)
	return f, nil
}
