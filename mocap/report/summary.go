package report

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-mocap/mocap"
)

// SeriesStats holds descriptive statistics of one series.
type SeriesStats struct {
	Label  string
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64
}

// PlatformInfo describes one force platform.
type PlatformInfo struct {
	Number   int
	Type     int
	Channels []int
	Origin   [3]float64
	Corners  [4][3]float64
}

// Summary is everything the info command prints about a session.
type Summary struct {
	Frames        int
	FirstFrame    int
	MarkerRate    float64
	AnalogRate    float64
	AnalogSamples int
	Units         string

	MarkerLabels []string
	AnalogLabels []string
	// ForceChannels are the distinct 1-based channels owned by platforms.
	ForceChannels []int
	Platforms     []PlatformInfo

	// MarkerStats holds X, Y and Z statistics per marker, labelled
	// "<marker>.<axis>".
	MarkerStats []SeriesStats
	AnalogStats []SeriesStats
}

// Describe summarizes s. Statistics are omitted for empty grids.
func Describe(s *mocap.Session) Summary {
	sum := Summary{
		Frames:        s.Markers.Frames(),
		FirstFrame:    s.FirstFrame,
		MarkerRate:    s.MarkerRate,
		AnalogRate:    s.AnalogRate(),
		AnalogSamples: s.Analog.Samples(),
		Units:         s.Units,
		MarkerLabels:  s.Markers.Labels(),
		AnalogLabels:  s.Analog.Labels(),
		ForceChannels: mocap.ForceChannels(s),
	}

	for i, p := range s.Platforms {
		sum.Platforms = append(sum.Platforms, PlatformInfo{
			Number:   i + 1,
			Type:     p.Type,
			Channels: append([]int(nil), p.Channels...),
			Origin:   p.Origin,
			Corners:  p.Corners,
		})
	}

	if s.Markers.Frames() > 0 {
		for m, label := range sum.MarkerLabels {
			for dim, axis := range [...]string{"X", "Y", "Z"} {
				sum.MarkerStats = append(sum.MarkerStats, Stats(label+"."+axis, s.Markers.Column(m, dim)))
			}
		}
	}
	if s.Analog.Samples() > 0 {
		for c, label := range sum.AnalogLabels {
			sum.AnalogStats = append(sum.AnalogStats, Stats(label, s.Analog.Column(c)))
		}
	}
	return sum
}

// Stats computes the statistics of a non-empty series. The standard
// deviation is the unbiased sample estimate and zero for one sample.
func Stats(label string, x []float64) SeriesStats {
	st := SeriesStats{Label: label}
	if len(x) == 0 {
		return st
	}
	st.Min = floats.Min(x)
	st.Max = floats.Max(x)
	st.Mean = stat.Mean(x, nil)
	if len(x) > 1 {
		st.StdDev = stat.StdDev(x, nil)
	}
	return st
}
