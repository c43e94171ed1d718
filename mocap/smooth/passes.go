package smooth

import (
	"fmt"

	"github.com/cwbudde/algo-mocap/mocap"
)

// markerDims are the marker components the marker pass filters. Z is left
// as recorded.
var markerDims = [...]int{mocap.X, mocap.Y}

var axisNames = [...]string{"X", "Y", "Z"}

// FilterMarkers filters the X and Y components of every marker with f and
// writes them back narrowed to the grid precision. Z is never touched. It
// returns the number of series written and stops at the first error.
func FilterMarkers(s *mocap.Session, f Filter) (int, error) {
	g := s.Markers
	labels := g.Labels()
	n := 0
	for m := 0; m < g.Markers(); m++ {
		for _, dim := range markerDims {
			filtered, err := f.Bidirectional(g.Column(m, dim))
			if err != nil {
				return n, fmt.Errorf("filter marker %q %s: %w", labels[m], axisNames[dim], err)
			}
			if err := g.SetColumn(m, dim, filtered); err != nil {
				return n, fmt.Errorf("write marker %q %s: %w", labels[m], axisNames[dim], err)
			}
			n++
		}
	}
	return n, nil
}

// FilterForces filters every analog channel referenced by a force platform
// with f. Unmapped slots (channel 0) are skipped. A channel referenced by
// several platforms is filtered once per reference. It returns the number
// of series written and stops at the first error.
func FilterForces(s *mocap.Session, f Filter) (int, error) {
	g := s.Analog
	n := 0
	for p, platform := range s.Platforms {
		for _, channel := range platform.Channels {
			if channel == 0 {
				continue
			}
			column := channel - 1
			if column < 0 || column >= g.Channels() {
				return n, fmt.Errorf("force platform %d channel %d: %w", p+1, channel,
					&mocap.GridShapeError{Domain: "analog", Column: column, Want: -1})
			}
			filtered, err := f.Bidirectional(g.Column(column))
			if err != nil {
				return n, fmt.Errorf("filter force platform %d channel %d: %w", p+1, channel, err)
			}
			if err := g.SetColumn(column, filtered); err != nil {
				return n, fmt.Errorf("write force platform %d channel %d: %w", p+1, channel, err)
			}
			n++
		}
	}
	return n, nil
}

// FilterAnalog filters every analog channel that no force platform owns.
// Ownership is checked with the 0-based column index i, while FilterForces
// and the exports address channels 1-based. Column indices above
// MaxAnalogChannelIndex abort the pass with a ConfigurationError; columns
// before it are already filtered at that point. It returns the number of
// series written and stops at the first error.
func FilterAnalog(s *mocap.Session, f Filter) (int, error) {
	g := s.Analog
	n := 0
	for i := 0; i < g.Channels(); i++ {
		if i > MaxAnalogChannelIndex {
			return n, &ConfigurationError{Msg: invalidChannelMsg}
		}
		if mocap.IsForceChannel(s, i) {
			continue
		}
		filtered, err := f.Bidirectional(g.Column(i))
		if err != nil {
			return n, fmt.Errorf("filter analog channel %d (%s): %w", i+1, g.Label(i), err)
		}
		if err := g.SetColumn(i, filtered); err != nil {
			return n, fmt.Errorf("write analog channel %d (%s): %w", i+1, g.Label(i), err)
		}
		n++
	}
	return n, nil
}
