package mocap

import "testing"

// newTestSession builds a session with deterministic, distinct values in
// every cell so that accidental writes are visible.
func newTestSession(t *testing.T, markers []string, frames, channels, oversampling int, platforms ...ForcePlatform) *Session {
	t.Helper()

	mg := NewMarkerGrid(markers, frames)
	for f := 0; f < frames; f++ {
		for m := range markers {
			mg.Set(f, m, [3]float32{float32(f + m), float32(2*f - m), float32(1000 + f)})
		}
	}

	ag := NewAnalogGrid(nil, channels, frames*oversampling)
	for s := 0; s < ag.Samples(); s++ {
		for c := 0; c < channels; c++ {
			ag.Set(s, c, float64(c*1000+s))
		}
	}

	return &Session{
		MarkerRate:   100,
		Oversampling: oversampling,
		FirstFrame:   1,
		Units:        "mm",
		Markers:      mg,
		Analog:       ag,
		Platforms:    platforms,
	}
}
