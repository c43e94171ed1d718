package mocap

import "math"

// Session owns every signal of one recording. It is produced once by a
// reader, optionally filtered in place, and consumed once by a writer.
type Session struct {
	// MarkerRate is the marker frame rate in Hz.
	MarkerRate float64
	// Oversampling is the number of analog samples per marker frame.
	Oversampling int
	// FirstFrame is the 1-based number of the first recorded frame.
	FirstFrame int
	// Units is the length unit of marker positions, e.g. "mm".
	Units string

	Markers   *MarkerGrid
	Analog    *AnalogGrid
	Platforms []ForcePlatform
}

// AnalogRate returns the analog sample rate in Hz.
func (s *Session) AnalogRate() float64 {
	return AnalogSampleRate(s.MarkerRate, s.Oversampling)
}

// Validate checks the structural invariants every other package relies
// on. Errors match ErrInvalidSession.
func (s *Session) Validate() error {
	if s.Markers == nil || s.Analog == nil {
		return invalidf("marker and analog grids are required")
	}
	if !(s.MarkerRate > 0) || math.IsInf(s.MarkerRate, 0) {
		return invalidf("marker rate must be positive, got %g", s.MarkerRate)
	}
	if s.Oversampling < 1 {
		return invalidf("oversampling factor must be >= 1, got %d", s.Oversampling)
	}
	if s.Analog.Channels() > 0 {
		if want := s.Markers.Frames() * s.Oversampling; s.Analog.Samples() != want {
			return invalidf("analog samples %d != frames %d x oversampling %d",
				s.Analog.Samples(), s.Markers.Frames(), s.Oversampling)
		}
	}
	for i, p := range s.Platforms {
		if len(p.Channels) > MaxPlatformChannels {
			return invalidf("force platform %d lists %d channels, max %d", i+1, len(p.Channels), MaxPlatformChannels)
		}
		for _, c := range p.Channels {
			if c < 0 || c > s.Analog.Channels() {
				return invalidf("force platform %d references channel %d, have %d", i+1, c, s.Analog.Channels())
			}
		}
	}
	return nil
}
