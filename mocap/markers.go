package mocap

// Marker position components.
const (
	X = iota
	Y
	Z

	dims = 3
)

// MarkerGrid holds 3D marker positions for every frame in one contiguous
// buffer laid out frame-major: frame, marker, component.
type MarkerGrid struct {
	labels []string
	frames int
	data   []float32
}

// NewMarkerGrid allocates a zeroed grid for the given labels and frame
// count. Labels are copied and keep their order.
func NewMarkerGrid(labels []string, frames int) *MarkerGrid {
	if frames < 0 {
		frames = 0
	}
	return &MarkerGrid{
		labels: append([]string(nil), labels...),
		frames: frames,
		data:   make([]float32, frames*len(labels)*dims),
	}
}

// Frames returns the number of frames (rows).
func (g *MarkerGrid) Frames() int { return g.frames }

// Markers returns the number of markers (columns).
func (g *MarkerGrid) Markers() int { return len(g.labels) }

// Labels returns a copy of the marker labels in column order.
func (g *MarkerGrid) Labels() []string {
	return append([]string(nil), g.labels...)
}

// Index returns the column of the marker with the given label, or -1.
func (g *MarkerGrid) Index(label string) int {
	for i, l := range g.labels {
		if l == label {
			return i
		}
	}
	return -1
}

func (g *MarkerGrid) offset(frame, marker int) int {
	return (frame*len(g.labels) + marker) * dims
}

// At returns the position of marker in frame.
func (g *MarkerGrid) At(frame, marker int) [3]float32 {
	o := g.offset(frame, marker)
	return [3]float32{g.data[o], g.data[o+1], g.data[o+2]}
}

// Set stores the position of marker in frame.
func (g *MarkerGrid) Set(frame, marker int, pos [3]float32) {
	o := g.offset(frame, marker)
	copy(g.data[o:o+dims], pos[:])
}

// Column extracts one component of one marker across all frames, widened
// to float64.
func (g *MarkerGrid) Column(marker, dim int) []float64 {
	out := make([]float64, g.frames)
	for f := range out {
		out[f] = float64(g.data[g.offset(f, marker)+dim])
	}
	return out
}

// SetColumn overwrites one component of one marker in every frame with
// values narrowed to float32. len(values) must equal Frames(); otherwise
// nothing is written and a *GridShapeError is returned.
func (g *MarkerGrid) SetColumn(marker, dim int, values []float64) error {
	if marker < 0 || marker >= len(g.labels) || dim < 0 || dim >= dims {
		return &GridShapeError{Domain: "marker", Column: marker, Got: len(values), Want: -1}
	}
	if len(values) != g.frames {
		return &GridShapeError{Domain: "marker", Column: marker, Got: len(values), Want: g.frames}
	}
	for f, v := range values {
		g.data[g.offset(f, marker)+dim] = float32(v)
	}
	return nil
}
