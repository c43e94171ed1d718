package mocap

import "fmt"

// AnalogGrid holds one scalar per channel for every analog sample in one
// contiguous buffer laid out sample-major.
type AnalogGrid struct {
	labels  []string
	samples int
	data    []float64
}

// NewAnalogGrid allocates a zeroed grid. Missing labels are filled in as
// "Channel_<n>" with 1-based n.
func NewAnalogGrid(labels []string, channels, samples int) *AnalogGrid {
	if channels < 0 {
		channels = 0
	}
	if samples < 0 {
		samples = 0
	}
	l := make([]string, channels)
	for i := range l {
		if i < len(labels) && labels[i] != "" {
			l[i] = labels[i]
		} else {
			l[i] = fmt.Sprintf("Channel_%d", i+1)
		}
	}
	return &AnalogGrid{
		labels:  l,
		samples: samples,
		data:    make([]float64, channels*samples),
	}
}

// Samples returns the number of analog samples (rows).
func (g *AnalogGrid) Samples() int { return g.samples }

// Channels returns the number of channels (columns).
func (g *AnalogGrid) Channels() int { return len(g.labels) }

// Labels returns a copy of the channel labels in column order.
func (g *AnalogGrid) Labels() []string {
	return append([]string(nil), g.labels...)
}

// Label returns the label of the 0-based column.
func (g *AnalogGrid) Label(column int) string { return g.labels[column] }

// At returns the value of the 0-based column at sample.
func (g *AnalogGrid) At(sample, column int) float64 {
	return g.data[sample*len(g.labels)+column]
}

// Set stores the value of the 0-based column at sample.
func (g *AnalogGrid) Set(sample, column int, v float64) {
	g.data[sample*len(g.labels)+column] = v
}

// Column extracts the 0-based column across all samples.
func (g *AnalogGrid) Column(column int) []float64 {
	out := make([]float64, g.samples)
	stride := len(g.labels)
	for s := range out {
		out[s] = g.data[s*stride+column]
	}
	return out
}

// SetColumn overwrites the 0-based column. len(values) must equal
// Samples(); otherwise nothing is written and a *GridShapeError is
// returned.
func (g *AnalogGrid) SetColumn(column int, values []float64) error {
	if column < 0 || column >= len(g.labels) {
		return &GridShapeError{Domain: "analog", Column: column, Got: len(values), Want: -1}
	}
	if len(values) != g.samples {
		return &GridShapeError{Domain: "analog", Column: column, Got: len(values), Want: g.samples}
	}
	stride := len(g.labels)
	for s, v := range values {
		g.data[s*stride+column] = v
	}
	return nil
}
