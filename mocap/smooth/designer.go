package smooth

import "github.com/cwbudde/algo-mocap/dsp/filter/zerophase"

// Filter applies a designed low-pass filter forward and backward to one
// series and returns the filtered copy.
type Filter interface {
	Bidirectional(series []float64) ([]float64, error)
}

// Designer builds a Filter for an order, sample rate and cutoff.
type Designer func(order int, sampleRate, cutoffHz float64) (Filter, error)

// ZeroPhaseDesigner designs Butterworth filters with dsp/filter/zerophase.
func ZeroPhaseDesigner(order int, sampleRate, cutoffHz float64) (Filter, error) {
	f, err := zerophase.New(order, sampleRate, cutoffHz)
	if err != nil {
		return nil, err
	}
	return f, nil
}
