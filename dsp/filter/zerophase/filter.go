package zerophase

import (
	"fmt"

	"github.com/cwbudde/algo-mocap/dsp/filter/biquad"
	"github.com/cwbudde/algo-mocap/dsp/filter/design/pass"
)

// Filter is a designed low-pass Butterworth cascade ready for zero-phase
// application. A Filter holds no per-series state and may be reused.
type Filter struct {
	order      int
	sampleRate float64
	cutoff     float64
	sections   []biquad.Coefficients
	padLen     int
}

// New designs a low-pass Butterworth filter of the given order.
//
// It fails with a *ConfigurationError when order < 1, when sampleRate or
// cutoffHz is not positive, or when cutoffHz is at or above the Nyquist
// frequency sampleRate/2.
func New(order int, sampleRate, cutoffHz float64) (*Filter, error) {
	if err := validate(order, sampleRate, cutoffHz); err != nil {
		return nil, err
	}

	sections := pass.ButterworthLP(cutoffHz, order, sampleRate)
	if len(sections) == 0 || !biquad.NewChain(sections).Stable() {
		return nil, &ConfigurationError{
			Field: "design",
			Msg:   fmt.Sprintf("no stable order-%d design at %g Hz for %g Hz", order, cutoffHz, sampleRate),
		}
	}

	return &Filter{
		order:      order,
		sampleRate: sampleRate,
		cutoff:     cutoffHz,
		sections:   sections,
		padLen:     padLength(sections),
	}, nil
}

// padLength mirrors the classic filtfilt choice of three times the number
// of filter taps. First-order sections contribute one tap less.
func padLength(sections []biquad.Coefficients) int {
	ntaps := 2*len(sections) + 1
	firstOrder := 0
	for _, s := range sections {
		if s.IsFirstOrder() {
			firstOrder++
		}
	}
	return 3 * (ntaps - firstOrder)
}

// Order returns the designed filter order.
func (f *Filter) Order() int { return f.order }

// SampleRate returns the sample rate in Hz the filter was designed for.
func (f *Filter) SampleRate() float64 { return f.sampleRate }

// Cutoff returns the -3 dB frequency of a single pass in Hz.
func (f *Filter) Cutoff() float64 { return f.cutoff }

// PadLen returns the number of samples added at each end of a series
// before filtering. Series of PadLen() samples or fewer are padded with
// len(series)-1 samples instead.
func (f *Filter) PadLen() int { return f.padLen }

// Sections returns a copy of the biquad coefficients of the cascade.
func (f *Filter) Sections() []biquad.Coefficients {
	return append([]biquad.Coefficients(nil), f.sections...)
}

// Bidirectional filters series forward and then backward and returns the
// result in a new slice of the same length. The input is not modified.
// Series shorter than two samples are returned as a copy. The error is
// always nil; it keeps Bidirectional interchangeable with other series
// filters.
func (f *Filter) Bidirectional(series []float64) ([]float64, error) {
	n := len(series)
	if n < 2 {
		return append(make([]float64, 0, n), series...), nil
	}
	pad := min(f.padLen, n-1)

	ext := oddExtend(series, pad)
	chain := biquad.NewChain(f.sections)

	chain.PrimeSteadyState(ext[0])
	chain.ProcessBlock(ext)

	chain.PrimeSteadyState(ext[len(ext)-1])
	chain.ProcessBlockReverse(ext)

	out := make([]float64, n)
	copy(out, ext[pad:pad+n])
	return out, nil
}

// oddExtend returns x extended by pad samples at both ends using odd
// (point) symmetry about the first and last samples.
func oddExtend(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)

	first, last := x[0], x[n-1]
	for i := 0; i < pad; i++ {
		ext[i] = 2*first - x[pad-i]
		ext[pad+n+i] = 2*last - x[n-2-i]
	}
	copy(ext[pad:], x)

	return ext
}
