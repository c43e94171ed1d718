package spectrum

import (
	"fmt"
	"math"
	"sort"
	"sync"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/cwbudde/algo-mocap/dsp/window"
)

// minFFTSize keeps very short series on a plan size every backend supports.
const minFFTSize = 16

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	need := 2 * n
	if cap(buf.data) < need {
		buf.data = make([]float64, need)
	} else {
		buf.data = buf.data[:need]
	}
	return buf.data[:n], buf.data[n:need], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// Power returns |X[k]|^2 for each complex spectrum bin.
//
// Scratch buffers are pooled internally, so in steady state this allocates
// only the output slice.
func Power(in []complex128) []float64 {
	if len(in) == 0 {
		return nil
	}

	out := make([]float64, len(in))
	re, im, buf := getScratch(len(in))

	for i, c := range in {
		re[i] = real(c)
		im[i] = imag(c)
	}

	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// Option configures spectral estimation.
type Option func(*config)

type config struct {
	window window.Type
}

// WithWindow tapers the series with the given window before the FFT. The
// default is the rectangular window.
func WithWindow(t window.Type) Option {
	return func(c *config) {
		c.window = t
	}
}

// PowerSpectrum returns the one-sided power spectrum of series sampled at
// sampleRate. The mean is removed, the series is tapered and zero-padded
// to a power of two. freqs[k] is the centre of bin k in Hz, from 0 up to
// Nyquist.
//
// Power is scaled by the window's power gain so that the bins sum to the
// mean square of the mean-removed series.
func PowerSpectrum(series []float64, sampleRate float64, opts ...Option) (freqs, power []float64, err error) {
	if len(series) < 2 {
		return nil, nil, ErrEmptyInput
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return nil, nil, fmt.Errorf("%w: %g", ErrInvalidSampleRate, sampleRate)
	}

	n := nextPowerOf2(len(series))
	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, nil, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	cfg := config{window: window.TypeRectangular}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	mean := stat.Mean(series, nil)
	x := make([]float64, len(series))
	for i, v := range series {
		x[i] = v - mean
	}
	coeffs := window.Generate(cfg.window, len(x))
	gain, err := window.PowerGain(coeffs)
	if err != nil || gain == 0 {
		return nil, nil, fmt.Errorf("spectrum: unusable %s window for %d samples", cfg.window, len(x))
	}
	vecmath.MulBlockInPlace(x, coeffs)

	in := make([]complex128, n)
	for i, v := range x {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return nil, nil, fmt.Errorf("spectrum: forward FFT failed: %w", err)
	}

	bins := n/2 + 1
	power = Power(out[:bins])
	// Fold the negative frequencies onto their positive twins. DC and
	// Nyquist have none.
	for k := 1; k < bins-1; k++ {
		power[k] *= 2
	}
	vecmath.ScaleBlock(power, power, 1/(float64(n)*float64(len(series))*gain))

	freqs = make([]float64, bins)
	df := sampleRate / float64(n)
	for k := range freqs {
		freqs[k] = float64(k) * df
	}
	return freqs, power, nil
}

// CutoffForPower returns the lowest bin frequency at or below which the
// given fraction of the series' power lies. It is a starting point for
// choosing a low-pass cutoff that keeps most of the movement.
func CutoffForPower(series []float64, sampleRate, fraction float64, opts ...Option) (float64, error) {
	if !(fraction > 0 && fraction <= 1) {
		return 0, fmt.Errorf("%w: %g", ErrInvalidFraction, fraction)
	}
	freqs, power, err := PowerSpectrum(series, sampleRate, opts...)
	if err != nil {
		return 0, err
	}

	cum := floats.CumSum(make([]float64, len(power)), power)
	total := cum[len(cum)-1]
	if !(total > 0) {
		return 0, ErrNoSignalPower
	}

	k := sort.SearchFloat64s(cum, fraction*total)
	if k >= len(freqs) {
		k = len(freqs) - 1
	}
	return freqs[k], nil
}

func nextPowerOf2(n int) int {
	p := minFFTSize
	for p < n {
		p <<= 1
	}
	return p
}
