package biquad

import vecmath "github.com/cwbudde/algo-vecmath"

// Chain is an ordered cascade of biquad sections processed in series.
// It is used for higher-order filters (Butterworth low-pass cascades)
// where each second-order section feeds into the next.
type Chain struct {
	sections []Section
	gain     float64
}

// chainConfig holds options for NewChain.
type chainConfig struct {
	gain float64
}

// ChainOption configures a Chain.
type ChainOption func(*chainConfig)

// WithGain sets an overall gain applied to the input before cascading.
// Default is 1.0 (unity gain).
func WithGain(g float64) ChainOption {
	return func(cfg *chainConfig) { cfg.gain = g }
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients, opts ...ChainOption) *Chain {
	cfg := chainConfig{gain: 1}
	for _, o := range opts {
		o(&cfg)
	}

	c := &Chain{
		sections: make([]Section, len(coeffs)),
		gain:     cfg.gain,
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
// If gain != 1, the input is scaled before the first section.
func (c *Chain) ProcessSample(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	c.applyGain(buf)

	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// ProcessBlockReverse filters a block in-place through the full cascade,
// walking the samples from last to first.
func (c *Chain) ProcessBlockReverse(buf []float64) {
	c.applyGain(buf)

	for i := range c.sections {
		c.sections[i].ProcessBlockReverse(buf)
	}
}

func (c *Chain) applyGain(buf []float64) {
	if c.gain == 1 || len(buf) == 0 {
		return
	}

	vecmath.ScaleBlock(buf, buf, c.gain)
}

// PrimeSteadyState sets every section to the state it would reach after a
// constant input x, so that a block starting at x begins without a
// transient. It returns the steady-state output of the cascade.
func (c *Chain) PrimeSteadyState(x float64) float64 {
	x *= c.gain
	for i := range c.sections {
		x = c.sections[i].SetSteadyState(x)
	}

	return x
}

// DCGain returns the cascade gain for a constant input.
func (c *Chain) DCGain() float64 {
	g := c.gain
	for i := range c.sections {
		g *= c.sections[i].DCGain()
	}

	return g
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the effective filter order. Full biquads contribute two,
// first-order sections one.
func (c *Chain) Order() int {
	n := 0
	for i := range c.sections {
		if c.sections[i].IsFirstOrder() {
			n++
		} else {
			n += 2
		}
	}

	return n
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Gain returns the current input gain applied before cascading.
func (c *Chain) Gain() float64 { return c.gain }

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}
