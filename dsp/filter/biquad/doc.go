// Package biquad provides biquad (second-order IIR) filter runtime primitives.
//
// A [Section] implements Direct Form II Transposed processing for a single
// second-order section defined by [Coefficients]. Multiple sections can be
// cascaded via [Chain] for higher-order filters such as the Butterworth
// low-pass designs in dsp/filter/design/pass.
//
// Besides plain forward processing, sections and chains can be primed with
// the steady-state delay line for a constant input and can run a block in
// reverse order. Together these are the building blocks of the zero-phase
// (forward-backward) application in dsp/filter/zerophase.
package biquad
