// Package pass designs low-pass Butterworth cascades as biquad coefficient
// sets for the runtime in dsp/filter/biquad.
package pass
