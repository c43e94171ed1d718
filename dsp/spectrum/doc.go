// Package spectrum estimates the power spectrum of sampled series.
//
// It is used to look at how much of a trajectory's energy lies below a
// candidate cutoff before a low-pass filter is applied. FFTs come from
// algo-fft; bin power uses the vectorized kernels of algo-vecmath.
package spectrum
