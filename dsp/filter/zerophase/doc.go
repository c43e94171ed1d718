// Package zerophase applies Butterworth low-pass filters forward and
// backward so that the combined response has no phase delay.
//
// A [Filter] is designed once for an (order, sample rate, cutoff) triple
// and can then be applied to any number of independent series with
// [Filter.Bidirectional]. Each call extends the series at both ends by odd
// reflection and primes the cascade with its steady state, so constant
// segments pass through unchanged and the edges do not ring.
package zerophase
