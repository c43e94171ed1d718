// Package smooth runs zero-phase low-pass filter requests over the signal
// domains of a mocap.Session.
//
// A request names a filter order, a cutoff frequency and a set of domains
// (markers, force channels, general analog channels). The runner designs at
// most two filters, one at the marker frame rate and one at the analog
// rate, and then visits the requested domains strictly in the order
// markers, forces, analog. The first failure stops the run; channels that
// were already written stay filtered and the caller must not hand the
// session to a writer.
package smooth
