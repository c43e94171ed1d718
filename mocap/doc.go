// Package mocap models a recorded motion-capture session: marker
// trajectories sampled at the marker frame rate, analog channels sampled at
// an integer multiple of it, and the force platforms that own a subset of
// the analog channels.
//
// Grids own one contiguous buffer each. Values may be rewritten column by
// column through SetColumn, but the shape of a grid never changes after it
// is created.
package mocap
