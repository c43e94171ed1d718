// Package export writes session data as OpenSim text tables: marker
// trajectories as TRC and force or analog channels as STO.
package export
