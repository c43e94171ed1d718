package mocap

// AnalogSampleRate returns the analog-domain sample rate for a marker
// frame rate and an integer oversampling factor. It is the one place the
// analog rate is derived; filter design needs it as a continuous value.
func AnalogSampleRate(markerRate float64, oversampling int) float64 {
	return markerRate * float64(oversampling)
}
