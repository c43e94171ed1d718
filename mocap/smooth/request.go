package smooth

// Request describes one filter run.
type Request struct {
	// Order is the Butterworth order of a single pass.
	Order int
	// CutoffHz is the low-pass cutoff frequency in Hz.
	CutoffHz float64
	// Domains selects which signals are filtered.
	Domains Domain
}

// Validate checks the parts of the request that do not depend on a
// session. Order and cutoff are checked by the filter designer against the
// sampling rate they are used with.
func (r Request) Validate() error {
	if r.Domains.Empty() {
		return ErrNoDomains
	}
	return nil
}

func (r Request) needsMarkerFilter() bool { return r.Domains.Has(Markers) }

func (r Request) needsAnalogFilter() bool {
	return r.Domains.Has(Forces) || r.Domains.Has(Analog)
}
