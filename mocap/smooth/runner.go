package smooth

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-mocap/mocap"
)

// Result summarizes a filter run.
type Result struct {
	RunID uuid.UUID
	// Phase is PhaseDone on success and PhaseFailed otherwise.
	Phase Phase
	// FailedIn is the phase that was active when the run failed.
	FailedIn Phase

	MarkerRate float64
	AnalogRate float64

	// Series counts per domain; a marker contributes one series per
	// filtered component.
	MarkerSeries int
	ForceSeries  int
	AnalogSeries int
}

// Runner executes filter requests. A Runner holds configuration only and
// can serve any number of sequential requests.
type Runner struct {
	cfg config
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...Option) *Runner {
	return &Runner{cfg: applyOptions(opts)}
}

// Run filters the requested domains of s in place.
//
// The request is validated first, then both filters it needs are designed
// before any value is touched; a design failure therefore leaves s
// unchanged. Domains run in the order markers, forces, analog and the first
// failing channel stops the run, leaving earlier channels filtered.
func (r *Runner) Run(s *mocap.Session, req Request) (Result, error) {
	res := Result{RunID: r.cfg.runID(), Phase: PhaseRequested}
	log := r.cfg.logger.WithFields(logrus.Fields{
		"run_id":    res.RunID.String(),
		"order":     req.Order,
		"cutoff_hz": req.CutoffHz,
		"domains":   req.Domains.String(),
	})

	fail := func(err error) (Result, error) {
		res.FailedIn = res.Phase
		res.Phase = PhaseFailed
		log.WithField("phase", res.FailedIn.String()).WithError(err).Warn("filter run failed")
		return res, err
	}

	if err := req.Validate(); err != nil {
		return fail(err)
	}
	if err := s.Validate(); err != nil {
		return fail(err)
	}

	res.MarkerRate = s.MarkerRate
	res.AnalogRate = s.AnalogRate()

	var markerFilter, analogFilter Filter
	if req.needsMarkerFilter() {
		f, err := r.cfg.designer(req.Order, res.MarkerRate, req.CutoffHz)
		if err != nil {
			return fail(&ConfigurationError{Msg: "marker filter", Err: err})
		}
		markerFilter = f
	}
	if req.needsAnalogFilter() {
		f, err := r.cfg.designer(req.Order, res.AnalogRate, req.CutoffHz)
		if err != nil {
			return fail(&ConfigurationError{Msg: "analog filter", Err: err})
		}
		analogFilter = f
	}

	steps := []struct {
		phase  Phase
		domain Domain
		filter Filter
		rate   float64
		pass   func(*mocap.Session, Filter) (int, error)
		count  *int
	}{
		{PhaseMarkers, Markers, markerFilter, res.MarkerRate, FilterMarkers, &res.MarkerSeries},
		{PhaseForces, Forces, analogFilter, res.AnalogRate, FilterForces, &res.ForceSeries},
		{PhaseAnalog, Analog, analogFilter, res.AnalogRate, FilterAnalog, &res.AnalogSeries},
	}
	for _, st := range steps {
		if !req.Domains.Has(st.domain) {
			continue
		}
		res.Phase = st.phase
		log.WithFields(logrus.Fields{"phase": st.phase.String(), "rate_hz": st.rate}).Debug("filtering")

		n, err := st.pass(s, st.filter)
		*st.count = n
		if err != nil {
			return fail(err)
		}
		log.WithFields(logrus.Fields{"phase": st.phase.String(), "channels": n}).Debug("phase complete")
	}

	res.Phase = PhaseDone
	log.WithFields(logrus.Fields{
		"marker_series": res.MarkerSeries,
		"force_series":  res.ForceSeries,
		"analog_series": res.AnalogSeries,
	}).Info("filter run complete")
	return res, nil
}
