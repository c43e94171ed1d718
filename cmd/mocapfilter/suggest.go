package main

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-mocap/dsp/spectrum"
	"github.com/cwbudde/algo-mocap/dsp/window"
	"github.com/cwbudde/algo-mocap/mocap"
	"github.com/cwbudde/algo-mocap/mocap/sessionfile"
)

func (a *app) suggest(args []string) error {
	fs := newFlagSet(a, "suggest", "suggest FILE [-fraction 0.99] [-window hann] [-channel N | -marker NAME]")
	fraction := fs.Float64("fraction", 0.99, "fraction of signal power to keep, in (0, 1]")
	channel := fs.Int("channel", 0, "1-based analog channel")
	marker := fs.String("marker", "", "marker label")
	windowName := fs.String("window", "hann", "taper before the FFT (rectangular, hann, hamming, blackman, tukey)")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := requireArgs(fs, pos, 1, 1); err != nil {
		return err
	}
	if *channel > 0 && *marker != "" {
		return errors.New("-channel and -marker are mutually exclusive")
	}
	win, err := window.ParseType(*windowName)
	if err != nil {
		return err
	}

	s, err := sessionfile.Load(pos[0])
	if err != nil {
		return err
	}

	type series struct {
		label string
		rate  float64
		data  []float64
	}
	var all []series
	switch {
	case *channel > 0:
		if *channel > s.Analog.Channels() {
			return fmt.Errorf("analog channel %d out of range (have %d)", *channel, s.Analog.Channels())
		}
		all = append(all, series{s.Analog.Label(*channel - 1), s.AnalogRate(), s.Analog.Column(*channel - 1)})
	default:
		labels := s.Markers.Labels()
		for m, label := range labels {
			if *marker != "" && label != *marker {
				continue
			}
			all = append(all,
				series{label + " X", s.MarkerRate, s.Markers.Column(m, mocap.X)},
				series{label + " Y", s.MarkerRate, s.Markers.Column(m, mocap.Y)},
			)
		}
		if *marker != "" && len(all) == 0 {
			return fmt.Errorf("unknown marker %q", *marker)
		}
	}
	if len(all) == 0 {
		return errors.New("no series to analyse")
	}

	best := 0.0
	for _, sr := range all {
		cutoff, err := spectrum.CutoffForPower(sr.data, sr.rate, *fraction, spectrum.WithWindow(win))
		if errors.Is(err, spectrum.ErrNoSignalPower) {
			a.log.WithField("series", sr.label).Debug("no signal power, skipped")
			continue
		}
		if err != nil {
			return fmt.Errorf("%s: %w", sr.label, err)
		}
		a.log.WithField("series", sr.label).WithField("cutoff_hz", cutoff).Debug("suggested cutoff")
		best = max(best, cutoff)
	}
	if best == 0 {
		return errors.New("every selected series is constant")
	}
	fmt.Fprintf(a.stdout, "Suggested cutoff: %.2f Hz (keeps %g of the power of %d series)\n", best, *fraction, len(all))
	return nil
}
