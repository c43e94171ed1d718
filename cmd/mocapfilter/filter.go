package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cwbudde/algo-mocap/mocap"
	"github.com/cwbudde/algo-mocap/mocap/report"
	"github.com/cwbudde/algo-mocap/mocap/sessionfile"
	"github.com/cwbudde/algo-mocap/mocap/smooth"
)

type filterOptions struct {
	input    string
	output   string
	order    int
	cutoffHz float64
	domains  smooth.Domain

	plotPath    string
	plotChannel int
	plotMarker  string
}

func (a *app) filter(args []string) error {
	fs := newFlagSet(a, "filter", "filter FILE [--] ORDER CUTOFF [-m] [-f] [-a] [-o OUT] [-config cfg.json] [-plot out.png]")
	markers := fs.Bool("m", false, "filter marker data")
	forces := fs.Bool("f", false, "filter force platform channels")
	analog := fs.Bool("a", false, "filter the remaining analog channels")
	output := fs.String("o", "", "output file (default <input>_filtered.json)")
	configPath := fs.String("config", "", "JSON file with order, cutoff_hz, domains and log_level defaults")
	plotPath := fs.String("plot", "", "save a raw vs filtered plot of one series")
	plotChannel := fs.Int("plot-channel", 0, "1-based analog channel to plot")
	plotMarker := fs.String("plot-marker", "", "marker whose X component to plot")
	logLevel := fs.String("log-level", "", "log level (debug, info, warn, error)")
	verbose := fs.Bool("v", false, "debug logging")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := requireArgs(fs, pos, 1, 3); err != nil {
		return err
	}

	var cfg *filterConfig
	if *configPath != "" {
		if cfg, err = loadFilterConfig(*configPath); err != nil {
			return err
		}
	}

	level := *logLevel
	if level == "" && cfg != nil && cfg.LogLevel != nil {
		level = *cfg.LogLevel
	}
	if err := a.setLogLevel(level, *verbose); err != nil {
		return err
	}

	opts := filterOptions{
		input:       pos[0],
		output:      *output,
		plotPath:    *plotPath,
		plotChannel: *plotChannel,
		plotMarker:  *plotMarker,
	}
	if err := opts.resolve(pos[1:], cfg); err != nil {
		return err
	}
	if *markers {
		opts.domains |= smooth.Markers
	}
	if *forces {
		opts.domains |= smooth.Forces
	}
	if *analog {
		opts.domains |= smooth.Analog
	}
	if opts.domains.Empty() {
		opts.domains = cfg.domains()
	}
	if opts.output == "" {
		opts.output = defaultOutput(opts.input)
	}

	return a.runFilter(opts)
}

// resolve fills order and cutoff from the positional arguments, falling
// back to the config file. Explicit values, zero included, are passed on
// to the filter designer unchecked.
func (o *filterOptions) resolve(args []string, cfg *filterConfig) error {
	haveOrder := cfg != nil && cfg.Order != nil
	haveCutoff := cfg != nil && cfg.CutoffHz != nil
	if haveOrder {
		o.order = *cfg.Order
	}
	if haveCutoff {
		o.cutoffHz = *cfg.CutoffHz
	}

	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid order %q: must be an integer", args[0])
		}
		o.order, haveOrder = n, true
	}
	if len(args) > 1 {
		f, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid cutoff frequency %q", args[1])
		}
		o.cutoffHz, haveCutoff = f, true
	}

	var missing []string
	if !haveOrder {
		missing = append(missing, "ORDER")
	}
	if !haveCutoff {
		missing = append(missing, "CUTOFF")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing %s: pass as arguments or in -config", strings.Join(missing, " and "))
	}
	return nil
}

// defaultOutput derives "<stem>_filtered.json" from the input path.
func defaultOutput(input string) string {
	dir, base := filepath.Split(input)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		return filepath.Join(dir, "filtered.json")
	}
	return filepath.Join(dir, stem+"_filtered.json")
}

func (a *app) runFilter(o filterOptions) error {
	fmt.Fprintf(a.stdout, "Loading file: %s\n", o.input)
	s, err := sessionfile.Load(o.input)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Filter order: %d & cutoff frequency: %g Hz\n", o.order, o.cutoffHz)

	var plot *plotTarget
	if o.plotPath != "" {
		if plot, err = newPlotTarget(s, o.plotChannel, o.plotMarker); err != nil {
			return err
		}
	}

	runner := smooth.NewRunner(smooth.WithLogger(a.log))
	res, err := runner.Run(s, smooth.Request{Order: o.order, CutoffHz: o.cutoffHz, Domains: o.domains})
	if err != nil {
		if !errors.Is(err, smooth.ErrConfiguration) && !errors.Is(err, mocap.ErrInvalidSession) {
			return fmt.Errorf("filtering %s failed: %w", res.FailedIn, err)
		}
		return err
	}
	fmt.Fprintf(a.stdout, "Filtered %d marker, %d force and %d analog series\n",
		res.MarkerSeries, res.ForceSeries, res.AnalogSeries)

	if err := sessionfile.Write(s, o.output); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "Wrote %s\n", o.output)

	if plot != nil {
		if err := plot.save(s, o.plotPath); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Wrote %s\n", o.plotPath)
	}
	return nil
}

// plotTarget remembers one series before filtering.
type plotTarget struct {
	title string
	rate  float64
	raw   []float64
	read  func(*mocap.Session) []float64
}

func newPlotTarget(s *mocap.Session, channel int, marker string) (*plotTarget, error) {
	switch {
	case marker != "":
		m := s.Markers.Index(marker)
		if m < 0 {
			return nil, fmt.Errorf("unknown marker %q", marker)
		}
		read := func(s *mocap.Session) []float64 { return s.Markers.Column(m, mocap.X) }
		return &plotTarget{title: marker + " X", rate: s.MarkerRate, raw: read(s), read: read}, nil
	case channel > 0:
		if channel > s.Analog.Channels() {
			return nil, fmt.Errorf("analog channel %d out of range (have %d)", channel, s.Analog.Channels())
		}
		read := func(s *mocap.Session) []float64 { return s.Analog.Column(channel - 1) }
		return &plotTarget{title: s.Analog.Label(channel - 1), rate: s.AnalogRate(), raw: read(s), read: read}, nil
	default:
		return nil, errors.New("-plot needs -plot-marker or -plot-channel")
	}
}

func (p *plotTarget) save(s *mocap.Session, path string) error {
	return report.PlotComparison(path, p.title, p.rate, p.raw, p.read(s))
}
