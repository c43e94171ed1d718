package report

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// Section selects optional parts of a printed summary.
type Section uint8

const (
	SectionMarkers Section = 1 << iota
	SectionForces
	SectionAnalog

	SectionAll = SectionMarkers | SectionForces | SectionAnalog
)

// Print writes the general information of sum and the selected sections
// to w.
func (sum Summary) Print(w io.Writer, sections Section) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "== General Information ==")
	fmt.Fprintf(tw, "Number of markers:\t%d\n", len(sum.MarkerLabels))
	fmt.Fprintf(tw, "Number of analog channels (incl. force):\t%d\n", len(sum.AnalogLabels))
	fmt.Fprintf(tw, "Number of force platforms:\t%d\n", len(sum.Platforms))
	fmt.Fprintf(tw, "Number of frames:\t%d\n", sum.Frames)
	fmt.Fprintf(tw, "First frame:\t%d\n", sum.FirstFrame)

	if sections&SectionMarkers != 0 {
		fmt.Fprintln(tw, "\n-- Markers --")
		fmt.Fprintf(tw, "Marker names:\t%q\n", sum.MarkerLabels)
		fmt.Fprintf(tw, "Units:\t%s\n", sum.Units)
		fmt.Fprintf(tw, "Frame rate:\t%g Hz\n", sum.MarkerRate)
		printStats(tw, sum.MarkerStats)
	}
	if sections&SectionForces != 0 {
		fmt.Fprintln(tw, "\n-- Forces --")
		fmt.Fprintf(tw, "Force channels:\t%v\n", sum.ForceChannels)
		for _, p := range sum.Platforms {
			fmt.Fprintf(tw, "Force platform %d:\ttype %d, channels %v\n", p.Number, p.Type, p.Channels)
			fmt.Fprintf(tw, "\torigin %v\n", p.Origin)
			fmt.Fprintf(tw, "\tcorners %v\n", p.Corners)
		}
	}
	if sections&SectionAnalog != 0 {
		fmt.Fprintln(tw, "\n-- Analog --")
		fmt.Fprintf(tw, "Analog channel names:\t%q\n", sum.AnalogLabels)
		fmt.Fprintf(tw, "Sample rate:\t%g Hz\n", sum.AnalogRate)
		fmt.Fprintf(tw, "Number of samples:\t%d\n", sum.AnalogSamples)
		printStats(tw, sum.AnalogStats)
	}
	return tw.Flush()
}

func printStats(w io.Writer, stats []SeriesStats) {
	if len(stats) == 0 {
		return
	}
	fmt.Fprintln(w, "series\tmin\tmax\tmean\tstddev")
	for _, s := range stats {
		fmt.Fprintf(w, "%s\t%.4g\t%.4g\t%.4g\t%.4g\n", s.Label, s.Min, s.Max, s.Mean, s.StdDev)
	}
}
