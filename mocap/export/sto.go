package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-mocap/mocap"
)

var (
	// ErrNoForcePlatforms is returned by WriteForcesSTO for sessions
	// without force platforms.
	ErrNoForcePlatforms = errors.New("export: no force platforms")
	// ErrNoAnalog is returned by WriteAnalogSTO for sessions without
	// analog channels.
	ErrNoAnalog = errors.New("export: no analog data")
)

// stoColumn is one STO data column: a label and a value per analog sample.
type stoColumn struct {
	label string
	value func(sample int) float64
}

// WriteForcesSTO writes every channel referenced by a force platform
// followed by the platform's origin as EC<n>X/Y/Z columns. Unmapped slots
// are skipped.
func WriteForcesSTO(w io.Writer, s *mocap.Session, name string) error {
	if len(s.Platforms) == 0 {
		return ErrNoForcePlatforms
	}

	g := s.Analog
	var cols []stoColumn
	for p, platform := range s.Platforms {
		for _, channel := range platform.Channels {
			if channel == 0 {
				continue
			}
			column := channel - 1
			if column >= g.Channels() {
				return fmt.Errorf("export: force platform %d: %w", p+1,
					&mocap.GridShapeError{Domain: "analog", Column: column, Want: -1})
			}
			label := g.Label(column)
			if label == "" {
				label = "column_" + strconv.Itoa(channel)
			}
			cols = append(cols, stoColumn{label: label, value: func(i int) float64 { return g.At(i, column) }})
		}
		n := strconv.Itoa(p + 1)
		for d, axis := range [...]string{"X", "Y", "Z"} {
			v := platform.Origin[d]
			cols = append(cols, stoColumn{label: "EC" + n + axis, value: func(int) float64 { return v }})
		}
	}
	return writeSTO(w, s, name, cols)
}

// WriteAnalogSTO writes every analog channel that no force platform owns.
func WriteAnalogSTO(w io.Writer, s *mocap.Session, name string) error {
	g := s.Analog
	if g == nil || g.Channels() == 0 {
		return ErrNoAnalog
	}

	var cols []stoColumn
	for c := 0; c < g.Channels(); c++ {
		if mocap.IsForceChannel(s, c+1) {
			continue
		}
		column := c
		cols = append(cols, stoColumn{label: g.Label(c), value: func(i int) float64 { return g.At(i, column) }})
	}
	return writeSTO(w, s, name, cols)
}

func writeSTO(w io.Writer, s *mocap.Session, name string, cols []stoColumn) error {
	bw := bufio.NewWriter(w)
	tw := newTableWriter(bw)

	rows := s.Analog.Samples()
	rate := s.AnalogRate()

	tw.strings(name)
	tw.strings("version=1")
	tw.strings("nRows=" + strconv.Itoa(rows))
	tw.strings("nColumns=" + strconv.Itoa(len(cols)+1))
	tw.strings("inDegrees=no")
	tw.strings("endheader")

	head := make([]string, 0, len(cols)+1)
	head = append(head, "time")
	for _, c := range cols {
		head = append(head, c.label)
	}
	tw.strings(head...)

	values := make([]float64, len(cols))
	for i := 0; i < rows; i++ {
		for j, c := range cols {
			values[j] = c.value(i)
		}
		tw.row([]string{formatFloat(float64(i) / rate)}, values, 64)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write sto: %w", err)
	}
	return nil
}
