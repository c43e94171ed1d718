package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/cwbudde/algo-mocap/mocap"
)

// ErrNoMarkers is returned by WriteTRC for sessions without markers.
var ErrNoMarkers = errors.New("export: no marker data")

// WriteTRC writes the marker trajectories of s as a TRC table named name.
// Frames are numbered from the session's first frame and times start at
// zero.
func WriteTRC(w io.Writer, s *mocap.Session, name string) error {
	g := s.Markers
	if g == nil || g.Markers() == 0 {
		return ErrNoMarkers
	}

	bw := bufio.NewWriter(w)
	tw := newTableWriter(bw)

	frames, markers := g.Frames(), g.Markers()
	rate := formatFloat(s.MarkerRate)
	first := firstFrame(s)

	tw.strings("PathFileType", "4", "(X/Y/Z)", name)
	tw.strings("DataRate", "CameraRate", "NumFrames", "NumMarkers", "Units",
		"OrigDataRate", "OrigDataStartFrame", "OrigNumFrames")
	tw.strings(rate, rate, strconv.Itoa(frames), strconv.Itoa(markers), units(s),
		rate, strconv.Itoa(first), strconv.Itoa(frames))

	head := []string{"Frame#", "Time"}
	axes := []string{"", ""}
	for m, label := range g.Labels() {
		head = append(head, label, "", "")
		n := strconv.Itoa(m + 1)
		axes = append(axes, "X"+n, "Y"+n, "Z"+n)
	}
	tw.strings(head...)
	tw.strings(axes...)
	tw.strings()

	values := make([]float64, markers*3)
	for f := 0; f < frames; f++ {
		for m := 0; m < markers; m++ {
			pos := g.At(f, m)
			values[3*m] = float64(pos[mocap.X])
			values[3*m+1] = float64(pos[mocap.Y])
			values[3*m+2] = float64(pos[mocap.Z])
		}
		tw.row([]string{strconv.Itoa(first + f), formatFloat(float64(f) / s.MarkerRate)}, values, 32)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: write trc: %w", err)
	}
	return nil
}

func firstFrame(s *mocap.Session) int {
	if s.FirstFrame < 1 {
		return 1
	}
	return s.FirstFrame
}

func units(s *mocap.Session) string {
	if s.Units == "" {
		return "mm"
	}
	return s.Units
}
