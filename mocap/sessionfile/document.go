package sessionfile

import (
	"fmt"

	"github.com/cwbudde/algo-mocap/mocap"
)

// FormatVersion is the document version written by Encode.
const FormatVersion = 1

type document struct {
	Version      int                   `json:"version"`
	MarkerRate   float64               `json:"marker_rate"`
	Oversampling int                   `json:"oversampling"`
	FirstFrame   int                   `json:"first_frame"`
	Units        string                `json:"units,omitempty"`
	Markers      markerSection         `json:"markers"`
	Analog       analogSection         `json:"analog"`
	Platforms    []mocap.ForcePlatform `json:"force_platforms,omitempty"`
}

type markerSection struct {
	Labels []string `json:"labels"`
	// Frames is indexed [frame][marker] and holds X, Y, Z.
	Frames [][][3]float32 `json:"frames"`
}

type analogSection struct {
	Labels []string `json:"labels"`
	// Samples is indexed [sample][channel].
	Samples [][]float64 `json:"samples"`
}

func fromSession(s *mocap.Session) document {
	doc := document{
		Version:      FormatVersion,
		MarkerRate:   s.MarkerRate,
		Oversampling: s.Oversampling,
		FirstFrame:   s.FirstFrame,
		Units:        s.Units,
		Platforms:    s.Platforms,
	}

	mg := s.Markers
	doc.Markers.Labels = mg.Labels()
	doc.Markers.Frames = make([][][3]float32, mg.Frames())
	for f := range doc.Markers.Frames {
		row := make([][3]float32, mg.Markers())
		for m := range row {
			row[m] = mg.At(f, m)
		}
		doc.Markers.Frames[f] = row
	}

	ag := s.Analog
	doc.Analog.Labels = ag.Labels()
	doc.Analog.Samples = make([][]float64, ag.Samples())
	for i := range doc.Analog.Samples {
		row := make([]float64, ag.Channels())
		for c := range row {
			row[c] = ag.At(i, c)
		}
		doc.Analog.Samples[i] = row
	}
	return doc
}

func (doc *document) session() (*mocap.Session, error) {
	if doc.Version != FormatVersion {
		return nil, fmt.Errorf("%w: version %d, want %d", ErrUnsupportedVersion, doc.Version, FormatVersion)
	}

	markers := len(doc.Markers.Labels)
	mg := mocap.NewMarkerGrid(doc.Markers.Labels, len(doc.Markers.Frames))
	for f, row := range doc.Markers.Frames {
		if len(row) != markers {
			return nil, fmt.Errorf("%w: marker frame %d has %d entries, want %d", ErrMalformed, f, len(row), markers)
		}
		for m, pos := range row {
			mg.Set(f, m, pos)
		}
	}

	channels := len(doc.Analog.Labels)
	ag := mocap.NewAnalogGrid(doc.Analog.Labels, channels, len(doc.Analog.Samples))
	for i, row := range doc.Analog.Samples {
		if len(row) != channels {
			return nil, fmt.Errorf("%w: analog sample %d has %d entries, want %d", ErrMalformed, i, len(row), channels)
		}
		for c, v := range row {
			ag.Set(i, c, v)
		}
	}

	return &mocap.Session{
		MarkerRate:   doc.MarkerRate,
		Oversampling: doc.Oversampling,
		FirstFrame:   doc.FirstFrame,
		Units:        doc.Units,
		Markers:      mg,
		Analog:       ag,
		Platforms:    doc.Platforms,
	}, nil
}
