package export

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cwbudde/algo-mocap/mocap"
)

// Format is an output table format.
type Format int

const (
	FormatTRC Format = iota + 1
	FormatSTO
)

func (f Format) String() string {
	switch f {
	case FormatTRC:
		return "trc"
	case FormatSTO:
		return "sto"
	default:
		return "unknown"
	}
}

// ErrUnsupportedFormat is returned for output paths whose extension does
// not name a format the data can be written in.
var ErrUnsupportedFormat = errors.New("export: unsupported output format")

// FormatFor returns the format named by the extension of path.
func FormatFor(path string) (Format, error) {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
	switch ext {
	case "trc":
		return FormatTRC, nil
	case "sto":
		return FormatSTO, nil
	case "":
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	default:
		return 0, fmt.Errorf("%w: .%s", ErrUnsupportedFormat, ext)
	}
}

// Kind selects which part of a session is exported.
type Kind int

const (
	KindMarkers Kind = iota
	KindForces
	KindAnalog
)

type exporter struct {
	format Format
	write  func(io.Writer, *mocap.Session, string) error
}

var exporters = map[Kind]exporter{
	KindMarkers: {FormatTRC, WriteTRC},
	KindForces:  {FormatSTO, WriteForcesSTO},
	KindAnalog:  {FormatSTO, WriteAnalogSTO},
}

// ToFile exports one kind of data from s to path. The extension of path
// must name the format of that kind: .trc for markers, .sto otherwise. The
// table is named after the file. A failed export removes the file.
func ToFile(path string, s *mocap.Session, kind Kind) (err error) {
	e, ok := exporters[kind]
	if !ok {
		return fmt.Errorf("export: unknown kind %d", kind)
	}
	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	if format != e.format {
		return fmt.Errorf("%w: %s, types allowed: .%s", ErrUnsupportedFormat, format, e.format)
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("export: %w", cerr)
		}
		if err != nil {
			os.Remove(f.Name())
		}
	}()

	bw := bufio.NewWriter(f)
	if err := e.write(bw, s, filepath.Base(path)); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("export: %w", err)
	}
	return nil
}
