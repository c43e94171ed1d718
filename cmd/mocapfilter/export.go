package main

import (
	"fmt"

	"github.com/cwbudde/algo-mocap/mocap/export"
	"github.com/cwbudde/algo-mocap/mocap/sessionfile"
)

func (a *app) export(args []string) error {
	fs := newFlagSet(a, "export", "export FILE [-markers out.trc] [-forces out.sto] [-analog out.sto]")
	markers := fs.String("markers", "", "output file for markers (.trc)")
	forces := fs.String("forces", "", "output file for force platform channels (.sto)")
	analog := fs.String("analog", "", "output file for non-force analog channels (.sto)")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := requireArgs(fs, pos, 1, 1); err != nil {
		return err
	}

	targets := []struct {
		what string
		path string
		kind export.Kind
	}{
		{"markers", *markers, export.KindMarkers},
		{"forces", *forces, export.KindForces},
		{"analog data", *analog, export.KindAnalog},
	}

	// Reject bad extensions before touching the input.
	requested := 0
	for _, t := range targets {
		if t.path == "" {
			continue
		}
		requested++
		if _, err := export.FormatFor(t.path); err != nil {
			return err
		}
	}
	if requested == 0 {
		return fmt.Errorf("nothing to export: pass -markers, -forces or -analog")
	}

	fmt.Fprintf(a.stdout, "Exporting data from file: %s\n", pos[0])
	s, err := sessionfile.Load(pos[0])
	if err != nil {
		return err
	}
	for _, t := range targets {
		if t.path == "" {
			continue
		}
		fmt.Fprintf(a.stdout, "Exporting %s to: %s\n", t.what, t.path)
		if err := export.ToFile(t.path, s, t.kind); err != nil {
			return err
		}
		fmt.Fprintf(a.stdout, "Wrote %s\n", t.path)
	}
	return nil
}
