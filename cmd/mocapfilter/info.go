package main

import (
	"fmt"

	"github.com/cwbudde/algo-mocap/mocap/report"
	"github.com/cwbudde/algo-mocap/mocap/sessionfile"
)

func (a *app) info(args []string) error {
	fs := newFlagSet(a, "info", "info [-markers] [-forces] [-analog] [-v] FILE")
	markers := fs.Bool("markers", false, "print marker information")
	forces := fs.Bool("forces", false, "print force platform information")
	analog := fs.Bool("analog", false, "print analog information")
	verbose := fs.Bool("v", false, "print everything")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := requireArgs(fs, pos, 1, 1); err != nil {
		return err
	}

	s, err := sessionfile.Load(pos[0])
	if err != nil {
		return err
	}

	var sections report.Section
	if *markers {
		sections |= report.SectionMarkers
	}
	if *forces {
		sections |= report.SectionForces
	}
	if *analog {
		sections |= report.SectionAnalog
	}
	if *verbose {
		sections = report.SectionAll
	}

	fmt.Fprintf(a.stdout, "Information for file: %s\n\n", pos[0])
	return report.Describe(s).Print(a.stdout, sections)
}
