package main

import (
	"fmt"

	"github.com/cwbudde/algo-mocap/mocap/sessionfile"
)

func (a *app) check(args []string) error {
	fs := newFlagSet(a, "check", "check FILE")
	pos, err := parseArgs(fs, args)
	if err != nil {
		return err
	}
	if err := requireArgs(fs, pos, 1, 1); err != nil {
		return err
	}

	fmt.Fprintf(a.stdout, "Checking file: %s\n", pos[0])
	if _, err := sessionfile.Load(pos[0]); err != nil {
		return err
	}
	fmt.Fprintln(a.stdout, "SUCCESS: the file is a valid session")
	return nil
}
