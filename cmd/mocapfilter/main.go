// Command mocapfilter inspects, exports and low-pass filters motion
// capture sessions.
//
// Usage:
//
//	mocapfilter <command> [flags] FILE [args]
//
// Commands:
//
//	check    validate a session file
//	info     print session information
//	export   write markers as TRC and force or analog channels as STO
//	filter   zero-phase Butterworth low-pass filter a session
//	suggest  suggest a cutoff that keeps a fraction of the signal power
//
// Examples:
//
//	mocapfilter info -v walk.json
//	mocapfilter filter walk.json 4 6 -m -o walk_6hz.json
//	mocapfilter filter walk.json -config lowpass.json -plot heel.png -plot-marker HEEL
//	mocapfilter export walk.json -markers walk.trc -forces grf.sto
//	mocapfilter suggest walk.json -fraction 0.99 -marker HEEL
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/algo-mocap/mocap"
)

// Exit codes.
const (
	exitOK       = 0
	exitUser     = 1
	exitInternal = 2
)

type app struct {
	stdout io.Writer
	stderr io.Writer
	log    *logrus.Logger
}

type command struct {
	name  string
	usage string
	run   func(*app, []string) error
}

var commands = []command{
	{"check", "check FILE", (*app).check},
	{"info", "info [-markers] [-forces] [-analog] [-v] FILE", (*app).info},
	{"export", "export FILE [-markers out.trc] [-forces out.sto] [-analog out.sto]", (*app).export},
	{"filter", "filter FILE [--] ORDER CUTOFF [-m] [-f] [-a] [-o OUT] [-config cfg.json] [-plot out.png]", (*app).filter},
	{"suggest", "suggest FILE [-fraction 0.99] [-window hann] [-channel N | -marker NAME]", (*app).suggest},
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr, log: newLogger(stderr)}

	if len(args) == 0 || args[0] == "-h" || args[0] == "-help" || args[0] == "help" {
		a.usage()
		if len(args) == 0 {
			return exitUser
		}
		return exitOK
	}

	for _, c := range commands {
		if c.name != args[0] {
			continue
		}
		err := c.run(a, args[1:])
		if err == nil {
			return exitOK
		}
		if errors.Is(err, errUsage) {
			return exitUser
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitCode(err)
	}

	fmt.Fprintf(stderr, "error: unknown command %q\n\n", args[0])
	a.usage()
	return exitUser
}

// exitCode maps an error to the process exit status. Grid shape
// mismatches are defects in this program, everything else is caused by
// the input.
func exitCode(err error) int {
	if errors.Is(err, mocap.ErrGridShape) {
		return exitInternal
	}
	return exitUser
}

func (a *app) usage() {
	fmt.Fprintf(a.stderr, "Usage: mocapfilter <command> [flags] FILE [args]\n\n")
	fmt.Fprintf(a.stderr, "Inspects, exports and low-pass filters motion capture sessions.\n\n")
	fmt.Fprintf(a.stderr, "Commands:\n")
	for _, c := range commands {
		fmt.Fprintf(a.stderr, "  %s\n", c.usage)
	}
	fmt.Fprintf(a.stderr, "\nRun 'mocapfilter <command> -h' for command flags.\n")
}

func newLogger(w io.Writer) *logrus.Logger {
	l := logrus.New()
	l.SetOutput(w)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	return l
}

// setLogLevel applies a level name. verbose forces debug output.
func (a *app) setLogLevel(name string, verbose bool) error {
	if verbose {
		a.log.SetLevel(logrus.DebugLevel)
		return nil
	}
	if name == "" {
		return nil
	}
	lvl, err := logrus.ParseLevel(name)
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}
	a.log.SetLevel(lvl)
	return nil
}
