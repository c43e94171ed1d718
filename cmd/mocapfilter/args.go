package main

import (
	"errors"
	"flag"
	"fmt"
)

// errUsage reports that flag parsing failed or help was requested. The
// flag package has already printed the details.
var errUsage = errors.New("usage")

func newFlagSet(a *app, name, usage string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)
	fs.Usage = func() {
		fmt.Fprintf(a.stderr, "Usage: mocapfilter %s\n\nFlags:\n", usage)
		fs.PrintDefaults()
	}
	return fs
}

// parseArgs parses flags that may appear before, between or after the
// positional arguments and returns the positionals in order. Everything
// after "--" is positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, errUsage
		}
		rest := fs.Args()
		if len(rest) == 0 {
			return positional, nil
		}
		if consumed := len(args) - len(rest); consumed > 0 && args[consumed-1] == "--" {
			return append(positional, rest...), nil
		}
		positional = append(positional, rest[0])
		args = rest[1:]
	}
}

func requireArgs(fs *flag.FlagSet, positional []string, min, max int) error {
	if len(positional) < min || len(positional) > max {
		fs.Usage()
		return errUsage
	}
	return nil
}
