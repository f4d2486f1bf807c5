// Released under an MIT license. See LICENSE.

// Package options handles lisp's command-line arguments.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	version     bool
	usage       = `lisp

Usage:
  lisp -c COMMAND
  lisp [-i] [-s]
  lisp -h
  lisp -v

Options:
  -c, --command=COMMAND  Evaluate the specified expression.
  -i, --interactive      Invert interactive mode.
  -s, --stdin            Read expressions from stdin.
  -h, --help             Display this help.
  -v, --version          Print lisp version.

If lisp's stdin is a TTY, and lisp was not given a command or explicitly
directed to read expressions from stdin, the interactive mode is enabled.
Otherwise, every expression read from stdin is evaluated and the value of
the last expression is printed.
`
)

// Command returns the expression passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if lisp should start its read-eval-print loop.
func Interactive() bool {
	return interactive
}

// Parse parses the command line. Errors in the command line cause lisp to
// print its usage and exit.
func Parse() {
	err := parse(
		&docopt.Parser{HelpHandler: docopt.PrintHelpAndExit},
		os.Args[1:],
		isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Version returns true if lisp should print its version and exit.
func Version() bool {
	return version
}

func parse(p *docopt.Parser, argv []string, terminal bool) error {
	opts, err := p.ParseArgs(usage, argv, "")
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	version, _ = opts.Bool("--version")

	stdin, _ := opts.Bool("--stdin")
	interactive = command == "" && !stdin && terminal

	invertInteractive, _ := opts.Bool("--interactive")
	interactive = interactive != invertInteractive

	return nil
}
