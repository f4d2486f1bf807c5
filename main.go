// Released under an MIT license. See LICENSE.

/*
Lisp is a minimal interpreter for a Lisp-family language.

An expression is a number, a double-quoted string, an identifier, or a
parenthesized list of expressions:

    ((lambda (x) x) "lisp")
    (first (1 2 3))
    (rest (1 2 3))
    (print (rest "lisp"))

The only special form is lambda. The builtin library is first, rest, and
print. A list whose first value is not callable evaluates to the list of
its values.
*/
package main

import (
	"io"
	"os"

	"github.com/michaelmacinnis/lisp/internal/common"
	"github.com/michaelmacinnis/lisp/internal/engine"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/system/options"
	"github.com/michaelmacinnis/lisp/internal/ui"
)

const version = "lisp 0.1.0"

func main() {
	options.Parse()

	if options.Version() {
		println(version)
		return
	}

	e := engine.New(os.Stdout)

	if c := options.Command(); c != "" {
		exit(e.Run(c))
	}

	if options.Interactive() {
		ui.Run(e)
		return
	}

	b, err := io.ReadAll(os.Stdin)
	if err != nil {
		exit(nil, err)
	}

	exit(e.RunAll("stdin", string(b)))
}

func exit(v cell.T, err error) {
	if err != nil {
		println(err.Error())
		os.Exit(1)
	}

	os.Stdout.Write([]byte(common.String(v) + "\n"))
	os.Exit(0)
}
