// Released under an MIT license. See LICENSE.

// Package commands provides lisp's builtin library.
package commands

import (
	"io"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/builtin"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/type/list"
)

// Library returns the bindings for the root scope.
// Output from print is written to stdout.
func Library(stdout io.Writer) map[string]cell.T {
	fns := map[string]builtin.Function{
		"first": first,
		"print": printer(stdout),
		"rest":  rest,
	}

	m := make(map[string]cell.T, len(fns))
	for k, fn := range fns {
		m[k] = builtin.New(k, fn)
	}

	return m
}

// arg returns the argument at index i or the absent value if there isn't one.
func arg(args cell.T, i int) cell.T {
	return list.Nth(args, i)
}

func wrongType(label string, c cell.T) error {
	n := "undefined"
	if c != nil {
		n = c.Name()
	}

	return errsys.New(errsys.ErrWrongType, label+" expects a list or string, got "+n)
}
