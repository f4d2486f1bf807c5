// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lisp code.
//
// Evaluation is a pure function of an expression and a scope. A literal
// evaluates to itself. An identifier evaluates to the value it is bound to
// in the nearest enclosing scope. A list is either a special form or an
// application: each element is evaluated, left to right, and if the first
// value is callable it is applied to the rest. Otherwise the list of values
// is the result.
package engine

import (
	"io"

	"github.com/michaelmacinnis/lisp/internal/engine/commands"
	"github.com/michaelmacinnis/lisp/internal/interface/callable"
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/reader"
	"github.com/michaelmacinnis/lisp/internal/type/env"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// T (engine) is a facade in front of the machinery for evaluating lisp code.
type T struct {
	root scope.T
}

// New creates a new T whose root scope holds the builtin library.
// Output from print is written to stdout.
func New(stdout io.Writer) *T {
	return &T{root: env.New(commands.Library(stdout))}
}

// Evaluate evaluates c in the root scope.
func (e *T) Evaluate(c cell.T) (cell.T, error) {
	return Evaluate(c, e.root)
}

// Root returns the root scope.
func (e *T) Root() scope.T {
	return e.root
}

// Run reads the single expression in text and evaluates it.
func (e *T) Run(text string) (cell.T, error) {
	c, err := reader.Parse("lisp", text)
	if err != nil {
		return nil, err
	}

	return e.Evaluate(c)
}

// RunAll reads every expression in text and evaluates each in turn.
// The value of the last expression is returned.
func (e *T) RunAll(name, text string) (v cell.T, err error) {
	cs, err := reader.ReadAll(name, text)
	if err != nil {
		return nil, err
	}

	v = pair.Null

	for _, c := range cs {
		v, err = e.Evaluate(c)
		if err != nil {
			return nil, err
		}
	}

	return v, nil
}

// Apply calls f with args. Args must be a list.
func Apply(f cell.T, args cell.T) (cell.T, error) {
	c, ok := f.(callable.T)
	if !ok {
		return nil, errsys.New(errsys.ErrNotCallable, describe(f))
	}

	return c.Call(args)
}

// Evaluate evaluates the expression c in the scope s.
func Evaluate(c cell.T, s scope.T) (cell.T, error) {
	switch {
	case sym.Is(c):
		v, err := s.Lookup(sym.To(c).String())
		if err != nil {
			return nil, errsys.Located(err, sym.Source(c))
		}

		return v, nil
	case pair.Is(c):
		return evaluateList(c, s)
	}

	return c, nil
}

func evaluateList(c cell.T, s scope.T) (cell.T, error) {
	switch f := classify(c); f {
	case application:
		return apply(c, s)
	case lambda:
		return newClosure(c, s)
	default:
		panic("unhandled form " + f.String())
	}
}

func apply(c cell.T, s scope.T) (cell.T, error) {
	vs, err := list.Map(c, func(e cell.T) (cell.T, error) {
		return Evaluate(e, s)
	})
	if err != nil {
		return nil, err
	}

	if vs != pair.Null && callable.Is(pair.Car(vs)) {
		return Apply(pair.Car(vs), pair.Cdr(vs))
	}

	return vs, nil
}

func describe(c cell.T) string {
	if c == nil {
		return "undefined"
	}

	return c.Name()
}
