// Released under an MIT license. See LICENSE.

// Package literal defines the interface for lisp types that can be expressed as literals.
package literal

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// Undefined is the literal representation of the absent value.
const Undefined = "(|undefined|)"

// T (literal) is any type that can be expressed as a literal.
type T interface {
	Literal() string
}

// String returns the literal string representation for a cell, if possible.
func String(c cell.T) string {
	if c == nil {
		return Undefined
	}

	l, ok := c.(T)
	if !ok {
		// Not all cell types can be expressed as literals.
		panic(c.Name() + " does not have a literal representation")
	}

	return l.Literal()
}
