// Released under an MIT license. See LICENSE.

// Package builtin provides lisp's primitive function type.
package builtin

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

const name = "builtin"

// Function is the Go implementation of a builtin. Arguments arrive
// already evaluated, as a list.
type Function func(args cell.T) (cell.T, error)

// T (builtin) is a named primitive function.
type T struct {
	fn    Function
	label string
}

// New creates a new builtin called label.
func New(label string, fn Function) *T {
	return &T{fn: fn, label: label}
}

// The builtin type is a cell.

// Equal returns true if the cell c is the same builtin as b.
func (b *T) Equal(c cell.T) bool {
	o, ok := c.(*T)
	return ok && o == b
}

// Name returns the name of the builtin type.
func (b *T) Name() string {
	return name
}

// The builtin type is callable.

// Call applies the builtin b to args.
func (b *T) Call(args cell.T) (cell.T, error) {
	return b.fn(args)
}

// The builtin type has a literal representation.

// Literal returns the literal representation of the builtin b.
func (b *T) Literal() string {
	return "(|" + name + " " + b.label + "|)"
}

// The builtin type is a stringer.

// String returns the text representation of the builtin b.
func (b *T) String() string {
	return b.Literal()
}
