// Released under an MIT license. See LICENSE.

// Package callable defines the interface for lisp's applicable types.
package callable

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// T (callable) is anything that can be applied to a list of arguments.
// Arguments are passed as a proper list terminated by pair.Null.
type T interface {
	cell.T

	Call(args cell.T) (cell.T, error)
}

// Is returns true if c is callable.
func Is(c cell.T) bool {
	_, ok := c.(T)
	return ok
}
