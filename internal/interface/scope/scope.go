// Released under an MIT license. See LICENSE.

// Package scope defines the interface for lisp's lexical environments.
package scope

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
)

// T (scope) is a frame in a chain of lexical environments.
// A scope is never modified after it is created.
type T interface {
	Child(bindings map[string]cell.T) T
	Enclosing() T
	Lookup(k string) (cell.T, error)
}
