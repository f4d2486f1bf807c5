// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lisp types.
package cell

// T (cell) is the basic unit of storage in lisp. Expressions produced by
// the reader and values produced by the evaluator are both cells.
type T interface {
	Equal(c T) bool
	Name() string
}

// Equal returns true if a and b are equal. The absent value, nil, is only
// equal to itself.
func Equal(a, b T) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.Equal(b)
}
