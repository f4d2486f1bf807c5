// Released under an MIT license. See LICENSE.

// Package sym provides lisp's identifier type.
package sym

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/loc"
)

const name = "identifier"

// T (sym) is an identifier: a name to be looked up in a scope.
type T string

type sym = T

// Plus is an identifier plus its lexical location.
type Plus struct {
	*sym
	source *loc.T
}

// New creates an identifier cell.
func New(v string) cell.T {
	s := sym(v)
	return &s
}

// Located creates an identifier that remembers where it was read.
func Located(v string, source *loc.T) cell.T {
	s := sym(v)
	return &Plus{&s, source}
}

// The identifier type is a cell.

// Equal returns true if c is an identifier with the same name.
func (s *sym) Equal(c cell.T) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the type name for the identifier s.
func (s *sym) Name() string {
	return name
}

// The identifier type has a literal representation.

// Literal returns the literal representation of the identifier s.
func (s *sym) Literal() string {
	return string(*s)
}

// The identifier type is a stringer.

// String returns the text of the identifier s.
func (s *sym) String() string {
	return string(*s)
}

// Source returns the lexical location for an identifier that has it.
func (p *Plus) Source() *loc.T {
	return p.source
}

// Source returns the lexical location of c, or nil if c doesn't have one.
func Source(c cell.T) *loc.T {
	if p, ok := c.(*Plus); ok {
		return p.source
	}

	return nil
}

// Is returns true if c is an identifier or identifier plus.
func Is(c cell.T) bool {
	switch c.(type) {
	case *T, *Plus:
		return true
	}

	return false
}

// To returns an identifier if c is an identifier or identifier plus;
// Otherwise it panics.
func To(c cell.T) *T {
	switch t := c.(type) {
	case *T:
		return t
	case *Plus:
		return t.sym
	}

	panic("not an " + name)
}
