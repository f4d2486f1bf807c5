// Released under an MIT license. See LICENSE.

// Package pair provides lisp's cons cell type.
package pair

import (
	"strings"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
)

const name = "list"

var (
	// Null is the empty list. It is also used to mark the end of a list.
	Null cell.T //nolint:gochecknoglobals
)

// T (pair) is a cons cell.
type T struct {
	car cell.T
	cdr cell.T
}

// The pair type is a cell.

// Equal returns true if c is a list with elements that are equal to p's.
func (p *T) Equal(c cell.T) bool {
	if !Is(c) {
		return false
	}

	var o cell.T = p
	for o != Null && c != Null {
		if !cell.Equal(Car(o), Car(c)) {
			return false
		}

		o, c = Cdr(o), Cdr(c)
	}

	return o == c
}

// Name returns the name for a pair type.
func (p *T) Name() string {
	return name
}

// The pair type has a literal representation.

// Literal returns the literal representation of the list starting at p.
func (p *T) Literal() string {
	var b strings.Builder

	b.WriteByte('(')

	var c cell.T = p
	for c != Null {
		if c != cell.T(p) {
			b.WriteByte(' ')
		}

		b.WriteString(literal.String(Car(c)))

		c = Cdr(c)
	}

	b.WriteByte(')')

	return b.String()
}

// The pair type is a stringer.

// String returns the text representation of the pair p.
func (p *T) String() string {
	return p.Literal()
}

// Functions specific to pair.

// Car returns the car/head/first member of the pair c.
// If c is not a pair, this function will panic.
func Car(c cell.T) cell.T {
	return To(c).car
}

// Cdr returns the cdr/tail/rest member of the pair c.
// If c is not a pair, this function will panic.
func Cdr(c cell.T) cell.T {
	return To(c).cdr
}

// Cadr returns the car of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Cadr(c cell.T) cell.T {
	return To(To(c).cdr).car
}

// Caddr returns the car of the cdr of the cdr of the pair c.
// A non-pair value where a pair is expected will cause a panic.
func Caddr(c cell.T) cell.T {
	return To(To(To(c).cdr).cdr).car
}

// Cons conses h and t together to form a new pair.
func Cons(h, t cell.T) cell.T {
	return &T{car: h, cdr: t}
}

// Is returns true if c is a pair.
func Is(c cell.T) bool {
	_, ok := c.(*T)
	return ok
}

// SetCdr sets the cdr/tail/rest of the pair c to value.
// Only lists under construction should be modified.
// If c is not a pair, this function will panic.
func SetCdr(c, value cell.T) {
	To(c).cdr = value
}

// To returns a pair if c is a pair; Otherwise it panics.
func To(c cell.T) *T {
	if t, ok := c.(*T); ok {
		return t
	}

	panic("not a " + name)
}

//nolint:gochecknoinits
func init() {
	pair := &T{}
	pair.car = pair
	pair.cdr = pair

	Null = cell.T(pair)
}
