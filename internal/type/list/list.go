// Released under an MIT license. See LICENSE.

// Package list provides common list operations. A list is not a true type.
// Lists are more of a type by convention. They are composed of cons cells.
package list

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
)

// Builder accumulates elements at the end of a new list.
type Builder struct {
	end   cell.T
	start cell.T
}

// Append adds c to the end of the list being built.
func (b *Builder) Append(c cell.T) {
	p := pair.Cons(c, pair.Null)

	if b.start == nil {
		b.start = p
	} else {
		pair.SetCdr(b.end, p)
	}

	b.end = p
}

// List returns the list built so far.
func (b *Builder) List() cell.T {
	if b.start == nil {
		return pair.Null
	}

	return b.start
}

// Length returns the number of elements in list.
// A non-pair value where a pair is expected will cause a panic.
// The list must be non-circular.
func Length(list cell.T) int64 {
	var length int64

	for list != nil && list != pair.Null {
		length++

		list = pair.Cdr(list)
	}

	return length
}

// New creates a new list composed of all of the elements in elements.
func New(elements ...cell.T) cell.T {
	b := &Builder{}

	for _, e := range elements {
		b.Append(e)
	}

	return b.List()
}

// Map creates a new list by applying f to each element of list, in order.
// The first error returned by f stops the walk and is returned.
// The list must be non-circular.
func Map(list cell.T, f func(cell.T) (cell.T, error)) (cell.T, error) {
	b := &Builder{}

	for ; list != pair.Null; list = pair.Cdr(list) {
		v, err := f(pair.Car(list))
		if err != nil {
			return nil, err
		}

		b.Append(v)
	}

	return b.List(), nil
}

// Nth returns the element at index in list or nil if list is too short.
// The list must be non-circular.
func Nth(list cell.T, index int) cell.T {
	for ; list != pair.Null; list = pair.Cdr(list) {
		if index == 0 {
			return pair.Car(list)
		}

		index--
	}

	return nil
}

// Slice returns the elements of list as a Go slice.
// The list must be non-circular.
func Slice(list cell.T) []cell.T {
	s := make([]cell.T, 0, Length(list))

	for ; list != pair.Null; list = pair.Cdr(list) {
		s = append(s, pair.Car(list))
	}

	return s
}
