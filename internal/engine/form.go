// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// form is the way a list is evaluated. Adding a special form means
// adding a form here, a case to classify, and a case to evaluateList.
type form int

const (
	application form = iota
	lambda
)

func (f form) String() string {
	switch f {
	case application:
		return "application"
	case lambda:
		return "lambda"
	}

	return "unknown"
}

// classify returns the form for the list c. Only an identifier in the
// head position can name a special form.
func classify(c cell.T) form {
	if c == pair.Null {
		return application
	}

	head := pair.Car(c)
	if !sym.Is(head) {
		return application
	}

	switch sym.To(head).String() {
	case "lambda":
		return lambda
	}

	return application
}
