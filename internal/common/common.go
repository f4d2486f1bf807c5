// Released under an MIT license. See LICENSE.

// Package common holds helpers shared by the reader, engine, and ui.
package common

import (
	"fmt"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
)

type Stringer = fmt.Stringer

// String returns the text for a cell as print displays it. A string is
// displayed without quotes. Everything else is displayed as a literal.
func String(c cell.T) string {
	if c == nil {
		return literal.Undefined
	}

	if s, ok := c.(Stringer); ok {
		return s.String()
	}

	return literal.String(c)
}
