// Released under an MIT license. See LICENSE.

package commands

import (
	"unicode/utf8"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/str"
)

func first(args cell.T) (cell.T, error) {
	c := arg(args, 0)

	switch {
	case pair.Is(c):
		if c == pair.Null {
			return nil, errsys.New(errsys.ErrIndexOutOfRange, "first of empty list")
		}

		return pair.Car(c), nil
	case str.Is(c):
		s := str.To(c).String()
		if s == "" {
			return nil, errsys.New(errsys.ErrIndexOutOfRange, "first of empty string")
		}

		_, w := utf8.DecodeRuneInString(s)

		return str.New(s[:w]), nil
	}

	return nil, wrongType("first", c)
}

func rest(args cell.T) (cell.T, error) {
	c := arg(args, 0)

	switch {
	case pair.Is(c):
		if c == pair.Null {
			return pair.Null, nil
		}

		return pair.Cdr(c), nil
	case str.Is(c):
		s := str.To(c).String()

		_, w := utf8.DecodeRuneInString(s)

		return str.New(s[w:]), nil
	}

	return nil, wrongType("rest", c)
}
