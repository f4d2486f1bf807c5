// Released under an MIT license. See LICENSE.

// Package reader turns lisp source text into expressions.
package reader

import (
	"strconv"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/lexer"
	"github.com/michaelmacinnis/lisp/internal/reader/parser"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
)

// Parse reads the single expression in text. Name labels the source in
// error messages.
func Parse(name, text string) (cell.T, error) {
	cs, err := ReadAll(name, text)
	if err != nil {
		return nil, err
	}

	switch len(cs) {
	case 0:
		return nil, errsys.New(errsys.ErrMalformedSyntax, name+": no expression")
	case 1:
		return cs[0], nil
	}

	return nil, errsys.New(
		errsys.ErrMalformedSyntax,
		name+": expected one expression, read "+strconv.Itoa(len(cs)),
	)
}

// ReadAll reads every top-level expression in text, in order.
func ReadAll(name, text string) ([]cell.T, error) {
	l := lexer.New(name)

	l.Scan(text)
	l.End()

	var cs []cell.T

	err := parser.New(func(c cell.T) {
		cs = append(cs, c)
	}, l.Token).Parse()
	if err != nil {
		return nil, err
	}

	return cs, nil
}
