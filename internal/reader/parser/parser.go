// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lisp language.
package parser

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/reader/token"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/num"
	"github.com/michaelmacinnis/lisp/internal/type/str"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// T holds the state of the parser.
type T struct {
	ahead int             // Lookahead count.
	depth int             // Number of lists currently open.
	emit  func(cell.T)    // Function to call to emit a parsed expression.
	item  func() *token.T // Function to call to get another token.
	token *token.T        // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of cells.
func New(emit func(cell.T), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Categorize converts an atom into the literal or identifier it represents.
// An atom that is entirely a number is a number. An atom bounded by double
// quotes is a string holding the text between the quotes. Any other atom
// that contains a double quote is malformed. Everything else is an identifier.
func Categorize(t *token.T) (cell.T, error) {
	s := t.Value()

	if n, ok := num.Parse(s); ok {
		return n, nil
	}

	if strings.HasPrefix(s, `"`) {
		if len(s) < 2 || !strings.HasSuffix(s, `"`) { //nolint:gomnd
			return nil, malformed(t, "unterminated string "+s)
		}

		return str.New(s[1 : len(s)-1]), nil
	}

	if strings.ContainsRune(s, '"') {
		return nil, malformed(t, "unexpected quote in "+s)
	}

	return sym.Located(s, t.Source()), nil
}

// Depth returns the number of lists opened but not yet closed.
func (p *T) Depth() int {
	return p.depth
}

// Parse consumes tokens and emits cells until there are no more tokens.
// It stops at the first malformed expression and returns the error.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case *errsys.T:
			err = r
		case error:
			err = errsys.New(errsys.ErrMalformedSyntax, r.Error())
		case string:
			err = errsys.New(errsys.ErrMalformedSyntax, r)
		default:
			err = errsys.New(errsys.ErrMalformedSyntax, "unexpected error")
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		p.emit(p.expression())
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic(errors.New("nothing to consume"))
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

// T state functions.

// <expression> ::= '(' <expression>* ')' | Atom .
func (p *T) expression() cell.T {
	t := p.consume()

	switch {
	case t.Is('('):
		return p.list(t)
	case t.Is(')'):
		panic(malformed(t, "unexpected ')'"))
	}

	c, err := Categorize(t)
	if err != nil {
		panic(err)
	}

	return c
}

func (p *T) list(open *token.T) cell.T {
	p.depth++
	defer func() { p.depth-- }()

	b := &list.Builder{}

	for {
		t := p.peek()
		if t == nil {
			panic(malformed(open, "unexpected end of input; '(' is not closed"))
		}

		if t.Is(')') {
			p.consume()

			return b.List()
		}

		b.Append(p.expression())
	}
}

func malformed(t *token.T, msg string) *errsys.T {
	return errsys.New(errsys.ErrMalformedSyntax, msg).At(t.Source())
}
