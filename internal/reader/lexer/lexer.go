// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lisp language.
//
// The lisp lexer adapts the state function approach used by Go's text/template
// lexer and described in detail in Rob Pike's talk "Lexical Scanning in Go".
// See https://talks.golang.org/2011/lex.slide for more information.
//
// Parentheses are always tokens of their own. Everything else is split on
// whitespace. Quotes do not group, so a string literal can't contain
// whitespace or a parenthesis.
package lexer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/michaelmacinnis/lisp/internal/reader/token"
	"github.com/michaelmacinnis/lisp/internal/type/loc"
)

// T holds the state of the scanner.
type T struct {
	bytes string   // Buffer being scanned.
	ended bool     // True when no more buffers will be scanned.
	first int      // Index of the current token's first byte.
	index int      // Index of the current byte.
	queue []string // Buffers waiting to be scanned.
	state action   // Current action.

	char int // Character position of the current byte.
	line int // Line of the current byte.

	source loc.T

	tokens []*token.T
}

// New creates a new T. Label can be a file name or other identifier.
func New(label string) *T {
	l := &T{
		char: 1,
		line: 1,
		source: loc.T{
			Char: 1,
			Line: 1,
			Name: label,
		},
	}

	l.state = skipWhitespace

	return l
}

// End tells the lexer that no more buffers will be scanned.
// An atom at the end of the final buffer is complete.
func (l *T) End() {
	l.ended = true
}

// Scan passes a text buffer to the lexer for scanning.
// If a buffer is currently being scanned, the new buffer will
// be appended to the list of buffers waiting to be scanned.
func (l *T) Scan(text string) {
	l.queue = append(l.queue, text)
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for len(l.tokens) == 0 {
		l.gather()

		state := l.state(l)
		if state == nil {
			break
		}

		l.state = state
	}

	if len(l.tokens) == 0 {
		return nil
	}

	t := l.tokens[0]
	l.tokens = l.tokens[1:]

	return t
}

type action func(*T) action

const eof = -1

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		l.line++
		l.char = 1
	} else {
		l.char++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	l.tokens = append(l.tokens, token.New(c, v, l.source))
	l.skip()
}

func (l *T) gather() {
	if len(l.queue) == 0 {
		return
	}

	// Prepend leftover to new bytes.
	l.bytes = l.bytes[l.first:] + strings.Join(l.queue, "")
	l.queue = nil
	l.index -= l.first
	l.first = 0
}

func (l *T) peek() (rune, int) {
	r, w := rune(eof), 0
	if l.index < len(l.bytes) {
		r, w = utf8.DecodeRuneInString(l.bytes[l.index:])
	}

	return r, w
}

func (l *T) skip() {
	l.first = l.index
	l.source.Char = l.char
	l.source.Line = l.line
}

// T states.

func scanAtom(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			if l.ended && l.index > l.first {
				l.emit(token.Atom, l.Text())
			}

			return nil
		case r == '(' || r == ')' || unicode.IsSpace(r):
			l.emit(token.Atom, l.Text())

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r, w := l.peek()

		switch {
		case r == eof:
			return nil
		case r == '(' || r == ')':
			l.accept(r, w)
			l.emit(token.Class(r), l.Text())
		case unicode.IsSpace(r):
			l.accept(r, w)
			l.skip()
		default:
			return scanAtom
		}
	}
}
