// Released under an MIT license. See LICENSE.

// Package errsys provides lisp's error type and the kinds of failure
// that can abort reading or evaluation.
package errsys

import (
	"errors"

	"github.com/michaelmacinnis/lisp/internal/type/loc"
)

// Error kinds. Every error returned by the reader or evaluator wraps one.
var (
	ErrIndexOutOfRange   = errors.New("index out of range")
	ErrMalformedSyntax   = errors.New("malformed syntax")
	ErrNotCallable       = errors.New("not callable")
	ErrUnboundIdentifier = errors.New("unbound identifier")
	ErrWrongType         = errors.New("wrong type")
)

// T (errsys) is an error of a particular kind, optionally tied to the
// location in the source where it occurred.
type T struct {
	kind   error
	msg    string
	source *loc.T
}

// New creates a new errsys of the given kind.
func New(kind error, msg string) *T {
	return &T{kind: kind, msg: msg}
}

// Located returns err with its location set to source, if err is an
// errsys without a location. Any other error is returned unchanged.
func Located(err error, source *loc.T) error {
	var e *T
	if source == nil || !errors.As(err, &e) || e.source != nil {
		return err
	}

	return e.At(source)
}

// At returns a copy of e tied to the location source.
func (e *T) At(source *loc.T) *T {
	c := *e
	c.source = source

	return &c
}

// Error returns the text of the error e.
func (e *T) Error() string {
	s := e.kind.Error()
	if e.msg != "" {
		s += ": " + e.msg
	}

	if e.source != nil {
		s = e.source.String() + ": " + s
	}

	return s
}

// Source returns the location of the error e, or nil if it is unknown.
func (e *T) Source() *loc.T {
	return e.source
}

// Unwrap allows errors.Is to match e against its kind.
func (e *T) Unwrap() error {
	return e.kind
}
