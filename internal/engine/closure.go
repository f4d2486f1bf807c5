// Released under an MIT license. See LICENSE.

package engine

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/literal"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
	"github.com/michaelmacinnis/lisp/internal/type/list"
	"github.com/michaelmacinnis/lisp/internal/type/pair"
	"github.com/michaelmacinnis/lisp/internal/type/sym"
)

// Closure is a lambda paired with the scope where it was evaluated.
type Closure struct {
	Body   cell.T   // Body of the lambda. Not evaluated until called.
	Labels cell.T   // Parameter list, as read.
	Params []string // Parameter names, in order.
	Scope  scope.T  // Scope captured when the lambda was evaluated.
}

// The closure type is a cell.

// Equal returns true if the cell c is the same closure as f.
func (f *Closure) Equal(c cell.T) bool {
	o, ok := c.(*Closure)
	return ok && o == f
}

// Name returns the name of the closure type.
func (f *Closure) Name() string {
	return "closure"
}

// The closure type is callable.

// Call binds args to f's parameters, in order, in a new scope enclosed by
// the captured scope and evaluates the body there. Extra arguments are
// ignored. Parameters without an argument are bound to the absent value.
func (f *Closure) Call(args cell.T) (cell.T, error) {
	bindings := make(map[string]cell.T, len(f.Params))

	for _, k := range f.Params {
		var v cell.T
		if args != pair.Null {
			v = pair.Car(args)
			args = pair.Cdr(args)
		}

		bindings[k] = v
	}

	return Evaluate(f.Body, f.Scope.Child(bindings))
}

// The closure type has a literal representation.

// Literal returns the literal representation of the closure f.
func (f *Closure) Literal() string {
	return "(|lambda " + literal.String(f.Labels) + " " + literal.String(f.Body) + "|)"
}

// The closure type is a stringer.

// String returns the text representation of the closure f.
func (f *Closure) String() string {
	return f.Literal()
}

// newClosure handles (lambda (params...) body). Neither the parameter list
// nor the body is evaluated.
func newClosure(c cell.T, s scope.T) (cell.T, error) {
	where := sym.Source(pair.Car(c))

	if list.Length(c) != 3 { //nolint:gomnd
		return nil, errsys.New(
			errsys.ErrMalformedSyntax,
			"expected (lambda (parameters...) body), got "+literal.String(c),
		).At(where)
	}

	labels := pair.Cadr(c)
	if !pair.Is(labels) {
		return nil, errsys.New(
			errsys.ErrMalformedSyntax,
			"lambda parameters must be a list, got "+literal.String(labels),
		).At(where)
	}

	params := make([]string, 0, list.Length(labels))

	for _, p := range list.Slice(labels) {
		if !sym.Is(p) {
			return nil, errsys.New(
				errsys.ErrMalformedSyntax,
				"lambda parameter must be an identifier, got "+literal.String(p),
			).At(where)
		}

		params = append(params, sym.To(p).String())
	}

	return &Closure{
		Body:   pair.Caddr(c),
		Labels: labels,
		Params: params,
		Scope:  s,
	}, nil
}
