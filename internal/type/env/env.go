// Released under an MIT license. See LICENSE.

// Package env provides lisp's lexical environment type.
package env

import (
	"github.com/michaelmacinnis/lisp/internal/interface/cell"
	"github.com/michaelmacinnis/lisp/internal/interface/scope"
	"github.com/michaelmacinnis/lisp/internal/type/errsys"
)

// T (env) maps names to values and links to its enclosing env.
// The mapping is fixed when the env is created. Envs are shared by every
// closure that captures them so they must never be modified.
type T struct {
	previous scope.T
	bindings map[string]cell.T
}

type env = T

// New creates a new env with no enclosing env. The bindings map is copied.
func New(bindings map[string]cell.T) scope.T {
	return create(nil, bindings)
}

// Child creates a new env, enclosed by e, that maps exactly bindings.
func (e *env) Child(bindings map[string]cell.T) scope.T {
	return create(e, bindings)
}

// Enclosing returns the enclosing scope or nil for the root.
func (e *env) Enclosing() scope.T {
	return e.previous
}

// Lookup retrieves the value associated with the name k in e or the first
// enclosing env that defines k. A name that is bound to the absent value
// returns nil and no error.
func (e *env) Lookup(k string) (cell.T, error) {
	for s := scope.T(e); s != nil; {
		c, ok := s.(*env)
		if !ok {
			return s.Lookup(k)
		}

		if v, found := c.bindings[k]; found {
			return v, nil
		}

		s = c.previous
	}

	return nil, errsys.New(errsys.ErrUnboundIdentifier, k)
}

func create(previous scope.T, bindings map[string]cell.T) *env {
	m := make(map[string]cell.T, len(bindings))
	for k, v := range bindings {
		m[k] = v
	}

	return &env{previous: previous, bindings: m}
}
