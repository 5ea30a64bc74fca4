// Package environment implements the name-to-value scope chain the
// interpreter evaluates against.
package environment

import (
	"fmt"

	"github.com/eddmann/santa-lox/internal/token"
)

// Environment is a single scope: a binding map plus an optional link to
// the enclosing scope. A name may be bound at most once per Environment;
// shadowing is achieved by defining it again in an inner Environment.
type Environment struct {
	values    map[string]any
	Enclosing *Environment
}

// New creates an Environment enclosed by enclosing (nil for the globals
// environment).
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]any), Enclosing: enclosing}
}

// Define unconditionally binds name to value in this environment.
// Redeclaring an existing name in the same environment is allowed here —
// the resolver is what forbids it for local scopes at compile time.
func (e *Environment) Define(name string, value any) {
	e.values[name] = value
}

// Get resolves name by walking the chain outward, starting at this
// environment.
func (e *Environment) Get(name token.Token) (any, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, &UndefinedVariableError{Name: name}
}

// Assign rebinds name in the nearest environment (walking outward) where
// it already exists. It never creates a new binding.
func (e *Environment) Assign(name token.Token, value any) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return &UndefinedVariableError{Name: name}
}

// ancestor walks exactly distance enclosing links outward (0 = this
// environment).
func (e *Environment) ancestor(distance int) *Environment {
	env := e
	for i := 0; i < distance; i++ {
		env = env.Enclosing
	}
	return env
}

// GetAt reads name at exactly distance hops out, without falling back to
// an enclosing scope. The caller — the interpreter, guided by the
// resolver's side-table — guarantees the binding exists there; a missing
// binding here is an interpreter bug, not a user-facing error.
func (e *Environment) GetAt(distance int, name string) any {
	env := e.ancestor(distance)
	v, ok := env.values[name]
	if !ok {
		panic(fmt.Sprintf("environment: resolved binding %q missing at distance %d", name, distance))
	}
	return v
}

// AssignAt writes name at exactly distance hops out, without fallback.
func (e *Environment) AssignAt(distance int, name token.Token, value any) {
	e.ancestor(distance).values[name.Lexeme] = value
}

// UndefinedVariableError is returned by Get/Assign when name is bound
// nowhere in the chain.
type UndefinedVariableError struct {
	Name token.Token
}

func (e *UndefinedVariableError) Error() string {
	return "Undefined variable '" + e.Name.Lexeme + "'."
}
