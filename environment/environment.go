/*
File    : loxwalk/environment/environment.go

Package environment implements loxwalk's lexically-scoped variable
bindings: a chain of scopes, each a flat name-to-value map, linked to its
enclosing scope. Lookup walks innermost-first; a block introduces a child
scope and discards it on exit.
*/
package environment

import (
	"fmt"

	"github.com/riverstone-labs/loxwalk/value"
)

// Environment is one scope in the chain. The global scope has a nil
// Enclosing.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates a fresh, empty scope enclosed by parent. Pass nil for the
// global scope.
func New(parent *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: parent}
}

// Define binds name to v in this scope. Re-declaring an existing name in
// the same scope silently overwrites it — unlike Assign, Define never
// errors and never searches enclosing scopes.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by searching this scope, then each enclosing scope in
// turn. It reports an error naming the unbound variable if none defines it.
func (e *Environment) Get(name string) (value.Value, error) {
	for scope := e; scope != nil; scope = scope.Enclosing {
		if v, ok := scope.values[name]; ok {
			return v, nil
		}
	}
	return value.Value{}, fmt.Errorf("Undefined variable '%s'.", name)
}

// Assign finds the innermost scope that already defines name and replaces
// its value in place. It reports an error naming the unbound variable if
// no scope in the chain defines it — unlike Define, Assign never creates
// a new binding.
func (e *Environment) Assign(name string, v value.Value) error {
	for scope := e; scope != nil; scope = scope.Enclosing {
		if _, ok := scope.values[name]; ok {
			scope.values[name] = v
			return nil
		}
	}
	return fmt.Errorf("Undefined variable '%s'.", name)
}
