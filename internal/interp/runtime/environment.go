package runtime

import (
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
)

// Environment is an immutable mapping from CPS variable names to
// denotable values. Unlike the teacher's mutable, case-insensitive scope
// store, bindings here are never overwritten in place: Bind always
// returns a new frame linked to its parent, so a reference to an older
// Environment keeps observing the bindings it had when it was captured —
// required for Fix's closures to be correct.
type Environment struct {
	name   string
	val    Value
	outer  *Environment
	sealed bool
}

// EmptyEnv is unbound at every variable.
var EmptyEnv = &Environment{sealed: true}

// Bind returns an environment mapping name to val and delegating to env
// for every other variable.
func Bind(env *Environment, name string, val Value) *Environment {
	return &Environment{name: name, val: val, outer: env}
}

// Bindn zip-binds vs to ds, innermost binding last (so Get finds vs[last]
// first — irrelevant for distinct names, but keeps the chain shallow in
// the common case of binding every name fresh).
func Bindn(env *Environment, vs []string, ds []Value) *Environment {
	if len(vs) != len(ds) {
		panic(cpserrors.NewArity("bindn", len(vs), len(ds)))
	}
	for i, v := range vs {
		env = Bind(env, v, ds[i])
	}
	return env
}

// Get looks up name, searching outward from the innermost frame. Lookup
// of an unbound variable is undefined per spec; this implementation
// panics with an ImplementationError.
func (e *Environment) Get(name string) Value {
	for env := e; env != nil && !env.sealed; env = env.outer {
		if env.name == name {
			return env.val
		}
	}
	panic(cpserrors.NewUnbound(name))
}
