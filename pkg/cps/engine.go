// Package cps is the public facade over the CPS interpreter core. It is
// the one exported entry point spec.md §6 describes: given a CPS
// expression, an initial environment (formals/args), and a store, it
// produces an Answer. Everything else — bounds, the equality oracle,
// tracing — is ambient configuration layered on top via functional
// options, in the shape of the teacher's pkg/dwscript engine facade.
package cps

import (
	"fmt"

	"github.com/rljacobson/cps/internal/ast"
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/evaluator"
	"github.com/rljacobson/cps/internal/interp/runtime"
	"github.com/rljacobson/cps/internal/numeric"
)

// Engine wraps an evaluator.Evaluator with ambient configuration.
type Engine struct {
	ev    *evaluator.Evaluator
	trace func(msg string)
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithBounds overrides the default (tagged 31-bit) integer/real bounds.
func WithBounds(b numeric.Bounds) Option {
	return func(e *Engine) { e.ev.Bounds = b }
}

// WithOracle overrides the default (deterministic, always-true) equality
// oracle — e.g. runtime.NewPseudoPointerOracle for production
// use, or a DeterministicOracle{Answer: false} to pin the other branch in
// a test.
func WithOracle(o runtime.Oracle) Option {
	return func(e *Engine) { e.ev.Oracle = o }
}

// WithTrace installs a callback invoked once per top-level Eval call with
// a one-line summary; used by `cpsi trace` (see cmd/cpsi/cmd/trace.go).
func WithTrace(fn func(msg string)) Option {
	return func(e *Engine) { e.trace = fn }
}

// New constructs an Engine with the given options applied over
// evaluator.New()'s defaults.
func New(opts ...Option) *Engine {
	e := &Engine{ev: evaluator.New()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Result is the outcome of a top-level Eval call.
type Result struct {
	// Answer is the opaque value delivered to whatever continuation
	// Eval's top-level machinery invoked last — either the program's
	// normal top continuation, or (if an uncaught exception propagated
	// all the way to the initial handler) that handler's continuation.
	Answer runtime.Answer
	// Store is the final store version, for callers that want to inspect
	// allocated state after evaluation (e.g. tests asserting on §8's
	// "allocate-and-read" scenario).
	Store runtime.Store
}

// Eval binds formals to args, installs handler as the initial exception
// handler at the store's fixed handler location, and runs the program to
// an Answer. Implementation-level failures (spec.md §4.7/§7 — malformed
// CPS input) are never recovered by the core evaluator; Eval recovers
// them at this one boundary and reports them as a Go error, the same
// shape as the teacher's cmd/dwscript run command converting parser/
// semantic failures into a returned error before they reach main.
func (e *Engine) Eval(formals []ast.Variable, body ast.CExp, args []runtime.Value, handler runtime.Value) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			if implErr, ok := r.(*cpserrors.ImplementationError); ok {
				err = implErr
				return
			}
			if goErr, ok := r.(error); ok {
				err = goErr
				return
			}
			err = fmt.Errorf("cps: %v", r)
		}
	}()

	if handler == nil {
		handler = runtime.DefaultHandler()
	}

	store := runtime.NewStore()
	store = store.Upd(store.HandlerLoc(), handler)

	if e.trace != nil {
		e.trace(fmt.Sprintf("eval: %d formal(s), %d initial arg(s)", len(formals), len(args)))
	}

	answer, finalStore := e.ev.Eval(formals, body, args, store)
	return Result{Answer: answer, Store: finalStore}, nil
}
