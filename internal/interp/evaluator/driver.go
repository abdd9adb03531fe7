package evaluator

import (
	"github.com/rljacobson/cps/internal/ast"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// Eval is the top-level driver, per spec.md §4.6: bind formals to args in
// the empty environment, evaluate body against that environment via
// EvalExpr (the spec's E), and drive the resulting Computation to an
// Answer against store.
//
// The caller is responsible for store already having a Function
// denotation written at store.HandlerLoc() — any primop that raises
// (overflow, division by zero, or a user sethdlr/gethdlr pair) will fetch
// it on first use, and an uninitialized handler location is undefined per
// spec.md §3.
func (ev *Evaluator) Eval(formals []ast.Variable, body ast.CExp, args []runtime.Value, store runtime.Store) (runtime.Answer, runtime.Store) {
	env := runtime.Bindn(runtime.EmptyEnv, stringsOf(formals), args)
	comp := ev.EvalExpr(body, env)
	return runtime.Run(comp, store)
}
