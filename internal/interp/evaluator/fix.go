package evaluator

import (
	"github.com/rljacobson/cps/internal/ast"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// groupEnv is a one-slot indirection cell: every closure in a Fix group
// captures a pointer to this cell rather than an Environment value
// directly, so the cell can be patched in after all the group's Function
// denotations (and the environment frame binding their names) exist. This
// is the "build the group map then patch closure back-references" option
// spec.md §9's closure-cycle design note calls for — it avoids ever
// copying a partially built environment.
type groupEnv struct {
	env *runtime.Environment
}

// evalFix implements Fix(defs, e'), per spec.md §4.4: construct mutually
// recursive Function denotations, closing over an environment in which
// every def's name is bound to its own (in-group) denotation, then
// continue with e' in that same extended environment.
func (ev *Evaluator) evalFix(node *ast.FixExp, env *runtime.Environment) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		cell := &groupEnv{}

		fns := make([]*runtime.FunctionValue, len(node.Defs))
		for i, def := range node.Defs {
			def := def
			fns[i] = &runtime.FunctionValue{
				Meaning: func(args []runtime.Value) runtime.Computation {
					local := runtime.Bindn(cell.env, stringsOf(def.Formals), args)
					return ev.EvalExpr(def.Body, local)
				},
			}
		}

		rec := env
		for i, def := range node.Defs {
			rec = runtime.Bind(rec, string(def.Name), fns[i])
		}
		cell.env = rec

		return runtime.Bounce(ev.EvalExpr(node.Body, rec), s)
	}
}
