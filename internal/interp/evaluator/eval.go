package evaluator

import (
	"github.com/rljacobson/cps/internal/ast"
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// EvalExpr is the denotational meaning function E(e)(env), per spec.md §4.4.
// It returns a Computation rather than recursing into the next
// expression directly: every case below defers its "and then evaluate
// e'" step to the trampoline via runtime.Bounce, so that deeply nested
// tail calls never grow the Go call stack (spec.md §5).
func (ev *Evaluator) EvalExpr(e ast.CExp, env *runtime.Environment) runtime.Computation {
	switch node := e.(type) {
	case *ast.RecordExp:
		return ev.evalRecord(node, env)
	case *ast.SelectExp:
		return ev.evalSelect(node, env)
	case *ast.OffsetExp:
		return ev.evalOffset(node, env)
	case *ast.AppExp:
		return ev.evalApp(node, env)
	case *ast.FixExp:
		return ev.evalFix(node, env)
	case *ast.SwitchExp:
		return ev.evalSwitch(node, env)
	case *ast.PrimopExp:
		return ev.evalPrimopExp(node, env)
	default:
		panic(cpserrors.New(cpserrors.CategoryTypeMismatch, "unknown CExp variant"))
	}
}

// Record(fields, w, e'): build a new record from fields (evaluated left
// to right against a single environment, base 0), bind w, continue.
func (ev *Evaluator) evalRecord(node *ast.RecordExp, env *runtime.Environment) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		elems := make([]runtime.Value, len(node.Fields))
		for i, f := range node.Fields {
			elems[i] = F(ev.V(env, f.Value), f.Path)
		}
		rec := &runtime.RecordValue{Elements: elems, Base: 0}
		next := runtime.Bind(env, string(node.W), rec)
		return runtime.Bounce(ev.EvalExpr(node.Body, next), s)
	}
}

// Select(i, v, w, e'): v must denote a Record(l, j); bind w to l[i+j].
func (ev *Evaluator) evalSelect(node *ast.SelectExp, env *runtime.Environment) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		v := ev.V(env, node.V)
		rec, ok := v.(*runtime.RecordValue)
		if !ok {
			panic(typeMismatch("Select", v))
		}
		w := rec.At(node.I)
		next := runtime.Bind(env, string(node.W), w)
		return runtime.Bounce(ev.EvalExpr(node.Body, next), s)
	}
}

// Offset(i, v, w, e'): v must denote a Record(l, j); bind w to
// Record(l, i+j) — same backing storage, different base.
func (ev *Evaluator) evalOffset(node *ast.OffsetExp, env *runtime.Environment) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		v := ev.V(env, node.V)
		rec, ok := v.(*runtime.RecordValue)
		if !ok {
			panic(typeMismatch("Offset", v))
		}
		w := &runtime.RecordValue{Elements: rec.Elements, Base: rec.Base + node.I}
		next := runtime.Bind(env, string(node.W), w)
		return runtime.Bounce(ev.EvalExpr(node.Body, next), s)
	}
}

// App(f, args): f must denote a Function(g); call g on the evaluated
// argument list. The call itself is the tail position — the Computation
// g returns is handed straight to the trampoline.
func (ev *Evaluator) evalApp(node *ast.AppExp, env *runtime.Environment) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		fv := ev.V(env, node.Fn)
		fn, ok := fv.(*runtime.FunctionValue)
		if !ok {
			panic(typeMismatch("App", fv))
		}
		args := ev.Vn(env, node.Args)
		return runtime.Bounce(fn.Meaning(args), s)
	}
}

// Switch(v, arms): v must denote an Integer(i) with 0 <= i < len(arms);
// evaluate arms[i].
func (ev *Evaluator) evalSwitch(node *ast.SwitchExp, env *runtime.Environment) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		v := ev.V(env, node.V)
		iv, ok := v.(*runtime.IntegerValue)
		if !ok {
			panic(typeMismatch("Switch", v))
		}
		i := int(iv.Value)
		if i < 0 || i >= len(node.Arms) {
			panic(cpserrors.NewSwitchRange(i, len(node.Arms)))
		}
		return runtime.Bounce(ev.EvalExpr(node.Arms[i], env), s)
	}
}

// Primop(p, args, binders, arms): evaluate args left to right; build one
// continuation meaning per arm, each of which binds binders to whatever
// values evalprim's chosen continuation supplies and continues with that
// arm's body; dispatch to evalprim.
func (ev *Evaluator) evalPrimopExp(node *ast.PrimopExp, env *runtime.Environment) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		operands := ev.Vn(env, node.Args)
		conts := make([]Continuation, len(node.Arms))
		for i, arm := range node.Arms {
			arm := arm
			conts[i] = func(al []runtime.Value) runtime.Computation {
				next := runtime.Bindn(env, stringsOf(node.Binders), al)
				return ev.EvalExpr(arm, next)
			}
		}
		return runtime.Bounce(ev.evalprim(node.Op, operands, conts), s)
	}
}

func stringsOf(vs []ast.Variable) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = string(v)
	}
	return out
}
