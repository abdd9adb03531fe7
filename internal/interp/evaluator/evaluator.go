// Package evaluator implements the denotational meaning function for CPS
// expressions: E(e)(env) : Store -> Answer (realized as a trampoline, see
// runtime.Computation/runtime.Step/runtime.Run), and the primitive
// operator evaluator evalprim it dispatches to.
package evaluator

import (
	"github.com/rljacobson/cps/internal/ast"
	"github.com/rljacobson/cps/internal/numeric"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// Evaluator carries the configuration parameters spec.md §6 names as
// external inputs to eval: host numeric bounds, the equality oracle, and
// the two built-in exception sentinels. One Evaluator is shared across an
// entire run; it holds no mutable per-call state.
type Evaluator struct {
	Bounds  numeric.Bounds
	Oracle  runtime.Oracle
	Overflow runtime.Value
	DivZero  runtime.Value
}

// New returns an Evaluator configured with DefaultBounds, a
// DeterministicOracle pinned to true (so equality tests are reproducible
// unless the caller opts into PseudoPointerOracle), and the standard
// overflow/div-by-zero exception tags.
func New() *Evaluator {
	return &Evaluator{
		Bounds:   numeric.DefaultBounds(),
		Oracle:   runtime.DeterministicOracle{Answer: true},
		Overflow: OverflowExn,
		DivZero:  DivExn,
	}
}

// V coerces a syntactic Value into a denotable Value against env, per
// spec.md §4.1:
//
//	Integer(i)          -> *IntegerValue
//	Real(s)             -> *RealValue via ev.Bounds.DecodeReal
//	String(s)           -> *StringValue
//	Variable(v)/Label(v) -> env(v)
func (ev *Evaluator) V(env *runtime.Environment, v ast.Value) runtime.Value {
	switch val := v.(type) {
	case ast.IntegerLit:
		return &runtime.IntegerValue{Value: val.Value}
	case ast.RealLit:
		r, err := ev.Bounds.DecodeReal(val.Literal)
		if err != nil {
			panic(err)
		}
		return &runtime.RealValue{Value: r}
	case ast.StringLit:
		return &runtime.StringValue{Value: val.Value}
	case ast.VariableRef:
		return env.Get(string(val.Name))
	case ast.LabelRef:
		return env.Get(string(val.Name))
	default:
		panic("evaluator.V: unknown ast.Value variant")
	}
}

// Vn coerces a slice of syntactic values, preserving order (left to
// right, matching the structural evaluation-order rules of spec.md §5).
func (ev *Evaluator) Vn(env *runtime.Environment, vs []ast.Value) []runtime.Value {
	out := make([]runtime.Value, len(vs))
	for i, v := range vs {
		out[i] = ev.V(env, v)
	}
	return out
}
