package evaluator

import (
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// genericEquality implements ieql/ineq. Integer operands compare
// exactly. Real/String/Record/Array/UnboxedArray/ByteArray operands are
// nondeterministic per spec.md §3/§9: structurally unequal operands are
// never equal; structurally equal empty operands (zero-length
// Array/UArray/ByteArray/Record, or the empty String) compare equal
// without consulting the oracle; everything else structurally equal goes
// through ev.Oracle. Function
// operands are undefined — equality on closures can never be decided.
func (ev *Evaluator) genericEquality(args []runtime.Value, conts []Continuation, wantEq bool) runtime.Computation {
	a, b := args[0], args[1]
	eq := ev.structurallyEqual(a, b)
	if eq == wantEq {
		return conts[0](nil)
	}
	return conts[1](nil)
}

func (ev *Evaluator) structurallyEqual(a, b runtime.Value) bool {
	switch av := a.(type) {
	case *runtime.IntegerValue:
		bv, ok := b.(*runtime.IntegerValue)
		return ok && av.Value == bv.Value
	case *runtime.RealValue:
		bv, ok := b.(*runtime.RealValue)
		if !ok {
			return false
		}
		return ev.oracleEquality(av.Value == bv.Value, false)
	case *runtime.StringValue:
		bv, ok := b.(*runtime.StringValue)
		if !ok {
			return false
		}
		same := av.Value == bv.Value
		return ev.oracleEquality(same, len(av.Value) == 0)
	case *runtime.RecordValue:
		bv, ok := b.(*runtime.RecordValue)
		if !ok {
			return false
		}
		same := recordsStructurallyEqual(av, bv)
		return ev.oracleEquality(same, len(av.Elements) == 0)
	case *runtime.ArrayValue:
		bv, ok := b.(*runtime.ArrayValue)
		if !ok {
			return false
		}
		same := locationsEqual(av.Locations, bv.Locations)
		return ev.oracleEquality(same, len(av.Locations) == 0)
	case *runtime.UnboxedArrayValue:
		bv, ok := b.(*runtime.UnboxedArrayValue)
		if !ok {
			return false
		}
		same := locationsEqual(av.Locations, bv.Locations)
		return ev.oracleEquality(same, len(av.Locations) == 0)
	case *runtime.ByteArrayValue:
		bv, ok := b.(*runtime.ByteArrayValue)
		if !ok {
			return false
		}
		same := locationsEqual(av.Locations, bv.Locations)
		return ev.oracleEquality(same, len(av.Locations) == 0)
	case *runtime.FunctionValue:
		panic(cpserrors.NewFunctionEquality())
	default:
		panic(typeMismatch("ieql/ineq", a))
	}
}

// oracleEquality resolves the nondeterministic case: structurally unequal
// operands are not equal; structurally equal operands of the designated
// "empty" case are equal by definition without consulting the oracle
// (spec.md §9); otherwise the oracle decides between "equal" and "not
// equal".
func (ev *Evaluator) oracleEquality(structurallyEqual, isEmptyCase bool) bool {
	if !structurallyEqual {
		return false
	}
	if isEmptyCase {
		return true
	}
	return ev.Oracle.Choose(true, false)
}

// recordsStructurallyEqual compares two records element-wise, ignoring
// Base (two records alias-equal modulo Off are still the "same shape").
// This is a plain structural walk, not a nondeterministic comparison —
// the oracle is only consulted once, at the top level, by the caller.
func recordsStructurallyEqual(a, b *runtime.RecordValue) bool {
	na, nb := len(a.Elements)-a.Base, len(b.Elements)-b.Base
	if na != nb {
		return false
	}
	for i := 0; i < na; i++ {
		if !plainValueEqual(a.At(i), b.At(i)) {
			return false
		}
	}
	return true
}

// plainValueEqual is a deterministic structural equality used only to
// feed the top-level nondeterministic decision — it never itself
// consults the oracle, and it never panics on Function operands (two
// unequal-looking functions are simply "not equal" for this inner
// check; true Function equality is only undefined at the primop level).
func plainValueEqual(a, b runtime.Value) bool {
	switch av := a.(type) {
	case *runtime.IntegerValue:
		bv, ok := b.(*runtime.IntegerValue)
		return ok && av.Value == bv.Value
	case *runtime.RealValue:
		bv, ok := b.(*runtime.RealValue)
		return ok && av.Value == bv.Value
	case *runtime.StringValue:
		bv, ok := b.(*runtime.StringValue)
		return ok && av.Value == bv.Value
	case *runtime.RecordValue:
		bv, ok := b.(*runtime.RecordValue)
		return ok && recordsStructurallyEqual(av, bv)
	case *runtime.ArrayValue:
		bv, ok := b.(*runtime.ArrayValue)
		return ok && locationsEqual(av.Locations, bv.Locations)
	case *runtime.UnboxedArrayValue:
		bv, ok := b.(*runtime.UnboxedArrayValue)
		return ok && locationsEqual(av.Locations, bv.Locations)
	case *runtime.ByteArrayValue:
		bv, ok := b.(*runtime.ByteArrayValue)
		return ok && locationsEqual(av.Locations, bv.Locations)
	default:
		return false
	}
}

func locationsEqual(a, b []runtime.Location) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
