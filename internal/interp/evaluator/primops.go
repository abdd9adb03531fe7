package evaluator

import (
	"github.com/rljacobson/cps/internal/ast"
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// Continuation is one arm's continuation meaning, as constructed in
// evalPrimopExp: given the result values a primop rule supplies, it
// produces the Computation for that arm.
type Continuation func(al []runtime.Value) runtime.Computation

// evalprim is the primitive-operator evaluator, per spec.md §4.5. Each
// case below returns a Computation — a function from Store to Step — so
// that store reads/writes and the eventual continuation call are all
// deferred into the trampoline, exactly like the expression evaluator.
func (ev *Evaluator) evalprim(op ast.Primop, args []runtime.Value, conts []Continuation) runtime.Computation {
	switch op {

	// ---- integer arithmetic --------------------------------------------------
	case ast.Add:
		return ev.intBinaryChecked(args, conts, ev.Bounds.CheckedAdd)
	case ast.Sub:
		return ev.intBinaryChecked(args, conts, ev.Bounds.CheckedSub)
	case ast.Mul:
		return ev.intBinaryChecked(args, conts, ev.Bounds.CheckedMul)
	case ast.Div:
		return ev.intDiv(args, conts)
	case ast.Negate:
		return ev.intNeg(args, conts)

	// ---- integer / generic comparisons --------------------------------------
	case ast.Lt:
		return ev.intCompare(args, conts, func(x, y int64) bool { return x < y })
	case ast.Le:
		return ev.intCompare(args, conts, func(x, y int64) bool { return x <= y })
	case ast.Gt:
		return ev.intCompare(args, conts, func(x, y int64) bool { return x > y })
	case ast.Ge:
		return ev.intCompare(args, conts, func(x, y int64) bool { return x >= y })
	case ast.IEql:
		return ev.genericEquality(args, conts, true)
	case ast.INeq:
		return ev.genericEquality(args, conts, false)
	case ast.RangeChk:
		return ev.rangeChk(args, conts)

	// ---- boxed discriminator -------------------------------------------------
	case ast.Boxed:
		return ev.boxed(args, conts)

	// ---- dereference / subscript ----------------------------------------------
	case ast.Deref:
		return ev.subscript(append(append([]runtime.Value{}, args...), &runtime.IntegerValue{Value: 0}), conts)
	case ast.Subscript:
		return ev.subscript(args, conts)
	case ast.Ordof:
		return ev.ordof(args, conts)

	// ---- assignment / update --------------------------------------------------
	case ast.Assign:
		return ev.update(append([]runtime.Value{args[0], &runtime.IntegerValue{Value: 0}}, args[1:]...), conts)
	case ast.Update:
		return ev.update(args, conts)
	case ast.UnboxedAssign:
		return ev.unboxedUpdate(append([]runtime.Value{args[0], &runtime.IntegerValue{Value: 0}}, args[1:]...), conts)
	case ast.UnboxedUpdate:
		return ev.unboxedUpdate(args, conts)
	case ast.StorePrim:
		return ev.storeByte(args, conts)

	// ---- allocation -------------------------------------------------------
	case ast.MakeRef:
		return ev.makeRef(args, conts)
	case ast.MakeRefUnboxed:
		return ev.makeRefUnboxed(args, conts)

	// ---- lengths ------------------------------------------------------------
	case ast.ALength:
		return ev.alength(args, conts)
	case ast.SLength:
		return ev.slength(args, conts)

	// ---- handler --------------------------------------------------------------
	case ast.GetHdlr:
		return ev.getHdlr(conts)
	case ast.SetHdlr:
		return ev.setHdlr(args, conts)

	// ---- float arithmetic and comparison ---------------------------------
	case ast.FAdd:
		return ev.realBinaryChecked(args, conts, func(x, y float64) float64 { return x + y })
	case ast.FSub:
		return ev.realBinaryChecked(args, conts, func(x, y float64) float64 { return x - y })
	case ast.FMul:
		return ev.realBinaryChecked(args, conts, func(x, y float64) float64 { return x * y })
	case ast.FDiv:
		return ev.realDiv(args, conts)
	case ast.FEql:
		return ev.realCompare(args, conts, func(x, y float64) bool { return x == y })
	case ast.FNeq:
		return ev.realCompare(args, conts, func(x, y float64) bool { return x != y })
	case ast.FLt:
		return ev.realCompare(args, conts, func(x, y float64) bool { return x < y })
	case ast.FLe:
		return ev.realCompare(args, conts, func(x, y float64) bool { return x <= y })
	case ast.FGt:
		return ev.realCompare(args, conts, func(x, y float64) bool { return x > y })
	case ast.FGe:
		return ev.realCompare(args, conts, func(x, y float64) bool { return x >= y })

	// ---- bitwise ----------------------------------------------------------
	case ast.RShift:
		return ev.intBinaryPlain(args, conts, func(x, y int64) int64 { return x >> uint(y) })
	case ast.LShift:
		return ev.intBinaryPlain(args, conts, func(x, y int64) int64 { return x << uint(y) })
	case ast.Orb:
		return ev.intBinaryPlain(args, conts, func(x, y int64) int64 { return x | y })
	case ast.Andb:
		return ev.intBinaryPlain(args, conts, func(x, y int64) int64 { return x & y })
	case ast.Xorb:
		return ev.intBinaryPlain(args, conts, func(x, y int64) int64 { return x ^ y })
	case ast.Notb:
		return ev.intUnaryPlain(args, conts, func(x int64) int64 { return ^x })

	default:
		panic(cpserrors.NewIncompletePrimop(string(op), "no rule for this operator"))
	}
}

func mustInt(op string, v runtime.Value) int64 {
	iv, ok := v.(*runtime.IntegerValue)
	if !ok {
		panic(typeMismatch(op, v))
	}
	return iv.Value
}

func mustReal(op string, v runtime.Value) float64 {
	rv, ok := v.(*runtime.RealValue)
	if !ok {
		panic(typeMismatch(op, v))
	}
	return rv.Value
}
