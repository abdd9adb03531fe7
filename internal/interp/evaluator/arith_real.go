package evaluator

import "github.com/rljacobson/cps/internal/interp/runtime"

// realBinaryChecked implements fadd/fsub/fmul: compute via op, raise
// overflow_exn if the result escapes [MinReal, MaxReal] or is non-finite.
func (ev *Evaluator) realBinaryChecked(args []runtime.Value, conts []Continuation, op func(x, y float64) float64) runtime.Computation {
	x := mustReal("fadd/fsub/fmul", args[0])
	y := mustReal("fadd/fsub/fmul", args[1])
	r, err := ev.Bounds.CheckedRealBinary(x, y, op)
	if err != nil {
		return ev.doRaise(ev.Overflow)
	}
	return conts[0]([]runtime.Value{&runtime.RealValue{Value: r}})
}

// realDiv implements fdiv: division by literal 0.0 raises div_exn without
// computing the quotient, mirroring intDiv.
func (ev *Evaluator) realDiv(args []runtime.Value, conts []Continuation) runtime.Computation {
	x := mustReal("fdiv", args[0])
	y := mustReal("fdiv", args[1])
	if y == 0.0 {
		return ev.doRaise(ev.DivZero)
	}
	r, err := ev.Bounds.CheckedRealBinary(x, y, func(a, b float64) float64 { return a / b })
	if err != nil {
		return ev.doRaise(ev.Overflow)
	}
	return conts[0]([]runtime.Value{&runtime.RealValue{Value: r}})
}

// realCompare implements feql/fneq/flt/fle/fgt/fge: pred selects conts[0]
// (t) or conts[1] (f), each invoked with no arguments.
func (ev *Evaluator) realCompare(args []runtime.Value, conts []Continuation, pred func(x, y float64) bool) runtime.Computation {
	x := mustReal("fcompare", args[0])
	y := mustReal("fcompare", args[1])
	if pred(x, y) {
		return conts[0](nil)
	}
	return conts[1](nil)
}
