package evaluator

import "github.com/rljacobson/cps/internal/interp/runtime"

// intBinaryChecked implements the integer + - * rules: compute via op
// (which checks the mathematical result against ev.Bounds), and on
// overflow raise overflow_exn instead of invoking conts[0]. Per spec.md
// §4.5/§8 ("Overflow gating"), the successor continuation only ever sees
// an in-range result.
func (ev *Evaluator) intBinaryChecked(args []runtime.Value, conts []Continuation, op func(x, y int64) (int64, error)) runtime.Computation {
	x := mustInt("+/-/*", args[0])
	y := mustInt("+/-/*", args[1])
	r, err := op(x, y)
	if err != nil {
		return ev.doRaise(ev.Overflow)
	}
	return conts[0]([]runtime.Value{&runtime.IntegerValue{Value: r}})
}

// intNeg implements unary negation ~. Negating minint overflows exactly
// like the binary operators.
func (ev *Evaluator) intNeg(args []runtime.Value, conts []Continuation) runtime.Computation {
	x := mustInt("~", args[0])
	r, err := ev.Bounds.CheckedNeg(x)
	if err != nil {
		return ev.doRaise(ev.Overflow)
	}
	return conts[0]([]runtime.Value{&runtime.IntegerValue{Value: r}})
}

// intDiv implements integer division: divisor 0 raises div_exn without
// computing the quotient (spec.md §8 "Division exceptions"); otherwise
// the quotient is checked for overflow like + - *.
func (ev *Evaluator) intDiv(args []runtime.Value, conts []Continuation) runtime.Computation {
	x := mustInt("/", args[0])
	y := mustInt("/", args[1])
	if y == 0 {
		return ev.doRaise(ev.DivZero)
	}
	r, err := ev.Bounds.NarrowQuotient(x, y)
	if err != nil {
		return ev.doRaise(ev.Overflow)
	}
	return conts[0]([]runtime.Value{&runtime.IntegerValue{Value: r}})
}

// intCompare implements the integer comparisons < <= > >=: pred selects
// conts[0] (t) or conts[1] (f), each invoked with no arguments.
func (ev *Evaluator) intCompare(args []runtime.Value, conts []Continuation, pred func(x, y int64) bool) runtime.Computation {
	x := mustInt("compare", args[0])
	y := mustInt("compare", args[1])
	if pred(x, y) {
		return conts[0](nil)
	}
	return conts[1](nil)
}

// intBinaryPlain implements the bitwise binary operators, which have no
// overflow semantics of their own — the result is always a valid machine
// integer by construction (shifts/masks never leave the word).
func (ev *Evaluator) intBinaryPlain(args []runtime.Value, conts []Continuation, op func(x, y int64) int64) runtime.Computation {
	x := mustInt("bitwise", args[0])
	y := mustInt("bitwise", args[1])
	return conts[0]([]runtime.Value{&runtime.IntegerValue{Value: op(x, y)}})
}

func (ev *Evaluator) intUnaryPlain(args []runtime.Value, conts []Continuation, op func(x int64) int64) runtime.Computation {
	x := mustInt("bitwise", args[0])
	return conts[0]([]runtime.Value{&runtime.IntegerValue{Value: op(x)}})
}
