package evaluator

import "github.com/rljacobson/cps/internal/interp/runtime"

// boxed(v): Integer is unboxed (false-branch, conts[1]); anything else is
// boxed (true-branch, conts[0]), per spec.md §4.5/§8.
func (ev *Evaluator) boxed(args []runtime.Value, conts []Continuation) runtime.Computation {
	if _, isInt := args[0].(*runtime.IntegerValue); isInt {
		return conts[1](nil)
	}
	return conts[0](nil)
}

// rangeChk(i, j) models unsigned i < unsigned j on a two's-complement
// word, per spec.md §4.5/§8:
//
//	j<0, i<0: t iff i<j     j<0, i>=0: always t
//	j>=0, i<0: always f     j>=0, i>=0: t iff i<j
func (ev *Evaluator) rangeChk(args []runtime.Value, conts []Continuation) runtime.Computation {
	i := mustInt("rangechk", args[0])
	j := mustInt("rangechk", args[1])
	var inRange bool
	switch {
	case j < 0 && i < 0:
		inRange = i < j
	case j < 0 && i >= 0:
		inRange = true
	case j >= 0 && i < 0:
		inRange = false
	default: // j >= 0 && i >= 0
		inRange = i < j
	}
	if inRange {
		return conts[0](nil)
	}
	return conts[1](nil)
}
