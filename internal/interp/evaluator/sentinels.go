package evaluator

import "github.com/rljacobson/cps/internal/interp/runtime"

// OverflowExn and DivExn are the fixed sentinel tags do_raise uses for
// arithmetic overflow and division-by-zero, per spec.md §6/§7. They are
// plain StringValue tags rather than a distinguished Go exception type:
// the object language has no notion of exception class beyond whatever
// tag value the handler inspects.
var (
	OverflowExn runtime.Value = &runtime.StringValue{Value: "Overflow"}
	DivExn      runtime.Value = &runtime.StringValue{Value: "Div"}
)

// doRaise fetches the current handler from the store's handler location
// and tail-calls it with a single argument: an ExceptionValue wrapping
// exn. Per spec.md §4.5/§3, the handler location always maps to a
// Function denotation; anything else is a malformed CPS program.
func (ev *Evaluator) doRaise(exn runtime.Value) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		h := s.Fetch(s.HandlerLoc())
		fn, ok := h.(*runtime.FunctionValue)
		if !ok {
			panic(typeMismatch("do_raise", h))
		}
		payload := &runtime.ExceptionValue{Tag: exn}
		return runtime.Bounce(fn.Meaning([]runtime.Value{payload}), s)
	}
}
