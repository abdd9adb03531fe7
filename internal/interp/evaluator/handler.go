package evaluator

import "github.com/rljacobson/cps/internal/interp/runtime"

// getHdlr implements gethdlr(): fetch at the handler location, pass to c.
func (ev *Evaluator) getHdlr(conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		h := s.Fetch(s.HandlerLoc())
		return runtime.Bounce(conts[0]([]runtime.Value{h}), s)
	}
}

// setHdlr implements sethdlr(h): write h to the handler location; pass
// empty to c. The historical source writes the literal integer 1 instead
// of h — spec.md §9 treats that as a bug and this implementation writes
// the argument, as the spec directs.
func (ev *Evaluator) setHdlr(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		s2 := s.Upd(s.HandlerLoc(), args[0])
		return runtime.Bounce(conts[0](nil), s2)
	}
}
