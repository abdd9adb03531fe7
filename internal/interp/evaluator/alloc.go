package evaluator

import "github.com/rljacobson/cps/internal/interp/runtime"

// makeRef implements makeref(v): allocate one location, write v there,
// pass Array([l]) to c.
func (ev *Evaluator) makeRef(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		l, s2 := s.Alloc()
		s2 = s2.Upd(l, args[0])
		handle := &runtime.ArrayValue{Locations: []runtime.Location{l}}
		return runtime.Bounce(conts[0]([]runtime.Value{handle}), s2)
	}
}

// makeRefUnboxed implements makerefunboxed(Integer(v)): allocate one
// location in the integer map, pass UArray([l]) to c.
func (ev *Evaluator) makeRefUnboxed(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		v := mustInt("makerefunboxed", args[0])
		l, s2 := s.Alloc()
		s2 = s2.Updi(l, v)
		handle := &runtime.UnboxedArrayValue{Locations: []runtime.Location{l}}
		return runtime.Bounce(conts[0]([]runtime.Value{handle}), s2)
	}
}
