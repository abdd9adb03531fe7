package evaluator

import (
	cpserrors "github.com/rljacobson/cps/internal/interp/errors"
	"github.com/rljacobson/cps/internal/interp/runtime"
)

// update implements update (and := via Assign dispatch, which is
// update(x, 0, v) by construction in evalprim):
//
//	update(Array(a), Integer(n), v)              -> upd a[n] with v; empty result
//	update(UArray(a), Integer(n), Integer(v))    -> updi a[n] with v; empty result
func (ev *Evaluator) update(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		n := int(mustInt("update", args[1]))
		switch recv := args[0].(type) {
		case *runtime.ArrayValue:
			s2 := s.Upd(recv.Locations[n], args[2])
			return runtime.Bounce(conts[0](nil), s2)
		case *runtime.UnboxedArrayValue:
			v := mustInt("update", args[2])
			s2 := s.Updi(recv.Locations[n], v)
			return runtime.Bounce(conts[0](nil), s2)
		default:
			panic(typeMismatch("update", args[0]))
		}
	}
}

// unboxedUpdate implements unboxedupdate (and unboxedassign, via
// UnboxedAssign dispatch, which is unboxedupdate(x, 0, v)): same backing-storage split as update — Array always goes
// through the value map, UArray always through the integer map — but the
// incoming value is required to be an Integer in both cases.
func (ev *Evaluator) unboxedUpdate(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		n := int(mustInt("unboxedupdate", args[1]))
		v := mustInt("unboxedupdate", args[2])
		switch recv := args[0].(type) {
		case *runtime.ArrayValue:
			s2 := s.Upd(recv.Locations[n], &runtime.IntegerValue{Value: v})
			return runtime.Bounce(conts[0](nil), s2)
		case *runtime.UnboxedArrayValue:
			s2 := s.Updi(recv.Locations[n], v)
			return runtime.Bounce(conts[0](nil), s2)
		default:
			panic(typeMismatch("unboxedupdate", args[0]))
		}
	}
}

// storeByte implements store(ByteArray(a), Integer(i), Integer(v)): v
// must be in [0, 256) or this is undefined (a malformed CPS program); the
// historical source's unbound `n` is treated as the index i, per spec.md
// §9's resolution of that ambiguity.
func (ev *Evaluator) storeByte(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		recv, ok := args[0].(*runtime.ByteArrayValue)
		if !ok {
			panic(typeMismatch("store", args[0]))
		}
		i := int(mustInt("store", args[1]))
		v := mustInt("store", args[2])
		if v < 0 || v >= 256 {
			panic(cpserrors.NewByteRange(v))
		}
		s2 := s.Updi(recv.Locations[i], v)
		return runtime.Bounce(conts[0](nil), s2)
	}
}
