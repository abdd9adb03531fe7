package evaluator

import "github.com/rljacobson/cps/internal/interp/runtime"

// subscript implements subscript (and Deref, via !x = subscript(x, 0)):
//
//	subscript(Record(l,i), Integer(j)) -> passes l[i+j] to c, no store read
//	subscript(Array(a), Integer(n))    -> passes fetch s a[n]
//	subscript(UArray(a), Integer(n))   -> passes Integer(fetchi s a[n])
func (ev *Evaluator) subscript(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		n := int(mustInt("subscript", args[1]))
		switch recv := args[0].(type) {
		case *runtime.RecordValue:
			return runtime.Bounce(conts[0]([]runtime.Value{recv.At(n)}), s)
		case *runtime.ArrayValue:
			v := s.Fetch(recv.Locations[n])
			return runtime.Bounce(conts[0]([]runtime.Value{v}), s)
		case *runtime.UnboxedArrayValue:
			v := s.Fetchi(recv.Locations[n])
			return runtime.Bounce(conts[0]([]runtime.Value{&runtime.IntegerValue{Value: v}}), s)
		default:
			panic(typeMismatch("subscript", args[0]))
		}
	}
}

// ordof implements ordof:
//
//	ordof(String(s), Integer(i))    -> character code at i
//	ordof(ByteArray(a), Integer(i)) -> Integer(fetchi s a[i])
func (ev *Evaluator) ordof(args []runtime.Value, conts []Continuation) runtime.Computation {
	return func(s runtime.Store) runtime.Step {
		i := int(mustInt("ordof", args[1]))
		switch recv := args[0].(type) {
		case *runtime.StringValue:
			code := int64(recv.Value[i])
			return runtime.Bounce(conts[0]([]runtime.Value{&runtime.IntegerValue{Value: code}}), s)
		case *runtime.ByteArrayValue:
			v := s.Fetchi(recv.Locations[i])
			return runtime.Bounce(conts[0]([]runtime.Value{&runtime.IntegerValue{Value: v}}), s)
		default:
			panic(typeMismatch("ordof", args[0]))
		}
	}
}

// alength(Array|UArray a) returns the number of locations the handle
// carries.
func (ev *Evaluator) alength(args []runtime.Value, conts []Continuation) runtime.Computation {
	var n int
	switch recv := args[0].(type) {
	case *runtime.ArrayValue:
		n = len(recv.Locations)
	case *runtime.UnboxedArrayValue:
		n = len(recv.Locations)
	default:
		panic(typeMismatch("alength", args[0]))
	}
	return conts[0]([]runtime.Value{&runtime.IntegerValue{Value: int64(n)}})
}

// slength(ByteArray a) and slength(String s) return length in code units
// (bytes, for this byte-oriented representation of strings).
func (ev *Evaluator) slength(args []runtime.Value, conts []Continuation) runtime.Computation {
	var n int
	switch recv := args[0].(type) {
	case *runtime.ByteArrayValue:
		n = len(recv.Locations)
	case *runtime.StringValue:
		n = len(recv.Value)
	default:
		panic(typeMismatch("slength", args[0]))
	}
	return conts[0]([]runtime.Value{&runtime.IntegerValue{Value: int64(n)}})
}
