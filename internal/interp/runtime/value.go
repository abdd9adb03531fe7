// Package runtime defines the denotable-value domain, the persistent
// store, and the environment the CPS evaluator operates over.
package runtime

// Value is the runtime denotable-value domain: what a CPS variable can be
// bound to, and what a continuation can be invoked with.
type Value interface {
	// Type names the value's runtime tag, for diagnostics.
	Type() string
	// Inspect renders the value for debugging and trace output.
	Inspect() string
}

// IntegerValue is a boxed machine integer, subject to the evaluator's
// configured overflow bounds.
type IntegerValue struct {
	Value int64
}

func (*IntegerValue) Type() string { return "INTEGER" }

// RealValue is a boxed floating-point number.
type RealValue struct {
	Value float64
}

func (*RealValue) Type() string { return "REAL" }

// StringValue is an immutable string.
type StringValue struct {
	Value string
}

func (*StringValue) Type() string { return "STRING" }

// RecordValue is a pointer into a flat element slice, offset by Base. Two
// RecordValues with the same Elements slice but different Base alias the
// same backing storage — this is what AccessPath's Off case produces.
type RecordValue struct {
	Elements []Value
	Base     int
}

func (*RecordValue) Type() string { return "RECORD" }

// At returns element K relative to Base.
func (r *RecordValue) At(k int) Value { return r.Elements[r.Base+k] }

// ByteArrayValue is a handle to a sequence of store locations, each
// holding a byte-ranged (0..255) machine integer.
type ByteArrayValue struct {
	Locations []Location
}

func (*ByteArrayValue) Type() string { return "BYTEARRAY" }

// ArrayValue is a handle to a sequence of store locations, each holding a
// boxed DenotableValue.
type ArrayValue struct {
	Locations []Location
}

func (*ArrayValue) Type() string { return "ARRAY" }

// UnboxedArrayValue is a handle to a sequence of store locations, each
// holding a machine integer in the store's unboxed integer map.
type UnboxedArrayValue struct {
	Locations []Location
}

func (*UnboxedArrayValue) Type() string { return "UARRAY" }

// Meaning is the denotation of a CPS function: given the arguments a call
// site supplies, it returns the Computation for the rest of evaluation.
// Defined here (rather than in the evaluator package) so that
// FunctionValue, Computation, and Step can all live next to Store without
// an import cycle between runtime and evaluator.
type Meaning func(args []Value) Computation

// Computation is a deferred store-to-answer step. E(e)(env) produces one
// of these rather than an Answer directly, so that every continuation
// invocation can be driven by an explicit trampoline (see Run in
// trampoline.go) instead of native Go recursion.
type Computation func(s Store) Step

// FunctionValue wraps a Meaning as a denotable value. Equality on
// FunctionValue is undefined per spec — callers must not compare these.
type FunctionValue struct {
	Meaning Meaning
}

func (*FunctionValue) Type() string { return "FUNCTION" }

// ExceptionValue is a raised exception's payload as carried to a handler.
// It is an ordinary denotable value, not a distinguished Go error type:
// the object language has no notion of exception types beyond whatever
// tag value the raiser chooses (see overflow_exn/div_exn in
// internal/interp/evaluator/sentinels.go).
type ExceptionValue struct {
	Tag Value
}

func (*ExceptionValue) Type() string { return "EXCEPTION" }

func (v *IntegerValue) Inspect() string       { return formatInt(v.Value) }
func (v *RealValue) Inspect() string          { return formatReal(v.Value) }
func (v *StringValue) Inspect() string        { return v.Value }
func (v *RecordValue) Inspect() string        { return "record" }
func (v *ByteArrayValue) Inspect() string      { return "bytearray" }
func (v *ArrayValue) Inspect() string         { return "array" }
func (v *UnboxedArrayValue) Inspect() string  { return "uarray" }
func (v *FunctionValue) Inspect() string      { return "function" }
func (v *ExceptionValue) Inspect() string     { return "exception(" + v.Tag.Inspect() + ")" }
