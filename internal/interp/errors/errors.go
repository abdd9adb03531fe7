// Package errors defines the catalog of implementation-level failures: the
// "undefined" cases of the spec, which indicate a malformed CPS program
// rather than a recoverable object-language condition. They are never
// caught inside the core (spec.md §4.7/§7) — raised via panic and left to
// propagate to whatever embeds the evaluator.
package errors

import "fmt"

// Category classifies an ImplementationError for diagnostics.
type Category string

const (
	// CategoryUnbound covers lookups of a Variable with no binding in the
	// ambient environment.
	CategoryUnbound Category = "UnboundVariable"
	// CategoryTypeMismatch covers operations applied to a denotable value
	// of the wrong runtime tag (e.g. Select on a non-Record).
	CategoryTypeMismatch Category = "TypeMismatch"
	// CategoryAccessPath covers AccessPath resolution (F) reaching an
	// input it cannot resolve.
	CategoryAccessPath Category = "AccessPath"
	// CategoryArity covers a mismatched count between formals and
	// arguments, or between binders and a primop's continuation results.
	CategoryArity Category = "Arity"
	// CategoryByteRange covers a ByteArray store write outside [0, 256).
	CategoryByteRange Category = "ByteRange"
	// CategoryFunctionEquality covers equality attempted on Function
	// denotations, which the spec leaves undefined.
	CategoryFunctionEquality Category = "FunctionEquality"
	// CategorySwitchRange covers a Switch index outside the arm list.
	CategorySwitchRange Category = "SwitchRange"
	// CategoryIncompletePrimop covers a primop applied to operand types or
	// a continuation-arity shape it has no rule for.
	CategoryIncompletePrimop Category = "IncompletePrimop"
)

// ImplementationError is a fatal, unrecoverable failure reported when the
// CPS input violates one of the evaluator's static invariants.
type ImplementationError struct {
	Category Category
	Message  string
}

func (e *ImplementationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Category, e.Message)
}

// New constructs an ImplementationError.
func New(cat Category, format string, args ...any) *ImplementationError {
	return &ImplementationError{Category: cat, Message: fmt.Sprintf(format, args...)}
}

// NewUnbound reports an unbound variable lookup.
func NewUnbound(name string) *ImplementationError {
	return New(CategoryUnbound, "unbound variable %q", name)
}

// NewTypeMismatch reports a value of the wrong tag reaching an operation.
func NewTypeMismatch(op string, got string) *ImplementationError {
	return New(CategoryTypeMismatch, "%s: unexpected operand type %s", op, got)
}

// NewAccessPath reports an AccessPath that F cannot resolve.
func NewAccessPath(detail string) *ImplementationError {
	return New(CategoryAccessPath, "cannot resolve access path: %s", detail)
}

// NewArity reports a formals/arguments or binders/results count mismatch.
func NewArity(context string, want, got int) *ImplementationError {
	return New(CategoryArity, "%s: expected %d value(s), got %d", context, want, got)
}

// NewByteRange reports a byte-store write outside [0, 256).
func NewByteRange(v int64) *ImplementationError {
	return New(CategoryByteRange, "store: value %d out of byte range [0,256)", v)
}

// NewFunctionEquality reports an attempt to compare Function denotations.
func NewFunctionEquality() *ImplementationError {
	return New(CategoryFunctionEquality, "equality on Function denotations is undefined")
}

// NewSwitchRange reports a Switch index outside its arm list.
func NewSwitchRange(i, n int) *ImplementationError {
	return New(CategorySwitchRange, "switch index %d out of range [0,%d)", i, n)
}

// NewIncompletePrimop reports a primop/operand/arity shape with no rule.
func NewIncompletePrimop(op string, detail string) *ImplementationError {
	return New(CategoryIncompletePrimop, "primop %s: %s", op, detail)
}
