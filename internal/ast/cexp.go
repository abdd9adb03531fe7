package ast

// CExp is a continuation expression: the sole statement form of the CPS
// language. Every case is in tail position with respect to its
// continuation — there is no "return", only invocation of the next thing.
type CExp interface {
	isCExp()
}

// Field is one (value, access-path) pair of a Record construction.
type Field struct {
	Value Value
	Path  AccessPath
}

// RecordExp builds a new record from Fields, binds it to W, and continues
// with Body.
type RecordExp struct {
	Fields []Field
	W      Variable
	Body   CExp
}

// SelectExp selects field I out of the record denoted by V, binds the
// result to W, and continues with Body.
type SelectExp struct {
	I    int
	V    Value
	W    Variable
	Body CExp
}

// OffsetExp builds a new record pointer into the same backing storage as
// V's record, offset by I, binds it to W, and continues with Body.
type OffsetExp struct {
	I    int
	V    Value
	W    Variable
	Body CExp
}

// AppExp applies the function denoted by Fn to Args. This is always a tail
// call: the result of the call is this expression's result.
type AppExp struct {
	Fn   Value
	Args []Value
}

// FunDef is one member of a Fix group: a named function of Formals
// evaluating Body in an environment where every member of the group is
// bound to its own (mutually recursive) denotation.
type FunDef struct {
	Name    Variable
	Formals []Variable
	Body    CExp
}

// FixExp introduces a group of mutually recursive function definitions,
// then continues with Body in an environment extended with all of them.
type FixExp struct {
	Defs []FunDef
	Body CExp
}

// SwitchExp dispatches on the integer denoted by V, evaluating Arms[i]
// where i is that integer. Out of range is undefined (spec invariant:
// Switch totality requires 0 <= i < len(Arms)).
type SwitchExp struct {
	V    Value
	Arms []CExp
}

// PrimopExp evaluates Args through the ambient environment, invokes the
// named primitive operator, and continues with one of Arms — each arm is
// entered with its Binders bound to the values the primop's chosen
// continuation supplies.
type PrimopExp struct {
	Op      Primop
	Args    []Value
	Binders []Variable
	Arms    []CExp
}

func (*RecordExp) isCExp() {}
func (*SelectExp) isCExp() {}
func (*OffsetExp) isCExp() {}
func (*AppExp) isCExp()    {}
func (*FixExp) isCExp()    {}
func (*SwitchExp) isCExp() {}
func (*PrimopExp) isCExp() {}
