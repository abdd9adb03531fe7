// Package ast defines the abstract syntax of the CPS intermediate language:
// values, access paths, primitive operators, and continuation expressions.
//
// The language has no surface syntax of its own — a front end external to
// this module is expected to produce trees of these types directly. Nodes
// therefore carry no source position; diagnostics for malformed trees name
// the offending construct instead of a source location.
package ast

// Variable is an opaque CPS binder with decidable equality. It is the
// identifier bound by Fix formals, Record/Select/Offset binders, and
// Primop result binders, and referenced by Value's Variable case.
type Variable string

// Value is the syntactic operand of a continuation expression: a reference
// to an environment binding, or a literal.
type Value interface {
	isValue()
}

// VariableRef refers to an ordinary environment binding.
type VariableRef struct {
	Name Variable
}

// LabelRef refers to a function-label binding (bound the same way as an
// ordinary variable, but written separately in the syntax to distinguish
// call targets from data in front-end output).
type LabelRef struct {
	Name Variable
}

// IntegerLit is an integer literal.
type IntegerLit struct {
	Value int64
}

// RealLit is a real-literal decimal string, decoded lazily via the
// evaluator's configured string2real function.
type RealLit struct {
	Literal string
}

// StringLit is a string literal.
type StringLit struct {
	Value string
}

func (VariableRef) isValue() {}
func (LabelRef) isValue()    {}
func (IntegerLit) isValue()  {}
func (RealLit) isValue()     {}
func (StringLit) isValue()   {}
