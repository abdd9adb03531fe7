package ast

// Primop names one of the fixed set of built-in operators. The evaluator's
// evalprim (internal/interp/evaluator/primops.go) dispatches on these.
type Primop string

const (
	// Integer arithmetic.
	Add    Primop = "+"
	Sub    Primop = "-"
	Mul    Primop = "*"
	Div    Primop = "/"
	Negate Primop = "~"

	// Integer comparisons.
	Lt    Primop = "<"
	Le    Primop = "<="
	Gt    Primop = ">"
	Ge    Primop = ">="
	IEql  Primop = "ieql"
	INeq  Primop = "ineq"
	RangeChk Primop = "rangechk"

	// Typed/boxed discriminator.
	Boxed Primop = "boxed"

	// General dereference/subscript.
	Deref     Primop = "!"
	Subscript Primop = "subscript"
	Ordof     Primop = "ordof"

	// Assignment/update.
	Assign          Primop = ":="
	Update          Primop = "update"
	UnboxedAssign   Primop = "unboxedassign"
	UnboxedUpdate   Primop = "unboxedupdate"
	StorePrim       Primop = "store"

	// Allocation.
	MakeRef        Primop = "makeref"
	MakeRefUnboxed Primop = "makerefunboxed"

	// Length.
	ALength Primop = "alength"
	SLength Primop = "slength"

	// Handler.
	GetHdlr Primop = "gethdlr"
	SetHdlr Primop = "sethdlr"

	// Float arithmetic and comparison.
	FAdd Primop = "fadd"
	FSub Primop = "fsub"
	FMul Primop = "fmul"
	FDiv Primop = "fdiv"
	FEql Primop = "feql"
	FNeq Primop = "fneq"
	FLt  Primop = "flt"
	FLe  Primop = "fle"
	FGt  Primop = "fgt"
	FGe  Primop = "fge"

	// Bitwise.
	RShift Primop = "rshift"
	LShift Primop = "lshift"
	Orb    Primop = "orb"
	Andb   Primop = "andb"
	Xorb   Primop = "xorb"
	Notb   Primop = "notb"
)
