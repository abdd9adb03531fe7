package runtime

// Answer is the opaque top-level result of evaluation. The core never
// inspects an Answer; it is produced only by invoking a top-level
// continuation and handed back to the driver's caller.
type Answer any

// Step is the result of running one Computation to its next decision
// point: either evaluation is Done with an Answer, or it has one more
// tail call pending (next, to be invoked against nextStore).
//
// Every CExp case and every primop continuation produces a Step rather
// than calling the next Computation directly — that indirection is what
// lets Run below evaluate arbitrarily deep CPS programs in constant Go
// stack depth, per the spec's stack-discipline requirement.
type Step struct {
	done      bool
	answer    Answer
	store     Store // store in effect when this step completed
	next      Computation
	nextStore Store
}

// Done constructs a terminal step carrying the final Answer and the store
// version in effect at termination. The core itself never inspects either
// field of a Done step beyond what Run returns; exposing the store here
// is purely so that embedders (tests, the CLI) can observe allocation
// effects after a run, since a program's Answer alone carries none of
// that per spec.md §3.
func Done(a Answer, s Store) Step {
	return Step{done: true, answer: a, store: s}
}

// Bounce constructs a pending step: "resume by calling next against s".
func Bounce(next Computation, s Store) Step {
	return Step{next: next, nextStore: s}
}

// TopLevelContinuation returns a FunctionValue suitable for binding to a
// program's outermost continuation formal: calling it with zero or more
// arguments terminates the trampoline, delivering those arguments (as a
// single Value if there is exactly one, or as a []Value otherwise) as the
// run's Answer. This is the standard "external top continuation" spec.md
// §8's concrete scenarios bind their `k` formal to.
func TopLevelContinuation() *FunctionValue {
	return &FunctionValue{
		Meaning: func(args []Value) Computation {
			return func(s Store) Step {
				var answer Answer
				switch len(args) {
				case 0:
					answer = nil
				case 1:
					answer = args[0]
				default:
					answer = args
				}
				return Done(answer, s)
			}
		},
	}
}

// DefaultHandler returns a handler Function suitable for the initial
// store's handler location when a caller has no handler of its own to
// install: it behaves exactly like TopLevelContinuation, delivering the
// raised ExceptionValue as the run's Answer instead of silently
// discarding it.
func DefaultHandler() *FunctionValue {
	return TopLevelContinuation()
}

// Run drives a Computation to completion against an initial store,
// unwinding the trampoline until a Done step is produced, and returns
// both the final Answer and the store version at termination.
func Run(c Computation, s Store) (Answer, Store) {
	step := c(s)
	for !step.done {
		step = step.next(step.nextStore)
	}
	return step.answer, step.store
}
