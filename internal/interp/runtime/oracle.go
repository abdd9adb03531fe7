package runtime

import "math/rand"

// Oracle models the `arbitrarily` nondeterminism the spec admits for
// equality on Real, String, Record, Array, UnboxedArray, and ByteArray
// values: when two such values are structurally equal and non-empty, the
// implementation is permitted to answer either true or false, as if
// comparing unspecified pointer identity. Choose is called once per such
// comparison with the two candidate answers; an Oracle is free to return
// either.
type Oracle interface {
	Choose(whenEqual, whenNotEqual bool) bool
}

// DeterministicOracle always returns a fixed answer. Use this to pin
// equality behavior in tests (per spec.md §9's call for "a configurable
// oracle (deterministic for tests...)").
type DeterministicOracle struct {
	Answer bool
}

// Choose ignores both candidates and returns the pinned Answer.
func (o DeterministicOracle) Choose(bool, bool) bool { return o.Answer }

// PseudoPointerOracle models unspecified host-pointer identity: a
// production interpreter has no real stable pointer to compare (CPS
// denotable values here are plain Go structs, not interned), so instead
// of claiming a false determinism this flips a seeded coin per call,
// matching the spec's "host-pointer-based otherwise" guidance without
// pretending to real pointer semantics.
type PseudoPointerOracle struct {
	rng *rand.Rand
}

// NewPseudoPointerOracle returns an oracle seeded from seed.
func NewPseudoPointerOracle(seed int64) *PseudoPointerOracle {
	return &PseudoPointerOracle{rng: rand.New(rand.NewSource(seed))}
}

// Choose flips a coin between the two candidate answers.
func (o *PseudoPointerOracle) Choose(whenEqual, whenNotEqual bool) bool {
	if o.rng.Intn(2) == 0 {
		return whenEqual
	}
	return whenNotEqual
}
