package runtime

import "testing"

func TestDeterministicOracleIgnoresCandidates(t *testing.T) {
	o := DeterministicOracle{Answer: true}
	if !o.Choose(false, false) {
		t.Fatal("DeterministicOracle{true} must return true regardless of candidates")
	}
	o = DeterministicOracle{Answer: false}
	if o.Choose(true, true) {
		t.Fatal("DeterministicOracle{false} must return false regardless of candidates")
	}
}

func TestPseudoPointerOracleChoosesOneOfTheTwoCandidates(t *testing.T) {
	o := NewPseudoPointerOracle(1)
	for i := 0; i < 50; i++ {
		got := o.Choose(true, false)
		if got != true && got != false {
			t.Fatalf("Choose returned a value outside the two candidates: %v", got)
		}
	}
}

func TestPseudoPointerOracleDeterministicGivenSeed(t *testing.T) {
	a := NewPseudoPointerOracle(7)
	b := NewPseudoPointerOracle(7)
	for i := 0; i < 20; i++ {
		if a.Choose(true, false) != b.Choose(true, false) {
			t.Fatal("two oracles seeded identically diverged")
		}
	}
}
