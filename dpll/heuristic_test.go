package dpll

import (
	"testing"

	"github.com/go-sat/satkit/cnf"
)

// TestComputeJWWeightsSumsBothPolarities pins the GLOSSARY's
// w(x) = Σ_{C: x∈var(C)} 2^(−|C|) definition: a variable's weight is the sum
// over every clause mentioning it in EITHER polarity, not the max of its two
// per-polarity sums.
func TestComputeJWWeightsSumsBothPolarities(t *testing.T) {
	f := cnf.Formula{
		cnf.NewClause(1, 2, 3), // weight 1/8, var 1 positive
		cnf.NewClause(-1, 4, 5), // weight 1/8, var 1 negative
	}
	w := computeJWWeights(f, 5)
	want := 0.125 + 0.125
	if got := w[1]; got != want {
		t.Errorf("w[1] = %v, want %v (sum of both polarities, not max)", got, want)
	}
}

func TestComputeJWWeightsIgnoresEmptyClause(t *testing.T) {
	f := cnf.Formula{cnf.NewClause(), cnf.NewClause(1, 2)}
	w := computeJWWeights(f, 2)
	if got := w[1]; got != 0.25 {
		t.Errorf("w[1] = %v, want 0.25", got)
	}
}
