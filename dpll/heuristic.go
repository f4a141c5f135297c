package dpll

import (
	"math"

	"github.com/go-sat/satkit/cnf"
)

// jwWeights holds a static per-variable Jeroslow-Wang score, keyed directly
// by variable index. Weights never change during search: spec.md §4.5
// defines the heuristic over the ORIGINAL formula, not the residual one,
// following original_source/algorithms/dpll.py's _init_weights, which is
// computed once before the search loop starts.
type jwWeights map[int]float64

// computeJWWeights scores every variable x as Σ 2^-|C| over every clause C
// containing x in either polarity, following original_source/algorithms/
// dpll.py's _init_weights (jw_weights[abs(lit)] += w regardless of lit's
// sign) and the GLOSSARY's w(x) = Σ_{C: x∈var(C)} 2^(−|C|) definition — the
// two polarities are summed into one score, not folded by max, so the
// branch order (and the decisions/backtracks/unit_props the harness
// records) matches the spec and the original implementation exactly.
func computeJWWeights(f cnf.Formula, numVars int) jwWeights {
	w := make(jwWeights, numVars)
	for _, c := range f {
		if len(c) == 0 {
			continue
		}
		score := math.Pow(2, -float64(len(c)))
		for _, l := range c {
			w[int(l.Var())] += score
		}
	}
	return w
}
