// Package resolution implements the Resolution decision procedure: it
// semidecides unsatisfiability by saturating a clause set under binary
// resolution, exactly as original_source/algorithms/resolution.py's
// ResolutionSolver._resolve does.
package resolution

import (
	"context"
	"sort"
	"time"

	"github.com/go-sat/satkit"
	"github.com/go-sat/satkit/cnf"
)

// Solver implements satkit.Engine using binary resolution saturation. The
// zero value is ready to use.
type Solver struct{}

// Name implements satkit.Engine.
func (Solver) Name() string { return "resolution" }

// Solve saturates the clause set of f under binary resolution until either
// the empty clause is derived (UNSAT) or a round produces no resolvent
// outside the running set (SAT, the set is saturated). ctx's deadline is
// checked once per round.
func (Solver) Solve(ctx context.Context, f cnf.Formula) satkit.Result {
	start := time.Now()
	clauses := newClauseSet(f)

	var stats satkit.Stats
	if clauses.hasEmptyClause() {
		return satkit.Result{Verdict: satkit.UNSAT, Stats: stats, Elapsed: time.Since(start)}
	}
	for {
		select {
		case <-ctx.Done():
			return satkit.Result{Verdict: satkit.TIMEOUT, Stats: stats, Elapsed: time.Since(start)}
		default:
		}

		list := clauses.slice()
		fresh := newClauseSet(nil)

		// Enumerate unordered pairs {C, D} with i<j exactly once. For each
		// pair, resolve on EVERY complementary literal pair between C and
		// D, not just the first found — this double-counts
		// resolution_steps when a pair shares more than one complementary
		// variable, matching the Python original and preserving benchmark
		// comparability (see spec's open question on this).
		for i := 0; i < len(list); i++ {
			ci := list[i]
			for j := i + 1; j < len(list); j++ {
				cj := list[j]
				for _, lit := range ci.lits {
					if !cj.has(lit.Negate()) {
						continue
					}
					stats.ResolutionSteps++
					resolvent := resolve(ci, cj, lit)
					if resolvent.empty() {
						return satkit.Result{Verdict: satkit.UNSAT, Stats: stats, Elapsed: time.Since(start)}
					}
					fresh.add(resolvent)
				}
			}
		}

		if clauses.supersetOf(fresh) {
			return satkit.Result{Verdict: satkit.SAT, Stats: stats, Elapsed: time.Since(start)}
		}
		clauses.addAll(fresh)
	}
}

// clause is a deduplicated, canonically-sorted literal set — the
// set-semantics clause representation spec.md §3 calls for in Resolution
// and DP, as opposed to cnf.Clause's insertion-ordered slice.
type clause struct {
	lits []cnf.Literal
	key  string
}

func newClause(lits []cnf.Literal) clause {
	seen := make(map[cnf.Literal]struct{}, len(lits))
	var uniq []cnf.Literal
	for _, l := range lits {
		if _, ok := seen[l]; !ok {
			seen[l] = struct{}{}
			uniq = append(uniq, l)
		}
	}
	sort.Slice(uniq, func(i, j int) bool { return uniq[i] < uniq[j] })
	return clause{lits: uniq, key: clauseKey(uniq)}
}

func clauseKey(sorted []cnf.Literal) string {
	b := make([]byte, 0, len(sorted)*5)
	for i, l := range sorted {
		if i > 0 {
			b = append(b, ',')
		}
		b = appendInt(b, int64(l))
	}
	return string(b)
}

func appendInt(b []byte, n int64) []byte {
	if n < 0 {
		b = append(b, '-')
		n = -n
	}
	if n == 0 {
		return append(b, '0')
	}
	var digits [20]byte
	i := len(digits)
	for n > 0 {
		i--
		digits[i] = byte('0' + n%10)
		n /= 10
	}
	return append(b, digits[i:]...)
}

func (c clause) empty() bool { return len(c.lits) == 0 }

func (c clause) has(l cnf.Literal) bool {
	// lits is sorted; linear scan is fine at clause-width scale.
	for _, x := range c.lits {
		if x == l {
			return true
		}
	}
	return false
}

// resolve derives (C \ {lit}) ∪ (D \ {-lit}).
func resolve(c, d clause, lit cnf.Literal) clause {
	merged := make([]cnf.Literal, 0, len(c.lits)+len(d.lits))
	for _, l := range c.lits {
		if l != lit {
			merged = append(merged, l)
		}
	}
	neg := lit.Negate()
	for _, l := range d.lits {
		if l != neg {
			merged = append(merged, l)
		}
	}
	return newClause(merged)
}

// clauseSet is a hashed set of clauses keyed by their canonical literal
// signature, giving the set semantics spec.md §3 requires (duplicate
// clauses collapse).
type clauseSet struct {
	byKey map[string]clause
}

func newClauseSet(f cnf.Formula) *clauseSet {
	cs := &clauseSet{byKey: make(map[string]clause)}
	for _, c := range f {
		cs.add(newClause(c))
	}
	return cs
}

func (cs *clauseSet) add(c clause) {
	if _, ok := cs.byKey[c.key]; !ok {
		cs.byKey[c.key] = c
	}
}

func (cs *clauseSet) addAll(other *clauseSet) {
	for k, c := range other.byKey {
		if _, ok := cs.byKey[k]; !ok {
			cs.byKey[k] = c
		}
	}
}

// slice returns the set's clauses in a stable, key-sorted order so that
// pair enumeration — and therefore the derived resolution_steps count — is
// reproducible across runs despite Go's randomized map iteration.
func (cs *clauseSet) slice() []clause {
	out := make([]clause, 0, len(cs.byKey))
	for _, c := range cs.byKey {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].key < out[j].key })
	return out
}

// hasEmptyClause reports whether the set already contains the empty clause,
// e.g. from a bare "0" line in the input DIMACS file (cnf/dimacs.go's
// ParseDIMACS produces cnf.NewClause() for that). Saturation would never
// derive a resolvent from ∅ itself, so this must be checked directly rather
// than left to the per-round resolvent.empty() path.
func (cs *clauseSet) hasEmptyClause() bool {
	for _, c := range cs.byKey {
		if c.empty() {
			return true
		}
	}
	return false
}

// supersetOf reports whether every clause of other is already in cs (i.e.
// other ⊆ cs), the saturation-termination test from spec.md §4.3.
func (cs *clauseSet) supersetOf(other *clauseSet) bool {
	for k := range other.byKey {
		if _, ok := cs.byKey[k]; !ok {
			return false
		}
	}
	return true
}
