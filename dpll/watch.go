package dpll

import "github.com/go-sat/satkit/cnf"

// watchedClause is a clause with its literals kept in insertion order so
// the first two positions (or the only position, for a unit clause) can
// serve as positional watches, per spec.md §3's DPLL clause representation.
type watchedClause struct {
	lits []cnf.Literal
}

func newWatchedClause(c cnf.Clause) watchedClause {
	lits := make([]cnf.Literal, len(c))
	copy(lits, c)
	return watchedClause{lits: lits}
}

func (c watchedClause) unit() bool { return len(c.lits) == 1 }

// pack folds a literal's sign into a dense, zero-based index suitable for
// slice-indexed (rather than map-indexed) watch lookups: variable v's
// positive literal maps to 2*(v-1) and its negative literal to 2*(v-1)+1.
func pack(l cnf.Literal) int {
	idx := int(l.Var()-1) * 2
	if !l.Polarity() {
		idx++
	}
	return idx
}

// watchIndex maps a packed literal to the indices of clauses currently
// watching it.
type watchIndex [][]int

// newWatchIndex builds the initial watch index: every clause watches its
// first two literals, or its only literal if it's a unit clause.
func newWatchIndex(numVars int, clauses []watchedClause) watchIndex {
	idx := make(watchIndex, 2*numVars)
	for ci, c := range clauses {
		n := len(c.lits)
		if n == 0 {
			continue
		}
		watched := c.lits[:2]
		if n < 2 {
			watched = c.lits[:1]
		}
		for _, l := range watched {
			p := pack(l)
			idx[p] = append(idx[p], ci)
		}
	}
	return idx
}
