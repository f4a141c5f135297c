package dp

import (
	"sort"

	"github.com/go-sat/satkit"
	"github.com/go-sat/satkit/cnf"
)

// clause is a deduplicated literal set, the set-semantics representation
// spec.md §3 calls for in the DP engine (as opposed to cnf.Clause's
// insertion-ordered slice, which DPLL needs instead).
type clause struct {
	lits []cnf.Literal
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
	return clause{lits: uniq}
}

func (c clause) has(l cnf.Literal) bool {
	for _, x := range c.lits {
		if x == l {
			return true
		}
	}
	return false
}

func (c clause) without(l cnf.Literal) clause {
	out := make([]cnf.Literal, 0, len(c.lits))
	for _, x := range c.lits {
		if x != l {
			out = append(out, x)
		}
	}
	return clause{lits: out}
}

// clauseSet is a set of clauses (duplicate clauses collapse) local to one
// invocation of dp's recursion. It's mutated in place across the unit
// propagation / pure literal passes of a single call, then a fresh
// clauseSet is built for the recursive call after variable elimination —
// no clauseSet is ever shared or mutated across two different recursion
// levels, which keeps the "formula as value" semantics spec.md §3 asks for.
type clauseSet struct {
	byKey map[string]clause
}

func newClauseSet(f cnf.Formula) *clauseSet {
	cs := &clauseSet{byKey: make(map[string]clause, len(f))}
	for _, c := range f {
		cs.add(newClause(c))
	}
	return cs
}

func (cs *clauseSet) add(c clause) {
	cs.byKey[clauseKey(c.lits)] = c
}

func (cs *clauseSet) remove(key string) {
	delete(cs.byKey, key)
}

func (cs *clauseSet) empty() bool { return len(cs.byKey) == 0 }

func (cs *clauseSet) hasEmptyClause() bool {
	for _, c := range cs.byKey {
		if len(c.lits) == 0 {
			return true
		}
	}
	return false
}

// findUnit returns an arbitrary unit clause's literal, deterministically
// the smallest such literal so repeated runs pick the same order.
func (cs *clauseSet) findUnit() (cnf.Literal, bool) {
	var best cnf.Literal
	found := false
	for _, c := range cs.byKey {
		if len(c.lits) == 1 {
			if !found || c.lits[0] < best {
				best = c.lits[0]
				found = true
			}
		}
	}
	return best, found
}

// assign records the effect of setting lit true: drop every clause
// containing lit, and shrink every clause containing -lit by removing that
// literal. Returns true if the shrink ever produces the empty clause.
func (cs *clauseSet) assign(lit cnf.Literal) (conflict bool) {
	neg := lit.Negate()
	for key, c := range cs.byKey {
		switch {
		case c.has(lit):
			cs.remove(key)
		case c.has(neg):
			reduced := c.without(neg)
			cs.remove(key)
			if len(reduced.lits) == 0 {
				return true
			}
			cs.add(reduced)
		}
	}
	return false
}

// pureLiterals returns, in ascending order, every literal occurring in the
// set whose negation does not occur anywhere.
func (cs *clauseSet) pureLiterals() []cnf.Literal {
	present := make(map[cnf.Literal]struct{})
	for _, c := range cs.byKey {
		for _, l := range c.lits {
			present[l] = struct{}{}
		}
	}
	var pures []cnf.Literal
	for l := range present {
		if _, ok := present[l.Negate()]; !ok {
			pures = append(pures, l)
		}
	}
	sort.Slice(pures, func(i, j int) bool { return pures[i] < pures[j] })
	return pures
}

// eliminatePure drops every clause containing lit.
func (cs *clauseSet) eliminatePure(lit cnf.Literal) {
	for key, c := range cs.byKey {
		if c.has(lit) {
			cs.remove(key)
		}
	}
}

// pickEliminationLiteral returns the positive literal of the smallest
// variable that occurs in both polarities somewhere in the set (spec.md
// §4.4 step 4; any
// deterministic tie-break is permitted, smallest-first is chosen for
// reproducible benchmark counters — see SPEC_FULL.md §9.1).
func (cs *clauseSet) pickEliminationLiteral() (cnf.Literal, bool) {
	present := make(map[cnf.Literal]struct{})
	for _, c := range cs.byKey {
		for _, l := range c.lits {
			present[l] = struct{}{}
		}
	}
	var best cnf.Literal
	found := false
	for l := range present {
		if l <= 0 {
			continue
		}
		if _, ok := present[l.Negate()]; ok {
			if !found || l < best {
				best = l
				found = true
			}
		}
	}
	return best, found
}

// eliminateByResolution splits the set into clauses containing lit (P),
// clauses containing -lit (N), and the rest (R); resolves every pair in
// P×N; and returns R ∪ resolvents as the formula for the next recursion
// level, per spec.md §4.4 step 4.
func (cs *clauseSet) eliminateByResolution(lit cnf.Literal, stats *satkit.Stats) *clauseSet {
	neg := lit.Negate()
	next := &clauseSet{byKey: make(map[string]clause)}
	var pos, negC []clause
	for _, c := range cs.byKey {
		switch {
		case c.has(lit):
			pos = append(pos, c)
		case c.has(neg):
			negC = append(negC, c)
		default:
			next.add(c)
		}
	}
	for _, p := range pos {
		for _, n := range negC {
			stats.ResolutionSteps++
			merged := make([]cnf.Literal, 0, len(p.lits)+len(n.lits))
			for _, l := range p.lits {
				if l != lit {
					merged = append(merged, l)
				}
			}
			for _, l := range n.lits {
				if l != neg {
					merged = append(merged, l)
				}
			}
			next.add(newClause(merged))
		}
	}
	return next
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
