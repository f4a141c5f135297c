package dpll

import "github.com/go-sat/satkit/cnf"

// enqueue records lit as true (if unassigned), queues it for propagation,
// and returns false if lit contradicts an existing assignment. When
// isDecision is true the caller must have just opened a fresh trail level
// via s.trail.newLevel(); enqueue records the decision frame for that level.
// Otherwise the assignment is an implication and is counted as a unit
// propagation.
func (s *search) enqueue(lit cnf.Literal, isDecision bool) bool {
	v := int(lit.Var())
	if cur, ok := s.trail.value(v); ok {
		return cur == lit.Polarity()
	}
	if isDecision {
		s.trail.pushDecision(v)
	} else {
		s.stats.UnitProps++
	}
	s.trail.setValue(v, lit.Polarity())
	s.pending = append(s.pending, lit)
	return true
}

// retryDecision assigns lit within the CURRENT (already-open) decision
// level after backtrackOne has unwound it back to its start — it's the same
// decision slot trying its other polarity, not a new one, so unlike
// enqueue(lit, true) it neither opens a fresh level nor increments
// stats.Decisions or stats.UnitProps.
func (s *search) retryDecision(lit cnf.Literal) {
	s.trail.setValue(int(lit.Var()), lit.Polarity())
	s.pending = append(s.pending, lit)
}

// propagate drains the pending queue via two-watched-literal BCP, grounded
// on cespare/saturday.go's bcp() and original_source/algorithms/dpll.py's
// _propagate. For each newly assigned literal, every clause watching its
// negation is rescanned for a new literal to watch; a clause with no
// replacement and a false second watch is a conflict, otherwise its second
// watch becomes a forced unit implication.
func (s *search) propagate() (conflict bool) {
	for len(s.pending) > 0 {
		lit := s.pending[0]
		s.pending = s.pending[1:]
		falseLit := lit.Negate()
		p := pack(falseLit)
		watchers := s.watches[p]

		kept := watchers[:0]
		for i, ci := range watchers {
			c := &s.clauses[ci]
			if c.lits[0] == falseLit && len(c.lits) > 1 {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}
			other := c.lits[0]
			if val, assigned := s.trail.value(int(other.Var())); assigned && val == other.Polarity() {
				kept = append(kept, ci)
				continue
			}

			replaced := false
			for j := 2; j < len(c.lits); j++ {
				cand := c.lits[j]
				if val, assigned := s.trail.value(int(cand.Var())); !assigned || val == cand.Polarity() {
					c.lits[1], c.lits[j] = c.lits[j], c.lits[1]
					np := pack(cand)
					s.watches[np] = append(s.watches[np], ci)
					replaced = true
					break
				}
			}
			if replaced {
				continue
			}

			if val, assigned := s.trail.value(int(other.Var())); assigned && val != other.Polarity() {
				s.watches[p] = append(kept, watchers[i:]...)
				s.pending = nil
				return true
			}
			if !s.enqueue(other, false) {
				s.watches[p] = append(kept, watchers[i:]...)
				s.pending = nil
				return true
			}
			kept = append(kept, ci)
		}
		s.watches[p] = kept
	}
	return false
}

// backtrackOne undoes the most recent open decision level. If its positive
// branch hasn't yet tried the negated polarity, it reports the (positive)
// decision literal with secondTried=false so run() can re-enter PROPAGATE
// with its negation;
// otherwise the exhausted level is popped entirely and the search continues
// unwinding (secondTried=true), or reports ok=false once the root level
// itself is exhausted, meaning UNSAT. Matches original_source's dpll.py
// backtrack(), which pops one level at a time rather than jumping directly
// to the first undecided level.
func (s *search) backtrackOne() (lit cnf.Literal, secondTried bool, ok bool) {
	if s.trail.level() == 0 {
		return 0, false, false
	}
	s.stats.Backtracks++
	v := s.trail.undoLast()
	frame := s.trail.frame()
	if !frame.triedSecond {
		frame.triedSecond = true
		return cnf.Literal(v), false, true
	}
	s.trail.popLevel()
	return cnf.Literal(v), true, true
}
