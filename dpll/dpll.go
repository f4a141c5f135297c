// Package dpll implements the DPLL decision procedure with two-watched-literal
// unit propagation and Jeroslow-Wang branching, following the explicit
// PROPAGATE/DECIDE/BACKTRACK/DONE state machine of spec.md §4.5. The overall
// shape — a decision stack, an implication trail, a dense watch index keyed
// by a sign-folded packed literal — is grounded on cespare/saturday's
// saturday.go; the propagation loop and branching heuristic follow
// original_source/algorithms/dpll.py's FastDPLLSolver line for line.
package dpll

import (
	"context"
	"time"

	"github.com/go-sat/satkit"
	"github.com/go-sat/satkit/cnf"
)

// Solver implements satkit.Engine using watched-literal DPLL. The zero
// value is ready to use; all mutable state lives in a fresh search built
// per Solve call, so a Solver is safe to reuse (but not for concurrent
// calls — see spec.md §5's single-solve-instance ownership model).
//
// Debug, when set, prints the trail after every decision via kr/pretty.
// cespare/saturday's bcp() fired an equivalent pretty.Println
// unconditionally on every propagation; here it's opt-in instead.
type Solver struct {
	Debug bool
}

// Name implements satkit.Engine.
func (Solver) Name() string { return "dpll" }

// Solve decides satisfiability of f. ctx's deadline is checked at the top
// of every state-machine iteration.
func (s Solver) Solve(ctx context.Context, f cnf.Formula) satkit.Result {
	start := time.Now()
	sr := newSearch(f)
	sr.debug = s.Debug

	verdict := sr.run(ctx)
	res := satkit.Result{Verdict: verdict, Stats: sr.stats, Elapsed: time.Since(start)}
	if verdict == satkit.SAT {
		res.Model = sr.model()
	}
	return res
}

// state is one of the four nodes of the §4.5 state machine.
type state int

const (
	stateDecide state = iota
	statePropagate
	stateBacktrack
	stateDone
)

// search holds everything one Solve call needs: the clause database, the
// watch index, the trail, the JW weights, and the running statistics. It
// is created fresh per call and discarded after, matching spec.md §5's
// reset-between-calls lifecycle.
type search struct {
	numVars int
	clauses []watchedClause

	watches watchIndex
	trail   trail
	weights jwWeights
	pending []cnf.Literal

	stats  satkit.Stats
	result satkit.Verdict
	debug  bool
}

func newSearch(f cnf.Formula) *search {
	numVars := int(cnf.MaxVar(f))
	s := &search{
		numVars: numVars,
		clauses: make([]watchedClause, len(f)),
		trail:   newTrail(numVars),
		weights: computeJWWeights(f, numVars),
	}
	for i, c := range f {
		s.clauses[i] = newWatchedClause(c)
	}
	s.watches = newWatchIndex(numVars, s.clauses)
	return s
}

// run drives the PROPAGATE/DECIDE/BACKTRACK/DONE state machine described in
// spec.md §4.5 to completion, returning the final verdict. A conflict found
// while propagating the formula's initial unit clauses (decision level 0,
// before any decision is made) is reported as UNSAT directly, matching
// spec.md §4.5's initialization step and concrete scenario 4 (decisions==0
// for {{1},{-1}}).
func (s *search) run(ctx context.Context) satkit.Verdict {
	for _, c := range s.clauses {
		if len(c.lits) == 0 {
			// newWatchIndex never watches a zero-length clause (there's no
			// literal to watch), so BCP alone would never notice one; a
			// bare "0" line in the input DIMACS file produces exactly this.
			return satkit.UNSAT
		}
		if c.unit() {
			if !s.enqueue(c.lits[0], false) {
				return satkit.UNSAT
			}
		}
	}
	if conflict := s.propagate(); conflict {
		return satkit.UNSAT
	}

	st := stateDecide
	for {
		select {
		case <-ctx.Done():
			return satkit.TIMEOUT
		default:
		}

		switch st {
		case stateDecide:
			v, ok := s.pickBranchVar()
			if !ok {
				return satkit.SAT
			}
			s.trail.newLevel()
			s.stats.Decisions++
			lit := cnf.Literal(v) // positive polarity first, per spec.md §4.5/§9
			s.enqueue(lit, true)
			if s.debug {
				s.tracePretty()
			}
			st = statePropagate

		case statePropagate:
			if conflict := s.propagate(); conflict {
				if s.trail.level() == 0 {
					return satkit.UNSAT
				}
				st = stateBacktrack
			} else {
				st = stateDecide
			}

		case stateBacktrack:
			lit, secondTried, ok := s.backtrackOne()
			if !ok {
				return satkit.UNSAT
			}
			if !secondTried {
				s.retryDecision(lit.Negate())
				st = statePropagate
			} else {
				st = stateBacktrack
			}

		case stateDone:
			return s.result
		}
	}
}

// pickBranchVar returns the unassigned variable with maximum Jeroslow-Wang
// weight (ties broken by lowest index), or false if every variable in
// [1, numVars] is already assigned.
func (s *search) pickBranchVar() (int, bool) {
	best := -1
	var bestW float64
	for v := 1; v <= s.numVars; v++ {
		if s.trail.assigned(v) {
			continue
		}
		w := s.weights[v]
		if best == -1 || w > bestW {
			best = v
			bestW = w
		}
	}
	if best == -1 {
		return 0, false
	}
	return best, true
}

// model reports the final total assignment. Only meaningful after a SAT
// verdict.
func (s *search) model() cnf.Assignment {
	a := make(cnf.Assignment, s.numVars)
	for v := 1; v <= s.numVars; v++ {
		if val, ok := s.trail.value(v); ok {
			a[cnf.Var(v)] = val
		}
	}
	return a
}
